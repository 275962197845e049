package handlers_test

import (
	"Catalog/internal/config"
	"Catalog/internal/handlers"
	"Catalog/internal/middleware"
	"Catalog/internal/repo"
	"Catalog/internal/service"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

// newTestRouter собирает приложение целиком поверх SQLite во временном каталоге.
func newTestRouter(t *testing.T) (http.Handler, *config.Config) {
	t.Helper()
	cfg := &config.Config{
		AuthSecret:      testSecret,
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	}
	logger := zap.NewNop().Sugar()

	db, err := repo.InitDB("", filepath.Join(t.TempDir(), "catalog_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	users := repo.NewUserRepository(db)
	blocks := repo.NewBlockRepository(db)
	brands := repo.NewBrandRepository(db)
	products := repo.NewProductRepository(db)

	h := handlers.NewHandler(handlers.Services{
		Users:    service.NewUserService(users),
		Tokens:   service.NewTokenService(repo.NewSessionStore(db), cfg.AuthSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL),
		Brands:   service.NewBrandService(brands, logger),
		Products: service.NewProductService(products, brands, service.NewVisibilityFilter(blocks), logger),
		Blocks:   service.NewBlockService(blocks, users, logger),
	}, logger, cfg)
	return h.Router, cfg
}

// apiResponse — конверт ответа; data разбирается отдельно под конкретный тест.
type apiResponse struct {
	Status  string          `json:"status"`
	Results *int            `json:"results"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// do отправляет запрос; token — access токен в заголовке Authorization (пусто — аноним).
func do(t *testing.T, router http.Handler, method, path, body, token string) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var resp apiResponse
	if rr.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	}
	return rr, resp
}

func decodeData(t *testing.T, resp apiResponse, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Data, dst), "data: %s", string(resp.Data))
}

type authData struct {
	User struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
	} `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// register создаёт пользователя и возвращает его id и access токен.
func register(t *testing.T, router http.Handler, username string) (int64, string) {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"email":"%s@example.com","password":"secret1"}`, username, username)
	rr, resp := do(t, router, http.MethodPost, "/register", body, "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var data authData
	decodeData(t, resp, &data)
	return data.User.ID, data.AccessToken
}

type brandData struct {
	Brand struct {
		ID         string   `json:"id"`
		Name       string   `json:"name"`
		Categories []string `json:"categories"`
	} `json:"brand"`
}

func createBrand(t *testing.T, router http.Handler, token, body string) string {
	t.Helper()
	rr, resp := do(t, router, http.MethodPost, "/brands", body, token)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var data brandData
	decodeData(t, resp, &data)
	return data.Brand.ID
}

type productJSON struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Brand    struct {
		ID         string   `json:"id"`
		Name       string   `json:"name"`
		Categories []string `json:"categories"`
	} `json:"brand"`
	AddedBy struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
	} `json:"addedBy"`
}

func createProduct(t *testing.T, router http.Handler, token, brandID, name, category string, price float64) string {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"description":"desc","price":%v,"category":%q,"brand":%q}`, name, price, category, brandID)
	rr, resp := do(t, router, http.MethodPost, "/products", body, token)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var data struct {
		Product productJSON `json:"product"`
	}
	decodeData(t, resp, &data)
	return data.Product.ID
}

func listProducts(t *testing.T, router http.Handler, path, token string) []productJSON {
	t.Helper()
	rr, resp := do(t, router, http.MethodGet, path, "", token)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var data struct {
		Products []productJSON `json:"products"`
	}
	decodeData(t, resp, &data)
	require.NotNil(t, resp.Results)
	require.Equal(t, len(data.Products), *resp.Results)
	return data.Products
}

func productNames(products []productJSON) []string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	return names
}

func addAuthCookie(t *testing.T, req *http.Request, userID int64, secret string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, secret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}
