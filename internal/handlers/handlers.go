package handlers

import (
	"Catalog/internal/config"
	"Catalog/internal/middleware"
	"Catalog/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// Services — сервисы, которые обслуживает HTTP слой.
type Services struct {
	Users    *service.UserService
	Tokens   *service.TokenService
	Brands   *service.BrandService
	Products *service.ProductService
	Blocks   *service.BlockService
}

// NewHandler разводящий для хендлеров
func NewHandler(
	services Services,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithAuth(config.AuthSecret))
	r.Use(middleware.WithLogging)

	// Handlers
	userHandler := NewUserHandler(services.Users, services.Tokens, logger, config)
	brandHandler := NewBrandHandler(services.Brands, logger, config)
	productHandler := NewProductHandler(services.Products, logger, config)
	blockHandler := NewBlockHandler(services.Blocks, logger, config)

	r.Get("/", userHandler.Home)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondMessage(w, http.StatusOK, "ok")
	})

	// Auth routes
	r.Post("/register", userHandler.Register)
	r.Post("/login", userHandler.Login)
	r.Post("/refresh-token", userHandler.RefreshToken)

	// Public catalog routes
	r.Get("/brands", brandHandler.List)
	r.Get("/brands/{id}", brandHandler.Get)
	r.Get("/products", productHandler.List)
	r.Get("/products/{id}", productHandler.Get)
	r.Get("/brands/{id}/products", productHandler.ListByBrand)
	r.Get("/brands/{id}/categories/{category}/products", productHandler.ListByCategory)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/profile", userHandler.Profile)
		r.Patch("/profile/update", userHandler.UpdateProfile)
		r.Delete("/profile/delete", userHandler.DeleteProfile)

		r.Post("/brands", brandHandler.Create)
		r.Patch("/brands/{id}", brandHandler.Update)
		r.Delete("/brands/{id}", brandHandler.Delete)
		r.Patch("/brands/{id}/categories", brandHandler.UpdateCategories)

		r.Post("/products", productHandler.Create)
		r.Patch("/products/{id}", productHandler.Update)
		r.Delete("/products/{id}", productHandler.Delete)
		r.Get("/my-products", productHandler.ListMine)

		r.Post("/users/{userId}/block", blockHandler.Block)
		r.Delete("/users/{userId}/unblock", blockHandler.Unblock)
		r.Get("/blocked-users", blockHandler.ListBlocked)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondMessage(w, http.StatusNotFound, "Can't find "+r.URL.Path+" on this server")
	})

	return &Handler{Router: r}
}
