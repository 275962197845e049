package handlers

import (
	"Catalog/internal/config"
	"Catalog/internal/middleware"
	"Catalog/internal/model"
	"Catalog/internal/service"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProductHandler — товары и выдача с учётом блокировок.
type ProductHandler struct {
	ProductService *service.ProductService
	Logger         *zap.SugaredLogger
	Config         *config.Config
}

func NewProductHandler(productService *service.ProductService, logger *zap.SugaredLogger, config *config.Config) *ProductHandler {
	return &ProductHandler{ProductService: productService, Logger: logger, Config: config}
}

type productRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	Image       string   `json:"image"`
}

type productUpdateRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Brand       *string  `json:"brand"`
	Image       *string  `json:"image"`
}

// ProductDTO — товар в ответе API; бренд и владелец подставлены, если загружены.
type ProductDTO struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Price       float64             `json:"price"`
	Category    string              `json:"category"`
	Brand       *model.BrandSummary `json:"brand"`
	Image       string              `json:"image"`
	AddedBy     OwnerDTO            `json:"addedBy"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

type OwnerDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username,omitempty"`
}

func toProductDTO(p *model.Product) ProductDTO {
	dto := ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Brand:       &model.BrandSummary{ID: p.BrandID},
		Image:       p.Image,
		AddedBy:     OwnerDTO{ID: p.AddedBy},
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Brand != nil {
		dto.Brand = &model.BrandSummary{ID: p.Brand.ID, Name: p.Brand.Name, Categories: p.Brand.Categories}
	}
	if p.Owner != nil {
		dto.AddedBy.Username = p.Owner.Username
	}
	return dto
}

func toProductDTOs(products []model.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(products))
	for i := range products {
		out = append(out, toProductDTO(&products[i]))
	}
	return out
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	p, err := h.ProductService.Create(r.Context(), userID, service.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		BrandID:     req.Brand,
		Image:       req.Image,
	})
	if err != nil {
		respondError(w, h.Logger, "CreateProduct", err)
		return
	}
	respondData(w, http.StatusCreated, "product", toProductDTO(p))
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req productUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	p, err := h.ProductService.Update(r.Context(), userID, chi.URLParam(r, "id"), service.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		BrandID:     req.Brand,
		Image:       req.Image,
	})
	if err != nil {
		respondError(w, h.Logger, "UpdateProduct", err)
		return
	}
	respondData(w, http.StatusOK, "product", toProductDTO(p))
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	if err := h.ProductService.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		respondError(w, h.Logger, "DeleteProduct", err)
		return
	}
	respondNoContent(w)
}

// Get — один товар; 403, если владелец заблокировал зрителя
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	viewerID, _ := middleware.GetUserIDFromContext(r.Context())
	p, err := h.ProductService.Get(r.Context(), viewerID, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.Logger, "GetProduct", err)
		return
	}
	respondData(w, http.StatusOK, "product", toProductDTO(p))
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r.URL.Query())
	if err != nil {
		respondError(w, h.Logger, "ListProducts", err)
		return
	}
	viewerID, _ := middleware.GetUserIDFromContext(r.Context())
	products, err := h.ProductService.List(r.Context(), viewerID, q)
	if err != nil {
		respondError(w, h.Logger, "ListProducts", err)
		return
	}
	h.respondProducts(w, products)
}

func (h *ProductHandler) ListByBrand(w http.ResponseWriter, r *http.Request) {
	viewerID, _ := middleware.GetUserIDFromContext(r.Context())
	products, err := h.ProductService.ListByBrand(r.Context(), viewerID, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.Logger, "ListByBrand", err)
		return
	}
	h.respondProducts(w, products)
}

func (h *ProductHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	viewerID, _ := middleware.GetUserIDFromContext(r.Context())
	category, err := pathParam(r, "category")
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid category")
		return
	}
	products, err := h.ProductService.ListByCategory(r.Context(), viewerID, chi.URLParam(r, "id"), category)
	if err != nil {
		respondError(w, h.Logger, "ListByCategory", err)
		return
	}
	h.respondProducts(w, products)
}

// ListMine — товары текущего пользователя без фильтра блокировок
func (h *ProductHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r.URL.Query())
	if err != nil {
		respondError(w, h.Logger, "ListMine", err)
		return
	}
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	products, err := h.ProductService.ListMine(r.Context(), userID, q)
	if err != nil {
		respondError(w, h.Logger, "ListMine", err)
		return
	}
	h.respondProducts(w, products)
}

// pathParam возвращает параметр маршрута в декодированном виде.
// chi маршрутизирует по RawPath, если он задан, и тогда параметр остаётся экранированным.
func pathParam(r *http.Request, key string) (string, error) {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v, nil
	}
	return url.PathUnescape(v)
}

func (h *ProductHandler) respondProducts(w http.ResponseWriter, products []model.Product) {
	dtos := toProductDTOs(products)
	respondList(w, "products", dtos, len(dtos))
}

// parseListQuery разбирает brand, category, minPrice, maxPrice и sort.
func parseListQuery(v url.Values) (service.ListQuery, error) {
	var q service.ListQuery
	if s := v.Get("brand"); s != "" {
		q.BrandID = &s
	}
	if s := v.Get("category"); s != "" {
		q.Category = &s
	}
	var err error
	if q.MinPrice, err = parsePrice(v, "minPrice"); err != nil {
		return q, err
	}
	if q.MaxPrice, err = parsePrice(v, "maxPrice"); err != nil {
		return q, err
	}
	q.Sort = v.Get("sort")
	return q, nil
}

func parsePrice(v url.Values, key string) (*float64, error) {
	s := v.Get(key)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, &service.ValidationError{Msg: key + " must be a number"}
	}
	return &f, nil
}
