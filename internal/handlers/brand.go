package handlers

import (
	"Catalog/internal/config"
	"Catalog/internal/middleware"
	"Catalog/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BrandHandler — CRUD брендов и их категорий.
type BrandHandler struct {
	BrandService *service.BrandService
	Logger       *zap.SugaredLogger
	Config       *config.Config
}

func NewBrandHandler(brandService *service.BrandService, logger *zap.SugaredLogger, config *config.Config) *BrandHandler {
	return &BrandHandler{BrandService: brandService, Logger: logger, Config: config}
}

type brandRequest struct {
	Name       string   `json:"name"`
	Logo       string   `json:"logo"`
	Categories []string `json:"categories"`
}

type brandUpdateRequest struct {
	Name       *string   `json:"name"`
	Logo       *string   `json:"logo"`
	Categories *[]string `json:"categories"`
}

type categoriesRequest struct {
	Categories *[]string `json:"categories"`
}

func (h *BrandHandler) List(w http.ResponseWriter, r *http.Request) {
	brands, err := h.BrandService.List(r.Context())
	if err != nil {
		respondError(w, h.Logger, "ListBrands", err)
		return
	}
	respondList(w, "brands", brands, len(brands))
}

func (h *BrandHandler) Get(w http.ResponseWriter, r *http.Request) {
	brand, err := h.BrandService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.Logger, "GetBrand", err)
		return
	}
	respondData(w, http.StatusOK, "brand", brand)
}

func (h *BrandHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req brandRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	brand, err := h.BrandService.Create(r.Context(), userID, service.BrandInput{
		Name:       req.Name,
		Logo:       req.Logo,
		Categories: req.Categories,
	})
	if err != nil {
		respondError(w, h.Logger, "CreateBrand", err)
		return
	}
	respondData(w, http.StatusCreated, "brand", brand)
}

func (h *BrandHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req brandUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	brand, err := h.BrandService.Update(r.Context(), userID, chi.URLParam(r, "id"), service.BrandUpdate{
		Name:       req.Name,
		Logo:       req.Logo,
		Categories: req.Categories,
	})
	if err != nil {
		respondError(w, h.Logger, "UpdateBrand", err)
		return
	}
	respondData(w, http.StatusOK, "brand", brand)
}

func (h *BrandHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	if err := h.BrandService.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		respondError(w, h.Logger, "DeleteBrand", err)
		return
	}
	respondNoContent(w)
}

// UpdateCategories заменяет список категорий бренда целиком
func (h *BrandHandler) UpdateCategories(w http.ResponseWriter, r *http.Request) {
	var req categoriesRequest
	if err := decodeJSON(w, r, &req); err != nil || req.Categories == nil {
		respondMessage(w, http.StatusBadRequest, "Please provide an array of categories")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	brand, err := h.BrandService.ReplaceCategories(r.Context(), userID, chi.URLParam(r, "id"), *req.Categories)
	if err != nil {
		respondError(w, h.Logger, "UpdateCategories", err)
		return
	}
	respondData(w, http.StatusOK, "brand", brand)
}
