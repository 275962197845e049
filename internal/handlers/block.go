package handlers

import (
	"Catalog/internal/config"
	"Catalog/internal/middleware"
	"Catalog/internal/service"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BlockHandler — блокировка пользователей.
type BlockHandler struct {
	BlockService *service.BlockService
	Logger       *zap.SugaredLogger
	Config       *config.Config
}

func NewBlockHandler(blockService *service.BlockService, logger *zap.SugaredLogger, config *config.Config) *BlockHandler {
	return &BlockHandler{BlockService: blockService, Logger: logger, Config: config}
}

func (h *BlockHandler) Block(w http.ResponseWriter, r *http.Request) {
	targetID, ok := userIDParam(w, r)
	if !ok {
		return
	}
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	block, err := h.BlockService.Block(r.Context(), userID, targetID)
	if err != nil {
		respondError(w, h.Logger, "Block", err)
		return
	}
	respondData(w, http.StatusCreated, "block", block)
}

func (h *BlockHandler) Unblock(w http.ResponseWriter, r *http.Request) {
	targetID, ok := userIDParam(w, r)
	if !ok {
		return
	}
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	if err := h.BlockService.Unblock(r.Context(), userID, targetID); err != nil {
		respondError(w, h.Logger, "Unblock", err)
		return
	}
	respondMessage(w, http.StatusOK, "User unblocked successfully")
}

// ListBlocked — пользователи, которых заблокировал текущий
func (h *BlockHandler) ListBlocked(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	users, err := h.BlockService.ListBlocked(r.Context(), userID)
	if err != nil {
		respondError(w, h.Logger, "ListBlocked", err)
		return
	}
	respondList(w, "blockedUsers", users, len(users))
}

func userIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil || id <= 0 {
		respondMessage(w, http.StatusBadRequest, "Invalid user id")
		return 0, false
	}
	return id, true
}
