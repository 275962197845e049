package handlers

import (
	"Catalog/internal/config"
	"Catalog/internal/middleware"
	"Catalog/internal/model"
	"Catalog/internal/service"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// UserHandler — регистрация, вход, обновление токенов и профиль.
type UserHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
	Logger       *zap.SugaredLogger
	Config       *config.Config
}

func NewUserHandler(userService *service.UserService, tokenService *service.TokenService, logger *zap.SugaredLogger, config *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, TokenService: tokenService, Logger: logger, Config: config}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type profileUpdateRequest struct {
	Username     *string `json:"username"`
	Email        *string `json:"email"`
	ProfilePhoto *string `json:"profilePhoto"`
	Password     *string `json:"password"`
}

// authResponse — пользователь и выданные ему токены.
type authResponse struct {
	User model.PublicProfile `json:"user"`
	service.TokenPair
}

// Register регистрирует пользователя
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.Logger.Warnw("Register: invalid request body", "error", err)
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondError(w, h.Logger, "Register", err)
		return
	}
	h.Logger.Infow("user registered", "user_id", user.ID)
	h.issue(w, r, user, http.StatusCreated)
}

// Login авторизует пользователя по email и паролю
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Email == "" || req.Password == "" {
		respondMessage(w, http.StatusBadRequest, "Please provide email and password")
		return
	}

	user, err := h.UserService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, h.Logger, "Login", err)
		return
	}
	h.issue(w, r, user, http.StatusOK)
}

// RefreshToken меняет refresh токен на новую пару; старый больше не действует.
func (h *UserHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeJSON(w, r, &req); err != nil || req.RefreshToken == "" {
		respondMessage(w, http.StatusBadRequest, "Please provide a refresh token")
		return
	}

	userID, pair, err := h.TokenService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		respondError(w, h.Logger, "RefreshToken", err)
		return
	}
	if err := middleware.SetLoginCookie(w, userID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("RefreshToken: set cookie failed", "user_id", userID, "error", err)
	}
	respondData(w, http.StatusOK, "tokens", pair)
}

// Profile возвращает текущего пользователя
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	user, err := h.UserService.Profile(r.Context(), userID)
	if err != nil {
		respondError(w, h.Logger, "Profile", err)
		return
	}
	respondData(w, http.StatusOK, "user", user)
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	user, err := h.UserService.UpdateProfile(r.Context(), userID, service.ProfileUpdate{
		Username:     req.Username,
		Email:        req.Email,
		ProfilePhoto: req.ProfilePhoto,
		Password:     req.Password,
	})
	if err != nil {
		respondError(w, h.Logger, "UpdateProfile", err)
		return
	}
	respondData(w, http.StatusOK, "user", user)
}

// DeleteProfile удаляет аккаунт, его товары, блокировки и сессии.
func (h *UserHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	if err := h.TokenService.RevokeAll(r.Context(), userID); err != nil {
		respondError(w, h.Logger, "DeleteProfile", err)
		return
	}
	if err := h.UserService.DeleteAccount(r.Context(), userID); err != nil {
		respondError(w, h.Logger, "DeleteProfile", err)
		return
	}
	h.Logger.Infow("user deleted", "user_id", userID)
	middleware.ClearLoginCookie(w)
	respondNoContent(w)
}

// Home — приветствие и статус авторизации
func (h *UserHandler) Home(w http.ResponseWriter, r *http.Request) {
	if userID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		respondMessage(w, http.StatusOK, fmt.Sprintf("Welcome to the catalog API, user %d", userID))
		return
	}
	respondMessage(w, http.StatusOK, "Welcome to the catalog API")
}

func (h *UserHandler) issue(w http.ResponseWriter, r *http.Request, user *model.User, status int) {
	pair, err := h.TokenService.Issue(r.Context(), user.ID)
	if err != nil {
		respondError(w, h.Logger, "issue tokens", err)
		return
	}
	if err := middleware.SetLoginCookie(w, user.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("set cookie failed", "user_id", user.ID, "error", err)
		respondMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, status, envelope{Status: statusSuccess, Data: authResponse{User: user.Public(), TokenPair: pair}})
}
