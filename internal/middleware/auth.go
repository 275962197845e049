package middleware

import (
	"Catalog/internal/auth"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

type ctxKey string

const (
	userIDKey ctxKey = "user_id"

	// AuthCookieName — cookie с access токеном.
	AuthCookieName = "auth_token"
)

var cookieTTL = 15 * time.Minute

// SetCookieTTL задаёт время жизни cookie и access токена внутри неё.
func SetCookieTTL(ttl time.Duration) {
	if ttl > 0 {
		cookieTTL = ttl
	}
}

// WithAuth кладёт user_id в контекст, если запрос несёт валидный access токен
// (заголовок Authorization: Bearer или cookie auth_token). Без токена запрос идёт дальше анонимным.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			claims, err := auth.ParseToken(token, auth.TypeAccess, secret)
			if err != nil {
				log.Debugw("auth: token rejected", "error", err)
				next.ServeHTTP(w, r)
				return
			}
			userID, _ := claims.UserID()
			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth отвечает 401, если WithAuth не нашёл пользователя.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserIDFromContext(r.Context()); !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"status":  "fail",
				"message": "You are not logged in. Please log in to get access",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SetLoginCookie выписывает access токен и кладёт его в cookie auth_token.
func SetLoginCookie(w http.ResponseWriter, userID int64, secret string) error {
	token, err := auth.NewToken(auth.TypeAccess, userID, "", cookieTTL, secret)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(cookieTTL),
	})
	return nil
}

// ClearLoginCookie удаляет cookie авторизации.
func ClearLoginCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// GetUserIDFromContext достаёт user_id, положенный WithAuth.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok && id > 0
}

func tokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if scheme, token, ok := strings.Cut(h, " "); ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	if c, err := r.Cookie(AuthCookieName); err == nil {
		return c.Value
	}
	return ""
}
