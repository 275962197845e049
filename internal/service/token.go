package service

import (
	"Catalog/internal/auth"
	"Catalog/internal/model"
	"Catalog/internal/repo"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TokenPair — выданные клиенту токены.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"` // секунды жизни access токена
}

// TokenService выдаёт access/refresh токены и ротирует refresh-сессии.
type TokenService struct {
	sessions   repo.SessionStore
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(sessions repo.SessionStore, secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{sessions: sessions, secret: secret, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// AccessTTL — время жизни access токена (для cookie).
func (s *TokenService) AccessTTL() time.Duration { return s.accessTTL }

// Issue создаёт новую refresh-сессию и пару токенов.
func (s *TokenService) Issue(ctx context.Context, userID int64) (TokenPair, error) {
	sessionID := uuid.NewString()
	access, err := auth.NewToken(auth.TypeAccess, userID, "", s.accessTTL, s.secret)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := auth.NewToken(auth.TypeRefresh, userID, sessionID, s.refreshTTL, s.secret)
	if err != nil {
		return TokenPair{}, err
	}
	err = s.sessions.Save(ctx, model.RefreshSession{
		ID:        sessionID,
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.refreshTTL),
	})
	if err != nil {
		return TokenPair{}, fmt.Errorf("save refresh session: %w", err)
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh, ExpiresIn: int64(s.accessTTL.Seconds())}, nil
}

// Refresh проверяет refresh токен, отзывает его сессию и выдаёт новую пару.
func (s *TokenService) Refresh(ctx context.Context, refreshToken string) (int64, TokenPair, error) {
	claims, err := auth.ParseToken(refreshToken, auth.TypeRefresh, s.secret)
	if err != nil || claims.ID == "" {
		return 0, TokenPair{}, ErrInvalidToken
	}
	userID, _ := claims.UserID()

	sess, err := s.sessions.Consume(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, repo.ErrSessionNotFound) {
			return 0, TokenPair{}, ErrInvalidToken
		}
		return 0, TokenPair{}, fmt.Errorf("consume refresh session: %w", err)
	}
	if sess.UserID != userID {
		return 0, TokenPair{}, ErrInvalidToken
	}

	pair, err := s.Issue(ctx, userID)
	if err != nil {
		return 0, TokenPair{}, err
	}
	return userID, pair, nil
}

// RevokeAll отзывает все refresh-сессии пользователя.
func (s *TokenService) RevokeAll(ctx context.Context, userID int64) error {
	if err := s.sessions.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("revoke sessions: %w", err)
	}
	return nil
}
