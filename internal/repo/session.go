package repo

import (
	"Catalog/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrSessionNotFound — сессии нет, она отозвана или истекла.
var ErrSessionNotFound = errors.New("refresh session not found")

// SessionStore хранит активные refresh-сессии.
type SessionStore interface {
	Save(ctx context.Context, s model.RefreshSession) error
	// Consume атомарно забирает сессию: повторный вызов с тем же id вернёт ErrSessionNotFound.
	Consume(ctx context.Context, id string) (*model.RefreshSession, error)
	DeleteByUser(ctx context.Context, userID int64) error
}

type gormSessionStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewSessionStore создаёт хранилище сессий поверх основной БД.
func NewSessionStore(db *gorm.DB) SessionStore {
	return &gormSessionStore{db: db, now: time.Now}
}

func (s *gormSessionStore) Save(ctx context.Context, sess model.RefreshSession) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Create(&sess).Error
}

func (s *gormSessionStore) Consume(ctx context.Context, id string) (*model.RefreshSession, error) {
	var sess model.RefreshSession
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&sess).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}
			return err
		}
		// RowsAffected == 0 — сессию уже забрал параллельный запрос
		res := tx.Where("id = ?", id).Delete(&model.RefreshSession{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrSessionNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !sess.ExpiresAt.After(s.now()) {
		return nil, ErrSessionNotFound
	}
	return &sess, nil
}

func (s *gormSessionStore) DeleteByUser(ctx context.Context, userID int64) error {
	return s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.RefreshSession{}).Error
}
