package repo

import (
	"Catalog/internal/model"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BlockRepository — хранилище рёбер блокировки blocker -> blocked.
type BlockRepository interface {
	// CreateIfAbsent создаёт ребро. Если оно уже есть — ничего не делает.
	// Возвращает created=true если запись была создана в этой операции.
	CreateIfAbsent(ctx context.Context, blockerID, blockedID int64) (block *model.Block, created bool, err error)
	// Delete удаляет ребро; deleted=false если его не было.
	Delete(ctx context.Context, blockerID, blockedID int64) (deleted bool, err error)
	Exists(ctx context.Context, blockerID, blockedID int64) (bool, error)
	// ListByBlocker возвращает исходящие рёбра с подгруженными заблокированными пользователями.
	ListByBlocker(ctx context.Context, blockerID int64) ([]model.Block, error)
	// BlockerIDs возвращает всех, кто заблокировал пользователя blockedID.
	BlockerIDs(ctx context.Context, blockedID int64) ([]int64, error)
}

type blockRepo struct {
	db *gorm.DB
}

func NewBlockRepository(db *gorm.DB) BlockRepository {
	return &blockRepo{db: db}
}

// Уникальный индекс (blocker_id, blocked_id) + ON CONFLICT DO NOTHING закрывают гонку двух одновременных блокировок.
func (r *blockRepo) CreateIfAbsent(ctx context.Context, blockerID, blockedID int64) (*model.Block, bool, error) {
	b := &model.Block{ID: uuid.NewString(), BlockerID: blockerID, BlockedID: blockedID}
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "blocker_id"}, {Name: "blocked_id"}},
		DoNothing: true,
	}).Create(b)
	if tx.Error != nil {
		return nil, false, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, false, nil
	}
	return b, true, nil
}

func (r *blockRepo) Delete(ctx context.Context, blockerID, blockedID int64) (bool, error) {
	tx := r.db.WithContext(ctx).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&model.Block{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *blockRepo) Exists(ctx context.Context, blockerID, blockedID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Block{}).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Count(&count).Error
	return count > 0, err
}

func (r *blockRepo) ListByBlocker(ctx context.Context, blockerID int64) ([]model.Block, error) {
	var blocks []model.Block
	err := r.db.WithContext(ctx).
		Preload("Blocked").
		Where("blocker_id = ?", blockerID).
		Order("created_at DESC").
		Find(&blocks).Error
	return blocks, err
}

func (r *blockRepo) BlockerIDs(ctx context.Context, blockedID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&model.Block{}).
		Where("blocked_id = ?", blockedID).
		Pluck("blocker_id", &ids).Error
	return ids, err
}
