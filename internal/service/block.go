package service

import (
	"Catalog/internal/model"
	"Catalog/internal/repo"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BlockService управляет блокировками пользователей.
type BlockService struct {
	blocks repo.BlockRepository
	users  repo.UserRepository
	logger *zap.SugaredLogger
}

func NewBlockService(blocks repo.BlockRepository, users repo.UserRepository, logger *zap.SugaredLogger) *BlockService {
	return &BlockService{blocks: blocks, users: users, logger: logger}
}

// Block создаёт ребро actor -> target.
func (s *BlockService) Block(ctx context.Context, actorID, targetID int64) (*model.Block, error) {
	if actorID == targetID {
		return nil, ErrSelfBlock
	}
	if _, err := s.users.GetUserByID(ctx, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlockTargetNotFound
		}
		return nil, fmt.Errorf("load block target: %w", err)
	}

	block, created, err := s.blocks.CreateIfAbsent(ctx, actorID, targetID)
	if err != nil {
		return nil, fmt.Errorf("create block: %w", err)
	}
	if !created {
		return nil, ErrAlreadyBlocked
	}
	s.logger.Infow("user blocked", "blocker", actorID, "blocked", targetID)
	return block, nil
}

// Unblock удаляет ребро actor -> target.
func (s *BlockService) Unblock(ctx context.Context, actorID, targetID int64) error {
	deleted, err := s.blocks.Delete(ctx, actorID, targetID)
	if err != nil {
		return fmt.Errorf("delete block: %w", err)
	}
	if !deleted {
		return ErrNotBlocked
	}
	s.logger.Infow("user unblocked", "blocker", actorID, "blocked", targetID)
	return nil
}

// ListBlocked возвращает публичные профили заблокированных пользователей.
func (s *BlockService) ListBlocked(ctx context.Context, actorID int64) ([]model.PublicProfile, error) {
	blocks, err := s.blocks.ListByBlocker(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}
	profiles := make([]model.PublicProfile, 0, len(blocks))
	for _, b := range blocks {
		if b.Blocked == nil {
			// пользователь удалён, а ребро осталось — пропускаем
			continue
		}
		profiles = append(profiles, b.Blocked.Public())
	}
	return profiles, nil
}
