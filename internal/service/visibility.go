package service

import (
	"Catalog/internal/repo"
	"context"
	"fmt"
)

// Anonymous — id зрителя без авторизации; фильтр видимости к нему не применяется.
const Anonymous int64 = 0

// VisibilityFilter скрывает от зрителя товары тех, кто его заблокировал.
type VisibilityFilter struct {
	blocks repo.BlockRepository
}

func NewVisibilityFilter(blocks repo.BlockRepository) *VisibilityFilter {
	return &VisibilityFilter{blocks: blocks}
}

// ExcludedOwners возвращает владельцев, заблокировавших зрителя.
func (v *VisibilityFilter) ExcludedOwners(ctx context.Context, viewerID int64) ([]int64, error) {
	if viewerID == Anonymous {
		return nil, nil
	}
	ids, err := v.blocks.BlockerIDs(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("load blockers of %d: %w", viewerID, err)
	}
	return ids, nil
}

// Apply добавляет в выборку условие «владелец не из списка». Пустой список запрос не меняет.
func (v *VisibilityFilter) Apply(ctx context.Context, viewerID int64, f *repo.ProductFilter) error {
	ids, err := v.ExcludedOwners(ctx, viewerID)
	if err != nil {
		return err
	}
	if len(ids) > 0 {
		f.ExcludeOwners = ids
	}
	return nil
}

// CanView — проверка для одного товара: false, если владелец заблокировал зрителя.
func (v *VisibilityFilter) CanView(ctx context.Context, viewerID, ownerID int64) (bool, error) {
	if viewerID == Anonymous || viewerID == ownerID {
		return true, nil
	}
	blocked, err := v.blocks.Exists(ctx, ownerID, viewerID)
	if err != nil {
		return false, fmt.Errorf("check block %d->%d: %w", ownerID, viewerID, err)
	}
	return !blocked, nil
}
