package service

import (
	"Catalog/internal/model"
	"Catalog/internal/repo"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BrandService — CRUD брендов и их категорий.
type BrandService struct {
	brands repo.BrandRepository
	logger *zap.SugaredLogger
}

func NewBrandService(brands repo.BrandRepository, logger *zap.SugaredLogger) *BrandService {
	return &BrandService{brands: brands, logger: logger}
}

// BrandInput — данные для создания бренда.
type BrandInput struct {
	Name       string
	Logo       string
	Categories []string
}

// BrandUpdate — частичное обновление; nil-поля не трогаются.
type BrandUpdate struct {
	Name       *string
	Logo       *string
	Categories *[]string
}

func (s *BrandService) List(ctx context.Context) ([]model.Brand, error) {
	brands, err := s.brands.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	return brands, nil
}

func (s *BrandService) Get(ctx context.Context, id string) (*model.Brand, error) {
	b, err := s.brands.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, fmt.Errorf("load brand: %w", err)
	}
	return b, nil
}

func (s *BrandService) Create(ctx context.Context, actorID int64, in BrandInput) (*model.Brand, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, invalid("Brand name is required")
	}
	categories, err := NormalizeCategories(in.Categories)
	if err != nil {
		return nil, err
	}
	if err := s.ensureNameFree(ctx, name, ""); err != nil {
		return nil, err
	}

	logo := strings.TrimSpace(in.Logo)
	if logo == "" {
		logo = model.DefaultBrandLogo
	}
	b := &model.Brand{
		ID:         uuid.NewString(),
		Name:       name,
		Logo:       logo,
		Categories: categories,
	}
	if actorID != Anonymous {
		b.CreatedBy = &actorID
	}
	if err := s.brands.Create(ctx, b); err != nil {
		// имя могли занять между проверкой и вставкой
		if errors.Is(err, repo.ErrDuplicateBrandName) {
			return nil, ErrBrandNameTaken
		}
		return nil, fmt.Errorf("create brand: %w", err)
	}
	s.logger.Infow("brand created", "brand_id", b.ID, "name", b.Name, "user_id", actorID)
	return b, nil
}

func (s *BrandService) Update(ctx context.Context, actorID int64, id string, upd BrandUpdate) (*model.Brand, error) {
	if _, err := s.ownedBrand(ctx, actorID, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, invalid("Brand name is required")
		}
		if err := s.ensureNameFree(ctx, name, id); err != nil {
			return nil, err
		}
		updates["name"] = name
	}
	if upd.Logo != nil {
		logo := strings.TrimSpace(*upd.Logo)
		if logo == "" {
			logo = model.DefaultBrandLogo
		}
		updates["logo"] = logo
	}
	if upd.Categories != nil {
		categories, err := NormalizeCategories(*upd.Categories)
		if err != nil {
			return nil, err
		}
		updates["categories"] = categories
	}

	b, err := s.brands.Update(ctx, id, updates)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrBrandNotFound
		case errors.Is(err, repo.ErrDuplicateBrandName):
			return nil, ErrBrandNameTaken
		}
		return nil, fmt.Errorf("update brand: %w", err)
	}
	return b, nil
}

// ReplaceCategories заменяет список категорий целиком (не сливает).
func (s *BrandService) ReplaceCategories(ctx context.Context, actorID int64, id string, categories []string) (*model.Brand, error) {
	if _, err := s.ownedBrand(ctx, actorID, id); err != nil {
		return nil, err
	}
	normalized, err := NormalizeCategories(categories)
	if err != nil {
		return nil, err
	}
	b, err := s.brands.ReplaceCategories(ctx, id, normalized)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, fmt.Errorf("replace categories: %w", err)
	}
	return b, nil
}

// Delete удаляет бренд, если на него не ссылается ни один товар.
func (s *BrandService) Delete(ctx context.Context, actorID int64, id string) error {
	if _, err := s.ownedBrand(ctx, actorID, id); err != nil {
		return err
	}
	n, err := s.brands.CountProducts(ctx, id)
	if err != nil {
		return fmt.Errorf("count brand products: %w", err)
	}
	if n > 0 {
		return ErrBrandHasProducts
	}
	if err := s.brands.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBrandNotFound
		}
		return fmt.Errorf("delete brand: %w", err)
	}
	s.logger.Infow("brand deleted", "brand_id", id, "user_id", actorID)
	return nil
}

// ownedBrand загружает бренд и проверяет право на изменение.
// Бренды без создателя может менять любой авторизованный пользователь.
func (s *BrandService) ownedBrand(ctx context.Context, actorID int64, id string) (*model.Brand, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.CreatedBy != nil && *b.CreatedBy != actorID {
		return nil, ErrBrandForbidden
	}
	return b, nil
}

func (s *BrandService) ensureNameFree(ctx context.Context, name, selfID string) error {
	existing, err := s.brands.GetByName(ctx, name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check brand name: %w", err)
	}
	if existing != nil && existing.ID != selfID {
		return ErrBrandNameTaken
	}
	return nil
}

// NormalizeCategories обрезает пробелы, отбрасывает дубликаты (сохраняя порядок) и запрещает пустые строки.
func NormalizeCategories(in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, c := range in {
		c = strings.TrimSpace(c)
		if c == "" {
			return nil, invalid("Categories must be non-empty strings")
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out, nil
}
