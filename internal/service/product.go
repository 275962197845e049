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

// ProductService — каталог товаров с учётом блокировок.
type ProductService struct {
	products   repo.ProductRepository
	brands     repo.BrandRepository
	visibility *VisibilityFilter
	logger     *zap.SugaredLogger
}

func NewProductService(
	products repo.ProductRepository,
	brands repo.BrandRepository,
	visibility *VisibilityFilter,
	logger *zap.SugaredLogger,
) *ProductService {
	return &ProductService{products: products, brands: brands, visibility: visibility, logger: logger}
}

// ProductInput — данные для создания товара.
type ProductInput struct {
	Name        string
	Description string
	Price       *float64
	Category    string
	BrandID     string
	Image       string
}

// ProductUpdate — частичное обновление; владелец товара не меняется.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	BrandID     *string
	Image       *string
}

// ListQuery — необязательные условия выборки из query-параметров.
type ListQuery struct {
	BrandID  *string
	Category *string
	MinPrice *float64
	MaxPrice *float64
	// Sort — поля через запятую, "-" в начале означает убывание. Пусто — сначала новые.
	Sort string
}

// sortColumns — разрешённые поля сортировки и их колонки.
var sortColumns = map[string]string{
	"name":        "name",
	"price":       "price",
	"category":    "category",
	"description": "description",
	"createdAt":   "created_at",
	"created_at":  "created_at",
	"updatedAt":   "updated_at",
	"updated_at":  "updated_at",
}

// ParseSort разбирает "price,-createdAt" в список полей сортировки.
func ParseSort(raw string) ([]repo.SortField, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var fields []repo.SortField
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		desc := strings.HasPrefix(part, "-")
		name := strings.TrimPrefix(strings.TrimPrefix(part, "-"), "+")
		col, ok := sortColumns[name]
		if !ok {
			return nil, invalid(fmt.Sprintf("Cannot sort by %q", name))
		}
		fields = append(fields, repo.SortField{Column: col, Desc: desc})
	}
	return fields, nil
}

func (s *ProductService) Create(ctx context.Context, actorID int64, in ProductInput) (*model.Product, error) {
	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		return nil, invalid("Product name is required")
	case strings.TrimSpace(in.Description) == "":
		return nil, invalid("Product description is required")
	case in.Price == nil:
		return nil, invalid("Product price is required")
	case *in.Price < 0:
		return nil, invalid("Price cannot be negative")
	case in.Category == "":
		return nil, invalid("Product category is required")
	case in.BrandID == "":
		return nil, invalid("Product brand is required")
	}

	brand, err := s.brandForWrite(ctx, in.BrandID, in.Category)
	if err != nil {
		return nil, err
	}

	image := strings.TrimSpace(in.Image)
	if image == "" {
		image = model.DefaultProductImage
	}
	p := &model.Product{
		ID:          uuid.NewString(),
		Name:        name,
		Description: in.Description,
		Price:       *in.Price,
		Category:    in.Category,
		BrandID:     brand.ID,
		Image:       image,
		AddedBy:     actorID,
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	p.Brand = brand
	s.logger.Infow("product created", "product_id", p.ID, "brand_id", brand.ID, "user_id", actorID)
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, actorID int64, id string, upd ProductUpdate) (*model.Product, error) {
	current, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.AddedBy != actorID {
		return nil, ErrProductEditForbidden
	}

	updates := map[string]any{}
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, invalid("Product name is required")
		}
		updates["name"] = name
	}
	if upd.Description != nil {
		if strings.TrimSpace(*upd.Description) == "" {
			return nil, invalid("Product description is required")
		}
		updates["description"] = *upd.Description
	}
	if upd.Price != nil {
		if *upd.Price < 0 {
			return nil, invalid("Price cannot be negative")
		}
		updates["price"] = *upd.Price
	}
	if upd.Image != nil {
		image := strings.TrimSpace(*upd.Image)
		if image == "" {
			image = model.DefaultProductImage
		}
		updates["image"] = image
	}

	// при смене бренда или категории инвариант «категория из бренда» проверяется заново
	if upd.BrandID != nil || upd.Category != nil {
		brandID, category := current.BrandID, current.Category
		if upd.BrandID != nil {
			brandID = *upd.BrandID
		}
		if upd.Category != nil {
			category = *upd.Category
		}
		if category == "" {
			return nil, invalid("Product category is required")
		}
		if _, err := s.brandForWrite(ctx, brandID, category); err != nil {
			return nil, err
		}
		updates["brand_id"] = brandID
		updates["category"] = category
	}

	p, err := s.products.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, actorID int64, id string) error {
	current, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if current.AddedBy != actorID {
		return ErrProductDeleteForbidden
	}
	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("delete product: %w", err)
	}
	s.logger.Infow("product deleted", "product_id", id, "user_id", actorID)
	return nil
}

// Get возвращает товар; если владелец заблокировал зрителя — ErrProductHidden, а не «не найден».
func (s *ProductService) Get(ctx context.Context, viewerID int64, id string) (*model.Product, error) {
	p, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	ok, err := s.visibility.CanView(ctx, viewerID, p.AddedBy)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrProductHidden
	}
	return p, nil
}

// List — все товары с фильтрами запроса и фильтром видимости.
func (s *ProductService) List(ctx context.Context, viewerID int64, q ListQuery) ([]model.Product, error) {
	f, err := buildFilter(q)
	if err != nil {
		return nil, err
	}
	return s.listVisible(ctx, viewerID, f)
}

func (s *ProductService) ListByBrand(ctx context.Context, viewerID int64, brandID string) ([]model.Product, error) {
	return s.listVisible(ctx, viewerID, repo.ProductFilter{BrandID: &brandID})
}

func (s *ProductService) ListByCategory(ctx context.Context, viewerID int64, brandID, category string) ([]model.Product, error) {
	return s.listVisible(ctx, viewerID, repo.ProductFilter{BrandID: &brandID, Category: &category})
}

// ListMine — товары самого пользователя; фильтр видимости не нужен.
func (s *ProductService) ListMine(ctx context.Context, actorID int64, q ListQuery) ([]model.Product, error) {
	f, err := buildFilter(q)
	if err != nil {
		return nil, err
	}
	f.AddedBy = &actorID
	products, err := s.products.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list own products: %w", err)
	}
	return products, nil
}

func (s *ProductService) listVisible(ctx context.Context, viewerID int64, f repo.ProductFilter) ([]model.Product, error) {
	if err := s.visibility.Apply(ctx, viewerID, &f); err != nil {
		return nil, err
	}
	products, err := s.products.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func buildFilter(q ListQuery) (repo.ProductFilter, error) {
	sort, err := ParseSort(q.Sort)
	if err != nil {
		return repo.ProductFilter{}, err
	}
	if q.MinPrice != nil && q.MaxPrice != nil && *q.MinPrice > *q.MaxPrice {
		return repo.ProductFilter{}, invalid("minPrice cannot be greater than maxPrice")
	}
	return repo.ProductFilter{
		BrandID:  q.BrandID,
		Category: q.Category,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
		Sort:     sort,
	}, nil
}

func (s *ProductService) load(ctx context.Context, id string) (*model.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("load product: %w", err)
	}
	return p, nil
}

// brandForWrite находит бренд и проверяет, что категория входит в его список.
func (s *ProductService) brandForWrite(ctx context.Context, brandID, category string) (*model.Brand, error) {
	brand, err := s.brands.GetByID(ctx, brandID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandDoesNotExist
		}
		return nil, fmt.Errorf("load brand: %w", err)
	}
	if !brand.HasCategory(category) {
		return nil, ErrCategoryNotInBrand
	}
	return brand, nil
}
