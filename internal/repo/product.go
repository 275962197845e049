package repo

import (
	"Catalog/internal/model"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// validID — ключи товаров и брендов имеют тип uuid. Строка другого вида не совпадёт ни с одной записью,
// поэтому запрос в БД не выполняется.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// SortField — одно поле сортировки (Column — имя колонки в БД).
type SortField struct {
	Column string
	Desc   bool
}

// ProductFilter — параметры выборки товаров. Nil/пустые поля не применяются.
type ProductFilter struct {
	BrandID  *string
	Category *string
	MinPrice *float64
	MaxPrice *float64
	AddedBy  *int64
	// ExcludeOwners — владельцы, чьи товары нужно скрыть (фильтр видимости).
	ExcludeOwners []int64
	Sort          []SortField
}

// ProductRepository — доступ к товарам.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	// GetByID возвращает товар с подгруженными брендом и владельцем.
	GetByID(ctx context.Context, id string) (*model.Product, error)
	Update(ctx context.Context, id string, updates map[string]any) (*model.Product, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ProductFilter) ([]model.Product, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error
}

func (r *productRepo) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if !validID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var p model.Product
	err := r.db.WithContext(ctx).
		Preload("Brand").
		Preload("Owner").
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) Update(ctx context.Context, id string, updates map[string]any) (*model.Product, error) {
	if !validID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	if len(updates) > 0 {
		tx := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Updates(updates)
		if tx.Error != nil {
			return nil, tx.Error
		}
		if tx.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetByID(ctx, id)
}

func (r *productRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return gorm.ErrRecordNotFound
	}
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Product{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productRepo) List(ctx context.Context, f ProductFilter) ([]model.Product, error) {
	if f.BrandID != nil && !validID(*f.BrandID) {
		return []model.Product{}, nil
	}
	query := r.db.WithContext(ctx).Model(&model.Product{}).Preload("Brand")

	if len(f.ExcludeOwners) > 0 {
		query = query.Where("added_by NOT IN ?", f.ExcludeOwners)
	}
	if f.AddedBy != nil {
		query = query.Where("added_by = ?", *f.AddedBy)
	}
	if f.BrandID != nil {
		query = query.Where("brand_id = ?", *f.BrandID)
	}
	if f.Category != nil {
		query = query.Where("category = ?", *f.Category)
	}
	if f.MinPrice != nil {
		query = query.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		query = query.Where("price <= ?", *f.MaxPrice)
	}

	if len(f.Sort) == 0 {
		query = query.Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true})
	}
	for _, s := range f.Sort {
		query = query.Order(clause.OrderByColumn{Column: clause.Column{Name: s.Column}, Desc: s.Desc})
	}

	var products []model.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
