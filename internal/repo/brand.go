package repo

import (
	"Catalog/internal/model"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrDuplicateBrandName — бренд с таким именем уже есть (сработал уникальный индекс).
var ErrDuplicateBrandName = errors.New("duplicate brand name")

// BrandRepository — доступ к брендам.
type BrandRepository interface {
	// Create возвращает ErrDuplicateBrandName, если имя уже занято.
	Create(ctx context.Context, b *model.Brand) error
	GetByID(ctx context.Context, id string) (*model.Brand, error)
	GetByName(ctx context.Context, name string) (*model.Brand, error)
	List(ctx context.Context) ([]model.Brand, error)
	Update(ctx context.Context, id string, updates map[string]any) (*model.Brand, error)
	// ReplaceCategories полностью заменяет список категорий бренда.
	ReplaceCategories(ctx context.Context, id string, categories []string) (*model.Brand, error)
	Delete(ctx context.Context, id string) error
	// CountProducts — сколько товаров ссылается на бренд.
	CountProducts(ctx context.Context, id string) (int64, error)
}

type brandRepo struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) BrandRepository {
	return &brandRepo{db: db}
}

func (r *brandRepo) Create(ctx context.Context, b *model.Brand) error {
	if b.Categories == nil {
		b.Categories = []string{}
	}
	tx := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(b)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrDuplicateBrandName
	}
	return nil
}

func (r *brandRepo) GetByID(ctx context.Context, id string) (*model.Brand, error) {
	if !validID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var b model.Brand
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *brandRepo) GetByName(ctx context.Context, name string) (*model.Brand, error) {
	var b model.Brand
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *brandRepo) List(ctx context.Context) ([]model.Brand, error) {
	var brands []model.Brand
	err := r.db.WithContext(ctx).Order("name ASC").Find(&brands).Error
	return brands, err
}

// Update применяет изменения в одной транзакции: категории и остальные поля меняются вместе или не меняются вовсе.
func (r *brandRepo) Update(ctx context.Context, id string, updates map[string]any) (*model.Brand, error) {
	if !validID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	if len(updates) > 0 {
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			// serializer:json не срабатывает для map-обновлений
			if cats, ok := updates["categories"]; ok {
				delete(updates, "categories")
				if err := replaceCategories(tx, id, cats.([]string)); err != nil {
					return err
				}
			}
			if len(updates) == 0 {
				return nil
			}
			res := tx.Model(&model.Brand{}).Where("id = ?", id).Updates(updates)
			if res.Error != nil {
				return translateBrandErr(res.Error)
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, id)
}

func (r *brandRepo) ReplaceCategories(ctx context.Context, id string, categories []string) (*model.Brand, error) {
	if !validID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	if err := replaceCategories(r.db.WithContext(ctx), id, categories); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func replaceCategories(db *gorm.DB, id string, categories []string) error {
	if categories == nil {
		categories = []string{}
	}
	tx := db.Model(&model.Brand{ID: id}).
		Select("categories").
		Updates(&model.Brand{Categories: categories})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// translateBrandErr сводит нарушение уникальности имени к ErrDuplicateBrandName.
// Postgres отдаёт gorm.ErrDuplicatedKey (TranslateError), SQLite — текст ошибки ограничения.
func translateBrandErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed: brands.name") {
		return ErrDuplicateBrandName
	}
	return err
}

func (r *brandRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return gorm.ErrRecordNotFound
	}
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Brand{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *brandRepo) CountProducts(ctx context.Context, id string) (int64, error) {
	if !validID(id) {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Where("brand_id = ?", id).Count(&count).Error
	return count, err
}
