package model

import "time"

const DefaultBrandLogo = "default-brand-logo.jpg"

// Brand — бренд со списком допустимых категорий товаров.
type Brand struct {
	ID         string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name       string    `gorm:"uniqueIndex;not null" json:"name"`
	Logo       string    `gorm:"not null;default:default-brand-logo.jpg" json:"logo"`
	Categories []string  `gorm:"serializer:json;not null" json:"categories"`
	CreatedBy  *int64    `gorm:"index" json:"createdBy,omitempty"` // может отсутствовать у старых брендов
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// HasCategory проверяет, входит ли категория в список бренда.
func (b *Brand) HasCategory(category string) bool {
	for _, c := range b.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// BrandSummary — урезанное представление бренда внутри товара.
type BrandSummary struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
}
