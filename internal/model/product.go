package model

import "time"

const DefaultProductImage = "default-product.jpg"

// Product — товар, добавленный пользователем под одним из брендов.
type Product struct {
	ID          string  `gorm:"primaryKey;type:uuid"`
	Name        string  `gorm:"not null;index:idx_products_name_brand,priority:1"`
	Description string  `gorm:"not null"`
	Price       float64 `gorm:"not null"`
	Category    string  `gorm:"not null;index"`

	BrandID string `gorm:"type:uuid;not null;index:idx_products_name_brand,priority:2"`
	Brand   *Brand `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	Image string `gorm:"not null;default:default-product.jpg"`

	AddedBy int64 `gorm:"not null;index"` // владелец, не меняется после создания
	Owner   *User `gorm:"foreignKey:AddedBy;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
