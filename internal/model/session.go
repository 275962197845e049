package model

import "time"

// RefreshSession — активная refresh-сессия; ID совпадает с jti refresh токена.
type RefreshSession struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	UserID    int64     `gorm:"not null;index"`
	User      *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
