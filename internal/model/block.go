package model

import "time"

// Block — направленное ребро «blocker заблокировал blocked».
// Товары blocker'а скрываются от blocked, но не наоборот.
type Block struct {
	ID        string `gorm:"primaryKey;type:uuid" json:"id"`
	BlockerID int64  `gorm:"not null;uniqueIndex:idx_blocks_pair,priority:1" json:"blocker"`
	BlockedID int64  `gorm:"not null;uniqueIndex:idx_blocks_pair,priority:2;index" json:"blocked"`

	Blocker *User `gorm:"foreignKey:BlockerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Blocked *User `gorm:"foreignKey:BlockedID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
