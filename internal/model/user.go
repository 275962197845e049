package model

import "time"

const DefaultProfilePhoto = "default-user.jpg"

// User — учётная запись пользователя каталога.
type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Password     string    `gorm:"not null" json:"-"` // bcrypt-хеш
	ProfilePhoto string    `gorm:"not null;default:default-user.jpg" json:"profilePhoto"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// PublicProfile — то, что видят другие пользователи (например, в списке заблокированных).
type PublicProfile struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	ProfilePhoto string `json:"profilePhoto"`
}

func (u *User) Public() PublicProfile {
	return PublicProfile{ID: u.ID, Username: u.Username, Email: u.Email, ProfilePhoto: u.ProfilePhoto}
}
