package model

import "time"

type User struct {
	ID           string `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	LastLogin    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
