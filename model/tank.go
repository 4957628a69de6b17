package model

import "time"

// TankState holds the per-user aquarium meters. Cleanliness and water
// quality are recomputed by the decay tick and reset by cleaning.
type TankState struct {
	UserID       string    `json:"user_id" gorm:"primaryKey"`
	Cleanliness  int       `json:"cleanliness" gorm:"default:85"`
	WaterQuality int       `json:"water_quality" gorm:"default:90"`
	LastCleaning time.Time `json:"last_cleaning"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// OwnedFish is a purchased fish living in a user's tank. Fish are never
// removed once acquired.
type OwnedFish struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	UserID       string    `json:"user_id" gorm:"index;not null"`
	SpeciesID    string    `json:"species_id" gorm:"not null"`
	Health       int       `json:"health" gorm:"default:100"`
	Happiness    int       `json:"happiness" gorm:"default:80"`
	Hunger       int       `json:"hunger" gorm:"default:30"`
	LastFed      time.Time `json:"last_fed"`
	LastCleaned  time.Time `json:"last_cleaned"`
	DateAcquired time.Time `json:"date_acquired"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
