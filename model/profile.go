package model

import (
	"encoding/json"
	"time"
)

// UserProfile is the progression aggregate for one player. It is mutated
// only through the progression service; collection-valued fields are stored
// as JSON text columns.
type UserProfile struct {
	ID                     string `json:"id" gorm:"primaryKey"`
	UserID                 string `json:"user_id" gorm:"uniqueIndex;not null"`
	Username               string `json:"username" gorm:"not null"`
	TotalPointsEarned      int    `json:"total_points_earned" gorm:"default:0"`
	CurrentSpendablePoints int    `json:"current_spendable_points" gorm:"default:0"`
	CurrentLevel           int    `json:"current_level" gorm:"default:1"`
	// LevelProgress is the fraction of the way to the next level, in [0,1).
	LevelProgress      float64         `json:"level_progress" gorm:"default:0"`
	CertificatesEarned json.RawMessage `json:"certificates_earned" gorm:"type:text"`
	GamesPlayed        int             `json:"games_played" gorm:"default:0"`
	BestScores         json.RawMessage `json:"best_scores" gorm:"type:text"`
	Achievements       json.RawMessage `json:"achievements" gorm:"type:text"`
	JoinDate           time.Time       `json:"join_date"`
	LastActive         time.Time       `json:"last_active"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// Achievement is an unlocked achievement record, stored inside the profile's
// Achievements JSON column. Append-only.
type Achievement struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	UnlockedAt  time.Time `json:"unlocked_at"`
}
