package dto

import (
	"time"

	"github.com/aquasnap/aqua_api/model"
)

// ProfileResponse is the public view of a user profile with the JSON
// columns decoded.
type ProfileResponse struct {
	UserID                 string              `json:"user_id"`
	Username               string              `json:"username"`
	TotalPointsEarned      int                 `json:"total_points_earned"`
	CurrentSpendablePoints int                 `json:"current_spendable_points"`
	CurrentLevel           int                 `json:"current_level"`
	LevelProgress          float64             `json:"level_progress"`
	CertificatesEarned     []string            `json:"certificates_earned"`
	GamesPlayed            int                 `json:"games_played"`
	BestScores             map[string]int      `json:"best_scores"`
	Achievements           []model.Achievement `json:"achievements"`
	JoinDate               time.Time           `json:"join_date"`
	LastActive             time.Time           `json:"last_active"`
	// Rank is the user's current leaderboard position, 0 when unranked.
	Rank int `json:"rank,omitempty"`
}

// ProgressResult reports what changed when a game result was applied.
type ProgressResult struct {
	Profile         *ProfileResponse    `json:"profile"`
	LeveledUp       bool                `json:"leveled_up"`
	NewAchievements []model.Achievement `json:"new_achievements"`
	NewBestScore    bool                `json:"new_best_score"`
}

type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Points   int    `json:"points"`
	Level    int    `json:"level"`
}
