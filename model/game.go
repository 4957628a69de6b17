package model

import "time"

// Question is a generated quiz question. The answer never leaves the server;
// correctness is decided by exact match against CorrectAnswer.
type Question struct {
	ID            string   `json:"id"`
	Prompt        string   `json:"prompt"`
	ImageURL      string   `json:"image_url,omitempty"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"-"`
	Points        int      `json:"points"`
	Explanation   string   `json:"explanation,omitempty"`
	Category      string   `json:"category,omitempty"`
}

// TimeBonusTier awards Bonus points when at least MinRemaining is left on the
// question timer at answer time. Tiers are ordered highest threshold first.
type TimeBonusTier struct {
	MinRemaining time.Duration `json:"min_remaining"`
	Bonus        int           `json:"bonus"`
}

// GameConfig parameterizes the shared quiz state machine for one game type.
type GameConfig struct {
	Type            string          `json:"type"`
	Name            string          `json:"name"`
	QuestionCount   int             `json:"question_count"`
	TimePerQuestion time.Duration   `json:"time_per_question"`
	// BasePoints is the flat award per correct answer. Zero means the award
	// is per-question (difficulty-scaled), carried on Question.Points.
	BasePoints     int             `json:"base_points"`
	StreakStep     int             `json:"streak_step"`
	TimeBonusTiers []TimeBonusTier `json:"time_bonus_tiers"`
	RevealDelay    time.Duration   `json:"reveal_delay"`
}
