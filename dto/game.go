package dto

import "github.com/aquasnap/aqua_api/model"

type StartGameRequest struct {
	GameType string `json:"game_type" validate:"required"`
}

type AnswerRequest struct {
	QuestionIndex int    `json:"question_index" validate:"min=0"`
	Answer        string `json:"answer" validate:"required"`
}

// QuestionView is a question as exposed to the client. The correct answer is
// only populated during the reveal phase.
type QuestionView struct {
	ID            string   `json:"id"`
	Prompt        string   `json:"prompt"`
	ImageURL      string   `json:"image_url,omitempty"`
	Options       []string `json:"options"`
	Points        int      `json:"points"`
	CorrectAnswer string   `json:"correct_answer,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`
}

// SessionState is the authoritative snapshot of a running game session.
type SessionState struct {
	SessionID     string        `json:"session_id"`
	GameType      string        `json:"game_type"`
	Phase         string        `json:"phase"`
	QuestionIndex int           `json:"question_index"`
	QuestionCount int           `json:"question_count"`
	Question      *QuestionView `json:"question,omitempty"`
	// TimeRemaining is milliseconds left on the current question timer.
	TimeRemaining int64 `json:"time_remaining"`
	Score         int   `json:"score"`
	Streak        int   `json:"streak"`
	CorrectCount  int   `json:"correct_count"`
}

// AnswerResult is returned from an answer submission. Accepted is false when
// the question deadline had already passed; the timeout stands.
type AnswerResult struct {
	Accepted bool          `json:"accepted"`
	Correct  bool          `json:"correct"`
	Awarded  int           `json:"awarded"`
	Streak   int           `json:"streak"`
	Session  *SessionState `json:"session"`
}

// FinishResult is the terminal summary of a session, including the
// progression changes it produced.
type FinishResult struct {
	SessionID    string          `json:"session_id"`
	GameType     string          `json:"game_type"`
	Score        int             `json:"score"`
	CorrectCount int             `json:"correct_count"`
	Progress     *ProgressResult `json:"progress,omitempty"`
}

type GameConfigView struct {
	Type            string `json:"type"`
	Name            string `json:"name"`
	QuestionCount   int    `json:"question_count"`
	TimePerQuestion int64  `json:"time_per_question_ms"`
	BasePoints      int    `json:"base_points"`
}

func NewGameConfigView(cfg model.GameConfig) GameConfigView {
	return GameConfigView{
		Type:            cfg.Type,
		Name:            cfg.Name,
		QuestionCount:   cfg.QuestionCount,
		TimePerQuestion: cfg.TimePerQuestion.Milliseconds(),
		BasePoints:      cfg.BasePoints,
	}
}
