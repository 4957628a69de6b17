package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aquasnap/aqua_api/dto"
	"github.com/aquasnap/aqua_api/model"
)

type fakeQuestionSource struct {
	cfg model.GameConfig
}

func (f *fakeQuestionSource) GameConfig(gameType string) (model.GameConfig, error) {
	if gameType != f.cfg.Type {
		return model.GameConfig{}, fmt.Errorf("unknown game type: %s", gameType)
	}
	return f.cfg, nil
}

func (f *fakeQuestionSource) GenerateQuestions(gameType string) ([]model.Question, error) {
	questions := make([]model.Question, f.cfg.QuestionCount)
	for i := range questions {
		questions[i] = model.Question{
			ID:            fmt.Sprintf("q-%d", i),
			Prompt:        fmt.Sprintf("Question %d", i),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: "A",
		}
	}
	return questions, nil
}

type fakeReporter struct {
	fail     bool
	attempts int
	calls    int // successful reports
	userID   string
	score    int
}

func (f *fakeReporter) UpdateUserProgress(userID, gameType string, score int) (*dto.ProgressResult, error) {
	f.attempts++
	if f.fail {
		return nil, errors.New("profile store down")
	}
	f.calls++
	f.userID = userID
	f.score = score
	return &dto.ProgressResult{}, nil
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestGame(rep *fakeReporter, clock *fakeClock) *GameService {
	src := &fakeQuestionSource{cfg: model.GameConfig{
		Type:            "reef_quiz",
		Name:            "Reef Quiz",
		QuestionCount:   3,
		TimePerQuestion: 30 * time.Second,
		BasePoints:      60,
		StreakStep:      30,
		TimeBonusTiers: []model.TimeBonusTier{
			{MinRemaining: 20 * time.Second, Bonus: 25},
			{MinRemaining: 10 * time.Second, Bonus: 15},
		},
		RevealDelay: 2 * time.Second,
	}}
	return &GameService{
		questions: src,
		reporter:  rep,
		now:       func() time.Time { return clock.t },
		sessions:  map[string]*gameSession{},
		byUser:    map[string]string{},
	}
}

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func TestStartGameHidesAnswer(t *testing.T) {
	clock := newClock()
	svc := newTestGame(&fakeReporter{}, clock)

	state, err := svc.StartGame("u1", "reef_quiz")
	if err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	if state.Phase != PhaseInProgress {
		t.Errorf("phase = %s, want %s", state.Phase, PhaseInProgress)
	}
	if state.Question == nil || state.Question.CorrectAnswer != "" {
		t.Errorf("answer leaked before reveal: %+v", state.Question)
	}
	if state.TimeRemaining != (30 * time.Second).Milliseconds() {
		t.Errorf("time remaining = %d ms", state.TimeRemaining)
	}
}

func TestStartGameRejectsUnknownType(t *testing.T) {
	svc := newTestGame(&fakeReporter{}, newClock())

	if _, err := svc.StartGame("u1", "fish_rescue"); err == nil {
		t.Fatal("expected error for unknown game type")
	}
}

func TestAnswerAwardsBaseAndTimeBonus(t *testing.T) {
	clock := newClock()
	svc := newTestGame(&fakeReporter{}, clock)

	state, _ := svc.StartGame("u1", "reef_quiz")
	clock.advance(5 * time.Second)

	result, err := svc.Answer("u1", state.SessionID, 0, "A")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if !result.Accepted || !result.Correct {
		t.Fatalf("result = %+v, want accepted and correct", result)
	}
	// 60 base plus 25 for answering with more than 20s left.
	if result.Awarded != 85 {
		t.Errorf("awarded = %d, want 85", result.Awarded)
	}
	if result.Session.Phase != PhaseRevealing {
		t.Errorf("phase = %s, want %s", result.Session.Phase, PhaseRevealing)
	}
	if result.Session.Question.CorrectAnswer != "A" {
		t.Error("answer not revealed after submission")
	}
}

func TestStreakBonusKicksInAtThree(t *testing.T) {
	clock := newClock()
	svc := newTestGame(&fakeReporter{}, clock)

	state, _ := svc.StartGame("u1", "reef_quiz")

	clock.advance(5 * time.Second)
	svc.Answer("u1", state.SessionID, 0, "A")

	clock.advance(3 * time.Second)
	svc.Answer("u1", state.SessionID, 1, "A")

	clock.advance(3 * time.Second)
	result, err := svc.Answer("u1", state.SessionID, 2, "A")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if result.Streak != 3 {
		t.Fatalf("streak = %d, want 3", result.Streak)
	}
	// 60 base, 30 streak bonus, 25 time bonus.
	if result.Awarded != 115 {
		t.Errorf("awarded = %d, want 115", result.Awarded)
	}
}

func TestWrongAnswerResetsStreak(t *testing.T) {
	clock := newClock()
	svc := newTestGame(&fakeReporter{}, clock)

	state, _ := svc.StartGame("u1", "reef_quiz")

	clock.advance(2 * time.Second)
	svc.Answer("u1", state.SessionID, 0, "A")

	clock.advance(3 * time.Second)
	result, _ := svc.Answer("u1", state.SessionID, 1, "B")
	if !result.Accepted || result.Correct {
		t.Fatalf("result = %+v, want accepted and incorrect", result)
	}
	if result.Awarded != 0 || result.Streak != 0 {
		t.Errorf("awarded = %d streak = %d, want 0 and 0", result.Awarded, result.Streak)
	}
}

func TestLateAnswerNotAccepted(t *testing.T) {
	clock := newClock()
	svc := newTestGame(&fakeReporter{}, clock)

	state, _ := svc.StartGame("u1", "reef_quiz")
	clock.advance(31 * time.Second)

	result, err := svc.Answer("u1", state.SessionID, 0, "A")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if result.Accepted {
		t.Fatal("late answer was accepted")
	}
	if result.Streak != 0 {
		t.Errorf("streak = %d, want 0 after timeout", result.Streak)
	}
}

func TestTimeoutAdvancesToNextQuestion(t *testing.T) {
	clock := newClock()
	svc := newTestGame(&fakeReporter{}, clock)

	state, _ := svc.StartGame("u1", "reef_quiz")

	// Past the first deadline and its reveal window.
	clock.advance(33 * time.Second)

	state, err := svc.GetState("u1", state.SessionID)
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}
	if state.Phase != PhaseInProgress || state.QuestionIndex != 1 {
		t.Errorf("phase = %s index = %d, want in progress on question 1", state.Phase, state.QuestionIndex)
	}
	if state.Score != 0 {
		t.Errorf("score = %d, want 0 after timeout", state.Score)
	}
}

func TestWrongIndexNotAccepted(t *testing.T) {
	clock := newClock()
	svc := newTestGame(&fakeReporter{}, clock)

	state, _ := svc.StartGame("u1", "reef_quiz")
	clock.advance(time.Second)

	result, _ := svc.Answer("u1", state.SessionID, 1, "A")
	if result.Accepted {
		t.Fatal("answer for the wrong question was accepted")
	}
}

func TestFullPlaythroughReportsOnce(t *testing.T) {
	clock := newClock()
	rep := &fakeReporter{}
	svc := newTestGame(rep, clock)

	state, _ := svc.StartGame("u1", "reef_quiz")

	for i := 0; i < 3; i++ {
		clock.advance(5 * time.Second)
		result, err := svc.Answer("u1", state.SessionID, i, "A")
		if err != nil {
			t.Fatalf("Answer %d: %v", i, err)
		}
		if !result.Accepted {
			t.Fatalf("answer %d not accepted: %+v", i, result)
		}
		clock.advance(3 * time.Second)
	}

	results, err := svc.Results("u1", state.SessionID)
	if err != nil {
		t.Fatalf("Results: %v", err)
	}
	// 85 + 85 + 115 across the three questions.
	if results.Score != 285 {
		t.Errorf("score = %d, want 285", results.Score)
	}
	if results.CorrectCount != 3 {
		t.Errorf("correct = %d, want 3", results.CorrectCount)
	}
	if rep.calls != 1 {
		t.Errorf("reporter called %d times, want 1", rep.calls)
	}
	if rep.score != 285 || rep.userID != "u1" {
		t.Errorf("reported %d for %s, want 285 for u1", rep.score, rep.userID)
	}

	// Querying again must not re-report.
	if _, err := svc.Results("u1", state.SessionID); err != nil {
		t.Fatalf("second Results: %v", err)
	}
	if rep.calls != 1 {
		t.Errorf("reporter called %d times after re-query, want 1", rep.calls)
	}
}

func TestFailedReportSurfacesAndRetries(t *testing.T) {
	clock := newClock()
	rep := &fakeReporter{fail: true}
	svc := newTestGame(rep, clock)

	state, _ := svc.StartGame("u1", "reef_quiz")

	for i := 0; i < 3; i++ {
		clock.advance(5 * time.Second)
		if result, _ := svc.Answer("u1", state.SessionID, i, "A"); !result.Accepted {
			t.Fatalf("answer %d not accepted", i)
		}
		clock.advance(3 * time.Second)
	}

	// The score could not be credited, so Results must not pretend success.
	if _, err := svc.Results("u1", state.SessionID); err == nil {
		t.Fatal("expected error while the score cannot be recorded")
	}
	if rep.attempts == 0 {
		t.Fatal("reporter never attempted")
	}

	// Once the store recovers the same session reports cleanly.
	rep.fail = false
	results, err := svc.Results("u1", state.SessionID)
	if err != nil {
		t.Fatalf("Results after recovery: %v", err)
	}
	if results.Progress == nil {
		t.Fatal("progress missing after successful report")
	}
	if rep.calls != 1 {
		t.Errorf("successful reports = %d, want 1", rep.calls)
	}
	if rep.score != 285 {
		t.Errorf("reported score = %d, want 285", rep.score)
	}
}

func TestUnreportedSessionSurvivesPruning(t *testing.T) {
	clock := newClock()
	rep := &fakeReporter{fail: true}
	svc := newTestGame(rep, clock)

	state, _ := svc.StartGame("u1", "reef_quiz")

	for i := 0; i < 3; i++ {
		clock.advance(5 * time.Second)
		svc.Answer("u1", state.SessionID, i, "A")
		clock.advance(3 * time.Second)
	}
	svc.Results("u1", state.SessionID)

	// Well past the retention window; an uncredited score must not be pruned.
	clock.advance(2 * time.Hour)
	svc.StartGame("u2", "reef_quiz")

	rep.fail = false
	results, err := svc.Results("u1", state.SessionID)
	if err != nil {
		t.Fatalf("Results after pruning window: %v", err)
	}
	if results.Score != 285 {
		t.Errorf("score = %d, want 285", results.Score)
	}
}

func TestResultsBeforeFinishConflicts(t *testing.T) {
	clock := newClock()
	svc := newTestGame(&fakeReporter{}, clock)

	state, _ := svc.StartGame("u1", "reef_quiz")

	if _, err := svc.Results("u1", state.SessionID); err == nil {
		t.Fatal("expected conflict for unfinished session")
	}
}

func TestExitIsIdempotentAndUnreported(t *testing.T) {
	clock := newClock()
	rep := &fakeReporter{}
	svc := newTestGame(rep, clock)

	state, _ := svc.StartGame("u1", "reef_quiz")

	if err := svc.Exit("u1", state.SessionID); err != nil {
		t.Fatalf("Exit: %v", err)
	}
	if err := svc.Exit("u1", state.SessionID); err != nil {
		t.Fatalf("second Exit: %v", err)
	}
	if rep.calls != 0 {
		t.Errorf("reporter called %d times on exit, want 0", rep.calls)
	}
}

func TestSessionBelongsToUser(t *testing.T) {
	clock := newClock()
	svc := newTestGame(&fakeReporter{}, clock)

	state, _ := svc.StartGame("u1", "reef_quiz")

	if _, err := svc.Answer("u2", state.SessionID, 0, "A"); err == nil {
		t.Fatal("expected error for foreign session")
	}
}

func TestNewGameAbandonsOldSession(t *testing.T) {
	clock := newClock()
	rep := &fakeReporter{}
	svc := newTestGame(rep, clock)

	first, _ := svc.StartGame("u1", "reef_quiz")
	second, _ := svc.StartGame("u1", "reef_quiz")

	if first.SessionID == second.SessionID {
		t.Fatal("expected a fresh session id")
	}
	if _, err := svc.GetState("u1", first.SessionID); err == nil {
		t.Fatal("abandoned session still queryable")
	}
	if rep.calls != 0 {
		t.Errorf("abandoned session reported a score")
	}
}
