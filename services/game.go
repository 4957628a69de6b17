package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/aquasnap/aqua_api/dto"
	"github.com/aquasnap/aqua_api/model"
	"github.com/aquasnap/aqua_api/shared"
)

const (
	PhaseInProgress = "in_progress"
	PhaseRevealing  = "revealing"
	PhaseFinished   = "finished"
)

// questionSource provides configs and question sets. Satisfied by
// CatalogService.
type questionSource interface {
	GameConfig(gameType string) (model.GameConfig, error)
	GenerateQuestions(gameType string) ([]model.Question, error)
}

// progressReporter receives the final score of a finished session.
// Satisfied by ProgressionService.
type progressReporter interface {
	UpdateUserProgress(userID, gameType string, score int) (*dto.ProgressResult, error)
}

// gameSession is the server-side state of one quiz run. The clock is the
// only driver of phase changes: every public operation first advances the
// session to where the current time says it should be, so an answer
// arriving after the deadline can never beat the timeout.
type gameSession struct {
	id     string
	userID string
	cfg    model.GameConfig

	questions []model.Question

	phase    string
	index    int
	deadline time.Time // current question cutoff, valid while in progress
	revealAt time.Time // end of the reveal window, valid while revealing

	score   int
	streak  int
	correct int

	startedAt time.Time
	endedAt   time.Time
	reported  bool
	progress  *dto.ProgressResult
}

// GameService runs quiz sessions in memory. Sessions are transient: only
// the final score survives, through the progression service.
type GameService struct {
	context.DefaultService

	catalogSvc     *CatalogService
	progressionSvc *ProgressionService
	monitoringSvc  *MonitoringService

	questions questionSource
	reporter  progressReporter
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]*gameSession
	byUser   map[string]string
}

const GAME_SVC = "game_svc"

// finishedTTL is how long a finished session stays queryable.
const finishedTTL = time.Hour

func (svc GameService) Id() string {
	return GAME_SVC
}

func (svc *GameService) Configure(ctx *context.Context) error {
	svc.catalogSvc = ctx.Service(CATALOG_SVC).(*CatalogService)
	svc.progressionSvc = ctx.Service(PROGRESSION_SVC).(*ProgressionService)
	svc.monitoringSvc = ctx.Service(MONITORING_SVC).(*MonitoringService)
	svc.now = time.Now
	svc.sessions = map[string]*gameSession{}
	svc.byUser = map[string]string{}
	return svc.DefaultService.Configure(ctx)
}

func (svc *GameService) Start() error {
	svc.questions = svc.catalogSvc
	svc.reporter = svc.progressionSvc
	return nil
}

// StartGame opens a new session for the user. Any previous session is
// abandoned unreported, matching an explicit exit.
func (svc *GameService) StartGame(userID, gameType string) (*dto.SessionState, error) {
	cfg, err := svc.questions.GameConfig(gameType)
	if err != nil {
		return nil, shared.NewBadRequestError(err, "Unknown game type")
	}

	questions, err := svc.questions.GenerateQuestions(gameType)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to generate questions")
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	now := svc.now()
	svc.prune(now)

	if oldID, ok := svc.byUser[userID]; ok {
		if old := svc.sessions[oldID]; old != nil && old.phase == PhaseFinished {
			// Last chance to credit a finished score before the session goes.
			_ = svc.report(old)
		}
		delete(svc.sessions, oldID)
	}

	s := &gameSession{
		id:        uuid.New().String(),
		userID:    userID,
		cfg:       cfg,
		questions: questions,
		phase:     PhaseInProgress,
		deadline:  now.Add(cfg.TimePerQuestion),
		startedAt: now,
	}
	svc.sessions[s.id] = s
	svc.byUser[userID] = s.id

	log.WithFields(log.Fields{
		"session_id": s.id,
		"game_type":  gameType,
		"user_id":    userID,
	}).Info("Game session started")

	if svc.monitoringSvc != nil {
		svc.monitoringSvc.RecordGameStarted(gameType)
	}

	return svc.snapshot(s, now), nil
}

// GetState advances the session to the present and returns the snapshot.
func (svc *GameService) GetState(userID, sessionID string) (*dto.SessionState, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	s, err := svc.session(userID, sessionID)
	if err != nil {
		return nil, err
	}

	now := svc.now()
	svc.resolve(s, now)
	return svc.snapshot(s, now), nil
}

// Answer submits an answer for the question at the given index. Late or
// misdirected answers are reported as not accepted rather than failing the
// request, since the client may legitimately race the clock.
func (svc *GameService) Answer(userID, sessionID string, questionIndex int, answer string) (*dto.AnswerResult, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	s, err := svc.session(userID, sessionID)
	if err != nil {
		return nil, err
	}

	now := svc.now()
	svc.resolve(s, now)

	if s.phase != PhaseInProgress || questionIndex != s.index || !now.Before(s.deadline) {
		return &dto.AnswerResult{
			Accepted: false,
			Streak:   s.streak,
			Session:  svc.snapshot(s, now),
		}, nil
	}

	q := s.questions[s.index]
	correct := answer == q.CorrectAnswer

	awarded := 0
	if correct {
		s.streak++
		s.correct++

		awarded = q.Points
		if s.cfg.BasePoints > 0 {
			awarded = s.cfg.BasePoints
		}
		if s.cfg.StreakStep > 0 && s.streak >= 3 {
			awarded += (s.streak / 3) * s.cfg.StreakStep
		}
		awarded += timeBonus(s.cfg.TimeBonusTiers, s.deadline.Sub(now))

		s.score += awarded
	} else {
		s.streak = 0
	}

	s.phase = PhaseRevealing
	s.revealAt = now.Add(s.cfg.RevealDelay)
	svc.resolve(s, now)

	return &dto.AnswerResult{
		Accepted: true,
		Correct:  correct,
		Awarded:  awarded,
		Streak:   s.streak,
		Session:  svc.snapshot(s, now),
	}, nil
}

// Exit abandons the session without reporting a score. Exiting a session
// that is already gone is not an error.
func (svc *GameService) Exit(userID, sessionID string) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	s, ok := svc.sessions[sessionID]
	if !ok {
		return nil
	}
	if s.userID != userID {
		return shared.NewForbiddenError(fmt.Errorf("session %s does not belong to user", sessionID), "Not your session")
	}

	delete(svc.sessions, sessionID)
	if svc.byUser[userID] == sessionID {
		delete(svc.byUser, userID)
	}

	log.WithField("session_id", sessionID).Info("Game session abandoned")
	return nil
}

// Results returns the final summary once the session has finished.
func (svc *GameService) Results(userID, sessionID string) (*dto.FinishResult, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	s, err := svc.session(userID, sessionID)
	if err != nil {
		return nil, err
	}

	svc.resolve(s, svc.now())
	if s.phase != PhaseFinished {
		return nil, shared.NewConflictError(fmt.Errorf("session %s still %s", sessionID, s.phase), "Game still in progress")
	}

	if err := svc.report(s); err != nil {
		return nil, shared.NewInternalError(err, "Failed to record score")
	}

	return &dto.FinishResult{
		SessionID:    s.id,
		GameType:     s.cfg.Type,
		Score:        s.score,
		CorrectCount: s.correct,
		Progress:     s.progress,
	}, nil
}

func (svc *GameService) session(userID, sessionID string) (*gameSession, error) {
	s, ok := svc.sessions[sessionID]
	if !ok {
		return nil, shared.NewNotFoundError(fmt.Errorf("session %s not found", sessionID), "Session not found")
	}
	if s.userID != userID {
		return nil, shared.NewForbiddenError(fmt.Errorf("session %s does not belong to user", sessionID), "Not your session")
	}
	return s, nil
}

// resolve walks the session forward through every phase boundary the clock
// has already passed. A question whose deadline lapsed counts as a timeout:
// the streak resets and no points are awarded.
func (svc *GameService) resolve(s *gameSession, now time.Time) {
	for {
		switch s.phase {
		case PhaseInProgress:
			if now.Before(s.deadline) {
				return
			}
			s.streak = 0
			s.phase = PhaseRevealing
			s.revealAt = s.deadline.Add(s.cfg.RevealDelay)

		case PhaseRevealing:
			if now.Before(s.revealAt) {
				return
			}
			s.index++
			if s.index >= len(s.questions) {
				svc.finish(s)
				return
			}
			s.phase = PhaseInProgress
			s.deadline = s.revealAt.Add(s.cfg.TimePerQuestion)

		default:
			return
		}
	}
}

// finish closes the session and attempts the score report. A failed report
// leaves the session re-reportable so the score is never lost.
func (svc *GameService) finish(s *gameSession) {
	s.phase = PhaseFinished
	s.endedAt = svc.now()

	_ = svc.report(s)

	log.WithFields(log.Fields{
		"session_id": s.id,
		"game_type":  s.cfg.Type,
		"score":      s.score,
	}).Info("Game session finished")
}

// report credits the final score to the profile. Safe to call again after a
// failure; the session is only marked reported once the write succeeds.
func (svc *GameService) report(s *gameSession) error {
	if s.reported {
		return nil
	}

	progress, err := svc.reporter.UpdateUserProgress(s.userID, s.cfg.Type, s.score)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"session_id": s.id,
			"user_id":    s.userID,
			"score":      s.score,
		}).Error("Failed to report game score")
		return err
	}
	s.progress = progress
	s.reported = true

	if svc.monitoringSvc != nil {
		svc.monitoringSvc.RecordGameFinished(s.cfg.Type, s.score)
	}
	return nil
}

// prune drops finished sessions past their retention window. A session whose
// score has not been credited yet is kept around for another retry.
func (svc *GameService) prune(now time.Time) {
	for id, s := range svc.sessions {
		if s.phase == PhaseFinished && s.reported && now.Sub(s.endedAt) > finishedTTL {
			delete(svc.sessions, id)
			if svc.byUser[s.userID] == id {
				delete(svc.byUser, s.userID)
			}
		}
	}
}

func (svc *GameService) snapshot(s *gameSession, now time.Time) *dto.SessionState {
	state := &dto.SessionState{
		SessionID:     s.id,
		GameType:      s.cfg.Type,
		Phase:         s.phase,
		QuestionIndex: s.index,
		QuestionCount: len(s.questions),
		Score:         s.score,
		Streak:        s.streak,
		CorrectCount:  s.correct,
	}

	switch s.phase {
	case PhaseInProgress:
		state.Question = questionView(s.questions[s.index], false)
		state.TimeRemaining = s.deadline.Sub(now).Milliseconds()
	case PhaseRevealing:
		state.Question = questionView(s.questions[s.index], true)
		state.TimeRemaining = s.revealAt.Sub(now).Milliseconds()
	}
	return state
}

// questionView hides the answer until the reveal window.
func questionView(q model.Question, reveal bool) *dto.QuestionView {
	view := &dto.QuestionView{
		ID:       q.ID,
		Prompt:   q.Prompt,
		ImageURL: q.ImageURL,
		Options:  q.Options,
		Points:   q.Points,
	}
	if reveal {
		view.CorrectAnswer = q.CorrectAnswer
		view.Explanation = q.Explanation
	}
	return view
}

// timeBonus returns the bonus for the highest tier the remaining time
// clears. Tiers are ordered highest threshold first.
func timeBonus(tiers []model.TimeBonusTier, remaining time.Duration) int {
	for _, tier := range tiers {
		if remaining > tier.MinRemaining {
			return tier.Bonus
		}
	}
	return 0
}
