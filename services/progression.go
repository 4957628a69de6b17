package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/aquasnap/aqua_api/dto"
	"github.com/aquasnap/aqua_api/model"
	"github.com/aquasnap/aqua_api/shared"
)

// ProfileStore is the persistence surface the progression service needs.
// Satisfied by repositories.ProfileRepository.
type ProfileStore interface {
	GetProfile(userID string) (*model.UserProfile, error)
	CreateProfile(userID, username string) (*model.UserProfile, error)
	UpdateProfile(profile *model.UserProfile) error
	TopProfiles(limit int) ([]model.UserProfile, error)
}

// ProgressionService owns the player economy: points, levels, certificates,
// achievements and best scores. All profile writes go through here so the
// read-modify-write cycle stays serialized.
type ProgressionService struct {
	appContext.DefaultService

	sqlSvc   *SqliteService
	redisSvc *RedisService

	store ProfileStore
	now   func() time.Time

	mu sync.Mutex
}

const PROGRESSION_SVC = "progression_svc"

const leaderboardKey = "leaderboard:points"

func (svc ProgressionService) Id() string {
	return PROGRESSION_SVC
}

func (svc *ProgressionService) Configure(ctx *appContext.Context) error {
	svc.sqlSvc = ctx.Service(SQLITE_SVC).(*SqliteService)
	svc.redisSvc = ctx.Service(REDIS_SVC).(*RedisService)
	svc.now = time.Now
	return svc.DefaultService.Configure(ctx)
}

func (svc *ProgressionService) Start() error {
	svc.store = svc.sqlSvc.Profiles()
	return nil
}

// InitializeProfile creates the progression profile for a new account and
// unlocks the welcome achievement.
func (svc *ProgressionService) InitializeProfile(userID, username string) (*model.UserProfile, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	profile, err := svc.store.CreateProfile(userID, username)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to create profile")
	}

	welcome := model.Achievement{
		ID:          "welcome",
		Name:        "Welcome to AquaSnap",
		Description: "Dove into the ocean for the first time!",
		Icon:        "🤿",
		UnlockedAt:  svc.now(),
	}
	if err := svc.appendAchievements(profile, []model.Achievement{welcome}); err != nil {
		return nil, err
	}

	if err := svc.store.UpdateProfile(profile); err != nil {
		return nil, shared.NewInternalError(err, "Failed to save profile")
	}
	return profile, nil
}

// GetProfile returns the decoded profile view with the current leaderboard
// rank attached.
func (svc *ProgressionService) GetProfile(userID string) (*dto.ProfileResponse, error) {
	profile, err := svc.loadProfile(userID)
	if err != nil {
		return nil, err
	}

	resp, err := svc.toResponse(profile)
	if err != nil {
		return nil, err
	}
	resp.Rank = svc.leaderboardRank(userID)
	return resp, nil
}

// leaderboardRank is best effort: 0 when the user is not in the sorted set
// or redis is unavailable.
func (svc *ProgressionService) leaderboardRank(userID string) int {
	if svc.redisSvc == nil {
		return 0
	}

	rank, err := svc.redisSvc.ZRevRank(context.Background(), leaderboardKey, userID)
	if err != nil {
		return 0
	}
	return int(rank) + 1
}

// Achievements lists everything the user has unlocked, newest last.
func (svc *ProgressionService) Achievements(userID string) ([]model.Achievement, error) {
	profile, err := svc.loadProfile(userID)
	if err != nil {
		return nil, err
	}

	achievements, err := decodeAchievements(profile)
	if err != nil {
		return nil, err
	}
	return achievements, nil
}

// UpdateUserProgress applies a finished game result to the profile. Both the
// lifetime total and the spendable balance grow by the score, the level is
// recomputed from the lifetime total, and any newly crossed thresholds
// unlock their certificates and achievements exactly once.
func (svc *ProgressionService) UpdateUserProgress(userID, gameType string, score int) (*dto.ProgressResult, error) {
	if score < 0 {
		return nil, shared.NewBadRequestError(fmt.Errorf("negative score: %d", score), "Score cannot be negative")
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	profile, err := svc.loadProfile(userID)
	if err != nil {
		return nil, err
	}

	now := svc.now()

	profile.TotalPointsEarned += score
	profile.CurrentSpendablePoints += score

	newLevel := profile.TotalPointsEarned/shared.PointsPerLevel + 1
	leveledUp := newLevel > profile.CurrentLevel

	newAchievements := []model.Achievement{}
	if leveledUp {
		newAchievements = append(newAchievements, model.Achievement{
			ID:          fmt.Sprintf("level_%d", newLevel),
			Name:        fmt.Sprintf("Level %d Marine Expert", newLevel),
			Description: fmt.Sprintf("Reached Level %d!", newLevel),
			Icon:        "🌊",
			UnlockedAt:  now,
		})
	}

	certificates, err := decodeCertificates(profile)
	if err != nil {
		return nil, err
	}

	if newLevel >= 5 && !containsString(certificates, shared.CertificateEnthusiast) {
		certificates = append(certificates, shared.CertificateEnthusiast)
		newAchievements = append(newAchievements, model.Achievement{
			ID:          "marine_enthusiast",
			Name:        "Marine Species Enthusiast",
			Description: "Earned your Marine Species Enthusiast certificate!",
			Icon:        "🏆",
			UnlockedAt:  now,
		})
	}

	if newLevel >= 10 && !containsString(certificates, shared.CertificateExpert) {
		certificates = append(certificates, shared.CertificateExpert)
		newAchievements = append(newAchievements, model.Achievement{
			ID:          "marine_expert",
			Name:        "Marine Species Expert",
			Description: "Earned your Marine Species Expert certificate!",
			Icon:        "🥇",
			UnlockedAt:  now,
		})
	}

	bestScores, err := decodeBestScores(profile)
	if err != nil {
		return nil, err
	}
	newBest := score > bestScores[gameType]
	if newBest {
		bestScores[gameType] = score
	}

	profile.CurrentLevel = newLevel
	profile.LevelProgress = float64(profile.TotalPointsEarned%shared.PointsPerLevel) / float64(shared.PointsPerLevel)
	profile.GamesPlayed++
	profile.LastActive = now

	if err := encodeInto(&profile.CertificatesEarned, certificates); err != nil {
		return nil, err
	}
	if err := encodeInto(&profile.BestScores, bestScores); err != nil {
		return nil, err
	}
	if err := svc.appendAchievements(profile, newAchievements); err != nil {
		return nil, err
	}

	if err := svc.store.UpdateProfile(profile); err != nil {
		return nil, shared.NewInternalError(err, "Failed to save progress")
	}

	svc.publishScore(profile)

	resp, err := svc.toResponse(profile)
	if err != nil {
		return nil, err
	}

	return &dto.ProgressResult{
		Profile:         resp,
		LeveledUp:       leveledUp,
		NewAchievements: newAchievements,
		NewBestScore:    newBest,
	}, nil
}

// SpendPoints deducts from the spendable balance. The lifetime total and the
// level are untouched. Insufficient funds reject the whole operation.
func (svc *ProgressionService) SpendPoints(userID string, amount int) (*model.UserProfile, error) {
	if amount <= 0 {
		return nil, shared.NewBadRequestError(fmt.Errorf("invalid amount: %d", amount), "Amount must be positive")
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	profile, err := svc.loadProfile(userID)
	if err != nil {
		return nil, err
	}

	if profile.CurrentSpendablePoints < amount {
		return nil, shared.NewBadRequestError(shared.ErrInsufficientPoints, "Not enough points")
	}

	profile.CurrentSpendablePoints -= amount
	profile.LastActive = svc.now()

	if err := svc.store.UpdateProfile(profile); err != nil {
		return nil, shared.NewInternalError(err, "Failed to save profile")
	}
	return profile, nil
}

// Leaderboard returns the top earners by lifetime points. Served from the
// redis sorted set, falling back to the database when redis is unavailable.
func (svc *ProgressionService) Leaderboard(limit int) ([]dto.LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	if entries, ok := svc.leaderboardFromRedis(limit); ok {
		return entries, nil
	}

	profiles, err := svc.store.TopProfiles(limit)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to load leaderboard")
	}

	entries := make([]dto.LeaderboardEntry, 0, len(profiles))
	for i, p := range profiles {
		entries = append(entries, dto.LeaderboardEntry{
			Rank:     i + 1,
			UserID:   p.UserID,
			Username: p.Username,
			Points:   p.TotalPointsEarned,
			Level:    p.CurrentLevel,
		})
	}
	return entries, nil
}

func (svc *ProgressionService) leaderboardFromRedis(limit int) ([]dto.LeaderboardEntry, bool) {
	if svc.redisSvc == nil {
		return nil, false
	}

	zs, err := svc.redisSvc.ZTopWithScores(context.Background(), leaderboardKey, int64(limit))
	if err != nil || len(zs) == 0 {
		return nil, false
	}

	entries := make([]dto.LeaderboardEntry, 0, len(zs))
	for i, z := range zs {
		userID, ok := z.Member.(string)
		if !ok {
			continue
		}
		profile, err := svc.store.GetProfile(userID)
		if err != nil {
			continue
		}
		entries = append(entries, dto.LeaderboardEntry{
			Rank:     i + 1,
			UserID:   profile.UserID,
			Username: profile.Username,
			Points:   int(z.Score),
			Level:    profile.CurrentLevel,
		})
	}
	return entries, true
}

func (svc *ProgressionService) loadProfile(userID string) (*model.UserProfile, error) {
	profile, err := svc.store.GetProfile(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Profile not found")
		}
		return nil, shared.NewInternalError(err, "Failed to load profile")
	}
	return profile, nil
}

// publishScore mirrors the lifetime total into the redis leaderboard set.
// Best effort, the database stays authoritative.
func (svc *ProgressionService) publishScore(profile *model.UserProfile) {
	if svc.redisSvc == nil {
		return
	}

	err := svc.redisSvc.ZAddScore(context.Background(), leaderboardKey, profile.UserID, float64(profile.TotalPointsEarned))
	if err != nil {
		log.WithError(err).WithField("user_id", profile.UserID).Warn("Failed to publish leaderboard score")
	}
}

func (svc *ProgressionService) appendAchievements(profile *model.UserProfile, unlocked []model.Achievement) error {
	if len(unlocked) == 0 {
		return nil
	}

	achievements, err := decodeAchievements(profile)
	if err != nil {
		return err
	}
	achievements = append(achievements, unlocked...)
	return encodeInto(&profile.Achievements, achievements)
}

func (svc *ProgressionService) toResponse(profile *model.UserProfile) (*dto.ProfileResponse, error) {
	certificates, err := decodeCertificates(profile)
	if err != nil {
		return nil, err
	}
	bestScores, err := decodeBestScores(profile)
	if err != nil {
		return nil, err
	}
	achievements, err := decodeAchievements(profile)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{
		UserID:                 profile.UserID,
		Username:               profile.Username,
		TotalPointsEarned:      profile.TotalPointsEarned,
		CurrentSpendablePoints: profile.CurrentSpendablePoints,
		CurrentLevel:           profile.CurrentLevel,
		LevelProgress:          profile.LevelProgress,
		CertificatesEarned:     certificates,
		GamesPlayed:            profile.GamesPlayed,
		BestScores:             bestScores,
		Achievements:           achievements,
		JoinDate:               profile.JoinDate,
		LastActive:             profile.LastActive,
	}, nil
}

// Corrupt profile columns are logged and read as empty rather than failing
// the whole profile.
func decodeCertificates(profile *model.UserProfile) ([]string, error) {
	certificates := []string{}
	if len(profile.CertificatesEarned) > 0 {
		if err := sonic.Unmarshal(profile.CertificatesEarned, &certificates); err != nil {
			log.WithError(err).WithField("user_id", profile.UserID).Warn("Discarding corrupt certificates column")
			return []string{}, nil
		}
	}
	return certificates, nil
}

func decodeBestScores(profile *model.UserProfile) (map[string]int, error) {
	bestScores := map[string]int{}
	if len(profile.BestScores) > 0 {
		if err := sonic.Unmarshal(profile.BestScores, &bestScores); err != nil {
			log.WithError(err).WithField("user_id", profile.UserID).Warn("Discarding corrupt best scores column")
			return map[string]int{}, nil
		}
	}
	return bestScores, nil
}

func decodeAchievements(profile *model.UserProfile) ([]model.Achievement, error) {
	achievements := []model.Achievement{}
	if len(profile.Achievements) > 0 {
		if err := sonic.Unmarshal(profile.Achievements, &achievements); err != nil {
			log.WithError(err).WithField("user_id", profile.UserID).Warn("Discarding corrupt achievements column")
			return []model.Achievement{}, nil
		}
	}
	return achievements, nil
}

func encodeInto(dst *json.RawMessage, v interface{}) error {
	data, err := sonic.Marshal(v)
	if err != nil {
		return shared.NewInternalError(err, "Failed to encode profile column")
	}
	*dst = data
	return nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
