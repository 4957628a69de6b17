package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/aquasnap/aqua_api/model"
	"github.com/aquasnap/aqua_api/shared"
)

// fakeProfileStore is a simple in-memory store for testing
type fakeProfileStore struct {
	mu       sync.Mutex
	profiles map[string]*model.UserProfile
	failSave bool
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{profiles: map[string]*model.UserProfile{}}
}

func (f *fakeProfileStore) GetProfile(userID string) (*model.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileStore) CreateProfile(userID, username string) (*model.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := &model.UserProfile{
		ID:                 "profile-" + userID,
		UserID:             userID,
		Username:           username,
		CurrentLevel:       1,
		CertificatesEarned: []byte("[]"),
		BestScores:         []byte("{}"),
		Achievements:       []byte("[]"),
	}
	f.profiles[userID] = p
	cp := *p
	return &cp, nil
}

func (f *fakeProfileStore) UpdateProfile(profile *model.UserProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSave {
		return errors.New("disk full")
	}
	cp := *profile
	f.profiles[profile.UserID] = &cp
	return nil
}

func (f *fakeProfileStore) TopProfiles(limit int) ([]model.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.UserProfile{}
	for _, p := range f.profiles {
		out = append(out, *p)
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].TotalPointsEarned > out[i].TotalPointsEarned {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func newTestProgression(store ProfileStore) *ProgressionService {
	return &ProgressionService{
		store: store,
		now:   func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func seedProfile(t *testing.T, svc *ProgressionService, userID string) {
	t.Helper()
	if _, err := svc.InitializeProfile(userID, "tester"); err != nil {
		t.Fatalf("InitializeProfile: %v", err)
	}
}

func TestInitializeProfileUnlocksWelcome(t *testing.T) {
	svc := newTestProgression(newFakeProfileStore())
	seedProfile(t, svc, "u1")

	achievements, err := svc.Achievements("u1")
	if err != nil {
		t.Fatalf("Achievements: %v", err)
	}
	if len(achievements) != 1 || achievements[0].ID != "welcome" {
		t.Fatalf("expected welcome achievement, got %+v", achievements)
	}
}

func TestUpdateProgressAddsPointsAndLevels(t *testing.T) {
	svc := newTestProgression(newFakeProfileStore())
	seedProfile(t, svc, "u1")

	result, err := svc.UpdateUserProgress("u1", shared.GameMarineTrivia, 2500)
	if err != nil {
		t.Fatalf("UpdateUserProgress: %v", err)
	}

	p := result.Profile
	if p.TotalPointsEarned != 2500 || p.CurrentSpendablePoints != 2500 {
		t.Errorf("points = %d/%d, want 2500/2500", p.TotalPointsEarned, p.CurrentSpendablePoints)
	}
	if p.CurrentLevel != 3 {
		t.Errorf("level = %d, want 3", p.CurrentLevel)
	}
	if p.LevelProgress != 0.5 {
		t.Errorf("level progress = %v, want 0.5", p.LevelProgress)
	}
	if !result.LeveledUp {
		t.Error("expected LeveledUp")
	}
	if p.GamesPlayed != 1 {
		t.Errorf("games played = %d, want 1", p.GamesPlayed)
	}
	if p.BestScores[shared.GameMarineTrivia] != 2500 {
		t.Errorf("best score = %d, want 2500", p.BestScores[shared.GameMarineTrivia])
	}

	found := false
	for _, a := range result.NewAchievements {
		if a.ID == "level_3" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected level_3 achievement, got %+v", result.NewAchievements)
	}
}

func TestUpdateProgressZeroScoreStillCounts(t *testing.T) {
	svc := newTestProgression(newFakeProfileStore())
	seedProfile(t, svc, "u1")

	result, err := svc.UpdateUserProgress("u1", shared.GameOceanCurrents, 0)
	if err != nil {
		t.Fatalf("UpdateUserProgress: %v", err)
	}
	if result.LeveledUp {
		t.Error("did not expect a level up")
	}
	if result.Profile.GamesPlayed != 1 {
		t.Errorf("games played = %d, want 1", result.Profile.GamesPlayed)
	}
	if result.Profile.CurrentLevel != 1 {
		t.Errorf("level = %d, want 1", result.Profile.CurrentLevel)
	}
}

func TestCertificatesGrantedExactlyOnce(t *testing.T) {
	svc := newTestProgression(newFakeProfileStore())
	seedProfile(t, svc, "u1")

	// Cross level 5.
	result, err := svc.UpdateUserProgress("u1", shared.GameMarineTrivia, 4200)
	if err != nil {
		t.Fatalf("UpdateUserProgress: %v", err)
	}
	if !hasAchievement(result.NewAchievements, "marine_enthusiast") {
		t.Fatal("expected enthusiast certificate on crossing level 5")
	}

	// Stay above level 5, no duplicate.
	result, err = svc.UpdateUserProgress("u1", shared.GameMarineTrivia, 100)
	if err != nil {
		t.Fatalf("UpdateUserProgress: %v", err)
	}
	if hasAchievement(result.NewAchievements, "marine_enthusiast") {
		t.Fatal("enthusiast certificate granted twice")
	}

	// Cross level 10.
	result, err = svc.UpdateUserProgress("u1", shared.GameMarineTrivia, 6000)
	if err != nil {
		t.Fatalf("UpdateUserProgress: %v", err)
	}
	if !hasAchievement(result.NewAchievements, "marine_expert") {
		t.Fatal("expected expert certificate on crossing level 10")
	}

	profile, err := svc.GetProfile("u1")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if len(profile.CertificatesEarned) != 2 {
		t.Errorf("certificates = %v, want [enthusiast expert]", profile.CertificatesEarned)
	}
}

func TestBestScoreOnlyImproves(t *testing.T) {
	svc := newTestProgression(newFakeProfileStore())
	seedProfile(t, svc, "u1")

	result, _ := svc.UpdateUserProgress("u1", shared.GameSpeciesIdentification, 300)
	if !result.NewBestScore {
		t.Error("first score should be a best")
	}

	result, _ = svc.UpdateUserProgress("u1", shared.GameSpeciesIdentification, 200)
	if result.NewBestScore {
		t.Error("lower score should not be a best")
	}
	if result.Profile.BestScores[shared.GameSpeciesIdentification] != 300 {
		t.Errorf("best = %d, want 300", result.Profile.BestScores[shared.GameSpeciesIdentification])
	}
}

func TestSpendPointsKeepsLevel(t *testing.T) {
	svc := newTestProgression(newFakeProfileStore())
	seedProfile(t, svc, "u1")

	if _, err := svc.UpdateUserProgress("u1", shared.GameMarineTrivia, 1500); err != nil {
		t.Fatalf("UpdateUserProgress: %v", err)
	}

	profile, err := svc.SpendPoints("u1", 1400)
	if err != nil {
		t.Fatalf("SpendPoints: %v", err)
	}
	if profile.CurrentSpendablePoints != 100 {
		t.Errorf("spendable = %d, want 100", profile.CurrentSpendablePoints)
	}
	if profile.TotalPointsEarned != 1500 {
		t.Errorf("total = %d, want 1500", profile.TotalPointsEarned)
	}
	if profile.CurrentLevel != 2 {
		t.Errorf("level = %d, want 2", profile.CurrentLevel)
	}
}

func TestSpendPointsRejectsInsufficient(t *testing.T) {
	svc := newTestProgression(newFakeProfileStore())
	seedProfile(t, svc, "u1")

	if _, err := svc.UpdateUserProgress("u1", shared.GameMarineTrivia, 100); err != nil {
		t.Fatalf("UpdateUserProgress: %v", err)
	}

	_, err := svc.SpendPoints("u1", 150)
	if !errors.Is(err, shared.ErrInsufficientPoints) {
		t.Fatalf("expected ErrInsufficientPoints, got %v", err)
	}

	profile, _ := svc.GetProfile("u1")
	if profile.CurrentSpendablePoints != 100 {
		t.Errorf("balance changed on rejected spend: %d", profile.CurrentSpendablePoints)
	}
}

func TestMissingProfileIsLoudError(t *testing.T) {
	svc := newTestProgression(newFakeProfileStore())

	_, err := svc.UpdateUserProgress("ghost", shared.GameMarineTrivia, 100)
	if err == nil {
		t.Fatal("expected error for missing profile")
	}
	appErr, ok := shared.GetAppError(err)
	if !ok || appErr.StatusCode != 404 {
		t.Fatalf("expected 404 AppError, got %v", err)
	}
}

func TestUpdateProgressSurfacesSaveFailure(t *testing.T) {
	store := newFakeProfileStore()
	svc := newTestProgression(store)
	seedProfile(t, svc, "u1")

	store.failSave = true
	if _, err := svc.UpdateUserProgress("u1", shared.GameMarineTrivia, 100); err == nil {
		t.Fatal("expected error when persistence fails")
	}
}

func TestLeaderboardOrdersByPoints(t *testing.T) {
	svc := newTestProgression(newFakeProfileStore())
	seedProfile(t, svc, "u1")
	seedProfile(t, svc, "u2")

	svc.UpdateUserProgress("u1", shared.GameMarineTrivia, 500)
	svc.UpdateUserProgress("u2", shared.GameMarineTrivia, 900)

	entries, err := svc.Leaderboard(10)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].UserID != "u2" || entries[0].Rank != 1 {
		t.Errorf("top entry = %+v, want u2 at rank 1", entries[0])
	}
}

func hasAchievement(list []model.Achievement, id string) bool {
	for _, a := range list {
		if a.ID == id {
			return true
		}
	}
	return false
}
