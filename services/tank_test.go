package services

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/aquasnap/aqua_api/model"
	"github.com/aquasnap/aqua_api/shared"
)

type fakeTankStore struct {
	now    time.Time
	tanks  map[string]*model.TankState
	fish   map[string][]model.OwnedFish
	nextID int
}

func newFakeTankStore(now time.Time) *fakeTankStore {
	return &fakeTankStore{
		now:   now,
		tanks: map[string]*model.TankState{},
		fish:  map[string][]model.OwnedFish{},
	}
}

func (f *fakeTankStore) GetTank(userID string) (*model.TankState, error) {
	tank, ok := f.tanks[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *tank
	return &cp, nil
}

func (f *fakeTankStore) CreateTank(userID string) (*model.TankState, error) {
	tank := &model.TankState{
		UserID:       userID,
		Cleanliness:  85,
		WaterQuality: 90,
		LastCleaning: f.now,
		CreatedAt:    f.now,
		UpdatedAt:    f.now,
	}
	f.tanks[userID] = tank
	cp := *tank
	return &cp, nil
}

func (f *fakeTankStore) UpdateTank(tank *model.TankState) error {
	cp := *tank
	f.tanks[tank.UserID] = &cp
	return nil
}

func (f *fakeTankStore) GetFish(userID string) ([]model.OwnedFish, error) {
	out := make([]model.OwnedFish, len(f.fish[userID]))
	copy(out, f.fish[userID])
	return out, nil
}

func (f *fakeTankStore) GetFishByID(userID, fishID string) (*model.OwnedFish, error) {
	for _, fh := range f.fish[userID] {
		if fh.ID == fishID {
			cp := fh
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTankStore) CreateFish(userID, speciesID string) (*model.OwnedFish, error) {
	f.nextID++
	fish := model.OwnedFish{
		ID:           fmt.Sprintf("fish-%d", f.nextID),
		UserID:       userID,
		SpeciesID:    speciesID,
		Health:       100,
		Happiness:    80,
		Hunger:       30,
		DateAcquired: f.now,
	}
	f.fish[userID] = append(f.fish[userID], fish)
	cp := fish
	return &cp, nil
}

func (f *fakeTankStore) UpdateFish(fish *model.OwnedFish) error {
	list := f.fish[fish.UserID]
	for i := range list {
		if list[i].ID == fish.ID {
			list[i] = *fish
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeTankStore) AllTankUserIDs() ([]string, error) {
	out := make([]string, 0, len(f.tanks))
	for userID := range f.tanks {
		out = append(out, userID)
	}
	return out, nil
}

type fakeSpender struct {
	balance int
}

func (f *fakeSpender) SpendPoints(userID string, amount int) (*model.UserProfile, error) {
	if f.balance < amount {
		return nil, shared.NewBadRequestError(shared.ErrInsufficientPoints, "Not enough points")
	}
	f.balance -= amount
	return &model.UserProfile{UserID: userID, CurrentSpendablePoints: f.balance}, nil
}

func newTestTank(store *fakeTankStore, wallet *fakeSpender, clock *fakeClock) *TankService {
	return &TankService{
		store:  store,
		wallet: wallet,
		shop:   &CatalogService{},
		now:    func() time.Time { return clock.t },
	}
}

func TestGetTankCreatesOnFirstVisit(t *testing.T) {
	clock := newClock()
	store := newFakeTankStore(clock.t)
	svc := newTestTank(store, &fakeSpender{}, clock)

	view, err := svc.GetTank("u1")
	if err != nil {
		t.Fatalf("GetTank: %v", err)
	}
	if view.Tank.Cleanliness != 85 || view.Tank.WaterQuality != 90 {
		t.Errorf("fresh tank = %d/%d, want 85/90", view.Tank.Cleanliness, view.Tank.WaterQuality)
	}
	if len(view.Fish) != 0 {
		t.Errorf("fresh tank has %d fish", len(view.Fish))
	}
}

func TestBuyFishChargesBeforeAdding(t *testing.T) {
	clock := newClock()
	store := newFakeTankStore(clock.t)
	wallet := &fakeSpender{balance: 100}
	svc := newTestTank(store, wallet, clock)

	result, err := svc.BuyFish("u1", "clownfish")
	if err != nil {
		t.Fatalf("BuyFish: %v", err)
	}
	if result.PointsSpent != 50 || result.PointsRemaining != 50 {
		t.Errorf("spent %d remaining %d, want 50 and 50", result.PointsSpent, result.PointsRemaining)
	}
	if len(result.Tank.Fish) != 1 || result.Tank.Fish[0].SpeciesID != "clownfish" {
		t.Fatalf("fish = %+v, want one clownfish", result.Tank.Fish)
	}
	// One extra fish degrades water quality off the cleanliness baseline.
	if result.Tank.Tank.WaterQuality != 80 {
		t.Errorf("water quality = %d, want 80", result.Tank.Tank.WaterQuality)
	}
}

func TestBuyFishRejectsInsufficientPoints(t *testing.T) {
	clock := newClock()
	store := newFakeTankStore(clock.t)
	svc := newTestTank(store, &fakeSpender{balance: 10}, clock)

	_, err := svc.BuyFish("u1", "clownfish")
	if err == nil {
		t.Fatal("expected error on insufficient points")
	}

	fish, _ := store.GetFish("u1")
	if len(fish) != 0 {
		t.Errorf("fish created despite failed charge: %+v", fish)
	}
}

func TestBuyFishRejectsUnknownSpecies(t *testing.T) {
	clock := newClock()
	svc := newTestTank(newFakeTankStore(clock.t), &fakeSpender{balance: 1000}, clock)

	if _, err := svc.BuyFish("u1", "kraken"); err == nil {
		t.Fatal("expected error for unknown species")
	}
}

func TestFeedFishClampsHunger(t *testing.T) {
	clock := newClock()
	store := newFakeTankStore(clock.t)
	wallet := &fakeSpender{balance: 100}
	svc := newTestTank(store, wallet, clock)

	store.CreateTank("u1")
	created, _ := store.CreateFish("u1", "clownfish")

	result, err := svc.FeedFish("u1", created.ID)
	if err != nil {
		t.Fatalf("FeedFish: %v", err)
	}
	if result.PointsSpent != feedCostPerFish {
		t.Errorf("spent = %d, want %d", result.PointsSpent, feedCostPerFish)
	}

	fed := result.Tank.Fish[0]
	if fed.Hunger != 0 {
		t.Errorf("hunger = %d, want 0", fed.Hunger)
	}
	if fed.Happiness != 90 || fed.Health != 100 {
		t.Errorf("happiness/health = %d/%d, want 90/100", fed.Happiness, fed.Health)
	}
}

func TestFeedFishUnknownFish(t *testing.T) {
	clock := newClock()
	store := newFakeTankStore(clock.t)
	svc := newTestTank(store, &fakeSpender{balance: 100}, clock)

	store.CreateTank("u1")
	_, err := svc.FeedFish("u1", "fish-404")
	appErr, ok := shared.GetAppError(err)
	if !ok || appErr.StatusCode != 404 {
		t.Fatalf("expected 404 AppError, got %v", err)
	}
}

func TestFeedAllChargesPerFish(t *testing.T) {
	clock := newClock()
	store := newFakeTankStore(clock.t)
	wallet := &fakeSpender{balance: 100}
	svc := newTestTank(store, wallet, clock)

	store.CreateTank("u1")
	store.CreateFish("u1", "clownfish")
	store.CreateFish("u1", "angelfish")
	store.CreateFish("u1", "seahorse")

	result, err := svc.FeedAllFish("u1")
	if err != nil {
		t.Fatalf("FeedAllFish: %v", err)
	}
	if result.PointsSpent != 15 || result.PointsRemaining != 85 {
		t.Errorf("spent %d remaining %d, want 15 and 85", result.PointsSpent, result.PointsRemaining)
	}
	for _, fh := range result.Tank.Fish {
		if fh.Hunger != 0 {
			t.Errorf("fish %s hunger = %d, want 0", fh.ID, fh.Hunger)
		}
	}
}

func TestFeedAllRejectsEmptyTank(t *testing.T) {
	clock := newClock()
	store := newFakeTankStore(clock.t)
	svc := newTestTank(store, &fakeSpender{balance: 100}, clock)

	if _, err := svc.FeedAllFish("u1"); err == nil {
		t.Fatal("expected error for empty tank")
	}
}

func TestCleanTankRestoresWater(t *testing.T) {
	clock := newClock()
	store := newFakeTankStore(clock.t)
	wallet := &fakeSpender{balance: 100}
	svc := newTestTank(store, wallet, clock)

	tank, _ := store.CreateTank("u1")
	tank.Cleanliness = 40
	tank.WaterQuality = 30
	store.UpdateTank(tank)
	store.CreateFish("u1", "clownfish")
	store.fish["u1"][0].Happiness = 50
	store.fish["u1"][0].Health = 60

	result, err := svc.CleanTank("u1")
	if err != nil {
		t.Fatalf("CleanTank: %v", err)
	}
	if result.PointsSpent != cleanCost {
		t.Errorf("spent = %d, want %d", result.PointsSpent, cleanCost)
	}
	if result.Tank.Tank.Cleanliness != 95 || result.Tank.Tank.WaterQuality != 95 {
		t.Errorf("tank = %d/%d, want 95/95", result.Tank.Tank.Cleanliness, result.Tank.Tank.WaterQuality)
	}
	if !result.Tank.Tank.LastCleaning.Equal(clock.t) {
		t.Errorf("last cleaning = %v, want %v", result.Tank.Tank.LastCleaning, clock.t)
	}

	fh := result.Tank.Fish[0]
	if fh.Happiness != 65 || fh.Health != 70 {
		t.Errorf("fish = %d/%d, want 65/70", fh.Happiness, fh.Health)
	}
}

func TestDecayAppliesElapsedTime(t *testing.T) {
	clock := newClock()
	store := newFakeTankStore(clock.t)
	svc := newTestTank(store, &fakeSpender{}, clock)

	tank, _ := store.CreateTank("u1")
	tank.LastCleaning = clock.t.Add(-100 * time.Hour)
	tank.UpdatedAt = clock.t.Add(-10 * time.Hour)
	store.UpdateTank(tank)

	for i := 0; i < 3; i++ {
		store.CreateFish("u1", "clownfish")
	}

	view, err := svc.GetTank("u1")
	if err != nil {
		t.Fatalf("GetTank: %v", err)
	}

	// 100h since cleaning caps the decay at 50 points.
	if view.Tank.Cleanliness != 50 {
		t.Errorf("cleanliness = %d, want 50", view.Tank.Cleanliness)
	}
	if view.Tank.WaterQuality != 35 {
		t.Errorf("water quality = %d, want 35", view.Tank.WaterQuality)
	}

	fh := view.Fish[0]
	if fh.Hunger != 60 {
		t.Errorf("hunger = %d, want 60", fh.Hunger)
	}
	// Poor water for 600 minutes bottoms health out, and happiness follows
	// it down once health crosses the misery threshold.
	if fh.Health != 0 {
		t.Errorf("health = %d, want 0", fh.Health)
	}
	if fh.Happiness != 0 {
		t.Errorf("happiness = %d, want 0", fh.Happiness)
	}
}

func TestDecayTracksMovingThresholds(t *testing.T) {
	clock := newClock()
	store := newFakeTankStore(clock.t)
	svc := newTestTank(store, &fakeSpender{}, clock)

	tank, _ := store.CreateTank("u1")
	tank.LastCleaning = clock.t.Add(-100 * time.Hour)
	tank.UpdatedAt = clock.t.Add(-10 * time.Minute)
	store.UpdateTank(tank)
	store.CreateFish("u1", "clownfish")

	view, err := svc.GetTank("u1")
	if err != nil {
		t.Fatalf("GetTank: %v", err)
	}

	// Water quality 45: health drops 3 per minute. Happiness only rises
	// while health is still above 80, so the gain stops mid-span instead
	// of compounding for the whole gap.
	fh := view.Fish[0]
	if fh.Health != 70 {
		t.Errorf("health = %d, want 70", fh.Health)
	}
	if fh.Happiness != 94 {
		t.Errorf("happiness = %d, want 94", fh.Happiness)
	}
}

func TestDecaySkipsFreshTank(t *testing.T) {
	clock := newClock()
	store := newFakeTankStore(clock.t)
	svc := newTestTank(store, &fakeSpender{}, clock)

	store.CreateTank("u1")
	clock.advance(30 * time.Second)

	view, err := svc.GetTank("u1")
	if err != nil {
		t.Fatalf("GetTank: %v", err)
	}
	if view.Tank.Cleanliness != 85 || view.Tank.WaterQuality != 90 {
		t.Errorf("tank decayed inside the tick interval: %d/%d", view.Tank.Cleanliness, view.Tank.WaterQuality)
	}
}
