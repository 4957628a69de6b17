package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/aquasnap/aqua_api/dto"
	"github.com/aquasnap/aqua_api/model"
	"github.com/aquasnap/aqua_api/shared"
)

const (
	feedCostPerFish = 5
	cleanCost       = 20

	hungerPerHour      = 3.0
	cleanDecayPerHour  = 2.0
	maxCleanDecay      = 50
	cleanlinessFloor   = 35
	waterQualityFloor  = 20
	qualityLossPerFish = 5

	tickInterval = time.Minute

	// maxDecaySteps bounds the catch-up recurrence after long offline gaps.
	// Every meter saturates well within a week of minutes.
	maxDecaySteps = 7 * 24 * 60
)

// TankStore is the persistence surface the tank service needs. Satisfied by
// repositories.TankRepository.
type TankStore interface {
	GetTank(userID string) (*model.TankState, error)
	CreateTank(userID string) (*model.TankState, error)
	UpdateTank(tank *model.TankState) error
	GetFish(userID string) ([]model.OwnedFish, error)
	GetFishByID(userID, fishID string) (*model.OwnedFish, error)
	CreateFish(userID, speciesID string) (*model.OwnedFish, error)
	UpdateFish(fish *model.OwnedFish) error
	AllTankUserIDs() ([]string, error)
}

// spender deducts points before a paid action goes through. Satisfied by
// ProgressionService.
type spender interface {
	SpendPoints(userID string, amount int) (*model.UserProfile, error)
}

// shopSource resolves purchasable species. Satisfied by CatalogService.
type shopSource interface {
	ShopFishByID(id string) (*model.ShopFish, error)
}

// TankService runs the aquarium economy. Meters decay with wall-clock time:
// a background ticker keeps persisted tanks current, and every operation
// applies any decay the ticker has not caught up with yet.
type TankService struct {
	context.DefaultService

	sqlSvc         *SqliteService
	catalogSvc     *CatalogService
	progressionSvc *ProgressionService
	monitoringSvc  *MonitoringService

	store  TankStore
	wallet spender
	shop   shopSource
	now    func() time.Time

	mu   sync.Mutex
	stop chan struct{}
}

const TANK_SVC = "tank_svc"

func (svc TankService) Id() string {
	return TANK_SVC
}

func (svc *TankService) Configure(ctx *context.Context) error {
	svc.sqlSvc = ctx.Service(SQLITE_SVC).(*SqliteService)
	svc.catalogSvc = ctx.Service(CATALOG_SVC).(*CatalogService)
	svc.progressionSvc = ctx.Service(PROGRESSION_SVC).(*ProgressionService)
	svc.monitoringSvc = ctx.Service(MONITORING_SVC).(*MonitoringService)
	svc.now = time.Now
	svc.stop = make(chan struct{})
	return svc.DefaultService.Configure(ctx)
}

func (svc *TankService) Start() error {
	svc.store = svc.sqlSvc.Tanks()
	svc.wallet = svc.progressionSvc
	svc.shop = svc.catalogSvc

	go svc.decayLoop()
	return nil
}

func (svc *TankService) Shutdown() {
	close(svc.stop)
}

// GetTank returns the user's aquarium, creating it on first visit.
func (svc *TankService) GetTank(userID string) (*dto.TankView, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	tank, fish, err := svc.loadCurrent(userID)
	if err != nil {
		return nil, err
	}
	return &dto.TankView{Tank: *tank, Fish: fish}, nil
}

// BuyFish charges the shop price and drops a new fish into the tank. The
// charge must clear before the fish exists.
func (svc *TankService) BuyFish(userID, speciesID string) (*dto.TankActionResult, error) {
	entry, err := svc.shop.ShopFishByID(speciesID)
	if err != nil {
		return nil, shared.NewBadRequestError(err, "Unknown species")
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	tank, _, err := svc.loadCurrent(userID)
	if err != nil {
		return nil, err
	}

	profile, err := svc.wallet.SpendPoints(userID, entry.Price)
	if err != nil {
		return nil, err
	}

	if _, err := svc.store.CreateFish(userID, speciesID); err != nil {
		return nil, shared.NewInternalError(err, "Failed to add fish")
	}

	// Extra bioload degrades water quality immediately.
	fish, err := svc.store.GetFish(userID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to load fish")
	}
	tank.WaterQuality = clampMeter(maxInt(waterQualityFloor, tank.Cleanliness-qualityLossPerFish*len(fish)))
	if err := svc.store.UpdateTank(tank); err != nil {
		return nil, shared.NewInternalError(err, "Failed to save tank")
	}

	log.WithFields(log.Fields{
		"user_id": userID,
		"species": speciesID,
		"price":   entry.Price,
	}).Info("Fish purchased")

	svc.recordAction("buy_fish")
	return svc.actionResult(tank, fish, entry.Price, profile.CurrentSpendablePoints), nil
}

// FeedFish feeds one fish for a flat per-fish cost.
func (svc *TankService) FeedFish(userID, fishID string) (*dto.TankActionResult, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	tank, _, err := svc.loadCurrent(userID)
	if err != nil {
		return nil, err
	}

	target, err := svc.store.GetFishByID(userID, fishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Fish not found")
		}
		return nil, shared.NewInternalError(err, "Failed to load fish")
	}

	profile, err := svc.wallet.SpendPoints(userID, feedCostPerFish)
	if err != nil {
		return nil, err
	}

	svc.applyFeeding(target)
	if err := svc.store.UpdateFish(target); err != nil {
		return nil, shared.NewInternalError(err, "Failed to save fish")
	}

	fish, err := svc.store.GetFish(userID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to load fish")
	}
	svc.recordAction("feed_fish")
	return svc.actionResult(tank, fish, feedCostPerFish, profile.CurrentSpendablePoints), nil
}

// FeedAllFish feeds the whole tank, charging per fish.
func (svc *TankService) FeedAllFish(userID string) (*dto.TankActionResult, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	tank, fish, err := svc.loadCurrent(userID)
	if err != nil {
		return nil, err
	}
	if len(fish) == 0 {
		return nil, shared.NewBadRequestError(fmt.Errorf("tank %s is empty", userID), "No fish to feed")
	}

	cost := feedCostPerFish * len(fish)
	profile, err := svc.wallet.SpendPoints(userID, cost)
	if err != nil {
		return nil, err
	}

	for i := range fish {
		svc.applyFeeding(&fish[i])
		if err := svc.store.UpdateFish(&fish[i]); err != nil {
			return nil, shared.NewInternalError(err, "Failed to save fish")
		}
	}
	svc.recordAction("feed_all")
	return svc.actionResult(tank, fish, cost, profile.CurrentSpendablePoints), nil
}

// CleanTank restores the water and cheers up every fish.
func (svc *TankService) CleanTank(userID string) (*dto.TankActionResult, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	tank, fish, err := svc.loadCurrent(userID)
	if err != nil {
		return nil, err
	}

	profile, err := svc.wallet.SpendPoints(userID, cleanCost)
	if err != nil {
		return nil, err
	}

	now := svc.now()
	tank.Cleanliness = 95
	tank.WaterQuality = 95
	tank.LastCleaning = now
	if err := svc.store.UpdateTank(tank); err != nil {
		return nil, shared.NewInternalError(err, "Failed to save tank")
	}

	for i := range fish {
		fish[i].Happiness = clampMeter(fish[i].Happiness + 15)
		fish[i].Health = clampMeter(fish[i].Health + 10)
		fish[i].LastCleaned = now
		if err := svc.store.UpdateFish(&fish[i]); err != nil {
			return nil, shared.NewInternalError(err, "Failed to save fish")
		}
	}

	log.WithField("user_id", userID).Info("Tank cleaned")
	svc.recordAction("clean")
	return svc.actionResult(tank, fish, cleanCost, profile.CurrentSpendablePoints), nil
}

// loadCurrent fetches the tank and fish with any outstanding decay applied
// and persisted.
func (svc *TankService) loadCurrent(userID string) (*model.TankState, []model.OwnedFish, error) {
	tank, err := svc.store.GetTank(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, shared.NewInternalError(err, "Failed to load tank")
		}
		tank, err = svc.store.CreateTank(userID)
		if err != nil {
			return nil, nil, shared.NewInternalError(err, "Failed to create tank")
		}
	}

	fish, err := svc.store.GetFish(userID)
	if err != nil {
		return nil, nil, shared.NewInternalError(err, "Failed to load fish")
	}

	if err := svc.applyDecay(tank, fish, svc.now()); err != nil {
		return nil, nil, err
	}
	return tank, fish, nil
}

// applyDecay moves the tank to the present. Cleanliness and water quality
// are pure functions of the last cleaning time and the fish count; fish
// meters replay the per-minute recurrence for the elapsed span so the
// thresholds track the meters as they move, not their pre-decay values.
func (svc *TankService) applyDecay(tank *model.TankState, fish []model.OwnedFish, now time.Time) error {
	elapsed := now.Sub(tank.UpdatedAt)
	if elapsed < tickInterval {
		return nil
	}
	minutes := int(elapsed.Minutes())

	hoursSinceClean := now.Sub(tank.LastCleaning).Hours()
	decay := hoursSinceClean * cleanDecayPerHour
	if decay > maxCleanDecay {
		decay = maxCleanDecay
	}
	tank.Cleanliness = maxInt(cleanlinessFloor, 100-int(decay))
	tank.WaterQuality = maxInt(waterQualityFloor, tank.Cleanliness-qualityLossPerFish*len(fish))

	if err := svc.store.UpdateTank(tank); err != nil {
		return shared.NewInternalError(err, "Failed to save tank")
	}

	steps := minutes
	if steps > maxDecaySteps {
		steps = maxDecaySteps
	}

	for i := range fish {
		f := &fish[i]
		startHunger := f.Hunger

		for m := 1; m <= steps; m++ {
			f.Hunger = clampMeter(startHunger + int(float64(m)*hungerPerHour/60))

			healthDelta := 0
			if f.Hunger > 70 {
				healthDelta -= 2
			}
			if tank.WaterQuality < 50 {
				healthDelta -= 3
			}
			if tank.WaterQuality > 80 {
				healthDelta++
			}

			happinessDelta := 0
			if f.Health > 80 {
				happinessDelta += 2
			}
			if f.Health < 30 {
				happinessDelta -= 5
			}
			if tank.Cleanliness > 80 {
				happinessDelta++
			}
			if tank.Cleanliness < 40 {
				happinessDelta -= 3
			}

			f.Health = clampMeter(f.Health + healthDelta)
			f.Happiness = clampMeter(f.Happiness + happinessDelta)
		}

		f.Hunger = clampMeter(startHunger + int(float64(minutes)*hungerPerHour/60))

		if err := svc.store.UpdateFish(f); err != nil {
			return shared.NewInternalError(err, "Failed to save fish")
		}
	}
	return nil
}

func (svc *TankService) applyFeeding(f *model.OwnedFish) {
	f.Hunger = clampMeter(f.Hunger - 40)
	f.Happiness = clampMeter(f.Happiness + 10)
	f.Health = clampMeter(f.Health + 5)
	f.LastFed = svc.now()
}

func (svc *TankService) recordAction(action string) {
	if svc.monitoringSvc != nil {
		svc.monitoringSvc.RecordTankAction(action)
	}
}

func (svc *TankService) actionResult(tank *model.TankState, fish []model.OwnedFish, spent, remaining int) *dto.TankActionResult {
	return &dto.TankActionResult{
		Tank:            dto.TankView{Tank: *tank, Fish: fish},
		PointsSpent:     spent,
		PointsRemaining: remaining,
	}
}

// decayLoop keeps persisted tanks decaying even while their owners are
// offline.
func (svc *TankService) decayLoop() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-svc.stop:
			return
		case <-ticker.C:
			svc.tickAll()
		}
	}
}

func (svc *TankService) tickAll() {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	userIDs, err := svc.store.AllTankUserIDs()
	if err != nil {
		log.WithError(err).Error("Failed to list tanks for decay tick")
		return
	}

	now := svc.now()
	for _, userID := range userIDs {
		tank, err := svc.store.GetTank(userID)
		if err != nil {
			log.WithError(err).WithField("user_id", userID).Warn("Failed to load tank for decay")
			continue
		}
		fish, err := svc.store.GetFish(userID)
		if err != nil {
			log.WithError(err).WithField("user_id", userID).Warn("Failed to load fish for decay")
			continue
		}
		if err := svc.applyDecay(tank, fish, now); err != nil {
			log.WithError(err).WithField("user_id", userID).Warn("Failed to apply decay")
		}
	}
}

func clampMeter(v int) int {
	if v < shared.MeterMin {
		return shared.MeterMin
	}
	if v > shared.MeterMax {
		return shared.MeterMax
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
