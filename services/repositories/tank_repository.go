package repositories

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aquasnap/aqua_api/model"
)

// TankRepository handles aquarium state persistence
type TankRepository struct {
	BaseRepository
}

func NewTankRepository(db *gorm.DB) *TankRepository {
	return &TankRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *TankRepository) GetTank(userID string) (*model.TankState, error) {
	var tank model.TankState
	if err := ds.db.Where("user_id = ?", userID).First(&tank).Error; err != nil {
		return nil, err
	}
	return &tank, nil
}

func (ds *TankRepository) CreateTank(userID string) (*model.TankState, error) {
	now := time.Now()
	tank := &model.TankState{
		UserID:       userID,
		Cleanliness:  85,
		WaterQuality: 90,
		LastCleaning: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := ds.db.Create(tank).Error; err != nil {
		return nil, err
	}
	return tank, nil
}

func (ds *TankRepository) UpdateTank(tank *model.TankState) error {
	tank.UpdatedAt = time.Now()
	return ds.db.Save(tank).Error
}

func (ds *TankRepository) GetFish(userID string) ([]model.OwnedFish, error) {
	var fish []model.OwnedFish
	err := ds.db.Where("user_id = ?", userID).Order("date_acquired ASC").Find(&fish).Error
	if err != nil {
		return nil, err
	}
	return fish, nil
}

func (ds *TankRepository) GetFishByID(userID, fishID string) (*model.OwnedFish, error) {
	var fish model.OwnedFish
	err := ds.db.Where("id = ? AND user_id = ?", fishID, userID).First(&fish).Error
	if err != nil {
		return nil, err
	}
	return &fish, nil
}

func (ds *TankRepository) CreateFish(userID, speciesID string) (*model.OwnedFish, error) {
	now := time.Now()
	fish := &model.OwnedFish{
		ID:           uuid.New().String(),
		UserID:       userID,
		SpeciesID:    speciesID,
		Health:       100,
		Happiness:    80,
		Hunger:       30,
		LastFed:      now,
		LastCleaned:  now,
		DateAcquired: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := ds.db.Create(fish).Error; err != nil {
		return nil, err
	}
	return fish, nil
}

func (ds *TankRepository) UpdateFish(fish *model.OwnedFish) error {
	fish.UpdatedAt = time.Now()
	return ds.db.Save(fish).Error
}

// AllTankUserIDs lists every user with a tank, for the background decay tick.
func (ds *TankRepository) AllTankUserIDs() ([]string, error) {
	var ids []string
	err := ds.db.Model(&model.TankState{}).Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
