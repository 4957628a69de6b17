package repositories

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aquasnap/aqua_api/model"
)

// ProfileRepository handles progression profile persistence
type ProfileRepository struct {
	BaseRepository
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *ProfileRepository) GetProfile(userID string) (*model.UserProfile, error) {
	var profile model.UserProfile
	if err := ds.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (ds *ProfileRepository) CreateProfile(userID, username string) (*model.UserProfile, error) {
	now := time.Now()
	profile := &model.UserProfile{
		ID:                 uuid.New().String(),
		UserID:             userID,
		Username:           username,
		CurrentLevel:       1,
		CertificatesEarned: []byte("[]"),
		BestScores:         []byte("{}"),
		Achievements:       []byte("[]"),
		JoinDate:           now,
		LastActive:         now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := ds.db.Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

func (ds *ProfileRepository) UpdateProfile(profile *model.UserProfile) error {
	profile.UpdatedAt = time.Now()
	return ds.db.Save(profile).Error
}

// TopProfiles returns the highest earners, used to rebuild the leaderboard
// cache on startup.
func (ds *ProfileRepository) TopProfiles(limit int) ([]model.UserProfile, error) {
	var profiles []model.UserProfile
	err := ds.db.Order("total_points_earned DESC").Limit(limit).Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
