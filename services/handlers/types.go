package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aquasnap/aqua_api/dto"
	"github.com/aquasnap/aqua_api/model"
)

type AuthServiceInterface interface {
	Register(req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(token string) error
	RequiredAuth() fiber.Handler
}

type ProgressionServiceInterface interface {
	GetProfile(userID string) (*dto.ProfileResponse, error)
	Achievements(userID string) ([]model.Achievement, error)
	Leaderboard(limit int) ([]dto.LeaderboardEntry, error)
}

type GameServiceInterface interface {
	StartGame(userID, gameType string) (*dto.SessionState, error)
	GetState(userID, sessionID string) (*dto.SessionState, error)
	Answer(userID, sessionID string, questionIndex int, answer string) (*dto.AnswerResult, error)
	Exit(userID, sessionID string) error
	Results(userID, sessionID string) (*dto.FinishResult, error)
}

type TankServiceInterface interface {
	GetTank(userID string) (*dto.TankView, error)
	BuyFish(userID, speciesID string) (*dto.TankActionResult, error)
	FeedFish(userID, fishID string) (*dto.TankActionResult, error)
	FeedAllFish(userID string) (*dto.TankActionResult, error)
	CleanTank(userID string) (*dto.TankActionResult, error)
}

type CatalogServiceInterface interface {
	Species() []model.MarineSpecies
	SpeciesByID(id string) (*model.MarineSpecies, error)
	ShopFish() []model.ShopFish
	LearningResources() []model.LearningResource
	TriviaCategories() []string
	GameConfigs() []model.GameConfig
}
