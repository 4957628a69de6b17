package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/aquasnap/aqua_api/shared"
)

type UserHandler struct {
	progressionSvc ProgressionServiceInterface
}

func NewUserHandler(progressionSvc ProgressionServiceInterface) *UserHandler {
	return &UserHandler{progressionSvc: progressionSvc}
}

// @Summary Get user profile
// @Description Get the progression profile of the authenticated user
// @Tags user
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.ProfileResponse}
// @Router /api/v1/user/profile [get]
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	profile, err := h.progressionSvc.GetProfile(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", profile)
}

// @Summary Get achievements
// @Description List everything the user has unlocked
// @Tags user
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=[]model.Achievement}
// @Router /api/v1/user/achievements [get]
func (h *UserHandler) GetAchievements(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	achievements, err := h.progressionSvc.Achievements(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", achievements)
}

// @Summary Leaderboard
// @Description Top players by lifetime points
// @Tags user
// @Accept json
// @Produce json
// @Param limit query int false "Number of entries (default 10, max 100)"
// @Success 200 {object} shared.Response{data=[]dto.LeaderboardEntry}
// @Router /api/v1/leaderboard [get]
func (h *UserHandler) GetLeaderboard(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	entries, err := h.progressionSvc.Leaderboard(limit)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", entries)
}
