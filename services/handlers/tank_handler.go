package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aquasnap/aqua_api/dto"
	"github.com/aquasnap/aqua_api/shared"
)

type TankHandler struct {
	tankSvc TankServiceInterface
}

func NewTankHandler(tankSvc TankServiceInterface) *TankHandler {
	return &TankHandler{tankSvc: tankSvc}
}

// @Summary Get tank
// @Description Current aquarium state with decay applied
// @Tags tank
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.TankView}
// @Router /api/v1/tank [get]
func (h *TankHandler) GetTank(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	view, err := h.tankSvc.GetTank(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", view)
}

// @Summary Buy fish
// @Description Purchase a fish from the shop
// @Tags tank
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param buyRequest body dto.BuyFishRequest true "Species"
// @Success 201 {object} shared.Response{data=dto.TankActionResult}
// @Router /api/v1/tank/fish [post]
func (h *TankHandler) BuyFish(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.BuyFishRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}
	if err := dto.Validate(req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	result, err := h.tankSvc.BuyFish(userID, req.SpeciesID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Created", result)
}

// @Summary Feed fish
// @Description Feed a single fish
// @Tags tank
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param fishId path string true "Fish ID"
// @Success 200 {object} shared.Response{data=dto.TankActionResult}
// @Router /api/v1/tank/fish/{fishId}/feed [post]
func (h *TankHandler) FeedFish(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	result, err := h.tankSvc.FeedFish(userID, c.Params("fishId"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", result)
}

// @Summary Feed all fish
// @Description Feed every fish in the tank
// @Tags tank
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.TankActionResult}
// @Router /api/v1/tank/feed [post]
func (h *TankHandler) FeedAllFish(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	result, err := h.tankSvc.FeedAllFish(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", result)
}

// @Summary Clean tank
// @Description Clean the tank, restoring water quality
// @Tags tank
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.TankActionResult}
// @Router /api/v1/tank/clean [post]
func (h *TankHandler) CleanTank(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	result, err := h.tankSvc.CleanTank(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", result)
}
