package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aquasnap/aqua_api/dto"
	"github.com/aquasnap/aqua_api/shared"
)

type GameHandler struct {
	gameSvc    GameServiceInterface
	catalogSvc CatalogServiceInterface
}

func NewGameHandler(gameSvc GameServiceInterface, catalogSvc CatalogServiceInterface) *GameHandler {
	return &GameHandler{
		gameSvc:    gameSvc,
		catalogSvc: catalogSvc,
	}
}

// @Summary List games
// @Description List the available game types and their settings
// @Tags games
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=[]dto.GameConfigView}
// @Router /api/v1/games [get]
func (h *GameHandler) ListGames(c *fiber.Ctx) error {
	configs := h.catalogSvc.GameConfigs()

	views := make([]dto.GameConfigView, 0, len(configs))
	for _, cfg := range configs {
		views = append(views, dto.NewGameConfigView(cfg))
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", views)
}

// @Summary Start game
// @Description Open a new quiz session, abandoning any previous one
// @Tags games
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param startRequest body dto.StartGameRequest true "Game type"
// @Success 201 {object} shared.Response{data=dto.SessionState}
// @Router /api/v1/games/start [post]
func (h *GameHandler) StartGame(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.StartGameRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}
	if err := dto.Validate(req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	state, err := h.gameSvc.StartGame(userID, req.GameType)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Created", state)
}

// @Summary Session state
// @Description Current authoritative state of a quiz session
// @Tags games
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param sessionId path string true "Session ID"
// @Success 200 {object} shared.Response{data=dto.SessionState}
// @Router /api/v1/games/{sessionId} [get]
func (h *GameHandler) GetState(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	state, err := h.gameSvc.GetState(userID, c.Params("sessionId"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", state)
}

// @Summary Submit answer
// @Description Answer the current question. Late answers are not accepted.
// @Tags games
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param sessionId path string true "Session ID"
// @Param answerRequest body dto.AnswerRequest true "Answer"
// @Success 200 {object} shared.Response{data=dto.AnswerResult}
// @Router /api/v1/games/{sessionId}/answer [post]
func (h *GameHandler) Answer(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}
	if err := dto.Validate(req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	result, err := h.gameSvc.Answer(userID, c.Params("sessionId"), req.QuestionIndex, req.Answer)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", result)
}

// @Summary Exit game
// @Description Abandon the session without recording a score
// @Tags games
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param sessionId path string true "Session ID"
// @Success 200 {object} shared.Response{data=string}
// @Router /api/v1/games/{sessionId}/exit [post]
func (h *GameHandler) Exit(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	if err := h.gameSvc.Exit(userID, c.Params("sessionId")); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", "session abandoned")
}

// @Summary Game results
// @Description Final summary of a finished session
// @Tags games
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param sessionId path string true "Session ID"
// @Success 200 {object} shared.Response{data=dto.FinishResult}
// @Router /api/v1/games/{sessionId}/results [get]
func (h *GameHandler) Results(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	result, err := h.gameSvc.Results(userID, c.Params("sessionId"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", result)
}
