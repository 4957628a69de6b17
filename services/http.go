package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	log "github.com/sirupsen/logrus"

	_ "github.com/aquasnap/aqua_api/docs"
	"github.com/aquasnap/aqua_api/services/handlers"
	"github.com/aquasnap/aqua_api/shared"
)

type HttpService struct {
	context.DefaultService

	authSvc        *AuthService
	progressionSvc *ProgressionService
	gameSvc        *GameService
	tankSvc        *TankService
	catalogSvc     *CatalogService
	monitoringSvc  *MonitoringService

	port   int
	server *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	svc.authSvc = ctx.Service(AUTH_SVC).(*AuthService)
	svc.progressionSvc = ctx.Service(PROGRESSION_SVC).(*ProgressionService)
	svc.gameSvc = ctx.Service(GAME_SVC).(*GameService)
	svc.tankSvc = ctx.Service(TANK_SVC).(*TankService)
	svc.catalogSvc = ctx.Service(CATALOG_SVC).(*CatalogService)
	svc.monitoringSvc = ctx.Service(MONITORING_SVC).(*MonitoringService)

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	app := fiber.New(fiber.Config{
		ErrorHandler: svc.handleError,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(MonitoringMiddleware(svc.monitoringSvc))

	app.Get("/ping", svc.ping)
	app.Get("/swagger/*", swagger.HandlerDefault)

	svc.registerRoutes(app)

	app.Use(func(c *fiber.Ctx) error {
		return shared.NewNotFoundError(errors.New("page not found"), "Page not found")
	})

	svc.server = app

	log.Printf("HTTP server listening on :%v", svc.port)
	return app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) Shutdown() {
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

func (svc *HttpService) registerRoutes(app *fiber.App) {
	authHandler := handlers.NewAuthHandler(svc.authSvc)
	userHandler := handlers.NewUserHandler(svc.progressionSvc)
	gameHandler := handlers.NewGameHandler(svc.gameSvc, svc.catalogSvc)
	tankHandler := handlers.NewTankHandler(svc.tankSvc)
	contentHandler := handlers.NewContentHandler(svc.catalogSvc)

	requiredAuth := svc.authSvc.RequiredAuth()

	v1 := app.Group("/api/v1")
	v1.Get("/ping", svc.ping)

	auth := v1.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", requiredAuth, authHandler.Logout)

	user := v1.Group("/user", requiredAuth)
	user.Get("/profile", userHandler.GetProfile)
	user.Get("/achievements", userHandler.GetAchievements)

	v1.Get("/leaderboard", userHandler.GetLeaderboard)

	games := v1.Group("/games")
	games.Get("/", gameHandler.ListGames)
	games.Post("/start", requiredAuth, gameHandler.StartGame)
	games.Get("/:sessionId", requiredAuth, gameHandler.GetState)
	games.Post("/:sessionId/answer", requiredAuth, gameHandler.Answer)
	games.Post("/:sessionId/exit", requiredAuth, gameHandler.Exit)
	games.Get("/:sessionId/results", requiredAuth, gameHandler.Results)

	tank := v1.Group("/tank", requiredAuth)
	tank.Get("/", tankHandler.GetTank)
	tank.Post("/fish", tankHandler.BuyFish)
	tank.Post("/fish/:fishId/feed", tankHandler.FeedFish)
	tank.Post("/feed", tankHandler.FeedAllFish)
	tank.Post("/clean", tankHandler.CleanTank)

	content := v1.Group("/content")
	content.Get("/species", contentHandler.ListSpecies)
	content.Get("/species/:id", contentHandler.GetSpecies)
	content.Get("/shop", contentHandler.ListShopFish)
	content.Get("/trivia-categories", contentHandler.ListTriviaCategories)
	content.Get("/resources", contentHandler.ListResources)
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set("Cache-Control", "max-age=10")

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", "pong")
}

func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		if appErr.StatusCode >= 500 {
			log.WithError(appErr.Err).WithField("path", c.Path()).Error("Request failed")
		}
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	log.WithError(err).WithField("path", c.Path()).Error("Unhandled error")
	return shared.ResponseInternalError(c, err)
}
