package services

import (
	"context"
	"errors"
	"fmt"

	appContext "github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/aquasnap/aqua_api/dto"
	"github.com/aquasnap/aqua_api/shared"
)

// AuthService handles account lifecycle and request authentication.
// Revoked tokens are held in a redis denylist until they would have
// expired anyway.
type AuthService struct {
	appContext.DefaultService

	sqlSvc         *SqliteService
	jwtSvc         *JWTService
	redisSvc       *RedisService
	progressionSvc *ProgressionService
}

const AUTH_SVC = "auth_svc"

const denylistPrefix = "auth:denylist:"

func (svc AuthService) Id() string {
	return AUTH_SVC
}

func (svc *AuthService) Configure(ctx *appContext.Context) error {
	svc.sqlSvc = ctx.Service(SQLITE_SVC).(*SqliteService)
	svc.jwtSvc = ctx.Service(JWT_SVC).(*JWTService)
	svc.redisSvc = ctx.Service(REDIS_SVC).(*RedisService)
	svc.progressionSvc = ctx.Service(PROGRESSION_SVC).(*ProgressionService)
	return svc.DefaultService.Configure(ctx)
}

func (svc *AuthService) Start() error {
	return nil
}

// Register creates the account, its progression profile and a first token.
func (svc *AuthService) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, shared.NewBadRequestError(err, "Invalid request")
	}

	available, err := svc.sqlSvc.Users().IsUsernameAvailable(req.Username)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to check username")
	}
	if !available {
		return nil, shared.NewConflictError(fmt.Errorf("username %s taken", req.Username), "Username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to hash password")
	}

	user, err := svc.sqlSvc.Users().CreateUser(req.Username, string(hash))
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to create account")
	}

	if _, err := svc.progressionSvc.InitializeProfile(user.ID, user.Username); err != nil {
		return nil, err
	}

	log.WithField("username", user.Username).Info("Account registered")
	return svc.issueToken(user.ID, user.Username)
}

// Login verifies credentials and issues a fresh token.
func (svc *AuthService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, shared.NewBadRequestError(err, "Invalid request")
	}

	user, err := svc.sqlSvc.Users().GetUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewUnauthorizedError(err, "Invalid credentials")
		}
		return nil, shared.NewInternalError(err, "Failed to load account")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, shared.NewUnauthorizedError(err, "Invalid credentials")
	}

	if err := svc.sqlSvc.Users().UpdateLastLogin(user.ID); err != nil {
		log.WithError(err).WithField("user_id", user.ID).Warn("Failed to record login time")
	}

	return svc.issueToken(user.ID, user.Username)
}

// Logout revokes the presented token for its remaining lifetime.
func (svc *AuthService) Logout(token string) error {
	if _, err := svc.jwtSvc.VerifyJWTToken(token); err != nil {
		return shared.NewUnauthorizedError(err, "Invalid token")
	}

	err := svc.redisSvc.Set(context.Background(), denylistPrefix+token, "revoked", svc.jwtSvc.AccessTokenDuration)
	if err != nil {
		return shared.NewInternalError(err, "Failed to revoke token")
	}
	return nil
}

func (svc *AuthService) issueToken(userID, username string) (*dto.AuthResponse, error) {
	token, expiresAt, err := svc.jwtSvc.ToJWT(userID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to issue token")
	}

	return &dto.AuthResponse{
		Token:     token,
		UserID:    userID,
		Username:  username,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

// RequiredAuth authenticates the request and stores the user id in locals.
func (svc *AuthService) RequiredAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := svc.jwtSvc.ExtractTokenFromHeader(c.Get("Authorization"))
		if err != nil {
			return shared.NewUnauthorizedError(err, "Unauthorized")
		}

		if svc.isRevoked(token) {
			return shared.NewUnauthorizedError(errors.New("token revoked"), "Unauthorized")
		}

		userID, err := svc.jwtSvc.VerifyJWTToken(token)
		if err != nil || userID == "" {
			return shared.NewUnauthorizedError(err, "Unauthorized")
		}

		c.Locals(shared.UserID, userID)
		c.Locals(shared.AuthToken, token)
		return c.Next()
	}
}

func (svc *AuthService) isRevoked(token string) bool {
	revoked, err := svc.redisSvc.Exists(context.Background(), denylistPrefix+token)
	if err != nil {
		log.WithError(err).Warn("Failed to check token denylist")
		return false
	}
	return revoked
}
