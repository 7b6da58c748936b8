package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-marketplace/internal/app"
	"github.com/MKhiriev/go-marketplace/internal/config"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/store"
	"github.com/MKhiriev/go-marketplace/internal/utils"
	"github.com/MKhiriev/go-marketplace/models"
)

// dummyPassword is hashed once and compared against on logins for unknown
// emails, so both failure paths cost one bcrypt comparison.
const dummyPassword = "marketplace-dummy-password"

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// passwordHashCost is the bcrypt cost used for new password hashes.
	passwordHashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	dummyHashOnce sync.Once
	dummyHash     string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		passwordHashCost: cfg.PasswordHashCost,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		logger:           logger,
	}
}

// Register creates a new account and issues a token for it.
//
// The request must already be normalized and validated. The email is
// lower-cased again for callers that skip the handler, and the password is
// hashed with bcrypt before the user is stored.
//
// Returns ErrUserAlreadyExists when the username or email is taken. The
// uniqueness constraints of the store settle concurrent registrations.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	user := models.User{
		Username: req.Username,
		Email:    models.NormalizeEmail(req.Email),
	}

	exists, err := a.userRepository.ExistsByEmailOrUsername(ctx, user.Email, user.Username)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("user existence check failed")
		return models.AuthResponse{}, fmt.Errorf("user existence check failed: %w", err)
	}
	if exists {
		return models.AuthResponse{}, ErrUserAlreadyExists
	}

	user.PasswordHash, err = utils.HashPassword(req.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return models.AuthResponse{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			return models.AuthResponse{}, ErrUserAlreadyExists
		}
		log.Err(err).Str("func", "*authService.Register").Str("username", user.Username).Msg("user creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.authResponse(ctx, registeredUser, app.MsgUserRegistered)
}

// Login authenticates a user by email and password.
//
// Unknown emails and wrong passwords both return ErrInvalidCredentials and
// both run a bcrypt comparison.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, models.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			_ = utils.CheckPassword(a.getDummyHash(), req.Password)
			return models.AuthResponse{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.AuthResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.CheckPassword(foundUser.PasswordHash, req.Password); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			log.Debug().Int64("id", foundUser.ID).Msg("wrong password")
			return models.AuthResponse{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Int64("id", foundUser.ID).Msg("password comparison failed")
		return models.AuthResponse{}, fmt.Errorf("password comparison failed: %w", err)
	}

	return a.authResponse(ctx, foundUser, app.MsgLoginSuccessful)
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Identity(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Expired tokens are reported as ErrTokenIsExpired, every other validation
// failure (bad signature, wrong issuer, malformed) as ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) authResponse(ctx context.Context, user models.User, message string) (models.AuthResponse, error) {
	token, err := a.CreateToken(ctx, user)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", user.ID).Msg("creation of token failed")
		return models.AuthResponse{}, err
	}

	return models.AuthResponse{
		Message: message,
		Token:   token.SignedString,
		User:    user.Identity(),
	}, nil
}

func (a *authService) getDummyHash() string {
	a.dummyHashOnce.Do(func() {
		hash, err := utils.HashPassword(dummyPassword, a.passwordHashCost)
		if err != nil {
			a.logger.Err(err).Msg("dummy password hashing failed")
			return
		}
		a.dummyHash = hash
	})
	return a.dummyHash
}
