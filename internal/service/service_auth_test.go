package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-marketplace/internal/app"
	"github.com/MKhiriev/go-marketplace/internal/config"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/mock"
	"github.com/MKhiriev/go-marketplace/internal/store"
	"github.com/MKhiriev/go-marketplace/internal/utils"
	"github.com/MKhiriev/go-marketplace/models"
)

var testAppConfig = config.App{
	TokenSignKey:     "test-sign-key",
	TokenIssuer:      "go-marketplace-test",
	TokenDuration:    time.Hour,
	PasswordHashCost: bcrypt.MinCost,
	Version:          "test",
}

func newTestAuthSvc(t *testing.T) (*authService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	return NewAuthService(repo, testAppConfig, logger.Nop()).(*authService), repo
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	req := models.RegisterRequest{Username: "john", Email: " John@Example.COM ", Password: "password123"}

	gomock.InOrder(
		repo.EXPECT().ExistsByEmailOrUsername(ctx, "john@example.com", "john").Return(false, nil),
		repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "john", u.Username)
				assert.Equal(t, "john@example.com", u.Email)
				assert.NoError(t, utils.CheckPassword(u.PasswordHash, "password123"))
				u.ID = 1
				return u, nil
			},
		),
	)

	resp, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, app.MsgUserRegistered, resp.Message)
	assert.Equal(t, models.Identity{ID: 1, Username: "john", Email: "john@example.com"}, resp.User)

	token, err := svc.ParseToken(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User, token.Identity())
}

func TestAuthService_Register_AlreadyExists(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().ExistsByEmailOrUsername(ctx, gomock.Any(), gomock.Any()).Return(true, nil)

	_, err := svc.Register(ctx, models.RegisterRequest{Username: "john", Email: "john@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_Register_LosesRace(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().ExistsByEmailOrUsername(ctx, gomock.Any(), gomock.Any()).Return(false, nil)
	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrUserAlreadyExists)

	_, err := svc.Register(ctx, models.RegisterRequest{Username: "john", Email: "john@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_Register_StorageError(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().ExistsByEmailOrUsername(ctx, gomock.Any(), gomock.Any()).Return(false, store.ErrExecutingQuery)

	_, err := svc.Register(ctx, models.RegisterRequest{Username: "john", Email: "john@example.com", Password: "password123"})
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrUserAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	stored := models.User{ID: 7, Username: "jane", Email: "jane@example.com", PasswordHash: mustHash(t, "secret1")}
	repo.EXPECT().FindUserByEmail(ctx, "jane@example.com").Return(stored, nil)

	resp, err := svc.Login(ctx, models.LoginRequest{Email: "JANE@example.com ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, app.MsgLoginSuccessful, resp.Message)
	assert.Equal(t, stored.Identity(), resp.User)
	assert.NotEmpty(t, resp.Token)
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	stored := models.User{ID: 7, Email: "jane@example.com", PasswordHash: mustHash(t, "secret1")}
	repo.EXPECT().FindUserByEmail(ctx, "jane@example.com").Return(stored, nil)
	repo.EXPECT().FindUserByEmail(ctx, "nobody@example.com").Return(models.User{}, store.ErrNoUserWasFound)

	_, wrongPassword := svc.Login(ctx, models.LoginRequest{Email: "jane@example.com", Password: "wrong"})
	_, unknownEmail := svc.Login(ctx, models.LoginRequest{Email: "nobody@example.com", Password: "secret1"})

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	assert.NotEmpty(t, svc.dummyHash, "unknown email still runs a bcrypt comparison")
}

func TestAuthService_Login_StorageError(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, store.ErrScanningRow)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "jane@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, store.ErrScanningRow)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_ParseToken(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	ctx := context.Background()
	user := models.User{ID: 3, Username: "john", Email: "john@example.com"}

	token, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, user.Identity(), parsed.Identity())

	_, err = svc.ParseToken(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	otherKey := NewAuthService(nil, config.App{TokenSignKey: "other", TokenIssuer: testAppConfig.TokenIssuer, TokenDuration: time.Hour}, logger.Nop())
	_, err = otherKey.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	token, err := utils.GenerateJWTToken(testAppConfig.TokenIssuer, models.Identity{ID: 1}, time.Nanosecond, testAppConfig.TokenSignKey)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	_, err = svc.ParseToken(context.Background(), token.SignedString)
	assert.True(t, errors.Is(err, ErrTokenIsExpired))
}

func TestAuthService_CreateToken_MisconfiguredKey(t *testing.T) {
	svc := NewAuthService(nil, config.App{TokenIssuer: "x", TokenDuration: time.Hour}, logger.Nop())

	_, err := svc.CreateToken(context.Background(), models.User{ID: 1})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
