package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"userhub/config"
	"userhub/internal/delivery/http/middleware"
	"userhub/internal/delivery/http/validator"
	"userhub/internal/domain/entity"
	"userhub/internal/domain/repository"
	"userhub/internal/infra/auth"
	mocksrepo "userhub/internal/mocks/repository"
	"userhub/internal/usecase/impl"
)

func newUserTestServer(t *testing.T, userRepo *mocksrepo.UserRepository) *echo.Echo {
	t.Helper()
	logger := slog.Default()

	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.AccessTTL = time.Hour

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	userUC := impl.NewUserService(impl.UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenService,
		Logger:       logger,
	})
	userHandler := NewUserHandler(userUC, logger)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	e.POST("/users", userHandler.RegisterUser)
	e.GET("/users/me", userHandler.Me, authMiddleware.Authenticate)
	e.GET("/users/:id", userHandler.GetUser)
	e.POST("/auth/login", userHandler.Login)
	e.GET("/health", HealthCheck)

	return e
}

func TestUserHandler_RegisterUser(t *testing.T) {
	repo := new(mocksrepo.UserRepository)
	e := newUserTestServer(t, repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "juan@example.com" && u.PasswordHash != "Str0ngPass!"
	})).Return(nil)

	rec := doJSON(e, http.MethodPost, "/users",
		`{"name": "Juan Pérez", "email": "Juan@Example.com", "password": "Str0ngPass!"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	// The password hash never leaves the service.
	assert.NotContains(t, rec.Body.String(), "password")
	assert.Contains(t, rec.Body.String(), "juan@example.com")
}

func TestUserHandler_RegisterUser_ShortPasswordIs400(t *testing.T) {
	repo := new(mocksrepo.UserRepository)
	e := newUserTestServer(t, repo)

	rec := doJSON(e, http.MethodPost, "/users",
		`{"name": "Juan", "email": "juan@example.com", "password": "short"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserHandler_LoginAndMe(t *testing.T) {
	repo := new(mocksrepo.UserRepository)
	e := newUserTestServer(t, repo)
	userID := uuid.New()

	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}
	hash, err := auth.NewBcryptHasher(cfg).Hash("Str0ngPass!")
	require.NoError(t, err)

	stored := &entity.User{
		ID:           userID,
		Name:         "Juan Pérez",
		Email:        "juan@example.com",
		PasswordHash: hash,
		Role:         entity.RoleClient,
	}
	repo.On("FindByEmail", mock.Anything, "juan@example.com").Return(stored, nil)
	repo.On("FindByID", mock.Anything, userID).Return(stored, nil)

	rec := doJSON(e, http.MethodPost, "/auth/login",
		`{"email": "juan@example.com", "password": "Str0ngPass!"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.AccessToken)

	// Use the issued token against the guarded endpoint.
	req := httptest.NewRequest(http.MethodGet, "/users/me", strings.NewReader(""))
	req.Header.Set("Authorization", "Bearer "+envelope.Data.AccessToken)
	meRec := httptest.NewRecorder()
	e.ServeHTTP(meRec, req)

	require.Equal(t, http.StatusOK, meRec.Code)
	assert.Contains(t, meRec.Body.String(), userID.String())
}

func TestUserHandler_Login_WrongPasswordIs401(t *testing.T) {
	repo := new(mocksrepo.UserRepository)
	e := newUserTestServer(t, repo)

	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}
	hash, err := auth.NewBcryptHasher(cfg).Hash("Str0ngPass!")
	require.NoError(t, err)

	repo.On("FindByEmail", mock.Anything, "juan@example.com").
		Return(&entity.User{Email: "juan@example.com", PasswordHash: hash}, nil)

	rec := doJSON(e, http.MethodPost, "/auth/login",
		`{"email": "juan@example.com", "password": "WrongPass!1"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestUserHandler_Me_WithoutTokenIs401(t *testing.T) {
	repo := new(mocksrepo.UserRepository)
	e := newUserTestServer(t, repo)

	rec := doJSON(e, http.MethodGet, "/users/me", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	repo := new(mocksrepo.UserRepository)
	e := newUserTestServer(t, repo)
	id := uuid.New()

	repo.On("FindByID", mock.Anything, id).
		Return(nil, repository.ErrUserNotFound)

	rec := doJSON(e, http.MethodGet, "/users/"+id.String(), "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_NOT_FOUND")
}

func TestHealthCheck(t *testing.T) {
	e := newUserTestServer(t, new(mocksrepo.UserRepository))

	rec := doJSON(e, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
