package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"userhub/internal/delivery/http/middleware"
	"userhub/internal/delivery/http/validator"
	"userhub/internal/domain/entity"
	"userhub/internal/domain/repository"
	mocksrepo "userhub/internal/mocks/repository"
	"userhub/internal/usecase/impl"
)

// newTestServer wires a real echo instance with the production routes,
// validator and error handler over mocked repositories.
func newTestServer(profileRepo *mocksrepo.ProfileRepository) *echo.Echo {
	logger := slog.Default()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	profileUC := impl.NewProfileService(profileRepo, logger)
	profileHandler := NewProfileHandler(profileUC, logger)

	e.POST("/profiles", profileHandler.CreateProfile)
	e.GET("/profiles", profileHandler.GetAllProfiles)
	e.GET("/profiles/phone/:phone", profileHandler.GetProfileByPhone)
	e.GET("/profiles/document/:documentNumber", profileHandler.GetProfileByDocumentNumber)
	e.GET("/profiles/validate/phone/:phone", profileHandler.ValidatePhone)
	e.GET("/profiles/validate/document/:documentNumber", profileHandler.ValidateDocumentNumber)
	e.GET("/profiles/:id", profileHandler.GetProfile)
	e.PUT("/profiles/:id", profileHandler.UpdateProfile)

	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestProfileHandler_CreateProfile(t *testing.T) {
	repo := new(mocksrepo.ProfileRepository)
	e := newTestServer(repo)

	repo.On("FindByDocumentNumber", mock.Anything, "123456789").
		Return(nil, repository.ErrProfileNotFound)
	repo.On("FindByPhone", mock.Anything, "+573001112233").
		Return(nil, repository.ErrProfileNotFound)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	body := `{
		"id_user": "` + uuid.NewString() + `",
		"first_name": "Juan",
		"last_name": "Pérez",
		"document_type": "CC",
		"document_number": "123456789",
		"phone": "3001112233",
		"address": "Calle 1 # 2-3"
	}`

	rec := doJSON(e, http.MethodPost, "/profiles", body)

	require.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Message string `json:"message"`
		Data    struct {
			Phone string `json:"phone"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Profile created successfully", envelope.Message)
	assert.Equal(t, "+573001112233", envelope.Data.Phone)
}

func TestProfileHandler_CreateProfile_MissingFieldIs400(t *testing.T) {
	repo := new(mocksrepo.ProfileRepository)
	e := newTestServer(repo)

	body := `{"id_user": "` + uuid.NewString() + `", "first_name": "Juan"}`

	rec := doJSON(e, http.MethodPost, "/profiles", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	assert.Contains(t, rec.Body.String(), "last_name")
}

func TestProfileHandler_CreateProfile_DuplicatePhoneIs409(t *testing.T) {
	repo := new(mocksrepo.ProfileRepository)
	e := newTestServer(repo)

	repo.On("FindByDocumentNumber", mock.Anything, mock.Anything).
		Return(nil, repository.ErrProfileNotFound)
	repo.On("FindByPhone", mock.Anything, "+573001112233").
		Return(&entity.Profile{Phone: "+573001112233"}, nil)

	body := `{
		"id_user": "` + uuid.NewString() + `",
		"first_name": "Juan",
		"last_name": "Pérez",
		"document_type": "CC",
		"document_number": "123456789",
		"phone": "3001112233",
		"address": "Calle 1 # 2-3"
	}`

	rec := doJSON(e, http.MethodPost, "/profiles", body)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "PHONE_ALREADY_REGISTERED")
}

func TestProfileHandler_GetProfile_NotFound(t *testing.T) {
	repo := new(mocksrepo.ProfileRepository)
	e := newTestServer(repo)

	rec := doJSON(e, http.MethodGet, "/profiles/nonexistent-id", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PROFILE_NOT_FOUND")
}

func TestProfileHandler_GetProfileByPhone(t *testing.T) {
	repo := new(mocksrepo.ProfileRepository)
	e := newTestServer(repo)
	id := uuid.New()

	repo.On("FindByPhone", mock.Anything, "+573001112233").
		Return(&entity.Profile{IDProfile: id, Phone: "+573001112233"}, nil)

	rec := doJSON(e, http.MethodGet, "/profiles/phone/3001112233", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), id.String())
}

func TestProfileHandler_ValidatePhone_AlwaysOK(t *testing.T) {
	repo := new(mocksrepo.ProfileRepository)
	e := newTestServer(repo)

	repo.On("FindByPhone", mock.Anything, "+573001112233").
		Return(&entity.Profile{Phone: "+573001112233"}, nil)

	rec := doJSON(e, http.MethodGet, "/profiles/validate/phone/3001112233", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Available bool   `json:"available"`
		Message   string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Available)
	assert.NotEmpty(t, result.Message)
}

func TestProfileHandler_ValidateDocument_AvailableOnRepoError(t *testing.T) {
	repo := new(mocksrepo.ProfileRepository)
	e := newTestServer(repo)

	repo.On("FindByDocumentNumber", mock.Anything, "123456789").
		Return(nil, repository.ErrProfileNotFound)

	rec := doJSON(e, http.MethodGet, "/profiles/validate/document/123456789", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"available":true`)
}

func TestProfileHandler_UpdateProfile_UnknownUserIs404(t *testing.T) {
	repo := new(mocksrepo.ProfileRepository)
	e := newTestServer(repo)
	userID := uuid.New()

	repo.On("FindByUserID", mock.Anything, userID).
		Return(nil, repository.ErrProfileNotFound)

	rec := doJSON(e, http.MethodPut, "/profiles/"+userID.String(), `{"first_name": "Carlos"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PROFILE_NOT_FOUND")
}

func TestProfileHandler_GetAllProfiles(t *testing.T) {
	repo := new(mocksrepo.ProfileRepository)
	e := newTestServer(repo)

	repo.On("FindAll", mock.Anything).Return([]*entity.Profile{
		{FirstName: "Ana"},
		{FirstName: "Juan"},
	}, nil)

	rec := doJSON(e, http.MethodGet, "/profiles?page=1&limit=10", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ana")
	assert.Contains(t, rec.Body.String(), "Juan")
}
