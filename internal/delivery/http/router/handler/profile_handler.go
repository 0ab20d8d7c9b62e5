// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"userhub/internal/delivery/http/response"
	domainerrors "userhub/internal/domain/errors"
	"userhub/internal/usecase"
)

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateProfile handles the profile creation request.
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	var input *usecase.CreateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.CreateProfile(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, profile, "Profile created successfully")
}

// GetAllProfiles lists every profile. The page and limit query parameters
// are accepted for forward compatibility but not enforced.
func (h *ProfileHandler) GetAllProfiles(c echo.Context) error {
	profiles, err := h.uc.GetAllProfiles(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profiles, "Profiles retrieved successfully")
}

// GetProfile retrieves a single profile by its identifier.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.uc.GetProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}

// GetProfileByPhone retrieves a profile by phone number.
func (h *ProfileHandler) GetProfileByPhone(c echo.Context) error {
	profile, err := h.uc.GetProfileByPhone(c.Request().Context(), c.Param("phone"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}

// GetProfileByDocumentNumber retrieves a profile by document number.
func (h *ProfileHandler) GetProfileByDocumentNumber(c echo.Context) error {
	profile, err := h.uc.GetProfileByDocumentNumber(c.Request().Context(), c.Param("documentNumber"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}

// ValidatePhone reports phone availability. Always responds 200.
func (h *ProfileHandler) ValidatePhone(c echo.Context) error {
	result := h.uc.ValidatePhone(c.Request().Context(), c.Param("phone"))

	return c.JSON(http.StatusOK, result)
}

// ValidateDocumentNumber reports document availability. Always responds 200.
func (h *ProfileHandler) ValidateDocumentNumber(c echo.Context) error {
	result := h.uc.ValidateDocumentNumber(c.Request().Context(), c.Param("documentNumber"))

	return c.JSON(http.StatusOK, result)
}

// UpdateProfile applies a partial update to the profile owned by the user
// id in the path.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrProfileNotFound)
	}

	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.UpdateProfile(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated successfully")
}
