package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"roster/internal/delivery/http/response"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// updateProfileRequest carries optional self-service profile fields.
type updateProfileRequest struct {
	FullName *string `json:"fullName" validate:"omitempty,fullname"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// AccountHandler holds dependencies for directory and self-service handlers.
type AccountHandler struct {
	uc     usecase.DirectoryUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.DirectoryUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the admin directory query.
func (h *AccountHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	output, err := h.uc.List(c.Request().Context(), &usecase.ListInput{
		Page:   page,
		Limit:  limit,
		Search: c.QueryParam("search"),
		Role:   c.QueryParam("role"),
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Users retrieved successfully")
}

// Count handles the public account count request.
func (h *AccountHandler) Count(c echo.Context) error {
	total, err := h.uc.Count(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"totalUsers": total}, "User count retrieved successfully")
}

// GetByID handles the admin single-account lookup.
func (h *AccountHandler) GetByID(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account ID")
	}

	view, err := h.uc.GetByID(c.Request().Context(), targetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "User retrieved successfully")
}

// Activate transitions the target account to active.
func (h *AccountHandler) Activate(c echo.Context) error {
	return h.setStatus(c, "active", "User activated successfully")
}

// Deactivate transitions the target account to inactive.
func (h *AccountHandler) Deactivate(c echo.Context) error {
	return h.setStatus(c, "inactive", "User deactivated successfully")
}

// UpdateStatus transitions the target account to the status in the body.
func (h *AccountHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	return h.setStatus(c, req.Status, "User status updated successfully")
}

func (h *AccountHandler) setStatus(c echo.Context, status, message string) error {
	actor, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid account ID in token")
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account ID")
	}

	view, err := h.uc.SetStatus(c.Request().Context(), actor, targetID, status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, message)
}

// Delete handles the admin account deletion.
func (h *AccountHandler) Delete(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid account ID in token")
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account ID")
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), actor, targetID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": targetID.String()}, "User deleted successfully")
}

// GetProfile returns the authenticated account's own profile.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid account ID in token")
	}

	view, err := h.uc.GetProfile(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Profile retrieved successfully")
}

// UpdateProfile applies the self-service name/email changes.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid account ID in token")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.UpdateProfile(c.Request().Context(), actor, &usecase.UpdateProfileInput{
		FullName: req.FullName,
		Email:    req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Profile updated successfully")
}

// ChangePassword rotates the authenticated account's credential.
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid account ID in token")
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ChangePassword(c.Request().Context(), actor, &usecase.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password changed"}, "Password changed successfully")
}
