package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/colonialstours/tours-api/internal/core/ports"
)

// UserHandler handles self-service account endpoints.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Profile handles GET /user/profile.
//
// @Summary      Get the caller's profile
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]domain.User
// @Failure      404  {object}  map[string]string
// @Router       /user/profile [get]
func (h *UserHandler) Profile(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	user, err := h.service.Profile(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"user": user})
}

// UpdateProfile handles PUT /user/profile. Email and role cannot be changed
// here.
//
// @Summary      Update the caller's profile
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      profileRequest  true  "Profile fields"
// @Success      200   {object}  map[string]domain.User
// @Failure      400   {object}  map[string]string
// @Router       /user/profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.service.UpdateProfile(c.Request().Context(), userID, ports.ProfileInput{
		Name:         req.Name,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"user": user})
}

// BecomeGuide handles POST /user/become-guide. The stored role changes
// immediately; the caller's current token keeps its old role claim until
// they log in again.
//
// @Summary      Promote the caller from user to guide
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]domain.User
// @Failure      403  {object}  map[string]string
// @Router       /user/become-guide [post]
func (h *UserHandler) BecomeGuide(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	user, err := h.service.BecomeGuide(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"user":    user,
		"message": "role updated, log in again for guide access",
	})
}
