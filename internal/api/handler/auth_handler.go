package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/colonialstours/tours-api/internal/api/metrics"
	"github.com/colonialstours/tours-api/internal/core/domain"
	"github.com/colonialstours/tours-api/internal/core/ports"
	"github.com/colonialstours/tours-api/internal/core/service"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  authFailure
// @Failure      409   {object}  authFailure
// @Failure      500   {object}  authFailure
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, authFailure{Message: "invalid payload"})
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, authFailure{Message: "name, email and password are required"})
	}
	if len(req.Password) < service.MinPasswordLength {
		return c.JSON(http.StatusBadRequest, authFailure{Message: "password must be at least 6 characters"})
	}

	user, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			return c.JSON(http.StatusConflict, authFailure{Message: "email already registered"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusBadRequest, authFailure{Message: "invalid registration data"})
		}
		return err
	}

	metrics.RegistrationsTotal.Inc()

	return c.JSON(http.StatusCreated, registerResponse{
		Success: true,
		Message: "user registered",
		User:    authUser{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  authFailure
// @Failure      401   {object}  authFailure
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, authFailure{Message: "invalid payload"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, authFailure{Message: "email and password are required"})
	}

	kind := "store"
	if domain.IsDemoEmail(req.Email) {
		kind = "demo"
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure", kind).Inc()
			// One generic message for unknown email and wrong password alike.
			return c.JSON(http.StatusUnauthorized, authFailure{Message: "invalid credentials"})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success", kind).Inc()

	resp := loginResponse{
		Success: true,
		Role:    result.Role,
		Message: "login successful",
		Token:   result.Token,
	}
	if result.User != nil {
		resp.User = &authUser{
			ID:    result.User.ID,
			Name:  result.User.Name,
			Email: result.User.Email,
			Role:  result.User.Role,
		}
	}
	return c.JSON(http.StatusOK, resp)
}
