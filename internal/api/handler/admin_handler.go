package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/colonialstours/tours-api/internal/core/ports"
)

// AdminHandler serves the admin dashboard. All routes behind it are gated
// by the RBAC middleware with the admin role.
type AdminHandler struct {
	admin ports.AdminService
	tours ports.TourService
}

func NewAdminHandler(admin ports.AdminService, tours ports.TourService) *AdminHandler {
	return &AdminHandler{admin: admin, tours: tours}
}

// Stats handles GET /admin/stats.
//
// @Summary      Dashboard counters
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardStats
// @Failure      403  {object}  map[string]string
// @Router       /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.admin.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// ListUsers handles GET /admin/users.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string][]domain.User
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.admin.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"users": users})
}

// DeleteUser handles DELETE /admin/users/:id.
//
// @Summary      Remove a user
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "User ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	if err := h.admin.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListTours handles GET /admin/tours.
//
// @Summary      List all tours
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string][]ports.TourView
// @Router       /admin/tours [get]
func (h *AdminHandler) ListTours(c echo.Context) error {
	tours, err := h.tours.List(c.Request().Context(), "")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"tours": tours})
}

// DeleteTour handles DELETE /admin/tours/:id.
//
// @Summary      Remove a tour
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "Tour ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/tours/{id} [delete]
func (h *AdminHandler) DeleteTour(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.tours.Delete(c.Request().Context(), c.Param("id"), userID, role); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListPurchases handles GET /admin/purchases.
//
// @Summary      List all purchases
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string][]domain.Purchase
// @Router       /admin/purchases [get]
func (h *AdminHandler) ListPurchases(c echo.Context) error {
	purchases, err := h.admin.ListPurchases(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"purchases": purchases})
}
