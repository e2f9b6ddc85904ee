package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/colonialstours/tours-api/internal/api/metrics"
	"github.com/colonialstours/tours-api/internal/core/ports"
)

// CartHandler handles the per-user cart.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// Add handles POST /tours/cart.
//
// @Summary      Add a tour to the cart
// @Tags         cart
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  cartAddRequest  true  "Tour to add"
// @Success      201   {object}  messageResponse
// @Failure      404   {object}  map[string]string
// @Router       /tours/cart [post]
func (h *CartHandler) Add(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req cartAddRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.service.Add(c.Request().Context(), userID, req.TourID); err != nil {
		return err
	}

	metrics.CartOpsTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "added to cart"})
}

// Get handles GET /tours/cart.
//
// @Summary      Get cart contents
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.CartContents
// @Router       /tours/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	contents, err := h.service.Contents(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contents)
}

// Remove handles DELETE /tours/cart/:id.
//
// @Summary      Remove a tour from the cart
// @Tags         cart
// @Security     BearerAuth
// @Param        id  path  string  true  "Tour ID"
// @Success      204
// @Router       /tours/cart/{id} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.service.Remove(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	metrics.CartOpsTotal.WithLabelValues("remove").Inc()
	return c.NoContent(http.StatusNoContent)
}
