package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/colonialstours/tours-api/internal/api/metrics"
	"github.com/colonialstours/tours-api/internal/core/ports"
)

// PurchaseHandler handles checkout and purchase history.
type PurchaseHandler struct {
	service ports.PurchaseService
}

func NewPurchaseHandler(service ports.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{service: service}
}

// Checkout handles POST /tours/purchase. The payment form in the body is
// bound only to keep the original contract; it is never stored or charged.
//
// @Summary      Purchase the cart contents
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      purchaseRequest  true  "Payment form (accepted, not charged)"
// @Success      201   {object}  domain.Purchase
// @Failure      400   {object}  map[string]string
// @Router       /tours/purchase [post]
func (h *PurchaseHandler) Checkout(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req purchaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	purchase, err := h.service.Checkout(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	metrics.PurchasesTotal.Inc()
	metrics.PurchaseRevenue.Add(purchase.Total)

	return c.JSON(http.StatusCreated, purchase)
}

// History handles GET /tours/history.
//
// @Summary      List the caller's purchases
// @Tags         purchases
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string][]domain.Purchase
// @Router       /tours/history [get]
func (h *PurchaseHandler) History(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	purchases, err := h.service.History(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"purchases": purchases})
}
