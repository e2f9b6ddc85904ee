package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/colonialstours/tours-api/internal/api/metrics"
	"github.com/colonialstours/tours-api/internal/core/ports"
)

// TourHandler handles HTTP requests for the tour catalog.
type TourHandler struct {
	service ports.TourService
}

func NewTourHandler(service ports.TourService) *TourHandler {
	return &TourHandler{service: service}
}

// List handles GET /tours. Anonymous callers get the plain catalog; with a
// token the is_saved flag reflects the caller's bookmarks.
//
// @Summary      List tours
// @Tags         tours
// @Produce      json
// @Success      200  {object}  map[string][]ports.TourView
// @Router       /tours [get]
func (h *TourHandler) List(c echo.Context) error {
	tours, err := h.service.List(c.Request().Context(), ctxViewerID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"tours": tours})
}

// Get handles GET /tours/:id.
//
// @Summary      Get a tour
// @Tags         tours
// @Produce      json
// @Param        id   path      string  true  "Tour ID"
// @Success      200  {object}  domain.Tour
// @Failure      404  {object}  map[string]string
// @Router       /tours/{id} [get]
func (h *TourHandler) Get(c echo.Context) error {
	tour, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tour)
}

// Create handles POST /tours (guide or admin).
//
// @Summary      Create a tour
// @Tags         tours
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      tourRequest  true  "Tour details"
// @Success      201   {object}  domain.Tour
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /tours [post]
func (h *TourHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req tourRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	tour, err := h.service.Create(c.Request().Context(), userID, toTourInput(req))
	if err != nil {
		return err
	}

	metrics.ToursCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, tour)
}

// Update handles PUT /tours/:id (owner guide or admin).
//
// @Summary      Update a tour
// @Tags         tours
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Tour ID"
// @Param        body  body      tourRequest  true  "Tour details"
// @Success      200   {object}  domain.Tour
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /tours/{id} [put]
func (h *TourHandler) Update(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req tourRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	tour, err := h.service.Update(c.Request().Context(), c.Param("id"), userID, role, toTourInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tour)
}

// Delete handles DELETE /tours/:id (owner guide or admin).
//
// @Summary      Delete a tour
// @Tags         tours
// @Security     BearerAuth
// @Param        id  path  string  true  "Tour ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tours/{id} [delete]
func (h *TourHandler) Delete(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), c.Param("id"), userID, role); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// MyTours handles GET /tours/my-tours (guide or admin).
//
// @Summary      List the caller's own tours
// @Tags         tours
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string][]domain.Tour
// @Router       /tours/my-tours [get]
func (h *TourHandler) MyTours(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	tours, err := h.service.ListByOwner(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"tours": tours})
}

// Save handles POST /tours/save.
//
// @Summary      Bookmark a tour
// @Tags         tours
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  saveTourRequest  true  "Tour to save"
// @Success      201   {object}  messageResponse
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /tours/save [post]
func (h *TourHandler) Save(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req saveTourRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.service.Save(c.Request().Context(), userID, req.TourID); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, messageResponse{Message: "tour saved"})
}

// Unsave handles DELETE /tours/saved/:id.
//
// @Summary      Remove a bookmark
// @Tags         tours
// @Security     BearerAuth
// @Param        id  path  string  true  "Tour ID"
// @Success      204
// @Router       /tours/saved/{id} [delete]
func (h *TourHandler) Unsave(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.service.Unsave(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListSaved handles GET /tours/saved.
//
// @Summary      List bookmarked tours
// @Tags         tours
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string][]domain.Tour
// @Router       /tours/saved [get]
func (h *TourHandler) ListSaved(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	tours, err := h.service.ListSaved(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"tours": tours})
}

func toTourInput(req tourRequest) ports.TourInput {
	return ports.TourInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		Lat:         req.Lat,
		Lng:         req.Lng,
	}
}
