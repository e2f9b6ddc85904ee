package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/colonialstours/tours-api/internal/api/metrics"
	"github.com/colonialstours/tours-api/internal/core/ports"
)

// ImageHandler handles image uploads. The endpoint keeps the upload
// widget's contract: base64 data URL in, {success, data:{url}} out.
type ImageHandler struct {
	service ports.ImageService
}

func NewImageHandler(service ports.ImageService) *ImageHandler {
	return &ImageHandler{service: service}
}

type imageUploadRequest struct {
	ImageURL string `json:"imageUrl" validate:"required"`
}

type imageUploadResponse struct {
	Success bool `json:"success"`
	Data    struct {
		URL string `json:"url"`
	} `json:"data"`
}

// Upload handles POST /images/upload.
//
// @Summary      Upload an image
// @Tags         images
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      imageUploadRequest  true  "Base64 data URL"
// @Success      201   {object}  imageUploadResponse
// @Failure      400   {object}  map[string]string
// @Router       /images/upload [post]
func (h *ImageHandler) Upload(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	var req imageUploadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	url, err := h.service.Upload(c.Request().Context(), req.ImageURL)
	if err != nil {
		return err
	}

	metrics.ImagesUploadedTotal.Inc()

	resp := imageUploadResponse{Success: true}
	resp.Data.URL = url
	return c.JSON(http.StatusCreated, resp)
}
