package service

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/rs/zerolog"

	"github.com/colonialstours/tours-api/internal/core/domain"
	"github.com/colonialstours/tours-api/internal/core/ports"
)

// MaxImageBytes caps the decoded upload size.
const MaxImageBytes = 5 << 20

// imageExts maps the accepted data-URL media types to file extensions.
// The upload widget offers PNG and JPEG only.
var imageExts = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
}

// ImageService decodes base64 data-URL uploads and stores the bytes.
type ImageService struct {
	store  ports.ImageStore
	logger zerolog.Logger
}

func NewImageService(store ports.ImageStore, logger zerolog.Logger) *ImageService {
	return &ImageService{store: store, logger: logger}
}

// Upload validates a "data:<media type>;base64,<payload>" string and
// persists the decoded bytes, returning the URL path they are served from.
func (s *ImageService) Upload(ctx context.Context, dataURL string) (string, error) {
	meta, payload, found := strings.Cut(dataURL, ";base64,")
	if !found || !strings.HasPrefix(meta, "data:") {
		return "", domain.ErrInvalidImage
	}

	ext, ok := imageExts[strings.TrimPrefix(meta, "data:")]
	if !ok {
		return "", domain.ErrInvalidImage
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", domain.ErrInvalidImage
	}
	if len(data) == 0 || len(data) > MaxImageBytes {
		return "", domain.ErrInvalidImage
	}

	url, err := s.store.Save(ctx, ext, data)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to store image")
		return "", err
	}

	s.logger.Info().Str("url", url).Int("bytes", len(data)).Msg("image stored")
	return url, nil
}
