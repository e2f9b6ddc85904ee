package ports

import "context"

// ImageStore persists decoded image bytes and returns the public URL path
// they are served from.
type ImageStore interface {
	Save(ctx context.Context, ext string, data []byte) (string, error)
}

// ImageService accepts the frontend's base64 data-URL upload payload,
// validates it, and hands the bytes to the store.
type ImageService interface {
	Upload(ctx context.Context, dataURL string) (string, error)
}
