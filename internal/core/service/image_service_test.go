package service

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/colonialstours/tours-api/internal/core/domain"
)

type stubImageStore struct {
	ext     string
	data    []byte
	saveErr error
}

func (s *stubImageStore) Save(_ context.Context, ext string, data []byte) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	s.ext = ext
	s.data = data
	return "/images/generated" + ext, nil
}

func pngDataURL(payload []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)
}

func TestImageService_Upload(t *testing.T) {
	store := &stubImageStore{}
	svc := NewImageService(store, zerolog.Nop())

	url, err := svc.Upload(context.Background(), pngDataURL([]byte{0x89, 'P', 'N', 'G'}))
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if url != "/images/generated.png" {
		t.Fatalf("unexpected url: %s", url)
	}
	if store.ext != ".png" {
		t.Fatalf("expected .png extension, got %s", store.ext)
	}
	if len(store.data) != 4 {
		t.Fatalf("decoded bytes not passed through: %v", store.data)
	}
}

func TestImageService_Upload_JPEGExtension(t *testing.T) {
	store := &stubImageStore{}
	svc := NewImageService(store, zerolog.Nop())

	url, err := svc.Upload(context.Background(), "data:image/jpeg;base64,"+base64.StdEncoding.EncodeToString([]byte{0xff, 0xd8}))
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if !strings.HasSuffix(url, ".jpg") {
		t.Fatalf("expected .jpg url, got %s", url)
	}
}

func TestImageService_Upload_Rejections(t *testing.T) {
	store := &stubImageStore{}
	svc := NewImageService(store, zerolog.Nop())

	cases := map[string]string{
		"no data prefix":   "image/png;base64,aGk=",
		"no base64 marker": "data:image/png,aGk=",
		"unsupported type": "data:image/gif;base64,aGk=",
		"bad base64":       "data:image/png;base64,!!!!",
		"empty payload":    "data:image/png;base64,",
	}
	for name, payload := range cases {
		if _, err := svc.Upload(context.Background(), payload); !errors.Is(err, domain.ErrInvalidImage) {
			t.Fatalf("%s: expected ErrInvalidImage, got %v", name, err)
		}
	}
	if store.data != nil {
		t.Fatalf("rejected payload must not reach the store")
	}
}

func TestImageService_Upload_Oversize(t *testing.T) {
	store := &stubImageStore{}
	svc := NewImageService(store, zerolog.Nop())

	if _, err := svc.Upload(context.Background(), pngDataURL(make([]byte, MaxImageBytes+1))); !errors.Is(err, domain.ErrInvalidImage) {
		t.Fatalf("expected ErrInvalidImage for oversize payload, got %v", err)
	}
}

func TestImageService_Upload_StoreFailure(t *testing.T) {
	store := &stubImageStore{saveErr: errors.New("disk full")}
	svc := NewImageService(store, zerolog.Nop())

	if _, err := svc.Upload(context.Background(), pngDataURL([]byte("x"))); err == nil {
		t.Fatalf("expected store error to surface")
	}
}
