package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/colonialstours/tours-api/internal/api/middleware"
)

type stubImageService struct {
	uploadFn func(ctx context.Context, dataURL string) (string, error)
}

func (s *stubImageService) Upload(ctx context.Context, dataURL string) (string, error) {
	return s.uploadFn(ctx, dataURL)
}

func TestImageHandler_Upload(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := NewImageHandler(&stubImageService{
		uploadFn: func(ctx context.Context, dataURL string) (string, error) {
			if !strings.HasPrefix(dataURL, "data:image/png;base64,") {
				t.Fatalf("payload not passed through: %s", dataURL)
			}
			return "/images/abc.png", nil
		},
	})

	body := strings.NewReader(`{"imageUrl":"data:image/png;base64,aGk="}`)
	req := httptest.NewRequest(http.MethodPost, "/images/upload", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxUserID, "u1")
	c.Set(middleware.CtxRole, "user")

	if err := handler.Upload(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("expected success=true: %v", resp)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok || data["url"] != "/images/abc.png" {
		t.Fatalf("unexpected data envelope: %v", resp)
	}
}

func TestImageHandler_Upload_Unauthenticated(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := NewImageHandler(&stubImageService{
		uploadFn: func(context.Context, string) (string, error) {
			t.Fatalf("service must not be called")
			return "", nil
		},
	})

	body := strings.NewReader(`{"imageUrl":"data:image/png;base64,aGk="}`)
	req := httptest.NewRequest(http.MethodPost, "/images/upload", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Upload(c)
	if err == nil {
		t.Fatalf("expected error for missing identity")
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestImageHandler_Upload_MissingPayload(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := NewImageHandler(&stubImageService{
		uploadFn: func(context.Context, string) (string, error) {
			t.Fatalf("service must not be called")
			return "", nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/images/upload", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxUserID, "u1")
	c.Set(middleware.CtxRole, "user")

	err := handler.Upload(c)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}
