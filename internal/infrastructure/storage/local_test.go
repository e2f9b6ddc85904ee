package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalImageStore_Save(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalImageStore(dir)

	url, err := store.Save(context.Background(), ".png", []byte("payload"))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(url, "/images/") || !strings.HasSuffix(url, ".png") {
		t.Fatalf("unexpected url: %s", url)
	}

	name := strings.TrimPrefix(url, "/images/")
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("stored bytes differ: %q", data)
	}
}

func TestLocalImageStore_Save_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	store := NewLocalImageStore(dir)

	if _, err := store.Save(context.Background(), ".jpg", []byte("x")); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one stored file in %s: %v", dir, err)
	}
}
