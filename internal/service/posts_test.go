package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/yisusboy23/servidor/internal/models"
)

type mockPostRepo struct {
	AllFunc    func() []models.Post
	InsertFunc func(post models.Post) error
	RemoveFunc func(imagePath, imageName string) (models.Post, bool, error)
}

func (m *mockPostRepo) All() []models.Post         { return m.AllFunc() }
func (m *mockPostRepo) Insert(p models.Post) error { return m.InsertFunc(p) }
func (m *mockPostRepo) Remove(ip, in string) (models.Post, bool, error) {
	return m.RemoveFunc(ip, in)
}

type mockCascade struct {
	RemoveEverywhereFunc func(ref models.PostRef) error
}

func (m *mockCascade) RemoveEverywhere(ref models.PostRef) error {
	return m.RemoveEverywhereFunc(ref)
}

func TestPostCreate(t *testing.T) {
	var inserted models.Post
	repo := &mockPostRepo{
		InsertFunc: func(p models.Post) error {
			inserted = p
			return nil
		},
	}
	svc := NewPostService(repo, &mockCascade{}, t.TempDir(), zap.NewNop())

	before := time.Now().Unix()
	post, err := svc.Create("ana", "holiday", "a.png", "/uploads/123-a.png")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if post.ID == "" {
		t.Error("expected a generated id")
	}
	if post.Username != "ana" || post.Description != "holiday" ||
		post.ImageName != "a.png" || post.ImagePath != "/uploads/123-a.png" {
		t.Errorf("unexpected post: %+v", post)
	}
	if post.Timestamp < before {
		t.Errorf("timestamp %d predates the call", post.Timestamp)
	}
	if inserted.ID != post.ID {
		t.Error("created post was not inserted")
	}
}

func TestPostDelete_NotFound(t *testing.T) {
	repo := &mockPostRepo{
		RemoveFunc: func(ip, in string) (models.Post, bool, error) {
			return models.Post{}, false, nil
		},
	}
	svc := NewPostService(repo, &mockCascade{}, t.TempDir(), zap.NewNop())

	if err := svc.Delete("/uploads/x.png", "x"); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("Delete missing post = %v; want ErrPostNotFound", err)
	}
}

func TestPostDelete_CascadesAndUnlinks(t *testing.T) {
	uploadsDir := t.TempDir()
	imageFile := filepath.Join(uploadsDir, "123-a.png")
	if err := os.WriteFile(imageFile, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}

	removed := models.Post{
		ImagePath: "/uploads/123-a.png",
		ImageName: "a.png",
		Username:  "ana",
	}
	repo := &mockPostRepo{
		RemoveFunc: func(ip, in string) (models.Post, bool, error) {
			return removed, true, nil
		},
	}
	var cascaded models.PostRef
	likes := &mockCascade{
		RemoveEverywhereFunc: func(ref models.PostRef) error {
			cascaded = ref
			return nil
		},
	}
	svc := NewPostService(repo, likes, uploadsDir, zap.NewNop())

	if err := svc.Delete("/uploads/123-a.png", "a.png"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !cascaded.SameKey(removed.Ref()) {
		t.Errorf("cascade received %+v", cascaded)
	}
	if _, err := os.Stat(imageFile); !os.IsNotExist(err) {
		t.Error("stored image was not unlinked")
	}
}

func TestPostDelete_MissingImageTolerated(t *testing.T) {
	repo := &mockPostRepo{
		RemoveFunc: func(ip, in string) (models.Post, bool, error) {
			return models.Post{ImagePath: "/uploads/gone.png", ImageName: "gone"}, true, nil
		},
	}
	likes := &mockCascade{RemoveEverywhereFunc: func(models.PostRef) error { return nil }}
	svc := NewPostService(repo, likes, t.TempDir(), zap.NewNop())

	// The file does not exist; metadata removal must still succeed.
	if err := svc.Delete("/uploads/gone.png", "gone"); err != nil {
		t.Errorf("Delete with missing image = %v", err)
	}
}

func TestLocalImagePath(t *testing.T) {
	svc := NewPostService(&mockPostRepo{}, &mockCascade{}, "up", zap.NewNop())

	tests := []struct {
		imagePath string
		want      string
	}{
		{"/uploads/a.png", filepath.Join("up", "a.png")},
		{"/uploads/", ""},
		{"/uploads/../etc/passwd", ""},
		{"https://elsewhere.example/a.png", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := svc.localImagePath(tt.imagePath); got != tt.want {
			t.Errorf("localImagePath(%q) = %q; want %q", tt.imagePath, got, tt.want)
		}
	}
}
