package repository

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/yisusboy23/servidor/internal/models"
	"github.com/yisusboy23/servidor/internal/store"
)

func setupLikeRepo(t *testing.T) *LikeRepository {
	t.Helper()
	c, err := store.Open[models.LikeEntry](filepath.Join(t.TempDir(), "likes.json"), zap.NewNop())
	if err != nil {
		t.Fatalf("failed to open likes collection: %v", err)
	}
	return NewLikeRepository(c)
}

func ref(name string) models.PostRef {
	return models.PostRef{ImagePath: "/uploads/" + name, ImageName: name}
}

func TestLikeAdd_LazyEntry(t *testing.T) {
	repo := setupLikeRepo(t)

	if _, found := repo.Get("ana"); found {
		t.Fatal("expected no entry before first like")
	}

	added, err := repo.Add("ana", ref("a.png"))
	if err != nil || !added {
		t.Fatalf("Add failed: %v, %v", err, added)
	}

	entry, found := repo.Get("ana")
	if !found || len(entry.LikedPosts) != 1 || entry.LikedPosts[0].ImageName != "a.png" {
		t.Errorf("unexpected entry: %+v, %v", entry, found)
	}
}

func TestLikeAdd_Duplicate(t *testing.T) {
	repo := setupLikeRepo(t)
	_, _ = repo.Add("ana", ref("a.png"))

	added, err := repo.Add("ana", ref("a.png"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added {
		t.Error("expected duplicate like to be rejected")
	}

	entry, _ := repo.Get("ana")
	if len(entry.LikedPosts) != 1 {
		t.Errorf("expected like count to stay at 1, got %d", len(entry.LikedPosts))
	}

	// Same name under a different path is a different key.
	added, err = repo.Add("ana", models.PostRef{ImagePath: "/elsewhere/a.png", ImageName: "a.png"})
	if err != nil || !added {
		t.Errorf("expected distinct composite key to be accepted: %v, %v", err, added)
	}
}

func TestLikeRemove(t *testing.T) {
	repo := setupLikeRepo(t)
	_, _ = repo.Add("ana", ref("a.png"))

	userFound, likeFound, err := repo.Remove("bob", ref("a.png"))
	if err != nil {
		t.Fatal(err)
	}
	if userFound || likeFound {
		t.Error("expected miss for user without entry")
	}

	userFound, likeFound, err = repo.Remove("ana", ref("b.png"))
	if err != nil {
		t.Fatal(err)
	}
	if !userFound || likeFound {
		t.Error("expected user hit, like miss")
	}

	userFound, likeFound, err = repo.Remove("ana", ref("a.png"))
	if err != nil {
		t.Fatal(err)
	}
	if !userFound || !likeFound {
		t.Error("expected removal to succeed")
	}

	// The entry survives empty; it is not collapsed back to absent.
	entry, found := repo.Get("ana")
	if !found {
		t.Fatal("expected entry to remain after last like removed")
	}
	if len(entry.LikedPosts) != 0 {
		t.Errorf("expected empty entry, got %+v", entry.LikedPosts)
	}
}

func TestLikeRemoveEverywhere(t *testing.T) {
	repo := setupLikeRepo(t)
	_, _ = repo.Add("ana", ref("a.png"))
	_, _ = repo.Add("ana", ref("b.png"))
	_, _ = repo.Add("bob", ref("a.png"))

	if err := repo.RemoveEverywhere(ref("a.png")); err != nil {
		t.Fatalf("RemoveEverywhere failed: %v", err)
	}

	ana, _ := repo.Get("ana")
	if len(ana.LikedPosts) != 1 || ana.LikedPosts[0].ImageName != "b.png" {
		t.Errorf("unexpected entry for ana: %+v", ana.LikedPosts)
	}
	bob, _ := repo.Get("bob")
	if len(bob.LikedPosts) != 0 {
		t.Errorf("unexpected entry for bob: %+v", bob.LikedPosts)
	}

	// Removing a ref nobody holds is not an error.
	if err := repo.RemoveEverywhere(ref("ghost.png")); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
