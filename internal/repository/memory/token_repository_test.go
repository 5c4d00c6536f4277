package memory

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestSaveAndGet(t *testing.T) {
	repo := NewRefreshTokenRepository(time.Hour)

	session := &RefreshSession{
		Token:     "tok-1",
		UserId:    uuid.New(),
		Role:      "user",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	repo.Save(session)

	got, found := repo.Get("tok-1")
	if !found {
		t.Fatal("session not found after Save")
	}
	if got.UserId != session.UserId || got.Role != "user" {
		t.Errorf("got %+v, want %+v", got, session)
	}
}

func TestGetUnknownToken(t *testing.T) {
	repo := NewRefreshTokenRepository(time.Hour)

	if _, found := repo.Get("nope"); found {
		t.Error("unknown token should not be found")
	}
}

func TestExpiredSessionIsNotSaved(t *testing.T) {
	repo := NewRefreshTokenRepository(time.Hour)

	repo.Save(&RefreshSession{
		Token:     "tok-expired",
		UserId:    uuid.New(),
		ExpiresAt: time.Now().Add(-time.Minute),
	})

	if _, found := repo.Get("tok-expired"); found {
		t.Error("expired session should not be retrievable")
	}
}

func TestRevoke(t *testing.T) {
	repo := NewRefreshTokenRepository(time.Hour)

	repo.Save(&RefreshSession{
		Token:     "tok-2",
		UserId:    uuid.New(),
		ExpiresAt: time.Now().Add(time.Hour),
	})
	repo.Revoke("tok-2")

	if _, found := repo.Get("tok-2"); found {
		t.Error("revoked session should not be retrievable")
	}
}
