package aggregate

import (
	"context"
	"errors"
	"testing"

	"github.com/funfriday/backend/internal/models"
	"github.com/funfriday/backend/internal/storage"
)

type fakeUserGetter struct {
	users map[string]string
	calls int
	fail  error
}

func (f *fakeUserGetter) GetUserByID(_ context.Context, id string) (*models.User, error) {
	f.calls++
	if f.fail != nil {
		return nil, f.fail
	}
	name, ok := f.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &models.User{ID: id, Name: name}, nil
}

func TestNameCacheReadThrough(t *testing.T) {
	getter := &fakeUserGetter{users: map[string]string{"u1": "Arun"}}
	cache := NewNameCache(getter)
	ctx := context.Background()

	if got := cache.Name(ctx, "u1"); got != "Arun" {
		t.Errorf("Name = %q, want Arun", got)
	}
	if got := cache.Name(ctx, "u1"); got != "Arun" {
		t.Errorf("Name = %q, want Arun", got)
	}
	if getter.calls != 1 {
		t.Errorf("store consulted %d times, want 1", getter.calls)
	}
}

func TestNameCacheUnknownUser(t *testing.T) {
	getter := &fakeUserGetter{users: map[string]string{}}
	cache := NewNameCache(getter)
	ctx := context.Background()

	if got := cache.Name(ctx, "ghost"); got != UnknownUserName {
		t.Errorf("Name = %q, want %q", got, UnknownUserName)
	}
	// Definitive misses are cached too
	cache.Name(ctx, "ghost")
	if getter.calls != 1 {
		t.Errorf("store consulted %d times, want 1", getter.calls)
	}
}

func TestNameCacheRetriesAfterStoreError(t *testing.T) {
	getter := &fakeUserGetter{
		users: map[string]string{"u1": "Arun"},
		fail:  errors.New("database is locked"),
	}
	cache := NewNameCache(getter)
	ctx := context.Background()

	if got := cache.Name(ctx, "u1"); got != UnknownUserName {
		t.Errorf("Name during outage = %q, want %q", got, UnknownUserName)
	}

	// Once the store recovers, the next render sees the real name
	getter.fail = nil
	if got := cache.Name(ctx, "u1"); got != "Arun" {
		t.Errorf("Name after recovery = %q, want Arun", got)
	}
	if getter.calls != 2 {
		t.Errorf("store consulted %d times, want 2", getter.calls)
	}
}
