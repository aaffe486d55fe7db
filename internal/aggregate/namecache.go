package aggregate

import (
	"context"
	"errors"
	"sync"

	"github.com/funfriday/backend/internal/models"
	"github.com/funfriday/backend/internal/storage"
)

// UnknownUserName labels summary rows whose user lookup failed.
const UnknownUserName = "Unknown User"

// UserGetter is the slice of the user store the name cache needs.
type UserGetter interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// NameCache memoizes user ID -> display name lookups with read-through
// population. It is an explicit collaborator passed to whoever builds
// summaries; there is no package-level instance.
type NameCache struct {
	users UserGetter

	mu    sync.Mutex
	names map[string]string
}

// NewNameCache creates a cache over the given user store.
func NewNameCache(users UserGetter) *NameCache {
	return &NameCache{
		users: users,
		names: make(map[string]string),
	}
}

// Name resolves a user ID to a display name, consulting the store on a miss.
// A definitive not-found resolves to UnknownUserName and is cached so
// repeated summary renders do not hammer the store for the same missing
// user. Other store errors also resolve to UnknownUserName but are not
// cached, so the next render retries the lookup.
func (c *NameCache) Name(ctx context.Context, userID string) string {
	c.mu.Lock()
	name, ok := c.names[userID]
	c.mu.Unlock()
	if ok {
		return name
	}

	user, err := c.users.GetUserByID(ctx, userID)
	switch {
	case err == nil:
		name = user.Name
	case errors.Is(err, storage.ErrNotFound):
		name = UnknownUserName
	default:
		return UnknownUserName
	}

	c.mu.Lock()
	c.names[userID] = name
	c.mu.Unlock()
	return name
}
