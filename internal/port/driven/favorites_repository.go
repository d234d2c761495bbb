package driven

import (
	"context"

	"github.com/alorle/streamline/internal/favorite"
)

// FavoritesRepository defines the interface for favorites persistence.
// This is a driven port that will be implemented by concrete adapters (e.g., BoltDB).
type FavoritesRepository interface {
	// Load retrieves the stored favorites. An empty set is returned when nothing
	// has been stored yet.
	Load(ctx context.Context) (favorite.Set, error)

	// Store replaces the stored favorites with the given set.
	Store(ctx context.Context, set favorite.Set) error

	// Ping checks if the repository (database) is accessible and operational.
	// Returns nil if healthy, otherwise returns an error describing the issue.
	Ping(ctx context.Context) error
}
