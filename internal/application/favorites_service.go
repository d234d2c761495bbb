package application

import (
	"context"
	"log/slog"
	"sync"

	"github.com/alorle/streamline/internal/favorite"
	"github.com/alorle/streamline/internal/metrics"
	"github.com/alorle/streamline/internal/port/driven"
)

// FavoritesService provides use cases for managing favorite channels.
// Updates are serialized so concurrent toggles never lose a write.
type FavoritesService struct {
	repo   driven.FavoritesRepository
	logger *slog.Logger
	mu     sync.Mutex
}

// NewFavoritesService creates a new FavoritesService with the given repository.
// If logger is nil, slog.Default() is used.
func NewFavoritesService(repo driven.FavoritesRepository, logger *slog.Logger) *FavoritesService {
	if logger == nil {
		logger = slog.Default()
	}
	return &FavoritesService{
		repo:   repo,
		logger: logger,
	}
}

// List returns the current favorites.
func (s *FavoritesService) List(ctx context.Context) (favorite.Set, error) {
	return s.repo.Load(ctx)
}

// Add marks a channel as favorite. Adding an existing favorite is a no-op.
// Returns favorite.ErrEmptyID if the id is empty.
func (s *FavoritesService) Add(ctx context.Context, id string) (favorite.Set, error) {
	return s.update(ctx, "add", id, func(set favorite.Set) (favorite.Set, error) {
		return set.Add(id)
	})
}

// Remove unmarks a channel. Removing a missing favorite is a no-op.
func (s *FavoritesService) Remove(ctx context.Context, id string) (favorite.Set, error) {
	return s.update(ctx, "remove", id, func(set favorite.Set) (favorite.Set, error) {
		return set.Remove(id), nil
	})
}

// Toggle adds the channel if it is not a favorite yet and removes it otherwise.
// Returns favorite.ErrEmptyID if the id is empty.
func (s *FavoritesService) Toggle(ctx context.Context, id string) (favorite.Set, error) {
	return s.update(ctx, "toggle", id, func(set favorite.Set) (favorite.Set, error) {
		return set.Toggle(id)
	})
}

func (s *FavoritesService) update(ctx context.Context, op, id string, apply func(favorite.Set) (favorite.Set, error)) (favorite.Set, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.repo.Load(ctx)
	if err != nil {
		return favorite.Set{}, err
	}

	next, err := apply(current)
	if err != nil {
		return favorite.Set{}, err
	}

	if err := s.repo.Store(ctx, next); err != nil {
		s.logger.Error("failed to store favorites", "op", op, "channel_id", id, "error", err)
		return favorite.Set{}, err
	}

	metrics.SetFavoritesCount(next.Len())
	s.logger.Debug("favorites updated", "op", op, "channel_id", id, "count", next.Len())

	return next, nil
}
