package application

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/alorle/streamline/internal/favorite"
)

// discardLogger returns a logger that drops every record.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockPlaylistSource is a mock implementation of driven.PlaylistSource for testing.
type mockPlaylistSource struct {
	mu        sync.Mutex
	calls     int
	fetchFunc func(ctx context.Context) (string, error)
}

func (m *mockPlaylistSource) Fetch(ctx context.Context) (string, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.fetchFunc != nil {
		return m.fetchFunc(ctx)
	}
	return "#EXTM3U\n", nil
}

func (m *mockPlaylistSource) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockFavoritesRepository is an in-memory implementation of driven.FavoritesRepository for testing.
type mockFavoritesRepository struct {
	mu        sync.Mutex
	set       favorite.Set
	loadFunc  func(ctx context.Context) (favorite.Set, error)
	storeFunc func(ctx context.Context, set favorite.Set) error
	pingFunc  func(ctx context.Context) error
}

func (m *mockFavoritesRepository) Load(ctx context.Context) (favorite.Set, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.set, nil
}

func (m *mockFavoritesRepository) Store(ctx context.Context, set favorite.Set) error {
	if m.storeFunc != nil {
		return m.storeFunc(ctx, set)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.set = set
	return nil
}

func (m *mockFavoritesRepository) Ping(ctx context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil
}
