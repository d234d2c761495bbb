package driver

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/alorle/streamline/internal/application"
	"github.com/alorle/streamline/internal/favorite"
	"github.com/alorle/streamline/internal/m3u"
)

const testPlaylist = `#EXTM3U
#EXTINF:-1 tvg-id="fun" tvg-logo="http://x/fun.png" group-title="Cartoons",Fun Channel
http://stream/fun.m3u8
#EXTINF:-1 tvg-id="daily" tvg-logo="http://x/daily.png" group-title="World News",Daily News
http://stream/daily.m3u8
#EXTINF:-1 tvg-id="late" tvg-logo="http://x/late.png" group-title="Adult",Late Night
http://stream/late.m3u8
`

// mockPlaylistSource is a mock implementation of driven.PlaylistSource for testing.
type mockPlaylistSource struct {
	fetchFunc func(ctx context.Context) (string, error)
}

func (m *mockPlaylistSource) Fetch(ctx context.Context) (string, error) {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx)
	}
	return testPlaylist, nil
}

// mockFavoritesRepository is an in-memory implementation of driven.FavoritesRepository for testing.
type mockFavoritesRepository struct {
	mu        sync.Mutex
	set       favorite.Set
	storeFunc func(ctx context.Context, set favorite.Set) error
	pingFunc  func(ctx context.Context) error
}

func (m *mockFavoritesRepository) Load(ctx context.Context) (favorite.Set, error) {
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

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestCatalog(source *mockPlaylistSource) *application.CatalogService {
	return application.NewCatalogService(source, m3u.NewParser(), discardLogger(),
		application.WithRandom(func(n int) int { return n - 1 }),
	)
}

func newTestFavorites(repo *mockFavoritesRepository) *application.FavoritesService {
	return application.NewFavoritesService(repo, discardLogger())
}
