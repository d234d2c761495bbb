package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/alorle/streamline/internal/category"
	"github.com/alorle/streamline/internal/channel"
	"github.com/alorle/streamline/internal/favorite"
	"github.com/alorle/streamline/internal/m3u"
	"github.com/alorle/streamline/internal/metrics"
	"github.com/alorle/streamline/internal/playlist"
	"github.com/alorle/streamline/internal/port/driven"
)

// Pseudo-categories understood by Filter on top of the canonical ones.
const (
	CategoryAll       = "All"
	CategoryFavorites = "Favorites"
	CategoryPopular   = "Popular"
)

const (
	// popularLimit is how many leading channels make up the Popular view.
	popularLimit = 50

	// featuredPool is how many leading channels Featured picks from.
	featuredPool = 20
)

// Query selects a subset of the catalog.
type Query struct {
	// Search matches case-insensitively against channel name or category.
	Search string
	// Category is a canonical category, CategoryAll, CategoryFavorites or
	// CategoryPopular. Empty means CategoryAll.
	Category string
	// AdultEnabled keeps channels in the Adults category.
	AdultEnabled bool
}

// CategoryCount is the number of catalog channels in one canonical category.
type CategoryCount struct {
	Category category.Category `json:"name"`
	Count    int               `json:"count"`
}

// CatalogStatus describes the state of the catalog snapshot.
type CatalogStatus struct {
	Loaded      bool
	LoadedAt    time.Time
	Channels    int
	LastAttempt time.Time
	LastError   error
}

// CatalogService loads the remote playlist, parses and normalizes it, and
// answers queries against the resulting snapshot.
// The snapshot is refreshed lazily once it is older than the configured TTL;
// concurrent refreshes share a single fetch.
type CatalogService struct {
	source driven.PlaylistSource
	parser *m3u.Parser
	logger *slog.Logger
	ttl    time.Duration
	now    func() time.Time
	pick   func(n int) int

	group singleflight.Group

	mu          sync.RWMutex
	channels    []channel.Channel
	loadedAt    time.Time
	lastAttempt time.Time
	lastErr     error
}

// CatalogOption configures a CatalogService.
type CatalogOption func(*CatalogService)

// WithTTL sets how long a loaded snapshot is served before reloading.
// A zero or negative TTL keeps the first snapshot until Refresh is called.
func WithTTL(ttl time.Duration) CatalogOption {
	return func(s *CatalogService) {
		s.ttl = ttl
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) CatalogOption {
	return func(s *CatalogService) {
		s.now = now
	}
}

// WithRandom overrides the random index source used by Featured.
// pick must return a value in [0, n).
func WithRandom(pick func(n int) int) CatalogOption {
	return func(s *CatalogService) {
		s.pick = pick
	}
}

// NewCatalogService creates a new CatalogService.
// If parser is nil, a default m3u.Parser is used. If logger is nil, slog.Default() is used.
func NewCatalogService(source driven.PlaylistSource, parser *m3u.Parser, logger *slog.Logger, opts ...CatalogOption) *CatalogService {
	if parser == nil {
		parser = m3u.NewParser()
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &CatalogService{
		source: source,
		parser: parser,
		logger: logger,
		now:    time.Now,
		pick:   rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Refresh fetches, parses and normalizes the playlist, replacing the snapshot.
// On failure the previous snapshot is kept and the error is returned; fetch
// errors match playlist.ErrFetchFailure or playlist.ErrNetworkFailure.
//
// Concurrent callers share one load. The load is detached from the caller's
// cancellation so one caller going away does not fail the others; a cancelled
// caller stops waiting and gets ctx.Err() while the load completes.
func (s *CatalogService) Refresh(ctx context.Context) ([]channel.Channel, error) {
	loadCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan("refresh", func() (any, error) {
		return s.load(loadCtx)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return slices.Clone(res.Val.([]channel.Channel)), nil
	}
}

func (s *CatalogService) load(ctx context.Context) ([]channel.Channel, error) {
	start := s.now()
	s.logger.Info("refreshing channel catalog")

	text, err := s.source.Fetch(ctx)
	if err != nil {
		metrics.RecordPlaylistFetch(fetchResult(err), s.now().Sub(start).Seconds())

		s.mu.Lock()
		s.lastAttempt = start
		s.lastErr = err
		s.mu.Unlock()

		s.logger.Warn("playlist fetch failed", "error", err)
		return nil, fmt.Errorf("refreshing catalog: %w", err)
	}

	channels := category.Channels(s.parser.Parse(text))

	s.mu.Lock()
	s.channels = channels
	s.loadedAt = s.now()
	s.lastAttempt = start
	s.lastErr = nil
	s.mu.Unlock()

	metrics.RecordPlaylistFetch(metrics.ResultSuccess, s.now().Sub(start).Seconds())
	metrics.SetCatalogChannels(len(channels), countByCategory(channels))

	s.logger.Info("channel catalog refreshed",
		"channels", len(channels),
		"bytes", len(text),
		"duration", s.now().Sub(start),
	)

	return channels, nil
}

func fetchResult(err error) string {
	switch {
	case errors.Is(err, playlist.ErrFetchFailure):
		return metrics.ResultFetchFailure
	case errors.Is(err, playlist.ErrNetworkFailure):
		return metrics.ResultNetworkFailure
	default:
		return metrics.ResultError
	}
}

// Channels returns the normalized catalog, loading or reloading it when needed.
// When a reload fails but an older snapshot exists, the older snapshot is
// returned and the failure is only logged.
func (s *CatalogService) Channels(ctx context.Context) ([]channel.Channel, error) {
	s.mu.RLock()
	channels, loadedAt := s.channels, s.loadedAt
	s.mu.RUnlock()

	loaded := !loadedAt.IsZero()
	if loaded && (s.ttl <= 0 || s.now().Sub(loadedAt) < s.ttl) {
		return slices.Clone(channels), nil
	}

	fresh, err := s.Refresh(ctx)
	if err != nil {
		if loaded {
			s.logger.Warn("serving stale channel catalog", "loaded_at", loadedAt, "error", err)
			return slices.Clone(channels), nil
		}
		return nil, err
	}

	return fresh, nil
}

// Filter returns the catalog channels matching q, in catalog order.
// favorites is only consulted for CategoryFavorites.
func (s *CatalogService) Filter(ctx context.Context, q Query, favorites favorite.Set) ([]channel.Channel, error) {
	channels, err := s.Channels(ctx)
	if err != nil {
		return nil, err
	}
	return FilterChannels(channels, q, favorites), nil
}

// FilterChannels applies q to channels: search first, then category selection,
// then the adult safety filter.
func FilterChannels(channels []channel.Channel, q Query, favorites favorite.Set) []channel.Channel {
	result := slices.Clone(channels)

	if search := strings.ToLower(strings.TrimSpace(q.Search)); search != "" {
		result = slices.DeleteFunc(result, func(ch channel.Channel) bool {
			return !strings.Contains(strings.ToLower(ch.Name), search) &&
				!strings.Contains(strings.ToLower(ch.Category), search)
		})
	}

	switch q.Category {
	case "", CategoryAll:
	case CategoryFavorites:
		result = slices.DeleteFunc(result, func(ch channel.Channel) bool {
			return !favorites.Contains(ch.ID)
		})
	case CategoryPopular:
		if len(result) > popularLimit {
			result = result[:popularLimit]
		}
	default:
		result = slices.DeleteFunc(result, func(ch channel.Channel) bool {
			return ch.Category != q.Category
		})
	}

	if !q.AdultEnabled {
		result = slices.DeleteFunc(result, func(ch channel.Channel) bool {
			return ch.Category == string(category.Adults)
		})
	}

	if result == nil {
		result = []channel.Channel{}
	}
	return result
}

// Get returns the first catalog channel with the given id.
// Returns channel.ErrChannelNotFound if no channel has that id.
func (s *CatalogService) Get(ctx context.Context, id string) (channel.Channel, error) {
	channels, err := s.Channels(ctx)
	if err != nil {
		return channel.Channel{}, err
	}

	for _, ch := range channels {
		if ch.ID == id {
			return ch, nil
		}
	}
	return channel.Channel{}, channel.ErrChannelNotFound
}

// Featured picks a random channel among the first channels of the catalog.
// Returns channel.ErrChannelNotFound if the catalog is empty.
func (s *CatalogService) Featured(ctx context.Context) (channel.Channel, error) {
	channels, err := s.Channels(ctx)
	if err != nil {
		return channel.Channel{}, err
	}
	if len(channels) == 0 {
		return channel.Channel{}, channel.ErrChannelNotFound
	}

	return channels[s.pick(min(len(channels), featuredPool))], nil
}

// Categories returns the number of channels in every canonical category,
// in canonical order. Categories without channels are included with zero.
func (s *CatalogService) Categories(ctx context.Context) ([]CategoryCount, error) {
	channels, err := s.Channels(ctx)
	if err != nil {
		return nil, err
	}

	counts := countByCategory(channels)
	result := make([]CategoryCount, 0, len(category.All()))
	for _, c := range category.All() {
		result = append(result, CategoryCount{Category: c, Count: counts[string(c)]})
	}
	return result, nil
}

// Status reports the state of the snapshot without triggering a load.
func (s *CatalogService) Status() CatalogStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return CatalogStatus{
		Loaded:      !s.loadedAt.IsZero(),
		LoadedAt:    s.loadedAt,
		Channels:    len(s.channels),
		LastAttempt: s.lastAttempt,
		LastError:   s.lastErr,
	}
}

func countByCategory(channels []channel.Channel) map[string]int {
	counts := make(map[string]int)
	for _, ch := range channels {
		counts[ch.Category]++
	}
	return counts
}
