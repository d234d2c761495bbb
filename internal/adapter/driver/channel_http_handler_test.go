package driver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alorle/streamline/internal/channel"
	"github.com/alorle/streamline/internal/favorite"
	"github.com/alorle/streamline/internal/playlist"
)

func decodeChannels(t *testing.T, rec *httptest.ResponseRecorder) []channel.Channel {
	t.Helper()
	var channels []channel.Channel
	if err := json.NewDecoder(rec.Body).Decode(&channels); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return channels
}

func channelIDs(channels []channel.Channel) []string {
	ids := make([]string, len(channels))
	for i, ch := range channels {
		ids[i] = ch.ID
	}
	return ids
}

func TestChannelHTTPHandler_List(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		favorites   favorite.Set
		expectedIDs []string
	}{
		{
			name:        "GET /channels hides adult channels by default",
			target:      "/channels",
			expectedIDs: []string{"fun", "daily"},
		},
		{
			name:        "GET /channels?adult=true includes adult channels",
			target:      "/channels?adult=true",
			expectedIDs: []string{"fun", "daily", "late"},
		},
		{
			name:        "GET /channels?q= matches name",
			target:      "/channels?q=daily",
			expectedIDs: []string{"daily"},
		},
		{
			name:        "GET /channels?category= matches normalized category",
			target:      "/channels?category=Kids",
			expectedIDs: []string{"fun"},
		},
		{
			name:        "GET /channels?category=Favorites uses stored favorites",
			target:      "/channels?category=Favorites",
			favorites:   favorite.NewSet("daily"),
			expectedIDs: []string{"daily"},
		},
		{
			name:        "GET /channels returns empty array when nothing matches",
			target:      "/channels?q=nothing",
			expectedIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			handler := NewChannelHTTPHandler(
				newTestCatalog(&mockPlaylistSource{}),
				newTestFavorites(&mockFavoritesRepository{set: tt.favorites}),
			)
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()

			// Act
			handler.ServeHTTP(rec, req)

			// Assert
			if rec.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected Content-Type application/json, got %q", ct)
			}
			if diff := cmp.Diff(tt.expectedIDs, channelIDs(decodeChannels(t, rec))); diff != "" {
				t.Errorf("channel ids mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("GET /channels returns normalized records", func(t *testing.T) {
		handler := NewChannelHTTPHandler(newTestCatalog(&mockPlaylistSource{}), newTestFavorites(&mockFavoritesRepository{}))
		req := httptest.NewRequest(http.MethodGet, "/channels?q=fun", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		expected := []channel.Channel{{
			ID:       "fun",
			Name:     "Fun Channel",
			Logo:     "http://x/fun.png",
			URL:      "http://stream/fun.m3u8",
			Category: "Kids",
		}}
		if diff := cmp.Diff(expected, decodeChannels(t, rec)); diff != "" {
			t.Errorf("channels mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("GET /channels returns 400 for invalid adult flag", func(t *testing.T) {
		handler := NewChannelHTTPHandler(newTestCatalog(&mockPlaylistSource{}), newTestFavorites(&mockFavoritesRepository{}))
		req := httptest.NewRequest(http.MethodGet, "/channels?adult=maybe", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
	})

	t.Run("GET /channels returns 502 when the playlist cannot be loaded", func(t *testing.T) {
		source := &mockPlaylistSource{
			fetchFunc: func(ctx context.Context) (string, error) {
				return "", &playlist.NetworkError{Err: errors.New("connection refused")}
			},
		}
		handler := NewChannelHTTPHandler(newTestCatalog(source), newTestFavorites(&mockFavoritesRepository{}))
		req := httptest.NewRequest(http.MethodGet, "/channels", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadGateway {
			t.Errorf("expected status 502, got %d", rec.Code)
		}
		var resp errorResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Error != "unable to load TV channels" {
			t.Errorf("expected load failure message, got %q", resp.Error)
		}
	})

	t.Run("POST /channels returns 405", func(t *testing.T) {
		handler := NewChannelHTTPHandler(newTestCatalog(&mockPlaylistSource{}), newTestFavorites(&mockFavoritesRepository{}))
		req := httptest.NewRequest(http.MethodPost, "/channels", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected status 405, got %d", rec.Code)
		}
	})
}

func TestChannelHTTPHandler_Get(t *testing.T) {
	t.Run("GET /channels/{id} returns channel", func(t *testing.T) {
		handler := NewChannelHTTPHandler(newTestCatalog(&mockPlaylistSource{}), newTestFavorites(&mockFavoritesRepository{}))
		req := httptest.NewRequest(http.MethodGet, "/channels/daily", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		var ch channel.Channel
		if err := json.NewDecoder(rec.Body).Decode(&ch); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if ch.Name != "Daily News" || ch.Category != "News" {
			t.Errorf("unexpected channel: %+v", ch)
		}
	})

	t.Run("GET /channels/{id} returns 404 for unknown id", func(t *testing.T) {
		handler := NewChannelHTTPHandler(newTestCatalog(&mockPlaylistSource{}), newTestFavorites(&mockFavoritesRepository{}))
		req := httptest.NewRequest(http.MethodGet, "/channels/missing", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", rec.Code)
		}
	})
}

func TestChannelHTTPHandler_Featured(t *testing.T) {
	t.Run("GET /channels/featured picks from the catalog", func(t *testing.T) {
		handler := NewChannelHTTPHandler(newTestCatalog(&mockPlaylistSource{}), newTestFavorites(&mockFavoritesRepository{}))
		req := httptest.NewRequest(http.MethodGet, "/channels/featured", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		var ch channel.Channel
		if err := json.NewDecoder(rec.Body).Decode(&ch); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if ch.ID != "late" {
			t.Errorf("expected last channel of the pool, got %q", ch.ID)
		}
	})

	t.Run("GET /channels/featured returns 404 for empty catalog", func(t *testing.T) {
		source := &mockPlaylistSource{
			fetchFunc: func(ctx context.Context) (string, error) {
				return "#EXTM3U\n", nil
			},
		}
		handler := NewChannelHTTPHandler(newTestCatalog(source), newTestFavorites(&mockFavoritesRepository{}))
		req := httptest.NewRequest(http.MethodGet, "/channels/featured", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", rec.Code)
		}
	})
}

func TestChannelHTTPHandler_FeaturedRouteShadowsID(t *testing.T) {
	source := &mockPlaylistSource{
		fetchFunc: func(ctx context.Context) (string, error) {
			return "#EXTM3U\n" +
				`#EXTINF:-1 tvg-id="featured" group-title="News",Featured News` + "\n" +
				"http://stream/featured.m3u8\n" +
				`#EXTINF:-1 tvg-id="other" group-title="News",Other News` + "\n" +
				"http://stream/other.m3u8\n", nil
		},
	}
	handler := NewChannelHTTPHandler(newTestCatalog(source), newTestFavorites(&mockFavoritesRepository{}))
	req := httptest.NewRequest(http.MethodGet, "/channels/featured", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var ch channel.Channel
	if err := json.NewDecoder(rec.Body).Decode(&ch); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	// The random pick returns the last channel of the pool, not the channel
	// with id "featured".
	if ch.ID != "other" {
		t.Errorf("expected the featured endpoint to answer, got channel %q", ch.ID)
	}
}
