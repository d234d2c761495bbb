package driven

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/alorle/streamline/internal/playlist"
	"github.com/alorle/streamline/internal/port/driven"
)

const (
	// DefaultPlaylistURL is the public index of free-to-air channels.
	DefaultPlaylistURL = "https://iptv-org.github.io/iptv/index.m3u"

	defaultFetchTimeout = 30 * time.Second
)

// PlaylistHTTPSource fetches a playlist document over plain HTTP GET.
// It implements the driven.PlaylistSource port.
type PlaylistHTTPSource struct {
	url    string
	client *http.Client
}

// NewPlaylistHTTPSource creates a new HTTP playlist source for the given URL.
// If url is empty, it uses DefaultPlaylistURL.
// If client is nil, it creates a default HTTP client with a 30-second timeout.
func NewPlaylistHTTPSource(url string, client *http.Client) *PlaylistHTTPSource {
	if url == "" {
		url = DefaultPlaylistURL
	}
	if client == nil {
		client = &http.Client{
			Timeout: defaultFetchTimeout,
		}
	}
	return &PlaylistHTTPSource{
		url:    url,
		client: client,
	}
}

// URL returns the playlist location this source fetches from.
func (s *PlaylistHTTPSource) URL() string {
	return s.url
}

// Fetch retrieves the playlist in a single attempt. There is no retry.
// Non-2xx responses yield a *playlist.FetchError; transport failures, including
// a cancelled context or a broken body, yield a *playlist.NetworkError.
func (s *PlaylistHTTPSource) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", fmt.Errorf("creating HTTP request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &playlist.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &playlist.FetchError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &playlist.NetworkError{Err: fmt.Errorf("reading response body: %w", err)}
	}

	return string(body), nil
}

// Ensure PlaylistHTTPSource implements the driven.PlaylistSource interface
var _ driven.PlaylistSource = (*PlaylistHTTPSource)(nil)
