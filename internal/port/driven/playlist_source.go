package driven

import "context"

// PlaylistSource defines the interface for retrieving raw playlist text.
// This is a driven port that will be implemented by concrete adapters (e.g., HTTP client).
type PlaylistSource interface {
	// Fetch retrieves the full playlist document in a single attempt.
	// Implementations return errors matching playlist.ErrFetchFailure for
	// non-success responses and playlist.ErrNetworkFailure for transport failures.
	Fetch(ctx context.Context) (string, error)
}
