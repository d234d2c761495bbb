// Package playlist holds the error taxonomy shared by playlist sources and the
// services consuming them.
package playlist

import (
	"errors"
	"fmt"
)

// Sentinel errors for playlist retrieval. Concrete errors returned by sources
// match one of these with errors.Is.
var (
	ErrFetchFailure   = errors.New("playlist fetch failed")
	ErrNetworkFailure = errors.New("playlist network failure")
)

// FetchError is returned when the remote answered with a non-success status.
type FetchError struct {
	StatusCode int
	Status     string
}

func (e *FetchError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("playlist fetch failed: unexpected HTTP status %s", e.Status)
	}
	return fmt.Sprintf("playlist fetch failed: unexpected HTTP status %d", e.StatusCode)
}

// Is makes errors.Is(err, ErrFetchFailure) hold for any FetchError.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailure
}

// NetworkError wraps a transport-level failure (DNS, timeout, reset, body read).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("playlist network failure: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrNetworkFailure) hold for any NetworkError.
func (e *NetworkError) Is(target error) bool {
	return target == ErrNetworkFailure
}

// IsLoadFailure reports whether err is one of the playlist retrieval failures.
func IsLoadFailure(err error) bool {
	return errors.Is(err, ErrFetchFailure) || errors.Is(err, ErrNetworkFailure)
}
