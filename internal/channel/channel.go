package channel

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrEmptyName       = errors.New("channel name cannot be empty")
	ErrEmptyURL        = errors.New("channel stream url cannot be empty")
	ErrChannelNotFound = errors.New("channel not found")
)

// Default attribute values used when a playlist entry omits them.
const (
	DefaultName     = "Unknown Channel"
	DefaultCategory = "General"
)

// Channel is a single playable entry of a playlist.
// IDs come from the source playlist and are not guaranteed to be unique.
type Channel struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Logo     string `json:"logo"`
	URL      string `json:"url"`
	Category string `json:"category"`
}

// Validate reports whether the channel can be emitted by a parser.
// Returns ErrEmptyName or ErrEmptyURL for incomplete channels.
func (c Channel) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(c.URL) == "" {
		return ErrEmptyURL
	}
	return nil
}

// WithCategory returns a copy of the channel with its category replaced.
func (c Channel) WithCategory(category string) Channel {
	c.Category = category
	return c
}
