package m3u

import (
	"strings"

	"github.com/google/uuid"
)

// idLength is the length of generated fallback ids.
const idLength = 9

// IDGenerator produces fallback ids for entries without a tvg-id attribute.
type IDGenerator interface {
	NewID() string
}

// IDGeneratorFunc adapts a plain function to the IDGenerator interface.
type IDGeneratorFunc func() string

// NewID calls f().
func (f IDGeneratorFunc) NewID() string {
	return f()
}

// UUIDGenerator derives short lower-case hex tokens from random UUIDs.
type UUIDGenerator struct{}

// NewID returns a fresh pseudo-random alphanumeric token.
func (UUIDGenerator) NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:idLength]
}
