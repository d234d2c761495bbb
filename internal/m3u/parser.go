package m3u

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/alorle/streamline/internal/channel"
)

const (
	placeholderLogoBase = "https://via.placeholder.com/300x200?text="

	// Long #EXTINF lines with inline logos overflow the default scanner buffer.
	maxLineSize = 1024 * 1024
)

// PlaceholderLogo builds the fallback logo URI for a channel name.
func PlaceholderLogo(name string) string {
	return placeholderLogoBase + url.QueryEscape(name)
}

// Parser turns extended M3U text into channels.
// A Parser holds no per-parse state and is safe for concurrent use as long as
// its IDGenerator is.
type Parser struct {
	ids  IDGenerator
	logo func(name string) string
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithIDGenerator sets the generator used for entries without a tvg-id.
func WithIDGenerator(g IDGenerator) ParserOption {
	return func(p *Parser) {
		if g != nil {
			p.ids = g
		}
	}
}

// WithPlaceholderLogo sets the function building logos for entries without a tvg-logo.
func WithPlaceholderLogo(fn func(name string) string) ParserOption {
	return func(p *Parser) {
		if fn != nil {
			p.logo = fn
		}
	}
}

// NewParser creates a Parser with random fallback ids and placeholder logos.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{
		ids:  UUIDGenerator{},
		logo: PlaceholderLogo,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse converts playlist text into channels, in playlist order.
// Parsing is lenient: unknown lines are skipped, missing attributes fall back
// to defaults, and entries without a stream URI are dropped. It never fails.
//
// Attribute values are trimmed, and a tvg-id, tvg-logo or group-title that is
// present but blank counts as missing: it gets a generated id, the
// placeholder logo or "General" respectively. IDs are therefore never empty.
func (p *Parser) Parse(text string) []channel.Channel {
	var st state
	for _, line := range strings.Split(text, "\n") {
		p.feed(&st, line)
	}
	return st.emitted()
}

// ParseReader is like Parse but reads the playlist line by line from r.
// The only errors returned are read errors from r.
func (p *Parser) ParseReader(r io.Reader) ([]channel.Channel, error) {
	var st state
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		p.feed(&st, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading playlist: %w", err)
	}

	return st.emitted(), nil
}

// state is the accumulator of a single parse pass.
type state struct {
	pending  *channel.Channel
	channels []channel.Channel
}

func (s *state) emitted() []channel.Channel {
	if s.channels == nil {
		return []channel.Channel{}
	}
	return s.channels
}

func (p *Parser) feed(st *state, raw string) {
	line := strings.TrimSpace(raw)

	switch {
	case isExtinf(line):
		// A new directive always replaces an entry still waiting for its URI.
		ch := p.parseExtinf(line)
		st.pending = &ch

	case isStreamURI(line):
		if st.pending != nil {
			ch := *st.pending
			ch.URL = line
			if ch.Validate() == nil {
				st.channels = append(st.channels, ch)
			}
		}
		st.pending = nil
	}
}

func (p *Parser) parseExtinf(line string) channel.Channel {
	name, ok := displayName(line)
	if !ok {
		name = channel.DefaultName
	}

	logo, ok := attribute(tvgLogoRegex, line)
	if !ok {
		logo = p.logo(name)
	}

	group, ok := attribute(groupTitleRegex, line)
	if !ok {
		group = channel.DefaultCategory
	}

	id, ok := attribute(tvgIDRegex, line)
	if !ok {
		id = p.ids.NewID()
	}

	return channel.Channel{
		ID:       id,
		Name:     name,
		Logo:     logo,
		Category: group,
	}
}
