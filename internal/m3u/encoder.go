package m3u

import (
	"fmt"
	"io"
	"strings"

	"github.com/alorle/streamline/internal/channel"
)

// Encoder writes channels back out as an extended M3U playlist.
type Encoder struct {
	items []channel.Channel
}

// NewEncoder creates an empty Encoder.
func NewEncoder() *Encoder {
	return &Encoder{items: []channel.Channel{}}
}

// AddChannel appends a channel to the playlist.
func (e *Encoder) AddChannel(ch channel.Channel) {
	e.items = append(e.items, ch)
}

// Encode writes the header followed by one EXTINF/URI pair per channel.
func (e *Encoder) Encode(w io.Writer) error {
	if _, err := fmt.Fprint(w, "#EXTM3U\n"); err != nil {
		return err
	}

	for _, item := range e.items {
		if err := encodeChannel(w, item); err != nil {
			return err
		}
	}

	return nil
}

func encodeChannel(w io.Writer, ch channel.Channel) error {
	if _, err := fmt.Fprint(w, extinfPrefix+"-1"); err != nil {
		return err
	}

	if err := encodeTVGTags(w, ch); err != nil {
		return err
	}

	// The display name is everything after the last comma, so commas inside it
	// would be lost on the next parse.
	name := strings.ReplaceAll(ch.Name, ",", " ")
	if _, err := fmt.Fprintf(w, ",%s\n%s\n", strings.TrimSpace(name), ch.URL); err != nil {
		return err
	}

	return nil
}
