package m3u

import (
	"fmt"
	"io"
	"strings"

	"github.com/alorle/streamline/internal/channel"
)

// attrReplacer keeps attribute values from closing their quotes early.
var attrReplacer = strings.NewReplacer(`"`, "'", "\n", " ", "\r", " ")

// encodeTVGTags writes the tvg-id, tvg-logo and group-title attributes.
// Empty values are omitted.
func encodeTVGTags(w io.Writer, ch channel.Channel) error {
	tags := []struct{ key, value string }{
		{"tvg-id", ch.ID},
		{"tvg-logo", ch.Logo},
		{"group-title", ch.Category},
	}

	for _, tag := range tags {
		if tag.value == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, " %s=\"%s\"", tag.key, attrReplacer.Replace(tag.value)); err != nil {
			return err
		}
	}

	return nil
}
