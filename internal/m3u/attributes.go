package m3u

import (
	"regexp"
	"strings"
)

const extinfPrefix = "#EXTINF:"

var (
	tvgIDRegex      = regexp.MustCompile(`tvg-id="([^"]*)"`)
	tvgLogoRegex    = regexp.MustCompile(`tvg-logo="([^"]*)"`)
	groupTitleRegex = regexp.MustCompile(`group-title="([^"]*)"`)
)

// isExtinf reports whether the (already trimmed) line is a metadata directive.
func isExtinf(line string) bool {
	return strings.HasPrefix(line, extinfPrefix)
}

// isStreamURI reports whether the (already trimmed) line is a stream URI.
func isStreamURI(line string) bool {
	return strings.HasPrefix(line, "http")
}

// displayName extracts the text after the last comma of an EXTINF line.
// The boolean is false when the line has no comma at all.
func displayName(extinf string) (string, bool) {
	commaIdx := strings.LastIndex(extinf, ",")
	if commaIdx == -1 {
		return "", false
	}
	return strings.TrimSpace(extinf[commaIdx+1:]), true
}

// attribute returns the first capture of re in the line.
// The boolean is false when the attribute is absent, malformed or blank.
func attribute(re *regexp.Regexp, extinf string) (string, bool) {
	matches := re.FindStringSubmatch(extinf)
	if len(matches) < 2 {
		return "", false
	}
	value := strings.TrimSpace(matches[1])
	return value, value != ""
}
