// Package category maps free-text playlist group titles onto a fixed set of
// canonical categories.
package category

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alorle/streamline/internal/channel"
)

// Category is a canonical channel category label.
type Category string

// Canonical categories.
const (
	News        Category = "News"
	Sports      Category = "Sports"
	Movies      Category = "Movies"
	Kids        Category = "Kids"
	Telidrama   Category = "Telidrama"
	Adults      Category = "Adults"
	Music       Category = "Music"
	Documentary Category = "Documentary"
	General     Category = Category(channel.DefaultCategory)
)

func (c Category) String() string {
	return string(c)
}

// rule maps a set of lower-case keywords to a canonical category.
type rule struct {
	keywords []string
	category Category
}

// rules are evaluated top to bottom; the first rule with a keyword contained
// in the title wins.
var rules = []rule{
	{keywords: []string{"news"}, category: News},
	{keywords: []string{"sport"}, category: Sports},
	{keywords: []string{"movie", "cinema", "film"}, category: Movies},
	{keywords: []string{"kid", "cartoon", "animation"}, category: Kids},
	{keywords: []string{"drama", "series"}, category: Telidrama},
	{keywords: []string{"xxx", "adult", "porn"}, category: Adults},
	{keywords: []string{"music"}, category: Music},
	{keywords: []string{"documentary", "education"}, category: Documentary},
}

// Normalize maps a raw group title onto a canonical category.
// Matching is case-insensitive substring containment; titles matching no rule
// map to General.
func Normalize(groupTitle string) Category {
	// Casers are stateful and cannot be shared between goroutines.
	title := cases.Lower(language.Und).String(groupTitle)

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(title, kw) {
				return r.category
			}
		}
	}

	return General
}

// All returns every canonical category in rule order, followed by General.
func All() []Category {
	all := make([]Category, 0, len(rules)+1)
	for _, r := range rules {
		all = append(all, r.category)
	}
	return append(all, General)
}

// IsCanonical reports whether s is exactly one of the canonical labels.
func IsCanonical(s string) bool {
	for _, c := range All() {
		if string(c) == s {
			return true
		}
	}
	return false
}

// Channels returns copies of the given channels with their categories
// normalized. The input slice is left untouched.
func Channels(channels []channel.Channel) []channel.Channel {
	normalized := make([]channel.Channel, len(channels))
	for i, ch := range channels {
		normalized[i] = ch.WithCategory(string(Normalize(ch.Category)))
	}
	return normalized
}
