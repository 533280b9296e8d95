package domain

import (
	"sort"
	"strings"
	"unicode"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// PaletteItem pairs a human-readable label with the action identifier it
// triggers. The menu is static for the process lifetime.
type PaletteItem struct {
	Label  string
	Action string
}

// FuzzyFilter ranks items against query with case-insensitive,
// accent-normalized fuzzy subsequence matching. An empty query returns the
// items unchanged; non-matching items are dropped. Ties in score are broken
// by label, ascending.
func FuzzyFilter(items []PaletteItem, query string) []PaletteItem {
	if strings.TrimSpace(query) == "" {
		return append([]PaletteItem(nil), items...)
	}

	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = foldLabel(item.Label)
	}

	matches := fuzzy.Find(foldLabel(query), labels)
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return items[matches[i].Index].Label < items[matches[j].Index].Label
	})

	ranked := make([]PaletteItem, 0, len(matches))
	for _, m := range matches {
		ranked = append(ranked, items[m.Index])
	}
	return ranked
}

var accentFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldLabel(s string) string {
	folded, _, err := transform.String(accentFold, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
