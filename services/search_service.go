package services

import (
	"sort"
	"strings"
	"unicode"

	"github.com/texttheater/golang-levenshtein/levenshtein"
	"golang.org/x/text/unicode/norm"
)

// NormalizeSearch lowercases, strips spaces and diacritics so "Đặng" and
// "dang" compare equal.
func NormalizeSearch(s string) string {
	t := norm.NFD.String(strings.ToLower(strings.ReplaceAll(s, " ", "")))
	var b strings.Builder
	for _, r := range t {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MatchesSearch reports whether the query is a substring of any candidate
// field after normalization.
func MatchesSearch(query string, fields ...string) bool {
	q := NormalizeSearch(query)
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(NormalizeSearch(f), q) {
			return true
		}
	}
	return false
}

// RankFuzzy orders candidates by edit distance to the query and keeps the
// ones within maxDistance. Used as a fallback when substring search finds
// nothing.
func RankFuzzy(query string, candidates []string, maxDistance int) []string {
	q := NormalizeSearch(query)
	type scored struct {
		value string
		dist  int
	}

	var matches []scored
	for _, cand := range candidates {
		d := levenshtein.DistanceForStrings([]rune(q), []rune(NormalizeSearch(cand)), levenshtein.DefaultOptions)
		if d <= maxDistance {
			matches = append(matches, scored{value: cand, dist: d})
		}
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].dist < matches[j].dist })

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.value)
	}
	return out
}
