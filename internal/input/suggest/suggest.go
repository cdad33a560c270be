// Package suggest ranks known names by how closely they resemble a name that
// failed to decode, for "did you mean" hints.
//
// Matching is case-insensitive and works in both directions: the shorter of
// the two strings must be a subsequence of the longer, so "Escape" finds
// "Esc" and "PgUp" finds "PageUp".
package suggest

import (
	"sort"
	"strings"
	"unicode"
)

// Match is a scored candidate.
type Match struct {
	Text  string
	Score int
}

// exactScore is given to a candidate that differs from the query only in case.
const exactScore = 1000

// Rank scores every candidate against query and returns the matches, best
// first. Ties are broken alphabetically.
func Rank(query string, candidates []string) []Match {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	var matches []Match
	for _, c := range candidates {
		if score := Score(query, c); score > 0 {
			matches = append(matches, Match{Text: c, Score: score})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Text < matches[j].Text
	})
	return matches
}

// Best returns up to limit candidate names resembling query.
func Best(query string, candidates []string, limit int) []string {
	ranked := Rank(query, candidates)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]string, len(ranked))
	for i, m := range ranked {
		out[i] = m.Text
	}
	return out
}

// Score rates how well candidate matches query. Zero means no match.
func Score(query, candidate string) int {
	q := []rune(strings.ToLower(query))
	c := []rune(strings.ToLower(candidate))
	if len(q) == 0 || len(c) == 0 {
		return 0
	}
	if string(q) == string(c) {
		return exactScore
	}

	short, long, longOrig := q, c, []rune(candidate)
	if len(q) > len(c) {
		short, long, longOrig = c, q, []rune(query)
	}
	// Single letters and short fragments of long names are too ambiguous.
	if len(short) < 2 || 2*len(short) < len(long) {
		return 0
	}

	positions := subsequence(short, long)
	if positions == nil {
		return 0
	}
	return score(short, long, longOrig, positions)
}

// subsequence returns the indices in long of a greedy left-to-right match of
// short, or nil when short is not a subsequence of long.
func subsequence(short, long []rune) []int {
	positions := make([]int, 0, len(short))
	j := 0
	for i := 0; i < len(long) && j < len(short); i++ {
		if long[i] == short[j] {
			positions = append(positions, i)
			j++
		}
	}
	if j != len(short) {
		return nil
	}
	return positions
}

func score(short, long, longOrig []rune, positions []int) int {
	s := 100

	for i := 1; i < len(positions); i++ {
		if positions[i] == positions[i-1]+1 {
			s += 20
		}
	}
	for _, p := range positions {
		if isWordBoundary(longOrig, p) {
			s += 15
		}
	}
	if positions[0] == 0 {
		s += 25
	}
	if gap := positions[len(positions)-1] - positions[0] - len(positions) + 1; gap > 0 {
		s -= 2 * gap
	}
	s -= positions[0]
	s -= 3 * (len(long) - len(short))

	if string(long[:len(short)]) == string(short) {
		s += 50
	}
	return max(s, 1)
}

func isWordBoundary(runes []rune, idx int) bool {
	if idx == 0 {
		return true
	}
	if idx >= len(runes) {
		return false
	}
	prev, cur := runes[idx-1], runes[idx]
	if unicode.IsSpace(prev) || unicode.IsPunct(prev) {
		return true
	}
	return unicode.IsLower(prev) && unicode.IsUpper(cur)
}
