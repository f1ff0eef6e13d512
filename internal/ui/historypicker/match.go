package historypicker

import (
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// A query word of this many runes or fewer must appear verbatim; longer
// words may match loosely on shared trigrams.
const shortWord = 2

// minCoverage is the share of a word's trigrams a query must contain for
// a loose match, enough to absorb one typo in a band name.
const minCoverage = 0.4

// fold lowercases s and strips combining marks, so "beyonce" finds
// "Beyoncé".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

type trigrams map[string]struct{}

// trigramsOf returns the trigrams of s padded with two spaces each side, so
// prefixes and suffixes weigh in.
func trigramsOf(s string) trigrams {
	r := []rune("  " + s + "  ")
	set := make(trigrams, len(r))
	for i := 0; i+3 <= len(r); i++ {
		g := string(r[i : i+3])
		if strings.TrimSpace(g) != "" {
			set[g] = struct{}{}
		}
	}
	return set
}

// coverage is the share of want found in have.
func coverage(want, have trigrams) float64 {
	if len(want) == 0 {
		return 0
	}
	n := 0
	for g := range want {
		if _, ok := have[g]; ok {
			n++
		}
	}
	return float64(n) / float64(len(want))
}

// index holds the folded queries of the history, in history order.
type index struct {
	text  []string
	grams []trigrams
}

func newIndex(queries []string) index {
	ix := index{text: make([]string, len(queries)), grams: make([]trigrams, len(queries))}
	for i, q := range queries {
		ix.text[i] = fold(q)
		ix.grams[i] = trigramsOf(ix.text[i])
	}
	return ix
}

// rank returns the positions of the entries matching every word of filter,
// best first. Equal scores keep history order, so the most recent search
// wins a tie. An empty filter returns the whole history.
func (ix index) rank(filter string) []int {
	words := strings.Fields(fold(filter))
	if len(words) == 0 {
		out := make([]int, len(ix.text))
		for i := range out {
			out[i] = i
		}
		return out
	}

	wordGrams := make([]trigrams, len(words))
	for i, w := range words {
		wordGrams[i] = trigramsOf(w)
	}

	type hit struct {
		pos   int
		score float64
	}
	var hits []hit
	for i := range ix.text {
		if s := ix.score(i, words, wordGrams); s > 0 {
			hits = append(hits, hit{i, s})
		}
	}
	slices.SortStableFunc(hits, func(a, b hit) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		}
		return 0
	})

	out := make([]int, len(hits))
	for i, h := range hits {
		out[i] = h.pos
	}
	return out
}

// score averages per-word scores and is zero when any word misses.
func (ix index) score(i int, words []string, wordGrams []trigrams) float64 {
	total := 0.0
	for w, word := range words {
		exact := strings.Contains(ix.text[i], word)
		if len([]rune(word)) <= shortWord {
			if !exact {
				return 0
			}
			total++
			continue
		}
		c := coverage(wordGrams[w], ix.grams[i])
		if c < minCoverage {
			return 0
		}
		if exact {
			c += 0.5
		}
		total += c
	}
	return total / float64(len(words))
}
