package service

import (
	"regexp"
	"strings"
)

// minHintSimilarity is the floor for suggesting a present header in place of
// a missing required one.
const minHintSimilarity = 0.8

var rxNonWord = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// normHeaderKey: lower case, punctuation and NBSP to single spaces.
func normHeaderKey(s string) string {
	s = strings.ToLower(s)
	s = rxNonWord.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// columnHints maps each missing column to the closest header actually
// present, when one is close enough to be a likely typo or case slip.
func columnHints(have, missing []string) map[string]string {
	var hints map[string]string
	for _, m := range missing {
		nm := normHeaderKey(m)
		best, bestScore := "", 0.0
		for _, h := range have {
			if s := similarity(nm, normHeaderKey(h)); s > bestScore {
				best, bestScore = strings.TrimSpace(h), s
			}
		}
		if bestScore >= minHintSimilarity {
			if hints == nil {
				hints = make(map[string]string, len(missing))
			}
			hints[m] = best
		}
	}
	return hints
}

// similarity is normalized Damerau-Levenshtein in [0..1].
func similarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	d := damerauLevenshtein(a, b)
	m := len([]rune(a))
	if mb := len([]rune(b)); mb > m {
		m = mb
	}
	return 1 - float64(d)/float64(m)
}

func damerauLevenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	al, bl := len(ra), len(rb)

	dp := make([][]int, al+1)
	for i := range dp {
		dp[i] = make([]int, bl+1)
		dp[i][0] = i
	}
	for j := 0; j <= bl; j++ {
		dp[0][j] = j
	}

	for i := 1; i <= al; i++ {
		for j := 1; j <= bl; j++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}
			// insert / delete / substitute
			dp[i][j] = min(dp[i-1][j]+1, dp[i][j-1]+1, dp[i-1][j-1]+cost)

			// adjacent transposition
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				dp[i][j] = min(dp[i][j], dp[i-2][j-2]+1)
			}
		}
	}
	return dp[al][bl]
}
