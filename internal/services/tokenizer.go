package services

import (
	"regexp"
	"sort"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[A-Za-z][A-Za-z0-9+\-/\.#]*`)

var stopWords = toSet(strings.Fields(`
a an and are as at be but by for if in into is it no not of on or s such t that the their then there these they this to was will with you your i me my we our from which who whom whose where when how why what
about above below between while do does did done doing did n't cant cannot could should would may might must can
`))

// Normalize lowercases the word-like tokens of text and drops stop words and
// single characters. Order and duplicates are kept.
func Normalize(text string) []string {
	raw := tokenPattern.FindAllString(text, -1)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		tok = strings.ToLower(tok)
		if len(tok) <= 1 {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// TopKeywords returns up to k distinct tokens, most frequent first. Equal
// counts keep the order of first appearance.
func TopKeywords(tokens []string, k int) []string {
	counts := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if k >= 0 && len(order) > k {
		order = order[:k]
	}
	return order
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
