// Package ecoscore assigns environmental scores to transactions and folds a
// batch of scored rows into sustainability aggregates.
package ecoscore

import "strings"

// Score returns the eco-score for a merchant/category pair. The merchant
// table is scanned first, then the category table, both case-insensitively
// with first-match-wins substring semantics. Unmatched pairs get DefaultScore.
// Score is a pure function: same inputs always produce the same output.
func Score(merchant, category string) int {
	m := strings.ToLower(merchant)
	for _, entry := range merchantScores {
		if strings.Contains(m, entry.key) {
			return entry.score
		}
	}

	c := strings.ToLower(category)
	for _, entry := range categoryScores {
		if strings.Contains(c, entry.key) {
			return entry.score
		}
	}

	return DefaultScore
}

// SuggestsAlternatives reports whether greener alternatives should be offered
// for a transaction. Transactions scoring 80 or above never get suggestions;
// below that, the category keyword list is checked first, then the merchant
// keyword list.
func SuggestsAlternatives(merchant, category string, ecoScore int) bool {
	if ecoScore >= noAlternativesThreshold {
		return false
	}

	c := strings.ToLower(category)
	for _, keyword := range alternativeCategories {
		if strings.Contains(c, keyword) {
			return true
		}
	}

	m := strings.ToLower(merchant)
	for _, keyword := range alternativeMerchants {
		if strings.Contains(m, keyword) {
			return true
		}
	}

	return false
}
