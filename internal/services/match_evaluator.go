package services

import (
	"fmt"

	"github.com/ArowuTest/lotto-tracker/internal/models"
)

// Classify places one fixed set on the tier ladder and reports how many of the six
// winning numbers it holds. Duplicates in the set count once.
func Classify(fixed models.FixedSet, winning [models.NumbersPerDraw]int, bonus int) (models.Tier, int) {
	want := make(map[int]struct{}, len(winning))
	for _, n := range winning {
		want[n] = struct{}{}
	}
	hit := make(map[int]struct{}, len(fixed))
	for _, n := range fixed {
		if _, ok := want[n]; ok {
			hit[n] = struct{}{}
		}
	}
	matched := len(hit)

	switch {
	case matched == 6:
		return models.Tier1, matched
	case matched == 5 && fixed.Contains(bonus):
		return models.Tier2, matched
	case matched == 5:
		return models.Tier3, matched
	case matched == 4:
		return models.Tier4, matched
	case matched == 3:
		return models.Tier5, matched
	default:
		return models.TierNone, matched
	}
}

// Evaluate returns one line per winning fixed set, in input order. When no set wins
// the result is the single NoWinOutcome entry.
func Evaluate(fixedSets []models.FixedSet, winning [models.NumbersPerDraw]int, bonus int) []string {
	results := []string{}
	for _, fixed := range fixedSets {
		tier, _ := Classify(fixed, winning, bonus)
		if !tier.IsWin() {
			continue
		}
		results = append(results, fmt.Sprintf("%s! (%s)", tier, fixed))
	}

	if len(results) == 0 {
		return []string{models.NoWinOutcome}
	}
	return results
}
