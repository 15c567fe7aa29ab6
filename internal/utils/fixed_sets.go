package utils

import (
	"strconv"
	"strings"

	"github.com/ArowuTest/lotto-tracker/internal/models"
)

// ParseFixedSets turns raw "my numbers" text into fixed sets, one per non-blank line.
//
// Tokens are comma separated and trimmed. Tokens that are not plain decimal digits
// are dropped without error, so "foo,1,2" yields [1, 2]. This is the intended input
// policy: malformed tokens are filtered, never rejected.
func ParseFixedSets(raw string) []models.FixedSet {
	sets := []models.FixedSet{}
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		set := models.FixedSet{}
		for _, token := range strings.Split(line, ",") {
			token = strings.TrimSpace(token)
			if !isDigits(token) {
				continue
			}
			n, err := strconv.Atoi(token)
			if err != nil {
				// out of int range
				continue
			}
			set = append(set, n)
		}
		sets = append(sets, set)
	}
	return sets
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
