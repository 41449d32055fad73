package parsing

import "strings"

// educationRule maps a vocabulary phrase to its ordinal rank.
type educationRule struct {
	phrase string
	rank   int
}

// educationRules is scanned in declared order and the first phrase found
// wins, so the ordering is part of the extraction contract and must not be
// re-sorted. "phd" and "doctorate" alias to the same rank.
var educationRules = []educationRule{
	{"high school", 1},
	{"associate", 2},
	{"bachelor", 3},
	{"master", 4},
	{"phd", 5},
	{"doctorate", 5},
}

// EducationUnspecified is the rank returned when no education phrase is found.
const EducationUnspecified = 0

// ExtractEducationLevel scans the lowercased text for education phrases and
// returns the rank of the first vocabulary entry present, or
// EducationUnspecified when none match.
func ExtractEducationLevel(text string) int {
	lower := strings.ToLower(text)

	for _, rule := range educationRules {
		if strings.Contains(lower, rule.phrase) {
			return rule.rank
		}
	}

	return EducationUnspecified
}
