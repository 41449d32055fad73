package parsing

import "strings"

// ExperienceUnknown is returned when no experience phrase is found.
const ExperienceUnknown = "unknown"

// experienceCategory groups the phrases that signal one seniority tier.
type experienceCategory struct {
	name    string
	phrases []string
}

// experienceCategories is scanned in declared order with early exit, so a
// text mentioning both "junior" and "senior" resolves to the category that
// appears first in this list, not the highest tier.
var experienceCategories = []experienceCategory{
	{"entry", []string{"entry level", "junior", "0-2 years", "1-2 years"}},
	{"mid", []string{"mid level", "intermediate", "3-5 years", "4-6 years"}},
	{"senior", []string{"senior", "lead", "5+ years", "6+ years", "7+ years"}},
	{"expert", []string{"expert", "principal", "architect", "10+ years"}},
}

// ExtractExperienceLevel scans the lowercased text for experience phrases
// and returns the name of the first matching category, or ExperienceUnknown.
func ExtractExperienceLevel(text string) string {
	lower := strings.ToLower(text)

	for _, category := range experienceCategories {
		for _, phrase := range category.phrases {
			if strings.Contains(lower, phrase) {
				return category.name
			}
		}
	}

	return ExperienceUnknown
}
