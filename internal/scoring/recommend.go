package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

// Recommendation thresholds and the missing-keyword cap are fixed
// constants of the scoring contract.
const (
	semanticThreshold   = 70.0
	experienceThreshold = 80.0
	educationThreshold  = 80.0

	maxRecommendedKeywords = 5
)

// Recommendations turns missing keywords and sub-threshold component scores
// into advisory strings. Rules are evaluated in fixed order and are
// independent; if none fires, a single positive message is returned.
func Recommendations(missingKeywords []string, scores types.ScoreBreakdown) []string {
	recommendations := []string{}

	if len(missingKeywords) > 0 {
		top := missingKeywords
		if len(top) > maxRecommendedKeywords {
			top = top[:maxRecommendedKeywords]
		}
		recommendations = append(recommendations, fmt.Sprintf("Add keywords: %s", strings.Join(top, ", ")))
	}

	if scores.SemanticSimilarity < semanticThreshold {
		recommendations = append(recommendations, "Improve resume content to better match job requirements")
	}

	if scores.ExperienceAlignment < experienceThreshold {
		recommendations = append(recommendations, "Highlight relevant experience that matches the job level")
	}

	if scores.EducationMatch < educationThreshold {
		recommendations = append(recommendations, "Consider additional education or certifications")
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Resume looks well-aligned with the job description")
	}

	return recommendations
}
