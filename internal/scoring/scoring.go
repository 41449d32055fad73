// Package scoring implements the ATS matching engine: per-dimension
// similarity scores between a resume and a job description, a fixed
// weighted blend, and rule-based recommendations.
package scoring

import (
	"context"
	"math"

	"github.com/jonathan/ats-scorer/internal/embedding"
	"github.com/jonathan/ats-scorer/internal/parsing"
	"golang.org/x/sync/errgroup"
)

// Component weights for the overall score. These are part of the public
// scoring contract: changing them changes what an overall score means, so
// they are versioned with the API rather than tuned silently.
const (
	WeightSemantic   = 0.30
	WeightKeyword    = 0.40
	WeightExperience = 0.20
	WeightEducation  = 0.10
)

// Linear penalties per missing ordinal rank step, floored at 0.
const (
	educationPenaltyPerRank  = 20.0
	experiencePenaltyPerRank = 25.0
)

// experienceRanks maps experience categories to ordinal ranks for
// comparison. Unknown categories rank 0; that rank is internal and is
// never surfaced as a negative score.
var experienceRanks = map[string]int{
	"entry":  1,
	"mid":    2,
	"senior": 3,
	"expert": 4,
}

// KeywordMatch computes the keyword overlap score between a resume and a
// job description. The job's keyword set is partitioned into matched
// (present in the resume) and missing, both in first-seen order within the
// job text. A job with no extractable keywords scores 0.0, not neutral.
func KeywordMatch(resumeText, jobText string) (float64, []string, []string) {
	resumeSet := parsing.KeywordSet(resumeText)
	jobKeywords := parsing.ExtractKeywords(jobText)

	seen := make(map[string]bool, len(jobKeywords))
	matched := []string{}
	missing := []string{}
	for _, kw := range jobKeywords {
		if seen[kw] {
			continue
		}
		seen[kw] = true
		if resumeSet[kw] {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	if len(seen) == 0 {
		return 0.0, matched, missing
	}

	score := float64(len(matched)) / float64(len(seen)) * 100
	return score, matched, missing
}

// EducationMatch scores how the resume's education rank aligns with the
// job's stated requirement. A job with no recognized education phrase has
// no requirement and scores 100; meeting or exceeding the requirement
// scores 100; each missing rank step costs 20 points.
func EducationMatch(resumeText, jobText string) float64 {
	resumeRank := parsing.ExtractEducationLevel(resumeText)
	jobRank := parsing.ExtractEducationLevel(jobText)

	if jobRank == parsing.EducationUnspecified {
		return 100.0
	}
	if resumeRank >= jobRank {
		return 100.0
	}

	penalty := educationPenaltyPerRank * float64(jobRank-resumeRank)
	return math.Max(0.0, 100.0-penalty)
}

// ExperienceAlignment scores how the resume's seniority category aligns
// with the job's. A job with no recognized experience phrase scores 100;
// each missing rank step costs 25 points.
func ExperienceAlignment(resumeText, jobText string) float64 {
	resumeLevel := parsing.ExtractExperienceLevel(resumeText)
	jobLevel := parsing.ExtractExperienceLevel(jobText)

	if jobLevel == parsing.ExperienceUnknown {
		return 100.0
	}

	resumeRank := experienceRanks[resumeLevel]
	jobRank := experienceRanks[jobLevel]
	if resumeRank >= jobRank {
		return 100.0
	}

	penalty := experiencePenaltyPerRank * float64(jobRank-resumeRank)
	return math.Max(0.0, 100.0-penalty)
}

// SemanticSimilarity embeds both full documents and reports their cosine
// similarity as a percentage. Negative cosine values floor at 0 so the
// score stays in [0,100]. Both embeddings run concurrently.
func SemanticSimilarity(ctx context.Context, embedder embedding.Embedder, resumeText, jobText string) (float64, error) {
	var resumeVec, jobVec []float64

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		vec, err := embedder.Embed(gCtx, resumeText)
		if err != nil {
			return err
		}
		resumeVec = vec
		return nil
	})
	g.Go(func() error {
		vec, err := embedder.Embed(gCtx, jobText)
		if err != nil {
			return err
		}
		jobVec = vec
		return nil
	})
	if err := g.Wait(); err != nil {
		return 0.0, err
	}

	similarity := embedding.Cosine(resumeVec, jobVec)
	if similarity < 0 {
		similarity = 0
	}

	return similarity * 100, nil
}

// round1 rounds to one decimal for presentation.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
