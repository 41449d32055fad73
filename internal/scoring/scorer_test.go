package scoring

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScorer(embedder *stubEmbedder) *Scorer {
	return New(embedder, nil)
}

func TestCalculate_WellMatchedResume(t *testing.T) {
	// Identical embeddings make the semantic score 100.
	scorer := newTestScorer(&stubEmbedder{fixed: []float64{0.4, 0.3, 0.3}})

	resume := "bachelor degree, 5+ years senior engineer, python java"
	job := "bachelor required, senior level, python"

	result := scorer.Calculate(context.Background(), resume, job)

	assert.Equal(t, 100.0, result.Scores.EducationMatch)
	assert.Equal(t, 100.0, result.Scores.ExperienceAlignment)
	assert.Greater(t, result.Scores.KeywordMatch, 0.0)
	assert.Contains(t, result.Analysis.MatchedKeywords, "python")
	assert.Greater(t, result.OverallScore, 50.0)
	assert.False(t, result.Degraded())
}

func TestCalculate_EmptyResume(t *testing.T) {
	scorer := newTestScorer(&stubEmbedder{err: errors.New("empty input")})

	result := scorer.Calculate(context.Background(), "", "senior python engineer required")

	// Empty resume keyword set against a non-empty job set.
	assert.Equal(t, 0.0, result.Scores.KeywordMatch)
	// No education phrase in the job: no requirement.
	assert.Equal(t, 100.0, result.Scores.EducationMatch)
	// Job is senior (rank 3), resume unknown (rank 0): 100 - 25*3.
	assert.Equal(t, 25.0, result.Scores.ExperienceAlignment)
	assert.Empty(t, result.Analysis.MatchedKeywords)
	assert.NotEmpty(t, result.Analysis.MissingKeywords)
}

func TestCalculate_WeightConservation(t *testing.T) {
	scorer := newTestScorer(&stubEmbedder{fixed: []float64{1, 2, 3}})

	resume := "master degree senior golang engineer with kubernetes"
	job := "bachelor required, senior golang developer, kubernetes docker"

	result := scorer.Calculate(context.Background(), resume, job)

	expected := result.Scores.SemanticSimilarity*WeightSemantic +
		result.Scores.KeywordMatch*WeightKeyword +
		result.Scores.ExperienceAlignment*WeightExperience +
		result.Scores.EducationMatch*WeightEducation
	assert.InDelta(t, expected, result.OverallScore, 0.11)
}

func TestCalculate_RangeInvariant(t *testing.T) {
	scorer := newTestScorer(&stubEmbedder{fixed: []float64{0.7, 0.1}})

	inputs := []struct{ resume, job string }{
		{"", ""},
		{"python", ""},
		{"", "python"},
		{"phd expert architect python golang", "high school entry level"},
		{strings.Repeat("golang kubernetes terraform ", 50), "senior golang"},
	}

	for _, in := range inputs {
		result := scorer.Calculate(context.Background(), in.resume, in.job)

		for name, score := range map[string]float64{
			"overall":    result.OverallScore,
			"semantic":   result.Scores.SemanticSimilarity,
			"keyword":    result.Scores.KeywordMatch,
			"experience": result.Scores.ExperienceAlignment,
			"education":  result.Scores.EducationMatch,
		} {
			assert.GreaterOrEqual(t, score, 0.0, "%s for %q vs %q", name, in.resume, in.job)
			assert.LessOrEqual(t, score, 100.0, "%s for %q vs %q", name, in.resume, in.job)
		}
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	scorer := newTestScorer(&stubEmbedder{fixed: []float64{0.2, 0.8}})

	resume := "senior python engineer with bachelor degree and kubernetes experience"
	job := "looking for senior golang engineer, master preferred, kubernetes docker terraform"

	first := scorer.Calculate(context.Background(), resume, job)
	second := scorer.Calculate(context.Background(), resume, job)

	assert.Equal(t, first, second)
}

func TestCalculate_OverqualifiedEducation(t *testing.T) {
	scorer := newTestScorer(&stubEmbedder{fixed: []float64{1}})

	result := scorer.Calculate(context.Background(),
		"phd in computer science, python",
		"bachelor degree required for this python role")

	assert.Equal(t, 100.0, result.Scores.EducationMatch)
}

func TestCalculate_EmbedderFailureDegrades(t *testing.T) {
	scorer := newTestScorer(&stubEmbedder{err: errors.New("connection refused")})

	result := scorer.Calculate(context.Background(),
		"senior python engineer",
		"senior python engineer wanted")

	// Semantic degrades to 0; the other components still score.
	assert.Equal(t, 0.0, result.Scores.SemanticSimilarity)
	assert.Equal(t, 100.0, result.Scores.KeywordMatch)
	require.True(t, result.Degraded())
	assert.Equal(t, "semantic_similarity", result.Degradations[0].Component)
	assert.Contains(t, result.Degradations[0].Cause, "connection refused")
}

func TestCalculate_NilEmbedder(t *testing.T) {
	scorer := New(nil, nil)

	result := scorer.Calculate(context.Background(), "python developer", "python developer wanted")

	assert.Equal(t, 0.0, result.Scores.SemanticSimilarity)
	assert.True(t, result.Degraded())
}

func TestCalculate_KeywordListsTruncatedToTen(t *testing.T) {
	scorer := newTestScorer(&stubEmbedder{fixed: []float64{1}})

	var sb strings.Builder
	for i := 0; i < 25; i++ {
		fmt.Fprintf(&sb, "skillword%02d ", i)
	}

	result := scorer.Calculate(context.Background(), "unrelated resume text", sb.String())

	assert.Len(t, result.Analysis.MissingKeywords, 10)
}

func TestCalculate_RecommendationsPresent(t *testing.T) {
	scorer := newTestScorer(&stubEmbedder{fixed: []float64{1}})

	result := scorer.Calculate(context.Background(), "junior clerk", "expert golang architect")

	assert.NotEmpty(t, result.Analysis.Recommendations)
}

func TestAnalyze_IncludesDetail(t *testing.T) {
	scorer := newTestScorer(&stubEmbedder{fixed: []float64{1, 2}})

	analysis := scorer.Analyze(context.Background(),
		"senior python engineer with bachelor degree",
		"junior java developer, high school acceptable")

	require.NotNil(t, analysis.ATSScore)
	assert.Contains(t, analysis.DetailedAnalysis.ResumeKeywords, "python")
	assert.Contains(t, analysis.DetailedAnalysis.JobKeywords, "java")
	assert.Equal(t, "senior", analysis.DetailedAnalysis.ExperienceLevels.Resume)
	assert.Equal(t, "entry", analysis.DetailedAnalysis.ExperienceLevels.JobRequirement)
	assert.Equal(t, 3, analysis.DetailedAnalysis.EducationLevels.Resume)
	assert.Equal(t, 1, analysis.DetailedAnalysis.EducationLevels.JobRequirement)
}

func TestZeroResult_Shape(t *testing.T) {
	result := zeroResult()

	assert.Equal(t, 0.0, result.OverallScore)
	assert.Empty(t, result.Analysis.MatchedKeywords)
	assert.Empty(t, result.Analysis.MissingKeywords)
	assert.Equal(t, []string{"Error occurred during analysis"}, result.Analysis.Recommendations)
}
