package scoring

import (
	"context"
	"errors"

	"github.com/jonathan/ats-scorer/internal/embedding"
	"github.com/jonathan/ats-scorer/internal/parsing"
	"github.com/jonathan/ats-scorer/internal/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// maxPresentedKeywords caps the matched/missing lists in the result. The
// internal matching sets are unbounded; only the presentation is truncated.
const maxPresentedKeywords = 10

// errorRecommendation is the single advisory emitted by the canonical
// zero-result.
const errorRecommendation = "Error occurred during analysis"

var errNoEmbedder = errors.New("no embedding backend configured")

// Scorer is the scoring orchestrator. It is stateless per call: all
// configuration (vocabularies, weights, thresholds) is immutable
// process-wide state, so one Scorer serves concurrent requests.
type Scorer struct {
	embedder embedding.Embedder
	logger   *zap.Logger
}

// New creates a Scorer. The embedder may be nil, in which case semantic
// similarity degrades to 0 and is reported as a degradation. A nil logger
// disables diagnostics.
func New(embedder embedding.Embedder, logger *zap.Logger) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{embedder: embedder, logger: logger}
}

// Calculate produces the full analysis of a resume against a job
// description. It never fails: component failures degrade that component's
// score to 0 and are recorded in the result's degradation list, and any
// unexpected panic yields the canonical zero-result.
func (s *Scorer) Calculate(ctx context.Context, resumeText, jobDescription string) (result *types.AnalysisResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("unexpected failure during analysis", zap.Any("panic", r))
			result = zeroResult()
		}
	}()

	var (
		semanticScore float64
		semanticErr   error

		keywordScore     float64
		matched, missing []string
		educationScore   float64
		experienceScore  float64
	)

	// Embedding inference is the slow path; run it alongside the
	// extraction-based scores.
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if s.embedder == nil {
			semanticErr = errNoEmbedder
			return nil
		}
		semanticScore, semanticErr = SemanticSimilarity(gCtx, s.embedder, resumeText, jobDescription)
		return nil
	})
	g.Go(func() error {
		keywordScore, matched, missing = KeywordMatch(resumeText, jobDescription)
		educationScore = EducationMatch(resumeText, jobDescription)
		experienceScore = ExperienceAlignment(resumeText, jobDescription)
		return nil
	})
	_ = g.Wait()

	var degradations []types.Degradation
	if semanticErr != nil {
		s.logger.Warn("semantic similarity degraded to 0", zap.Error(semanticErr))
		semanticScore = 0.0
		degradations = append(degradations, types.Degradation{
			Component: "semantic_similarity",
			Cause:     semanticErr.Error(),
		})
	}

	overall := semanticScore*WeightSemantic +
		keywordScore*WeightKeyword +
		experienceScore*WeightExperience +
		educationScore*WeightEducation

	// Thresholds evaluate against the unrounded scores; rounding is
	// presentation only.
	scores := types.ScoreBreakdown{
		SemanticSimilarity:  semanticScore,
		KeywordMatch:        keywordScore,
		ExperienceAlignment: experienceScore,
		EducationMatch:      educationScore,
	}
	recommendations := Recommendations(missing, scores)

	return &types.AnalysisResult{
		OverallScore: round1(overall),
		Scores: types.ScoreBreakdown{
			SemanticSimilarity:  round1(semanticScore),
			KeywordMatch:        round1(keywordScore),
			ExperienceAlignment: round1(experienceScore),
			EducationMatch:      round1(educationScore),
		},
		Analysis: types.Analysis{
			MatchedKeywords: truncate(matched, maxPresentedKeywords),
			MissingKeywords: truncate(missing, maxPresentedKeywords),
			Recommendations: recommendations,
		},
		Degradations: degradations,
	}
}

// Analyze supplements a scoring run with the raw extraction output for the
// detailed analysis endpoint.
func (s *Scorer) Analyze(ctx context.Context, resumeText, jobDescription string) *types.ResumeAnalysis {
	const maxDetailedKeywords = 20

	result := s.Calculate(ctx, resumeText, jobDescription)

	return &types.ResumeAnalysis{
		ATSScore: result,
		DetailedAnalysis: types.DetailedAnalysis{
			ResumeKeywords: truncate(parsing.ExtractKeywords(resumeText), maxDetailedKeywords),
			JobKeywords:    truncate(parsing.ExtractKeywords(jobDescription), maxDetailedKeywords),
			ExperienceLevels: types.LevelPair{
				Resume:         parsing.ExtractExperienceLevel(resumeText),
				JobRequirement: parsing.ExtractExperienceLevel(jobDescription),
			},
			EducationLevels: types.EducationPair{
				Resume:         parsing.ExtractEducationLevel(resumeText),
				JobRequirement: parsing.ExtractEducationLevel(jobDescription),
			},
		},
	}
}

// zeroResult is the canonical degraded result returned when analysis fails
// unexpectedly: all scores zero, empty keyword lists, one error advisory.
func zeroResult() *types.AnalysisResult {
	return &types.AnalysisResult{
		OverallScore: 0.0,
		Scores:       types.ScoreBreakdown{},
		Analysis: types.Analysis{
			MatchedKeywords: []string{},
			MissingKeywords: []string{},
			Recommendations: []string{errorRecommendation},
		},
	}
}

func truncate(list []string, n int) []string {
	if list == nil {
		return []string{}
	}
	if len(list) > n {
		return list[:n]
	}
	return list
}
