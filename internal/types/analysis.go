// Package types defines the shared data model for the ATS scoring engine and API.
package types

// ScoreBreakdown holds the four component scores, each in [0,100] and
// rounded to one decimal for presentation.
type ScoreBreakdown struct {
	SemanticSimilarity  float64 `json:"semantic_similarity"`
	KeywordMatch        float64 `json:"keyword_match"`
	ExperienceAlignment float64 `json:"experience_alignment"`
	EducationMatch      float64 `json:"education_match"`
}

// Analysis holds the keyword-level findings and advisory output for a scoring run.
// Keyword lists are truncated to the top 10 entries for presentation.
type Analysis struct {
	MatchedKeywords []string `json:"matched_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
	Recommendations []string `json:"recommendations"`
}

// Degradation records that a component fell back to its safe default score
// instead of propagating a failure. Callers that only want the score can
// ignore this; callers that care about backend health can inspect it.
type Degradation struct {
	Component string `json:"component"`
	Cause     string `json:"cause"`
}

// AnalysisResult is the complete output of one scoring run.
// OverallScore is a convex combination of the component scores, so it is
// always in [0,100].
type AnalysisResult struct {
	OverallScore float64        `json:"overall_score"`
	Scores       ScoreBreakdown `json:"scores"`
	Analysis     Analysis       `json:"analysis"`
	Degradations []Degradation  `json:"degradations,omitempty"`
}

// Degraded reports whether any component fell back to its default score.
func (r *AnalysisResult) Degraded() bool {
	return len(r.Degradations) > 0
}

// LevelPair reports the experience category detected on each side of the comparison.
type LevelPair struct {
	Resume         string `json:"resume"`
	JobRequirement string `json:"job_requirement"`
}

// EducationPair reports the education rank detected on each side of the comparison.
// Rank 0 means no recognized education phrase.
type EducationPair struct {
	Resume         int `json:"resume"`
	JobRequirement int `json:"job_requirement"`
}

// DetailedAnalysis supplements an AnalysisResult with the raw extraction
// output: the keywords found on each side (capped at 20) and the detected
// ordinal levels.
type DetailedAnalysis struct {
	ResumeKeywords   []string      `json:"resume_keywords"`
	JobKeywords      []string      `json:"job_keywords"`
	ExperienceLevels LevelPair     `json:"experience_levels"`
	EducationLevels  EducationPair `json:"education_levels"`
}

// ResumeAnalysis is the response shape for the detailed analysis endpoint.
// FileInfo is set only for file-upload analysis.
type ResumeAnalysis struct {
	ATSScore         *AnalysisResult  `json:"ats_score"`
	FileInfo         *FileInfo        `json:"file_info,omitempty"`
	DetailedAnalysis DetailedAnalysis `json:"detailed_analysis"`
}

// FileInfo describes an uploaded resume file and its extraction outcome.
type FileInfo struct {
	Filename             string `json:"filename"`
	FileSize             int    `json:"file_size"`
	ExtractedTextLength  int    `json:"extracted_text_length"`
	ExtractedTextPreview string `json:"extracted_text_preview,omitempty"`
}
