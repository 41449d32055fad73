package server

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/ats-scorer/internal/extract"
	"github.com/jonathan/ats-scorer/internal/types"
	"go.uber.org/zap"
)

// maxUploadSize caps resume uploads at 10MB.
const maxUploadSize = 10 << 20

// minTextLength matches the minimum accepted length of the request texts.
const minTextLength = 10

// previewLength is the extracted-text preview cap for file analysis responses.
const previewLength = 500

// ErrorResponse is the body for error replies.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body for /health.
type HealthResponse struct {
	Status      string `json:"status"`
	ScorerReady bool   `json:"scorer_ready"`
}

// SupportedFormatsResponse is the body for /supported-formats.
type SupportedFormatsResponse struct {
	SupportedFormats []string `json:"supported_formats"`
	Description      string   `json:"description"`
}

// ScoreFileResponse is an AnalysisResult annotated with upload metadata.
type ScoreFileResponse struct {
	*types.AnalysisResult
	FileInfo types.FileInfo `json:"file_info"`
}

// handleRoot serves a minimal HTML landing page listing the endpoints.
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(`<html>
<body>
    <h1>ATS Score Calculator API</h1>
    <p>Use the API endpoints directly:</p>
    <ul>
        <li>POST /calculate-ats-score - Calculate ATS score</li>
        <li>POST /analyze-resume - Detailed resume analysis</li>
        <li>POST /calculate-ats-score-file - Score an uploaded resume file</li>
        <li>POST /analyze-resume-file - Detailed analysis of an uploaded file</li>
        <li>GET /supported-formats - Supported resume file formats</li>
        <li>GET /health - Health check</li>
        <li>GET /api - API information</li>
    </ul>
</body>
</html>
`))
}

// handleAPIInfo describes the API surface.
func (s *Server) handleAPIInfo(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"message": "ATS Score Calculator API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"POST /calculate-ats-score":      "Calculate ATS score for resume vs job description",
			"POST /analyze-resume":           "Detailed resume analysis",
			"POST /calculate-ats-score-file": "Calculate ATS score from an uploaded resume file",
			"POST /analyze-resume-file":      "Detailed analysis from an uploaded resume file",
			"GET /supported-formats":         "Supported resume file formats",
			"GET /health":                    "Health check endpoint",
		},
	})
}

// handleHealth reports service readiness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, HealthResponse{
		Status:      "healthy",
		ScorerReady: true,
	})
}

// handleSupportedFormats lists accepted resume upload formats.
func (s *Server) handleSupportedFormats(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, SupportedFormatsResponse{
		SupportedFormats: extract.SupportedFormats(),
		Description:      "Supported file formats for resume upload",
	})
}

// handleCalculateScore scores resume text against a job description.
func (s *Server) handleCalculateScore(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeScoreRequest(w, r)
	if !ok {
		return
	}

	requestID := uuid.New().String()
	s.logger.Info("scoring request received", zap.String("request_id", requestID))

	result := s.scorer.Calculate(r.Context(), req.ResumeText, req.JobDescription)

	s.logger.Info("scoring completed",
		zap.String("request_id", requestID),
		zap.Float64("overall_score", result.OverallScore),
		zap.Bool("degraded", result.Degraded()))

	s.jsonResponse(w, http.StatusOK, result)
}

// handleAnalyzeResume returns a score plus the raw extraction detail.
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeScoreRequest(w, r)
	if !ok {
		return
	}

	requestID := uuid.New().String()
	s.logger.Info("analysis request received", zap.String("request_id", requestID))

	analysis := s.scorer.Analyze(r.Context(), req.ResumeText, req.JobDescription)

	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleCalculateScoreFile scores an uploaded resume file against a job
// description supplied as a form field.
func (s *Server) handleCalculateScoreFile(w http.ResponseWriter, r *http.Request) {
	resumeText, jobDescription, info, err := s.readUpload(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	requestID := uuid.New().String()
	s.logger.Info("file scoring request received",
		zap.String("request_id", requestID),
		zap.String("filename", info.Filename),
		zap.Int("file_size", info.FileSize))

	result := s.scorer.Calculate(r.Context(), resumeText, jobDescription)

	s.jsonResponse(w, http.StatusOK, ScoreFileResponse{
		AnalysisResult: result,
		FileInfo:       info,
	})
}

// handleAnalyzeResumeFile returns the detailed analysis for an uploaded
// resume file.
func (s *Server) handleAnalyzeResumeFile(w http.ResponseWriter, r *http.Request) {
	resumeText, jobDescription, info, err := s.readUpload(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	requestID := uuid.New().String()
	s.logger.Info("file analysis request received",
		zap.String("request_id", requestID),
		zap.String("filename", info.Filename))

	info.ExtractedTextPreview = preview(resumeText)

	analysis := s.scorer.Analyze(r.Context(), resumeText, jobDescription)
	analysis.FileInfo = &info

	s.jsonResponse(w, http.StatusOK, analysis)
}

// decodeScoreRequest decodes and validates the JSON score request,
// writing the error response itself when validation fails.
func (s *Server) decodeScoreRequest(w http.ResponseWriter, r *http.Request) (*types.ScoreRequest, bool) {
	var req types.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, false
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return nil, false
	}

	if strings.TrimSpace(req.ResumeText) == "" || strings.TrimSpace(req.JobDescription) == "" {
		s.errorResponse(w, http.StatusBadRequest, "Resume text and job description cannot be empty")
		return nil, false
	}

	return &req, true
}

// readUpload parses the multipart upload, extracts the resume text, and
// validates the accompanying job description.
func (s *Server) readUpload(r *http.Request) (string, string, types.FileInfo, error) {
	var info types.FileInfo

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return "", "", info, &ErrValidation{Field: "resume_file", Message: "invalid multipart form"}
	}

	file, header, err := r.FormFile("resume_file")
	if err != nil {
		return "", "", info, &ErrValidation{Field: "resume_file", Message: "resume file is required"}
	}
	defer func() { _ = file.Close() }()

	jobDescription := r.FormValue("job_description")
	if len(strings.TrimSpace(jobDescription)) < minTextLength {
		return "", "", info, &ErrValidation{Field: "job_description", Message: "job description must be at least 10 characters"}
	}

	if !extract.IsSupported(header.Filename) {
		return "", "", info, &extract.ErrUnsupportedFormat{
			Extension: strings.ToLower(filepath.Ext(header.Filename)),
		}
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return "", "", info, &ErrExtraction{Filename: header.Filename, Cause: err}
	}

	resumeText, err := extract.FromUpload(data, header.Filename)
	if err != nil {
		return "", "", info, &ErrExtraction{Filename: header.Filename, Cause: err}
	}
	if strings.TrimSpace(resumeText) == "" {
		return "", "", info, &ErrValidation{Field: "resume_file", Message: "no extractable text in uploaded file"}
	}

	info = types.FileInfo{
		Filename:            header.Filename,
		FileSize:            len(data),
		ExtractedTextLength: len(resumeText),
	}

	return resumeText, jobDescription, info, nil
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) > previewLength {
		return string(runes[:previewLength]) + "..."
	}
	return text
}

// jsonResponse writes a JSON body with the given status.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

// errorResponse writes a JSON error body with the given status.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, ErrorResponse{Error: message})
}
