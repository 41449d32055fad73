package types

import (
	"github.com/go-playground/validator/v10"
)

// ScoreRequest is the request body for the scoring and analysis endpoints.
// Both texts must be at least 10 characters; shorter input is rejected at
// the API boundary rather than scored.
type ScoreRequest struct {
	ResumeText     string `json:"resume_text" validate:"required,min=10"`
	JobDescription string `json:"job_description" validate:"required,min=10"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
