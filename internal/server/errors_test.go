package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jonathan/ats-scorer/internal/extract"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "validation error",
			err:  &ErrValidation{Field: "resume_file", Message: "required"},
			want: http.StatusBadRequest,
		},
		{
			name: "extraction error",
			err:  &ErrExtraction{Filename: "resume.pdf", Cause: errors.New("corrupt")},
			want: http.StatusBadRequest,
		},
		{
			name: "unsupported format",
			err:  &extract.ErrUnsupportedFormat{Extension: ".exe"},
			want: http.StatusBadRequest,
		},
		{
			name: "wrapped validation error",
			err:  errors.Join(errors.New("outer"), &ErrValidation{Field: "x", Message: "y"}),
			want: http.StatusBadRequest,
		},
		{
			name: "unknown error",
			err:  errors.New("boom"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrExtraction_Unwrap(t *testing.T) {
	cause := errors.New("bad bytes")
	err := &ErrExtraction{Filename: "resume.pdf", Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "resume.pdf")
}
