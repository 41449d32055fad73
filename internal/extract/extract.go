// Package extract converts uploaded resume files (PDF, DOCX, plain text)
// into plain text for the scoring engine. Extraction failures surface as
// errors here; callers treat them as "empty or unavailable text".
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// supportedExtensions lists the file formats this package can process, in
// the order reported by SupportedFormats.
var supportedExtensions = []string{".pdf", ".docx", ".txt"}

// ErrUnsupportedFormat indicates the file extension has no extractor.
type ErrUnsupportedFormat struct {
	Extension string
}

func (e *ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported file format: %s", e.Extension)
}

// SupportedFormats returns the file extensions this package can extract
// text from.
func SupportedFormats() []string {
	formats := make([]string, len(supportedExtensions))
	copy(formats, supportedExtensions)
	return formats
}

// IsSupported reports whether the filename's extension has an extractor.
func IsSupported(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, supported := range supportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// FromUpload extracts plain text from uploaded file content, dispatching on
// the filename's extension.
func FromUpload(data []byte, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDOCX(data)
	case ".txt":
		return string(data), nil
	default:
		return "", &ErrUnsupportedFormat{Extension: ext}
	}
}

// FromFile extracts plain text from a file on disk.
func FromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return FromUpload(data, path)
}

// extractPrintable salvages printable text from content no structured
// extractor could parse.
func extractPrintable(in []byte) string {
	var out strings.Builder
	for len(in) > 0 {
		r, size := utf8.DecodeRune(in)
		if r == utf8.RuneError && size == 1 {
			b := in[0]
			if b == '\n' || b == '\r' || b == '\t' || (b >= 32 && b < 127) {
				out.WriteByte(b)
			}
			in = in[1:]
			continue
		}
		in = in[size:]
		if isPrintableRune(r) {
			out.WriteRune(r)
		}
	}
	return out.String()
}

func isPrintableRune(r rune) bool {
	if r == '\n' || r == '\r' || r == '\t' {
		return true
	}
	return r >= 32
}
