package extract

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// extractPDF pulls plain text out of a PDF document. When the PDF library
// cannot parse the file, it falls back to salvaging printable characters
// rather than failing the upload.
func extractPDF(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty PDF content")
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err == nil {
		if plain, err := reader.GetPlainText(); err == nil {
			if out, err := io.ReadAll(plain); err == nil && len(out) > 0 {
				return string(out), nil
			}
		}
	}

	if text := extractPrintable(data); text != "" {
		return text, nil
	}

	return "", fmt.Errorf("no extractable text in PDF")
}
