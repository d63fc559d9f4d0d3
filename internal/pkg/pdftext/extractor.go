// Package pdftext extracts plain text from uploaded teaching materials.
package pdftext

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// MinTextLength is the minimum number of extracted characters required for a
// document to count as text-readable. Anything shorter is treated as a
// scanned image or an empty file.
const MinTextLength = 50

// ExtractText extracts the linear text stream from a PDF document. Documents
// that fail PDF parsing are read as raw text with non-printable bytes
// stripped, so plain-text uploads still work.
func ExtractText(data []byte) (string, error) {
	text, err := extractPDF(data)
	if err != nil {
		text = sanitizeRaw(data)
	}

	if len(strings.TrimSpace(text)) < MinTextLength {
		return "", fmt.Errorf("document contains no readable text (extracted %d characters)",
			len(strings.TrimSpace(text)))
	}

	return text, nil
}

// extractPDF walks the document with ledongthuc/pdf. The library panics on
// some malformed files, so the panic is converted into an error here.
func extractPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parsing panicked: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	plainText, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plainText); err != nil {
		return "", fmt.Errorf("failed to read pdf text stream: %w", err)
	}

	return buf.String(), nil
}

// sanitizeRaw interprets the bytes as text, replacing control characters
// (other than whitespace) with spaces.
func sanitizeRaw(data []byte) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			return ' '
		}
		return r
	}, string(data))
}
