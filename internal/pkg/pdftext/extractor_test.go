package pdftext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PlainTextFallback(t *testing.T) {
	content := strings.Repeat("Fotosintesis adalah proses tumbuhan membuat makanan. ", 3)

	text, err := ExtractText([]byte(content))
	require.NoError(t, err)
	assert.Contains(t, text, "Fotosintesis")
}

func TestExtractText_StripsControlBytes(t *testing.T) {
	content := "Bab 1: Pengantar\x00\x01 Aljabar." + strings.Repeat(" Materi pelajaran matematika dasar.", 2)

	text, err := ExtractText([]byte(content))
	require.NoError(t, err)
	assert.NotContains(t, text, "\x00")
	assert.Contains(t, text, "Aljabar")
}

func TestExtractText_TooShort(t *testing.T) {
	_, err := ExtractText([]byte("short"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no readable text")
}

func TestExtractText_Empty(t *testing.T) {
	_, err := ExtractText(nil)
	assert.Error(t, err)
}
