package learningmethod

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_CanonicalCodes(t *testing.T) {
	for _, m := range ValidMethods {
		got, err := Normalize(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
}

func TestNormalize_Aliases(t *testing.T) {
	tests := []struct {
		input string
		want  Method
	}{
		{"Logis / Analitis", Logical},
		{"Visual (Gambar, Video, Diagram)", Visual},
		{"Membaca / Menulis", ReadWrite},
		{"Auditori (Mendengar & Diskusi)", Auditory},
		{"Sosial (Belajar Kelompok)", Social},
		{"Kreatif (Seni & Storytelling)", Creative},
		{"Berbasis Teknologi", TechBased},
		{"Read/Write", ReadWrite},
		{"  visual  ", Visual},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Normalize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_StripsTrailingParenthetical(t *testing.T) {
	// Not in the alias table verbatim; matches after the parenthetical is removed.
	got, err := Normalize("Kelompok (diskusi bersama)")
	require.NoError(t, err)
	assert.Equal(t, Social, got)
}

func TestNormalize_KeywordFallback(t *testing.T) {
	tests := []struct {
		input string
		want  Method
	}{
		{"metode dengan banyak gambar menarik", Visual},
		{"lebih suka mendengar penjelasan", Auditory},
		{"reading and writing exercises", ReadWrite},
		{"pendekatan matematika terapan", Logical},
		{"platform digital interaktif", TechBased},
	}

	for _, tt := range tests {
		got, err := Normalize(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestNormalize_InvalidInput(t *testing.T) {
	_, err := Normalize("garbage-value")
	require.Error(t, err)

	var invalidErr *InvalidMethodError
	require.True(t, errors.As(err, &invalidErr))
	assert.Equal(t, "garbage-value", invalidErr.Input)
	assert.Contains(t, err.Error(), "garbage-value")
	assert.Contains(t, err.Error(), "visual, auditory, read_write, logical, social, creative, tech_based")
}

func TestNormalize_EmptyInput(t *testing.T) {
	_, err := Normalize("")
	assert.Error(t, err)
}

func TestNormalizeOrDefault(t *testing.T) {
	assert.Equal(t, Logical, NormalizeOrDefault("logis", Visual))
	assert.Equal(t, Visual, NormalizeOrDefault("zzz-unknown", Visual))
}
