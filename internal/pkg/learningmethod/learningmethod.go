// Package learningmethod normalizes free-form learning-method labels coming
// from class records and upload forms into the canonical set of method codes
// stored in the database.
package learningmethod

import (
	"fmt"
	"regexp"
	"strings"
)

// Method is a canonical learning-method code.
type Method string

const (
	Visual    Method = "visual"
	Auditory  Method = "auditory"
	ReadWrite Method = "read_write"
	Logical   Method = "logical"
	Social    Method = "social"
	Creative  Method = "creative"
	TechBased Method = "tech_based"
)

// ValidMethods lists every canonical method code, in display order.
var ValidMethods = []Method{Visual, Auditory, ReadWrite, Logical, Social, Creative, TechBased}

// aliases maps known input variations, including the Indonesian UI labels
// rendered by the class form, to canonical codes. Keys are lowercase/trimmed.
var aliases = map[string]Method{
	// visual
	"visual":                          Visual,
	"visual learners":                 Visual,
	"visual (gambar, video, diagram)": Visual,
	"gambar":                          Visual,
	"video":                           Visual,
	"diagram":                         Visual,

	// auditory
	"auditory":                       Auditory,
	"auditory learners":              Auditory,
	"auditori (mendengar & diskusi)": Auditory,
	"auditori":                       Auditory,
	"mendengar":                      Auditory,
	"diskusi":                        Auditory,
	"suara":                          Auditory,

	// read/write
	"read_write":        ReadWrite,
	"read/write":        ReadWrite,
	"read-write":        ReadWrite,
	"reading/writing":   ReadWrite,
	"read & write":      ReadWrite,
	"read write":        ReadWrite,
	"membaca / menulis": ReadWrite,
	"membaca/menulis":   ReadWrite,
	"membaca":           ReadWrite,
	"menulis":           ReadWrite,

	// logical
	"logical":              Logical,
	"logical/mathematical": Logical,
	"logic":                Logical,
	"logis / analitis":     Logical,
	"logis/analitis":       Logical,
	"logis":                Logical,
	"analitis":             Logical,
	"matematik":            Logical,
	"matematika":           Logical,

	// social
	"social":                    Social,
	"interpersonal":             Social,
	"group":                     Social,
	"sosial (belajar kelompok)": Social,
	"sosial":                    Social,
	"belajar kelompok":          Social,
	"kelompok":                  Social,

	// creative
	"creative":                      Creative,
	"artistic":                      Creative,
	"kreatif (seni & storytelling)": Creative,
	"kreatif":                       Creative,
	"seni":                          Creative,
	"storytelling":                  Creative,
	"artistik":                      Creative,

	// tech based
	"tech_based":         TechBased,
	"tech-based":         TechBased,
	"tech based":         TechBased,
	"technology":         TechBased,
	"digital":            TechBased,
	"berbasis teknologi": TechBased,
	"teknologi":          TechBased,
}

var parenthetical = regexp.MustCompile(`\s*\([^)]*\)`)

// InvalidMethodError reports an input that could not be matched against the
// canonical method set.
type InvalidMethodError struct {
	Input string
}

func (e *InvalidMethodError) Error() string {
	allowed := make([]string, len(ValidMethods))
	for i, m := range ValidMethods {
		allowed[i] = string(m)
	}
	return fmt.Sprintf("invalid learning method: '%s'. Must be one of: %s",
		e.Input, strings.Join(allowed, ", "))
}

// IsValid reports whether the input is already a canonical method code.
func IsValid(input string) bool {
	for _, m := range ValidMethods {
		if string(m) == input {
			return true
		}
	}
	return false
}

// Normalize maps a raw learning-method label to its canonical code.
//
// Matching order: exact canonical code, lowercase/trimmed alias table, alias
// table again after stripping a trailing parenthetical, then keyword
// containment in a fixed priority order. Unknown inputs yield an
// *InvalidMethodError naming the allowed set.
func Normalize(input string) (Method, error) {
	if input == "" {
		return "", &InvalidMethodError{Input: input}
	}

	if IsValid(input) {
		return Method(input), nil
	}

	normalized := strings.TrimSpace(strings.ToLower(input))
	if m, ok := aliases[normalized]; ok {
		return m, nil
	}

	// "Visual (Gambar, Video, Diagram)" -> "visual"
	withoutParens := strings.TrimSpace(parenthetical.ReplaceAllString(normalized, ""))
	if withoutParens != normalized {
		if m, ok := aliases[withoutParens]; ok {
			return m, nil
		}
	}

	// Keyword fallback, checked in a fixed priority order.
	switch {
	case containsAny(normalized, "visual", "gambar", "video"):
		return Visual, nil
	case containsAny(normalized, "auditory", "auditori", "mendengar", "diskusi"):
		return Auditory, nil
	case strings.Contains(normalized, "read") && strings.Contains(normalized, "write"),
		containsAny(normalized, "membaca", "menulis"):
		return ReadWrite, nil
	case containsAny(normalized, "logic", "logis", "analitis", "matematik"):
		return Logical, nil
	case containsAny(normalized, "social", "sosial", "group", "kelompok"):
		return Social, nil
	case containsAny(normalized, "creative", "kreatif", "artistic", "seni"):
		return Creative, nil
	case containsAny(normalized, "tech", "teknologi", "digital", "berbasis"):
		return TechBased, nil
	}

	return "", &InvalidMethodError{Input: input}
}

// NormalizeOrDefault normalizes the input, falling back to the given default
// when it cannot be matched. Used where a class record's stored label is
// advisory rather than user input.
func NormalizeOrDefault(input string, def Method) Method {
	m, err := Normalize(input)
	if err != nil {
		return def
	}
	return m
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
