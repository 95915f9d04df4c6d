package domain

import (
	"regexp"
	"strings"
)

// Paragraph length bounds, measured after normalization.
const (
	ParagraphMinLength = 3
	ParagraphMaxLength = 2000
)

// Paragraph validation errors
var (
	ErrParagraphRequired = NewValidationError("paragraph", "paragraph_required",
		"paragraph must not be null or blank")
	ErrParagraphTooShort = NewValidationError("paragraph", "paragraph_too_short",
		"paragraph must be at least 3 characters")
	ErrParagraphTooLong = NewValidationError("paragraph", "paragraph_too_long",
		"paragraph must be at most 2000 characters")
)

var (
	htmlTagPattern    = regexp.MustCompile(`<[^>]*>`)
	whitespaceRunExpr = regexp.MustCompile(`\s{3,}`)
)

// Paragraph is the normalized text of a discussion post.
type Paragraph struct {
	value string
}

// NewParagraph normalizes raw and validates the result.
//
// Normalization trims, removes literal HTML tags (entities such as &lt; are left
// alone) and collapses runs of three or more whitespace characters into a single
// space. Runs of exactly two are kept.
func NewParagraph(raw string) (Paragraph, error) {
	if isBlank(raw) {
		return Paragraph{}, ErrParagraphRequired
	}

	normalized := normalizeParagraph(raw)

	n := length(normalized)
	if n < ParagraphMinLength {
		return Paragraph{}, ErrParagraphTooShort
	}
	if n > ParagraphMaxLength {
		return Paragraph{}, ErrParagraphTooLong
	}
	if isBlank(normalized) {
		return Paragraph{}, ErrParagraphRequired
	}

	return Paragraph{value: normalized}, nil
}

func normalizeParagraph(raw string) string {
	s := strings.TrimSpace(raw)
	s = htmlTagPattern.ReplaceAllString(s, "")
	s = whitespaceRunExpr.ReplaceAllString(s, " ")
	// stripping a leading or trailing tag can expose whitespace at the edges
	return strings.TrimSpace(s)
}

// Value returns the normalized text.
func (p Paragraph) Value() string { return p.value }

// Len returns the length of the normalized text in characters.
func (p Paragraph) Len() int { return length(p.value) }

// IsEmpty reports whether the paragraph holds no visible text.
func (p Paragraph) IsEmpty() bool { return isBlank(p.value) }

func (p Paragraph) String() string { return p.value }
