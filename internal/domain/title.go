package domain

// Title length bounds, in characters.
const (
	TitleMinLength = 3
	TitleMaxLength = 100
)

// Title validation errors
var (
	ErrTitleRequired = NewValidationError("title", "title_required", "title must not be null or blank")
	ErrTitleLength   = NewValidationError("title", "title_length",
		"title must be between 3 and 100 characters")
)

// Title is the validated headline of a maintopic.
type Title struct {
	value string
}

// NewTitle validates raw and wraps it. The value is kept exactly as given.
func NewTitle(raw string) (Title, error) {
	if isBlank(raw) {
		return Title{}, ErrTitleRequired
	}
	if n := length(raw); n < TitleMinLength || n > TitleMaxLength {
		return Title{}, ErrTitleLength
	}
	return Title{value: raw}, nil
}

// Value returns the underlying string.
func (t Title) Value() string { return t.value }

// IsEmpty reports whether the title holds no visible text.
func (t Title) IsEmpty() bool { return isBlank(t.value) }

// Equals compares the title against a raw string.
func (t Title) Equals(other string) bool { return t.value == other }

func (t Title) String() string { return t.value }
