package domain

// Description length bounds, in characters.
const (
	DescriptionMinLength = 10
	DescriptionMaxLength = 500
)

// Description validation errors
var (
	ErrDescriptionRequired = NewValidationError("description", "description_required",
		"description must not be null or blank")
	ErrDescriptionLength = NewValidationError("description", "description_length",
		"description must be between 10 and 500 characters")
)

// Description is the validated body text of a maintopic.
type Description struct {
	value string
}

// NewDescription validates raw and wraps it.
func NewDescription(raw string) (Description, error) {
	if isBlank(raw) {
		return Description{}, ErrDescriptionRequired
	}
	if n := length(raw); n < DescriptionMinLength || n > DescriptionMaxLength {
		return Description{}, ErrDescriptionLength
	}
	return Description{value: raw}, nil
}

// Value returns the underlying string.
func (d Description) Value() string { return d.value }

// IsEmpty reports whether the description holds no visible text.
func (d Description) IsEmpty() bool { return isBlank(d.value) }

// Equals compares the description against a raw string.
func (d Description) Equals(other string) bool { return d.value == other }

func (d Description) String() string { return d.value }
