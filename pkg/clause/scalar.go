package clause

import "strings"

// Scalar holds a single clause value where the last assignment wins, e.g. LIMIT.
type Scalar struct {
	value string
}

// NewScalar creates a Scalar holding the trimmed value.
func NewScalar(value string) Scalar {
	return Scalar{}.Set(value)
}

// Set returns a Scalar holding the trimmed value. An empty value clears the clause.
func (s Scalar) Set(value string) Scalar {
	return Scalar{value: strings.TrimSpace(value)}
}

// Value returns the current value.
func (s Scalar) Value() string {
	return s.value
}

// Empty reports whether the scalar is unset.
func (s Scalar) Empty() bool {
	return s.value == ""
}
