package mutation

import "fmt"

// CategoryError reports a raw category value outside the recognized vocabulary.
type CategoryError struct {
	Value string
}

func (e *CategoryError) Error() string {
	return fmt.Sprintf("invalid mutation category %q (expected structural or copy-number)", e.Value)
}

// CopyNumberError reports a copy-number value that is not a non-negative integer.
type CopyNumberError struct {
	Value int
}

func (e *CopyNumberError) Error() string {
	return fmt.Sprintf("invalid copy number %d (must be >= 0)", e.Value)
}
