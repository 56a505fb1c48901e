package dataset

import "fmt"

// TooShortError reports a composition below the minimum window length.
// The file is skipped and loading continues.
type TooShortError struct {
	Path   string
	Length int
	Min    int
}

func (e *TooShortError) Error() string {
	return fmt.Sprintf("%s is too short: %d events, need at least %d", e.Path, e.Length, e.Min)
}

// InsufficientDataError reports that a corpus or split ended up with
// nothing to sample from. It is fatal and surfaced before any sampling
// begins.
type InsufficientDataError struct {
	Context string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: %s", e.Context)
}
