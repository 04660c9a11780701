package dataset

import (
	"errors"
	"fmt"
)

// ErrEmptyDataset indicates the source decoded to nothing usable: no
// top-level sequence, or a sequence with zero records.
var ErrEmptyDataset = errors.New("no data to display")

// LoadError indicates the dataset could not be fetched or decoded.
type LoadError struct {
	Location string
	// Status is the HTTP status code for non-success responses, 0 otherwise.
	Status int
	Err    error
}

func (e *LoadError) Error() string {
	if e == nil {
		return "load failed"
	}
	if e.Status != 0 {
		return fmt.Sprintf("load %s: unexpected status %d", e.Location, e.Status)
	}
	return fmt.Sprintf("load %s: %v", e.Location, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
