package processor

import (
	"errors"
	"fmt"
)

// ErrExtractionFailed means no usable event could be recovered from the
// source text, even after response repair and title heuristics.
var ErrExtractionFailed = errors.New("could not extract event information from the provided text")

// CalendarWriteError wraps a failure talking to Google Calendar. StatusCode
// is the upstream HTTP status when one was available, zero otherwise.
type CalendarWriteError struct {
	StatusCode int
	Message    string
}

func (e *CalendarWriteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("calendar write failed (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("calendar write failed: %s", e.Message)
}
