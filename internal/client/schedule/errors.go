package schedule

import "errors"

var (
	// ErrFetchFailed wraps a failed availability or appointments request
	ErrFetchFailed = errors.New("schedule fetch failed")

	// ErrDayUnavailable is returned when selecting a disabled day
	ErrDayUnavailable = errors.New("day is not available")

	// ErrClosed is returned after Close
	ErrClosed = errors.New("schedule is closed")
)
