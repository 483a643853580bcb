package attendance

import "errors"

var (
	ErrNotFound          = errors.New("attendance record not found")
	ErrAlreadyCheckedIn  = errors.New("already checked in for this date")
	ErrAlreadyCheckedOut = errors.New("already checked out for this date")
	ErrNotCheckedIn      = errors.New("no check-in recorded for this date")
)
