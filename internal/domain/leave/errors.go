package leave

import "errors"

var (
	ErrNotFound       = errors.New("leave request not found")
	ErrInvalidRange   = errors.New("end date before start date")
	ErrAlreadyDecided = errors.New("leave request already decided")
)
