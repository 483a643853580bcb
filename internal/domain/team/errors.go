package team

import "errors"

var (
	ErrNotFound       = errors.New("team not found")
	ErrNotApproved    = errors.New("team is not approved")
	ErrAlreadyDecided = errors.New("team approval already decided")
)
