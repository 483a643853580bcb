package mirror

import "errors"

var ErrUnknownCollection = errors.New("unknown mirror collection")
