package leave

import "errors"

// Leave domain errors
var (
	ErrRecordNotFound = errors.New("leave record not found")
)
