package support

import "errors"

// Domain-specific errors for the support package.
var (
	ErrEmptyQuery = errors.New("query is empty")
)
