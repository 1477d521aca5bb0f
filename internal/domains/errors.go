package domains

import "errors"

var (
	ErrLastOption     = errors.New("a question must have at least one option")
	ErrOptionNotFound = errors.New("option not found")
)
