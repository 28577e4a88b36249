package service

import "errors"

// ErrValidation marks a request rejected before it reached storage or the
// calculation engine. Handlers translate it to a 400.
var ErrValidation = errors.New("validation failed")
