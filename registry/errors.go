package registry

import "errors"

// ErrDuplicateBinding is returned by Insert when a binding for the same
// (abstraction, concrete) pair already exists.
var ErrDuplicateBinding = errors.New("registry: duplicate binding")
