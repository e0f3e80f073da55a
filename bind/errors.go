package bind

import "errors"

// ErrNilRegistry is returned by RegisterAll when the target registry is nil.
// Nothing is scanned in that case.
var ErrNilRegistry = errors.New("bind: nil registry")
