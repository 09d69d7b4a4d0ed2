package apppath

import (
	"errors"
	"fmt"
)

// ErrInvalidIdentity reports an application identity that cannot be mapped
// to filesystem paths. It is never transient; the caller must fix the
// identity.
var ErrInvalidIdentity = errors.New("invalid app identity")

// DirCreateError reports a failed directory creation during Ensure. It
// wraps the underlying filesystem error and carries the offending path.
type DirCreateError struct {
	Path string
	Err  error
}

func (e *DirCreateError) Error() string {
	return fmt.Sprintf("create directory %s: %v", e.Path, e.Err)
}

func (e *DirCreateError) Unwrap() error { return e.Err }
