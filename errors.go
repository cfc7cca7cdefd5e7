package locale

import (
	"errors"
	"syscall"
)

// ErrInvalidArgument indicates a malformed category selector or mask.
var ErrInvalidArgument = errors.New("locale: invalid argument")

// ErrUnsupportedName indicates a well-formed but unrecognized locale name.
var ErrUnsupportedName = errors.New("locale: unsupported locale name")

// Errno maps this package's errors onto the classic C error codes: EINVAL
// for ErrInvalidArgument, ENOENT for ErrUnsupportedName, zero for anything
// else including nil. Wrapped errors unwrap as usual.
func Errno(err error) syscall.Errno {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return syscall.EINVAL
	case errors.Is(err, ErrUnsupportedName):
		return syscall.ENOENT
	}
	return 0
}
