package server

import (
	"errors"
	"syscall"
)

// Error is returned when the server cannot be constructed on its address.
// Err carries the underlying network error, usually wrapping a syscall.Errno.
type Error struct {
	Addr string
	Err  error
}

func (e *Error) Error() string {
	return "server on " + e.Addr + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// bindErrors maps the socket errors an operator can act on to plain messages.
var bindErrors = map[syscall.Errno]string{
	syscall.EACCES:        "You don't have permission to access that port.",
	syscall.EADDRINUSE:    "That port is already in use.",
	syscall.EADDRNOTAVAIL: "That IP address can't be assigned-to.",
}

// Translate returns the operator-facing message for err. Known socket errors
// inside an *Error get a fixed message; anything else falls back to err.Error().
func Translate(err error) string {
	var serr *Error
	if errors.As(err, &serr) {
		var errno syscall.Errno
		if errors.As(serr.Err, &errno) {
			if msg, ok := bindErrors[errno]; ok {
				return msg
			}
		}
	}
	return err.Error()
}
