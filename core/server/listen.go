package server

import (
	"net"
)

// Listen binds the address from cfg. Failures are returned as *Error.
func Listen(cfg Config) (net.Listener, error) {
	ln, err := net.Listen("tcp", cfg.Bind)
	if err != nil {
		return nil, &Error{Addr: cfg.Bind, Err: err}
	}
	return ln, nil
}
