package relay

import (
	"context"
	"errors"
	"io"
	"net"
	"syscall"
)

// isTransportFault reports whether err comes from the network layer
// (refused or reset connection, DNS, dial or read failure, timeout) as
// opposed to a malformed request or a cancelled caller.
func isTransportFault(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}

	switch {
	case errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.EHOSTUNREACH),
		errors.Is(err, syscall.ENETUNREACH),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, io.EOF):
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
