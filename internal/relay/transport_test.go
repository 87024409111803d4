package relay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"os"
	"syscall"
	"testing"
)

func TestIsTransportFault(t *testing.T) {
	refused := &net.OpError{Op: "dial", Net: "tcp", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "connection refused", err: &url.Error{Op: "Get", URL: "http://x", Err: refused}, want: true},
		{name: "bare errno", err: syscall.ECONNRESET, want: true},
		{name: "dns", err: &url.Error{Op: "Get", URL: "http://x", Err: &net.DNSError{Err: "no such host", Name: "x"}}, want: true},
		{name: "unexpected eof", err: fmt.Errorf("failed to read: %w", io.ErrUnexpectedEOF), want: true},
		{name: "deadline", err: &url.Error{Op: "Get", URL: "http://x", Err: context.DeadlineExceeded}, want: true},
		{name: "cancelled caller", err: &url.Error{Op: "Get", URL: "http://x", Err: context.Canceled}, want: false},
		{name: "bad scheme", err: &url.Error{Op: "Get", URL: "ftp://x", Err: errors.New(`unsupported protocol scheme "ftp"`)}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isTransportFault(tt.err); got != tt.want {
				t.Errorf("isTransportFault(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
