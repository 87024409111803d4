package utils

import (
	"net/http/httptest"
	"testing"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remote     string
		xff        string
		realIP     string
		trustProxy bool
		want       string
	}{
		{name: "remote only", remote: "10.0.0.5:5555", want: "10.0.0.5"},
		{name: "xff ignored without trust", remote: "10.0.0.5:5555", xff: "1.2.3.4", want: "10.0.0.5"},
		{name: "xff left-most", remote: "127.0.0.1:1", xff: "1.2.3.4, 5.6.7.8", trustProxy: true, want: "1.2.3.4"},
		{name: "real ip", remote: "127.0.0.1:1", realIP: "9.9.9.9", trustProxy: true, want: "9.9.9.9"},
		{name: "ipv6 remote", remote: "[fd00::1]:443", want: "fd00::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remote
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.realIP != "" {
				r.Header.Set("X-Real-IP", tt.realIP)
			}
			if got := ClientIP(r, tt.trustProxy); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIPMatcher(t *testing.T) {
	m := NewIPMatcher([]string{"10.0.0.0/8", " 192.168.1.10 ", "not-an-ip", "", "fd00::/64"})
	if m.IsEmpty() {
		t.Fatal("IsEmpty() = true, want false")
	}

	tests := []struct {
		ip   string
		want bool
	}{
		{ip: "10.1.2.3", want: true},
		{ip: "192.168.1.10", want: true},
		{ip: "192.168.1.11", want: false},
		{ip: "::ffff:10.0.0.1", want: true},
		{ip: "fd00::42", want: true},
		{ip: "garbage", want: false},
	}
	for _, tt := range tests {
		if got := m.Allow(tt.ip); got != tt.want {
			t.Errorf("Allow(%q) = %v, want %v", tt.ip, got, tt.want)
		}
	}

	if !NewIPMatcher(nil).IsEmpty() {
		t.Error("NewIPMatcher(nil).IsEmpty() = false, want true")
	}
}
