package eureka

import (
	"encoding/json"
	"testing"
)

func TestPortUnmarshal(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantNumber  int
		wantEnabled bool
		wantErr     bool
	}{
		{name: "string flag", input: `{"$":8080,"@enabled":"true"}`, wantNumber: 8080, wantEnabled: true},
		{name: "native flag", input: `{"$":8443,"@enabled":false}`, wantNumber: 8443},
		{name: "string number", input: `{"$":"7001","@enabled":"true"}`, wantNumber: 7001, wantEnabled: true},
		{name: "missing members", input: `{}`},
		{name: "bad number", input: `{"$":"eighty"}`, wantErr: true},
		{name: "bad flag", input: `{"$":80,"@enabled":"maybe"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Port
			err := json.Unmarshal([]byte(tt.input), &p)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if p.Number != tt.wantNumber || p.Enabled != tt.wantEnabled {
				t.Errorf("Port = %+v, want {%d %v}", p, tt.wantNumber, tt.wantEnabled)
			}
		})
	}
}

func TestBaseURLIPv6(t *testing.T) {
	inst := Instance{HostName: "fd00::1", Port: Port{Number: 8080}}
	if got := inst.BaseURL(); got != "http://[fd00::1]:8080" {
		t.Errorf("BaseURL() = %q, want http://[fd00::1]:8080", got)
	}
}
