package redis

import "testing"

func TestKeywordMember(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "Ulsan", want: "ulsan"},
		{input: "  Ulsan   HD ", want: "ulsan hd"},
		{input: "손흥민", want: "손흥민"},
		{input: "K\tLeague", want: "k league"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := keywordMember(tt.input); got != tt.want {
				t.Errorf("keywordMember(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewStoreDefaultsHistorySize(t *testing.T) {
	if s := NewStore(nil, 0); s.historySize != DefaultHistorySize {
		t.Errorf("historySize = %d, want %d", s.historySize, DefaultHistorySize)
	}
	if s := NewStore(nil, 5); s.historySize != 5 {
		t.Errorf("historySize = %d, want 5", s.historySize)
	}
}
