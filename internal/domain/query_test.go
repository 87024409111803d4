package domain

import (
	"errors"
	"testing"
)

func TestNewSearchQuery(t *testing.T) {
	tests := []struct {
		name        string
		keyword     string
		typ         string
		wantKeyword string
		wantType    SearchType
		wantErr     error
	}{
		{name: "plain", keyword: "손흥민", typ: "player", wantKeyword: "손흥민", wantType: TypePlayer},
		{name: "trimmed", keyword: "  울산  ", typ: " team ", wantKeyword: "울산", wantType: TypeTeam},
		{name: "no type", keyword: "서울", wantKeyword: "서울"},
		{name: "empty keyword", keyword: "", wantErr: ErrEmptyKeyword},
		{name: "blank keyword", keyword: " \t\n", typ: "team", wantType: TypeTeam, wantErr: ErrEmptyKeyword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewSearchQuery(tt.keyword, tt.typ)
			if q.Keyword != tt.wantKeyword {
				t.Errorf("Keyword = %q, want %q", q.Keyword, tt.wantKeyword)
			}
			if q.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", q.Type, tt.wantType)
			}
			if err := q.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSearchTypeKnown(t *testing.T) {
	for _, typ := range []SearchType{TypePlayer, TypeTeam, TypeSchedule, TypeStadium} {
		if !typ.Known() {
			t.Errorf("%q.Known() = false, want true", typ)
		}
	}
	for _, typ := range []SearchType{"", "coach", "PLAYER"} {
		if typ.Known() {
			t.Errorf("%q.Known() = true, want false", typ)
		}
	}
}
