package domain

import (
	"errors"
	"strings"
)

// SearchType classifies what the keyword refers to.
type SearchType string

const (
	TypePlayer   SearchType = "player"
	TypeTeam     SearchType = "team"
	TypeSchedule SearchType = "schedule"
	TypeStadium  SearchType = "stadium"
)

// ErrEmptyKeyword is returned when a query has no keyword left after trimming.
var ErrEmptyKeyword = errors.New("keyword is required")

// Known reports whether t is one of the classifiers the search backend understands.
func (t SearchType) Known() bool {
	switch t {
	case TypePlayer, TypeTeam, TypeSchedule, TypeStadium:
		return true
	default:
		return false
	}
}

// SearchQuery is the caller-supplied payload forwarded to the soccer service.
type SearchQuery struct {
	Keyword string     `json:"keyword"`
	Type    SearchType `json:"type,omitempty"`
}

// NewSearchQuery trims both fields. The type is kept verbatim otherwise:
// unknown classifiers are the backend's business.
func NewSearchQuery(keyword, typ string) SearchQuery {
	return SearchQuery{
		Keyword: strings.TrimSpace(keyword),
		Type:    SearchType(strings.TrimSpace(typ)),
	}
}

// Validate checks the keyword is present.
func (q SearchQuery) Validate() error {
	if strings.TrimSpace(q.Keyword) == "" {
		return ErrEmptyKeyword
	}
	return nil
}
