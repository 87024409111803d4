package redis

import "strings"

const (
	// KeyKeywordScores is a sorted set: normalized keyword -> search count.
	KeyKeywordScores = "soccerfront:search:keywords"
	// KeyRecentSearches is a capped list of JSON entries, newest first.
	KeyRecentSearches = "soccerfront:search:recent"
)

// keywordMember normalizes a keyword so "Ulsan " and "ulsan" count together.
func keywordMember(keyword string) string {
	return strings.ToLower(strings.Join(strings.Fields(keyword), " "))
}
