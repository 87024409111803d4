package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/soccerfront/internal/domain"
)

// DefaultHistorySize bounds the recent searches list when none is configured.
const DefaultHistorySize = 50

// KeywordCount is one entry of the popularity ranking.
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int64  `json:"count"`
}

// SearchEntry is one recorded search.
type SearchEntry struct {
	Keyword string            `json:"keyword"`
	Type    domain.SearchType `json:"type,omitempty"`
	At      time.Time         `json:"at"`
}

// Store keeps the search history in Redis.
type Store struct {
	client      *redis.Client
	historySize int
	now         func() time.Time
}

// NewStore creates a Redis-backed history store.
func NewStore(client *redis.Client, historySize int) *Store {
	if historySize <= 0 {
		historySize = DefaultHistorySize
	}
	return &Store{client: client, historySize: historySize, now: time.Now}
}

// RecordSearch bumps the keyword's counter and prepends the query to the
// recent list, trimming it to the configured size.
func (s *Store) RecordSearch(ctx context.Context, q domain.SearchQuery) error {
	entry, err := json.Marshal(SearchEntry{Keyword: q.Keyword, Type: q.Type, At: s.now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to marshal search entry: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.ZIncrBy(ctx, KeyKeywordScores, 1, keywordMember(q.Keyword))
	pipe.LPush(ctx, KeyRecentSearches, entry)
	pipe.LTrim(ctx, KeyRecentSearches, 0, int64(s.historySize-1))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record search: %w", err)
	}
	return nil
}

// TopKeywords returns the n most searched keywords, highest count first.
func (s *Store) TopKeywords(ctx context.Context, n int) ([]KeywordCount, error) {
	if n <= 0 {
		return []KeywordCount{}, nil
	}
	zs, err := s.client.ZRevRangeWithScores(ctx, KeyKeywordScores, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read keyword ranking: %w", err)
	}

	out := make([]KeywordCount, 0, len(zs))
	for _, z := range zs {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		out = append(out, KeywordCount{Keyword: member, Count: int64(z.Score)})
	}
	return out, nil
}

// Recent returns up to n of the latest searches, newest first. Entries that
// fail to decode are skipped.
func (s *Store) Recent(ctx context.Context, n int) ([]SearchEntry, error) {
	if n <= 0 {
		return []SearchEntry{}, nil
	}
	raw, err := s.client.LRange(ctx, KeyRecentSearches, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read recent searches: %w", err)
	}

	out := make([]SearchEntry, 0, len(raw))
	for _, item := range raw {
		var e SearchEntry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// Ping checks the connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
