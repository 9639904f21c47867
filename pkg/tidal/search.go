package tidal

import (
	"context"
	"strconv"
)

// DefaultSearchLimit is the number of results requested per collection
// when the caller does not specify a limit.
const DefaultSearchLimit = 10

// SearchService provides the combined search operation.
type SearchService struct {
	client *Client
}

// Find searches artists, albums, playlists, and tracks at once. The
// four collections of the result are independent; any of them may be
// empty. A limit <= 0 uses DefaultSearchLimit.
func (s *SearchService) Find(ctx context.Context, term string, limit int) (*SearchResult, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	query := map[string]string{
		"query": term,
		"limit": strconv.Itoa(limit),
	}
	body, err := s.client.get(ctx, "/search", query)
	if err != nil {
		return nil, err
	}

	result, err := convertResult[SearchResult](body)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
