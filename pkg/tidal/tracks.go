package tidal

import "context"

// TracksService provides track operations.
type TracksService struct {
	client *Client
}

// Search returns the tracks matching the given term. A limit <= 0 uses
// the service default.
func (s *TracksService) Search(ctx context.Context, term string, limit int) ([]Track, error) {
	result, err := s.client.Search().Find(ctx, term, limit)
	if err != nil {
		return nil, err
	}
	return result.Tracks.Items, nil
}
