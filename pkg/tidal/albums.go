package tidal

import "context"

// AlbumsService provides album operations.
type AlbumsService struct {
	client *Client
}

// Get fetches a single album by id.
func (s *AlbumsService) Get(ctx context.Context, id string) (*Album, error) {
	body, err := s.client.get(ctx, "/albums/"+id, nil)
	if err != nil {
		return nil, err
	}
	album, err := convertResult[Album](body)
	if err != nil {
		return nil, err
	}
	return &album, nil
}

// Search returns the albums matching the given term. A limit <= 0 uses
// the service default.
func (s *AlbumsService) Search(ctx context.Context, term string, limit int) ([]Album, error) {
	result, err := s.client.Search().Find(ctx, term, limit)
	if err != nil {
		return nil, err
	}
	return result.Albums.Items, nil
}

// Tracks lists the tracks on the album.
func (s *AlbumsService) Tracks(ctx context.Context, id string) ([]Track, error) {
	body, err := s.client.get(ctx, "/albums/"+id+"/tracks", nil)
	if err != nil {
		return nil, err
	}
	tracks, err := convertResult[Items[Track]](body)
	if err != nil {
		return nil, err
	}
	return tracks.Items, nil
}
