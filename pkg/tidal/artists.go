package tidal

import "context"

// ArtistsService provides artist operations.
type ArtistsService struct {
	client *Client
}

// Get fetches a single artist by id.
func (s *ArtistsService) Get(ctx context.Context, id string) (*Artist, error) {
	body, err := s.client.get(ctx, "/artists/"+id, nil)
	if err != nil {
		return nil, err
	}
	artist, err := convertResult[Artist](body)
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

// Search returns the artists matching the given term. A limit <= 0
// uses the service default.
func (s *ArtistsService) Search(ctx context.Context, term string, limit int) ([]Artist, error) {
	result, err := s.client.Search().Find(ctx, term, limit)
	if err != nil {
		return nil, err
	}
	return result.Artists.Items, nil
}

// Albums lists the albums released by the artist.
func (s *ArtistsService) Albums(ctx context.Context, id string) ([]Album, error) {
	body, err := s.client.get(ctx, "/artists/"+id+"/albums", nil)
	if err != nil {
		return nil, err
	}
	albums, err := convertResult[Items[Album]](body)
	if err != nil {
		return nil, err
	}
	return albums.Items, nil
}
