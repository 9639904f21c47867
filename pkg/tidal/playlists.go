package tidal

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// PlaylistsService provides playlist operations, including the
// conditional (etag-guarded) mutation flows.
type PlaylistsService struct {
	client *Client
}

// Get fetches a single playlist by UUID.
func (s *PlaylistsService) Get(ctx context.Context, id string) (*Playlist, error) {
	body, err := s.client.get(ctx, "/playlists/"+id, nil)
	if err != nil {
		return nil, err
	}
	playlist, err := convertResult[Playlist](body)
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

// Search returns the playlists matching the given term. A limit <= 0
// uses the service default.
func (s *PlaylistsService) Search(ctx context.Context, term string, limit int) ([]Playlist, error) {
	result, err := s.client.Search().Find(ctx, term, limit)
	if err != nil {
		return nil, err
	}
	return result.Playlists.Items, nil
}

// Tracks lists the tracks on the playlist.
func (s *PlaylistsService) Tracks(ctx context.Context, id string) ([]Track, error) {
	body, err := s.client.get(ctx, "/playlists/"+id+"/tracks", nil)
	if err != nil {
		return nil, err
	}
	tracks, err := convertResult[Items[Track]](body)
	if err != nil {
		return nil, err
	}
	return tracks.Items, nil
}

// Mine lists the authenticated user's playlists.
func (s *PlaylistsService) Mine(ctx context.Context) ([]Playlist, error) {
	path := fmt.Sprintf("/users/%d/playlists", s.client.UserID())
	body, err := s.client.get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	playlists, err := convertResult[Items[Playlist]](body)
	if err != nil {
		return nil, err
	}
	return playlists.Items, nil
}

// Create creates a new playlist owned by the authenticated user.
func (s *PlaylistsService) Create(ctx context.Context, title, description string) (*Playlist, error) {
	path := fmt.Sprintf("/users/%d/playlists", s.client.UserID())

	form := url.Values{}
	form.Set("title", title)
	form.Set("description", description)

	body, err := s.client.post(ctx, path, form, "")
	if err != nil {
		return nil, err
	}
	playlist, err := convertResult[Playlist](body)
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

// AddTracks appends tracks to the playlist, guarded by the playlist's
// current etag so a concurrent modification rejects the mutation
// instead of losing it. The flow is:
//
//  1. GET the items sub-resource to capture the current etag.
//  2. POST the track ids with If-None-Match set to that etag.
//  3. Re-fetch and return the updated playlist.
//
// When addDupes is false the API fails the request if any track is
// already on the playlist. A conflicting update surfaces as the
// classified API error; there is no retry here.
func (s *PlaylistsService) AddTracks(ctx context.Context, id string, tracks []Track, addDupes bool) (*Playlist, error) {
	itemsPath := "/playlists/" + id + "/items"

	etag, err := s.client.Etag(ctx, itemsPath)
	if err != nil {
		return nil, err
	}

	trackIDs := make([]string, 0, len(tracks))
	for _, track := range tracks {
		if track.ID == nil {
			return nil, fmt.Errorf("tidal: cannot add a track without an id to playlist %s", id)
		}
		trackIDs = append(trackIDs, strconv.FormatInt(*track.ID, 10))
	}

	onDupes := "FAIL"
	if addDupes {
		onDupes = "ADD"
	}

	form := url.Values{}
	form.Set("trackIds", strings.Join(trackIDs, ","))
	form.Set("onDupes", onDupes)

	if _, err := s.client.post(ctx, itemsPath, form, etag); err != nil {
		return nil, err
	}

	// The mutation response body is not trusted for full entity state.
	return s.Get(ctx, id)
}

// Delete removes the playlist, guarded by its current etag like the
// other mutation flows.
func (s *PlaylistsService) Delete(ctx context.Context, id string) error {
	path := "/playlists/" + id

	etag, err := s.client.Etag(ctx, path)
	if err != nil {
		return err
	}

	_, err = s.client.del(ctx, path, etag)
	return err
}
