// Package tidal provides a client for the Tidal music-streaming API.
//
// This package implements session-based authentication and typed
// resource operations (artists, albums, playlists, tracks, search).
// It is designed to be used as a standalone SDK.
//
// Example usage:
//
//	import "github.com/jfmyers9/riptide/pkg/tidal"
//
//	creds := tidal.NewCredentials("your-app-token").
//	    CreateSession(ctx, "username", "password")
//
//	client, err := tidal.NewClient(tidal.Config{Credentials: creds})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	artist, err := client.Artists().Get(ctx, "37312")
package tidal

import (
	"fmt"
	"net/http"
)

const (
	// DefaultBaseURL is the default Tidal API endpoint.
	DefaultBaseURL = "https://api.tidalhifi.com/v1"

	// origin is sent on every request; the API rejects calls without it.
	origin = "http://listen.tidal.com"
)

// Logger is an optional interface for debug logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// Config holds client configuration.
type Config struct {
	Credentials Credentials  // Required: must carry an established session
	HTTPClient  *http.Client // Optional: HTTP client (defaults to http.DefaultClient)
	BaseURL     string       // Optional: API base URL (defaults to the Tidal API, used for testing)
	Logger      Logger       // Optional: Logger interface for debug logging
}

// Client is the main entry point for Tidal API operations.
//
// A Client is safe for concurrent use: the credentials it holds are
// never mutated after construction and each call issues an independent
// HTTP exchange.
type Client struct {
	creds      Credentials
	httpClient *http.Client
	baseURL    string
	logger     Logger

	artists   *ArtistsService
	albums    *AlbumsService
	playlists *PlaylistsService
	tracks    *TracksService
	search    *SearchService
}

// NewClient creates a new Tidal API client.
//
// The credentials must carry a session obtained via
// Credentials.CreateSession; every endpoint requires the session id and
// country code, so construction fails without one.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Credentials.Session == nil {
		return nil, fmt.Errorf("tidal: a session is required; call Credentials.CreateSession first")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		creds:      cfg.Credentials,
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     cfg.Logger,
	}

	c.artists = &ArtistsService{client: c}
	c.albums = &AlbumsService{client: c}
	c.playlists = &PlaylistsService{client: c}
	c.tracks = &TracksService{client: c}
	c.search = &SearchService{client: c}

	return c, nil
}

// UserID returns the authenticated user's id.
func (c *Client) UserID() int64 {
	// NewClient guarantees the session is present.
	return c.creds.Session.UserID
}

// Artists returns the artist operations service.
func (c *Client) Artists() *ArtistsService {
	return c.artists
}

// Albums returns the album operations service.
func (c *Client) Albums() *AlbumsService {
	return c.albums
}

// Playlists returns the playlist operations service.
func (c *Client) Playlists() *PlaylistsService {
	return c.playlists
}

// Tracks returns the track operations service.
func (c *Client) Tracks() *TracksService {
	return c.tracks
}

// Search returns the search service.
func (c *Client) Search() *SearchService {
	return c.search
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
