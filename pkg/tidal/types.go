package tidal

// Items is the {items: [...]} envelope used by every list-returning
// endpoint.
type Items[T any] struct {
	Items []T `json:"items"`
}

// SearchResult holds the four independent collections returned by the
// search endpoint. Each collection is populated or empty on its own;
// partial results are valid.
type SearchResult struct {
	Artists   Items[Artist]   `json:"artists"`
	Albums    Items[Album]    `json:"albums"`
	Playlists Items[Playlist] `json:"playlists"`
	Tracks    Items[Track]    `json:"tracks"`
}
