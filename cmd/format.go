package cmd

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jfmyers9/riptide/pkg/tidal"
)

// padToWidth pads or truncates text to a fixed display width.
// Width is measured in display columns, accounting for Unicode characters.
// If width <= 0, returns text unchanged.
// If text is longer than width, truncates with "..." suffix.
// If text is shorter than width, pads with spaces.
func padToWidth(text string, width int) string {
	if width <= 0 {
		return text // no padding requested
	}

	currentWidth := runewidth.StringWidth(text)

	if currentWidth > width {
		// Truncate with "..." suffix
		ellipsis := "..."
		ellipsisWidth := runewidth.StringWidth(ellipsis)

		if width <= ellipsisWidth {
			// If width is too small, just return ellipsis truncated to width
			return runewidth.Truncate(ellipsis, width, "")
		}

		// Truncate to (width - ellipsisWidth) and add ellipsis. Truncate
		// can undershoot on wide runes, so pad back to the exact width.
		result := runewidth.Truncate(text, width-ellipsisWidth, "") + ellipsis
		if resultWidth := runewidth.StringWidth(result); resultWidth < width {
			return result + strings.Repeat(" ", width-resultWidth)
		}
		return result
	} else if currentWidth < width {
		// Pad with spaces
		padding := strings.Repeat(" ", width-currentWidth)
		return text + padding
	}

	return text // exactly the right width
}

// formatDuration renders a track or album duration in seconds as m:ss
func formatDuration(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// strOrDash dereferences an optional string field for display
func strOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

// int64OrDash dereferences an optional id field for display
func int64OrDash(i *int64) string {
	if i == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *i)
}

// trackArtist picks a display name for a track's artist
func trackArtist(track tidal.Track) string {
	if track.Artist != nil && track.Artist.Name != nil {
		return *track.Artist.Name
	}
	if len(track.Artists) > 0 && track.Artists[0].Name != nil {
		return *track.Artists[0].Name
	}
	return "-"
}

// printArtists writes a table of artists to stdout
func printArtists(artists []tidal.Artist, width int) {
	for _, artist := range artists {
		fmt.Printf("%s  %s\n", padToWidth(strOrDash(artist.Name), width), int64OrDash(artist.ID))
	}
}

// printAlbums writes a table of albums to stdout
func printAlbums(albums []tidal.Album, width int) {
	for _, album := range albums {
		tracks := "-"
		if album.NumberOfTracks != nil {
			tracks = fmt.Sprintf("%d tracks", *album.NumberOfTracks)
		}
		fmt.Printf("%s  %-12s %s\n", padToWidth(strOrDash(album.Title), width), tracks, int64OrDash(album.ID))
	}
}

// printTracks writes a table of tracks to stdout
func printTracks(tracks []tidal.Track, width int) {
	for _, track := range tracks {
		duration := "-"
		if track.Duration != nil {
			duration = formatDuration(*track.Duration)
		}
		fmt.Printf("%s  %s  %-6s %s\n",
			padToWidth(strOrDash(track.Title), width),
			padToWidth(trackArtist(track), width/2),
			duration,
			int64OrDash(track.ID))
	}
}

// printPlaylists writes a table of playlists to stdout
func printPlaylists(playlists []tidal.Playlist, width int) {
	for _, playlist := range playlists {
		tracks := "-"
		if playlist.NumberOfTracks != nil {
			tracks = fmt.Sprintf("%d tracks", *playlist.NumberOfTracks)
		}
		fmt.Printf("%s  %-12s %s\n", padToWidth(strOrDash(playlist.Title), width), tracks, strOrDash(playlist.UUID))
	}
}
