package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jfmyers9/riptide/internal/library"
	"github.com/jfmyers9/riptide/pkg/tidal"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Mirror your playlists into the local library",
	Long: `Fetch all of your playlists and their tracks from Tidal and store
them in the local SQLite library. Use 'riptide library' to browse the
snapshot offline.`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	client, cfg, err := newClient()
	if err != nil {
		return err
	}

	logger := setupLogger(rootLogLevel)

	store, err := library.Open(cfg.LibraryPath)
	if err != nil {
		return fmt.Errorf("failed to open library: %w", err)
	}
	defer func() { _ = store.Close() }()

	playlists, err := client.Playlists().Mine(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch playlists: %w", err)
	}

	logger.Info().Int("playlists", len(playlists)).Msg("Syncing playlists")

	synced := 0
	for _, playlist := range playlists {
		if playlist.UUID == nil {
			logger.Warn().Msg("Skipping playlist without uuid")
			continue
		}

		tracks, err := client.Playlists().Tracks(cmd.Context(), *playlist.UUID)
		if err != nil {
			logger.Error().Err(err).Str("uuid", *playlist.UUID).Msg("Failed to fetch tracks")
			continue
		}

		saved := library.SavedPlaylist{
			UUID:     *playlist.UUID,
			Title:    strOrEmpty(playlist.Title),
			SyncedAt: time.Now(),
		}
		if playlist.Description != nil {
			saved.Description = *playlist.Description
		}
		if playlist.NumberOfTracks != nil {
			saved.NumberOfTracks = *playlist.NumberOfTracks
		}

		if err := store.SavePlaylist(cmd.Context(), saved, toSavedTracks(tracks)); err != nil {
			logger.Error().Err(err).Str("uuid", *playlist.UUID).Msg("Failed to save playlist")
			continue
		}

		logger.Debug().Str("uuid", *playlist.UUID).Int("tracks", len(tracks)).Msg("Playlist synced")
		synced++
	}

	fmt.Printf("✓ Synced %d of %d playlists to %s\n", synced, len(playlists), cfg.LibraryPath)
	return nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// toSavedTracks flattens API tracks into library rows. Tracks without
// an id are skipped.
func toSavedTracks(tracks []tidal.Track) []library.SavedTrack {
	saved := make([]library.SavedTrack, 0, len(tracks))
	for _, track := range tracks {
		if track.ID == nil {
			continue
		}
		row := library.SavedTrack{
			TrackID: *track.ID,
			Title:   strOrEmpty(track.Title),
			Artist:  trackArtist(track),
		}
		if row.Artist == "-" {
			row.Artist = ""
		}
		if track.Album != nil && track.Album.Title != nil {
			row.Album = *track.Album.Title
		}
		if track.Duration != nil {
			row.Duration = time.Duration(*track.Duration) * time.Second
		}
		saved = append(saved, row)
	}
	return saved
}
