package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jfmyers9/riptide/internal/config"
	"github.com/jfmyers9/riptide/internal/library"
)

var libraryCmd = &cobra.Command{
	Use:   "library [uuid]",
	Short: "Browse the local playlist library",
	Long: `Browse playlists synced with 'riptide sync' without talking to the
Tidal API. With no arguments, lists all saved playlists; with a uuid,
lists that playlist's tracks.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLibrary,
}

func init() {
	rootCmd.AddCommand(libraryCmd)
}

func runLibrary(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := library.Open(cfg.LibraryPath)
	if err != nil {
		return fmt.Errorf("failed to open library: %w", err)
	}
	defer func() { _ = store.Close() }()

	if len(args) == 1 {
		tracks, err := store.Tracks(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to load tracks: %w", err)
		}
		if len(tracks) == 0 {
			fmt.Println("No tracks found. Run 'riptide sync' first.")
			return nil
		}
		for _, track := range tracks {
			duration := fmt.Sprintf("%d:%02d", int(track.Duration.Minutes()), int(track.Duration.Seconds())%60)
			fmt.Printf("%s  %s  %-6s %d\n",
				padToWidth(track.Title, cfg.OutputWidth),
				padToWidth(track.Artist, cfg.OutputWidth/2),
				duration,
				track.TrackID)
		}
		return nil
	}

	playlists, err := store.Playlists(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load playlists: %w", err)
	}
	if len(playlists) == 0 {
		fmt.Println("Library is empty. Run 'riptide sync' first.")
		return nil
	}

	for _, playlist := range playlists {
		fmt.Printf("%s  %-12s %s  synced %s\n",
			padToWidth(playlist.Title, cfg.OutputWidth),
			fmt.Sprintf("%d tracks", playlist.NumberOfTracks),
			playlist.UUID,
			playlist.SyncedAt.Format("2006-01-02 15:04"))
	}

	return nil
}
