package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var albumShowTracks bool

var albumCmd = &cobra.Command{
	Use:   "album <id>",
	Short: "Show a Tidal album",
	Args:  cobra.ExactArgs(1),
	RunE:  runAlbum,
}

func init() {
	rootCmd.AddCommand(albumCmd)

	albumCmd.Flags().BoolVar(&albumShowTracks, "tracks", false, "List the album's tracks")
}

func runAlbum(cmd *cobra.Command, args []string) error {
	client, cfg, err := newClient()
	if err != nil {
		return err
	}

	album, err := client.Albums().Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch album: %w", err)
	}

	fmt.Printf("Album: %s (id %s)\n", strOrDash(album.Title), int64OrDash(album.ID))
	if len(album.Artists) > 0 && album.Artists[0].Name != nil {
		fmt.Printf("Artist: %s\n", *album.Artists[0].Name)
	}
	if album.NumberOfTracks != nil {
		fmt.Printf("Tracks: %d\n", *album.NumberOfTracks)
	}
	if album.ReleaseDate != nil {
		fmt.Printf("Released: %s\n", *album.ReleaseDate)
	}
	if album.AudioQuality != nil {
		fmt.Printf("Quality: %s\n", *album.AudioQuality)
	}

	if albumShowTracks {
		tracks, err := client.Albums().Tracks(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to fetch tracks: %w", err)
		}
		fmt.Println("\nTracks:")
		printTracks(tracks, cfg.OutputWidth)
	}

	return nil
}
