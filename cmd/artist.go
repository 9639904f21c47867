package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var artistShowAlbums bool

var artistCmd = &cobra.Command{
	Use:   "artist <id>",
	Short: "Show a Tidal artist",
	Args:  cobra.ExactArgs(1),
	RunE:  runArtist,
}

func init() {
	rootCmd.AddCommand(artistCmd)

	artistCmd.Flags().BoolVar(&artistShowAlbums, "albums", false, "List the artist's albums")
}

func runArtist(cmd *cobra.Command, args []string) error {
	client, cfg, err := newClient()
	if err != nil {
		return err
	}

	artist, err := client.Artists().Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch artist: %w", err)
	}

	fmt.Printf("Artist: %s (id %s)\n", strOrDash(artist.Name), int64OrDash(artist.ID))
	if artist.Popularity != nil {
		fmt.Printf("Popularity: %d\n", *artist.Popularity)
	}

	if artistShowAlbums {
		albums, err := client.Artists().Albums(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to fetch albums: %w", err)
		}
		fmt.Println("\nAlbums:")
		printAlbums(albums, cfg.OutputWidth)
	}

	return nil
}
