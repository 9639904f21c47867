package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search the Tidal catalog",
	Long: `Search the Tidal catalog for artists, albums, playlists, and tracks.

All four collections are searched at once; empty sections are omitted
from the output.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 0, "Maximum results per collection (default 10)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	client, cfg, err := newClient()
	if err != nil {
		return err
	}

	result, err := client.Search().Find(cmd.Context(), args[0], searchLimit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	width := cfg.OutputWidth

	if len(result.Artists.Items) > 0 {
		fmt.Println("Artists:")
		printArtists(result.Artists.Items, width)
		fmt.Println()
	}
	if len(result.Albums.Items) > 0 {
		fmt.Println("Albums:")
		printAlbums(result.Albums.Items, width)
		fmt.Println()
	}
	if len(result.Tracks.Items) > 0 {
		fmt.Println("Tracks:")
		printTracks(result.Tracks.Items, width)
		fmt.Println()
	}
	if len(result.Playlists.Items) > 0 {
		fmt.Println("Playlists:")
		printPlaylists(result.Playlists.Items, width)
		fmt.Println()
	}

	if len(result.Artists.Items)+len(result.Albums.Items)+len(result.Tracks.Items)+len(result.Playlists.Items) == 0 {
		fmt.Println("No results.")
	}

	return nil
}
