package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jfmyers9/riptide/pkg/tidal"
)

var (
	playlistCreateDescription string
	playlistAddAllowDupes     bool
)

var playlistCmd = &cobra.Command{
	Use:   "playlist",
	Short: "Inspect and manage playlists",
}

var playlistShowCmd = &cobra.Command{
	Use:   "show <uuid>",
	Short: "Show a playlist",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlaylistShow,
}

var playlistTracksCmd = &cobra.Command{
	Use:   "tracks <uuid>",
	Short: "List the tracks of a playlist",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlaylistTracks,
}

var playlistMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List your playlists",
	Args:  cobra.NoArgs,
	RunE:  runPlaylistMine,
}

var playlistCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a new playlist",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlaylistCreate,
}

var playlistAddCmd = &cobra.Command{
	Use:   "add <uuid> <track-id>...",
	Short: "Add tracks to a playlist",
	Long: `Add tracks to a playlist by track id.

The playlist is updated with an etag-guarded request, so a concurrent
modification aborts the add instead of clobbering it. Duplicate tracks
are rejected unless --allow-duplicates is set.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runPlaylistAdd,
}

var playlistDeleteCmd = &cobra.Command{
	Use:   "delete <uuid>",
	Short: "Delete a playlist",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlaylistDelete,
}

func init() {
	rootCmd.AddCommand(playlistCmd)
	playlistCmd.AddCommand(playlistShowCmd)
	playlistCmd.AddCommand(playlistDeleteCmd)
	playlistCmd.AddCommand(playlistTracksCmd)
	playlistCmd.AddCommand(playlistMineCmd)
	playlistCmd.AddCommand(playlistCreateCmd)
	playlistCmd.AddCommand(playlistAddCmd)

	playlistCreateCmd.Flags().StringVarP(&playlistCreateDescription, "description", "d", "", "Playlist description")
	playlistAddCmd.Flags().BoolVar(&playlistAddAllowDupes, "allow-duplicates", false, "Add tracks even if they are already in the playlist")
}

func runPlaylistShow(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	playlist, err := client.Playlists().Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch playlist: %w", err)
	}

	fmt.Print(formatPlaylistDetail(*playlist))
	return nil
}

func runPlaylistTracks(cmd *cobra.Command, args []string) error {
	client, cfg, err := newClient()
	if err != nil {
		return err
	}

	tracks, err := client.Playlists().Tracks(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch playlist tracks: %w", err)
	}

	printTracks(tracks, cfg.OutputWidth)
	return nil
}

func runPlaylistMine(cmd *cobra.Command, args []string) error {
	client, cfg, err := newClient()
	if err != nil {
		return err
	}

	playlists, err := client.Playlists().Mine(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch playlists: %w", err)
	}

	printPlaylists(playlists, cfg.OutputWidth)
	return nil
}

func runPlaylistCreate(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	playlist, err := client.Playlists().Create(cmd.Context(), args[0], playlistCreateDescription)
	if err != nil {
		return fmt.Errorf("failed to create playlist: %w", err)
	}

	fmt.Printf("✓ Created playlist %s (%s)\n", strOrDash(playlist.Title), strOrDash(playlist.UUID))
	return nil
}

func runPlaylistAdd(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	uuid := args[0]
	tracks := make([]tidal.Track, 0, len(args)-1)
	for _, arg := range args[1:] {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid track id %q", arg)
		}
		tracks = append(tracks, tidal.Track{ID: &id})
	}

	playlist, err := client.Playlists().AddTracks(cmd.Context(), uuid, tracks, playlistAddAllowDupes)
	if err != nil {
		return fmt.Errorf("failed to add tracks: %w", err)
	}

	fmt.Printf("✓ Added %d track(s) to %s\n", len(tracks), strOrDash(playlist.Title))
	if playlist.NumberOfTracks != nil {
		fmt.Printf("Playlist now has %d tracks\n", *playlist.NumberOfTracks)
	}
	return nil
}

func runPlaylistDelete(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	if err := client.Playlists().Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}

	fmt.Printf("✓ Deleted playlist %s\n", args[0])
	return nil
}

// formatPlaylistDetail renders the detail view for a single playlist
func formatPlaylistDetail(playlist tidal.Playlist) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Playlist: %s (%s)\n", strOrDash(playlist.Title), strOrDash(playlist.UUID))
	if playlist.Description != nil && *playlist.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", *playlist.Description)
	}
	if playlist.NumberOfTracks != nil {
		fmt.Fprintf(&b, "Tracks: %d\n", *playlist.NumberOfTracks)
	}
	if playlist.Duration != nil {
		fmt.Fprintf(&b, "Duration: %s\n", formatDuration(*playlist.Duration))
	}
	if playlist.PublicPlaylist != nil {
		fmt.Fprintf(&b, "Public: %t\n", *playlist.PublicPlaylist)
	}

	return b.String()
}
