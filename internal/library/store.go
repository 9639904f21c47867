// Package library keeps a local SQLite snapshot of the user's Tidal
// playlists so they can be browsed offline.
package library

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store manages the local playlist snapshot using SQLite
type Store struct {
	db *sql.DB
}

// SavedPlaylist represents a playlist row in the snapshot
type SavedPlaylist struct {
	UUID           string
	Title          string
	Description    string
	NumberOfTracks int
	SyncedAt       time.Time
}

// SavedTrack represents a track row within a saved playlist
type SavedTrack struct {
	TrackID  int64
	Position int
	Title    string
	Artist   string
	Album    string
	Duration time.Duration
}

// Open creates or opens a snapshot database at the given path
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Set connection pool size to 1 for in-memory databases to ensure consistency
	// For file-based databases, this still works well for our use case
	db.SetMaxOpenConns(1)

	// Configure SQLite for optimal performance and safety
	pragmas := []string{
		"PRAGMA foreign_keys = ON",    // Enforce foreign key constraints
		"PRAGMA busy_timeout = 10000", // Wait up to 10 seconds on lock
		"PRAGMA synchronous = NORMAL", // Balance between safety and performance
		"PRAGMA journal_mode = WAL",   // Write-Ahead Logging for concurrent access
		"PRAGMA temp_store = MEMORY",  // Use memory for temp tables
		"PRAGMA cache_size = -64000",  // 64MB cache
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	// Create the schema
	schema := `
		CREATE TABLE IF NOT EXISTS playlists (
			uuid TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			number_of_tracks INTEGER NOT NULL DEFAULT 0,
			synced_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS playlist_tracks (
			playlist_uuid TEXT NOT NULL REFERENCES playlists(uuid) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			track_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			artist TEXT,
			album TEXT,
			duration INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (playlist_uuid, position)
		);

		CREATE INDEX IF NOT EXISTS idx_playlist_tracks_track ON playlist_tracks(track_id);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePlaylist replaces the stored snapshot of a playlist and its
// tracks in a single transaction.
func (s *Store) SavePlaylist(ctx context.Context, playlist SavedPlaylist, tracks []SavedTrack) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	syncedAt := playlist.SyncedAt
	if syncedAt.IsZero() {
		syncedAt = time.Now()
	}

	upsert := `
		INSERT INTO playlists (uuid, title, description, number_of_tracks, synced_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(uuid) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			number_of_tracks = excluded.number_of_tracks,
			synced_at = excluded.synced_at
	`
	if _, err := tx.ExecContext(ctx, upsert,
		playlist.UUID,
		playlist.Title,
		playlist.Description,
		playlist.NumberOfTracks,
		syncedAt.Unix(),
	); err != nil {
		return fmt.Errorf("failed to upsert playlist: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM playlist_tracks WHERE playlist_uuid = ?", playlist.UUID); err != nil {
		return fmt.Errorf("failed to clear playlist tracks: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO playlist_tracks (playlist_uuid, position, track_id, title, artist, album, duration)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for i, track := range tracks {
		if _, err := stmt.ExecContext(ctx,
			playlist.UUID,
			i,
			track.TrackID,
			track.Title,
			track.Artist,
			track.Album,
			int64(track.Duration.Seconds()),
		); err != nil {
			return fmt.Errorf("failed to insert track %d: %w", track.TrackID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Playlists retrieves all saved playlists, most recently synced first
func (s *Store) Playlists(ctx context.Context) ([]SavedPlaylist, error) {
	query := `
		SELECT uuid, title, COALESCE(description, ''), number_of_tracks, synced_at
		FROM playlists
		ORDER BY synced_at DESC, title ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlists: %w", err)
	}
	defer rows.Close()

	var playlists []SavedPlaylist
	for rows.Next() {
		var p SavedPlaylist
		var syncedAtUnix int64

		if err := rows.Scan(&p.UUID, &p.Title, &p.Description, &p.NumberOfTracks, &syncedAtUnix); err != nil {
			return nil, fmt.Errorf("failed to scan playlist: %w", err)
		}

		p.SyncedAt = time.Unix(syncedAtUnix, 0)
		playlists = append(playlists, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating playlists: %w", err)
	}

	return playlists, nil
}

// Tracks retrieves the saved tracks of a playlist in playlist order
func (s *Store) Tracks(ctx context.Context, playlistUUID string) ([]SavedTrack, error) {
	query := `
		SELECT track_id, position, title, COALESCE(artist, ''), COALESCE(album, ''), duration
		FROM playlist_tracks
		WHERE playlist_uuid = ?
		ORDER BY position ASC
	`

	rows, err := s.db.QueryContext(ctx, query, playlistUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlist tracks: %w", err)
	}
	defer rows.Close()

	var tracks []SavedTrack
	for rows.Next() {
		var t SavedTrack
		var durationSecs int64

		if err := rows.Scan(&t.TrackID, &t.Position, &t.Title, &t.Artist, &t.Album, &durationSecs); err != nil {
			return nil, fmt.Errorf("failed to scan track: %w", err)
		}

		t.Duration = time.Duration(durationSecs) * time.Second
		tracks = append(tracks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tracks: %w", err)
	}

	return tracks, nil
}

// DeletePlaylist removes a playlist and its tracks from the snapshot
func (s *Store) DeletePlaylist(ctx context.Context, playlistUUID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM playlists WHERE uuid = ?", playlistUUID)
	if err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("playlist %s not found", playlistUUID)
	}

	return nil
}

// Count returns the number of saved playlists
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM playlists").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count playlists: %w", err)
	}

	return count, nil
}
