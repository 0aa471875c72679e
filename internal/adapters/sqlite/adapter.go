// Package sqlite provides a SQLite-backed implementation of the playlist
// repository port.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // Import the driver anonymously

	"github.com/champion-vibes/backend/internal/core/domain"
	"github.com/champion-vibes/backend/internal/core/ports"
)

// Adapter implements the repository port for SQLite.
type Adapter struct {
	db *sql.DB
}

var _ ports.PlaylistRepository = (*Adapter)(nil)

// NewAdapter creates a connection and runs the schema migration.
func NewAdapter(storagePath string) (*Adapter, error) {
	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	adapter := &Adapter{db: db}
	if err := adapter.migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return adapter, nil
}

// Close ensures the DB connection is closed gracefully.
func (a *Adapter) Close() error {
	return a.db.Close()
}

func (a *Adapter) GetByID(ctx context.Context, id string) (domain.Playlist, error) {
	row := a.db.QueryRowContext(ctx, `
		SELECT id, champion_id, role, playstyle, title, description, profile, tags, created_at
		FROM playlists WHERE id = ?
	`, id)

	var (
		playlist    domain.Playlist
		profileJSON string
		tagsJSON    string
	)
	if err := row.Scan(
		&playlist.ID,
		&playlist.ChampionID,
		&playlist.Role,
		&playlist.Playstyle,
		&playlist.Title,
		&playlist.Description,
		&profileJSON,
		&tagsJSON,
		&playlist.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return domain.Playlist{}, domain.ErrNotFound
		}
		return domain.Playlist{}, fmt.Errorf("failed to load playlist: %w", err)
	}
	if err := json.Unmarshal([]byte(profileJSON), &playlist.Profile); err != nil {
		return domain.Playlist{}, fmt.Errorf("failed to decode playlist profile: %w", err)
	}
	if err := json.Unmarshal([]byte(tagsJSON), &playlist.Tags); err != nil {
		return domain.Playlist{}, fmt.Errorf("failed to decode playlist tags: %w", err)
	}

	playlist.Tracks = []domain.Track{}
	trackRows, err := a.db.QueryContext(ctx, `
		SELECT t.id, t.title, t.artist, t.duration_ms, t.platform, t.url,
			IFNULL(t.preview_url, ''), IFNULL(t.thumbnail_url, ''),
			IFNULL(t.genre, ''), IFNULL(t.mood, ''), IFNULL(t.energy, '')
		FROM tracks t
		JOIN playlist_tracks pt ON pt.track_id = t.id
		WHERE pt.playlist_id = ?
		ORDER BY pt.position ASC
	`, playlist.ID)
	if err != nil {
		return domain.Playlist{}, fmt.Errorf("failed to load playlist tracks: %w", err)
	}
	defer trackRows.Close()

	for trackRows.Next() {
		var (
			track    domain.Track
			platform string
			energy   string
		)
		if err := trackRows.Scan(
			&track.ID,
			&track.Title,
			&track.Artist,
			&track.DurationMs,
			&platform,
			&track.URL,
			&track.PreviewURL,
			&track.ThumbnailURL,
			&track.Genre,
			&track.Mood,
			&energy,
		); err != nil {
			return domain.Playlist{}, fmt.Errorf("failed to scan playlist track: %w", err)
		}
		track.Platform = domain.Platform(platform)
		track.Energy = domain.ParseEnergy(energy)
		playlist.Tracks = append(playlist.Tracks, track)
	}
	if err := trackRows.Err(); err != nil {
		return domain.Playlist{}, fmt.Errorf("failed to iterate playlist tracks: %w", err)
	}

	return playlist, nil
}

func (a *Adapter) Save(ctx context.Context, p domain.Playlist) error {
	profileJSON, err := json.Marshal(p.Profile)
	if err != nil {
		return fmt.Errorf("failed to encode playlist profile: %w", err)
	}
	tagsJSON, err := json.Marshal(p.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode playlist tags: %w", err)
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	queryPlaylist := `
		INSERT INTO playlists (id, champion_id, role, playstyle, title, description, profile, tags, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			champion_id=excluded.champion_id,
			role=excluded.role,
			playstyle=excluded.playstyle,
			title=excluded.title,
			description=excluded.description,
			profile=excluded.profile,
			tags=excluded.tags;
	`
	if _, err := tx.ExecContext(ctx, queryPlaylist,
		p.ID, p.ChampionID, p.Role, p.Playstyle, p.Title, p.Description,
		string(profileJSON), string(tagsJSON), p.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to save playlist metadata: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM playlist_tracks WHERE playlist_id = ?", p.ID); err != nil {
		return fmt.Errorf("failed to clear old tracks: %w", err)
	}

	stmtTrack, err := tx.PrepareContext(ctx, `
		INSERT INTO tracks (id, title, artist, duration_ms, platform, url, preview_url, thumbnail_url, genre, mood, energy)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title=excluded.title,
			artist=excluded.artist,
			duration_ms=excluded.duration_ms,
			platform=excluded.platform,
			url=excluded.url,
			preview_url=excluded.preview_url,
			thumbnail_url=excluded.thumbnail_url,
			genre=excluded.genre,
			mood=excluded.mood,
			energy=excluded.energy;
	`)
	if err != nil {
		return err
	}
	defer stmtTrack.Close()

	stmtLink, err := tx.PrepareContext(ctx, `
		INSERT INTO playlist_tracks (playlist_id, track_id, position)
		VALUES (?, ?, ?)
		ON CONFLICT(playlist_id, track_id) DO UPDATE SET position=excluded.position
	`)
	if err != nil {
		return err
	}
	defer stmtLink.Close()

	for i, t := range p.Tracks {
		if _, err := stmtTrack.ExecContext(ctx,
			t.ID, t.Title, t.Artist, t.DurationMs, string(t.Platform), t.URL,
			t.PreviewURL, t.ThumbnailURL, t.Genre, t.Mood, string(t.Energy),
		); err != nil {
			return fmt.Errorf("failed to save track %s: %w", t.ID, err)
		}
		if _, err := stmtLink.ExecContext(ctx, p.ID, t.ID, i); err != nil {
			return fmt.Errorf("failed to link track %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("transaction commit failed: %w", err)
	}

	return nil
}

func (a *Adapter) UpdateTrackEnergy(ctx context.Context, trackID string, energy domain.EnergyTier) error {
	if _, err := a.db.ExecContext(ctx,
		"UPDATE tracks SET energy = ? WHERE id = ?",
		string(energy), trackID,
	); err != nil {
		return fmt.Errorf("failed to update track energy: %w", err)
	}
	return nil
}

func (a *Adapter) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS tracks (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		artist TEXT NOT NULL,
		duration_ms INTEGER,
		platform TEXT NOT NULL,
		url TEXT,
		preview_url TEXT,
		thumbnail_url TEXT,
		genre TEXT,
		mood TEXT,
		energy TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS playlists (
		id TEXT PRIMARY KEY,
		champion_id TEXT NOT NULL,
		role TEXT NOT NULL,
		playstyle TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		profile TEXT NOT NULL,
		tags TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS playlist_tracks (
		playlist_id TEXT,
		track_id TEXT,
		position INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (playlist_id, track_id),
		FOREIGN KEY(playlist_id) REFERENCES playlists(id) ON DELETE CASCADE,
		FOREIGN KEY(track_id) REFERENCES tracks(id) ON DELETE CASCADE
	);
	`
	if _, err := a.db.Exec(query); err != nil {
		return err
	}

	return nil
}
