package playlist

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the stores need. Narrowing it keeps the
// SQL layer mockable without a live database.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const playlistColumns = "id, owner_id, name, description, video_ids, created_at, updated_at"

// PGPlaylistStore persists playlists in Postgres. Membership lives in a
// text[] column so append and remove-all are single UPDATE statements,
// atomic at the store level without a transaction.
type PGPlaylistStore struct {
	db     DB
	logger *log.Logger
}

func NewPGPlaylistStore(db DB, logger *log.Logger) *PGPlaylistStore {
	if logger == nil {
		logger = log.Default()
	}
	return &PGPlaylistStore{db: db, logger: logger}
}

func scanPlaylist(row pgx.Row) (*Playlist, error) {
	var pl Playlist
	err := row.Scan(
		&pl.ID,
		&pl.OwnerID,
		&pl.Name,
		&pl.Description,
		&pl.VideoIDs,
		&pl.CreatedAt,
		&pl.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoPlaylist
	}
	if err != nil {
		return nil, err
	}
	if pl.VideoIDs == nil {
		pl.VideoIDs = []string{}
	}
	return &pl, nil
}

func (s *PGPlaylistStore) Create(ctx context.Context, fields PlaylistFields) (*Playlist, error) {
	pl, err := scanPlaylist(s.db.QueryRow(ctx, `
		INSERT INTO playlists (owner_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING `+playlistColumns,
		fields.OwnerID, fields.Name, fields.Description))
	if err != nil {
		s.logger.Error("create playlist", "owner", fields.OwnerID, "err", err)
		return nil, err
	}
	return pl, nil
}

func (s *PGPlaylistStore) FindByID(ctx context.Context, id string) (*Playlist, error) {
	return scanPlaylist(s.db.QueryRow(ctx, `
		SELECT `+playlistColumns+`
		FROM playlists
		WHERE id = $1`, id))
}

func (s *PGPlaylistStore) FindByOwner(ctx context.Context, ownerID string) ([]Playlist, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+playlistColumns+`
		FROM playlists
		WHERE owner_id = $1
		ORDER BY created_at DESC`, ownerID)
	if err != nil {
		s.logger.Error("find playlists by owner", "owner", ownerID, "err", err)
		return nil, err
	}
	defer rows.Close()

	playlists := []Playlist{}
	for rows.Next() {
		pl, err := scanPlaylist(rows)
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, *pl)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return playlists, nil
}

func (s *PGPlaylistStore) UpdateFields(ctx context.Context, id string, patch PlaylistPatch) (*Playlist, error) {
	return scanPlaylist(s.db.QueryRow(ctx, `
		UPDATE playlists
		SET name        = COALESCE($2, name),
		    description = COALESCE($3, description),
		    updated_at  = now()
		WHERE id = $1
		RETURNING `+playlistColumns,
		id, patch.Name, patch.Description))
}

func (s *PGPlaylistStore) AppendVideo(ctx context.Context, id, videoID string) (*Playlist, error) {
	return scanPlaylist(s.db.QueryRow(ctx, `
		UPDATE playlists
		SET video_ids  = array_append(video_ids, $2),
		    updated_at = now()
		WHERE id = $1
		RETURNING `+playlistColumns,
		id, videoID))
}

func (s *PGPlaylistStore) RemoveVideo(ctx context.Context, id, videoID string) (*Playlist, error) {
	// array_remove drops every occurrence, which is exactly the
	// remove-all contract.
	return scanPlaylist(s.db.QueryRow(ctx, `
		UPDATE playlists
		SET video_ids  = array_remove(video_ids, $2),
		    updated_at = now()
		WHERE id = $1
		RETURNING `+playlistColumns,
		id, videoID))
}

func (s *PGPlaylistStore) Delete(ctx context.Context, id string) (*Playlist, error) {
	return scanPlaylist(s.db.QueryRow(ctx, `
		DELETE FROM playlists
		WHERE id = $1
		RETURNING `+playlistColumns, id))
}

// PGVideoStore answers existence lookups against the video catalog table.
type PGVideoStore struct {
	db DB
}

func NewPGVideoStore(db DB) *PGVideoStore {
	return &PGVideoStore{db: db}
}

func (s *PGVideoStore) Exists(ctx context.Context, id string) (bool, error) {
	var one int
	err := s.db.QueryRow(ctx, `SELECT 1 FROM videos WHERE id = $1`, id).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
