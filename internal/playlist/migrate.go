package playlist

import (
	"context"
)

// AutoMigrate creates the playlist and video catalog tables. Safe to run on
// every startup.
func AutoMigrate(ctx context.Context, db DB) error {
	if _, err := db.Exec(ctx, `CREATE EXTENSION IF NOT EXISTS pgcrypto`); err != nil {
		return err
	}

	if _, err := db.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS playlists (
          id          uuid PRIMARY KEY DEFAULT gen_random_uuid(),
          owner_id    TEXT NOT NULL,
          name        TEXT NOT NULL,
          description TEXT NOT NULL,
          video_ids   TEXT[] NOT NULL DEFAULT '{}',
          created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
          updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
      )
    `); err != nil {
		return err
	}

	if _, err := db.Exec(ctx, `
      CREATE INDEX IF NOT EXISTS idx_playlists_owner
      ON playlists(owner_id)
    `); err != nil {
		return err
	}

	// The video catalog is owned by another service; this table is the
	// local read model the existence checks run against.
	if _, err := db.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS videos (
          id          uuid PRIMARY KEY DEFAULT gen_random_uuid(),
          owner_id    TEXT NOT NULL DEFAULT '',
          title       TEXT NOT NULL DEFAULT '',
          created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
      )
    `); err != nil {
		return err
	}

	return nil
}
