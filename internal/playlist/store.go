package playlist

import (
	"context"
	"errors"
)

// ErrNoPlaylist is returned by PlaylistStore lookups and mutations that
// matched no row. The service decides whether that is a not-found (lookup
// missed) or an operation failure (mutation missed after existence passed).
var ErrNoPlaylist = errors.New("playlist not found")

// PlaylistFields is the data required to create a playlist. The store
// assigns the id and timestamps; videos start empty.
type PlaylistFields struct {
	OwnerID     string
	Name        string
	Description string
}

// PlaylistStore is the persistence contract for playlists. Every mutation
// is a single atomic store statement; there is no cross-call transaction,
// so a row deleted between an existence check and a mutation surfaces as
// ErrNoPlaylist from the mutation.
type PlaylistStore interface {
	Create(ctx context.Context, fields PlaylistFields) (*Playlist, error)
	FindByID(ctx context.Context, id string) (*Playlist, error)
	FindByOwner(ctx context.Context, ownerID string) ([]Playlist, error)
	UpdateFields(ctx context.Context, id string, patch PlaylistPatch) (*Playlist, error)
	AppendVideo(ctx context.Context, id, videoID string) (*Playlist, error)
	RemoveVideo(ctx context.Context, id, videoID string) (*Playlist, error)
	Delete(ctx context.Context, id string) (*Playlist, error)
}

// VideoStore is the read-only existence contract against the video catalog.
type VideoStore interface {
	Exists(ctx context.Context, id string) (bool, error)
}
