package playlist

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// memPlaylistStore is an in-memory PlaylistStore used to test the service
// contract without a database. Calls counts every store access so tests can
// assert that validation failures never touch the store.
type memPlaylistStore struct {
	playlists map[string]*Playlist
	calls     int
	failWith  error // when set, every call fails with this error
}

func newMemPlaylistStore() *memPlaylistStore {
	return &memPlaylistStore{playlists: map[string]*Playlist{}}
}

func (m *memPlaylistStore) clone(pl *Playlist) *Playlist {
	cp := *pl
	cp.VideoIDs = append([]string{}, pl.VideoIDs...)
	return &cp
}

func (m *memPlaylistStore) Create(ctx context.Context, fields PlaylistFields) (*Playlist, error) {
	m.calls++
	if m.failWith != nil {
		return nil, m.failWith
	}
	now := time.Now()
	pl := &Playlist{
		ID:          uuid.NewString(),
		OwnerID:     fields.OwnerID,
		Name:        fields.Name,
		Description: fields.Description,
		VideoIDs:    []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.playlists[pl.ID] = pl
	return m.clone(pl), nil
}

func (m *memPlaylistStore) FindByID(ctx context.Context, id string) (*Playlist, error) {
	m.calls++
	if m.failWith != nil {
		return nil, m.failWith
	}
	pl, ok := m.playlists[id]
	if !ok {
		return nil, ErrNoPlaylist
	}
	return m.clone(pl), nil
}

func (m *memPlaylistStore) FindByOwner(ctx context.Context, ownerID string) ([]Playlist, error) {
	m.calls++
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := []Playlist{}
	for _, pl := range m.playlists {
		if pl.OwnerID == ownerID {
			out = append(out, *m.clone(pl))
		}
	}
	return out, nil
}

func (m *memPlaylistStore) UpdateFields(ctx context.Context, id string, patch PlaylistPatch) (*Playlist, error) {
	m.calls++
	if m.failWith != nil {
		return nil, m.failWith
	}
	pl, ok := m.playlists[id]
	if !ok {
		return nil, ErrNoPlaylist
	}
	if patch.Name != nil {
		pl.Name = *patch.Name
	}
	if patch.Description != nil {
		pl.Description = *patch.Description
	}
	pl.UpdatedAt = time.Now()
	return m.clone(pl), nil
}

func (m *memPlaylistStore) AppendVideo(ctx context.Context, id, videoID string) (*Playlist, error) {
	m.calls++
	if m.failWith != nil {
		return nil, m.failWith
	}
	pl, ok := m.playlists[id]
	if !ok {
		return nil, ErrNoPlaylist
	}
	pl.VideoIDs = append(pl.VideoIDs, videoID)
	pl.UpdatedAt = time.Now()
	return m.clone(pl), nil
}

func (m *memPlaylistStore) RemoveVideo(ctx context.Context, id, videoID string) (*Playlist, error) {
	m.calls++
	if m.failWith != nil {
		return nil, m.failWith
	}
	pl, ok := m.playlists[id]
	if !ok {
		return nil, ErrNoPlaylist
	}
	kept := pl.VideoIDs[:0]
	for _, v := range pl.VideoIDs {
		if v != videoID {
			kept = append(kept, v)
		}
	}
	pl.VideoIDs = kept
	pl.UpdatedAt = time.Now()
	return m.clone(pl), nil
}

func (m *memPlaylistStore) Delete(ctx context.Context, id string) (*Playlist, error) {
	m.calls++
	if m.failWith != nil {
		return nil, m.failWith
	}
	pl, ok := m.playlists[id]
	if !ok {
		return nil, ErrNoPlaylist
	}
	delete(m.playlists, id)
	return m.clone(pl), nil
}

// memVideoStore is an in-memory VideoStore.
type memVideoStore struct {
	ids   map[string]bool
	calls int
}

func newMemVideoStore(ids ...string) *memVideoStore {
	m := &memVideoStore{ids: map[string]bool{}}
	for _, id := range ids {
		m.ids[id] = true
	}
	return m
}

func (m *memVideoStore) Exists(ctx context.Context, id string) (bool, error) {
	m.calls++
	return m.ids[id], nil
}

var errStoreDown = errors.New("store unavailable")
