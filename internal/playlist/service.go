package playlist

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/log"
)

// Service implements the playlist operations over abstract stores. Each
// operation validates its inputs first, verifies that every referenced
// entity exists, performs exactly one atomic store mutation, and reports a
// typed outcome. No operation retries or recovers locally.
type Service struct {
	playlists PlaylistStore
	videos    VideoStore
	events    *Events
	logger    *log.Logger
}

func NewService(playlists PlaylistStore, videos VideoStore, events *Events, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		playlists: playlists,
		videos:    videos,
		events:    events,
		logger:    logger,
	}
}

// CreatePlaylist persists a new playlist for owner with an empty video
// list. The owner id comes from the authenticated session context, never
// from the request payload.
func (s *Service) CreatePlaylist(ctx context.Context, ownerID, name, description string) (*Playlist, error) {
	name, err := requireText("name", name)
	if err != nil {
		return nil, err
	}
	description, err = requireText("description", description)
	if err != nil {
		return nil, err
	}

	pl, err := s.playlists.Create(ctx, PlaylistFields{
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
	})
	if err != nil {
		s.logger.Error("create playlist", "owner", ownerID, "err", err)
		return nil, errOperation("something went wrong while creating the playlist")
	}

	s.events.Publish(ctx, "playlist.created", map[string]any{"playlist": pl})
	return pl, nil
}

// GetUserPlaylists returns every playlist owned by userID.
func (s *Service) GetUserPlaylists(ctx context.Context, userID string) ([]Playlist, error) {
	if err := requireID("userId", userID); err != nil {
		return nil, err
	}

	playlists, err := s.playlists.FindByOwner(ctx, userID)
	if err != nil {
		s.logger.Error("fetch playlists by owner", "owner", userID, "err", err)
		return nil, errOperation("something went wrong while fetching playlists")
	}
	if len(playlists) == 0 {
		return nil, errNotFound("no playlists found for user")
	}
	return playlists, nil
}

// GetPlaylistByID fetches a single playlist.
func (s *Service) GetPlaylistByID(ctx context.Context, playlistID string) (*Playlist, error) {
	if err := requireID("playlistId", playlistID); err != nil {
		return nil, err
	}

	pl, err := s.playlists.FindByID(ctx, playlistID)
	if errors.Is(err, ErrNoPlaylist) {
		return nil, errNotFound("playlist not found")
	}
	if err != nil {
		s.logger.Error("fetch playlist", "playlist", playlistID, "err", err)
		return nil, errOperation("something went wrong while fetching the playlist")
	}
	return pl, nil
}

// AddVideoToPlaylist appends videoID to the playlist's video list. Both
// entities must exist; duplicates are not prevented, so repeated adds
// accumulate. The existence checks and the append are separate store calls:
// a concurrent delete between them surfaces as an operation error.
func (s *Service) AddVideoToPlaylist(ctx context.Context, playlistID, videoID string) (*Playlist, error) {
	if err := s.checkMembershipRefs(ctx, playlistID, videoID); err != nil {
		return nil, err
	}

	pl, err := s.playlists.AppendVideo(ctx, playlistID, videoID)
	if errors.Is(err, ErrNoPlaylist) {
		return nil, errOperation("error while adding video to playlist")
	}
	if err != nil {
		s.logger.Error("append video", "playlist", playlistID, "video", videoID, "err", err)
		return nil, errOperation("error while adding video to playlist")
	}

	s.events.Publish(ctx, "playlist.video_added", map[string]any{
		"playlistId": playlistID,
		"videoId":    videoID,
	})
	return pl, nil
}

// RemoveVideoFromPlaylist removes every occurrence of videoID from the
// playlist. Removing a video that is not a member is a no-op success; the
// preconditions only require that both entities exist.
func (s *Service) RemoveVideoFromPlaylist(ctx context.Context, playlistID, videoID string) (*Playlist, error) {
	if err := s.checkMembershipRefs(ctx, playlistID, videoID); err != nil {
		return nil, err
	}

	pl, err := s.playlists.RemoveVideo(ctx, playlistID, videoID)
	if errors.Is(err, ErrNoPlaylist) {
		return nil, errOperation("error while removing video from playlist")
	}
	if err != nil {
		s.logger.Error("remove video", "playlist", playlistID, "video", videoID, "err", err)
		return nil, errOperation("error while removing video from playlist")
	}

	s.events.Publish(ctx, "playlist.video_removed", map[string]any{
		"playlistId": playlistID,
		"videoId":    videoID,
	})
	return pl, nil
}

// checkMembershipRefs validates both ids and verifies both entities exist,
// in that order, before any mutation is attempted.
func (s *Service) checkMembershipRefs(ctx context.Context, playlistID, videoID string) error {
	if err := requireID("playlistId", playlistID); err != nil {
		return err
	}
	if err := requireID("videoId", videoID); err != nil {
		return err
	}

	if _, err := s.playlists.FindByID(ctx, playlistID); err != nil {
		if errors.Is(err, ErrNoPlaylist) {
			return errNotFound("playlist not found")
		}
		s.logger.Error("fetch playlist", "playlist", playlistID, "err", err)
		return errOperation("something went wrong while fetching the playlist")
	}

	exists, err := s.videos.Exists(ctx, videoID)
	if err != nil {
		s.logger.Error("video existence check", "video", videoID, "err", err)
		return errOperation("something went wrong while checking the video")
	}
	if !exists {
		return errNotFound("video not found")
	}
	return nil
}

// DeletePlaylist hard-deletes the playlist and returns its pre-delete
// snapshot. Deleting a playlist that does not exist is a failure, not an
// idempotent no-op.
func (s *Service) DeletePlaylist(ctx context.Context, playlistID string) (*Playlist, error) {
	if err := requireID("playlistId", playlistID); err != nil {
		return nil, err
	}

	pl, err := s.playlists.Delete(ctx, playlistID)
	if errors.Is(err, ErrNoPlaylist) {
		return nil, errOperation("error while deleting playlist")
	}
	if err != nil {
		s.logger.Error("delete playlist", "playlist", playlistID, "err", err)
		return nil, errOperation("error while deleting playlist")
	}

	s.events.Publish(ctx, "playlist.deleted", map[string]any{"playlistId": playlistID})
	return pl, nil
}

// UpdatePlaylist applies a partial metadata update to the playlist. A
// supplied name must be non-blank after trimming; a supplied description is
// only trimmed. Absent fields are left untouched.
func (s *Service) UpdatePlaylist(ctx context.Context, playlistID string, patch PlaylistPatch) (*Playlist, error) {
	if err := requireID("playlistId", playlistID); err != nil {
		return nil, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, errValidation("name can't be empty")
		}
		patch.Name = &name
	}
	if patch.Description != nil {
		description := strings.TrimSpace(*patch.Description)
		patch.Description = &description
	}

	pl, err := s.playlists.UpdateFields(ctx, playlistID, patch)
	if errors.Is(err, ErrNoPlaylist) {
		return nil, errOperation("something went wrong while updating the playlist")
	}
	if err != nil {
		s.logger.Error("update playlist", "playlist", playlistID, "err", err)
		return nil, errOperation("something went wrong while updating the playlist")
	}

	s.events.Publish(ctx, "playlist.updated", map[string]any{"playlist": pl})
	return pl, nil
}
