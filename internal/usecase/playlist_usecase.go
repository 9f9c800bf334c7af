package usecase

import (
	"context"
	"strings"

	"github.com/jpviradiya/iTube/internal/entity"
	"github.com/jpviradiya/iTube/internal/repo/persistent"
	"github.com/jpviradiya/iTube/pkg/logger"

	"github.com/google/uuid"
)

type PlaylistUseCase interface {
	Create(ctx context.Context, ownerID, name, description string) (*entity.Playlist, error)
	Get(ctx context.Context, playlistID string) (*entity.Playlist, error)
	ListForUser(ctx context.Context, ownerID string) ([]*entity.Playlist, error)
	Update(ctx context.Context, playlistID, ownerID, name, description string) (*entity.Playlist, error)
	Delete(ctx context.Context, playlistID, ownerID string) error
	AddVideo(ctx context.Context, playlistID, videoID, ownerID string) (*entity.Playlist, error)
	RemoveVideo(ctx context.Context, playlistID, videoID, ownerID string) (*entity.Playlist, error)
}

type playlistUseCase struct {
	playlistRepo persistent.PlaylistRepository
	videoRepo    persistent.VideoRepository
	userRepo     persistent.UserRepository
	logger       *logger.Logger
}

func NewPlaylistUseCase(
	playlistRepo persistent.PlaylistRepository,
	videoRepo persistent.VideoRepository,
	userRepo persistent.UserRepository,
	logger *logger.Logger,
) PlaylistUseCase {
	return &playlistUseCase{
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (uc *playlistUseCase) Create(ctx context.Context, ownerID, name, description string) (*entity.Playlist, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" || description == "" {
		return nil, entity.ErrValidation("name and description are required")
	}

	playlist := &entity.Playlist{OwnerID: ownerID, Name: name, Description: description}
	if err := uc.playlistRepo.Create(ctx, playlist); err != nil {
		uc.logger.Error("Failed to create playlist: %v", err)
		return nil, entity.ErrInternal("failed to create playlist")
	}
	return playlist, nil
}

func (uc *playlistUseCase) Get(ctx context.Context, playlistID string) (*entity.Playlist, error) {
	if _, err := uuid.Parse(playlistID); err != nil {
		return nil, entity.ErrValidation("invalid playlist id")
	}

	playlist, err := uc.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		if isNotFound(err) {
			return nil, entity.ErrNotFound("playlist not found")
		}
		uc.logger.Error("Failed to fetch playlist: %v", err)
		return nil, entity.ErrInternal("failed to fetch playlist")
	}
	return playlist, nil
}

func (uc *playlistUseCase) ListForUser(ctx context.Context, ownerID string) ([]*entity.Playlist, error) {
	if _, err := uuid.Parse(ownerID); err != nil {
		return nil, entity.ErrValidation("invalid user id")
	}

	if _, err := uc.userRepo.GetByID(ctx, ownerID); err != nil {
		if isNotFound(err) {
			return nil, entity.ErrNotFound("user not found")
		}
		uc.logger.Error("Failed to fetch user: %v", err)
		return nil, entity.ErrInternal("failed to fetch playlists")
	}

	playlists, err := uc.playlistRepo.ListForOwner(ctx, ownerID)
	if err != nil {
		uc.logger.Error("Failed to list playlists: %v", err)
		return nil, entity.ErrInternal("failed to fetch playlists")
	}
	return playlists, nil
}

func (uc *playlistUseCase) Update(ctx context.Context, playlistID, ownerID, name, description string) (*entity.Playlist, error) {
	if _, err := uuid.Parse(playlistID); err != nil {
		return nil, entity.ErrValidation("invalid playlist id")
	}

	fields := map[string]interface{}{}
	if strings.TrimSpace(name) != "" {
		fields["name"] = strings.TrimSpace(name)
	}
	if strings.TrimSpace(description) != "" {
		fields["description"] = strings.TrimSpace(description)
	}
	if len(fields) == 0 {
		return nil, entity.ErrValidation("at least one of name or description is required")
	}

	playlist, err := uc.playlistRepo.UpdateOwned(ctx, playlistID, ownerID, fields)
	if err != nil {
		if isNotFound(err) {
			return nil, entity.ErrNotFound("playlist not found")
		}
		uc.logger.Error("Failed to update playlist: %v", err)
		return nil, entity.ErrInternal("failed to update playlist")
	}
	return playlist, nil
}

func (uc *playlistUseCase) Delete(ctx context.Context, playlistID, ownerID string) error {
	if _, err := uuid.Parse(playlistID); err != nil {
		return entity.ErrValidation("invalid playlist id")
	}

	rows, err := uc.playlistRepo.DeleteOwned(ctx, playlistID, ownerID)
	if err != nil {
		uc.logger.Error("Failed to delete playlist: %v", err)
		return entity.ErrInternal("failed to delete playlist")
	}
	if rows == 0 {
		return entity.ErrNotFound("playlist not found")
	}
	return nil
}

func (uc *playlistUseCase) AddVideo(ctx context.Context, playlistID, videoID, ownerID string) (*entity.Playlist, error) {
	playlist, err := uc.requireOwnedPlaylist(ctx, playlistID, ownerID)
	if err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(videoID); err != nil {
		return nil, entity.ErrValidation("invalid video id")
	}

	exists, err := uc.videoRepo.Exists(ctx, videoID)
	if err != nil {
		uc.logger.Error("Failed to check video existence: %v", err)
		return nil, entity.ErrInternal("failed to add video to playlist")
	}
	if !exists {
		return nil, entity.ErrNotFound("video not found")
	}

	if err := uc.playlistRepo.AddVideo(ctx, playlistID, videoID); err != nil {
		uc.logger.Error("Failed to add video to playlist: %v", err)
		return nil, entity.ErrInternal("failed to add video to playlist")
	}

	return uc.Get(ctx, playlist.ID)
}

func (uc *playlistUseCase) RemoveVideo(ctx context.Context, playlistID, videoID, ownerID string) (*entity.Playlist, error) {
	playlist, err := uc.requireOwnedPlaylist(ctx, playlistID, ownerID)
	if err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(videoID); err != nil {
		return nil, entity.ErrValidation("invalid video id")
	}

	rows, err := uc.playlistRepo.RemoveVideo(ctx, playlistID, videoID)
	if err != nil {
		uc.logger.Error("Failed to remove video from playlist: %v", err)
		return nil, entity.ErrInternal("failed to remove video from playlist")
	}
	if rows == 0 {
		return nil, entity.ErrNotFound("video not found in playlist")
	}

	return uc.Get(ctx, playlist.ID)
}

// requireOwnedPlaylist resolves the playlist and rejects callers that
// do not own it. Non-owners get a 404, not a 403, so playlist ids are
// not probeable.
func (uc *playlistUseCase) requireOwnedPlaylist(ctx context.Context, playlistID, ownerID string) (*entity.Playlist, error) {
	if _, err := uuid.Parse(playlistID); err != nil {
		return nil, entity.ErrValidation("invalid playlist id")
	}

	playlist, err := uc.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		if isNotFound(err) {
			return nil, entity.ErrNotFound("playlist not found")
		}
		uc.logger.Error("Failed to fetch playlist: %v", err)
		return nil, entity.ErrInternal("failed to fetch playlist")
	}
	if playlist.OwnerID != ownerID {
		return nil, entity.ErrNotFound("playlist not found")
	}
	return playlist, nil
}
