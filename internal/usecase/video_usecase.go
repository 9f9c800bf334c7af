package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jpviradiya/iTube/internal/entity"
	"github.com/jpviradiya/iTube/internal/repo/persistent"
	"github.com/jpviradiya/iTube/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultVideoPageLimit = 3

type PublishInput struct {
	OwnerID     string
	Title       string
	Description string
	Duration    float64
	VideoFile   *AssetUpload
	Thumbnail   *AssetUpload
}

type VideoUseCase interface {
	List(ctx context.Context, params entity.PageParams) ([]*entity.Video, entity.PageMeta, error)
	Publish(ctx context.Context, input PublishInput) (*entity.Video, error)
	Get(ctx context.Context, videoID, viewerID string) (*entity.Video, error)
	UpdateDetails(ctx context.Context, videoID, ownerID, title, description string) (*entity.Video, error)
	UpdateThumbnail(ctx context.Context, videoID, ownerID string, upload AssetUpload) (*entity.Video, error)
	Delete(ctx context.Context, videoID, ownerID string) error
	TogglePublish(ctx context.Context, videoID, ownerID string) (bool, error)
}

type videoUseCase struct {
	videoRepo   persistent.VideoRepository
	userRepo    persistent.UserRepository
	assets      AssetStore
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewVideoUseCase(
	videoRepo persistent.VideoRepository,
	userRepo persistent.UserRepository,
	assets AssetStore,
	redisClient *redis.Client,
	logger *logger.Logger,
) VideoUseCase {
	return &videoUseCase{
		videoRepo:   videoRepo,
		userRepo:    userRepo,
		assets:      assets,
		redisClient: redisClient,
		logger:      logger,
	}
}

func (uc *videoUseCase) List(ctx context.Context, params entity.PageParams) ([]*entity.Video, entity.PageMeta, error) {
	params = params.Normalize(defaultVideoPageLimit)
	if params.OwnerID != "" {
		if _, err := uuid.Parse(params.OwnerID); err != nil {
			return nil, entity.PageMeta{}, entity.ErrValidation("invalid user id")
		}
	}

	videos, total, err := uc.videoRepo.List(ctx, params)
	if err != nil {
		uc.logger.Error("Failed to list videos: %v", err)
		return nil, entity.PageMeta{}, entity.ErrInternal("failed to fetch videos")
	}

	return videos, entity.NewPageMeta(total, params), nil
}

// Publish uploads the thumbnail first, then the video file, and only
// then creates the record. A failed create cleans up what was already
// stored.
func (uc *videoUseCase) Publish(ctx context.Context, input PublishInput) (*entity.Video, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, entity.ErrValidation("all fields are required")
	}
	if input.Thumbnail == nil {
		return nil, entity.ErrValidation("thumbnail is required")
	}
	if input.VideoFile == nil {
		return nil, entity.ErrValidation("video file is required")
	}

	thumbnailURL, err := uc.uploadAsset(ctx, "thumbnails", *input.Thumbnail)
	if err != nil {
		return nil, entity.ErrUpstream("failed to upload thumbnail")
	}

	videoURL, err := uc.uploadAsset(ctx, "videos", *input.VideoFile)
	if err != nil {
		uc.deleteAsset(ctx, thumbnailURL)
		return nil, entity.ErrUpstream("failed to upload video file")
	}

	video := &entity.Video{
		OwnerID:      input.OwnerID,
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
		Duration:     input.Duration,
		IsPublished:  true,
	}

	if err := uc.videoRepo.Create(ctx, video); err != nil {
		uc.logger.Error("Failed to create video: %v", err)
		uc.deleteAsset(ctx, thumbnailURL)
		uc.deleteAsset(ctx, videoURL)
		return nil, entity.ErrInternal("failed to create video")
	}

	return video, nil
}

func (uc *videoUseCase) Get(ctx context.Context, videoID, viewerID string) (*entity.Video, error) {
	if _, err := uuid.Parse(videoID); err != nil {
		return nil, entity.ErrValidation("invalid video id")
	}

	video, err := uc.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		if isNotFound(err) {
			return nil, entity.ErrNotFound("video not found")
		}
		uc.logger.Error("Failed to fetch video: %v", err)
		return nil, entity.ErrInternal("failed to fetch video")
	}

	if viewerID != "" {
		uc.recordView(ctx, video.ID, viewerID)
	}

	return video, nil
}

// recordView bumps the view counter at most once per viewer per video
// and appends the video to the viewer's watch history. Both are best
// effort; a failure never blocks the read.
func (uc *videoUseCase) recordView(ctx context.Context, videoID, viewerID string) {
	fresh := true
	if uc.redisClient != nil {
		viewKey := fmt.Sprintf("video_viewed:%s:%s", videoID, viewerID)
		set, err := uc.redisClient.SetNX(ctx, viewKey, "1", 365*24*time.Hour).Result()
		if err != nil {
			uc.logger.Warn("Failed to track view in redis: %v", err)
		} else {
			fresh = set
		}
	}

	if fresh {
		if err := uc.videoRepo.IncrementViews(ctx, videoID); err != nil {
			uc.logger.Warn("Failed to increment views: %v", err)
		}
		if uc.redisClient != nil {
			uc.redisClient.Incr(ctx, fmt.Sprintf("video:views:%s", videoID))
		}
	}

	if err := uc.userRepo.AddWatchHistory(ctx, viewerID, videoID); err != nil {
		uc.logger.Warn("Failed to record watch history: %v", err)
	}
}

func (uc *videoUseCase) UpdateDetails(ctx context.Context, videoID, ownerID, title, description string) (*entity.Video, error) {
	if _, err := uuid.Parse(videoID); err != nil {
		return nil, entity.ErrValidation("invalid video id")
	}

	fields := map[string]interface{}{}
	if strings.TrimSpace(title) != "" {
		fields["title"] = strings.TrimSpace(title)
	}
	if strings.TrimSpace(description) != "" {
		fields["description"] = strings.TrimSpace(description)
	}
	if len(fields) == 0 {
		return nil, entity.ErrValidation("at least one of title or description is required")
	}

	video, err := uc.videoRepo.UpdateOwned(ctx, videoID, ownerID, fields)
	if err != nil {
		if isNotFound(err) {
			return nil, entity.ErrNotFound("video not found")
		}
		uc.logger.Error("Failed to update video: %v", err)
		return nil, entity.ErrInternal("failed to update video")
	}
	return video, nil
}

func (uc *videoUseCase) UpdateThumbnail(ctx context.Context, videoID, ownerID string, upload AssetUpload) (*entity.Video, error) {
	if _, err := uuid.Parse(videoID); err != nil {
		return nil, entity.ErrValidation("invalid video id")
	}

	current, err := uc.videoRepo.GetOwned(ctx, videoID, ownerID)
	if err != nil {
		if isNotFound(err) {
			return nil, entity.ErrNotFound("video not found")
		}
		uc.logger.Error("Failed to fetch video: %v", err)
		return nil, entity.ErrInternal("failed to update thumbnail")
	}

	newURL, err := uc.uploadAsset(ctx, "thumbnails", upload)
	if err != nil {
		return nil, entity.ErrUpstream("failed to upload thumbnail")
	}

	video, err := uc.videoRepo.UpdateOwned(ctx, videoID, ownerID, map[string]interface{}{"thumbnail_url": newURL})
	if err != nil {
		uc.logger.Error("Failed to persist thumbnail: %v", err)
		return nil, entity.ErrInternal("failed to update thumbnail")
	}

	if current.ThumbnailURL != "" && current.ThumbnailURL != newURL {
		uc.deleteAsset(ctx, current.ThumbnailURL)
	}

	return video, nil
}

// Delete removes the record first and then makes a best-effort pass
// over the referenced assets; an asset-store failure is logged but
// never resurrects the video.
func (uc *videoUseCase) Delete(ctx context.Context, videoID, ownerID string) error {
	if _, err := uuid.Parse(videoID); err != nil {
		return entity.ErrValidation("invalid video id")
	}

	video, err := uc.videoRepo.GetOwned(ctx, videoID, ownerID)
	if err != nil {
		if isNotFound(err) {
			return entity.ErrNotFound("video not found")
		}
		uc.logger.Error("Failed to fetch video: %v", err)
		return entity.ErrInternal("failed to delete video")
	}

	rows, err := uc.videoRepo.DeleteOwned(ctx, videoID, ownerID)
	if err != nil {
		uc.logger.Error("Failed to delete video: %v", err)
		return entity.ErrInternal("failed to delete video")
	}
	if rows == 0 {
		return entity.ErrNotFound("video not found")
	}

	uc.deleteAsset(ctx, video.ThumbnailURL)
	uc.deleteAsset(ctx, video.VideoURL)

	return nil
}

func (uc *videoUseCase) TogglePublish(ctx context.Context, videoID, ownerID string) (bool, error) {
	if _, err := uuid.Parse(videoID); err != nil {
		return false, entity.ErrValidation("invalid video id")
	}

	video, err := uc.videoRepo.GetOwned(ctx, videoID, ownerID)
	if err != nil {
		if isNotFound(err) {
			return false, entity.ErrNotFound("video not found")
		}
		uc.logger.Error("Failed to fetch video: %v", err)
		return false, entity.ErrInternal("failed to toggle publish status")
	}

	updated, err := uc.videoRepo.UpdateOwned(ctx, videoID, ownerID, map[string]interface{}{"is_published": !video.IsPublished})
	if err != nil {
		uc.logger.Error("Failed to toggle publish status: %v", err)
		return false, entity.ErrInternal("failed to toggle publish status")
	}
	return updated.IsPublished, nil
}

func (uc *videoUseCase) uploadAsset(ctx context.Context, prefix string, upload AssetUpload) (string, error) {
	uploadCtx, cancel := context.WithTimeout(ctx, assetOpTimeout)
	defer cancel()

	key := fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), strings.ToLower(fileExt(upload.Filename)))
	url, err := uc.assets.Upload(uploadCtx, key, upload.Reader, upload.ContentType)
	if err != nil {
		uc.logger.Error("Failed to upload asset %s: %v", key, err)
		return "", err
	}
	return url, nil
}

func (uc *videoUseCase) deleteAsset(ctx context.Context, url string) {
	if url == "" {
		return
	}
	deleteCtx, cancel := context.WithTimeout(ctx, assetOpTimeout)
	defer cancel()
	if err := uc.assets.Delete(deleteCtx, url); err != nil {
		uc.logger.Warn("Failed to delete asset %s: %v", url, err)
	}
}

func fileExt(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx >= 0 {
		return filename[idx:]
	}
	return ""
}
