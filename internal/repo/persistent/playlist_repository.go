package persistent

import (
	"context"

	"github.com/jpviradiya/iTube/internal/entity"
	"github.com/jpviradiya/iTube/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlaylistRepository interface {
	Create(ctx context.Context, playlist *entity.Playlist) error
	GetByID(ctx context.Context, id string) (*entity.Playlist, error)
	ListForOwner(ctx context.Context, ownerID string) ([]*entity.Playlist, error)
	UpdateOwned(ctx context.Context, playlistID, ownerID string, fields map[string]interface{}) (*entity.Playlist, error)
	DeleteOwned(ctx context.Context, playlistID, ownerID string) (int64, error)
	AddVideo(ctx context.Context, playlistID, videoID string) error
	RemoveVideo(ctx context.Context, playlistID, videoID string) (int64, error)
}

type playlistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	playlistModel := &model.PlaylistModel{
		ID:          playlist.ID,
		OwnerID:     playlist.OwnerID,
		Name:        playlist.Name,
		Description: playlist.Description,
	}
	if err := r.db.WithContext(ctx).Create(playlistModel).Error; err != nil {
		return err
	}
	*playlist = *ToPlaylistEntity(playlistModel)
	return nil
}

func (r *playlistRepository) GetByID(ctx context.Context, id string) (*entity.Playlist, error) {
	var playlistModel model.PlaylistModel
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("id = ?", id).
		First(&playlistModel).Error
	if err != nil {
		return nil, err
	}

	playlist := ToPlaylistEntity(&playlistModel)

	var videoModels []model.VideoModel
	err = r.db.WithContext(ctx).
		Preload("Owner").
		Joins("JOIN playlist_videos ON playlist_videos.video_id = videos.id").
		Where("playlist_videos.playlist_id = ?", id).
		Order("playlist_videos.created_at ASC").
		Find(&videoModels).Error
	if err != nil {
		return nil, err
	}
	playlist.Videos = toVideoEntities(videoModels)

	return playlist, nil
}

func (r *playlistRepository) ListForOwner(ctx context.Context, ownerID string) ([]*entity.Playlist, error) {
	var playlistModels []model.PlaylistModel
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("owner_id = ?", ownerID).
		Order("updated_at DESC").
		Find(&playlistModels).Error
	if err != nil {
		return nil, err
	}

	playlists := make([]*entity.Playlist, len(playlistModels))
	for i := range playlistModels {
		playlists[i] = ToPlaylistEntity(&playlistModels[i])
	}
	return playlists, nil
}

func (r *playlistRepository) UpdateOwned(ctx context.Context, playlistID, ownerID string, fields map[string]interface{}) (*entity.Playlist, error) {
	res := r.db.WithContext(ctx).
		Model(&model.PlaylistModel{}).
		Where("id = ? AND owner_id = ?", playlistID, ownerID).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, playlistID)
}

func (r *playlistRepository) DeleteOwned(ctx context.Context, playlistID, ownerID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", playlistID, ownerID).
		Delete(&model.PlaylistModel{})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		// Membership rows are useless without the playlist.
		if err := r.db.WithContext(ctx).Where("playlist_id = ?", playlistID).Delete(&model.PlaylistVideoModel{}).Error; err != nil {
			return res.RowsAffected, err
		}
	}
	return res.RowsAffected, nil
}

// AddVideo inserts the membership row; a duplicate add is silently
// suppressed, keeping the playlist a set.
func (r *playlistRepository) AddVideo(ctx context.Context, playlistID, videoID string) error {
	row := &model.PlaylistVideoModel{PlaylistID: playlistID, VideoID: videoID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(row).Error
}

func (r *playlistRepository) RemoveVideo(ctx context.Context, playlistID, videoID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&model.PlaylistVideoModel{})
	return res.RowsAffected, res.Error
}
