package persistent

import (
	"context"

	"github.com/jpviradiya/iTube/internal/entity"
	"github.com/jpviradiya/iTube/internal/model"

	"gorm.io/gorm"
)

type LikeRepository interface {
	// Create returns gorm.ErrDuplicatedKey when the (user, target,
	// kind) edge already exists; callers interpret that as
	// "already toggled on".
	Create(ctx context.Context, like *entity.Like) error
	Delete(ctx context.Context, userID, targetID string, kind entity.LikeTarget) (int64, error)
	CountForTarget(ctx context.Context, targetID string, kind entity.LikeTarget) (int64, error)
	LikedVideos(ctx context.Context, userID string) ([]*entity.Video, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	likeModel := &model.LikeModel{
		ID:         like.ID,
		UserID:     like.UserID,
		TargetID:   like.TargetID,
		TargetKind: string(like.TargetKind),
	}
	if err := r.db.WithContext(ctx).Create(likeModel).Error; err != nil {
		return err
	}
	*like = *ToLikeEntity(likeModel)
	return nil
}

func (r *likeRepository) Delete(ctx context.Context, userID, targetID string, kind entity.LikeTarget) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND target_id = ? AND target_kind = ?", userID, targetID, string(kind)).
		Delete(&model.LikeModel{})
	return res.RowsAffected, res.Error
}

func (r *likeRepository) CountForTarget(ctx context.Context, targetID string, kind entity.LikeTarget) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.LikeModel{}).
		Where("target_id = ? AND target_kind = ?", targetID, string(kind)).
		Count(&count).Error
	return count, err
}

func (r *likeRepository) LikedVideos(ctx context.Context, userID string) ([]*entity.Video, error) {
	var videoModels []model.VideoModel
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Joins("JOIN likes ON likes.target_id = videos.id AND likes.target_kind = ?", string(entity.LikeTargetVideo)).
		Where("likes.user_id = ?", userID).
		Order("likes.created_at DESC").
		Find(&videoModels).Error
	if err != nil {
		return nil, err
	}
	return toVideoEntities(videoModels), nil
}
