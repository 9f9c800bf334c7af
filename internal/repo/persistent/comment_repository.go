package persistent

import (
	"context"

	"github.com/jpviradiya/iTube/internal/entity"
	"github.com/jpviradiya/iTube/internal/model"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	Exists(ctx context.Context, id string) (bool, error)
	ListForVideo(ctx context.Context, videoID string, params entity.PageParams) ([]*entity.Comment, int64, error)
	UpdateOwned(ctx context.Context, commentID, ownerID, content string) (*entity.Comment, error)
	DeleteOwned(ctx context.Context, commentID, ownerID string) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentModel := &model.CommentModel{
		ID:      comment.ID,
		VideoID: comment.VideoID,
		OwnerID: comment.OwnerID,
		Content: comment.Content,
	}
	if err := r.db.WithContext(ctx).Create(commentModel).Error; err != nil {
		return err
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *commentRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CommentModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *commentRepository) ListForVideo(ctx context.Context, videoID string, params entity.PageParams) ([]*entity.Comment, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.CommentModel{}).Where("video_id = ?", videoID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var commentModels []model.CommentModel
	err := query.
		Preload("Owner").
		Order("updated_at DESC").
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&commentModels).Error
	if err != nil {
		return nil, 0, err
	}

	comments := make([]*entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments, total, nil
}

func (r *commentRepository) UpdateOwned(ctx context.Context, commentID, ownerID, content string) (*entity.Comment, error) {
	res := r.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("id = ? AND owner_id = ?", commentID, ownerID).
		Update("content", content)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var commentModel model.CommentModel
	if err := r.db.WithContext(ctx).Where("id = ?", commentID).First(&commentModel).Error; err != nil {
		return nil, err
	}
	return ToCommentEntity(&commentModel), nil
}

func (r *commentRepository) DeleteOwned(ctx context.Context, commentID, ownerID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", commentID, ownerID).
		Delete(&model.CommentModel{})
	return res.RowsAffected, res.Error
}
