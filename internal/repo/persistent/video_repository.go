package persistent

import (
	"context"
	"strings"

	"github.com/jpviradiya/iTube/internal/entity"
	"github.com/jpviradiya/iTube/internal/model"

	"gorm.io/gorm"
)

type VideoRepository interface {
	Create(ctx context.Context, video *entity.Video) error
	GetByID(ctx context.Context, id string) (*entity.Video, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, params entity.PageParams) ([]*entity.Video, int64, error)
	UpdateOwned(ctx context.Context, videoID, ownerID string, fields map[string]interface{}) (*entity.Video, error)
	GetOwned(ctx context.Context, videoID, ownerID string) (*entity.Video, error)
	DeleteOwned(ctx context.Context, videoID, ownerID string) (int64, error)
	IncrementViews(ctx context.Context, id string) error
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

// videoSortFields whitelists client-supplied sort columns.
var videoSortFields = map[string]string{
	"created_at": "created_at",
	"updated_at": "updated_at",
	"title":      "title",
	"duration":   "duration",
	"views":      "views",
}

func (r *videoRepository) Create(ctx context.Context, video *entity.Video) error {
	videoModel := ToVideoModel(video)
	if err := r.db.WithContext(ctx).Create(videoModel).Error; err != nil {
		return err
	}
	*video = *ToVideoEntity(videoModel)
	return nil
}

func (r *videoRepository) GetByID(ctx context.Context, id string) (*entity.Video, error) {
	var videoModel model.VideoModel
	if err := r.db.WithContext(ctx).Preload("Owner").Where("id = ?", id).First(&videoModel).Error; err != nil {
		return nil, err
	}
	return ToVideoEntity(&videoModel), nil
}

func (r *videoRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.VideoModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// List applies the owner filter, the case-insensitive free-text match
// over title and description, the whitelisted sort and the page slice.
// The total is counted independently of the slice.
func (r *videoRepository) List(ctx context.Context, params entity.PageParams) ([]*entity.Video, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.VideoModel{})

	if params.OwnerID != "" {
		query = query.Where("owner_id = ?", params.OwnerID)
	}
	if params.Query != "" {
		pattern := "%" + strings.ToLower(params.Query) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortField, ok := videoSortFields[params.SortBy]
	if !ok {
		sortField = "updated_at"
	}
	order := sortField + " DESC"
	if params.SortOrder == entity.SortAsc {
		order = sortField + " ASC"
	}

	var videoModels []model.VideoModel
	err := query.
		Preload("Owner").
		Order(order).
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&videoModels).Error
	if err != nil {
		return nil, 0, err
	}

	return toVideoEntities(videoModels), total, nil
}

func (r *videoRepository) GetOwned(ctx context.Context, videoID, ownerID string) (*entity.Video, error) {
	var videoModel model.VideoModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", videoID, ownerID).
		First(&videoModel).Error
	if err != nil {
		return nil, err
	}
	return ToVideoEntity(&videoModel), nil
}

func (r *videoRepository) UpdateOwned(ctx context.Context, videoID, ownerID string, fields map[string]interface{}) (*entity.Video, error) {
	res := r.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Where("id = ? AND owner_id = ?", videoID, ownerID).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, videoID)
}

func (r *videoRepository) DeleteOwned(ctx context.Context, videoID, ownerID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", videoID, ownerID).
		Delete(&model.VideoModel{})
	return res.RowsAffected, res.Error
}

func (r *videoRepository) IncrementViews(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Where("id = ?", id).
		Update("views", gorm.Expr("views + 1")).Error
}
