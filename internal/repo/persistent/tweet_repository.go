package persistent

import (
	"context"

	"github.com/jpviradiya/iTube/internal/entity"
	"github.com/jpviradiya/iTube/internal/model"

	"gorm.io/gorm"
)

type TweetRepository interface {
	Create(ctx context.Context, tweet *entity.Tweet) error
	Exists(ctx context.Context, id string) (bool, error)
	ListForOwner(ctx context.Context, ownerID string, params entity.PageParams) ([]*entity.Tweet, int64, error)
	UpdateOwned(ctx context.Context, tweetID, ownerID, content string) (*entity.Tweet, error)
	DeleteOwned(ctx context.Context, tweetID, ownerID string) (int64, error)
}

type tweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) TweetRepository {
	return &tweetRepository{db: db}
}

func (r *tweetRepository) Create(ctx context.Context, tweet *entity.Tweet) error {
	tweetModel := &model.TweetModel{
		ID:      tweet.ID,
		OwnerID: tweet.OwnerID,
		Content: tweet.Content,
	}
	if err := r.db.WithContext(ctx).Create(tweetModel).Error; err != nil {
		return err
	}
	*tweet = *ToTweetEntity(tweetModel)
	return nil
}

func (r *tweetRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TweetModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *tweetRepository) ListForOwner(ctx context.Context, ownerID string, params entity.PageParams) ([]*entity.Tweet, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.TweetModel{}).Where("owner_id = ?", ownerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tweetModels []model.TweetModel
	err := query.
		Preload("Owner").
		Order("updated_at DESC").
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&tweetModels).Error
	if err != nil {
		return nil, 0, err
	}

	tweets := make([]*entity.Tweet, len(tweetModels))
	for i := range tweetModels {
		tweets[i] = ToTweetEntity(&tweetModels[i])
	}
	return tweets, total, nil
}

func (r *tweetRepository) UpdateOwned(ctx context.Context, tweetID, ownerID, content string) (*entity.Tweet, error) {
	res := r.db.WithContext(ctx).
		Model(&model.TweetModel{}).
		Where("id = ? AND owner_id = ?", tweetID, ownerID).
		Update("content", content)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var tweetModel model.TweetModel
	if err := r.db.WithContext(ctx).Where("id = ?", tweetID).First(&tweetModel).Error; err != nil {
		return nil, err
	}
	return ToTweetEntity(&tweetModel), nil
}

func (r *tweetRepository) DeleteOwned(ctx context.Context, tweetID, ownerID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", tweetID, ownerID).
		Delete(&model.TweetModel{})
	return res.RowsAffected, res.Error
}
