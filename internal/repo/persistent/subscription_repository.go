package persistent

import (
	"context"

	"github.com/jpviradiya/iTube/internal/entity"
	"github.com/jpviradiya/iTube/internal/model"

	"gorm.io/gorm"
)

type SubscriptionRepository interface {
	// Create returns gorm.ErrDuplicatedKey when the edge already
	// exists (compound unique index on subscriber + channel).
	Create(ctx context.Context, sub *entity.Subscription) error
	Delete(ctx context.Context, subscriberID, channelID string) (int64, error)
	IsSubscribed(ctx context.Context, subscriberID, channelID string) (bool, error)
	CountSubscribers(ctx context.Context, channelID string) (int64, error)
	CountSubscribedTo(ctx context.Context, subscriberID string) (int64, error)
	ListSubscribers(ctx context.Context, channelID string) ([]*entity.Subscription, error)
	ListChannels(ctx context.Context, subscriberID string) ([]*entity.Subscription, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(ctx context.Context, sub *entity.Subscription) error {
	subModel := &model.SubscriptionModel{
		ID:           sub.ID,
		SubscriberID: sub.SubscriberID,
		ChannelID:    sub.ChannelID,
	}
	if err := r.db.WithContext(ctx).Create(subModel).Error; err != nil {
		return err
	}
	*sub = *ToSubscriptionEntity(subModel)
	return nil
}

func (r *subscriptionRepository) Delete(ctx context.Context, subscriberID, channelID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&model.SubscriptionModel{})
	return res.RowsAffected, res.Error
}

func (r *subscriptionRepository) IsSubscribed(ctx context.Context, subscriberID, channelID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Count(&count).Error
	return count > 0, err
}

func (r *subscriptionRepository) CountSubscribers(ctx context.Context, channelID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("channel_id = ?", channelID).
		Count(&count).Error
	return count, err
}

func (r *subscriptionRepository) CountSubscribedTo(ctx context.Context, subscriberID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("subscriber_id = ?", subscriberID).
		Count(&count).Error
	return count, err
}

func (r *subscriptionRepository) ListSubscribers(ctx context.Context, channelID string) ([]*entity.Subscription, error) {
	var subModels []model.SubscriptionModel
	err := r.db.WithContext(ctx).
		Preload("Subscriber").
		Where("channel_id = ?", channelID).
		Order("created_at DESC").
		Find(&subModels).Error
	if err != nil {
		return nil, err
	}
	return toSubscriptionEntities(subModels), nil
}

func (r *subscriptionRepository) ListChannels(ctx context.Context, subscriberID string) ([]*entity.Subscription, error) {
	var subModels []model.SubscriptionModel
	err := r.db.WithContext(ctx).
		Preload("Channel").
		Where("subscriber_id = ?", subscriberID).
		Order("created_at DESC").
		Find(&subModels).Error
	if err != nil {
		return nil, err
	}
	return toSubscriptionEntities(subModels), nil
}

func toSubscriptionEntities(models []model.SubscriptionModel) []*entity.Subscription {
	subs := make([]*entity.Subscription, len(models))
	for i := range models {
		subs[i] = ToSubscriptionEntity(&models[i])
	}
	return subs
}
