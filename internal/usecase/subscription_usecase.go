package usecase

import (
	"context"

	"github.com/jpviradiya/iTube/internal/entity"
	"github.com/jpviradiya/iTube/internal/repo/persistent"
	"github.com/jpviradiya/iTube/pkg/logger"

	"github.com/google/uuid"
)

type SubscriptionUseCase interface {
	Toggle(ctx context.Context, subscriberID, channelID string) (*entity.ToggleResult, error)
	Subscribers(ctx context.Context, channelID string) ([]*entity.Subscription, int64, error)
	SubscribedChannels(ctx context.Context, subscriberID string) ([]*entity.Subscription, int64, error)
}

type subscriptionUseCase struct {
	subRepo     persistent.SubscriptionRepository
	userRepo    persistent.UserRepository
	queueClient NotificationPublisher
	logger      *logger.Logger
}

func NewSubscriptionUseCase(
	subRepo persistent.SubscriptionRepository,
	userRepo persistent.UserRepository,
	queueClient NotificationPublisher,
	logger *logger.Logger,
) SubscriptionUseCase {
	return &subscriptionUseCase{
		subRepo:     subRepo,
		userRepo:    userRepo,
		queueClient: queueClient,
		logger:      logger,
	}
}

// Toggle follows the same insert-first scheme as the like toggle: the
// compound unique index decides whether the edge existed.
func (uc *subscriptionUseCase) Toggle(ctx context.Context, subscriberID, channelID string) (*entity.ToggleResult, error) {
	if _, err := uuid.Parse(channelID); err != nil {
		return nil, entity.ErrValidation("invalid channel id")
	}
	if subscriberID == channelID {
		return nil, entity.ErrValidation("cannot subscribe to your own channel")
	}

	if _, err := uc.userRepo.GetByID(ctx, channelID); err != nil {
		return nil, entity.ErrNotFound("channel not found")
	}

	sub := &entity.Subscription{SubscriberID: subscriberID, ChannelID: channelID}
	err := uc.subRepo.Create(ctx, sub)
	switch {
	case err == nil:
		uc.notifySubscription(subscriberID, channelID)
		return &entity.ToggleResult{
			Message: "subscribed to channel",
			Action:  entity.ToggleAdded,
		}, nil
	case isDuplicate(err):
		if _, delErr := uc.subRepo.Delete(ctx, subscriberID, channelID); delErr != nil {
			uc.logger.Error("Failed to remove subscription: %v", delErr)
			return nil, entity.ErrInternal("failed to toggle subscription")
		}
		return &entity.ToggleResult{
			Message: "unsubscribed from channel",
			Action:  entity.ToggleRemoved,
		}, nil
	default:
		uc.logger.Error("Failed to create subscription: %v", err)
		return nil, entity.ErrInternal("failed to toggle subscription")
	}
}

func (uc *subscriptionUseCase) Subscribers(ctx context.Context, channelID string) ([]*entity.Subscription, int64, error) {
	subs, err := uc.subRepo.ListSubscribers(ctx, channelID)
	if err != nil {
		uc.logger.Error("Failed to list subscribers: %v", err)
		return nil, 0, entity.ErrInternal("failed to fetch subscribers")
	}
	count, err := uc.subRepo.CountSubscribers(ctx, channelID)
	if err != nil {
		uc.logger.Error("Failed to count subscribers: %v", err)
		return nil, 0, entity.ErrInternal("failed to fetch subscribers")
	}
	return subs, count, nil
}

func (uc *subscriptionUseCase) SubscribedChannels(ctx context.Context, subscriberID string) ([]*entity.Subscription, int64, error) {
	channels, err := uc.subRepo.ListChannels(ctx, subscriberID)
	if err != nil {
		uc.logger.Error("Failed to list subscribed channels: %v", err)
		return nil, 0, entity.ErrInternal("failed to fetch subscribed channels")
	}
	count, err := uc.subRepo.CountSubscribedTo(ctx, subscriberID)
	if err != nil {
		uc.logger.Error("Failed to count subscribed channels: %v", err)
		return nil, 0, entity.ErrInternal("failed to fetch subscribed channels")
	}
	return channels, count, nil
}

func (uc *subscriptionUseCase) notifySubscription(subscriberID, channelID string) {
	if uc.queueClient == nil {
		return
	}
	go func() {
		task := map[string]interface{}{
			"type":          "subscription",
			"user_id":       channelID,
			"subscriber_id": subscriberID,
		}
		if err := uc.queueClient.PublishNotificationTask(task); err != nil {
			uc.logger.Error("Failed to publish subscription notification: %v", err)
		}
	}()
}
