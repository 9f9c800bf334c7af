package persistent

import (
	"github.com/jpviradiya/iTube/internal/entity"
	"github.com/jpviradiya/iTube/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}
	return &entity.User{
		ID:            m.ID,
		Username:      m.Username,
		Email:         m.Email,
		Password:      m.Password,
		FullName:      m.FullName,
		AvatarURL:     m.AvatarURL,
		CoverImageURL: m.CoverImageURL,
		RefreshToken:  m.RefreshToken,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}
	return &model.UserModel{
		ID:            e.ID,
		Username:      e.Username,
		Email:         e.Email,
		Password:      e.Password,
		FullName:      e.FullName,
		AvatarURL:     e.AvatarURL,
		CoverImageURL: e.CoverImageURL,
		RefreshToken:  e.RefreshToken,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func toOwner(m *model.UserModel) *entity.Owner {
	if m == nil || m.ID == "" {
		return nil
	}
	return &entity.Owner{
		ID:        m.ID,
		Username:  m.Username,
		FullName:  m.FullName,
		AvatarURL: m.AvatarURL,
	}
}

func ToVideoEntity(m *model.VideoModel) *entity.Video {
	if m == nil {
		return nil
	}
	return &entity.Video{
		ID:           m.ID,
		OwnerID:      m.OwnerID,
		Title:        m.Title,
		Description:  m.Description,
		VideoURL:     m.VideoURL,
		ThumbnailURL: m.ThumbnailURL,
		Duration:     m.Duration,
		IsPublished:  m.IsPublished,
		Views:        m.Views,
		Owner:        toOwner(&m.Owner),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToVideoModel(e *entity.Video) *model.VideoModel {
	if e == nil {
		return nil
	}
	return &model.VideoModel{
		ID:           e.ID,
		OwnerID:      e.OwnerID,
		Title:        e.Title,
		Description:  e.Description,
		VideoURL:     e.VideoURL,
		ThumbnailURL: e.ThumbnailURL,
		Duration:     e.Duration,
		IsPublished:  e.IsPublished,
		Views:        e.Views,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func toVideoEntities(models []model.VideoModel) []*entity.Video {
	videos := make([]*entity.Video, len(models))
	for i := range models {
		videos[i] = ToVideoEntity(&models[i])
	}
	return videos
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}
	return &entity.Comment{
		ID:        m.ID,
		VideoID:   m.VideoID,
		OwnerID:   m.OwnerID,
		Content:   m.Content,
		Owner:     toOwner(&m.Owner),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToTweetEntity(m *model.TweetModel) *entity.Tweet {
	if m == nil {
		return nil
	}
	return &entity.Tweet{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Content:   m.Content,
		Owner:     toOwner(&m.Owner),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToLikeEntity(m *model.LikeModel) *entity.Like {
	if m == nil {
		return nil
	}
	return &entity.Like{
		ID:         m.ID,
		UserID:     m.UserID,
		TargetID:   m.TargetID,
		TargetKind: entity.LikeTarget(m.TargetKind),
		CreatedAt:  m.CreatedAt,
	}
}

func ToSubscriptionEntity(m *model.SubscriptionModel) *entity.Subscription {
	if m == nil {
		return nil
	}
	return &entity.Subscription{
		ID:           m.ID,
		SubscriberID: m.SubscriberID,
		ChannelID:    m.ChannelID,
		Subscriber:   toOwner(&m.Subscriber),
		Channel:      toOwner(&m.Channel),
		CreatedAt:    m.CreatedAt,
	}
}

func ToPlaylistEntity(m *model.PlaylistModel) *entity.Playlist {
	if m == nil {
		return nil
	}
	return &entity.Playlist{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Description: m.Description,
		Owner:       toOwner(&m.Owner),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
