package persistent

import (
	"context"
	"time"

	"github.com/jpviradiya/iTube/internal/entity"
	"github.com/jpviradiya/iTube/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	UpdateFields(ctx context.Context, userID string, fields map[string]interface{}) (*entity.User, error)
	SetRefreshToken(ctx context.Context, userID, token string) error
	RotateRefreshToken(ctx context.Context, userID, oldToken, newToken string) (int64, error)
	AddWatchHistory(ctx context.Context, userID, videoID string) error
	WatchHistory(ctx context.Context, userID string) ([]*entity.Video, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := ToUserModel(user)
	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		return err
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Save(ToUserModel(user)).Error
}

func (r *userRepository) UpdateFields(ctx context.Context, userID string, fields map[string]interface{}) (*entity.User, error) {
	res := r.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", userID).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, userID)
}

func (r *userRepository) SetRefreshToken(ctx context.Context, userID, token string) error {
	return r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("refresh_token", token).Error
}

// RotateRefreshToken swaps the stored refresh token only if it still
// holds oldToken. A zero row count means a concurrent refresh already
// rotated it; the caller treats that as token reuse.
func (r *userRepository) RotateRefreshToken(ctx context.Context, userID, oldToken, newToken string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND refresh_token = ?", userID, oldToken).
		Update("refresh_token", newToken)
	return res.RowsAffected, res.Error
}

func (r *userRepository) AddWatchHistory(ctx context.Context, userID, videoID string) error {
	row := &model.WatchHistoryModel{
		UserID:    userID,
		VideoID:   videoID,
		WatchedAt: time.Now(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"watched_at"}),
		}).
		Create(row).Error
}

func (r *userRepository) WatchHistory(ctx context.Context, userID string) ([]*entity.Video, error) {
	var videoModels []model.VideoModel
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Joins("JOIN watch_history ON watch_history.video_id = videos.id").
		Where("watch_history.user_id = ?", userID).
		Order("watch_history.watched_at DESC").
		Find(&videoModels).Error
	if err != nil {
		return nil, err
	}
	return toVideoEntities(videoModels), nil
}
