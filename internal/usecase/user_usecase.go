package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jpviradiya/iTube/internal/entity"
	"github.com/jpviradiya/iTube/internal/repo/persistent"
	"github.com/jpviradiya/iTube/pkg/jwt"
	"github.com/jpviradiya/iTube/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// assetOpTimeout bounds every call that crosses the media-store
// boundary; the original design had none.
const assetOpTimeout = 2 * time.Minute

type RegisterInput struct {
	Username   string
	Email      string
	Password   string
	FullName   string
	Avatar     *AssetUpload
	CoverImage *AssetUpload
}

type UserUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, string, error)
	Logout(ctx context.Context, userID string) error
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	UpdateAccount(ctx context.Context, userID, fullName, username string) (*entity.User, error)
	UpdateAvatar(ctx context.Context, userID string, upload AssetUpload) (*entity.User, error)
	UpdateCoverImage(ctx context.Context, userID string, upload AssetUpload) (*entity.User, error)
	ChannelProfile(ctx context.Context, username, viewerID string) (*entity.ChannelProfile, error)
	WatchHistory(ctx context.Context, userID string) ([]*entity.Video, error)
}

type userUseCase struct {
	userRepo persistent.UserRepository
	subRepo  persistent.SubscriptionRepository
	jwtSvc   *jwt.Service
	assets   AssetStore
	logger   *logger.Logger
}

func NewUserUseCase(
	userRepo persistent.UserRepository,
	subRepo persistent.SubscriptionRepository,
	jwtSvc *jwt.Service,
	assets AssetStore,
	logger *logger.Logger,
) UserUseCase {
	return &userUseCase{
		userRepo: userRepo,
		subRepo:  subRepo,
		jwtSvc:   jwtSvc,
		assets:   assets,
		logger:   logger,
	}
}

func (uc *userUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	username := strings.ToLower(strings.TrimSpace(input.Username))
	email := strings.ToLower(strings.TrimSpace(input.Email))
	fullName := strings.TrimSpace(input.FullName)

	if username == "" || email == "" || fullName == "" || strings.TrimSpace(input.Password) == "" {
		return nil, entity.ErrValidation("all fields are required")
	}
	if input.Avatar == nil {
		return nil, entity.ErrValidation("avatar is required")
	}

	if _, err := uc.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, entity.ErrConflict("user already exists")
	}
	if _, err := uc.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, entity.ErrConflict("user already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, entity.ErrInternal("failed to process registration")
	}

	avatarURL, err := uc.uploadAsset(ctx, "avatars", *input.Avatar)
	if err != nil {
		return nil, entity.ErrUpstream("failed to upload avatar")
	}

	coverURL := ""
	if input.CoverImage != nil {
		coverURL, err = uc.uploadAsset(ctx, "covers", *input.CoverImage)
		if err != nil {
			return nil, entity.ErrUpstream("failed to upload cover image")
		}
	}

	user := &entity.User{
		Username:      username,
		Email:         email,
		Password:      string(hashed),
		FullName:      fullName,
		AvatarURL:     avatarURL,
		CoverImageURL: coverURL,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		if isDuplicate(err) {
			return nil, entity.ErrConflict("user already exists")
		}
		uc.logger.Error("Failed to create user: %v", err)
		return nil, entity.ErrInternal("failed to create user")
	}

	return user.Sanitized(), nil
}

func (uc *userUseCase) Login(ctx context.Context, email, password string) (*entity.User, string, string, error) {
	if strings.TrimSpace(email) == "" {
		return nil, "", "", entity.ErrValidation("email is required")
	}

	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", "", entity.ErrNotFound("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", "", entity.ErrAuth("invalid password")
	}

	accessToken, refreshToken, err := uc.jwtSvc.GeneratePair(user.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token pair: %v", err)
		return nil, "", "", entity.ErrInternal("token generation failed")
	}

	if err := uc.userRepo.SetRefreshToken(ctx, user.ID, refreshToken); err != nil {
		uc.logger.Error("Failed to persist refresh token: %v", err)
		return nil, "", "", entity.ErrInternal("token generation failed")
	}

	return user.Sanitized(), accessToken, refreshToken, nil
}

// Logout clears the stored rotation token. Clearing an already empty
// field succeeds, so a second logout is a no-op.
func (uc *userUseCase) Logout(ctx context.Context, userID string) error {
	if err := uc.userRepo.SetRefreshToken(ctx, userID, ""); err != nil {
		uc.logger.Error("Failed to clear refresh token: %v", err)
		return entity.ErrInternal("logout failed")
	}
	return nil
}

// Refresh rotates the token pair. The incoming token must match the
// value currently stored on the user; a stale token means it was
// already rotated (or the session was revoked) and the whole flow
// fails instead of silently re-issuing.
func (uc *userUseCase) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", entity.ErrAuth("unauthorized request")
	}

	claims, err := uc.jwtSvc.ValidateToken(refreshToken, jwt.RefreshToken)
	if err != nil {
		return "", "", entity.ErrAuth("invalid refresh token")
	}

	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", entity.ErrAuth("invalid refresh token")
	}

	if user.RefreshToken != refreshToken {
		return "", "", entity.ErrAuth("refresh token is expired or used")
	}

	newAccess, newRefresh, err := uc.jwtSvc.GeneratePair(user.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token pair: %v", err)
		return "", "", entity.ErrInternal("token generation failed")
	}

	rows, err := uc.userRepo.RotateRefreshToken(ctx, user.ID, refreshToken, newRefresh)
	if err != nil {
		uc.logger.Error("Failed to rotate refresh token: %v", err)
		return "", "", entity.ErrInternal("token generation failed")
	}
	if rows == 0 {
		// A concurrent refresh won the rotation.
		return "", "", entity.ErrAuth("refresh token is expired or used")
	}

	return newAccess, newRefresh, nil
}

func (uc *userUseCase) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if strings.TrimSpace(newPassword) == "" {
		return entity.ErrValidation("new password is required")
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return entity.ErrNotFound("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return entity.ErrAuth("invalid current password")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return entity.ErrInternal("failed to update password")
	}

	if _, err := uc.userRepo.UpdateFields(ctx, userID, map[string]interface{}{"password": string(hashed)}); err != nil {
		uc.logger.Error("Failed to update password: %v", err)
		return entity.ErrInternal("failed to update password")
	}
	return nil
}

func (uc *userUseCase) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, entity.ErrNotFound("user not found")
	}
	return user.Sanitized(), nil
}

func (uc *userUseCase) UpdateAccount(ctx context.Context, userID, fullName, username string) (*entity.User, error) {
	fields := map[string]interface{}{}
	if strings.TrimSpace(fullName) != "" {
		fields["full_name"] = strings.TrimSpace(fullName)
	}
	if strings.TrimSpace(username) != "" {
		fields["username"] = strings.ToLower(strings.TrimSpace(username))
	}
	if len(fields) == 0 {
		return nil, entity.ErrValidation("no valid fields provided for update")
	}

	user, err := uc.userRepo.UpdateFields(ctx, userID, fields)
	if err != nil {
		if isDuplicate(err) {
			return nil, entity.ErrConflict("username already taken")
		}
		if isNotFound(err) {
			return nil, entity.ErrNotFound("user not found")
		}
		uc.logger.Error("Failed to update account: %v", err)
		return nil, entity.ErrInternal("failed to update account")
	}
	return user.Sanitized(), nil
}

func (uc *userUseCase) UpdateAvatar(ctx context.Context, userID string, upload AssetUpload) (*entity.User, error) {
	return uc.replaceImage(ctx, userID, "avatars", "avatar_url", upload, func(u *entity.User) string { return u.AvatarURL })
}

func (uc *userUseCase) UpdateCoverImage(ctx context.Context, userID string, upload AssetUpload) (*entity.User, error) {
	return uc.replaceImage(ctx, userID, "covers", "cover_image_url", upload, func(u *entity.User) string { return u.CoverImageURL })
}

// replaceImage uploads the new asset before touching the old one so a
// failed upload never leaves the user without an image.
func (uc *userUseCase) replaceImage(ctx context.Context, userID, prefix, column string, upload AssetUpload, current func(*entity.User) string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, entity.ErrNotFound("user not found")
	}

	newURL, err := uc.uploadAsset(ctx, prefix, upload)
	if err != nil {
		return nil, entity.ErrUpstream("failed to upload image")
	}

	updated, err := uc.userRepo.UpdateFields(ctx, userID, map[string]interface{}{column: newURL})
	if err != nil {
		uc.logger.Error("Failed to persist image url: %v", err)
		return nil, entity.ErrInternal("failed to update image")
	}

	if old := current(user); old != "" && old != newURL {
		deleteCtx, cancel := context.WithTimeout(ctx, assetOpTimeout)
		defer cancel()
		if err := uc.assets.Delete(deleteCtx, old); err != nil {
			uc.logger.Warn("Failed to delete old asset %s: %v", old, err)
		}
	}

	return updated.Sanitized(), nil
}

func (uc *userUseCase) ChannelProfile(ctx context.Context, username, viewerID string) (*entity.ChannelProfile, error) {
	if strings.TrimSpace(username) == "" {
		return nil, entity.ErrValidation("username is missing")
	}

	channel, err := uc.userRepo.GetByUsername(ctx, strings.ToLower(strings.TrimSpace(username)))
	if err != nil {
		return nil, entity.ErrNotFound("channel does not exist")
	}

	subscriberCount, err := uc.subRepo.CountSubscribers(ctx, channel.ID)
	if err != nil {
		uc.logger.Error("Failed to count subscribers: %v", err)
		return nil, entity.ErrInternal("failed to fetch channel profile")
	}
	subscribedToCount, err := uc.subRepo.CountSubscribedTo(ctx, channel.ID)
	if err != nil {
		uc.logger.Error("Failed to count subscribed channels: %v", err)
		return nil, entity.ErrInternal("failed to fetch channel profile")
	}

	isSubscribed := false
	if viewerID != "" {
		isSubscribed, _ = uc.subRepo.IsSubscribed(ctx, viewerID, channel.ID)
	}

	return &entity.ChannelProfile{
		ID:                channel.ID,
		Username:          channel.Username,
		FullName:          channel.FullName,
		Email:             channel.Email,
		AvatarURL:         channel.AvatarURL,
		CoverImageURL:     channel.CoverImageURL,
		SubscriberCount:   subscriberCount,
		SubscribedToCount: subscribedToCount,
		IsSubscribed:      isSubscribed,
	}, nil
}

func (uc *userUseCase) WatchHistory(ctx context.Context, userID string) ([]*entity.Video, error) {
	videos, err := uc.userRepo.WatchHistory(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to fetch watch history: %v", err)
		return nil, entity.ErrInternal("failed to fetch watch history")
	}
	return videos, nil
}

func (uc *userUseCase) uploadAsset(ctx context.Context, prefix string, upload AssetUpload) (string, error) {
	uploadCtx, cancel := context.WithTimeout(ctx, assetOpTimeout)
	defer cancel()

	key := fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), strings.ToLower(filepath.Ext(upload.Filename)))
	url, err := uc.assets.Upload(uploadCtx, key, upload.Reader, upload.ContentType)
	if err != nil {
		uc.logger.Error("Failed to upload asset %s: %v", key, err)
		return "", err
	}
	return url, nil
}
