package http

import (
	"context"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/jpviradiya/iTube/internal/entity"
	"github.com/jpviradiya/iTube/internal/usecase"
	"github.com/jpviradiya/iTube/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	accessCookieName  = "accessToken"
	refreshCookieName = "refreshToken"
)

type UserHandler struct {
	userUseCase  usecase.UserUseCase
	accessTTL    time.Duration
	refreshTTL   time.Duration
	cookieSecure bool
	logger       *logger.Logger
}

func NewUserHandler(userUseCase usecase.UserUseCase, accessTTL, refreshTTL time.Duration, cookieSecure bool, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userUseCase:  userUseCase,
		accessTTL:    accessTTL,
		refreshTTL:   refreshTTL,
		cookieSecure: cookieSecure,
		logger:       logger,
	}
}

type RegisterRequest struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=6"`
	FullName string `form:"fullName" binding:"required"`
}

func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, entity.ErrValidation("all fields are required", err.Error()))
		return
	}

	avatar, avatarClose, err := assetUploadFromForm(c, "avatar")
	if err != nil {
		respondError(c, entity.ErrValidation("avatar is required"))
		return
	}
	defer avatarClose()

	input := usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Avatar:   avatar,
	}

	if cover, coverClose, err := assetUploadFromForm(c, "coverImage"); err == nil {
		defer coverClose()
		input.CoverImage = cover
	}

	user, err := h.userUseCase.Register(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, user, "user registered successfully")
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, entity.ErrValidation("email and password are required", err.Error()))
		return
	}

	user, accessToken, refreshToken, err := h.userUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookies(c, accessToken, refreshToken)

	respondOK(c, http.StatusOK, gin.H{
		"user":         user,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	}, "user logged in successfully")
}

func (h *UserHandler) Logout(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.userUseCase.Logout(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	h.clearSessionCookies(c)
	respondOK(c, http.StatusOK, nil, "user logged out successfully")
}

// Refresh accepts the rotation token from the cookie or, failing that,
// the request body.
func (h *UserHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookieName)
	if err != nil || refreshToken == "" {
		var body struct {
			RefreshToken string `json:"refreshToken"`
		}
		if err := c.ShouldBindJSON(&body); err == nil {
			refreshToken = body.RefreshToken
		}
	}

	newAccess, newRefresh, err := h.userUseCase.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookies(c, newAccess, newRefresh)

	respondOK(c, http.StatusOK, gin.H{
		"accessToken":  newAccess,
		"refreshToken": newRefresh,
	}, "access token refreshed")
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID := c.GetString("user_id")

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, entity.ErrValidation("old and new passwords are required", err.Error()))
		return
	}

	if err := h.userUseCase.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, nil, "password changed successfully")
}

func (h *UserHandler) CurrentUser(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := h.userUseCase.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, user, "current user fetched successfully")
}

type UpdateAccountRequest struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
}

func (h *UserHandler) UpdateAccount(c *gin.Context) {
	userID := c.GetString("user_id")

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, entity.ErrValidation("invalid request body", err.Error()))
		return
	}

	user, err := h.userUseCase.UpdateAccount(c.Request.Context(), userID, req.FullName, req.Username)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, user, "account details updated successfully")
}

func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	h.updateImage(c, "avatar", h.userUseCase.UpdateAvatar, "avatar updated successfully")
}

func (h *UserHandler) UpdateCoverImage(c *gin.Context) {
	h.updateImage(c, "coverImage", h.userUseCase.UpdateCoverImage, "cover image updated successfully")
}

func (h *UserHandler) updateImage(
	c *gin.Context,
	field string,
	update func(ctx context.Context, userID string, upload usecase.AssetUpload) (*entity.User, error),
	message string,
) {
	userID := c.GetString("user_id")

	upload, closeFn, err := assetUploadFromForm(c, field)
	if err != nil {
		respondError(c, entity.ErrValidation(field+" file is missing"))
		return
	}
	defer closeFn()

	user, err := update(c.Request.Context(), userID, *upload)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, user, message)
}

func (h *UserHandler) ChannelProfile(c *gin.Context) {
	username := c.Param("username")
	viewerID := c.GetString("user_id")

	profile, err := h.userUseCase.ChannelProfile(c.Request.Context(), username, viewerID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, profile, "channel profile fetched successfully")
}

func (h *UserHandler) WatchHistory(c *gin.Context) {
	userID := c.GetString("user_id")

	videos, err := h.userUseCase.WatchHistory(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, videos, "watch history fetched successfully")
}

func (h *UserHandler) setSessionCookies(c *gin.Context, accessToken, refreshToken string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(accessCookieName, accessToken, int(h.accessTTL.Seconds()), "/", "", h.cookieSecure, true)
	c.SetCookie(refreshCookieName, refreshToken, int(h.refreshTTL.Seconds()), "/", "", h.cookieSecure, true)
}

func (h *UserHandler) clearSessionCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(accessCookieName, "", -1, "/", "", h.cookieSecure, true)
	c.SetCookie(refreshCookieName, "", -1, "/", "", h.cookieSecure, true)
}

// assetUploadFromForm opens the named multipart file and adapts it for
// the usecase layer. The returned close func must be deferred by the
// caller.
func assetUploadFromForm(c *gin.Context, field string) (*usecase.AssetUpload, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, nil, err
	}
	return assetUploadFromHeader(header)
}

func assetUploadFromHeader(header *multipart.FileHeader) (*usecase.AssetUpload, func(), error) {
	file, err := header.Open()
	if err != nil {
		return nil, nil, err
	}
	upload := &usecase.AssetUpload{
		Reader:      file,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	}
	return upload, func() { file.Close() }, nil
}
