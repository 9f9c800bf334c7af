package http

import (
	"net/http"
	"strconv"

	"github.com/jpviradiya/iTube/internal/entity"
	"github.com/jpviradiya/iTube/internal/usecase"
	"github.com/jpviradiya/iTube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoUseCase usecase.VideoUseCase
	logger       *logger.Logger
}

func NewVideoHandler(videoUseCase usecase.VideoUseCase, logger *logger.Logger) *VideoHandler {
	return &VideoHandler{videoUseCase: videoUseCase, logger: logger}
}

func (h *VideoHandler) List(c *gin.Context) {
	params := pageParamsFromQuery(c)

	videos, meta, err := h.videoUseCase.List(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, pagedData("videos", videos, meta), "videos fetched successfully")
}

type PublishVideoRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
}

func (h *VideoHandler) Publish(c *gin.Context) {
	userID := c.GetString("user_id")

	var req PublishVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, entity.ErrValidation("all fields are required", err.Error()))
		return
	}

	videoFile, videoClose, err := assetUploadFromForm(c, "videoFile")
	if err != nil {
		respondError(c, entity.ErrValidation("video file is required"))
		return
	}
	defer videoClose()

	thumbnail, thumbClose, err := assetUploadFromForm(c, "thumbnail")
	if err != nil {
		respondError(c, entity.ErrValidation("thumbnail is required"))
		return
	}
	defer thumbClose()

	duration, _ := strconv.ParseFloat(c.PostForm("duration"), 64)

	video, err := h.videoUseCase.Publish(c.Request.Context(), usecase.PublishInput{
		OwnerID:     userID,
		Title:       req.Title,
		Description: req.Description,
		Duration:    duration,
		VideoFile:   videoFile,
		Thumbnail:   thumbnail,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, video, "video published successfully")
}

func (h *VideoHandler) Get(c *gin.Context) {
	videoID := c.Param("videoId")
	viewerID := c.GetString("user_id")

	video, err := h.videoUseCase.Get(c.Request.Context(), videoID, viewerID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, video, "video fetched successfully")
}

type UpdateVideoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h *VideoHandler) Update(c *gin.Context) {
	videoID := c.Param("videoId")
	userID := c.GetString("user_id")

	var req UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, entity.ErrValidation("invalid request body", err.Error()))
		return
	}

	video, err := h.videoUseCase.UpdateDetails(c.Request.Context(), videoID, userID, req.Title, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, video, "video updated successfully")
}

func (h *VideoHandler) UpdateThumbnail(c *gin.Context) {
	videoID := c.Param("videoId")
	userID := c.GetString("user_id")

	upload, closeFn, err := assetUploadFromForm(c, "thumbnail")
	if err != nil {
		respondError(c, entity.ErrValidation("thumbnail file is missing"))
		return
	}
	defer closeFn()

	video, err := h.videoUseCase.UpdateThumbnail(c.Request.Context(), videoID, userID, *upload)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, video, "thumbnail updated successfully")
}

func (h *VideoHandler) Delete(c *gin.Context) {
	videoID := c.Param("videoId")
	userID := c.GetString("user_id")

	if err := h.videoUseCase.Delete(c.Request.Context(), videoID, userID); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, nil, "video deleted successfully")
}

func (h *VideoHandler) TogglePublish(c *gin.Context) {
	videoID := c.Param("videoId")
	userID := c.GetString("user_id")

	isPublished, err := h.videoUseCase.TogglePublish(c.Request.Context(), videoID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"isPublished": isPublished}, "publish status toggled successfully")
}
