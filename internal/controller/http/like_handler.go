package http

import (
	"net/http"

	"github.com/jpviradiya/iTube/internal/entity"
	"github.com/jpviradiya/iTube/internal/usecase"
	"github.com/jpviradiya/iTube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeUseCase usecase.LikeUseCase
	logger      *logger.Logger
}

func NewLikeHandler(likeUseCase usecase.LikeUseCase, logger *logger.Logger) *LikeHandler {
	return &LikeHandler{likeUseCase: likeUseCase, logger: logger}
}

func (h *LikeHandler) ToggleVideoLike(c *gin.Context) {
	h.toggle(c, c.Param("videoId"), entity.LikeTargetVideo)
}

func (h *LikeHandler) ToggleCommentLike(c *gin.Context) {
	h.toggle(c, c.Param("commentId"), entity.LikeTargetComment)
}

func (h *LikeHandler) ToggleTweetLike(c *gin.Context) {
	h.toggle(c, c.Param("tweetId"), entity.LikeTargetTweet)
}

func (h *LikeHandler) toggle(c *gin.Context, targetID string, kind entity.LikeTarget) {
	userID := c.GetString("user_id")

	result, err := h.likeUseCase.Toggle(c.Request.Context(), userID, targetID, kind)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, result, result.Message)
}

func (h *LikeHandler) LikedVideos(c *gin.Context) {
	userID := c.GetString("user_id")

	videos, err := h.likeUseCase.LikedVideos(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"videos": videos, "count": len(videos)}, "liked videos fetched successfully")
}
