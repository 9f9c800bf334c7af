package http

import (
	"net/http"

	"github.com/jpviradiya/iTube/internal/entity"
	"github.com/jpviradiya/iTube/internal/usecase"
	"github.com/jpviradiya/iTube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{commentUseCase: commentUseCase, logger: logger}
}

type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *CommentHandler) Add(c *gin.Context) {
	videoID := c.Param("videoId")
	userID := c.GetString("user_id")

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, entity.ErrValidation("content is required", err.Error()))
		return
	}

	comment, err := h.commentUseCase.Add(c.Request.Context(), videoID, userID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, comment, "comment added successfully")
}

func (h *CommentHandler) ListForVideo(c *gin.Context) {
	videoID := c.Param("videoId")
	params := pageParamsFromQuery(c)

	comments, meta, err := h.commentUseCase.ListForVideo(c.Request.Context(), videoID, params)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, pagedData("comments", comments, meta), "comments fetched successfully")
}

func (h *CommentHandler) Update(c *gin.Context) {
	commentID := c.Param("commentId")
	userID := c.GetString("user_id")

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, entity.ErrValidation("content is required", err.Error()))
		return
	}

	comment, err := h.commentUseCase.Update(c.Request.Context(), commentID, userID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, comment, "comment updated successfully")
}

func (h *CommentHandler) Delete(c *gin.Context) {
	commentID := c.Param("commentId")
	userID := c.GetString("user_id")

	if err := h.commentUseCase.Delete(c.Request.Context(), commentID, userID); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, nil, "comment deleted successfully")
}
