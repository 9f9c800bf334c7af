package http

import (
	"net/http"

	"github.com/jpviradiya/iTube/internal/entity"
	"github.com/jpviradiya/iTube/internal/usecase"
	"github.com/jpviradiya/iTube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type TweetHandler struct {
	tweetUseCase usecase.TweetUseCase
	logger       *logger.Logger
}

func NewTweetHandler(tweetUseCase usecase.TweetUseCase, logger *logger.Logger) *TweetHandler {
	return &TweetHandler{tweetUseCase: tweetUseCase, logger: logger}
}

type TweetRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *TweetHandler) Create(c *gin.Context) {
	userID := c.GetString("user_id")

	var req TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, entity.ErrValidation("content is required", err.Error()))
		return
	}

	tweet, err := h.tweetUseCase.Create(c.Request.Context(), userID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, tweet, "tweet created successfully")
}

// ListForUser pages through one author's tweets. The author defaults
// to the acting user when no userId query parameter is given.
func (h *TweetHandler) ListForUser(c *gin.Context) {
	params := pageParamsFromQuery(c)

	ownerID := params.OwnerID
	if ownerID == "" {
		ownerID = c.GetString("user_id")
	}

	tweets, meta, err := h.tweetUseCase.ListForUser(c.Request.Context(), ownerID, params)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, pagedData("tweets", tweets, meta), "tweets fetched successfully")
}

func (h *TweetHandler) Update(c *gin.Context) {
	tweetID := c.Param("tweetId")
	userID := c.GetString("user_id")

	var req TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, entity.ErrValidation("content is required", err.Error()))
		return
	}

	tweet, err := h.tweetUseCase.Update(c.Request.Context(), tweetID, userID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, tweet, "tweet updated successfully")
}

func (h *TweetHandler) Delete(c *gin.Context) {
	tweetID := c.Param("tweetId")
	userID := c.GetString("user_id")

	if err := h.tweetUseCase.Delete(c.Request.Context(), tweetID, userID); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, nil, "tweet deleted successfully")
}
