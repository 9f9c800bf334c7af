package http

import (
	"net/http"

	"github.com/jpviradiya/iTube/internal/usecase"
	"github.com/jpviradiya/iTube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subUseCase usecase.SubscriptionUseCase
	logger     *logger.Logger
}

func NewSubscriptionHandler(subUseCase usecase.SubscriptionUseCase, logger *logger.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{subUseCase: subUseCase, logger: logger}
}

func (h *SubscriptionHandler) Toggle(c *gin.Context) {
	userID := c.GetString("user_id")
	channelID := c.Param("channelId")

	result, err := h.subUseCase.Toggle(c.Request.Context(), userID, channelID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, result, result.Message)
}

// Subscribers lists who follows a channel, the acting user's own
// channel unless a channelId query parameter names another.
func (h *SubscriptionHandler) Subscribers(c *gin.Context) {
	channelID := c.Query("channelId")
	if channelID == "" {
		channelID = c.GetString("user_id")
	}

	subs, count, err := h.subUseCase.Subscribers(c.Request.Context(), channelID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"subscribers": subs, "count": count}, "subscribers fetched successfully")
}

func (h *SubscriptionHandler) SubscribedChannels(c *gin.Context) {
	subscriberID := c.GetString("user_id")

	channels, count, err := h.subUseCase.SubscribedChannels(c.Request.Context(), subscriberID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"channels": channels, "count": count}, "subscribed channels fetched successfully")
}
