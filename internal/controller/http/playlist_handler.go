package http

import (
	"net/http"

	"github.com/jpviradiya/iTube/internal/entity"
	"github.com/jpviradiya/iTube/internal/usecase"
	"github.com/jpviradiya/iTube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PlaylistHandler struct {
	playlistUseCase usecase.PlaylistUseCase
	logger          *logger.Logger
}

func NewPlaylistHandler(playlistUseCase usecase.PlaylistUseCase, logger *logger.Logger) *PlaylistHandler {
	return &PlaylistHandler{playlistUseCase: playlistUseCase, logger: logger}
}

type CreatePlaylistRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (h *PlaylistHandler) Create(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, entity.ErrValidation("name and description are required", err.Error()))
		return
	}

	playlist, err := h.playlistUseCase.Create(c.Request.Context(), userID, req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, playlist, "playlist created successfully")
}

func (h *PlaylistHandler) Get(c *gin.Context) {
	playlistID := c.Param("playlistId")

	playlist, err := h.playlistUseCase.Get(c.Request.Context(), playlistID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, playlist, "playlist fetched successfully")
}

func (h *PlaylistHandler) ListForUser(c *gin.Context) {
	ownerID := c.Param("userId")

	playlists, err := h.playlistUseCase.ListForUser(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"playlists": playlists, "count": len(playlists)}, "playlists fetched successfully")
}

type UpdatePlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *PlaylistHandler) Update(c *gin.Context) {
	playlistID := c.Param("playlistId")
	userID := c.GetString("user_id")

	var req UpdatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, entity.ErrValidation("invalid request body", err.Error()))
		return
	}

	playlist, err := h.playlistUseCase.Update(c.Request.Context(), playlistID, userID, req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, playlist, "playlist updated successfully")
}

func (h *PlaylistHandler) Delete(c *gin.Context) {
	playlistID := c.Param("playlistId")
	userID := c.GetString("user_id")

	if err := h.playlistUseCase.Delete(c.Request.Context(), playlistID, userID); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, nil, "playlist deleted successfully")
}

func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	playlistID := c.Param("playlistId")
	videoID := c.Param("videoId")
	userID := c.GetString("user_id")

	playlist, err := h.playlistUseCase.AddVideo(c.Request.Context(), playlistID, videoID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, playlist, "video added to playlist")
}

func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	playlistID := c.Param("playlistId")
	videoID := c.Param("videoId")
	userID := c.GetString("user_id")

	playlist, err := h.playlistUseCase.RemoveVideo(c.Request.Context(), playlistID, videoID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, playlist, "video removed from playlist")
}
