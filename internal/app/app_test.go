package app

import (
	"context"
	"testing"

	"github.com/jpviradiya/iTube/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func passthrough(c *gin.Context) { c.Next() }

func TestNewRouter_RouteTable(t *testing.T) {
	r := newRouter(logger.New(), passthrough, passthrough, nil, handlerSet{})

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /healthz",

		"POST /api/v1/users/register",
		"POST /api/v1/users/login",
		"POST /api/v1/users/refresh-token",
		"POST /api/v1/users/logout",
		"POST /api/v1/users/change-password",
		"GET /api/v1/users/current-user",
		"PATCH /api/v1/users/update-account",
		"PATCH /api/v1/users/avatar",
		"PATCH /api/v1/users/cover-image",
		"GET /api/v1/users/channel/:username",
		"GET /api/v1/users/watch-history",

		"GET /api/v1/videos",
		"POST /api/v1/videos/publish-video",
		"GET /api/v1/videos/:videoId",
		"PATCH /api/v1/videos/:videoId",
		"PATCH /api/v1/videos/:videoId/thumbnail",
		"DELETE /api/v1/videos/:videoId",
		"PATCH /api/v1/videos/:videoId/toggle-publish",
		"GET /api/v1/videos/:videoId/comments",
		"POST /api/v1/videos/:videoId/comments",

		"PATCH /api/v1/comments/:commentId",
		"DELETE /api/v1/comments/:commentId",

		"GET /api/v1/tweets",
		"POST /api/v1/tweets",
		"PATCH /api/v1/tweets/:tweetId",
		"DELETE /api/v1/tweets/:tweetId",

		"POST /api/v1/likes/toggle/video/:videoId",
		"POST /api/v1/likes/toggle/comment/:commentId",
		"POST /api/v1/likes/toggle/tweet/:tweetId",
		"GET /api/v1/likes/videos",

		"POST /api/v1/subscriptions/channel/:channelId",
		"GET /api/v1/subscriptions/subscribers",
		"GET /api/v1/subscriptions/channels",

		"POST /api/v1/playlists",
		"GET /api/v1/playlists/user/:userId",
		"GET /api/v1/playlists/:playlistId",
		"PATCH /api/v1/playlists/:playlistId",
		"DELETE /api/v1/playlists/:playlistId",
		"POST /api/v1/playlists/:playlistId/videos/:videoId",
		"DELETE /api/v1/playlists/:playlistId/videos/:videoId",
	}

	for _, route := range expected {
		assert.True(t, registered[route], "missing route %s", route)
	}
	assert.Len(t, registered, len(expected))
}

type fakeServer struct {
	order *[]string
}

func (f *fakeServer) Shutdown(context.Context) error {
	*f.order = append(*f.order, "shutdown")
	return nil
}

func TestStopServer_DrainsBeforeClosing(t *testing.T) {
	var order []string
	closer := func(name string) func() error {
		return func() error {
			order = append(order, name)
			return nil
		}
	}

	stopServer(context.Background(), &fakeServer{order: &order}, logger.New(),
		closer("db"), closer("redis"), closer("queue"))

	assert.Equal(t, []string{"shutdown", "db", "redis", "queue"}, order)
}
