package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	iTubeHTTP "github.com/jpviradiya/iTube/internal/controller/http"
	"github.com/jpviradiya/iTube/internal/repo/persistent"
	"github.com/jpviradiya/iTube/internal/usecase"
	"github.com/jpviradiya/iTube/pkg/config"
	"github.com/jpviradiya/iTube/pkg/jwt"
	"github.com/jpviradiya/iTube/pkg/logger"
	"github.com/jpviradiya/iTube/pkg/middleware"
	"github.com/jpviradiya/iTube/pkg/queue"
	"github.com/jpviradiya/iTube/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// handlerSet groups the HTTP handlers the router mounts.
type handlerSet struct {
	user         *iTubeHTTP.UserHandler
	video        *iTubeHTTP.VideoHandler
	comment      *iTubeHTTP.CommentHandler
	tweet        *iTubeHTTP.TweetHandler
	like         *iTubeHTTP.LikeHandler
	subscription *iTubeHTTP.SubscriptionHandler
	playlist     *iTubeHTTP.PlaylistHandler
}

// Run wires the whole service together and blocks until a shutdown
// signal arrives. Redis and RabbitMQ are optional; a nil client
// disables the feature it backs.
func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	// Repositories
	userRepo := persistent.NewUserRepository(db)
	videoRepo := persistent.NewVideoRepository(db)
	commentRepo := persistent.NewCommentRepository(db)
	tweetRepo := persistent.NewTweetRepository(db)
	likeRepo := persistent.NewLikeRepository(db)
	subRepo := persistent.NewSubscriptionRepository(db)
	playlistRepo := persistent.NewPlaylistRepository(db)

	var publisher usecase.NotificationPublisher
	if queueClient != nil {
		publisher = queueClient
	}

	// Use cases
	userUseCase := usecase.NewUserUseCase(userRepo, subRepo, jwtService, s3Client, log)
	videoUseCase := usecase.NewVideoUseCase(videoRepo, userRepo, s3Client, redisClient, log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, videoRepo, log)
	tweetUseCase := usecase.NewTweetUseCase(tweetRepo, userRepo, log)
	likeUseCase := usecase.NewLikeUseCase(likeRepo, videoRepo, commentRepo, tweetRepo, redisClient, publisher, log)
	subUseCase := usecase.NewSubscriptionUseCase(subRepo, userRepo, publisher, log)
	playlistUseCase := usecase.NewPlaylistUseCase(playlistRepo, videoRepo, userRepo, log)

	handlers := handlerSet{
		user:         iTubeHTTP.NewUserHandler(userUseCase, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, cfg.CookieSecure, log),
		video:        iTubeHTTP.NewVideoHandler(videoUseCase, log),
		comment:      iTubeHTTP.NewCommentHandler(commentUseCase, log),
		tweet:        iTubeHTTP.NewTweetHandler(tweetUseCase, log),
		like:         iTubeHTTP.NewLikeHandler(likeUseCase, log),
		subscription: iTubeHTTP.NewSubscriptionHandler(subUseCase, log),
		playlist:     iTubeHTTP.NewPlaylistHandler(playlistUseCase, log),
	}

	var rateLimit gin.HandlerFunc
	if redisClient != nil {
		rateLimit = middleware.RateLimitMiddleware(redisClient, 100, time.Minute)
	}

	r := newRouter(
		log,
		middleware.AuthMiddleware(jwtService, userRepo),
		middleware.OptionalAuthMiddleware(jwtService, userRepo),
		rateLimit,
		handlers,
	)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info("iTube service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down iTube service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	closers := []func() error{}
	if sqlDB, err := db.DB(); err == nil {
		closers = append(closers, sqlDB.Close)
	}
	if redisClient != nil {
		closers = append(closers, redisClient.Close)
	}
	if queueClient != nil {
		closers = append(closers, func() error {
			queueClient.Close()
			return nil
		})
	}

	stopServer(ctx, srv, log, closers...)

	log.Info("iTube service exited")
}

// newRouter mounts middleware and the full route table. A nil
// rateLimit disables rate limiting.
func newRouter(log *logger.Logger, auth, optionalAuth, rateLimit gin.HandlerFunc, h handlerSet) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("Panic recovered: %v", recovered)
		c.JSON(http.StatusInternalServerError, gin.H{
			"statusCode": http.StatusInternalServerError,
			"data":       nil,
			"message":    "internal server error",
			"success":    false,
			"errors":     []string{},
		})
	}))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	if rateLimit != nil {
		api.Use(rateLimit)
	}

	users := api.Group("/users")
	{
		users.POST("/register", h.user.Register)
		users.POST("/login", h.user.Login)
		users.POST("/refresh-token", h.user.Refresh)

		users.POST("/logout", auth, h.user.Logout)
		users.POST("/change-password", auth, h.user.ChangePassword)
		users.GET("/current-user", auth, h.user.CurrentUser)
		users.PATCH("/update-account", auth, h.user.UpdateAccount)
		users.PATCH("/avatar", auth, h.user.UpdateAvatar)
		users.PATCH("/cover-image", auth, h.user.UpdateCoverImage)
		users.GET("/channel/:username", optionalAuth, h.user.ChannelProfile)
		users.GET("/watch-history", auth, h.user.WatchHistory)
	}

	videos := api.Group("/videos")
	{
		videos.GET("", optionalAuth, h.video.List)
		videos.POST("/publish-video", auth, h.video.Publish)
		videos.GET("/:videoId", optionalAuth, h.video.Get)
		videos.PATCH("/:videoId", auth, h.video.Update)
		videos.PATCH("/:videoId/thumbnail", auth, h.video.UpdateThumbnail)
		videos.DELETE("/:videoId", auth, h.video.Delete)
		videos.PATCH("/:videoId/toggle-publish", auth, h.video.TogglePublish)
		videos.GET("/:videoId/comments", optionalAuth, h.comment.ListForVideo)
		videos.POST("/:videoId/comments", auth, h.comment.Add)
	}

	comments := api.Group("/comments", auth)
	{
		comments.PATCH("/:commentId", h.comment.Update)
		comments.DELETE("/:commentId", h.comment.Delete)
	}

	tweets := api.Group("/tweets", auth)
	{
		tweets.GET("", h.tweet.ListForUser)
		tweets.POST("", h.tweet.Create)
		tweets.PATCH("/:tweetId", h.tweet.Update)
		tweets.DELETE("/:tweetId", h.tweet.Delete)
	}

	likes := api.Group("/likes", auth)
	{
		likes.POST("/toggle/video/:videoId", h.like.ToggleVideoLike)
		likes.POST("/toggle/comment/:commentId", h.like.ToggleCommentLike)
		likes.POST("/toggle/tweet/:tweetId", h.like.ToggleTweetLike)
		likes.GET("/videos", h.like.LikedVideos)
	}

	subscriptions := api.Group("/subscriptions", auth)
	{
		subscriptions.POST("/channel/:channelId", h.subscription.Toggle)
		subscriptions.GET("/subscribers", h.subscription.Subscribers)
		subscriptions.GET("/channels", h.subscription.SubscribedChannels)
	}

	playlists := api.Group("/playlists")
	{
		playlists.POST("", auth, h.playlist.Create)
		playlists.GET("/user/:userId", optionalAuth, h.playlist.ListForUser)
		playlists.GET("/:playlistId", optionalAuth, h.playlist.Get)
		playlists.PATCH("/:playlistId", auth, h.playlist.Update)
		playlists.DELETE("/:playlistId", auth, h.playlist.Delete)
		playlists.POST("/:playlistId/videos/:videoId", auth, h.playlist.AddVideo)
		playlists.DELETE("/:playlistId/videos/:videoId", auth, h.playlist.RemoveVideo)
	}

	return r
}

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// stopServer drains in-flight requests before releasing the resources
// those requests may still be using.
func stopServer(ctx context.Context, srv shutdowner, log *logger.Logger, closers ...func() error) {
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}
	for _, close := range closers {
		if err := close(); err != nil {
			log.Error("Error closing resource: %v", err)
		}
	}
}
