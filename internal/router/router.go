package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"community-board-api/internal/handler"
	"community-board-api/internal/metrics"
	"community-board-api/internal/middleware"
	"community-board-api/internal/repository"
	"community-board-api/internal/service"
)

// Config holds router configuration
type Config struct {
	DB                    *gorm.DB
	Redis                 *redis.Client
	Logger                *zap.Logger
	Metrics               *metrics.Metrics
	JWTSecret             string
	BasePath              string
	AllowedOrigins        []string
	UnreadCacheTTL        time.Duration
	NotificationRetention time.Duration
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.Metrics(cfg.Metrics))

	// Prometheus metrics endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "community-board-api"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if cfg.DB == nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "community-board-api"})
			return
		}
		sqlDB, err := cfg.DB.DB()
		if err != nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "community-board-api"})
			return
		}
		if err := sqlDB.Ping(); err != nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "community-board-api"})
			return
		}
		c.JSON(200, gin.H{"status": "ready", "service": "community-board-api"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Initialize repositories
	userRepo := repository.NewUserRepository(cfg.DB)
	postRepo := repository.NewPostRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)
	postLikeRepo := repository.NewPostLikeRepository(cfg.DB)
	commentLikeRepo := repository.NewCommentLikeRepository(cfg.DB)
	scrapRepo := repository.NewScrapRepository(cfg.DB)
	notificationRepo := repository.NewNotificationRepository(cfg.DB)

	// Initialize services
	notificationService := service.NewNotificationService(
		notificationRepo,
		cfg.Redis,
		cfg.UnreadCacheTTL,
		cfg.NotificationRetention,
		cfg.Metrics,
		cfg.Logger,
	)
	userService := service.NewUserService(userRepo, cfg.Logger)
	postService := service.NewPostService(postRepo, commentRepo, commentLikeRepo, cfg.Metrics, cfg.Logger)
	commentService := service.NewCommentService(
		commentRepo,
		postRepo,
		userRepo,
		commentLikeRepo,
		notificationService,
		cfg.Metrics,
		cfg.Logger,
	)
	likeService := service.NewLikeService(
		postLikeRepo,
		commentLikeRepo,
		postRepo,
		commentRepo,
		userRepo,
		notificationService,
		cfg.Logger,
	)
	scrapService := service.NewScrapService(scrapRepo, postRepo, cfg.Logger)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)
	likeHandler := handler.NewLikeHandler(likeService)
	scrapHandler := handler.NewScrapHandler(scrapService)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	// API routes group
	api := r.Group(cfg.BasePath)

	auth := middleware.Auth(cfg.JWTSecret)
	optionalAuth := middleware.OptionalAuth(cfg.JWTSecret)

	// ============================================================
	// User routes
	// ============================================================
	users := api.Group("/users")
	{
		users.POST("", userHandler.Register)
		users.GET("/checkId", userHandler.CheckUserID)
		users.GET("/checkNickname", userHandler.CheckNickname)
		users.GET("/me", auth, userHandler.GetMe)
		users.PATCH("/me", auth, userHandler.UpdateMe)
		users.DELETE("/me", auth, userHandler.DeleteMe)
		users.GET("/:userId/photo", userHandler.GetProfilePicture)
		users.PUT("/me/photo", auth, userHandler.UpdateProfilePicture)
		users.GET("/me/posts", auth, postHandler.MyPosts)
		users.GET("/me/comments", auth, commentHandler.MyComments)
		users.GET("/me/scraps", auth, scrapHandler.MyScraps)
	}

	// ============================================================
	// Post routes
	// ============================================================
	posts := api.Group("/posts")
	{
		posts.GET("", optionalAuth, postHandler.ListPosts)
		posts.POST("", auth, postHandler.CreatePost)
		posts.GET("/:postId", optionalAuth, postHandler.GetPost)
		posts.PATCH("/:postId", auth, postHandler.UpdatePost)
		posts.DELETE("/:postId", auth, postHandler.DeletePost)

		posts.POST("/:postId/like", auth, likeHandler.LikePost)
		posts.DELETE("/:postId/like", auth, likeHandler.UnlikePost)
		posts.POST("/:postId/scrap", auth, scrapHandler.ScrapPost)
		posts.DELETE("/:postId/scrap", auth, scrapHandler.UnscrapPost)

		posts.GET("/:postId/comments", optionalAuth, commentHandler.ListComments)
		posts.POST("/:postId/comments", auth, commentHandler.CreateComment)
		posts.PATCH("/:postId/comments/:commentId", auth, commentHandler.UpdateComment)
		posts.DELETE("/:postId/comments/:commentId", auth, commentHandler.DeleteComment)
		posts.POST("/:postId/comments/:commentId/likes", auth, likeHandler.LikeComment)
		posts.DELETE("/:postId/comments/:commentId/likes", auth, likeHandler.UnlikeComment)
	}

	// ============================================================
	// Notification routes
	// ============================================================
	notifications := api.Group("/notifications")
	notifications.Use(auth)
	{
		notifications.GET("", notificationHandler.ListNotifications)
		notifications.PUT("/:notificationId/read", notificationHandler.MarkRead)
		notifications.PUT("/read-all", notificationHandler.MarkAllRead)
		notifications.GET("/unread-count", notificationHandler.UnreadCount)
	}

	return r
}
