package server

import (
	"time"

	"clipstream/domain/repository"
	"clipstream/infrastructure/realtime"
	httpHandler "clipstream/interfaces/http"
	"clipstream/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(
	userHandler httpHandler.IUserHandler,
	videoHandler httpHandler.IVideoHandler,
	campaignHandler httpHandler.ICampaignHandler,
	discoveryHandler httpHandler.IDiscoveryHandler,
	googleOAuthHandler httpHandler.IGoogleOAuthHandler,
	announcementHub *realtime.Hub,
	userRepository repository.IUser,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200", "http://localhost:5173", "https://localhost:4200", "https://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.POST("/login", userHandler.Login)
	router.POST("/register", userHandler.Register)

	// OAuth authentication routes
	if googleOAuthHandler != nil {
		router.GET("/auth/google", googleOAuthHandler.GetAuthURL)
		router.GET("/auth/google/callback", googleOAuthHandler.HandleCallback)
	}

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("api")
	api.Use(middleware.Auth(userRepository))

	videos := api.Group("/videos")
	{
		videos.GET("", videoHandler.ListVideos)
		videos.POST("", videoHandler.CreateVideo)
		videos.GET("/:videoId", videoHandler.GetVideo)
		videos.DELETE("/:videoId", videoHandler.DeleteVideo)
		videos.POST("/:videoId/view", videoHandler.RecordView)
		videos.POST("/:videoId/like", videoHandler.Like)
		videos.DELETE("/:videoId/like", videoHandler.Unlike)
		videos.GET("/:videoId/comments", videoHandler.ListComments)
		videos.POST("/:videoId/comments", videoHandler.AddComment)
		videos.DELETE("/:videoId/comments/:commentId", videoHandler.DeleteComment)
	}

	campaigns := api.Group("/campaigns")
	{
		campaigns.GET("", campaignHandler.ListCampaigns)
		campaigns.POST("", campaignHandler.CreateCampaign)
		campaigns.GET("/announcements", campaignHandler.Announcements)
		campaigns.GET("/stream", announcementHub.Serve)
		campaigns.POST("/rotation", campaignHandler.Rotate)
		campaigns.GET("/:campaignId", campaignHandler.GetCampaign)
		campaigns.POST("/:campaignId/videos/:videoId", campaignHandler.AttachVideo)
		campaigns.GET("/:campaignId/leaderboard", campaignHandler.Leaderboard)
		campaigns.GET("/:campaignId/upnext", campaignHandler.UpNext)
	}

	discovery := api.Group("/discovery")
	{
		discovery.GET("/top-creators", discoveryHandler.TopCreators)
		discovery.GET("/trending-hashtags", discoveryHandler.TrendingHashtags)
	}

	users := api.Group("/users")
	{
		users.POST("/:userId/follow", discoveryHandler.Follow)
		users.DELETE("/:userId/follow", discoveryHandler.Unfollow)
		users.GET("/:userId/followers", discoveryHandler.FollowerCount)
	}

	return router
}
