package routes

import (
	"github.com/evandev76/event-organizer-app/internal/api/handlers"
	"github.com/evandev76/event-organizer-app/internal/api/middleware"
	"github.com/evandev76/event-organizer-app/internal/auth"
	"github.com/evandev76/event-organizer-app/internal/cache"
	"github.com/evandev76/event-organizer-app/internal/config"
	"github.com/evandev76/event-organizer-app/internal/repository"
	"github.com/evandev76/event-organizer-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	inviteRepo := repository.NewInviteRepository(db)
	eventRepo := repository.NewEventRepository(db)
	pinnedEventRepo := repository.NewPinnedEventRepository(db)
	messageRepo := repository.NewChatMessageRepository(db)
	messageReactionRepo := repository.NewMessageReactionRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	commentReactionRepo := repository.NewCommentReactionRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	pollRepo := repository.NewPollRepository(db)

	// Initialize auth
	authService := auth.NewAuthService(cfg)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize services
	weatherCache := cache.New(cfg.RedisAddr, cfg.RedisPassword)
	userService := service.NewUserService(userRepo, authService, validator)
	groupService := service.NewGroupService(groupRepo, membershipRepo, inviteRepo, validator)
	eventService := service.NewEventService(groupRepo, membershipRepo, eventRepo, commentRepo, ratingRepo, validator)
	chatService := service.NewChatService(groupRepo, membershipRepo, messageRepo, messageReactionRepo, pinnedEventRepo, eventRepo)
	commentService := service.NewCommentService(groupRepo, membershipRepo, eventRepo, commentRepo, commentReactionRepo)
	ratingService := service.NewRatingService(groupRepo, membershipRepo, eventRepo, commentRepo, ratingRepo)
	pollService := service.NewPollService(groupRepo, membershipRepo, eventRepo, pollRepo, validator)
	weatherService := service.NewWeatherService(cfg, weatherCache)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(userService)
	groupHandler := handlers.NewGroupHandler(groupService)
	eventHandler := handlers.NewEventHandler(eventService)
	chatHandler := handlers.NewChatHandler(chatService)
	commentHandler := handlers.NewCommentHandler(commentService)
	ratingHandler := handlers.NewRatingHandler(ratingService)
	pollHandler := handlers.NewPollHandler(pollService)
	weatherHandler := handlers.NewWeatherHandler(weatherService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/signup", authHandler.Signup)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
		}

		weather := api.Group("/weather")
		{
			weather.GET("/geocode", weatherHandler.Geocode)
			weather.GET("/day", weatherHandler.DayIcon)
			weather.GET("/range", weatherHandler.RangeIcons)
		}

		authed := api.Group("")
		authed.Use(authMiddleware.RequireAuth())
		{
			authed.GET("/groups", groupHandler.ListGroups)
			authed.POST("/groups", groupHandler.CreateGroup)
			authed.POST("/invites/:token/accept", groupHandler.AcceptInvite)

			group := authed.Group("/groups/:code")
			{
				group.GET("", groupHandler.GetGroup)
				group.DELETE("", groupHandler.DeleteGroup)
				group.POST("/join", groupHandler.JoinGroup)
				group.POST("/leave", groupHandler.LeaveGroup)
				group.GET("/members", groupHandler.ListMembers)
				group.GET("/invites", groupHandler.ListInvites)
				group.POST("/invites", groupHandler.CreateInvite)
				group.DELETE("/invites/:token", groupHandler.RevokeInvite)

				group.GET("/events", eventHandler.ListEvents)
				group.POST("/events", eventHandler.CreateEvent)
				group.PUT("/events/:eventId", eventHandler.UpdateEvent)
				group.DELETE("/events/:eventId", eventHandler.DeleteEvent)

				group.GET("/chat", chatHandler.ListChat)
				group.POST("/chat", chatHandler.PostMessage)
				group.PUT("/chat/:messageId", chatHandler.EditMessage)
				group.DELETE("/chat/:messageId", chatHandler.DeleteMessage)
				group.POST("/chat/:messageId/pin", chatHandler.TogglePin)
				group.POST("/chat/:messageId/react", chatHandler.ReactToMessage)

				group.GET("/events/:eventId/comments", commentHandler.ListComments)
				group.POST("/events/:eventId/comments", commentHandler.AddComment)
				group.PUT("/events/:eventId/comments/:commentId", commentHandler.EditComment)
				group.DELETE("/events/:eventId/comments/:commentId", commentHandler.DeleteComment)
				group.POST("/events/:eventId/comments/:commentId/react", commentHandler.ReactToComment)

				group.GET("/events/:eventId/rating", ratingHandler.GetRating)
				group.POST("/events/:eventId/rating", ratingHandler.SetRating)

				group.GET("/events/:eventId/poll", pollHandler.GetPoll)
				group.POST("/events/:eventId/poll", pollHandler.SetPoll)
				group.DELETE("/events/:eventId/poll", pollHandler.ClearPoll)
				group.POST("/events/:eventId/poll/vote", pollHandler.Vote)
			}
		}
	}

	return router
}
