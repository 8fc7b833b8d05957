package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"linkly-be/internal/config"
	"linkly-be/internal/controllers"
	"linkly-be/internal/database"
	"linkly-be/internal/jwt"
	"linkly-be/internal/logger"
	"linkly-be/internal/middleware"
	"linkly-be/internal/repository"
	"linkly-be/internal/service"
)

func main() {
	logger.Initialize()

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to MongoDB
	client, db, err := database.Connect(ctx, cfg.MongoURL, cfg.MongoDB)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		if err := database.Disconnect(client); err != nil {
			log.Error().Err(err).Msg("Failed to disconnect from MongoDB")
		}
	}()
	log.Info().Str("db", cfg.MongoDB).Msg("Connected to MongoDB")

	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to create indexes")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	linkRepo := repository.NewLinkRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTTTL)*time.Hour)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	linkService := service.NewLinkService(linkRepo, userRepo, cfg.BaseURL)

	// Initialize controllers
	userController := controllers.NewUserController(authService)
	linkController := controllers.NewLinkController(linkService)
	qrcodeController := controllers.NewQRCodeController(linkService)

	// Initialize rate limiters
	generalLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	user := router.Group("/api/user")
	user.Use(generalLimiter.Limit())
	{
		user.POST("/signup", authLimiter.Limit(), userController.Signup)
		user.POST("/signin", authLimiter.Limit(), userController.Signin)

		authed := user.Group("")
		authed.Use(middleware.AuthMiddleware(jwtService))
		{
			authed.PUT("/update", userController.Update)
			authed.DELETE("/delete", userController.Delete)
			authed.GET("/profile", userController.Profile)
		}
	}

	link := router.Group("/api/link")
	link.Use(generalLimiter.Limit())
	{
		link.POST("/create", linkController.Create)
		link.GET("", linkController.Search)
		link.GET("/:shortCode", linkController.Redirect)
		link.GET("/:shortCode/responses", linkController.Responses)
		link.GET("/short-links/:userId", linkController.ListByUser)
		link.PUT("/update/:shortCode", linkController.Update)
		link.DELETE("/delete/:shortCode", linkController.Delete)
		link.GET("/analytics/:userId", linkController.Analytics)
		link.GET("/qr/:shortCode", qrcodeController.Generate)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}
}
