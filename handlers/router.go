package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"blogify/helper"
	"blogify/middleware"
	"blogify/models"
	"blogify/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterDeps struct {
	AuthService services.AuthService
	PostService services.PostService
	UserService services.UserService
	Credentials services.CredentialStore

	Ping   Pinger
	Logger *slog.Logger

	Production          bool
	AuthRateLimit       int
	RequestTimeout      time.Duration
	EnforceActiveStatus bool
}

func NewRouter(deps RouterDeps) *gin.Engine {
	h := helper.NewHTTPHelper()
	cookies := SessionCookies{TTL: deps.Credentials.TokenTTL(), Production: deps.Production}

	authHandler := NewAuthHandler(deps.AuthService, cookies, h)
	postHandler := NewPostHandler(deps.PostService, h)
	userHandler := NewUserHandler(deps.UserService, h)
	healthHandler := NewHealthHandler(deps.Ping, h)

	middleware.RegisterMetrics()

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		slog.Error("panic recovered", "panic", recovered, "request_id", c.GetString(helper.RequestIDKey))
		h.SendErrorMessage(c, http.StatusInternalServerError, models.MsgServerError)
	}))
	router.Use(middleware.Timeout(deps.RequestTimeout))

	router.GET("/", healthHandler.Root)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth routes (public)
	limited := router.Group("/")
	limited.Use(middleware.RateLimit(deps.AuthRateLimit))
	{
		limited.POST("/register", authHandler.Register)
		limited.POST("/login", authHandler.Login)
	}

	// Public post routes
	router.GET("/posts", postHandler.GetPosts)
	router.GET("/posts/:id", postHandler.GetPost)

	// Protected routes
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(deps.Credentials))
	if deps.EnforceActiveStatus {
		protected.Use(middleware.RequireActive(deps.UserService))
	}
	{
		protected.GET("/logout", authHandler.Logout)
		protected.GET("/me", userHandler.GetMe)
		protected.GET("/me/posts", postHandler.GetMyPosts)

		protected.POST("/posts", postHandler.CreatePost)
		protected.PUT("/posts/:id", postHandler.UpdatePost)
		protected.DELETE("/posts/:id", postHandler.DeletePost)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AdminMiddleware(deps.Credentials, deps.UserService))
	{
		admin.GET("/users", userHandler.GetUsers)
		admin.PUT("/users/:id/:status", userHandler.UpdateUserStatus)
		admin.DELETE("/users/:id", userHandler.DeleteUser)
	}

	router.NoRoute(func(c *gin.Context) {
		h.SendErrorMessage(c, http.StatusNotFound, "Route not Found")
	})

	return router
}
