package handler

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/forestbar/api/internal/pkg/middleware"
	"github.com/forestbar/api/internal/pkg/models"
	"github.com/forestbar/api/services/auth"
	"github.com/forestbar/api/services/auth/handler/http"
)

// Handler coordinates the auth service HTTP handlers
type Handler struct {
	authHandler *http.AuthHandler
	authUC      auth.AuthUC
	redisClient *redis.Client
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	authUC auth.AuthUC,
	redisClient *redis.Client,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler: authHandler,
		authUC:      authUC,
		redisClient: redisClient,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the auth routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	sendCodeLimiter := middleware.IPRateLimiter(
		"send-code",
		h.cfg.RateLimit.SendCodeLimit,
		time.Duration(h.cfg.RateLimit.WindowSecond)*time.Second,
		h.redisClient,
	)

	// Public routes
	authGroup := e.Group("/auth")
	authGroup.POST("/send-code", h.authHandler.SendCode, sendCodeLimiter)
	authGroup.POST("/verify-code", h.authHandler.VerifyCode)

	// Protected routes
	protected := authGroup.Group("", middleware.JWTAuthMiddleware(h.authUC))
	protected.GET("/me", h.authHandler.Me)
	protected.POST("/logout", h.authHandler.Logout)
}
