package server

import (
	"fmt"
	"net/http"
	"time"

	scheduler "github.com/TudorHulban/meetings"
	"github.com/TudorHulban/meetings/internal/config"
	"github.com/TudorHulban/meetings/internal/handlers"
	"github.com/TudorHulban/meetings/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ParamsNewRouter struct {
	Config *config.Config
	Logger *zap.Logger
}

// NewRouter wires middleware and meeting routes.
// Forwarding headers are honored only from Config.TrustedProxies.
func NewRouter(params *ParamsNewRouter) (*gin.Engine, error) {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()

	if errProxies := router.SetTrustedProxies(params.Config.TrustedProxies); errProxies != nil {
		return nil,
			fmt.Errorf("trusted proxies: %w", errProxies)
	}

	router.Use(gin.Recovery())
	router.Use(
		cors.New(
			cors.Config{
				AllowOrigins: params.Config.AllowedOrigins,
				AllowMethods: []string{http.MethodGet, http.MethodPost},
				AllowHeaders: []string{"Content-Type", middleware.HeaderRequestID},
				MaxAge:       12 * time.Hour,
			},
		),
	)
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimit(params.Config.MaxRequestsPerMin, logger))

	handlers.NewMeetingHandler(
		&handlers.ParamsNewMeetingHandler{
			Query: scheduler.NewFindMeetingQuery(
				&scheduler.ParamsNewFindMeetingQuery{
					Logger: logger.Named("scheduler"),
				},
			),
			Logger: logger.Named("http"),
		},
	).RegisterRoutes(router)

	return router,
		nil
}
