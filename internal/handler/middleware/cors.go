package middleware

import (
	"log/slog"
	"slices"

	"hospital-ops/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware lets display boards on other hosts poll the API. A "*" origin opens
// the API to every host and turns credentials off, since browsers drop cookies for
// wildcard origins anyway.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	return cors.New(corsConfig(cfg))
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if slices.Contains(cfg.AllowOrigins, "*") {
		if cfg.AllowCredentials {
			slog.Warn("CORS wildcard origin configured, disabling credentials")
		}
		c.AllowOrigins = nil
		c.AllowAllOrigins = true
		c.AllowCredentials = false
	}
	slog.Info("CORS middleware initialized",
		"allowOrigins", c.AllowOrigins,
		"allowAll", c.AllowAllOrigins,
		"credentials", c.AllowCredentials)
	return c
}
