package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/tictactoe-board/internal/config"
	"github.com/rocketscienceinc/tictactoe-board/web"
)

const shutdownTimeout = 10 * time.Second

// NewRouter - builds the gin engine serving the board page and its commands.
func NewRouter(logger *slog.Logger, conf *config.Config, uGame gameUseCase) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	staticFS, err := web.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("failed to load static assets: %w", err)
	}

	h := NewHandlers(logger, uGame)
	limiter := newRateLimiter(conf.RateLimit.RPS, conf.RateLimit.Burst)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		requestLogMiddleware(logger),
		ginGzip.Gzip(ginGzip.DefaultCompression),
		cacheControlMiddleware(conf.StaticCacheAge, conf.IsProduction()),
	)

	if err = router.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	router.SetHTMLTemplate(tmpl)
	router.StaticFS("/static", staticFS)

	router.GET("/ping", h.Ping)
	router.GET("/", h.Index)
	router.GET("/state", h.State)

	commands := router.Group("/", limiter.middleware())
	commands.POST("/cells/:index", h.ActivateCell)
	commands.POST("/restart", h.Restart)
	commands.POST("/new-match", h.NewMatch)

	return router, nil
}

// Start - serves handler on addr until ctx is canceled.
func Start(ctx context.Context, logger *slog.Logger, addr string, handler http.Handler) error {
	log := logger.With("method", "Start")

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("failed to shut down server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
