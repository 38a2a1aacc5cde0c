package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/tictactoe-board/internal/config"
	"github.com/rocketscienceinc/tictactoe-board/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-board/transport/rest"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	if conf.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	gameUseCase := usecase.NewGameUseCase(logger)

	router, err := rest.NewRouter(logger, conf, gameUseCase)
	if err != nil {
		return fmt.Errorf("could not build router: %w", err)
	}

	addr := conf.GetHTTPAddr()
	log.Info("Starting HTTP server", "addr", addr, "url", "http://"+addr)

	if err = rest.Start(ctx, logger, addr, router); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("HTTP server stopped")

	return nil
}
