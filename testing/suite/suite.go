package suite

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/tictactoe-board/internal/config"
	"github.com/rocketscienceinc/tictactoe-board/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-board/transport/rest"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Game   usecase.GameUseCase
	Router *gin.Engine
}

// New - builds the HTTP surface around a fresh game.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	conf := &config.Config{
		Env:            config.EnvDevelopment,
		StaticCacheAge: time.Minute,
		RateLimit: config.RateLimit{
			RPS:   1000,
			Burst: 1000,
		},
	}

	game := usecase.NewGameUseCase(logger)

	router, err := rest.NewRouter(logger, conf, game)
	if err != nil {
		t.Fatalf("could not build router: %v", err)
	}

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Game:   game,
		Router: router,
	}
}

// Do - sends a request through the router.
func (that *Suite) Do(ctx context.Context, method, target string, header http.Header) *httptest.ResponseRecorder {
	that.Helper()

	req := httptest.NewRequestWithContext(ctx, method, target, strings.NewReader(""))
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	rec := httptest.NewRecorder()
	that.Router.ServeHTTP(rec, req)

	return rec
}
