package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-board/internal/view"
)

const (
	templatePage  = "index"
	templateBoard = "board"

	headerHTMXRequest = "HX-Request"
)

type Handlers interface {
	Ping(c *gin.Context)

	Index(c *gin.Context)
	State(c *gin.Context)

	ActivateCell(c *gin.Context)
	Restart(c *gin.Context)
	NewMatch(c *gin.Context)
}

type gameUseCase interface {
	Dispatch(ctx context.Context, cmd usecase.Command) usecase.Snapshot
	Snapshot(ctx context.Context) usecase.Snapshot
}

type handlers struct {
	logger *slog.Logger
	uGame  gameUseCase
}

func NewHandlers(logger *slog.Logger, uGame gameUseCase) Handlers {
	return &handlers{
		logger: logger.With("component", "rest"),
		uGame:  uGame,
	}
}

func (that *handlers) Index(c *gin.Context) {
	c.HTML(http.StatusOK, templatePage, render(that.uGame.Snapshot(c.Request.Context())))
}

// State - the rendered page as JSON.
func (that *handlers) State(c *gin.Context) {
	c.JSON(http.StatusOK, render(that.uGame.Snapshot(c.Request.Context())))
}

func (that *handlers) ActivateCell(c *gin.Context) {
	cell, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		that.logger.With("method", "ActivateCell").
			WarnContext(c.Request.Context(), "cell ignored", "error", fmt.Errorf("%w: %q", apperror.ErrInvalidCell, c.Param("index")))

		that.respond(c, that.uGame.Snapshot(c.Request.Context()))
		return
	}

	that.respond(c, that.uGame.Dispatch(c.Request.Context(), usecase.ActivateCell(cell)))
}

func (that *handlers) Restart(c *gin.Context) {
	that.respond(c, that.uGame.Dispatch(c.Request.Context(), usecase.Restart()))
}

func (that *handlers) NewMatch(c *gin.Context) {
	that.respond(c, that.uGame.Dispatch(c.Request.Context(), usecase.NewMatch()))
}

// respond - htmx requests get the board fragment, plain forms are redirected to the page.
func (that *handlers) respond(c *gin.Context, snapshot usecase.Snapshot) {
	if c.GetHeader(headerHTMXRequest) == "true" {
		c.HTML(http.StatusOK, templateBoard, render(snapshot))
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func render(snapshot usecase.Snapshot) view.Page {
	return view.Render(snapshot.Game, snapshot.Focus)
}
