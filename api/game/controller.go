package gameapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/beka-birhanu/vinom-maze/api/identity"
	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/game/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultRequestTimeout = 2 * time.Second

// MazeController exposes maze sessions over HTTP.
type MazeController struct {
	sessions  i.MazeSessionManager
	tokenizer i.Tokenizer
	tokenTTL  time.Duration
}

// NewMazeController initializes a MazeController. Session tokens live for tokenTTL.
func NewMazeController(sm i.MazeSessionManager, t i.Tokenizer, tokenTTL time.Duration) (*MazeController, error) {
	if sm == nil || t == nil {
		return nil, errors.New("maze controller needs a session manager and a tokenizer")
	}
	return &MazeController{
		sessions:  sm,
		tokenizer: t,
		tokenTTL:  tokenTTL,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	route.POST("/mazes", mc.create)
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes/:ID")
	{
		mazes.GET("", mc.session)
		mazes.POST("/moves", mc.move)
		mazes.POST("/regenerate", mc.regenerate)
		mazes.DELETE("", mc.delete)
	}
}

// create starts a session and hands out the token that grants access to it.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	timeoutCtx, cancel := ctxWithTimeout(ctx)
	defer cancel()
	session, mz, err := mc.sessions.NewSession(timeoutCtx, request.config())
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	token, err := mc.tokenizer.Generate(map[string]interface{}{identity.SessionClaim: session.ID.String()}, mc.tokenTTL)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while issuing session token"})
		return
	}

	response := sessionResponse(session, mz)
	response.Token = token
	ctx.JSON(http.StatusCreated, response)
}

// session returns the maze and the player's progress.
func (mc *MazeController) session(ctx *gin.Context) {
	ID, ok := mc.authorizedID(ctx)
	if !ok {
		return
	}

	timeoutCtx, cancel := ctxWithTimeout(ctx)
	defer cancel()
	session, mz, err := mc.sessions.Session(timeoutCtx, ID)
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, sessionResponse(session, mz))
}

// move applies one step. Illegal steps are answered with accepted=false.
func (mc *MazeController) move(ctx *gin.Context) {
	ID, ok := mc.authorizedID(ctx)
	if !ok {
		return
	}

	var request MoveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if (request.To == nil) == (request.Point == nil) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "exactly one of to and point is required"})
		return
	}

	timeoutCtx, cancel := ctxWithTimeout(ctx)
	defer cancel()

	var (
		accepted bool
		session  *dmn.Session
		err      error
	)
	if request.To != nil {
		accepted, session, err = mc.sessions.Move(timeoutCtx, ID, *request.To)
	} else {
		accepted, session, err = mc.sessions.Drag(timeoutCtx, ID, request.Point.X, request.Point.Y)
	}
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, &MoveResponse{Accepted: accepted, State: session.State()})
}

// regenerate rebuilds the maze, optionally from a fresh seed.
func (mc *MazeController) regenerate(ctx *gin.Context) {
	ID, ok := mc.authorizedID(ctx)
	if !ok {
		return
	}

	var request RegenerateRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	timeoutCtx, cancel := ctxWithTimeout(ctx)
	defer cancel()
	session, mz, err := mc.sessions.Regenerate(timeoutCtx, ID, request.NewSeed)
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, sessionResponse(session, mz))
}

// delete ends a session.
func (mc *MazeController) delete(ctx *gin.Context) {
	ID, ok := mc.authorizedID(ctx)
	if !ok {
		return
	}

	timeoutCtx, cancel := ctxWithTimeout(ctx)
	defer cancel()
	if err := mc.sessions.Delete(timeoutCtx, ID); err != nil {
		mc.fail(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// authorizedID parses the :ID parameter and checks it against the token's
// session claim. It writes the error response itself.
func (mc *MazeController) authorizedID(ctx *gin.Context) (uuid.UUID, bool) {
	IDString := ctx.Params.ByName("ID")
	ID, err := uuid.Parse(IDString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return uuid.Nil, false
	}

	claimed, ok := identity.SessionFromContext(ctx)
	if !ok || claimed != ID.String() {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "token does not grant access to this session"})
		return uuid.Nil, false
	}
	return ID, true
}

// fail maps service errors to status codes.
func (mc *MazeController) fail(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, dmn.ErrSessionNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "No Session"})
	case errors.Is(err, maze.ErrInvalidDimensions),
		errors.Is(err, maze.ErrInvalidRings),
		errors.Is(err, maze.ErrUnknownKind),
		errors.Is(err, maze.ErrUnknownGapPolicy):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, maze.ErrUnsolvable):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func sessionResponse(s *dmn.Session, mz game.Maze) *SessionResponse {
	return &SessionResponse{
		SessionID: s.ID.String(),
		Config:    s.Config,
		Maze:      mz.Snapshot(),
		State:     s.State(),
	}
}

func ctxWithTimeout(ctx *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx.Request.Context(), defaultRequestTimeout)
}
