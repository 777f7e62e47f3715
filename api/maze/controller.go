package mazeapi

import (
	"errors"
	"net/http"

	dmn "github.com/beka-birhanu/mazegen-api/domain"
	"github.com/beka-birhanu/mazegen-api/maze"
	"github.com/beka-birhanu/mazegen-api/service"
	"github.com/beka-birhanu/mazegen-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController exposes maze building and retrieval over HTTP.
type MazeController struct {
	crafter i.MazeCrafter
}

// NewMazeController initializes a MazeController.
func NewMazeController(crafter i.MazeCrafter) (*MazeController, error) {
	if crafter == nil {
		return nil, errors.New("maze crafter must not be nil")
	}
	return &MazeController{crafter: crafter}, nil
}

// RegisterRoutes registers maze routes.
func (mc *MazeController) RegisterRoutes(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", mc.build)
		mazes.GET("/daily", mc.daily)
		mazes.GET("/:ID", mc.byID)
	}
}

// build handles maze build requests.
func (mc *MazeController) build(ctx *gin.Context) {
	var request BuildMazeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := i.BuildRequest{
		Width:       request.Width,
		Height:      request.Height,
		Seed:        request.Seed,
		FarthestEnd: request.FarthestEnd,
	}
	if request.Start != nil {
		req.Start = &dmn.Position{Row: request.Start.Row, Col: request.Start.Col}
	}
	if request.End != nil {
		req.End = &dmn.Position{Row: request.End.Row, Col: request.End.Col}
	}

	record, err := mc.crafter.Create(ctx, req)
	if err != nil {
		ctx.JSON(statusForBuildError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(record))
}

// byID retrieves a previously built maze.
func (mc *MazeController) byID(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return
	}

	record, err := mc.crafter.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, i.ErrMazeNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while loading maze"})
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(record))
}

// daily retrieves the shared maze of the current UTC date.
func (mc *MazeController) daily(ctx *gin.Context) {
	record, err := mc.crafter.Daily(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while building daily maze"})
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(record))
}

// statusForBuildError separates caller mistakes from internal failures.
// Validation errors from the core and the service cap are the caller's
// to fix; everything else, including a solver failure on a carved maze,
// is an internal inconsistency.
func statusForBuildError(err error) int {
	switch {
	case errors.Is(err, maze.ErrInvalidDimensions),
		errors.Is(err, maze.ErrOutOfBounds),
		errors.Is(err, maze.ErrSameStartEnd),
		errors.Is(err, service.ErrDimensionTooLarge):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
