package service

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	dmn "github.com/beka-birhanu/mazegen-api/domain"
	"github.com/beka-birhanu/mazegen-api/logger"
	"github.com/beka-birhanu/mazegen-api/maze"
	"github.com/beka-birhanu/mazegen-api/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxDimension = 64
	defaultDailyWidth   = 16
	defaultDailyHeight  = 16
	dailyKeyFmt         = "maze:daily:%s"
	dailyDateLayout     = "2006-01-02"
)

// ErrDimensionTooLarge is returned when a requested maze exceeds the
// configured dimension cap.
var ErrDimensionTooLarge = errors.New("maze dimension exceeds the allowed maximum")

// Options configures a MazeCrafter.
type Options struct {
	MaxDimension int // Upper bound on width and height
	DailyWidth   int // Width of the shared daily maze
	DailyHeight  int // Height of the shared daily maze
}

// MazeCrafter builds mazes on demand and keeps the built records in a
// repository for later retrieval.
type MazeCrafter struct {
	repo   i.MazeRepo
	logger logger.Logger
	opts   *Options
}

// NewMazeCrafter creates a MazeCrafter with the given repository, logger,
// and options. Missing or invalid option fields fall back to defaults.
func NewMazeCrafter(repo i.MazeRepo, logger logger.Logger, opts *Options) (*MazeCrafter, error) {
	if repo == nil {
		return nil, errors.New("maze repository must not be nil")
	}
	if logger == nil {
		return nil, errors.New("logger must not be nil")
	}

	if opts == nil {
		opts = &Options{}
	}
	if opts.MaxDimension <= 0 {
		opts.MaxDimension = defaultMaxDimension
	}
	if opts.DailyWidth <= 0 {
		opts.DailyWidth = defaultDailyWidth
	}
	if opts.DailyHeight <= 0 {
		opts.DailyHeight = defaultDailyHeight
	}

	return &MazeCrafter{
		repo:   repo,
		logger: logger,
		opts:   opts,
	}, nil
}

// Create builds a maze from the request, stores the record, and returns it.
// Validation failures surface before any generation work starts.
func (mc *MazeCrafter) Create(ctx context.Context, req i.BuildRequest) (*dmn.Maze, error) {
	if max(req.Width, req.Height) > mc.opts.MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d, maximum %d", ErrDimensionTooLarge, req.Width, req.Height, mc.opts.MaxDimension)
	}

	cfg := maze.Config{
		Width:       req.Width,
		Height:      req.Height,
		Seed:        req.Seed,
		FarthestEnd: req.FarthestEnd,
	}

	if req.Start != nil {
		cfg.Start = maze.CellPosition{Row: req.Start.Row, Col: req.Start.Col}
	}
	if req.End != nil {
		cfg.End = maze.CellPosition{Row: req.End.Row, Col: req.End.Col}
	} else {
		cfg.End = maze.CellPosition{Row: req.Height - 1, Col: req.Width - 1}
	}

	m, err := maze.Build(cfg)
	if err != nil {
		mc.logger.Warning(fmt.Sprintf("Rejected maze build %dx%d: %s", req.Width, req.Height, err))
		return nil, err
	}

	record := dmn.NewMaze(uuid.New(), m)
	if err := mc.repo.Save(ctx, record); err != nil {
		mc.logger.Error(fmt.Sprintf("Saving maze %s: %s", record.ID, err))
		return nil, err
	}

	mc.logger.Info(fmt.Sprintf("Built maze %s (%dx%d, path length %d)", record.ID, record.Width, record.Height, len(record.Path)))
	return record, nil
}

// ByID retrieves a previously built maze record.
func (mc *MazeCrafter) ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error) {
	return mc.repo.ByID(ctx, id)
}

// Daily returns the shared maze of the current UTC date. The maze is
// deterministic for the date and built at most once across instances;
// the repository serializes concurrent first accesses.
func (mc *MazeCrafter) Daily(ctx context.Context) (*dmn.Maze, error) {
	date := time.Now().UTC().Format(dailyDateLayout)
	key := fmt.Sprintf(dailyKeyFmt, date)

	return mc.repo.GetOrSet(ctx, key, func() (*dmn.Maze, error) {
		m, err := maze.Build(maze.Config{
			Width:       mc.opts.DailyWidth,
			Height:      mc.opts.DailyHeight,
			Seed:        dailySeed(date),
			FarthestEnd: true,
		})
		if err != nil {
			return nil, err
		}

		record := dmn.NewMaze(uuid.New(), m)
		mc.logger.Info(fmt.Sprintf("Built daily maze %s for %s", record.ID, date))
		return record, nil
	})
}

// dailySeed derives the generation seed from the date key, so every
// instance builds the same maze for the same day.
func dailySeed(date string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(date))
	return int64(h.Sum64())
}
