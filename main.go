package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/mazegen-api/api"
	api_i "github.com/beka-birhanu/mazegen-api/api/i"
	mazeapi "github.com/beka-birhanu/mazegen-api/api/maze"
	"github.com/beka-birhanu/mazegen-api/config"
	"github.com/beka-birhanu/mazegen-api/infrastruture/repo"
	"github.com/beka-birhanu/mazegen-api/logger"
	"github.com/beka-birhanu/mazegen-api/service"
	"github.com/beka-birhanu/mazegen-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Global variables for dependencies
var (
	redisClient    *redis.Client
	mazeRepo       i.MazeRepo
	mazeCrafter    i.MazeCrafter
	mazeController api_i.Controller
	router         *api.Router
	appLogger      logger.Logger
)

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initMazeRepo() {
	var err error
	mazeRepo, err = repo.NewRedisMazeRepo(redisClient, config.Envs.MazeTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze repository: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze repository initialized")
}

func initMazeCrafter() {
	crafterLogger, err := logger.New("MAZE-CRAFTER", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze crafter logger: %v", err))
		os.Exit(1)
	}

	mazeCrafter, err = service.NewMazeCrafter(mazeRepo, crafterLogger, &service.Options{
		MaxDimension: config.Envs.MaxMazeDimension,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze crafter: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze crafter initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeCrafter)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	gin.SetMode(config.Envs.GinMode)

	// Initialize dependencies
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initMazeRepo()
	initMazeCrafter()
	initMazeController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
