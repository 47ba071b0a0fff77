package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	gameapi "github.com/beka-birhanu/vinom-maze/api/game"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/api/identity"
	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/infrastruture/logger"
	"github.com/beka-birhanu/vinom-maze/infrastruture/sessionstore"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Global variables for dependencies
var (
	redisClient        *redis.Client
	sessionStore       i.SessionStore
	mazeSessionManager i.MazeSessionManager
	jwtTokenizer       i.Tokenizer
	mazeController     api_i.Controller
	router             *api.Router
	appLogger          *logger.Logger
	logFile            io.Closer
	logOutput          io.Writer
)

func initLogger() {
	logOutput = os.Stdout
	if config.Envs.LogFile != "" {
		file, err := logger.NewRotatingFile(logger.FileConfig{
			Path:       config.Envs.LogFile,
			MaxSizeMB:  config.Envs.LogFileMaxSizeMB,
			MaxBackups: 3,
			MaxAgeDays: 28,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "opening log file: %v\n", err)
			os.Exit(1)
		}
		logFile = file
		logOutput = io.MultiWriter(os.Stdout, file)
	}

	appLogger = componentLogger("APP", config.ColorGreen)
}

func componentLogger(prefix, color string) *logger.Logger {
	l, err := logger.New(prefix, color, logOutput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating %s logger: %v\n", prefix, err)
		os.Exit(1)
	}
	return l
}

func initSessionStore(ctx context.Context) {
	if config.Envs.RedisAddr == "" {
		sessionStore = sessionstore.NewMemoryStore()
		appLogger.Warning("REDIS_ADDR not set, sessions are kept in memory")
		return
	}

	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
		DB:       config.Envs.RedisDB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}

	var err error
	sessionStore, err = sessionstore.NewRedisSessionStore(redisClient, config.Envs.SessionTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating redis session store: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initSessionManager() {
	var err error
	mazeSessionManager, err = service.NewMazeSessionManager(&service.Config{
		Store:  sessionStore,
		Logger: componentLogger("SESSION-MANAGER", config.ColorCyan),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating session manager: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Session manager initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initMazeController() {
	var err error
	ttl := time.Duration(config.Envs.TokenTTLMinutes) * time.Minute
	mazeController, err = gameapi.NewMazeController(mazeSessionManager, jwtTokenizer, ttl)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{mazeController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	initLogger()
	if logFile != nil {
		defer logFile.Close()
	}

	initSessionStore(ctx)
	if redisClient != nil {
		defer redisClient.Close()
	}

	initSessionManager()
	initJWTTokenizer()
	initMazeController()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
