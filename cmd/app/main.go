package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/shuvo881/virtual-try-on/internal/config"
	"github.com/shuvo881/virtual-try-on/pkg/log"
	"github.com/shuvo881/virtual-try-on/pkg/redis"
	websocketPkg "github.com/shuvo881/virtual-try-on/pkg/websocket"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Fatalf("Error loading .env file: %v", err)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()
	redisServer := redis.New()
	landmarkDetector := websocketPkg.NewLandmarkDetector()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithDatabase(),
		config.WithRedisServer(redisServer),
		config.WithLandmarkDetector(landmarkDetector),
		config.WithGeometryEngine(),
		config.WithMiddleware(),
		config.WithS3Client(),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")
	landmarkDetector.CloseConnection()
}
