package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/shuvo881/virtual-try-on/database/postgres"
	catalogHandler "github.com/shuvo881/virtual-try-on/internal/api/catalog/handler"
	catalogRepository "github.com/shuvo881/virtual-try-on/internal/api/catalog/repository"
	catalogService "github.com/shuvo881/virtual-try-on/internal/api/catalog/service"
	detectionHandler "github.com/shuvo881/virtual-try-on/internal/api/detection/handler"
	detectionService "github.com/shuvo881/virtual-try-on/internal/api/detection/service"
	tryonHandler "github.com/shuvo881/virtual-try-on/internal/api/tryon/handler"
	tryonService "github.com/shuvo881/virtual-try-on/internal/api/tryon/service"
	"github.com/shuvo881/virtual-try-on/internal/middleware"
	"github.com/shuvo881/virtual-try-on/pkg/facegeometry"
	"github.com/shuvo881/virtual-try-on/pkg/redis"
	"github.com/shuvo881/virtual-try-on/pkg/s3"
	"github.com/shuvo881/virtual-try-on/pkg/utils"
	websocketPkg "github.com/shuvo881/virtual-try-on/pkg/websocket"
)

type ServerOption func(*Server) error

type Server struct {
	engine           *fiber.App
	db               *sqlx.DB
	log              *logrus.Logger
	middleware       middleware.Middleware
	validator        *validator.Validate
	utils            utils.IUtils
	handlers         []handler
	redisServer      redis.IRedis
	landmarkDetector websocketPkg.ILandmarkDetector
	geometryEngine   *facegeometry.Engine
	s3Client         s3.ItfS3
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithLandmarkDetector(detector websocketPkg.ILandmarkDetector) ServerOption {
	return func(s *Server) error {
		s.landmarkDetector = detector
		return nil
	}
}

func WithGeometryEngine(opts ...facegeometry.EngineOption) ServerOption {
	return func(s *Server) error {
		s.geometryEngine = facegeometry.NewEngine(opts...)
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Catalog Domain
	catalogRepo := catalogRepository.New(s.db, s.log)
	catalogServices := catalogService.New(s.log, catalogRepo, s.s3Client, s.utils)
	catalogHandlers := catalogHandler.New(s.log, s.validator, s.middleware, catalogServices)

	// Detection Domain
	detectionServices := detectionService.New(s.log, s.landmarkDetector, s.geometryEngine, s.redisServer)
	detectionHandlers := detectionHandler.New(s.log, s.validator, s.middleware, detectionServices, s.utils)

	// Try-On Domain
	tryonServices := tryonService.New(s.log, s.redisServer, catalogRepo)
	tryonHandlers := tryonHandler.New(s.log, s.validator, s.middleware, tryonServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, catalogHandlers, detectionHandlers, tryonHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		if s.landmarkDetector != nil {
			s.landmarkDetector.CloseConnection()
		}
		return err
	}

	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
