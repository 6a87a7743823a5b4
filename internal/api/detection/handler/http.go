package detectionHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"

	detectionService "github.com/shuvo881/virtual-try-on/internal/api/detection/service"
	"github.com/shuvo881/virtual-try-on/internal/middleware"
	"github.com/shuvo881/virtual-try-on/pkg/utils"
)

type DetectionHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	detectionService detectionService.IDetectionService
	utils            utils.IUtils
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	ds detectionService.IDetectionService,
	utils utils.IUtils,
) *DetectionHandler {
	return &DetectionHandler{
		detectionService: ds,
		log:              log,
		validator:        validator,
		middleware:       middleware,
		utils:            utils,
	}
}

func (h *DetectionHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	face := srv.Group("/face")
	face.Use("/ws", wsMiddleware)
	face.Get("/ws", websocket.New(h.handleFaceWebSocket))
	face.Post("/detect", h.middleware.NewRateLimiter, h.DetectFace)
	face.Get("/latest", h.LatestDetection)
}
