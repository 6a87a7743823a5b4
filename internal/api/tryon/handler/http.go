package tryonHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	tryonService "github.com/shuvo881/virtual-try-on/internal/api/tryon/service"
	"github.com/shuvo881/virtual-try-on/internal/middleware"
)

type TryOnHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	tryOnService tryonService.ITryOnService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ts tryonService.ITryOnService,
) *TryOnHandler {
	return &TryOnHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		tryOnService: ts,
	}
}

func (h *TryOnHandler) Start(srv fiber.Router) {
	tryOn := srv.Group("/tryon")

	tryOn.Post("/", h.SaveTryOn)
	tryOn.Get("", h.GetTryOns)
	tryOn.Get("/:type", h.GetTryOn)
	tryOn.Delete("/:type", h.RemoveTryOn)
	tryOn.Delete("", h.ClearTryOns)
}
