package catalogHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	catalogService "github.com/shuvo881/virtual-try-on/internal/api/catalog/service"
	"github.com/shuvo881/virtual-try-on/internal/middleware"
)

type CatalogHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	catalogService catalogService.ICatalogService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs catalogService.ICatalogService,
) *CatalogHandler {
	return &CatalogHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		catalogService: cs,
	}
}

func (h *CatalogHandler) Start(srv fiber.Router) {
	catalog := srv.Group("/catalog")

	catalog.Get("/categories", h.GetAllCategories)
	catalog.Get("/categories/:slug/models", h.GetModelsByCategory)

	catalog.Get("/models", h.ListModels)
	catalog.Get("/models/featured", h.GetFeaturedModels)
	catalog.Get("/models/popular", h.GetPopularModels)
	catalog.Get("/models/by-category", h.GetModelsGroupedByCategory)
	catalog.Get("/models/:id", h.GetModelByID)
	catalog.Post("/models/:id/usage", h.RecordUsage)
	catalog.Post("/models/:id/rate", h.middleware.NewRateLimiter, h.RateModel)

	collections := catalog.Group("/collections")
	collections.Post("/", h.CreateCollection)
	collections.Get("", h.GetAllCollections)
	collections.Get("/:id", h.GetCollectionByID)
	collections.Put("/:id", h.UpdateCollection)
	collections.Delete("/:id", h.DeleteCollection)
	collections.Post("/:id/models", h.AddModelToCollection)
	collections.Delete("/:id/models/:modelId", h.RemoveModelFromCollection)
}
