package catalogHandler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/net/context"

	"github.com/shuvo881/virtual-try-on/internal/api/catalog"
	contextPkg "github.com/shuvo881/virtual-try-on/pkg/context"
	"github.com/shuvo881/virtual-try-on/pkg/handlerUtil"
	"github.com/shuvo881/virtual-try-on/pkg/log"
)

func (h *CatalogHandler) GetAllCategories(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get all categories request")

	result, err := h.catalogService.GetAllCategories(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_all_categories")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *CatalogHandler) ListModels(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing list models request")

	query := parseListQuery(ctx)
	query.Category = ctx.Query("category")

	if err := h.validator.Struct(query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	result, err := h.catalogService.ListModels(c, query)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_models")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *CatalogHandler) GetModelsByCategory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get models by category request")

	slug := ctx.Params("slug")
	if slug == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("category slug is required"), ctx.Path())
	}

	query := parseListQuery(ctx)
	query.Category = slug

	if err := h.validator.Struct(query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	result, err := h.catalogService.ListModels(c, query)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_models_by_category")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *CatalogHandler) GetModelByID(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get model by ID request")

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("model ID is required"), ctx.Path())
	}

	result, err := h.catalogService.GetModelByID(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_model")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *CatalogHandler) GetFeaturedModels(ctx *fiber.Ctx) error {
	return h.curatedModels(ctx, "get_featured_models", h.catalogService.GetFeaturedModels)
}

func (h *CatalogHandler) GetPopularModels(ctx *fiber.Ctx) error {
	return h.curatedModels(ctx, "get_popular_models", h.catalogService.GetPopularModels)
}

func (h *CatalogHandler) curatedModels(ctx *fiber.Ctx, operation string, fetch func(context.Context, int) (*catalog.ModelListResponse, error)) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing curated models request")

	limit, err := strconv.Atoi(ctx.Query("limit", "10"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}

	result, err := fetch(c, limit)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), operation)
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *CatalogHandler) GetModelsGroupedByCategory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing grouped models request")

	result, err := h.catalogService.GetModelsGroupedByCategory(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_grouped_models")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *CatalogHandler) RecordUsage(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing record usage request")

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("model ID is required"), ctx.Path())
	}

	if err := h.catalogService.RecordUsage(c, id); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "record_usage")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Usage recorded",
		})
	}
}

func (h *CatalogHandler) RateModel(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing rate model request")

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("model ID is required"), ctx.Path())
	}

	sessionKey := ctx.Get("X-Session-ID")
	if sessionKey == "" {
		sessionKey = uuid.NewString()
	}

	var req catalog.RateModelRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	result, err := h.catalogService.RateModel(c, id, sessionKey, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "rate_model")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func parseListQuery(ctx *fiber.Ctx) catalog.ListModelsQuery {
	page, err := strconv.Atoi(ctx.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(ctx.Query("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}

	return catalog.ListModelsQuery{
		Quality:  ctx.Query("quality"),
		Featured: ctx.QueryBool("featured"),
		Search:   ctx.Query("search"),
		Tag:      ctx.Query("tag"),
		Ordering: ctx.Query("ordering"),
		Page:     page,
		Limit:    limit,
	}
}
