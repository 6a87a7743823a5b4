package tryonHandler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"

	"github.com/shuvo881/virtual-try-on/internal/api/tryon"
	contextPkg "github.com/shuvo881/virtual-try-on/pkg/context"
	"github.com/shuvo881/virtual-try-on/pkg/handlerUtil"
	"github.com/shuvo881/virtual-try-on/pkg/log"
)

func (h *TryOnHandler) sessionKey(ctx *fiber.Ctx) string {
	sessionKey := ctx.Get("X-Session-ID")
	if sessionKey == "" {
		sessionKey = ctx.Query("session")
	}
	return sessionKey
}

func (h *TryOnHandler) SaveTryOn(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing save try-on request")

	sessionKey := h.sessionKey(ctx)
	if sessionKey == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("session key is required"), ctx.Path())
	}

	var req tryon.SaveTryOnRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	result, err := h.tryOnService.SaveTryOn(c, sessionKey, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "save_tryon")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		h.log.WithFields(log.Fields{
			"request_id":     requestID,
			"session_id":     sessionKey,
			"accessory_type": result.AccessoryType,
			"model_id":       result.ModelID,
		}).Info("Try-on configuration saved")
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, result)
	}
}

func (h *TryOnHandler) GetTryOn(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get try-on request")

	sessionKey := h.sessionKey(ctx)
	if sessionKey == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("session key is required"), ctx.Path())
	}

	accessoryType := ctx.Params("type")
	if accessoryType == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("accessory type is required"), ctx.Path())
	}

	result, err := h.tryOnService.GetTryOn(c, sessionKey, accessoryType)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_tryon")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *TryOnHandler) GetTryOns(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing list try-ons request")

	sessionKey := h.sessionKey(ctx)
	if sessionKey == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("session key is required"), ctx.Path())
	}

	result, err := h.tryOnService.GetTryOns(c, sessionKey)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_tryons")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *TryOnHandler) RemoveTryOn(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing remove try-on request")

	sessionKey := h.sessionKey(ctx)
	if sessionKey == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("session key is required"), ctx.Path())
	}

	accessoryType := ctx.Params("type")
	if accessoryType == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("accessory type is required"), ctx.Path())
	}

	if err := h.tryOnService.RemoveTryOn(c, sessionKey, accessoryType); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "remove_tryon")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Try-on configuration removed",
		})
	}
}

func (h *TryOnHandler) ClearTryOns(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing clear try-ons request")

	sessionKey := h.sessionKey(ctx)
	if sessionKey == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("session key is required"), ctx.Path())
	}

	if err := h.tryOnService.ClearTryOns(c, sessionKey); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "clear_tryons")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Try-on configurations cleared",
		})
	}
}
