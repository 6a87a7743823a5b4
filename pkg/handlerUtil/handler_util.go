package handlerUtil

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"

	"github.com/shuvo881/virtual-try-on/internal/api/catalog"
	"github.com/shuvo881/virtual-try-on/internal/api/detection"
	"github.com/shuvo881/virtual-try-on/internal/api/tryon"
	"github.com/shuvo881/virtual-try-on/pkg/log"
	"github.com/shuvo881/virtual-try-on/pkg/response"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	// Detection domain errors
	if errors.Is(err, detection.ErrNoFaceDetected) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"path":       path,
			"operation":  operation,
		}).Info("No face detected in frame")
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": false,
			"message": "No face detected in image",
			"code":    "NO_FACE_DETECTED",
		})
	}

	if errors.Is(err, detection.ErrDetectorUnavailable) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Error("Landmark service unavailable")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Face landmark service is unavailable",
			"code":  "DETECTOR_UNAVAILABLE",
		})
	}

	if errors.Is(err, detection.ErrInvalidLandmarkData) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Incomplete landmark data")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Landmark data is incomplete",
			"code":  "INVALID_LANDMARK_DATA",
		})
	}

	if errors.Is(err, detection.ErrComputationFailed) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Error("Geometry computation failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Geometry computation failed",
			"code":  "COMPUTATION_FAILED",
		})
	}

	if errors.Is(err, detection.ErrNoDetectionResult) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"path":       path,
			"operation":  operation,
		}).Warn("No cached detection result for session")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No detection result for session",
			"code":  "NO_DETECTION_RESULT",
		})
	}

	// Catalog domain errors
	if errors.Is(err, catalog.ErrInvalidOrdering) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Unsupported ordering field")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unsupported ordering field",
			"code":  "INVALID_ORDERING",
		})
	}

	if errors.Is(err, catalog.ErrInvalidRating) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Rating out of range")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Rating must be between 1 and 5",
			"code":  "INVALID_RATING",
		})
	}

	// Try-on domain errors
	if errors.Is(err, tryon.ErrInvalidAccessoryType) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Unsupported accessory type")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unsupported accessory type",
			"code":  "INVALID_ACCESSORY_TYPE",
		})
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       respErr.Code,
			"path":       path,
			"operation":  operation,
		}).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(fiber.Map{"error": err.Error()})
	}

	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}).Error("Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "An unexpected error occurred",
	})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Validation failed: " + err.Error(),
		"code":  "VALIDATION_ERROR",
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(utils.StatusMessage(fiber.StatusRequestTimeout))
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
