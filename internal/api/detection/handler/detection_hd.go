package detectionHandler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"golang.org/x/net/context"

	"github.com/shuvo881/virtual-try-on/internal/api/detection"
	contextPkg "github.com/shuvo881/virtual-try-on/pkg/context"
	"github.com/shuvo881/virtual-try-on/pkg/handlerUtil"
	"github.com/shuvo881/virtual-try-on/pkg/log"
)

// handleFaceWebSocket streams camera frames from the client: each
// binary message is one frame, each reply is the geometry for it. The
// session key binds the stream to its cached latest result.
func (h *DetectionHandler) handleFaceWebSocket(c *websocket.Conn) {
	sessionKey := c.Query("session")
	if sessionKey == "" {
		sessionKey = uuid.NewString()
	}

	h.log.Infof("Face detection WebSocket client connected, session %s", sessionKey)
	defer h.log.Info("Face detection WebSocket client disconnected")

	c.SetPingHandler(func(data string) error {
		h.log.Debug("Received ping, sending pong")
		if err := c.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second)); err != nil {
			h.log.Errorf("Error sending pong: %v", err)
		}
		return nil
	})

	maxReadTimeout := 60 * time.Second

	for {
		if err := c.SetReadDeadline(time.Now().Add(maxReadTimeout)); err != nil {
			h.log.Errorf("Error setting read deadline: %v", err)
			break
		}

		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Errorf("Face WebSocket error: %v", err)
			} else {
				h.log.Info("Face WebSocket connection closed")
			}
			break
		}

		if messageType != websocket.BinaryMessage {
			h.log.Warnf("Received unexpected message type: %d", messageType)
			continue
		}

		ctx := contextPkg.WithRequestID(context.Background(), sessionKey)
		result, err := h.detectionService.ProcessFrame(ctx, sessionKey, message)

		if err != nil {
			var payload interface{}
			if errors.Is(err, detection.ErrNoFaceDetected) {
				payload = map[string]interface{}{
					"success": false,
					"code":    "NO_FACE_DETECTED",
				}
			} else {
				h.log.Errorf("Error processing face frame: %v", err)
				payload = map[string]string{"error": err.Error()}
			}

			if writeErr := c.WriteJSON(payload); writeErr != nil {
				h.log.Errorf("Error sending error response: %v", writeErr)
				break
			}
			continue
		}

		if err := c.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
			h.log.Errorf("Error setting write deadline: %v", err)
			break
		}

		if err := c.WriteJSON(result); err != nil {
			h.log.Errorf("Error writing JSON response: %v", err)
			break
		}

		if err := c.SetWriteDeadline(time.Time{}); err != nil {
			h.log.Errorf("Error resetting write deadline: %v", err)
			break
		}
	}
}

func (h *DetectionHandler) DetectFace(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing face detection request")

	sessionKey := ctx.Get("X-Session-ID")
	if sessionKey == "" {
		sessionKey = uuid.NewString()
	}

	var base64Image string

	file, err := ctx.FormFile("image")
	if err == nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
			"file_name":  file.Filename,
			"file_size":  file.Size,
		}).Debug("Processing file upload")

		if err := h.utils.ValidateImageFile(file); err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "validate_image_file")
		}

		fileContent, err := file.Open()
		if err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "open_file")
		}
		defer fileContent.Close()

		base64Image, err = h.utils.ConvertFileToBase64(fileContent)
		if err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "convert_to_base64")
		}
	} else {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
		}).Debug("Processing JSON request")

		var req detection.DetectFaceRequest
		if err := ctx.BodyParser(&req); err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
		}

		if err := h.validator.Struct(req); err != nil {
			return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
		}

		base64Image = req.ImageBase64
	}

	result, err := h.detectionService.DetectFromImage(c, sessionKey, base64Image)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "detect_face")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		h.log.WithFields(log.Fields{
			"request_id":   requestID,
			"path":         ctx.Path(),
			"session_id":   sessionKey,
			"detection_id": result.DetectionID,
			"confidence":   result.Confidence,
		}).Info("Face detection successful")
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *DetectionHandler) LatestDetection(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing latest detection request")

	sessionKey := ctx.Get("X-Session-ID")
	if sessionKey == "" {
		sessionKey = ctx.Query("session")
	}
	if sessionKey == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("session key is required"), ctx.Path())
	}

	result, err := h.detectionService.LatestDetection(c, sessionKey)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "latest_detection")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}
