package detectionService

import (
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/shuvo881/virtual-try-on/internal/api/detection"
	contextPkg "github.com/shuvo881/virtual-try-on/pkg/context"
	"github.com/shuvo881/virtual-try-on/pkg/facegeometry"
	"github.com/shuvo881/virtual-try-on/pkg/redis"
)

const latestDetectionTTL = 5 * time.Minute

func latestDetectionKey(sessionKey string) string {
	return "latest_detection_" + sessionKey
}

func (s *detectionService) DetectFromImage(ctx context.Context, sessionKey string, imageBase64 string) (*detection.DetectFaceResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	// Browsers submit data URLs; the detector wants raw image bytes.
	if idx := strings.Index(imageBase64, ","); idx != -1 && strings.HasPrefix(imageBase64, "data:") {
		imageBase64 = imageBase64[idx+1:]
	}

	frame, err := base64.StdEncoding.DecodeString(imageBase64)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to decode base64 image")
		return nil, detection.ErrInvalidImagePayload
	}

	return s.ProcessFrame(ctx, sessionKey, frame)
}

func (s *detectionService) ProcessFrame(ctx context.Context, sessionKey string, frame []byte) (*detection.DetectFaceResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	start := time.Now()

	landmarkFrame, err := s.detector.DetectLandmarks(frame)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Landmark service request failed")
		return nil, detection.ErrDetectorUnavailable
	}

	if !landmarkFrame.HasFace() {
		return nil, detection.ErrNoFaceDetected
	}

	result, err := s.engine.Process(landmarkFrame.Faces[0], landmarkFrame.ImageWidth, landmarkFrame.ImageHeight)
	if err != nil {
		if errors.Is(err, facegeometry.ErrInvalidLandmarks) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"landmarks":  len(landmarkFrame.Faces[0]),
				"error":      err.Error(),
			}).Warn("Landmark array is too short for geometry derivation")
			return nil, detection.ErrInvalidLandmarkData
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Geometry computation failed")
		return nil, detection.ErrComputationFailed
	}

	// The engine only times its own math; report the full span
	// including the landmark service round trip.
	result.ProcessingTimeMS = float64(time.Since(start).Microseconds()) / 1000.0

	response := &detection.DetectFaceResponse{
		Success:         true,
		DetectionID:     uuid.NewString(),
		SessionID:       sessionKey,
		DetectionResult: *result,
	}

	s.cacheLatest(ctx, sessionKey, response)

	return response, nil
}

func (s *detectionService) LatestDetection(ctx context.Context, sessionKey string) (*detection.DetectFaceResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	payload, err := s.redis.GetJSON(ctx, latestDetectionKey(sessionKey))
	if err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return nil, detection.ErrNoDetectionResult
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to read cached detection")
		return nil, err
	}

	var response detection.DetectFaceResponse
	if err := jsoniter.Unmarshal(payload, &response); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to unmarshal cached detection")
		return nil, detection.ErrInternalServerError
	}

	return &response, nil
}

func (s *detectionService) cacheLatest(ctx context.Context, sessionKey string, response *detection.DetectFaceResponse) {
	requestID := contextPkg.GetRequestID(ctx)

	payload, err := jsoniter.Marshal(response)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to marshal detection for caching")
		return
	}

	if err := s.redis.SetJSON(ctx, latestDetectionKey(sessionKey), payload, latestDetectionTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to cache detection result")
	}
}
