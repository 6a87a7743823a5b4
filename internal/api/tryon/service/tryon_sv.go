package tryonService

import (
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/shuvo881/virtual-try-on/internal/api/catalog"
	"github.com/shuvo881/virtual-try-on/internal/api/tryon"
	"github.com/shuvo881/virtual-try-on/internal/entity"
	contextPkg "github.com/shuvo881/virtual-try-on/pkg/context"
	"github.com/shuvo881/virtual-try-on/pkg/redis"
)

// Try-on configs are ephemeral session state, not durable records.
// They expire with the session.
const tryOnTTL = 24 * time.Hour

func tryOnKey(sessionKey, accessoryType string) string {
	return "tryon_" + sessionKey + "_" + accessoryType
}

func tryOnPattern(sessionKey string) string {
	return "tryon_" + sessionKey + "_*"
}

func (s *tryOnService) SaveTryOn(ctx context.Context, sessionKey string, req tryon.SaveTryOnRequest) (*tryon.TryOnResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	accessoryType := entity.AccessoryType(req.AccessoryType)
	if !accessoryType.Valid() {
		s.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"accessory_type": req.AccessoryType,
		}).Warn("Unsupported accessory type")
		return nil, tryon.ErrInvalidAccessoryType
	}

	repo, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	if _, err := repo.Models.GetModelByID(ctx, req.ModelID); err != nil {
		if errors.Is(err, catalog.ErrModelNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"model_id":   req.ModelID,
			}).Warn("Model not found for try-on")
			return nil, tryon.ErrModelNotFound
		}
		return nil, err
	}

	scaleFactor := req.ScaleFactor
	if scaleFactor == 0 {
		scaleFactor = 1.0
	}

	config := entity.AccessoryTryOn{
		SessionKey:          sessionKey,
		AccessoryType:       accessoryType,
		ModelID:             req.ModelID,
		PositionAdjustments: req.PositionAdjustments,
		ScaleFactor:         scaleFactor,
		RotationAdjustments: req.RotationAdjustments,
		CreatedAt:           time.Now(),
	}

	payload, err := jsoniter.Marshal(config)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to marshal try-on config")
		return nil, tryon.ErrSaveTryOn
	}

	if err := s.redis.SetJSON(ctx, tryOnKey(sessionKey, req.AccessoryType), payload, tryOnTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to store try-on config")
		return nil, tryon.ErrSaveTryOn
	}

	response := makeTryOnResponse(config)
	return &response, nil
}

func (s *tryOnService) GetTryOn(ctx context.Context, sessionKey, accessoryType string) (*tryon.TryOnResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.AccessoryType(accessoryType).Valid() {
		return nil, tryon.ErrInvalidAccessoryType
	}

	payload, err := s.redis.GetJSON(ctx, tryOnKey(sessionKey, accessoryType))
	if err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return nil, tryon.ErrTryOnNotFound
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to read try-on config")
		return nil, err
	}

	var config entity.AccessoryTryOn
	if err := jsoniter.Unmarshal(payload, &config); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to unmarshal try-on config")
		return nil, err
	}

	response := makeTryOnResponse(config)
	return &response, nil
}

func (s *tryOnService) GetTryOns(ctx context.Context, sessionKey string) (*tryon.TryOnListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	keys, err := s.redis.Keys(ctx, tryOnPattern(sessionKey))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list try-on configs")
		return nil, err
	}

	response := &tryon.TryOnListResponse{
		SessionKey: sessionKey,
		TryOns:     make([]tryon.TryOnResponse, 0, len(keys)),
	}

	for _, key := range keys {
		payload, err := s.redis.GetJSON(ctx, key)
		if err != nil {
			// Key may have expired between Keys and Get.
			if errors.Is(err, redis.ErrNotFound) {
				continue
			}
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"key":        key,
				"error":      err.Error(),
			}).Error("Failed to read try-on config")
			return nil, err
		}

		var config entity.AccessoryTryOn
		if err := jsoniter.Unmarshal(payload, &config); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"key":        key,
				"error":      err.Error(),
			}).Warn("Skipping unreadable try-on config")
			continue
		}

		response.TryOns = append(response.TryOns, makeTryOnResponse(config))
	}

	return response, nil
}

func (s *tryOnService) RemoveTryOn(ctx context.Context, sessionKey, accessoryType string) error {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.AccessoryType(accessoryType).Valid() {
		return tryon.ErrInvalidAccessoryType
	}

	key := tryOnKey(sessionKey, accessoryType)

	if _, err := s.redis.GetJSON(ctx, key); err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return tryon.ErrTryOnNotFound
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to read try-on config")
		return err
	}

	if err := s.redis.Delete(ctx, key); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"key":        key,
			"error":      err.Error(),
		}).Error("Failed to delete try-on config")
		return err
	}

	return nil
}

func (s *tryOnService) ClearTryOns(ctx context.Context, sessionKey string) error {
	requestID := contextPkg.GetRequestID(ctx)

	keys, err := s.redis.Keys(ctx, tryOnPattern(sessionKey))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list try-on configs")
		return err
	}

	// A session clear also drops its cached detection result.
	keys = append(keys, "latest_detection_"+sessionKey)

	if err := s.redis.Delete(ctx, keys...); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to clear try-on configs")
		return err
	}

	return nil
}

func makeTryOnResponse(config entity.AccessoryTryOn) tryon.TryOnResponse {
	return tryon.TryOnResponse{
		SessionKey:          config.SessionKey,
		AccessoryType:       string(config.AccessoryType),
		ModelID:             config.ModelID,
		PositionAdjustments: config.PositionAdjustments,
		ScaleFactor:         config.ScaleFactor,
		RotationAdjustments: config.RotationAdjustments,
		CreatedAt:           config.CreatedAt,
	}
}
