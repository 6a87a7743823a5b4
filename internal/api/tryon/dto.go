package tryon

import "time"

type SaveTryOnRequest struct {
	AccessoryType       string             `json:"accessory_type" validate:"required"`
	ModelID             string             `json:"model_id" validate:"required"`
	PositionAdjustments map[string]float64 `json:"position_adjustments" validate:"omitempty"`
	ScaleFactor         float64            `json:"scale_factor" validate:"omitempty,gt=0"`
	RotationAdjustments map[string]float64 `json:"rotation_adjustments" validate:"omitempty"`
}

type TryOnResponse struct {
	SessionKey          string             `json:"session_key"`
	AccessoryType       string             `json:"accessory_type"`
	ModelID             string             `json:"model_id"`
	PositionAdjustments map[string]float64 `json:"position_adjustments"`
	ScaleFactor         float64            `json:"scale_factor"`
	RotationAdjustments map[string]float64 `json:"rotation_adjustments"`
	CreatedAt           time.Time          `json:"created_at"`
}

type TryOnListResponse struct {
	SessionKey string          `json:"session_key"`
	TryOns     []TryOnResponse `json:"try_ons"`
}
