package entity

import "time"

type AccessoryType string

const (
	AccessoryTypeGlasses  AccessoryType = "glasses"
	AccessoryTypeHat      AccessoryType = "hat"
	AccessoryTypeEarrings AccessoryType = "earrings"
	AccessoryTypeNecklace AccessoryType = "necklace"
)

func (a AccessoryType) Valid() bool {
	switch a {
	case AccessoryTypeGlasses, AccessoryTypeHat, AccessoryTypeEarrings, AccessoryTypeNecklace:
		return true
	}
	return false
}

// AccessoryTryOn is one session's configuration for a single accessory
// slot: which catalog model is worn and the user's manual adjustments on
// top of the computed placement. One config per (session, type).
type AccessoryTryOn struct {
	SessionKey          string             `json:"session_key"`
	AccessoryType       AccessoryType      `json:"accessory_type"`
	ModelID             string             `json:"model_id"`
	PositionAdjustments map[string]float64 `json:"position_adjustments"`
	ScaleFactor         float64            `json:"scale_factor"`
	RotationAdjustments map[string]float64 `json:"rotation_adjustments"`
	CreatedAt           time.Time          `json:"created_at"`
}
