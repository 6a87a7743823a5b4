package facegeometry

// RawLandmark is a single point as reported by the external landmark
// detector: x and y normalized to [0,1] relative to the frame, z a
// normalized depth, visibility optional (absent means fully visible).
type RawLandmark struct {
	X          float64  `json:"x"`
	Y          float64  `json:"y"`
	Z          float64  `json:"z"`
	Visibility *float64 `json:"visibility,omitempty"`
}

// LandmarkPoint is a pixel-space point derived from a RawLandmark.
// Z is scaled by image width so it shares units with X.
type LandmarkPoint struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Visibility float64 `json:"visibility"`
}

// Point is a bare 3D coordinate used for derived positions (midpoints,
// accessory anchors) that carry no visibility of their own.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// LandmarkSet maps every configured semantic name to its pixel-space
// point. A set is always complete: extraction either produces all
// configured names or fails.
type LandmarkSet map[string]LandmarkPoint

type FaceMeasurements struct {
	EyeDistance float64 `json:"eye_distance"`
	FaceHeight  float64 `json:"face_height"`
	FaceWidth   float64 `json:"face_width"`
	EyeCenter   Point   `json:"eye_center"`
	AspectRatio float64 `json:"aspect_ratio"`
}

// FaceOrientation holds approximate head rotation for cosmetic accessory
// alignment. The degree fields are unit conversions of the radian fields.
// None of these are metric head-pose values.
type FaceOrientation struct {
	Roll         float64 `json:"roll"`
	Yaw          float64 `json:"yaw"`
	Pitch        float64 `json:"pitch"`
	RollDegrees  float64 `json:"roll_degrees"`
	YawDegrees   float64 `json:"yaw_degrees"`
	PitchDegrees float64 `json:"pitch_degrees"`
}

// AccessoryTransform is the placement bundle for one accessory kind.
// Glasses and hats use Position/RotationPoint/Width/Height; earrings use
// the two ear positions. Unused fields are omitted from JSON.
type AccessoryTransform struct {
	Position      *Point  `json:"position,omitempty"`
	RotationPoint *Point  `json:"rotation_point,omitempty"`
	LeftPosition  *Point  `json:"left_position,omitempty"`
	RightPosition *Point  `json:"right_position,omitempty"`
	Scale         float64 `json:"scale"`
	Width         float64 `json:"width,omitempty"`
	Height        float64 `json:"height,omitempty"`
}

type ImageDimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// DetectionResult is the full per-frame output of the engine. It is
// created fresh per invocation, owned by the caller and never retained.
type DetectionResult struct {
	Landmarks          LandmarkSet                   `json:"landmarks"`
	Measurements       FaceMeasurements              `json:"measurements"`
	Orientation        FaceOrientation               `json:"orientation"`
	AccessoryPositions map[string]AccessoryTransform `json:"accessory_positions"`
	Confidence         float64                       `json:"confidence"`
	ProcessingTimeMS   float64                       `json:"processing_time_ms"`
	ImageDimensions    ImageDimensions               `json:"image_dimensions"`
}

// Accessory kinds keyed into DetectionResult.AccessoryPositions.
const (
	AccessoryGlasses  = "glasses"
	AccessoryHat      = "hat"
	AccessoryEarrings = "earrings"
)
