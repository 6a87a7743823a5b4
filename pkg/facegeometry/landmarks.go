package facegeometry

import "errors"

var (
	// ErrInvalidLandmarks means the detector violated its contract: the
	// raw array does not cover every configured mesh index. Nothing is
	// derived from partial data.
	ErrInvalidLandmarks = errors.New("landmark array shorter than configured mesh indices")

	// ErrComputation means a derived value came out NaN or infinite.
	ErrComputation = errors.New("non-finite value in face geometry computation")
)

// Semantic landmark names. Every LandmarkSet contains exactly these keys.
const (
	LeftEyeCenter  = "left_eye_center"
	RightEyeCenter = "right_eye_center"
	LeftEyeInner   = "left_eye_inner"
	RightEyeInner  = "right_eye_inner"
	LeftEyeOuter   = "left_eye_outer"
	RightEyeOuter  = "right_eye_outer"
	NoseTip        = "nose_tip"
	NoseBridge     = "nose_bridge"
	ForeheadCenter = "forehead_center"
	ForeheadLeft   = "forehead_left"
	ForeheadRight  = "forehead_right"
	ChinCenter     = "chin_center"
	LeftCheek      = "left_cheek"
	RightCheek     = "right_cheek"
	LeftEarTip     = "left_ear_tip"
	RightEarTip    = "right_ear_tip"
	MouthLeft      = "mouth_left"
	MouthRight     = "mouth_right"
	MouthTop       = "mouth_top"
	MouthBottom    = "mouth_bottom"
)

// DefaultLandmarkIndices maps semantic names to face-mesh indices of the
// 468-point topology emitted by the detector. Some names intentionally
// alias the same index (inner/outer eye corners reuse the eye centers in
// this calibration).
func DefaultLandmarkIndices() map[string]int {
	return map[string]int{
		LeftEyeCenter:  33,
		RightEyeCenter: 362,
		LeftEyeInner:   133,
		RightEyeInner:  362,
		LeftEyeOuter:   33,
		RightEyeOuter:  263,
		NoseTip:        1,
		NoseBridge:     6,
		ForeheadCenter: 10,
		ForeheadLeft:   21,
		ForeheadRight:  251,
		ChinCenter:     175,
		LeftCheek:      116,
		RightCheek:     345,
		LeftEarTip:     234,
		RightEarTip:    454,
		MouthLeft:      61,
		MouthRight:     291,
		MouthTop:       13,
		MouthBottom:    14,
	}
}

// extractPoints converts normalized detector coordinates into pixel-space
// points for every configured semantic name. Missing visibility defaults
// to 1.0.
func (e *Engine) extractPoints(raw []RawLandmark, width, height int) (LandmarkSet, error) {
	if len(raw) <= e.maxIndex {
		return nil, ErrInvalidLandmarks
	}

	set := make(LandmarkSet, len(e.indices))
	for name, idx := range e.indices {
		p := raw[idx]

		visibility := 1.0
		if p.Visibility != nil {
			visibility = *p.Visibility
		}

		set[name] = LandmarkPoint{
			X:          p.X * float64(width),
			Y:          p.Y * float64(height),
			Z:          p.Z * float64(width),
			Visibility: visibility,
		}
	}

	return set, nil
}
