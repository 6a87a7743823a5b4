package facegeometry

import (
	"fmt"
	"math"
	"time"
)

// Engine turns one face worth of raw detector landmarks into a
// DetectionResult. It holds only immutable configuration (the index map
// and the calibration), so a single instance is safe for any number of
// concurrent Process calls. Construct it once and inject it wherever
// frames are handled.
type Engine struct {
	indices  map[string]int
	maxIndex int
	calib    Calibration
}

type EngineOption func(*Engine)

// WithCalibration overrides the default calibration constants.
func WithCalibration(c Calibration) EngineOption {
	return func(e *Engine) {
		e.calib = c
	}
}

// WithLandmarkIndices overrides the default semantic-name index table.
// The map is copied; later mutation of the argument has no effect.
func WithLandmarkIndices(indices map[string]int) EngineOption {
	return func(e *Engine) {
		copied := make(map[string]int, len(indices))
		for name, idx := range indices {
			copied[name] = idx
		}
		e.indices = copied
	}
}

func NewEngine(options ...EngineOption) *Engine {
	engine := &Engine{
		indices: DefaultLandmarkIndices(),
		calib:   DefaultCalibration(),
	}

	for _, option := range options {
		option(engine)
	}

	for _, idx := range engine.indices {
		if idx > engine.maxIndex {
			engine.maxIndex = idx
		}
	}

	return engine
}

// Process runs the full pipeline over the raw landmarks of a single
// detected face: point extraction, then measurements, orientation and
// confidence off the extracted set, then accessory transforms off the
// measurements. ProcessingTimeMS covers only the geometry work here;
// callers that also invoke the detector overwrite it with the full span.
func (e *Engine) Process(raw []RawLandmark, width, height int) (*DetectionResult, error) {
	start := time.Now()

	points, err := e.extractPoints(raw, width, height)
	if err != nil {
		return nil, err
	}

	measurements := e.calculateMeasurements(points)
	orientation := e.calculateOrientation(points)
	confidence := e.calculateConfidence(points)
	accessories := e.calculateAccessoryPositions(points, measurements)

	result := &DetectionResult{
		Landmarks:          points,
		Measurements:       measurements,
		Orientation:        orientation,
		AccessoryPositions: accessories,
		Confidence:         confidence,
		ProcessingTimeMS:   float64(time.Since(start).Microseconds()) / 1000.0,
		ImageDimensions:    ImageDimensions{Width: width, Height: height},
	}

	if err := validateFinite(result); err != nil {
		return nil, err
	}

	return result, nil
}

// validateFinite rejects any result containing NaN or Inf before it can
// reach serialization or a client.
func validateFinite(r *DetectionResult) error {
	check := func(field string, values ...float64) error {
		for _, v := range values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: %s", ErrComputation, field)
			}
		}
		return nil
	}

	for name, p := range r.Landmarks {
		if err := check("landmarks."+name, p.X, p.Y, p.Z, p.Visibility); err != nil {
			return err
		}
	}

	m := r.Measurements
	if err := check("measurements",
		m.EyeDistance, m.FaceHeight, m.FaceWidth, m.AspectRatio,
		m.EyeCenter.X, m.EyeCenter.Y, m.EyeCenter.Z); err != nil {
		return err
	}

	o := r.Orientation
	if err := check("orientation",
		o.Roll, o.Yaw, o.Pitch, o.RollDegrees, o.YawDegrees, o.PitchDegrees); err != nil {
		return err
	}

	for kind, t := range r.AccessoryPositions {
		values := []float64{t.Scale, t.Width, t.Height}
		for _, p := range []*Point{t.Position, t.RotationPoint, t.LeftPosition, t.RightPosition} {
			if p != nil {
				values = append(values, p.X, p.Y, p.Z)
			}
		}
		if err := check("accessory_positions."+kind, values...); err != nil {
			return err
		}
	}

	return check("confidence", r.Confidence)
}
