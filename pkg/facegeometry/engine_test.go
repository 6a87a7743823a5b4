package facegeometry

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	frameWidth  = 1000
	frameHeight = 1000
)

// rawFace builds a detector-contract array of 468 landmarks and places
// the named points at pixel positions (relative to the 1000x1000 frame).
func rawFace(pixels map[string][3]float64) []RawLandmark {
	raw := make([]RawLandmark, 468)
	for i := range raw {
		raw[i] = RawLandmark{X: 0.5, Y: 0.5, Z: 0}
	}
	indices := DefaultLandmarkIndices()
	for name, px := range pixels {
		raw[indices[name]] = RawLandmark{
			X: px[0] / frameWidth,
			Y: px[1] / frameHeight,
			Z: px[2] / frameWidth,
		}
	}
	return raw
}

func TestEngine_ProcessReferenceFace(t *testing.T) {
	assert := assert.New(t)
	e := NewEngine()

	result, err := e.Process(rawFace(map[string][3]float64{
		LeftEyeCenter:  {100, 100, 0},
		RightEyeCenter: {220, 100, 0},
		ForeheadCenter: {160, 50, 0},
		ChinCenter:     {160, 250, 0},
		NoseTip:        {160, 150, 0},
	}), frameWidth, frameHeight)

	assert.NoError(err)
	assert.Len(result.Landmarks, 20)
	assert.InDelta(120.0, result.Measurements.EyeDistance, 1e-6)
	assert.InDelta(0.0, result.Orientation.Roll, 1e-9)
	assert.Equal(1.0, result.AccessoryPositions[AccessoryGlasses].Scale)
	assert.Equal(1.0, result.Confidence, "no visibility reported defaults to full confidence")
	assert.Equal(ImageDimensions{Width: frameWidth, Height: frameHeight}, result.ImageDimensions)
	assert.GreaterOrEqual(result.ProcessingTimeMS, 0.0)
}

func TestEngine_PixelScalingAndVisibility(t *testing.T) {
	assert := assert.New(t)
	e := NewEngine()

	visibility := 0.5
	raw := make([]RawLandmark, 468)
	for i := range raw {
		raw[i] = RawLandmark{X: 0.25, Y: 0.75, Z: 0.1, Visibility: &visibility}
	}

	result, err := e.Process(raw, 640, 480)
	assert.NoError(err)

	nose := result.Landmarks[NoseTip]
	assert.InDelta(0.25*640, nose.X, 1e-9)
	assert.InDelta(0.75*480, nose.Y, 1e-9)
	assert.InDelta(0.1*640, nose.Z, 1e-9, "depth scales by width, not height")
	assert.Equal(0.5, nose.Visibility)
	assert.InDelta(0.5, result.Confidence, 1e-9)
}

func TestEngine_ShortLandmarkArrayIsFatal(t *testing.T) {
	assert := assert.New(t)
	e := NewEngine()

	result, err := e.Process(make([]RawLandmark, 300), frameWidth, frameHeight)
	assert.ErrorIs(err, ErrInvalidLandmarks)
	assert.Nil(result, "no partial result on contract violation")

	// Max configured index is 454; an array of 455 is the minimum.
	result, err = e.Process(make([]RawLandmark, 454), frameWidth, frameHeight)
	assert.ErrorIs(err, ErrInvalidLandmarks)
	assert.Nil(result)

	_, err = e.Process(make([]RawLandmark, 455), frameWidth, frameHeight)
	assert.NoError(err)
}

func TestEngine_NaNInputSurfacesComputationError(t *testing.T) {
	assert := assert.New(t)
	e := NewEngine()

	raw := make([]RawLandmark, 468)
	raw[DefaultLandmarkIndices()[NoseTip]] = RawLandmark{X: math.NaN(), Y: 0.5}

	result, err := e.Process(raw, frameWidth, frameHeight)
	assert.ErrorIs(err, ErrComputation)
	assert.Nil(result)
}

func TestEngine_ResultSurvivesJSONRoundTrip(t *testing.T) {
	assert := assert.New(t)
	e := NewEngine()

	result, err := e.Process(rawFace(map[string][3]float64{
		LeftEyeCenter:  {101.5, 98.25, -3},
		RightEyeCenter: {219.75, 103.5, -3},
		ForeheadCenter: {158, 47.5, 2},
		ChinCenter:     {161.25, 252, 1},
		NoseTip:        {164, 155.5, -10},
		LeftEarTip:     {42, 160, -7},
		RightEarTip:    {278, 161, -7},
	}), frameWidth, frameHeight)
	assert.NoError(err)

	encoded, err := json.Marshal(result)
	assert.NoError(err)

	var decoded DetectionResult
	assert.NoError(json.Unmarshal(encoded, &decoded))

	assert.InDelta(result.Measurements.EyeDistance, decoded.Measurements.EyeDistance, 1e-6)
	assert.InDelta(result.Measurements.AspectRatio, decoded.Measurements.AspectRatio, 1e-6)
	assert.InDelta(result.Orientation.Roll, decoded.Orientation.Roll, 1e-6)
	assert.InDelta(result.Orientation.PitchDegrees, decoded.Orientation.PitchDegrees, 1e-6)
	assert.InDelta(result.Confidence, decoded.Confidence, 1e-6)
	assert.InDelta(result.ProcessingTimeMS, decoded.ProcessingTimeMS, 1e-6)
	for name, p := range result.Landmarks {
		assert.InDelta(p.X, decoded.Landmarks[name].X, 1e-6)
		assert.InDelta(p.Y, decoded.Landmarks[name].Y, 1e-6)
		assert.InDelta(p.Z, decoded.Landmarks[name].Z, 1e-6)
	}
	for kind, tr := range result.AccessoryPositions {
		assert.InDelta(tr.Scale, decoded.AccessoryPositions[kind].Scale, 1e-6)
	}

	// Wire field names are part of the client contract.
	var shape map[string]json.RawMessage
	assert.NoError(json.Unmarshal(encoded, &shape))
	for _, field := range []string{
		"landmarks", "measurements", "orientation",
		"accessory_positions", "confidence", "processing_time_ms", "image_dimensions",
	} {
		assert.Contains(shape, field)
	}
}

func TestEngine_CustomCalibration(t *testing.T) {
	assert := assert.New(t)

	calib := DefaultCalibration()
	calib.GlassesScaleDivisor = 60

	e := NewEngine(WithCalibration(calib))
	result, err := e.Process(rawFace(map[string][3]float64{
		LeftEyeCenter:  {100, 100, 0},
		RightEyeCenter: {220, 100, 0},
		ForeheadCenter: {160, 50, 0},
		ChinCenter:     {160, 250, 0},
	}), frameWidth, frameHeight)

	assert.NoError(err)
	assert.Equal(2.0, result.AccessoryPositions[AccessoryGlasses].Scale)
}

func TestEngine_ConcurrentProcessing(t *testing.T) {
	assert := assert.New(t)
	e := NewEngine()

	raw := rawFace(map[string][3]float64{
		LeftEyeCenter:  {100, 100, 0},
		RightEyeCenter: {220, 100, 0},
		ForeheadCenter: {160, 50, 0},
		ChinCenter:     {160, 250, 0},
	})

	done := make(chan error, 16)
	for i := 0; i < 16; i++ {
		go func() {
			_, err := e.Process(raw, frameWidth, frameHeight)
			done <- err
		}()
	}
	for i := 0; i < 16; i++ {
		assert.NoError(<-done)
	}
}
