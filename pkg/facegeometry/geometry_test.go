package facegeometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func baseLandmarkSet() LandmarkSet {
	set := make(LandmarkSet, len(DefaultLandmarkIndices()))
	for name := range DefaultLandmarkIndices() {
		set[name] = LandmarkPoint{X: 150, Y: 150, Z: 0, Visibility: 1}
	}
	set[LeftEyeCenter] = LandmarkPoint{X: 100, Y: 100, Visibility: 1}
	set[RightEyeCenter] = LandmarkPoint{X: 220, Y: 100, Visibility: 1}
	set[ForeheadCenter] = LandmarkPoint{X: 160, Y: 50, Visibility: 1}
	set[ChinCenter] = LandmarkPoint{X: 160, Y: 250, Visibility: 1}
	set[NoseTip] = LandmarkPoint{X: 160, Y: 150, Visibility: 1}
	return set
}

func TestMeasurements_EyeDistanceAndDerivedWidth(t *testing.T) {
	assert := assert.New(t)
	e := NewEngine()

	m := e.calculateMeasurements(baseLandmarkSet())

	assert.InDelta(120.0, m.EyeDistance, 1e-9)
	assert.InDelta(300.0, m.FaceWidth, 1e-9, "width is eye distance times 2.5")
	assert.InDelta(200.0, m.FaceHeight, 1e-9)
	assert.InDelta(160.0, m.EyeCenter.X, 1e-9)
	assert.InDelta(100.0, m.EyeCenter.Y, 1e-9)
}

func TestMeasurements_EyeDistanceSymmetric(t *testing.T) {
	assert := assert.New(t)
	e := NewEngine()

	set := baseLandmarkSet()
	swapped := baseLandmarkSet()
	swapped[LeftEyeCenter], swapped[RightEyeCenter] = set[RightEyeCenter], set[LeftEyeCenter]

	assert.InDelta(
		e.calculateMeasurements(set).EyeDistance,
		e.calculateMeasurements(swapped).EyeDistance,
		1e-9,
	)
}

func TestMeasurements_AspectRatioInvariant(t *testing.T) {
	assert := assert.New(t)
	e := NewEngine()

	m := e.calculateMeasurements(baseLandmarkSet())
	assert.InDelta(m.FaceWidth, m.AspectRatio*m.FaceHeight, 1e-6)
}

func TestMeasurements_ZeroFaceHeightAspectRatio(t *testing.T) {
	assert := assert.New(t)
	e := NewEngine()

	set := baseLandmarkSet()
	set[ChinCenter] = set[ForeheadCenter]

	m := e.calculateMeasurements(set)
	assert.Zero(m.FaceHeight)
	assert.Equal(1.0, m.AspectRatio)
}

func TestOrientation_LevelEyesHaveZeroRoll(t *testing.T) {
	assert := assert.New(t)
	e := NewEngine()

	o := e.calculateOrientation(baseLandmarkSet())
	assert.InDelta(0.0, o.Roll, 1e-9)
	assert.InDelta(0.0, o.RollDegrees, 1e-9)
}

func TestOrientation_TiltedEyesAndDegreeMirror(t *testing.T) {
	assert := assert.New(t)
	e := NewEngine()

	set := baseLandmarkSet()
	set[RightEyeCenter] = LandmarkPoint{X: 220, Y: 220, Visibility: 1}

	o := e.calculateOrientation(set)
	assert.Greater(o.Roll, 0.0)
	assert.InDelta(o.Roll*180/math.Pi, o.RollDegrees, 1e-9)
	assert.InDelta(o.Yaw*180/math.Pi, o.YawDegrees, 1e-9)
	assert.InDelta(o.Pitch*180/math.Pi, o.PitchDegrees, 1e-9)
}

func TestOrientation_NoseOffsetDrivesYawAndPitch(t *testing.T) {
	assert := assert.New(t)
	e := NewEngine()

	set := baseLandmarkSet()
	set[NoseTip] = LandmarkPoint{X: 210, Y: 150, Visibility: 1}

	o := e.calculateOrientation(set)
	assert.InDelta(math.Atan(0.5), o.Yaw, 1e-9, "50px offset over the 100 divisor")
	assert.InDelta(math.Atan(0.5), o.Pitch, 1e-9)
}

func TestAccessories_GlassesScaleReference(t *testing.T) {
	assert := assert.New(t)
	e := NewEngine()

	set := baseLandmarkSet()
	m := e.calculateMeasurements(set)
	transforms := e.calculateAccessoryPositions(set, m)

	glasses := transforms[AccessoryGlasses]
	assert.Equal(1.0, glasses.Scale, "120px eye distance is the reference scale")
	assert.InDelta(120*1.4, glasses.Width, 1e-9)
	assert.InDelta(120*0.6, glasses.Height, 1e-9)
	assert.Equal(m.EyeCenter, *glasses.Position)
	assert.Equal(m.EyeCenter, *glasses.RotationPoint)
}

func TestAccessories_HatLiftedAboveForehead(t *testing.T) {
	assert := assert.New(t)
	e := NewEngine()

	set := baseLandmarkSet()
	set[ForeheadCenter] = LandmarkPoint{X: 100, Y: 50, Visibility: 1}
	set[ChinCenter] = LandmarkPoint{X: 100, Y: 90, Visibility: 1}

	m := e.calculateMeasurements(set)
	assert.InDelta(40.0, m.FaceHeight, 1e-9)

	hat := e.calculateAccessoryPositions(set, m)[AccessoryHat]
	assert.InDelta(42.0, hat.Position.Y, 1e-9, "lifted by 0.2 of face height")
	assert.InDelta(100.0, hat.Position.X, 1e-9)
	assert.InDelta(m.FaceWidth/200, hat.Scale, 1e-9)
	assert.InDelta(50.0, hat.RotationPoint.Y, 1e-9)
}

func TestAccessories_EarringsAnchoredAtEarTips(t *testing.T) {
	assert := assert.New(t)
	e := NewEngine()

	set := baseLandmarkSet()
	set[LeftEarTip] = LandmarkPoint{X: 40, Y: 160, Z: -5, Visibility: 1}
	set[RightEarTip] = LandmarkPoint{X: 280, Y: 160, Z: -5, Visibility: 1}

	m := e.calculateMeasurements(set)
	earrings := e.calculateAccessoryPositions(set, m)[AccessoryEarrings]

	assert.Equal(Point{X: 40, Y: 160, Z: -5}, *earrings.LeftPosition)
	assert.Equal(Point{X: 280, Y: 160, Z: -5}, *earrings.RightPosition)
	assert.InDelta(120.0/150, earrings.Scale, 1e-9)
	assert.Nil(earrings.Position)
	assert.Zero(earrings.Width)
}

func TestConfidence_ClampedIntoUnitInterval(t *testing.T) {
	assert := assert.New(t)
	e := NewEngine()

	cases := []struct {
		name       string
		visibility float64
		want       float64
	}{
		{"all fully visible", 1.0, 1.0},
		{"noise above one", 1.4, 1.0},
		{"negative noise", -0.5, 0.0},
		{"partial", 0.25, 0.25},
	}

	for _, tc := range cases {
		set := baseLandmarkSet()
		for name, p := range set {
			p.Visibility = tc.visibility
			set[name] = p
		}
		got := e.calculateConfidence(set)
		assert.InDelta(tc.want, got, 1e-9, tc.name)
		assert.GreaterOrEqual(got, 0.0, tc.name)
		assert.LessOrEqual(got, 1.0, tc.name)
	}
}
