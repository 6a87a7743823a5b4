package facegeometry

// calculateAccessoryPositions maps facial geometry to per-accessory
// placement transforms using the calibration constants.
func (e *Engine) calculateAccessoryPositions(points LandmarkSet, m FaceMeasurements) map[string]AccessoryTransform {
	eyeCenter := m.EyeCenter
	forehead := points[ForeheadCenter]
	leftEar := points[LeftEarTip]
	rightEar := points[RightEarTip]

	hatPosition := Point{
		X: forehead.X,
		Y: forehead.Y - m.FaceHeight*e.calib.HatLiftFactor,
		Z: forehead.Z,
	}
	foreheadAnchor := Point{X: forehead.X, Y: forehead.Y, Z: forehead.Z}

	return map[string]AccessoryTransform{
		AccessoryGlasses: {
			Position:      &Point{X: eyeCenter.X, Y: eyeCenter.Y, Z: eyeCenter.Z},
			RotationPoint: &Point{X: eyeCenter.X, Y: eyeCenter.Y, Z: eyeCenter.Z},
			Scale:         m.EyeDistance / e.calib.GlassesScaleDivisor,
			Width:         m.EyeDistance * e.calib.GlassesWidthFactor,
			Height:        m.EyeDistance * e.calib.GlassesHeightFactor,
		},
		AccessoryHat: {
			Position:      &hatPosition,
			RotationPoint: &foreheadAnchor,
			Scale:         m.FaceWidth / e.calib.HatScaleDivisor,
			Width:         m.FaceWidth,
			Height:        m.FaceWidth * e.calib.HatHeightFactor,
		},
		AccessoryEarrings: {
			LeftPosition:  &Point{X: leftEar.X, Y: leftEar.Y, Z: leftEar.Z},
			RightPosition: &Point{X: rightEar.X, Y: rightEar.Y, Z: rightEar.Z},
			Scale:         m.EyeDistance / e.calib.EarringScaleDivisor,
		},
	}
}
