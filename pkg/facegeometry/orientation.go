package facegeometry

import "math"

// calculateOrientation estimates head rotation from eye and nose
// geometry. Roll is exact in the image plane; yaw and pitch are
// small-angle approximations of the nose offset from the eye midpoint,
// good enough to tilt an overlay but not a head-pose measurement.
func (e *Engine) calculateOrientation(points LandmarkSet) FaceOrientation {
	leftEye := points[LeftEyeCenter]
	rightEye := points[RightEyeCenter]
	nose := points[NoseTip]

	roll := math.Atan2(rightEye.Y-leftEye.Y, rightEye.X-leftEye.X)

	eyeCenterX := (leftEye.X + rightEye.X) / 2
	yaw := math.Atan((nose.X - eyeCenterX) / e.calib.YawDivisor)

	eyeCenterY := (leftEye.Y + rightEye.Y) / 2
	pitch := math.Atan((nose.Y - eyeCenterY) / e.calib.PitchDivisor)

	return FaceOrientation{
		Roll:         roll,
		Yaw:          yaw,
		Pitch:        pitch,
		RollDegrees:  roll * 180 / math.Pi,
		YawDegrees:   yaw * 180 / math.Pi,
		PitchDegrees: pitch * 180 / math.Pi,
	}
}
