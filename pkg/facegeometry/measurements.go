package facegeometry

import "math"

func (e *Engine) calculateMeasurements(points LandmarkSet) FaceMeasurements {
	leftEye := points[LeftEyeCenter]
	rightEye := points[RightEyeCenter]
	forehead := points[ForeheadCenter]
	chin := points[ChinCenter]

	eyeDistance := distance2D(leftEye, rightEye)
	faceHeight := distance2D(forehead, chin)

	// Width is derived from eye distance rather than measured ear to ear.
	faceWidth := eyeDistance * e.calib.FaceWidthFactor

	eyeCenter := Point{
		X: (leftEye.X + rightEye.X) / 2,
		Y: (leftEye.Y + rightEye.Y) / 2,
		Z: (leftEye.Z + rightEye.Z) / 2,
	}

	aspectRatio := 1.0
	if faceHeight > 0 {
		aspectRatio = faceWidth / faceHeight
	}

	return FaceMeasurements{
		EyeDistance: eyeDistance,
		FaceHeight:  faceHeight,
		FaceWidth:   faceWidth,
		EyeCenter:   eyeCenter,
		AspectRatio: aspectRatio,
	}
}

func distance2D(a, b LandmarkPoint) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
