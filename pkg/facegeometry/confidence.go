package facegeometry

// calculateConfidence averages landmark visibility and clamps the result
// into [0,1], so out-of-range visibility noise from the detector can
// never leak through. A detector that reports no visibility at all
// yields confidence 1.0 via the extraction default.
func (e *Engine) calculateConfidence(points LandmarkSet) float64 {
	if len(points) == 0 {
		return 0
	}

	total := 0.0
	for _, p := range points {
		total += p.Visibility
	}

	confidence := total / float64(len(points))
	if confidence > 1 {
		return 1
	}
	if confidence < 0 {
		return 0
	}
	return confidence
}
