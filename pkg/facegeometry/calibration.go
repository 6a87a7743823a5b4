package facegeometry

// Calibration bundles the empirically tuned constants of the pipeline.
// They were calibrated against the reference landmark scale the existing
// accessory meshes were authored for, so changing them invalidates those
// assets. Treat as versioned configuration, not physics.
type Calibration struct {
	Version string

	// FaceWidthFactor derives face width from eye distance. Ear-to-ear
	// landmarks are too noisy to measure width directly.
	FaceWidthFactor float64

	// YawDivisor and PitchDivisor normalize the nose offset before the
	// small-angle atan. Empirical, not physically derived.
	YawDivisor   float64
	PitchDivisor float64

	GlassesScaleDivisor float64
	GlassesWidthFactor  float64
	GlassesHeightFactor float64

	HatScaleDivisor float64
	HatLiftFactor   float64
	HatHeightFactor float64

	EarringScaleDivisor float64
}

// DefaultCalibration returns the constants the accessory assets were
// tuned against.
func DefaultCalibration() Calibration {
	return Calibration{
		Version:             "v1",
		FaceWidthFactor:     2.5,
		YawDivisor:          100,
		PitchDivisor:        100,
		GlassesScaleDivisor: 120,
		GlassesWidthFactor:  1.4,
		GlassesHeightFactor: 0.6,
		HatScaleDivisor:     200,
		HatLiftFactor:       0.2,
		HatHeightFactor:     0.6,
		EarringScaleDivisor: 150,
	}
}
