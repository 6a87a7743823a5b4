package entity

import "github.com/shuvo881/virtual-try-on/pkg/facegeometry"

// LandmarkFrame is the raw reply of the external landmark detector for
// one submitted frame: zero or more faces, each an ordered array of at
// least 468 normalized mesh points, plus the pixel dimensions of the
// decoded frame.
type LandmarkFrame struct {
	Faces       [][]facegeometry.RawLandmark `json:"faces"`
	ImageWidth  int                          `json:"image_width"`
	ImageHeight int                          `json:"image_height"`
}

// HasFace reports whether the detector found at least one face.
func (f *LandmarkFrame) HasFace() bool {
	return len(f.Faces) > 0
}
