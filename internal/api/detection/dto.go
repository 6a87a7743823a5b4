package detection

import "github.com/shuvo881/virtual-try-on/pkg/facegeometry"

type DetectFaceRequest struct {
	ImageBase64 string `json:"image_base64" validate:"required"`
}

type DetectFaceResponse struct {
	Success     bool   `json:"success"`
	DetectionID string `json:"detection_id"`
	SessionID   string `json:"session_id"`
	facegeometry.DetectionResult
}
