package detection

import (
	"net/http"

	"github.com/shuvo881/virtual-try-on/pkg/response"
)

var (
	// ErrNoFaceDetected is not a transport failure: the pipeline ran but
	// the frame contained no face. It is answered with 200 and
	// success=false so streaming clients keep their loop alive.
	ErrNoFaceDetected = response.NewError(http.StatusOK, "no face detected in image")

	ErrInvalidImagePayload = response.NewError(http.StatusBadRequest, "invalid image payload")
	ErrInvalidLandmarkData = response.NewError(http.StatusBadRequest, "landmark data is incomplete")
	ErrNoDetectionResult   = response.NewError(http.StatusNotFound, "no detection result for session")
	ErrComputationFailed   = response.NewError(http.StatusInternalServerError, "geometry computation failed")
	ErrDetectorUnavailable = response.NewError(http.StatusServiceUnavailable, "landmark service unavailable")
	ErrInternalServerError = response.NewError(http.StatusInternalServerError, "internal server error")
)
