package detectionService

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/shuvo881/virtual-try-on/internal/api/detection"
	"github.com/shuvo881/virtual-try-on/internal/entity"
	"github.com/shuvo881/virtual-try-on/pkg/facegeometry"
	"github.com/shuvo881/virtual-try-on/pkg/redis"
)

type fakeDetector struct {
	frame *entity.LandmarkFrame
	err   error
	calls int
}

func (f *fakeDetector) DetectLandmarks(frame []byte) (*entity.LandmarkFrame, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.frame, nil
}

func (f *fakeDetector) IsConnected() bool { return true }
func (f *fakeDetector) Reconnect() error  { return nil }
func (f *fakeDetector) CloseConnection()  {}

type fakeRedis struct {
	store map[string][]byte
	ttls  map[string]time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{
		store: make(map[string][]byte),
		ttls:  make(map[string]time.Duration),
	}
}

func (f *fakeRedis) SetJSON(_ context.Context, key string, payload []byte, expiration time.Duration) error {
	f.store[key] = payload
	f.ttls[key] = expiration
	return nil
}

func (f *fakeRedis) GetJSON(_ context.Context, key string) ([]byte, error) {
	payload, ok := f.store[key]
	if !ok {
		return nil, redis.ErrNotFound
	}
	return payload, nil
}

func (f *fakeRedis) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.store, key)
	}
	return nil
}

func (f *fakeRedis) Keys(_ context.Context, _ string) ([]string, error) {
	var keys []string
	for key := range f.store {
		keys = append(keys, key)
	}
	return keys, nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

// referenceFace builds a normalized 468-point face for a 1000x1000
// frame with well-separated eyes, forehead, chin and nose.
func referenceFace() []facegeometry.RawLandmark {
	face := make([]facegeometry.RawLandmark, 468)
	for i := range face {
		face[i] = facegeometry.RawLandmark{X: 0.5, Y: 0.5}
	}

	set := func(index int, x, y float64) {
		face[index] = facegeometry.RawLandmark{X: x, Y: y}
	}

	set(33, 0.44, 0.40)  // left eye
	set(362, 0.56, 0.40) // right eye
	set(263, 0.60, 0.40)
	set(133, 0.48, 0.40)
	set(10, 0.50, 0.25)  // forehead
	set(175, 0.50, 0.65) // chin
	set(1, 0.50, 0.48)   // nose tip
	set(6, 0.50, 0.42)

	return face
}

func referenceFrame() *entity.LandmarkFrame {
	return &entity.LandmarkFrame{
		Faces:       [][]facegeometry.RawLandmark{referenceFace()},
		ImageWidth:  1000,
		ImageHeight: 1000,
	}
}

func TestProcessFrameSuccess(t *testing.T) {
	assert := assert.New(t)

	detector := &fakeDetector{frame: referenceFrame()}
	cache := newFakeRedis()
	svc := New(quietLogger(), detector, facegeometry.NewEngine(), cache)

	result, err := svc.ProcessFrame(context.Background(), "sess-1", []byte("frame"))
	assert.NoError(err)
	assert.True(result.Success)
	assert.Equal("sess-1", result.SessionID)
	assert.NotEmpty(result.DetectionID)
	assert.Len(result.Landmarks, 20)
	assert.Greater(result.ProcessingTimeMS, 0.0)
	assert.Equal(1000, result.ImageDimensions.Width)

	cached, ok := cache.store["latest_detection_sess-1"]
	assert.True(ok)
	assert.NotEmpty(cached)
	assert.Equal(5*time.Minute, cache.ttls["latest_detection_sess-1"])
}

func TestProcessFrameNoFace(t *testing.T) {
	assert := assert.New(t)

	detector := &fakeDetector{frame: &entity.LandmarkFrame{
		Faces:       nil,
		ImageWidth:  640,
		ImageHeight: 480,
	}}
	svc := New(quietLogger(), detector, facegeometry.NewEngine(), newFakeRedis())

	result, err := svc.ProcessFrame(context.Background(), "sess-1", []byte("frame"))
	assert.Nil(result)
	assert.ErrorIs(err, detection.ErrNoFaceDetected)
}

func TestProcessFrameDetectorDown(t *testing.T) {
	assert := assert.New(t)

	detector := &fakeDetector{err: errors.New("connection refused")}
	svc := New(quietLogger(), detector, facegeometry.NewEngine(), newFakeRedis())

	result, err := svc.ProcessFrame(context.Background(), "sess-1", []byte("frame"))
	assert.Nil(result)
	assert.ErrorIs(err, detection.ErrDetectorUnavailable)
}

func TestProcessFrameShortLandmarks(t *testing.T) {
	assert := assert.New(t)

	short := referenceFace()[:200]
	detector := &fakeDetector{frame: &entity.LandmarkFrame{
		Faces:       [][]facegeometry.RawLandmark{short},
		ImageWidth:  1000,
		ImageHeight: 1000,
	}}
	svc := New(quietLogger(), detector, facegeometry.NewEngine(), newFakeRedis())

	result, err := svc.ProcessFrame(context.Background(), "sess-1", []byte("frame"))
	assert.Nil(result)
	assert.ErrorIs(err, detection.ErrInvalidLandmarkData)
}

func TestDetectFromImageInvalidBase64(t *testing.T) {
	assert := assert.New(t)

	svc := New(quietLogger(), &fakeDetector{frame: referenceFrame()}, facegeometry.NewEngine(), newFakeRedis())

	result, err := svc.DetectFromImage(context.Background(), "sess-1", "not-valid-base64!!!")
	assert.Nil(result)
	assert.ErrorIs(err, detection.ErrInvalidImagePayload)
}

func TestDetectFromImageDataURL(t *testing.T) {
	assert := assert.New(t)

	detector := &fakeDetector{frame: referenceFrame()}
	svc := New(quietLogger(), detector, facegeometry.NewEngine(), newFakeRedis())

	encoded := base64.StdEncoding.EncodeToString([]byte("jpeg-bytes"))
	result, err := svc.DetectFromImage(context.Background(), "sess-1", "data:image/jpeg;base64,"+encoded)
	assert.NoError(err)
	assert.True(result.Success)
	assert.Equal(1, detector.calls)
}

func TestLatestDetectionRoundTrip(t *testing.T) {
	assert := assert.New(t)

	detector := &fakeDetector{frame: referenceFrame()}
	cache := newFakeRedis()
	svc := New(quietLogger(), detector, facegeometry.NewEngine(), cache)

	saved, err := svc.ProcessFrame(context.Background(), "sess-7", []byte("frame"))
	assert.NoError(err)

	latest, err := svc.LatestDetection(context.Background(), "sess-7")
	assert.NoError(err)
	assert.Equal(saved.DetectionID, latest.DetectionID)
	assert.Equal(saved.SessionID, latest.SessionID)
	assert.InDelta(saved.Confidence, latest.Confidence, 1e-9)
}

func TestLatestDetectionMissing(t *testing.T) {
	assert := assert.New(t)

	svc := New(quietLogger(), &fakeDetector{}, facegeometry.NewEngine(), newFakeRedis())

	result, err := svc.LatestDetection(context.Background(), "nobody")
	assert.Nil(result)
	assert.ErrorIs(err, detection.ErrNoDetectionResult)
}
