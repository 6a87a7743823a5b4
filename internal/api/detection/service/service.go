package detectionService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/shuvo881/virtual-try-on/internal/api/detection"
	"github.com/shuvo881/virtual-try-on/pkg/facegeometry"
	"github.com/shuvo881/virtual-try-on/pkg/redis"
	websocketPkg "github.com/shuvo881/virtual-try-on/pkg/websocket"
)

type IDetectionService interface {
	DetectFromImage(ctx context.Context, sessionKey string, imageBase64 string) (*detection.DetectFaceResponse, error)
	ProcessFrame(ctx context.Context, sessionKey string, frame []byte) (*detection.DetectFaceResponse, error)
	LatestDetection(ctx context.Context, sessionKey string) (*detection.DetectFaceResponse, error)
}

type detectionService struct {
	log      *logrus.Logger
	detector websocketPkg.ILandmarkDetector
	engine   *facegeometry.Engine
	redis    redis.IRedis
}

func New(
	log *logrus.Logger,
	detector websocketPkg.ILandmarkDetector,
	engine *facegeometry.Engine,
	redis redis.IRedis,
) IDetectionService {
	return &detectionService{
		log:      log,
		detector: detector,
		engine:   engine,
		redis:    redis,
	}
}
