package tryonService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/shuvo881/virtual-try-on/internal/api/tryon"
	catalogRepository "github.com/shuvo881/virtual-try-on/internal/api/catalog/repository"
	"github.com/shuvo881/virtual-try-on/pkg/redis"
)

type ITryOnService interface {
	SaveTryOn(ctx context.Context, sessionKey string, req tryon.SaveTryOnRequest) (*tryon.TryOnResponse, error)
	GetTryOn(ctx context.Context, sessionKey, accessoryType string) (*tryon.TryOnResponse, error)
	GetTryOns(ctx context.Context, sessionKey string) (*tryon.TryOnListResponse, error)
	RemoveTryOn(ctx context.Context, sessionKey, accessoryType string) error
	ClearTryOns(ctx context.Context, sessionKey string) error
}

type tryOnService struct {
	log         *logrus.Logger
	redis       redis.IRedis
	catalogRepo catalogRepository.Repository
}

func New(
	log *logrus.Logger,
	redis redis.IRedis,
	catalogRepo catalogRepository.Repository,
) ITryOnService {
	return &tryOnService{
		log:         log,
		redis:       redis,
		catalogRepo: catalogRepo,
	}
}
