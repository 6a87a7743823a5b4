package catalogService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/shuvo881/virtual-try-on/internal/api/catalog"
	catalogRepository "github.com/shuvo881/virtual-try-on/internal/api/catalog/repository"
	"github.com/shuvo881/virtual-try-on/pkg/s3"
	"github.com/shuvo881/virtual-try-on/pkg/utils"
)

type ICatalogService interface {
	GetAllCategories(ctx context.Context) (*catalog.CategoryListResponse, error)
	ListModels(ctx context.Context, query catalog.ListModelsQuery) (*catalog.ModelListResponse, error)
	GetModelByID(ctx context.Context, id string) (*catalog.ModelResponse, error)
	GetFeaturedModels(ctx context.Context, limit int) (*catalog.ModelListResponse, error)
	GetPopularModels(ctx context.Context, limit int) (*catalog.ModelListResponse, error)
	GetModelsGroupedByCategory(ctx context.Context) (*catalog.GroupedModelsResponse, error)
	RecordUsage(ctx context.Context, id string) error
	RateModel(ctx context.Context, id, sessionKey string, req catalog.RateModelRequest) (*catalog.RateModelResponse, error)

	CreateCollection(ctx context.Context, req catalog.CreateCollectionRequest) (*catalog.CollectionResponse, error)
	GetAllCollections(ctx context.Context) (*catalog.CollectionListResponse, error)
	GetCollectionByID(ctx context.Context, id string) (*catalog.CollectionDetailResponse, error)
	UpdateCollection(ctx context.Context, id string, req catalog.UpdateCollectionRequest) error
	DeleteCollection(ctx context.Context, id string) error
	AddModelToCollection(ctx context.Context, collectionID, modelID string) error
	RemoveModelFromCollection(ctx context.Context, collectionID, modelID string) error
}

type catalogService struct {
	log         *logrus.Logger
	catalogRepo catalogRepository.Repository
	s3Client    s3.ItfS3
	utils       utils.IUtils
}

func New(
	log *logrus.Logger,
	catalogRepo catalogRepository.Repository,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) ICatalogService {
	return &catalogService{
		log:         log,
		catalogRepo: catalogRepo,
		s3Client:    s3Client,
		utils:       utils,
	}
}
