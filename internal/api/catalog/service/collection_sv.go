package catalogService

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/shuvo881/virtual-try-on/internal/api/catalog"
	"github.com/shuvo881/virtual-try-on/internal/entity"
	contextPkg "github.com/shuvo881/virtual-try-on/pkg/context"
)

func (s *catalogService) CreateCollection(ctx context.Context, req catalog.CreateCollectionRequest) (*catalog.CollectionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.catalogRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}
	defer repo.Rollback()

	collectionID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return nil, err
	}

	collection := entity.ModelCollection{
		ID:          collectionID,
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		CreatedAt:   time.Now(),
	}

	if err := repo.Collections.CreateCollection(ctx, collection); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create collection")
		return nil, catalog.ErrCreateCollection
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return nil, catalog.ErrCreateCollection
	}

	return &catalog.CollectionResponse{
		ID:          collection.ID,
		Name:        collection.Name,
		Description: collection.Description,
		IsPublic:    collection.IsPublic,
		ModelCount:  0,
		CreatedAt:   collection.CreatedAt,
	}, nil
}

func (s *catalogService) GetAllCollections(ctx context.Context) (*catalog.CollectionListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	collections, err := repo.Collections.GetAllCollections(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get collections")
		return nil, err
	}

	response := &catalog.CollectionListResponse{
		Collections: make([]catalog.CollectionResponse, 0, len(collections)),
	}

	for _, collection := range collections {
		response.Collections = append(response.Collections, catalog.CollectionResponse{
			ID:          collection.ID,
			Name:        collection.Name,
			Description: collection.Description,
			IsPublic:    collection.IsPublic,
			ModelCount:  len(collection.ModelIDs),
			CreatedAt:   collection.CreatedAt,
		})
	}

	return response, nil
}

func (s *catalogService) GetCollectionByID(ctx context.Context, id string) (*catalog.CollectionDetailResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	collection, err := repo.Collections.GetCollectionByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrCollectionNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Collection not found")
		}
		return nil, err
	}

	models, err := repo.Models.GetModelsByIDs(ctx, collection.ModelIDs)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get collection models")
		return nil, err
	}

	response := &catalog.CollectionDetailResponse{
		CollectionResponse: catalog.CollectionResponse{
			ID:          collection.ID,
			Name:        collection.Name,
			Description: collection.Description,
			IsPublic:    collection.IsPublic,
			ModelCount:  len(collection.ModelIDs),
			CreatedAt:   collection.CreatedAt,
		},
		Models: make([]catalog.ModelResponse, 0, len(models)),
	}

	for _, model := range models {
		response.Models = append(response.Models, s.makeModelResponse(ctx, model))
	}

	return response, nil
}

func (s *catalogService) UpdateCollection(ctx context.Context, id string, req catalog.UpdateCollectionRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.catalogRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	existing, err := repo.Collections.GetCollectionByID(ctx, id)
	if err != nil {
		return err
	}

	isPublic := existing.IsPublic
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	collection := entity.ModelCollection{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    isPublic,
	}

	if err := repo.Collections.UpdateCollection(ctx, collection); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to update collection")
		return catalog.ErrUpdateCollection
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return catalog.ErrUpdateCollection
	}

	return nil
}

func (s *catalogService) DeleteCollection(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.catalogRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	if err := repo.Collections.DeleteCollection(ctx, id); err != nil {
		if errors.Is(err, catalog.ErrCollectionNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Collection not found")
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete collection")
		return catalog.ErrDeleteCollection
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return catalog.ErrDeleteCollection
	}

	return nil
}

func (s *catalogService) AddModelToCollection(ctx context.Context, collectionID, modelID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.catalogRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	if _, err := repo.Collections.GetCollectionByID(ctx, collectionID); err != nil {
		return err
	}

	if _, err := repo.Models.GetModelByID(ctx, modelID); err != nil {
		return err
	}

	if err := repo.Collections.AddModel(ctx, collectionID, modelID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":    requestID,
			"collection_id": collectionID,
			"model_id":      modelID,
			"error":         err.Error(),
		}).Error("Failed to add model to collection")
		return catalog.ErrUpdateCollection
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return catalog.ErrUpdateCollection
	}

	return nil
}

func (s *catalogService) RemoveModelFromCollection(ctx context.Context, collectionID, modelID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.catalogRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	if _, err := repo.Collections.GetCollectionByID(ctx, collectionID); err != nil {
		return err
	}

	if err := repo.Collections.RemoveModel(ctx, collectionID, modelID); err != nil {
		if errors.Is(err, catalog.ErrModelNotInCollection) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id":    requestID,
			"collection_id": collectionID,
			"model_id":      modelID,
			"error":         err.Error(),
		}).Error("Failed to remove model from collection")
		return catalog.ErrUpdateCollection
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return catalog.ErrUpdateCollection
	}

	return nil
}
