package catalogService

import (
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/shuvo881/virtual-try-on/internal/api/catalog"
	catalogRepository "github.com/shuvo881/virtual-try-on/internal/api/catalog/repository"
	"github.com/shuvo881/virtual-try-on/internal/entity"
	contextPkg "github.com/shuvo881/virtual-try-on/pkg/context"
)

// orderingColumns whitelists the client-facing ordering fields against
// the columns they sort by. A leading "-" flips the direction.
var orderingColumns = map[string]string{
	"created_at":     "m.created_at",
	"name":           "m.name",
	"usage_count":    "m.usage_count",
	"average_rating": "m.average_rating",
}

const defaultOrdering = "m.created_at DESC"

func resolveOrdering(ordering string) (string, error) {
	if ordering == "" {
		return defaultOrdering, nil
	}

	direction := "ASC"
	field := ordering
	if strings.HasPrefix(ordering, "-") {
		direction = "DESC"
		field = ordering[1:]
	}

	column, ok := orderingColumns[field]
	if !ok {
		return "", catalog.ErrInvalidOrdering
	}

	return column + " " + direction, nil
}

func (s *catalogService) GetAllCategories(ctx context.Context) (*catalog.CategoryListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	categories, err := repo.Categories.GetAllCategories(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get categories")
		return nil, err
	}

	response := &catalog.CategoryListResponse{
		Categories: make([]catalog.CategoryResponse, 0, len(categories)),
	}

	for _, category := range categories {
		response.Categories = append(response.Categories, catalog.CategoryResponse{
			ID:          category.ID,
			Name:        category.Name,
			Slug:        category.Slug,
			Description: category.Description,
			Icon:        category.Icon,
			SortOrder:   category.SortOrder,
		})
	}

	return response, nil
}

func (s *catalogService) ListModels(ctx context.Context, query catalog.ListModelsQuery) (*catalog.ModelListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	orderBy, err := resolveOrdering(query.Ordering)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"ordering":   query.Ordering,
		}).Warn("Unsupported ordering field")
		return nil, err
	}

	repo, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	if query.Category != "" {
		if _, err := repo.Categories.GetCategoryBySlug(ctx, query.Category); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"category":   query.Category,
			}).Warn("Category not found")
			return nil, catalog.ErrCategoryNotFound
		}
	}

	page := query.Page
	limit := query.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	offset := (page - 1) * limit

	filter := catalogRepository.ModelFilter{
		CategorySlug: query.Category,
		Quality:      query.Quality,
		FeaturedOnly: query.Featured,
		Search:       query.Search,
		Tag:          query.Tag,
	}

	models, total, err := repo.Models.GetModels(ctx, filter, orderBy, limit, offset)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"page":       page,
			"limit":      limit,
			"error":      err.Error(),
		}).Error("Failed to get models")
		return nil, err
	}

	response := &catalog.ModelListResponse{
		Models: make([]catalog.ModelResponse, 0, len(models)),
		Total:  total,
		Page:   page,
		Limit:  limit,
	}

	for _, model := range models {
		response.Models = append(response.Models, s.makeModelResponse(ctx, model))
	}

	return response, nil
}

func (s *catalogService) GetModelByID(ctx context.Context, id string) (*catalog.ModelResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	model, err := repo.Models.GetModelByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrModelNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Model not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get model")
		}
		return nil, err
	}

	response := s.makeModelResponse(ctx, model)
	return &response, nil
}

func (s *catalogService) GetFeaturedModels(ctx context.Context, limit int) (*catalog.ModelListResponse, error) {
	return s.curatedModels(ctx, limit, func(repo catalogRepository.Client, ctx context.Context, limit int) ([]entity.AccessoryModel, error) {
		return repo.Models.GetFeaturedModels(ctx, limit)
	})
}

func (s *catalogService) GetPopularModels(ctx context.Context, limit int) (*catalog.ModelListResponse, error) {
	return s.curatedModels(ctx, limit, func(repo catalogRepository.Client, ctx context.Context, limit int) ([]entity.AccessoryModel, error) {
		return repo.Models.GetPopularModels(ctx, limit)
	})
}

func (s *catalogService) curatedModels(ctx context.Context, limit int, fetch func(catalogRepository.Client, context.Context, int) ([]entity.AccessoryModel, error)) (*catalog.ModelListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	if limit < 1 || limit > 50 {
		limit = 10
	}

	models, err := fetch(repo, ctx, limit)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get curated models")
		return nil, err
	}

	response := &catalog.ModelListResponse{
		Models: make([]catalog.ModelResponse, 0, len(models)),
		Total:  len(models),
		Page:   1,
		Limit:  limit,
	}

	for _, model := range models {
		response.Models = append(response.Models, s.makeModelResponse(ctx, model))
	}

	return response, nil
}

func (s *catalogService) GetModelsGroupedByCategory(ctx context.Context) (*catalog.GroupedModelsResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	categories, err := repo.Categories.GetAllCategories(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get categories")
		return nil, err
	}

	response := &catalog.GroupedModelsResponse{
		Groups: make(map[string][]catalog.ModelResponse, len(categories)),
	}

	for _, category := range categories {
		filter := catalogRepository.ModelFilter{CategorySlug: category.Slug}

		models, _, err := repo.Models.GetModels(ctx, filter, defaultOrdering, 100, 0)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"category":   category.Slug,
				"error":      err.Error(),
			}).Error("Failed to get models for category")
			return nil, err
		}

		group := make([]catalog.ModelResponse, 0, len(models))
		for _, model := range models {
			group = append(group, s.makeModelResponse(ctx, model))
		}
		response.Groups[category.Slug] = group
	}

	return response, nil
}

func (s *catalogService) RecordUsage(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Models.IncrementUsage(ctx, id); err != nil {
		if errors.Is(err, catalog.ErrModelNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Model not found for usage increment")
		}
		return err
	}

	return nil
}

func (s *catalogService) RateModel(ctx context.Context, id, sessionKey string, req catalog.RateModelRequest) (*catalog.RateModelResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if req.Rating < 1 || req.Rating > 5 {
		return nil, catalog.ErrInvalidRating
	}

	repo, err := s.catalogRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}
	defer repo.Rollback()

	if _, err := repo.Models.GetModelByID(ctx, id); err != nil {
		return nil, err
	}

	ratingID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return nil, err
	}

	rating := entity.ModelRating{
		ID:         ratingID,
		ModelID:    id,
		SessionKey: sessionKey,
		Rating:     req.Rating,
		Comment:    req.Comment,
		CreatedAt:  time.Now(),
	}

	if err := repo.Ratings.UpsertRating(ctx, rating); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to upsert rating")
		return nil, err
	}

	average, err := repo.Ratings.GetAverageRating(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to recompute average rating")
		return nil, err
	}

	if err := repo.Models.UpdateAverageRating(ctx, id, average); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to store average rating")
		return nil, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return nil, err
	}

	return &catalog.RateModelResponse{
		ModelID:       id,
		AverageRating: average,
	}, nil
}

func (s *catalogService) makeModelResponse(ctx context.Context, model entity.AccessoryModel) catalog.ModelResponse {
	requestID := contextPkg.GetRequestID(ctx)

	modelFileURL := model.ModelFileKey
	if modelFileURL != "" {
		presignedURL, err := s.s3Client.PresignUrl(modelFileURL)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         model.ID,
				"key":        model.ModelFileKey,
				"error":      err.Error(),
			}).Warn("Failed to create presigned URL for model file")
		} else {
			modelFileURL = presignedURL
		}
	}

	thumbnailURL := model.ThumbnailKey
	if thumbnailURL != "" {
		presignedURL, err := s.s3Client.PresignUrl(thumbnailURL)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         model.ID,
				"key":        model.ThumbnailKey,
				"error":      err.Error(),
			}).Warn("Failed to create presigned URL for thumbnail")
		} else {
			thumbnailURL = presignedURL
		}
	}

	return catalog.ModelResponse{
		ID:               model.ID,
		Name:             model.Name,
		CategorySlug:     model.CategorySlug,
		Description:      model.Description,
		ModelFileURL:     modelFileURL,
		ThumbnailURL:     thumbnailURL,
		Quality:          string(model.Quality),
		FileSize:         model.FileSize,
		PolygonCount:     model.PolygonCount,
		DefaultTransform: model.DefaultTransform(),
		Tags:             model.Tags,
		IsFeatured:       model.IsFeatured,
		UsageCount:       model.UsageCount,
		AverageRating:    model.AverageRating,
		CreatedAt:        model.CreatedAt,
	}
}
