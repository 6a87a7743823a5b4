package catalogRepository

import (
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/shuvo881/virtual-try-on/internal/entity"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		var err error
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Categories:  &categoriesRepository{q: sqlExecutor, log: r.log},
		Models:      &modelsRepository{q: sqlExecutor, log: r.log},
		Ratings:     &ratingsRepository{q: sqlExecutor, log: r.log},
		Collections: &collectionsRepository{q: sqlExecutor, log: r.log},
		Commit:      commitFunc,
		Rollback:    rollbackFunc,
	}, nil
}

// ModelFilter narrows the catalog listing. Zero values mean "no
// constraint" for every field.
type ModelFilter struct {
	CategorySlug string
	Quality      string
	FeaturedOnly bool
	Search       string
	Tag          string
}

type Client struct {
	Categories interface {
		GetAllCategories(ctx context.Context) ([]entity.AccessoryCategory, error)
		GetCategoryBySlug(ctx context.Context, slug string) (entity.AccessoryCategory, error)
	}

	Models interface {
		GetModels(ctx context.Context, filter ModelFilter, orderBy string, limit, offset int) ([]entity.AccessoryModel, int, error)
		GetModelByID(ctx context.Context, id string) (entity.AccessoryModel, error)
		GetModelsByIDs(ctx context.Context, ids []string) ([]entity.AccessoryModel, error)
		GetFeaturedModels(ctx context.Context, limit int) ([]entity.AccessoryModel, error)
		GetPopularModels(ctx context.Context, limit int) ([]entity.AccessoryModel, error)
		IncrementUsage(ctx context.Context, id string) error
		UpdateAverageRating(ctx context.Context, id string, average float64) error
	}

	Ratings interface {
		UpsertRating(ctx context.Context, rating entity.ModelRating) error
		GetAverageRating(ctx context.Context, modelID string) (float64, error)
	}

	Collections interface {
		CreateCollection(ctx context.Context, collection entity.ModelCollection) error
		GetAllCollections(ctx context.Context) ([]entity.ModelCollection, error)
		GetCollectionByID(ctx context.Context, id string) (entity.ModelCollection, error)
		UpdateCollection(ctx context.Context, collection entity.ModelCollection) error
		DeleteCollection(ctx context.Context, id string) error
		AddModel(ctx context.Context, collectionID, modelID string) error
		RemoveModel(ctx context.Context, collectionID, modelID string) error
	}

	Commit   func() error
	Rollback func() error
}

type categoriesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type modelsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type ratingsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type collectionsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
