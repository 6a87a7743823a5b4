package catalogRepository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/shuvo881/virtual-try-on/internal/api/catalog"
	"github.com/shuvo881/virtual-try-on/internal/entity"
	contextPkg "github.com/shuvo881/virtual-try-on/pkg/context"
)

type CategoryDB struct {
	ID          sql.NullString `db:"id"`
	Name        sql.NullString `db:"name"`
	Slug        sql.NullString `db:"slug"`
	Description sql.NullString `db:"description"`
	Icon        sql.NullString `db:"icon"`
	SortOrder   sql.NullInt64  `db:"sort_order"`
	IsActive    sql.NullBool   `db:"is_active"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (r *categoriesRepository) GetAllCategories(ctx context.Context) ([]entity.AccessoryCategory, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var categoriesList []CategoryDB

	query, args, err := sqlx.Named(queryGetAllCategories, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllCategories named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &categoriesList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllCategories execution err")
		return nil, err
	}

	var categories []entity.AccessoryCategory
	for _, categoryDB := range categoriesList {
		categories = append(categories, r.makeCategory(categoryDB))
	}

	return categories, nil
}

func (r *categoriesRepository) GetCategoryBySlug(ctx context.Context, slug string) (entity.AccessoryCategory, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var category CategoryDB

	argsKV := map[string]interface{}{
		"slug": slug,
	}

	query, args, err := sqlx.Named(queryGetCategoryBySlug, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryBySlug named query preparation err")
		return entity.AccessoryCategory{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&category); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"slug":       slug,
			}).Warn("GetCategoryBySlug no rows found")
			return entity.AccessoryCategory{}, catalog.ErrCategoryNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryBySlug execution err")
		return entity.AccessoryCategory{}, err
	}

	return r.makeCategory(category), nil
}

func (r *categoriesRepository) makeCategory(category CategoryDB) entity.AccessoryCategory {
	return entity.AccessoryCategory{
		ID:          category.ID.String,
		Name:        category.Name.String,
		Slug:        category.Slug.String,
		Description: category.Description.String,
		Icon:        category.Icon.String,
		SortOrder:   int(category.SortOrder.Int64),
		IsActive:    category.IsActive.Bool,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}
