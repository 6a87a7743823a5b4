package catalogRepository

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/shuvo881/virtual-try-on/internal/api/catalog"
	"github.com/shuvo881/virtual-try-on/internal/entity"
	contextPkg "github.com/shuvo881/virtual-try-on/pkg/context"
)

type ModelDB struct {
	ID            sql.NullString  `db:"id"`
	Name          sql.NullString  `db:"name"`
	CategoryID    sql.NullString  `db:"category_id"`
	CategorySlug  sql.NullString  `db:"category_slug"`
	Description   sql.NullString  `db:"description"`
	ModelFileKey  sql.NullString  `db:"model_file_key"`
	ThumbnailKey  sql.NullString  `db:"thumbnail_key"`
	Quality       sql.NullString  `db:"quality"`
	FileSize      sql.NullInt64   `db:"file_size"`
	PolygonCount  sql.NullInt64   `db:"polygon_count"`
	DefaultScale  sql.NullFloat64 `db:"default_scale"`
	DefaultPosX   sql.NullFloat64 `db:"default_pos_x"`
	DefaultPosY   sql.NullFloat64 `db:"default_pos_y"`
	DefaultPosZ   sql.NullFloat64 `db:"default_pos_z"`
	DefaultRotX   sql.NullFloat64 `db:"default_rot_x"`
	DefaultRotY   sql.NullFloat64 `db:"default_rot_y"`
	DefaultRotZ   sql.NullFloat64 `db:"default_rot_z"`
	Tags          pq.StringArray  `db:"tags"`
	IsActive      sql.NullBool    `db:"is_active"`
	IsFeatured    sql.NullBool    `db:"is_featured"`
	DownloadCount sql.NullInt64   `db:"download_count"`
	UsageCount    sql.NullInt64   `db:"usage_count"`
	AverageRating sql.NullFloat64 `db:"average_rating"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

// filterClauses appends the WHERE fragments and named args for a
// ModelFilter. The base queries already constrain is_active.
func filterClauses(filter ModelFilter, argsKV map[string]interface{}) string {
	var sb strings.Builder

	if filter.CategorySlug != "" {
		sb.WriteString(" AND c.slug = :category_slug")
		argsKV["category_slug"] = filter.CategorySlug
	}
	if filter.Quality != "" {
		sb.WriteString(" AND m.quality = :quality")
		argsKV["quality"] = filter.Quality
	}
	if filter.FeaturedOnly {
		sb.WriteString(" AND m.is_featured = TRUE")
	}
	if filter.Search != "" {
		sb.WriteString(" AND (m.name ILIKE :search OR m.description ILIKE :search)")
		argsKV["search"] = "%" + filter.Search + "%"
	}
	if filter.Tag != "" {
		sb.WriteString(" AND :tag = ANY(m.tags)")
		argsKV["tag"] = filter.Tag
	}

	return sb.String()
}

func (r *modelsRepository) GetModels(ctx context.Context, filter ModelFilter, orderBy string, limit, offset int) ([]entity.AccessoryModel, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var modelsList []ModelDB
	var total int

	countArgsKV := map[string]interface{}{}
	countQuery := queryCountModels + filterClauses(filter, countArgsKV)

	countQuery, countArgs, err := sqlx.Named(countQuery, countArgsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountModels named query preparation err")
		return nil, 0, err
	}

	countQuery = r.q.Rebind(countQuery)

	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountModels execution err")
		return nil, 0, err
	}

	argsKV := map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	}
	listQuery := querySelectModels + filterClauses(filter, argsKV) +
		" ORDER BY " + orderBy + " LIMIT :limit OFFSET :offset"

	query, args, err := sqlx.Named(listQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetModels named query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &modelsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetModels execution err")
		return nil, 0, err
	}

	var models []entity.AccessoryModel
	for _, modelDB := range modelsList {
		models = append(models, r.makeModel(modelDB))
	}

	return models, total, nil
}

func (r *modelsRepository) GetModelByID(ctx context.Context, id string) (entity.AccessoryModel, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var model ModelDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetModelByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetModelByID named query preparation err")
		return entity.AccessoryModel{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&model); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetModelByID no rows found")
			return entity.AccessoryModel{}, catalog.ErrModelNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetModelByID execution err")
		return entity.AccessoryModel{}, err
	}

	return r.makeModel(model), nil
}

func (r *modelsRepository) GetModelsByIDs(ctx context.Context, ids []string) ([]entity.AccessoryModel, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if len(ids) == 0 {
		return nil, nil
	}

	var modelsList []ModelDB

	query, args, err := sqlx.In(querySelectModels+" AND m.id IN (?)", ids)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetModelsByIDs query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &modelsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetModelsByIDs execution err")
		return nil, err
	}

	var models []entity.AccessoryModel
	for _, modelDB := range modelsList {
		models = append(models, r.makeModel(modelDB))
	}

	return models, nil
}

func (r *modelsRepository) GetFeaturedModels(ctx context.Context, limit int) ([]entity.AccessoryModel, error) {
	return r.selectWithLimit(ctx, queryGetFeaturedModels, limit, "GetFeaturedModels")
}

func (r *modelsRepository) GetPopularModels(ctx context.Context, limit int) ([]entity.AccessoryModel, error) {
	return r.selectWithLimit(ctx, queryGetPopularModels, limit, "GetPopularModels")
}

func (r *modelsRepository) selectWithLimit(ctx context.Context, namedQuery string, limit int, operation string) ([]entity.AccessoryModel, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var modelsList []ModelDB

	argsKV := map[string]interface{}{
		"limit": limit,
	}

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &modelsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " execution err")
		return nil, err
	}

	var models []entity.AccessoryModel
	for _, modelDB := range modelsList {
		models = append(models, r.makeModel(modelDB))
	}

	return models, nil
}

func (r *modelsRepository) IncrementUsage(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":         id,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryIncrementUsage, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("IncrementUsage named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("IncrementUsage execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("IncrementUsage rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("IncrementUsage no rows affected")
		return catalog.ErrModelNotFound
	}

	return nil
}

func (r *modelsRepository) UpdateAverageRating(ctx context.Context, id string, average float64) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":             id,
		"average_rating": average,
		"updated_at":     time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateAverageRating, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateAverageRating named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateAverageRating execution err")
		return err
	}

	return nil
}

func (r *modelsRepository) makeModel(model ModelDB) entity.AccessoryModel {
	return entity.AccessoryModel{
		ID:           model.ID.String,
		Name:         model.Name.String,
		CategoryID:   model.CategoryID.String,
		CategorySlug: model.CategorySlug.String,
		Description:  model.Description.String,
		ModelFileKey: model.ModelFileKey.String,
		ThumbnailKey: model.ThumbnailKey.String,
		Quality:      entity.ModelQuality(model.Quality.String),
		FileSize:     model.FileSize.Int64,
		PolygonCount: int(model.PolygonCount.Int64),
		DefaultScale: model.DefaultScale.Float64,
		DefaultPos: entity.Vector3{
			X: model.DefaultPosX.Float64,
			Y: model.DefaultPosY.Float64,
			Z: model.DefaultPosZ.Float64,
		},
		DefaultRot: entity.Vector3{
			X: model.DefaultRotX.Float64,
			Y: model.DefaultRotY.Float64,
			Z: model.DefaultRotZ.Float64,
		},
		Tags:          model.Tags,
		IsActive:      model.IsActive.Bool,
		IsFeatured:    model.IsFeatured.Bool,
		DownloadCount: int(model.DownloadCount.Int64),
		UsageCount:    int(model.UsageCount.Int64),
		AverageRating: model.AverageRating.Float64,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}
