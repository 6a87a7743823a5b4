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

type CollectionDB struct {
	ID          sql.NullString `db:"id"`
	Name        sql.NullString `db:"name"`
	Description sql.NullString `db:"description"`
	IsPublic    sql.NullBool   `db:"is_public"`
	CreatedAt   time.Time      `db:"created_at"`
}

type CollectionModelDB struct {
	CollectionID sql.NullString `db:"collection_id"`
	ModelID      sql.NullString `db:"model_id"`
}

func (r *collectionsRepository) CreateCollection(ctx context.Context, collection entity.ModelCollection) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":          collection.ID,
		"name":        collection.Name,
		"description": collection.Description,
		"is_public":   collection.IsPublic,
		"created_at":  collection.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateCollection, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateCollection named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateCollection execution err")
		return err
	}

	return nil
}

func (r *collectionsRepository) GetAllCollections(ctx context.Context) ([]entity.ModelCollection, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var collectionsList []CollectionDB

	query, args, err := sqlx.Named(queryGetAllCollections, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllCollections named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &collectionsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllCollections execution err")
		return nil, err
	}

	memberQuery, memberArgs, err := sqlx.Named(queryGetAllCollectionModelIDs, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllCollectionModelIDs named query preparation err")
		return nil, err
	}

	memberQuery = r.q.Rebind(memberQuery)

	var members []CollectionModelDB
	if err := r.q.SelectContext(ctx, &members, memberQuery, memberArgs...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllCollectionModelIDs execution err")
		return nil, err
	}

	modelIDsByCollection := make(map[string][]string)
	for _, member := range members {
		modelIDsByCollection[member.CollectionID.String] = append(
			modelIDsByCollection[member.CollectionID.String], member.ModelID.String)
	}

	var collections []entity.ModelCollection
	for _, collectionDB := range collectionsList {
		collection := r.makeCollection(collectionDB)
		collection.ModelIDs = modelIDsByCollection[collection.ID]
		collections = append(collections, collection)
	}

	return collections, nil
}

func (r *collectionsRepository) GetCollectionByID(ctx context.Context, id string) (entity.ModelCollection, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var collection CollectionDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetCollectionByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCollectionByID named query preparation err")
		return entity.ModelCollection{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&collection); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetCollectionByID no rows found")
			return entity.ModelCollection{}, catalog.ErrCollectionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCollectionByID execution err")
		return entity.ModelCollection{}, err
	}

	memberArgsKV := map[string]interface{}{
		"collection_id": id,
	}

	memberQuery, memberArgs, err := sqlx.Named(queryGetCollectionModelIDs, memberArgsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCollectionModelIDs named query preparation err")
		return entity.ModelCollection{}, err
	}

	memberQuery = r.q.Rebind(memberQuery)

	var members []CollectionModelDB
	if err := r.q.SelectContext(ctx, &members, memberQuery, memberArgs...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCollectionModelIDs execution err")
		return entity.ModelCollection{}, err
	}

	result := r.makeCollection(collection)
	for _, member := range members {
		result.ModelIDs = append(result.ModelIDs, member.ModelID.String)
	}

	return result, nil
}

func (r *collectionsRepository) UpdateCollection(ctx context.Context, collection entity.ModelCollection) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":          collection.ID,
		"name":        collection.Name,
		"description": collection.Description,
		"is_public":   collection.IsPublic,
	}

	query, args, err := sqlx.Named(queryUpdateCollection, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateCollection named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateCollection execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateCollection rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         collection.ID,
		}).Warn("UpdateCollection no rows affected")
		return catalog.ErrCollectionNotFound
	}

	return nil
}

func (r *collectionsRepository) DeleteCollection(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteCollection, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteCollection named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteCollection execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteCollection rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeleteCollection no rows affected")
		return catalog.ErrCollectionNotFound
	}

	return nil
}

func (r *collectionsRepository) AddModel(ctx context.Context, collectionID, modelID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"collection_id": collectionID,
		"model_id":      modelID,
		"added_at":      time.Now(),
	}

	query, args, err := sqlx.Named(queryAddCollectionModel, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("AddModel named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("AddModel execution err")
		return err
	}

	return nil
}

func (r *collectionsRepository) RemoveModel(ctx context.Context, collectionID, modelID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"collection_id": collectionID,
		"model_id":      modelID,
	}

	query, args, err := sqlx.Named(queryRemoveCollectionModel, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("RemoveModel named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("RemoveModel execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("RemoveModel rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id":    requestID,
			"collection_id": collectionID,
			"model_id":      modelID,
		}).Warn("RemoveModel no rows affected")
		return catalog.ErrModelNotInCollection
	}

	return nil
}

func (r *collectionsRepository) makeCollection(collection CollectionDB) entity.ModelCollection {
	return entity.ModelCollection{
		ID:          collection.ID.String,
		Name:        collection.Name.String,
		Description: collection.Description.String,
		IsPublic:    collection.IsPublic.Bool,
		CreatedAt:   collection.CreatedAt,
	}
}
