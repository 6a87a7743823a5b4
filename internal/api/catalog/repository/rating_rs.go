package catalogRepository

import (
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/shuvo881/virtual-try-on/internal/entity"
	contextPkg "github.com/shuvo881/virtual-try-on/pkg/context"
)

func (r *ratingsRepository) UpsertRating(ctx context.Context, rating entity.ModelRating) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":          rating.ID,
		"model_id":    rating.ModelID,
		"session_key": rating.SessionKey,
		"rating":      rating.Rating,
		"comment":     rating.Comment,
		"created_at":  rating.CreatedAt,
	}

	query, args, err := sqlx.Named(queryUpsertRating, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpsertRating named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpsertRating execution err")
		return err
	}

	return nil
}

func (r *ratingsRepository) GetAverageRating(ctx context.Context, modelID string) (float64, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var average float64

	argsKV := map[string]interface{}{
		"model_id": modelID,
	}

	query, args, err := sqlx.Named(queryGetAverageRating, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAverageRating named query preparation err")
		return 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&average); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAverageRating execution err")
		return 0, err
	}

	return average, nil
}
