package tryonService

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/shuvo881/virtual-try-on/internal/api/catalog"
	catalogRepository "github.com/shuvo881/virtual-try-on/internal/api/catalog/repository"
	"github.com/shuvo881/virtual-try-on/internal/api/tryon"
	"github.com/shuvo881/virtual-try-on/internal/entity"
	"github.com/shuvo881/virtual-try-on/pkg/redis"
)

type fakeRedis struct {
	store map[string][]byte
	ttls  map[string]time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{
		store: make(map[string][]byte),
		ttls:  make(map[string]time.Duration),
	}
}

func (f *fakeRedis) SetJSON(_ context.Context, key string, payload []byte, expiration time.Duration) error {
	f.store[key] = payload
	f.ttls[key] = expiration
	return nil
}

func (f *fakeRedis) GetJSON(_ context.Context, key string) ([]byte, error) {
	payload, ok := f.store[key]
	if !ok {
		return nil, redis.ErrNotFound
	}
	return payload, nil
}

func (f *fakeRedis) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.store, key)
	}
	return nil
}

func (f *fakeRedis) Keys(_ context.Context, pattern string) ([]string, error) {
	prefix := pattern[:len(pattern)-1] // trailing '*'
	var keys []string
	for key := range f.store {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

type fakeModels struct {
	known map[string]bool
}

func (f *fakeModels) GetModels(_ context.Context, _ catalogRepository.ModelFilter, _ string, _, _ int) ([]entity.AccessoryModel, int, error) {
	return nil, 0, nil
}

func (f *fakeModels) GetModelByID(_ context.Context, id string) (entity.AccessoryModel, error) {
	if !f.known[id] {
		return entity.AccessoryModel{}, catalog.ErrModelNotFound
	}
	return entity.AccessoryModel{ID: id, IsActive: true}, nil
}

func (f *fakeModels) GetModelsByIDs(_ context.Context, _ []string) ([]entity.AccessoryModel, error) {
	return nil, nil
}

func (f *fakeModels) GetFeaturedModels(_ context.Context, _ int) ([]entity.AccessoryModel, error) {
	return nil, nil
}

func (f *fakeModels) GetPopularModels(_ context.Context, _ int) ([]entity.AccessoryModel, error) {
	return nil, nil
}

func (f *fakeModels) IncrementUsage(_ context.Context, _ string) error { return nil }

func (f *fakeModels) UpdateAverageRating(_ context.Context, _ string, _ float64) error { return nil }

type fakeCatalogRepo struct {
	models *fakeModels
}

func (f *fakeCatalogRepo) NewClient(_ bool) (catalogRepository.Client, error) {
	return catalogRepository.Client{
		Models:   f.models,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newService(cache *fakeRedis) ITryOnService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	repo := &fakeCatalogRepo{models: &fakeModels{known: map[string]bool{"model-1": true}}}
	return New(logger, cache, repo)
}

func TestSaveTryOnStoresConfig(t *testing.T) {
	assert := assert.New(t)

	cache := newFakeRedis()
	svc := newService(cache)

	result, err := svc.SaveTryOn(context.Background(), "sess-1", tryon.SaveTryOnRequest{
		AccessoryType: "glasses",
		ModelID:       "model-1",
		ScaleFactor:   1.2,
	})
	assert.NoError(err)
	assert.Equal("sess-1", result.SessionKey)
	assert.Equal("glasses", result.AccessoryType)
	assert.Equal(1.2, result.ScaleFactor)

	assert.Contains(cache.store, "tryon_sess-1_glasses")
	assert.Equal(24*time.Hour, cache.ttls["tryon_sess-1_glasses"])
}

func TestSaveTryOnDefaultsScale(t *testing.T) {
	assert := assert.New(t)

	svc := newService(newFakeRedis())

	result, err := svc.SaveTryOn(context.Background(), "sess-1", tryon.SaveTryOnRequest{
		AccessoryType: "hat",
		ModelID:       "model-1",
	})
	assert.NoError(err)
	assert.Equal(1.0, result.ScaleFactor)
}

func TestSaveTryOnRejectsUnknownType(t *testing.T) {
	assert := assert.New(t)

	svc := newService(newFakeRedis())

	result, err := svc.SaveTryOn(context.Background(), "sess-1", tryon.SaveTryOnRequest{
		AccessoryType: "crown",
		ModelID:       "model-1",
	})
	assert.Nil(result)
	assert.ErrorIs(err, tryon.ErrInvalidAccessoryType)
}

func TestSaveTryOnRejectsUnknownModel(t *testing.T) {
	assert := assert.New(t)

	svc := newService(newFakeRedis())

	result, err := svc.SaveTryOn(context.Background(), "sess-1", tryon.SaveTryOnRequest{
		AccessoryType: "glasses",
		ModelID:       "missing-model",
	})
	assert.Nil(result)
	assert.ErrorIs(err, tryon.ErrModelNotFound)
}

func TestGetTryOnRoundTrip(t *testing.T) {
	assert := assert.New(t)

	svc := newService(newFakeRedis())

	saved, err := svc.SaveTryOn(context.Background(), "sess-2", tryon.SaveTryOnRequest{
		AccessoryType:       "earrings",
		ModelID:             "model-1",
		PositionAdjustments: map[string]float64{"x": 2.5, "y": -1.0},
	})
	assert.NoError(err)

	loaded, err := svc.GetTryOn(context.Background(), "sess-2", "earrings")
	assert.NoError(err)
	assert.Equal(saved.ModelID, loaded.ModelID)
	assert.Equal(saved.PositionAdjustments, loaded.PositionAdjustments)
}

func TestGetTryOnMissing(t *testing.T) {
	assert := assert.New(t)

	svc := newService(newFakeRedis())

	result, err := svc.GetTryOn(context.Background(), "sess-1", "glasses")
	assert.Nil(result)
	assert.ErrorIs(err, tryon.ErrTryOnNotFound)
}

func TestGetTryOnsListsSessionOnly(t *testing.T) {
	assert := assert.New(t)

	svc := newService(newFakeRedis())

	_, err := svc.SaveTryOn(context.Background(), "sess-a", tryon.SaveTryOnRequest{AccessoryType: "glasses", ModelID: "model-1"})
	assert.NoError(err)
	_, err = svc.SaveTryOn(context.Background(), "sess-a", tryon.SaveTryOnRequest{AccessoryType: "hat", ModelID: "model-1"})
	assert.NoError(err)
	_, err = svc.SaveTryOn(context.Background(), "sess-b", tryon.SaveTryOnRequest{AccessoryType: "glasses", ModelID: "model-1"})
	assert.NoError(err)

	result, err := svc.GetTryOns(context.Background(), "sess-a")
	assert.NoError(err)
	assert.Equal("sess-a", result.SessionKey)
	assert.Len(result.TryOns, 2)
}

func TestRemoveTryOn(t *testing.T) {
	assert := assert.New(t)

	cache := newFakeRedis()
	svc := newService(cache)

	_, err := svc.SaveTryOn(context.Background(), "sess-1", tryon.SaveTryOnRequest{AccessoryType: "glasses", ModelID: "model-1"})
	assert.NoError(err)

	assert.NoError(svc.RemoveTryOn(context.Background(), "sess-1", "glasses"))
	assert.NotContains(cache.store, "tryon_sess-1_glasses")

	err = svc.RemoveTryOn(context.Background(), "sess-1", "glasses")
	assert.ErrorIs(err, tryon.ErrTryOnNotFound)
}

func TestClearTryOns(t *testing.T) {
	assert := assert.New(t)

	cache := newFakeRedis()
	svc := newService(cache)

	_, err := svc.SaveTryOn(context.Background(), "sess-1", tryon.SaveTryOnRequest{AccessoryType: "glasses", ModelID: "model-1"})
	assert.NoError(err)
	_, err = svc.SaveTryOn(context.Background(), "sess-1", tryon.SaveTryOnRequest{AccessoryType: "hat", ModelID: "model-1"})
	assert.NoError(err)

	assert.NoError(svc.ClearTryOns(context.Background(), "sess-1"))
	assert.Empty(cache.store)
}
