package catalogService

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/shuvo881/virtual-try-on/internal/api/catalog"
)

func TestResolveOrderingDefault(t *testing.T) {
	assert := assert.New(t)

	orderBy, err := resolveOrdering("")
	assert.NoError(err)
	assert.Equal("m.created_at DESC", orderBy)
}

func TestResolveOrderingWhitelist(t *testing.T) {
	assert := assert.New(t)

	cases := map[string]string{
		"created_at":      "m.created_at ASC",
		"-created_at":     "m.created_at DESC",
		"name":            "m.name ASC",
		"-name":           "m.name DESC",
		"usage_count":     "m.usage_count ASC",
		"-usage_count":    "m.usage_count DESC",
		"average_rating":  "m.average_rating ASC",
		"-average_rating": "m.average_rating DESC",
	}

	for input, expected := range cases {
		orderBy, err := resolveOrdering(input)
		assert.NoError(err, input)
		assert.Equal(expected, orderBy, input)
	}
}

func TestResolveOrderingRejectsUnknownFields(t *testing.T) {
	assert := assert.New(t)

	for _, input := range []string{"id", "-file_size", "created_at; DROP TABLE accessory_models", "m.name"} {
		orderBy, err := resolveOrdering(input)
		assert.ErrorIs(err, catalog.ErrInvalidOrdering, input)
		assert.Empty(orderBy, input)
	}
}

func TestRateModelRejectsOutOfRangeRating(t *testing.T) {
	assert := assert.New(t)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	// The range check runs before any repository access.
	svc := New(logger, nil, nil, nil)

	for _, rating := range []int{0, -1, 6, 100} {
		result, err := svc.RateModel(context.Background(), "model-1", "sess-1", catalog.RateModelRequest{Rating: rating})
		assert.Nil(result)
		assert.ErrorIs(err, catalog.ErrInvalidRating)
	}
}
