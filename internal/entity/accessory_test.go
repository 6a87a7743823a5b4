package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualityForSize(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(QualityLow, QualityForSize(0))
	assert.Equal(QualityLow, QualityForSize(1*1024*1024-1))
	assert.Equal(QualityMedium, QualityForSize(1*1024*1024))
	assert.Equal(QualityMedium, QualityForSize(5*1024*1024-1))
	assert.Equal(QualityHigh, QualityForSize(5*1024*1024))
	assert.Equal(QualityHigh, QualityForSize(10*1024*1024-1))
	assert.Equal(QualityUltra, QualityForSize(10*1024*1024))
	assert.Equal(QualityUltra, QualityForSize(500*1024*1024))
}

func TestAccessoryTypeValid(t *testing.T) {
	assert := assert.New(t)

	for _, accessoryType := range []AccessoryType{
		AccessoryTypeGlasses, AccessoryTypeHat, AccessoryTypeEarrings, AccessoryTypeNecklace,
	} {
		assert.True(accessoryType.Valid(), string(accessoryType))
	}

	for _, accessoryType := range []AccessoryType{"", "crown", "Glasses", "mask"} {
		assert.False(accessoryType.Valid(), string(accessoryType))
	}
}
