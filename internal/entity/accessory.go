package entity

import "time"

type AccessoryCategory struct {
	ID          string
	Name        string
	Slug        string
	Description string
	Icon        string
	SortOrder   int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ModelQuality string

const (
	QualityLow    ModelQuality = "low"
	QualityMedium ModelQuality = "medium"
	QualityHigh   ModelQuality = "high"
	QualityUltra  ModelQuality = "ultra"
)

// QualityForSize buckets a model file size in bytes into a quality tier.
func QualityForSize(size int64) ModelQuality {
	switch {
	case size < 1*1024*1024:
		return QualityLow
	case size < 5*1024*1024:
		return QualityMedium
	case size < 10*1024*1024:
		return QualityHigh
	default:
		return QualityUltra
	}
}

type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// AccessoryModel is a 3D accessory asset in the catalog. The GLB/GLTF
// file and its thumbnail live in object storage; only their keys are
// stored here and presigned URLs are produced at read time.
type AccessoryModel struct {
	ID            string
	Name          string
	CategoryID    string
	CategorySlug  string
	Description   string
	ModelFileKey  string
	ThumbnailKey  string
	Quality       ModelQuality
	FileSize      int64
	PolygonCount  int
	DefaultScale  float64
	DefaultPos    Vector3
	DefaultRot    Vector3
	Tags          []string
	IsActive      bool
	IsFeatured    bool
	DownloadCount int
	UsageCount    int
	AverageRating float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DefaultTransform is the authoring-time placement applied before the
// per-frame accessory transform from the geometry engine.
func (m AccessoryModel) DefaultTransform() map[string]interface{} {
	return map[string]interface{}{
		"position": m.DefaultPos,
		"rotation": m.DefaultRot,
		"scale":    m.DefaultScale,
	}
}

type ModelRating struct {
	ID         string
	ModelID    string
	SessionKey string
	Rating     int
	Comment    string
	CreatedAt  time.Time
}

type ModelCollection struct {
	ID          string
	Name        string
	Description string
	IsPublic    bool
	CreatedAt   time.Time
	ModelIDs    []string
}
