package catalog

import "time"

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	SortOrder   int    `json:"sort_order"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

type ListModelsQuery struct {
	Category string `json:"category" validate:"omitempty"`
	Quality  string `json:"quality" validate:"omitempty,oneof=low medium high ultra"`
	Featured bool   `json:"featured"`
	Search   string `json:"search" validate:"omitempty,max=128"`
	Tag      string `json:"tag" validate:"omitempty,max=64"`
	Ordering string `json:"ordering" validate:"omitempty"`
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
}

type ModelResponse struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	CategorySlug     string                 `json:"category_slug"`
	Description      string                 `json:"description"`
	ModelFileURL     string                 `json:"model_file_url"`
	ThumbnailURL     string                 `json:"thumbnail_url"`
	Quality          string                 `json:"quality"`
	FileSize         int64                  `json:"file_size"`
	PolygonCount     int                    `json:"polygon_count"`
	DefaultTransform map[string]interface{} `json:"default_transform"`
	Tags             []string               `json:"tags"`
	IsFeatured       bool                   `json:"is_featured"`
	UsageCount       int                    `json:"usage_count"`
	AverageRating    float64                `json:"average_rating"`
	CreatedAt        time.Time              `json:"created_at"`
}

type GroupedModelsResponse struct {
	Groups map[string][]ModelResponse `json:"groups"`
}

type ModelListResponse struct {
	Models []ModelResponse `json:"models"`
	Total  int             `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
}

type RateModelRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"omitempty,max=512"`
}

type RateModelResponse struct {
	ModelID       string  `json:"model_id"`
	AverageRating float64 `json:"average_rating"`
}

type CreateCollectionRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=128"`
	Description string `json:"description" validate:"omitempty,max=512"`
	IsPublic    bool   `json:"is_public"`
}

type UpdateCollectionRequest struct {
	Name        string `json:"name" validate:"omitempty,min=3,max=128"`
	Description string `json:"description" validate:"omitempty,max=512"`
	IsPublic    *bool  `json:"is_public" validate:"omitempty"`
}

type AddCollectionModelRequest struct {
	ModelID string `json:"model_id" validate:"required"`
}

type CollectionResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsPublic    bool      `json:"is_public"`
	ModelCount  int       `json:"model_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type CollectionListResponse struct {
	Collections []CollectionResponse `json:"collections"`
}

type CollectionDetailResponse struct {
	CollectionResponse
	Models []ModelResponse `json:"models"`
}
