package catalog

import "github.com/shuvo881/virtual-try-on/pkg/response"

var (
	ErrCategoryNotFound     = response.NewError(404, "accessory category not found")
	ErrModelNotFound        = response.NewError(404, "accessory model not found")
	ErrCollectionNotFound   = response.NewError(404, "collection not found")
	ErrModelNotInCollection = response.NewError(404, "model is not part of the collection")
	ErrInvalidRating        = response.NewError(400, "rating must be between 1 and 5")
	ErrInvalidOrdering      = response.NewError(400, "unsupported ordering field")
	ErrCreateCollection     = response.NewError(500, "failed to create collection")
	ErrUpdateCollection     = response.NewError(500, "failed to update collection")
	ErrDeleteCollection     = response.NewError(500, "failed to delete collection")
)
