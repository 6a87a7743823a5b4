package tryon

import "github.com/shuvo881/virtual-try-on/pkg/response"

var (
	ErrInvalidAccessoryType = response.NewError(400, "unsupported accessory type")
	ErrModelNotFound        = response.NewError(404, "accessory model not found")
	ErrTryOnNotFound        = response.NewError(404, "no try-on configuration for session")
	ErrSaveTryOn            = response.NewError(500, "failed to save try-on configuration")
)
