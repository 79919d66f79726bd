package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Catalog errors
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")

	// Cart errors
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrEmptyCart        = errors.New("cart is empty")

	// Device errors
	ErrDeviceTokenInvalid = errors.New("device token invalid")

	// Validation errors
	ErrDomainValidation       = errors.New("domain validation error")
	ErrDomainValidationFailed = errors.New("domain validation failed")

	// Operation errors
	ErrStorageOperationFailed = errors.New("storage operation failed")
)
