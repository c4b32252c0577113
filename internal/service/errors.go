package service

import "errors"

// Sentinel errors surfaced by the service layer. Handlers translate these
// into HTTP status codes; anything else is treated as an internal error.
var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrStockItemNotFound   = errors.New("stock item not found")
	ErrCategoryNotFound    = errors.New("product category not found")
	ErrProductTypeNotFound = errors.New("product type not found")
	ErrBranchNotFound      = errors.New("branch not found")
	ErrBranchExists        = errors.New("branch already exists")
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidStatus       = errors.New("unrecognized order status")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	// ErrBranchForbidden is returned when a branch user touches a category
	// that belongs to another branch.
	ErrBranchForbidden = errors.New("category belongs to another branch")
)

// NotFound reports whether err is one of the absence sentinels, so handlers
// can map them to 404 without enumerating each.
func NotFound(err error) bool {
	return errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrStockItemNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrProductTypeNotFound) ||
		errors.Is(err, ErrBranchNotFound) ||
		errors.Is(err, ErrAccountNotFound)
}
