package errs

import "errors"

// Sentinels shared by the usecase layers. Packages that own a narrower rule
// (booking, review) declare their own and mark with these where a handler
// only needs the category.
var (
	// Lookup
	ErrNotFound = errors.New("not found")

	// Business rule violations surfaced as 400
	ErrBusinessRule = errors.New("business rule violation")

	// Validation
	ErrDomainValidation = errors.New("domain validation error")

	// Ownership
	ErrForbidden = errors.New("forbidden")

	// Infrastructure
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
