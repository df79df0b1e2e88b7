package services

import "errors"

// Domain errors surfaced by the mutation and verification services. Callers
// match them with errors.Is to pick transport status codes.
var (
	// ErrNotFound indicates the referenced provider or model definition
	// does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicateName indicates a provider with the same name already
	// exists, compared case-insensitively across all owners.
	ErrDuplicateName = errors.New("provider name already exists")

	// ErrNotAuthorized indicates the caller lacks rights for a structural
	// mutation or deletion.
	ErrNotAuthorized = errors.New("not authorized")
)
