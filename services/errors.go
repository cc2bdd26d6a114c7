package services

import "errors"

var (
	// ErrValidation covers missing or undecodable client input. Nothing has
	// been persisted when it is returned.
	ErrValidation = errors.New("validation failed")

	// ErrForbidden means the requester is not the owner the operation is
	// scoped to. Mutation paths return it for unknown canteens too, so the
	// response never reveals whether the canteen exists.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is surfaced by read paths only.
	ErrNotFound = errors.New("not found")
)
