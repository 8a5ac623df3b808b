package domain

import "errors"

// Cross-cutting errors shared by the resource services.
var (
	// ErrValidation marks missing or malformed input (empty required fields,
	// unparseable dates). Wrap it with a field-specific message.
	ErrValidation = errors.New("validation failed")

	// ErrHasDependents marks a delete that was refused because other rows
	// still reference the target. Wrap it with an entity-specific message.
	ErrHasDependents = errors.New("record has dependent rows")

	// ErrInvalidReference marks a create/update pointing at a foreign key
	// target that does not exist.
	ErrInvalidReference = errors.New("referenced record does not exist")

	// ErrForbidden marks an authenticated request whose role is not in the
	// route's allowed set.
	ErrForbidden = errors.New("insufficient privileges")
)
