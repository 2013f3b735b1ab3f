package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidName      = errors.New("name must be at least 3 characters long")
	ErrEmptyDescription = errors.New("description is required")
	ErrInvalidBudget    = errors.New("budget must be greater than 0")
)
