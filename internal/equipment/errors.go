package equipment

import "errors"

var (
	ErrNotFound        = errors.New("equipment not found")
	ErrDataUnavailable = errors.New("equipment data unavailable")

	// ErrInvalidRecord wraps every validation failure found while loading data.
	ErrInvalidRecord = errors.New("invalid equipment record")
	ErrDuplicateID   = errors.New("duplicate id")

	ErrUnknownRubberType = errors.New("unknown rubber type")
	ErrUnknownHandle     = errors.New("unknown handle")
)
