package courier

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCourierID      = errors.New("invalid courier id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidDocument       = errors.New("invalid document id")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidLicense        = errors.New("invalid license type")
	ErrInvalidRating         = errors.New("invalid rating")

	ErrCourierNotFound = errors.New("courier not found")
	ErrConflict        = errors.New("resource already exists")
)
