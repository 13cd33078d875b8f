package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidWeight         = errors.New("invalid weight")
	ErrInvalidPriority       = errors.New("invalid priority")
	ErrInvalidDeliveryType   = errors.New("invalid delivery type")
	ErrInvalidModality       = errors.New("invalid service modality")
	ErrInvalidStatus         = errors.New("invalid order status")

	ErrCoverageNotAvailable = errors.New("coverage not available for city")
	ErrModalityMismatch     = errors.New("modality does not match delivery type")

	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderAlreadyCancelled = errors.New("order already cancelled")
	ErrOrderAlreadyDelivered = errors.New("order already delivered")
	ErrOrderStateConflict    = errors.New("order state conflict")
)
