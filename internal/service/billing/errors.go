package billing

import "errors"

var (
	ErrInvalidOrderID      = errors.New("invalid order id")
	ErrInvalidInvoiceID    = errors.New("invalid invoice id")
	ErrInvalidDistance     = errors.New("invalid distance")
	ErrInvalidDeliveryType = errors.New("invalid delivery type")
	ErrInvalidStatus       = errors.New("invalid invoice status")

	ErrInvoiceAlreadyExists = errors.New("invoice already exists for order")
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvoiceStateConflict = errors.New("invoice state conflict")
)
