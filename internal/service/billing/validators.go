package billing

import (
	"strings"

	"logiflow/internal/entities"
)

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidInvoiceID(invoiceID string) bool {
	return strings.TrimSpace(invoiceID) != ""
}

func isValidInvoiceStatus(status entities.InvoiceStatusType) bool {
	switch status {
	case entities.InvoiceDraft, entities.InvoiceIssued, entities.InvoicePaid, entities.InvoiceVoid:
		return true
	default:
		return false
	}
}

func validateInvoiceRequest(request entities.InvoiceRequest) error {
	if !isValidOrderID(request.OrderID) {
		return ErrInvalidOrderID
	}
	if request.DistanceKm <= 0 {
		return ErrInvalidDistance
	}

	switch request.DeliveryType {
	case entities.DeliveryUrban, entities.DeliveryIntermunicipal, entities.DeliveryNational:
		return nil
	default:
		return ErrInvalidDeliveryType
	}
}
