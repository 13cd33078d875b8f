package entities

import "time"

type Invoice struct {
	ID           string
	OrderID      string
	DeliveryType DeliveryType
	DistanceKm   float64
	Amount       float64
	Status       InvoiceStatusType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type InvoiceStatusType string

const (
	InvoiceDraft  InvoiceStatusType = "DRAFT"
	InvoiceIssued InvoiceStatusType = "ISSUED"
	InvoicePaid   InvoiceStatusType = "PAID"
	InvoiceVoid   InvoiceStatusType = "VOID"
)

const DefaultInvoiceStatus = InvoiceDraft

func (s InvoiceStatusType) String() string {
	return string(s)
}

// CanTransitionTo разрешает только движение вперёд:
// DRAFT -> ISSUED -> PAID, аннулирование из DRAFT и ISSUED.
func (s InvoiceStatusType) CanTransitionTo(next InvoiceStatusType) bool {
	switch s {
	case InvoiceDraft:
		return next == InvoiceIssued || next == InvoiceVoid
	case InvoiceIssued:
		return next == InvoicePaid || next == InvoiceVoid
	default:
		return false
	}
}

// InvoiceRequest - заявка оркестратора на расчёт тарифа. Axles
// заполняется по умолчанию, когда транспорт ещё не назначен.
type InvoiceRequest struct {
	OrderID      string
	DeliveryType DeliveryType
	DistanceKm   float64
	Axles        int
}
