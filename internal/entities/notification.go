package entities

import "time"

type Notification struct {
	ID        int64
	OrderID   string
	Recipient string
	Subject   string
	Body      string
	Type      NotificationType
	Status    NotificationStatusType
	CreatedAt time.Time
	SentAt    *time.Time
}

type NotificationType string

const (
	NotificationOrderCreated       NotificationType = "ORDER_CREATED"
	NotificationOrderStatusChanged NotificationType = "ORDER_STATUS_CHANGED"
)

func (t NotificationType) String() string {
	return string(t)
}

type NotificationStatusType string

const (
	NotificationPending NotificationStatusType = "PENDING"
	NotificationSent    NotificationStatusType = "SENT"
	NotificationFailed  NotificationStatusType = "FAILED"
)

func (s NotificationStatusType) String() string {
	return string(s)
}
