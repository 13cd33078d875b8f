package entities

import (
	"time"
)

type Courier struct {
	ID                  int64
	FullName            string
	DocumentID          string
	Phone               string
	LicenseType         LicenseType
	LicenseExpiry       time.Time
	Zone                string
	Status              CourierStatusType
	VehicleID           *int64
	Vehicle             *Vehicle
	Rating              *float64
	RatingCount         int
	CompletedDeliveries int
	FailedDeliveries    int
	Active              bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type CourierStatusType string

const (
	CourierAvailable   CourierStatusType = "AVAILABLE"
	CourierEnRoute     CourierStatusType = "EN_ROUTE"
	CourierMaintenance CourierStatusType = "MAINTENANCE"
	CourierInactive    CourierStatusType = "INACTIVE"
	CourierResting     CourierStatusType = "RESTING"
)

const DefaultCourierStatus = CourierAvailable

func (t CourierStatusType) String() string {
	return string(t)
}

type LicenseType string

const (
	LicenseTypeA LicenseType = "TYPE_A"
	LicenseTypeB LicenseType = "TYPE_B"
	LicenseTypeC LicenseType = "TYPE_C"
	LicenseTypeE LicenseType = "TYPE_E"
)

func (t LicenseType) String() string {
	return string(t)
}

// IsAvailableFor проверяет полный инвариант доступности курьера:
// активен, в статусе AVAILABLE, с действующей лицензией и с закреплённым
// работоспособным транспортом.
func (c *Courier) IsAvailableFor(now time.Time) bool {
	if !c.Active || c.Status != CourierAvailable {
		return false
	}
	if !c.LicenseExpiry.After(now) {
		return false
	}
	if c.Vehicle == nil {
		return false
	}
	return c.Vehicle.IsOperative(now)
}

// EffectiveRating возвращает рейтинг для ранжирования: отсутствующий
// рейтинг считается нулевым, а не исключает курьера из выборки.
func (c *Courier) EffectiveRating() float64 {
	if c.Rating == nil {
		return 0.0
	}
	return *c.Rating
}

type CourierModify struct {
	ID                  *int64
	FullName            *string
	DocumentID          *string
	Phone               *string
	LicenseType         *LicenseType
	LicenseExpiry       *time.Time
	Zone                *string
	Status              *CourierStatusType
	VehicleID           *int64
	Rating              *float64
	RatingCount         *int
	CompletedDeliveries *int
	FailedDeliveries    *int
	Active              *bool
}
