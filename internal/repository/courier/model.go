package courier

import "time"

type CourierDB struct {
	ID                  int64
	FullName            string
	DocumentID          string
	Phone               string
	LicenseType         string
	LicenseExpiry       time.Time
	Zone                string
	Status              string
	VehicleID           *int64
	Rating              *float64
	RatingCount         int
	CompletedDeliveries int
	FailedDeliveries    int
	Active              bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type CourierModifyDB struct {
	ID                  *int64
	FullName            *string
	DocumentID          *string
	Phone               *string
	LicenseType         *string
	LicenseExpiry       *time.Time
	Zone                *string
	Status              *string
	VehicleID           *int64
	Rating              *float64
	RatingCount         *int
	CompletedDeliveries *int
	FailedDeliveries    *int
	Active              *bool
}

// CandidateCourierDB - строка выборки кандидата с присоединённым
// транспортом.
type CandidateCourierDB struct {
	CourierDB
	VehiclePlate      string
	VehicleType       string
	VehicleCapacityKg float64
	VehicleAxles      int
	VehicleActive     bool
}
