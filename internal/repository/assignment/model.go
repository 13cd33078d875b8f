package assignment

import "time"

type AssignmentDB struct {
	OrderID    string
	CourierID  int64
	VehicleID  int64
	AssignedAt time.Time
}
