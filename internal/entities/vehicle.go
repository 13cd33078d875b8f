package entities

import "time"

// GPS-фикс старше этого порога означает, что транспорт не отслеживается
// и не может участвовать в назначениях.
const VehicleFixMaxAge = 30 * time.Minute

type Vehicle struct {
	ID         int64
	Plate      string
	Type       VehicleType
	CapacityKg float64
	Axles      int
	Active     bool
	LastLat    *float64
	LastLon    *float64
	LastFixAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type VehicleType string

const (
	VehicleMotorcycle VehicleType = "MOTORCYCLE"
	VehicleLight      VehicleType = "LIGHT_VEHICLE"
	VehicleTruck      VehicleType = "TRUCK"
)

func (t VehicleType) String() string {
	return string(t)
}

// DefaultAxles - количество осей, когда транспорт неизвестен (тариф
// рассчитывается до назначения).
const DefaultAxles = 2

func (v *Vehicle) IsOperative(now time.Time) bool {
	if !v.Active {
		return false
	}
	if v.LastFixAt == nil {
		return false
	}
	return now.Sub(*v.LastFixAt) <= VehicleFixMaxAge
}

func (v *Vehicle) CanCarry(weightKg float64) bool {
	return v.CapacityKg >= weightKg
}
