package tariff_policy

import (
	"errors"
	"fmt"

	"logiflow/internal/entities"
)

var ErrUnknownDeliveryType = errors.New("unknown delivery type")

const defaultMaintenanceRate = 0.05

// costPolicy описывает слагаемые тарифа одного типа доставки:
// базовая ставка за км, ставка обслуживания за км и надбавки,
// зависящие от дистанции и количества осей.
type costPolicy struct {
	baseRatePerKm   float64
	maintenanceRate float64
	surcharge       func(distanceKm float64, axles int) float64
}

// TariffFactory - закрытая таблица тарифных политик. Новый тип доставки
// добавляется строкой таблицы, а не новым подтипом.
type TariffFactory struct {
	policies map[entities.DeliveryType]costPolicy
}

func New() *TariffFactory {
	return &TariffFactory{
		policies: map[entities.DeliveryType]costPolicy{
			entities.DeliveryUrban: {
				baseRatePerKm:   0.50,
				maintenanceRate: defaultMaintenanceRate,
				surcharge: func(distanceKm float64, _ int) float64 {
					// городской трафик
					return 0.10 * distanceKm
				},
			},
			entities.DeliveryIntermunicipal: {
				baseRatePerKm:   0.80,
				maintenanceRate: 0.08,
				surcharge: func(distanceKm float64, _ int) float64 {
					fuelRate := 0.08
					if distanceKm > 100 {
						fuelRate = 0.15
					}
					tollFee := 2.0
					return fuelRate*distanceKm + tollFee
				},
			},
			entities.DeliveryNational: {
				baseRatePerKm:   1.50,
				maintenanceRate: 0.15,
				surcharge: func(distanceKm float64, axles int) float64 {
					var total float64
					if axles > entities.DefaultAxles {
						total += 0.20 * distanceKm * float64(axles-entities.DefaultAxles)
					}
					tollFee := 8.0
					if distanceKm > 200 {
						tollFee = 15.0
					}
					total += tollFee
					if distanceKm > 500 {
						total += 0.10 * distanceKm
					}
					return total
				},
			},
		},
	}
}

func (f *TariffFactory) Calculate(deliveryType entities.DeliveryType, distanceKm float64, axles int) (float64, error) {
	policy, ok := f.policies[deliveryType]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownDeliveryType, deliveryType)
	}
	if axles <= 0 {
		axles = entities.DefaultAxles
	}

	amount := policy.baseRatePerKm * distanceKm
	amount += policy.maintenanceRate * distanceKm
	amount += policy.surcharge(distanceKm, axles)

	return amount, nil
}
