package entities

type CommissionType string

const (
	CommissionFlat       CommissionType = "flat"
	CommissionPercentage CommissionType = "percentage"
)

type ShippingType string

const (
	ShippingNormal ShippingType = "normal"
	ShippingFast   ShippingType = "fast"
)

const (
	DefaultFastRate   = 450
	DefaultNormalRate = 280
)

// ShippingRates are per-kilogram prices in MRU.
type ShippingRates struct {
	Fast   float64
	Normal float64
}

func (r ShippingRates) For(t ShippingType) float64 {
	if t == ShippingFast {
		if r.Fast > 0 {
			return r.Fast
		}
		return DefaultFastRate
	}
	if r.Normal > 0 {
		return r.Normal
	}
	return DefaultNormalRate
}
