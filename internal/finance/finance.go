// Package finance holds the money derivations shared by the status engine and billing.
package finance

import (
	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

var hundred = decimal.NewFromInt(100)

// ShippingCost is weight multiplied by the per-kilogram rate.
func ShippingCost(weight, rate float64) float64 {
	return decimal.NewFromFloat(weight).
		Mul(decimal.NewFromFloat(rate)).
		Round(moneyPlaces).
		InexactFloat64()
}

// Commission computes the absolute commission. For the percentage type rate is in percent of base,
// for the flat type the flat amount is returned as is.
func Commission(base float64, typ entities.CommissionType, rate, flat float64) float64 {
	if typ == entities.CommissionPercentage {
		return decimal.NewFromFloat(base).
			Mul(decimal.NewFromFloat(rate)).
			Div(hundred).
			Round(moneyPlaces).
			InexactFloat64()
	}
	return flat
}

// Apportion returns the share of total that belongs to part out of whole, rounded to an integer.
func Apportion(total float64, part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return decimal.NewFromFloat(total).
		Mul(decimal.NewFromInt(int64(part))).
		Div(decimal.NewFromInt(int64(whole))).
		Round(0).
		InexactFloat64()
}

// Sub returns a - b without binary float drift.
func Sub(a, b float64) float64 {
	return decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Round(moneyPlaces).InexactFloat64()
}

// Scale returns value * num / den, used to carry the foreign-currency price along with priceInMRU.
func Scale(value, num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return decimal.NewFromFloat(value).
		Mul(decimal.NewFromFloat(num)).
		Div(decimal.NewFromFloat(den)).
		Round(moneyPlaces).
		InexactFloat64()
}

// Total is what the client owes for the order in MRU.
func Total(o entities.Order) float64 {
	return decimal.NewFromFloat(o.PriceInMRU).
		Add(decimal.NewFromFloat(o.Commission)).
		Add(decimal.NewFromFloat(o.ShippingCost)).
		Round(moneyPlaces).
		InexactFloat64()
}

// Due is the unpaid remainder, never negative.
func Due(o entities.Order) float64 {
	due := decimal.NewFromFloat(Total(o)).Sub(decimal.NewFromFloat(o.AmountPaid))
	if due.IsNegative() {
		return 0
	}
	return due.Round(moneyPlaces).InexactFloat64()
}

type Summary struct {
	ClientID   string
	Orders     int
	Goods      float64
	Commission float64
	Shipping   float64
	Total      float64
	Paid       float64
	Due        float64
}

// Summarize aggregates the billing of a client's orders. Cancelled orders are skipped.
func Summarize(clientID string, orders []entities.Order) Summary {
	var goods, commission, shipping, paid, due decimal.Decimal
	count := 0
	for _, o := range orders {
		if o.Status == entities.StatusCancelled {
			continue
		}
		count++
		goods = goods.Add(decimal.NewFromFloat(o.PriceInMRU))
		commission = commission.Add(decimal.NewFromFloat(o.Commission))
		shipping = shipping.Add(decimal.NewFromFloat(o.ShippingCost))
		paid = paid.Add(decimal.NewFromFloat(o.AmountPaid))
		due = due.Add(decimal.NewFromFloat(Due(o)))
	}
	total := goods.Add(commission).Add(shipping)

	return Summary{
		ClientID:   clientID,
		Orders:     count,
		Goods:      goods.Round(moneyPlaces).InexactFloat64(),
		Commission: commission.Round(moneyPlaces).InexactFloat64(),
		Shipping:   shipping.Round(moneyPlaces).InexactFloat64(),
		Total:      total.Round(moneyPlaces).InexactFloat64(),
		Paid:       paid.Round(moneyPlaces).InexactFloat64(),
		Due:        due.Round(moneyPlaces).InexactFloat64(),
	}
}
