// Package slots recommends a storage slot for a package arriving at the office.
package slots

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
)

const (
	shipmentAffinityScore = 40
	clientAffinityScore   = 25
	balancedFillScore     = 20

	minBalancedFill = 0.10
	maxBalancedFill = 0.90
)

type Suggestion struct {
	Drawer string
	// пустая строка, если в выбранном ящике нет свободных ячеек
	Location string
	Score    int
	Reasons  []string
}

type candidate struct {
	drawer  entities.StorageDrawer
	score   int
	reasons []string
}

// Suggest ranks the non-full drawers for order and returns the first free slot of the best one.
// It has no side effects and is safe for concurrent use.
func Suggest(order entities.Order, orders []entities.Order, drawers []entities.StorageDrawer) Suggestion {
	occupied := OccupiedSlots(orders)

	candidates := make([]candidate, 0, len(drawers))
	for _, d := range drawers {
		inDrawer := storedIn(d.Name, orders)
		if len(inDrawer) >= d.Capacity {
			continue
		}
		candidates = append(candidates, score(order, d, inDrawer))
	}

	var best candidate
	switch {
	case len(candidates) > 0:
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].score > candidates[j].score
		})
		best = candidates[0]
	case len(drawers) > 0:
		// Fallback does not look at capacity: with every drawer full it still
		// points at the first configured one and the slot scan below finds nothing.
		best = candidate{drawer: drawers[0], reasons: []string{"first available drawer"}}
	default:
		return Suggestion{}
	}

	return Suggestion{
		Drawer:   best.drawer.Name,
		Location: firstFreeSlot(best.drawer, occupied),
		Score:    best.score,
		Reasons:  best.reasons,
	}
}

// OccupiedSlots is the set of storage locations held by STORED orders.
func OccupiedSlots(orders []entities.Order) map[string]struct{} {
	occupied := make(map[string]struct{})
	for _, o := range orders {
		if o.Status == entities.StatusStored && o.StorageLocation != "" {
			occupied[o.StorageLocation] = struct{}{}
		}
	}
	return occupied
}

func storedIn(drawer string, orders []entities.Order) []entities.Order {
	prefix := drawer + "-"
	var res []entities.Order
	for _, o := range orders {
		if o.Status == entities.StatusStored && strings.HasPrefix(o.StorageLocation, prefix) {
			res = append(res, o)
		}
	}
	return res
}

func score(order entities.Order, d entities.StorageDrawer, inDrawer []entities.Order) candidate {
	c := candidate{drawer: d}

	if order.ShipmentID != "" && anyOrder(inDrawer, func(o entities.Order) bool { return o.ShipmentID == order.ShipmentID }) {
		c.score += shipmentAffinityScore
		c.reasons = append(c.reasons, fmt.Sprintf("packages of shipment %s are already in drawer %s", order.ShipmentID, d.Name))
	}

	if order.ClientID != "" && anyOrder(inDrawer, func(o entities.Order) bool { return o.ClientID == order.ClientID }) {
		c.score += clientAffinityScore
		c.reasons = append(c.reasons, fmt.Sprintf("client %s already has packages in drawer %s", order.ClientID, d.Name))
	}

	fill := float64(len(inDrawer)) / float64(d.Capacity)
	if fill > minBalancedFill && fill < maxBalancedFill {
		c.score += balancedFillScore
		c.reasons = append(c.reasons, fmt.Sprintf("drawer %s is %.0f%% full", d.Name, fill*100))
	}

	return c
}

func anyOrder(orders []entities.Order, fn func(entities.Order) bool) bool {
	for _, o := range orders {
		if fn(o) {
			return true
		}
	}
	return false
}

func firstFreeSlot(d entities.StorageDrawer, occupied map[string]struct{}) string {
	for i := 1; i <= d.Capacity; i++ {
		addr := entities.SlotAddress(d.Name, i)
		if _, ok := occupied[addr]; !ok {
			return addr
		}
	}
	return ""
}
