package slots_test

import (
	"testing"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/slots"
	"github.com/stretchr/testify/assert"
)

func stored(location, client, shipment string) entities.Order {
	return entities.Order{
		Status:          entities.StatusStored,
		StorageLocation: location,
		ClientID:        client,
		ShipmentID:      shipment,
	}
}

func TestSuggest(t *testing.T) {
	candidate := entities.Order{ID: "new", ClientID: "c1", ShipmentID: "s1", Status: entities.StatusArrivedAtOffice}

	testCases := []struct {
		name         string
		orders       []entities.Order
		drawers      []entities.StorageDrawer
		wantDrawer   string
		wantLocation string
		wantScore    int
		wantReasons  int
	}{
		{
			name: "client affinity and balanced fill",
			orders: []entities.Order{
				stored("A-01", "c1", ""),
				stored("A-02", "c2", ""),
			},
			drawers:      []entities.StorageDrawer{{Name: "A", Capacity: 5}},
			wantDrawer:   "A",
			wantLocation: "A-03",
			wantScore:    45,
			wantReasons:  2,
		},
		{
			name: "shipment affinity wins over client affinity",
			orders: []entities.Order{
				stored("A-01", "c1", ""),
				stored("B-01", "c9", "s1"),
			},
			drawers:      []entities.StorageDrawer{{Name: "A", Capacity: 20}, {Name: "B", Capacity: 20}},
			wantDrawer:   "B",
			wantLocation: "B-02",
			wantScore:    40,
			wantReasons:  1,
		},
		{
			name: "full drawer is skipped",
			orders: []entities.Order{
				stored("A-01", "c1", "s1"),
				stored("A-02", "c1", "s1"),
			},
			drawers:      []entities.StorageDrawer{{Name: "A", Capacity: 2}, {Name: "B", Capacity: 4}},
			wantDrawer:   "B",
			wantLocation: "B-01",
			wantScore:    0,
			wantReasons:  0,
		},
		{
			name: "only drawer full falls back without a slot",
			orders: []entities.Order{
				stored("A-01", "c2", ""),
				stored("A-02", "c2", ""),
			},
			drawers:      []entities.StorageDrawer{{Name: "A", Capacity: 2}},
			wantDrawer:   "A",
			wantLocation: "",
			wantScore:    0,
			wantReasons:  1,
		},
		{
			name:         "ties keep configured order",
			drawers:      []entities.StorageDrawer{{Name: "A", Capacity: 3}, {Name: "B", Capacity: 3}},
			wantDrawer:   "A",
			wantLocation: "A-01",
		},
		{
			name: "gap in the middle is reused",
			orders: []entities.Order{
				stored("A-01", "c2", ""),
				stored("A-03", "c3", ""),
			},
			drawers:      []entities.StorageDrawer{{Name: "A", Capacity: 10}},
			wantDrawer:   "A",
			wantLocation: "A-02",
			wantScore:    20,
			wantReasons:  1,
		},
		{
			name: "fill of exactly ten percent gets no bonus",
			orders: []entities.Order{
				stored("A-01", "c2", ""),
			},
			drawers:      []entities.StorageDrawer{{Name: "A", Capacity: 10}},
			wantDrawer:   "A",
			wantLocation: "A-02",
		},
		{
			name: "non stored orders do not occupy slots",
			orders: []entities.Order{
				{Status: entities.StatusCompleted, StorageLocation: "A-01", ClientID: "c1"},
			},
			drawers:      []entities.StorageDrawer{{Name: "A", Capacity: 2}},
			wantDrawer:   "A",
			wantLocation: "A-01",
		},
		{
			name: "no drawers configured",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := slots.Suggest(candidate, tc.orders, tc.drawers)

			assert.Equal(t, tc.wantDrawer, got.Drawer)
			assert.Equal(t, tc.wantLocation, got.Location)
			assert.Equal(t, tc.wantScore, got.Score)
			assert.Len(t, got.Reasons, tc.wantReasons)
		})
	}
}

func TestSuggest_FallbackReason(t *testing.T) {
	orders := []entities.Order{stored("A-01", "x", "")}
	drawers := []entities.StorageDrawer{{Name: "A", Capacity: 1}}

	got := slots.Suggest(entities.Order{ClientID: "x"}, orders, drawers)

	assert.Equal(t, []string{"first available drawer"}, got.Reasons)
}

func TestDrawerOccupancy(t *testing.T) {
	orders := []entities.Order{
		stored("A-02", "c1", ""),
		stored("B-01", "c1", ""),
		{Status: entities.StatusArrivedAtOffice, StorageLocation: "A-01"},
	}
	drawers := []entities.StorageDrawer{{Name: "A", Capacity: 3}, {Name: "B", Capacity: 1}}

	got := slots.DrawerOccupancy(orders, drawers)

	assert.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Used)
	assert.Equal(t, []string{"A-01", "A-03"}, got[0].FreeSlots)
	assert.Equal(t, 1, got[1].Used)
	assert.Empty(t, got[1].FreeSlots)
}
