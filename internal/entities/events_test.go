package entities_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEvent(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	order := entities.Order{
		ID:          "o1",
		Status:      entities.StatusArrivedAtOffice,
		Attachments: entities.Attachments{Product: []string{"p.jpg"}},
		History: []entities.ActivityLog{
			{Timestamp: now, Activity: "Order created", User: "alice"},
		},
	}

	next := entities.StatusStored
	loc := "A-01"
	ev := entities.Event{
		Kind: entities.EventAdvanced,
		Changes: entities.OrderPatch{
			Status:          &next,
			StorageLocation: &loc,
			Attachments:     &entities.Attachments{Weighing: []string{"w.jpg"}},
		},
		Entry: entities.ActivityLog{Timestamp: now.Add(time.Hour), Activity: "Stored at A-01", User: "bob"},
	}

	got := entities.ApplyEvent(order, ev)

	assert.Equal(t, entities.StatusStored, got.Status)
	assert.Equal(t, "A-01", got.StorageLocation)
	assert.Equal(t, []string{"p.jpg"}, got.Attachments.Product)
	assert.Equal(t, []string{"w.jpg"}, got.Attachments.Weighing)
	require.Len(t, got.History, 2)
	assert.Equal(t, ev.Entry, got.History[1])

	// исходный заказ не меняется
	assert.Equal(t, entities.StatusArrivedAtOffice, order.Status)
	assert.Len(t, order.History, 1)
	assert.Empty(t, order.Attachments.Weighing)
}

func TestStatus_Navigation(t *testing.T) {
	testCases := []struct {
		status   entities.Status
		next     entities.Status
		hasNext  bool
		prev     entities.Status
		hasPrev  bool
		terminal bool
	}{
		{status: entities.StatusNew, next: entities.StatusOrdered, hasNext: true},
		{status: entities.StatusOrdered, next: entities.StatusShippedFromStore, hasNext: true, prev: entities.StatusNew, hasPrev: true},
		{status: entities.StatusStored, next: entities.StatusCompleted, hasNext: true, prev: entities.StatusArrivedAtOffice, hasPrev: true},
		{status: entities.StatusCompleted, prev: entities.StatusStored, hasPrev: true, terminal: true},
		{status: entities.StatusCancelled, terminal: true},
	}

	for _, tc := range testCases {
		t.Run(string(tc.status), func(t *testing.T) {
			next, ok := tc.status.Next()
			assert.Equal(t, tc.hasNext, ok)
			assert.Equal(t, tc.next, next)

			prev, ok := tc.status.Previous()
			assert.Equal(t, tc.hasPrev, ok)
			assert.Equal(t, tc.prev, prev)

			assert.Equal(t, tc.terminal, tc.status.Terminal())
			assert.True(t, tc.status.Valid())
		})
	}

	assert.False(t, entities.Status("LOST").Valid())
}
