package handler_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/config"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/fulfillment-service/internal/handler/mocks"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestKafkaHandler_HandleMessage(t *testing.T) {
	testCases := []struct {
		name         string
		value        string
		mockBehavior func(a *mocks.MockShipmentApplier)
		wantErr      bool
	}{
		{
			name:  "applies update",
			value: `{"shipment_id":"S-1","box_id":"B-7","order_ids":["1","2"],"status":"IN_TRANSIT"}`,
			mockBehavior: func(a *mocks.MockShipmentApplier) {
				a.EXPECT().
					ApplyShipmentUpdate(mock.Anything, entities.ShipmentUpdate{
						ShipmentID: "S-1",
						BoxID:      "B-7",
						OrderIDs:   []string{"1", "2"},
						Status:     entities.StatusInTransit,
					}).
					Return(nil).Once()
			},
		},
		{
			name:  "apply error",
			value: `{"shipment_id":"S-1","order_ids":["1"]}`,
			mockBehavior: func(a *mocks.MockShipmentApplier) {
				a.EXPECT().
					ApplyShipmentUpdate(mock.Anything, mock.Anything).
					Return(errors.New("order 1: order not found")).Once()
			},
			wantErr: true,
		},
		{
			name:         "malformed json",
			value:        `{"shipment_id":`,
			mockBehavior: func(a *mocks.MockShipmentApplier) {},
			wantErr:      true,
		},
		{
			name:         "no orders",
			value:        `{"shipment_id":"S-1","order_ids":[]}`,
			mockBehavior: func(a *mocks.MockShipmentApplier) {},
			wantErr:      true,
		},
		{
			name:         "status outside shipment workflow",
			value:        `{"shipment_id":"S-1","order_ids":["1"],"status":"COMPLETED"}`,
			mockBehavior: func(a *mocks.MockShipmentApplier) {},
			wantErr:      true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			applier := mocks.NewMockShipmentApplier(t)
			tc.mockBehavior(applier)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			h := handler.NewKafkaHandler(logger, config.Kafka{
				Brokers:       []string{"localhost:9092"},
				ShipmentTopic: "shipments",
			}, applier)
			t.Cleanup(func() { h.Close() })

			err := h.HandleMessage(context.Background(), kafka.Message{Topic: "shipments", Value: []byte(tc.value)})
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDecodeAdvance(t *testing.T) {
	t.Run("ordered", func(t *testing.T) {
		p, err := handler.DecodeAdvance([]byte(`{"from":"ORDERED","tracking_number":"TN-1"}`))
		require.NoError(t, err)

		in, ok := p.(*entities.OrderedAdvance)
		require.True(t, ok)
		assert.Equal(t, "TN-1", in.TrackingNumber)
		assert.Equal(t, entities.StatusOrdered, p.From())
	})

	t.Run("fields of other states are ignored", func(t *testing.T) {
		p, err := handler.DecodeAdvance([]byte(`{"from":"NEW","global_order_id":"G","tracking_number":"TN-1"}`))
		require.NoError(t, err)

		changes := p.Changes()
		require.NotNil(t, changes.GlobalOrderID)
		assert.Nil(t, changes.TrackingNumber)
	})

	t.Run("terminal from", func(t *testing.T) {
		_, err := handler.DecodeAdvance([]byte(`{"from":"CANCELLED"}`))

		var ve *entities.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, []string{"from"}, ve.Fields)
	})
}
