package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/service"
	mocks "github.com/SergeyBogomolovv/fulfillment-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_GetOrderByID(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache)

	validOrder := entities.Order{ID: "123", Status: entities.StatusStored}
	validData, err := validOrder.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		orderID      string
		order        entities.Order
		mockBehavior MockBehavior
		wantErr      error
		want         entities.Order
	}{
		{
			name:     "success from cache",
			orderID:  "123",
			order:    validOrder,
			mockBehavior: func(_ *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("123").
					Return(validData, true).Once()
			},
			want: validOrder,
		},
		{
			name:     "cache hit but unmarshal fails",
			orderID:  "123",
			mockBehavior: func(_ *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("123").
					Return([]byte("broken"), true).Once()
			},
			wantErr: entities.ErrInvalidOrder,
		},
		{
			name:     "success from repo and set to cache",
			orderID:  "123",
			order:    validOrder,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("123").
					Return(nil, false).Once()
				orderRepo.EXPECT().
					GetOrderByID(mock.Anything, "123").
					Return(validOrder, nil).Once()
				cache.EXPECT().
					Set("123", validData).
					Return().Once()
			},
			want: validOrder,
		},
		{
			name:     "not found in repo",
			orderID:  "not-exist",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("not-exist").
					Return(nil, false).Once()
				orderRepo.EXPECT().
					GetOrderByID(mock.Anything, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:     "second attempt from repo",
			orderID:  "123",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("123").
					Return(nil, false).Once()
				orderRepo.EXPECT().
					GetOrderByID(mock.Anything, "123").
					Return(entities.Order{}, errors.New("some error")).Once()
				orderRepo.EXPECT().
					GetOrderByID(mock.Anything, "123").
					Return(validOrder, nil).Once()
				cache.EXPECT().
					Set("123", validData).
					Return().Once()
			},
			want: validOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderRepo(t)
			cache := mocks.NewMockCache(t)
			drawers := mocks.NewMockDrawerStore(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(orderRepo, cache)

			svc := service.NewOrderService(logger, orderRepo, drawers, cache)

			got, err := svc.GetOrderByID(context.Background(), tc.orderID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_Drawers(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)
	drawers := mocks.NewMockDrawerStore(t)
	cache := mocks.NewMockCache(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	orderRepo.EXPECT().
		ListOrders(mock.Anything, entities.OrderFilter{Statuses: []entities.Status{entities.StatusStored}}).
		Return([]entities.Order{{Status: entities.StatusStored, StorageLocation: "A-01"}}, nil)
	drawers.EXPECT().
		ListDrawers(mock.Anything).
		Return([]entities.StorageDrawer{{Name: "A", Capacity: 2}}, nil)

	svc := service.NewOrderService(logger, orderRepo, drawers, cache)

	got, err := svc.Drawers(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Used)
	assert.Equal(t, []string{"A-02"}, got[0].FreeSlots)
}

func TestOrderService_ClientBalance(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)
	cache := mocks.NewMockCache(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	orderRepo.EXPECT().
		ListOrders(mock.Anything, entities.OrderFilter{ClientID: "c1"}).
		Return([]entities.Order{
			{Status: entities.StatusStored, PriceInMRU: 1000, Commission: 100, ShippingCost: 280, AmountPaid: 500},
			{Status: entities.StatusCancelled, PriceInMRU: 700},
		}, nil)

	svc := service.NewOrderService(logger, orderRepo, mocks.NewMockDrawerStore(t), cache)

	got, err := svc.ClientBalance(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Orders)
	assert.Equal(t, 1380.0, got.Total)
	assert.Equal(t, 880.0, got.Due)
}

func TestOrderService_WarmUpCache(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)
	cache := mocks.NewMockCache(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	orderRepo.EXPECT().
		LatestOrders(mock.Anything, 2).
		Return([]entities.Order{{ID: "1"}, {ID: "2"}}, nil)
	cache.EXPECT().Set("1", mock.Anything).Return().Once()
	cache.EXPECT().Set("2", mock.Anything).Return().Once()

	svc := service.NewOrderService(logger, orderRepo, mocks.NewMockDrawerStore(t), cache)

	require.NoError(t, svc.WarmUpCache(context.Background(), 2))
}
