package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/finance"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/slots"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/utils"
	"golang.org/x/sync/errgroup"
)

type OrderRepo interface {
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
	ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	LatestOrders(ctx context.Context, limit int) ([]entities.Order, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

type orderService struct {
	logger  *slog.Logger
	repo    OrderRepo
	drawers DrawerStore
	cache   Cache
}

func NewOrderService(logger *slog.Logger, repo OrderRepo, drawers DrawerStore, cache Cache) *orderService {
	return &orderService{
		logger:  logger.With(slog.String("service", "order")),
		repo:    repo,
		drawers: drawers,
		cache:   cache,
	}
}

var readRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

func (s *orderService) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	if data, ok := s.cache.Get(id); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal order", slog.String("order_id", id), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, id)
		return err
	}
	if err := utils.Retry(ctx, readRetry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", id), slog.Any("error", err))
		return entities.Order{}, err
	}
	s.cache.Set(id, data)
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	orders, err := s.repo.ListOrders(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// WarmUpCache загружает последние заказы в кэш при старте
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.LatestOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to load latest orders: %w", err)
	}

	for _, order := range orders {
		data, err := order.Marshal()
		if err != nil {
			s.logger.Warn("failed to marshal order", slog.String("order_id", order.ID), slog.Any("error", err))
			continue
		}
		s.cache.Set(order.ID, data)
	}

	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

// Drawers returns the fill of every configured drawer.
func (s *orderService) Drawers(ctx context.Context) ([]slots.Occupancy, error) {
	var (
		stored  []entities.Order
		drawers []entities.StorageDrawer
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stored, err = s.repo.ListOrders(gctx, entities.OrderFilter{Statuses: []entities.Status{entities.StatusStored}})
		return err
	})
	g.Go(func() error {
		var err error
		drawers, err = s.drawers.ListDrawers(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load drawers: %w", err)
	}

	return slots.DrawerOccupancy(stored, drawers), nil
}

func (s *orderService) ClientBalance(ctx context.Context, clientID string) (finance.Summary, error) {
	orders, err := s.repo.ListOrders(ctx, entities.OrderFilter{ClientID: clientID})
	if err != nil {
		return finance.Summary{}, fmt.Errorf("failed to list client orders: %w", err)
	}
	return finance.Summarize(clientID, orders), nil
}
