package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const defaultListLimit = 100

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	// невалидный uuid postgres не примет, такого заказа нет
	if _, err := uuid.Parse(id); err != nil {
		return entities.Order{}, entities.ErrOrderNotFound
	}

	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	return OrderToEntity(order)
}

func (r *postgresRepo) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC")

	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		q = q.Where(sq.Eq{"status": statuses})
	}
	if filter.ClientID != "" {
		q = q.Where(sq.Eq{"client_id": filter.ClientID})
	}
	if filter.ShipmentID != "" {
		q = q.Where(sq.Eq{"shipment_id": filter.ShipmentID})
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		q = q.Where(sq.Or{
			sq.ILike{"local_order_id": pattern},
			sq.ILike{"global_order_id": pattern},
			sq.ILike{"tracking_number": pattern},
			sq.ILike{"product_name": pattern},
		})
	}
	// без фильтра по статусу список ограничиваем
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	} else if len(filter.Statuses) == 0 && filter.ClientID == "" {
		q = q.Limit(defaultListLimit)
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	return OrdersToEntities(orders)
}

func (r *postgresRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("updated_at DESC").
		Limit(uint64(count)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	return OrdersToEntities(orders)
}

func (r *postgresRepo) InsertOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	values, err := orderValues(o)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to encode order: %w", err)
	}
	values["id"] = uuid.NewString()

	query, args := r.qb.Insert("orders").
		SetMap(values).
		Suffix("RETURNING " + strings.Join(orderColumns, ", ")).
		MustSql()

	var saved Order
	if err := r.getContext(ctx, &saved, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}
	return OrderToEntity(saved)
}

func (r *postgresRepo) UpdateOrder(ctx context.Context, id string, patch entities.OrderPatch) (entities.Order, error) {
	values, err := patchValues(patch)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to encode patch: %w", err)
	}

	query, args := r.qb.Update("orders").
		SetMap(values).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(orderColumns, ", ")).
		MustSql()

	var saved Order
	err = r.getContext(ctx, &saved, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to update order: %w", err)
	}
	return OrderToEntity(saved)
}

func (r *postgresRepo) ListDrawers(ctx context.Context) ([]entities.StorageDrawer, error) {
	query, args := r.qb.Select("name", "capacity").
		From("storage_drawers").
		OrderBy("position", "name").
		MustSql()

	var drawers []Drawer
	if err := r.selectContext(ctx, &drawers, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select drawers: %w", err)
	}

	res := make([]entities.StorageDrawer, 0, len(drawers))
	for _, d := range drawers {
		res = append(res, entities.StorageDrawer{Name: d.Name, Capacity: d.Capacity})
	}
	return res, nil
}

func (r *postgresRepo) GetUser(ctx context.Context, username string) (entities.User, error) {
	query, args := r.qb.Select("username", "password_hash").
		From("users").
		Where(sq.Eq{"username": username}).
		MustSql()

	var user User
	err := r.getContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return entities.User{Username: user.Username, PasswordHash: user.PasswordHash}, nil
}

func (r *postgresRepo) SaveUser(ctx context.Context, u entities.User) error {
	query, args := r.qb.Insert("users").
		Columns("username", "password_hash").
		Values(u.Username, u.PasswordHash).
		Suffix("ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// AppendLog пишет запись в журнал действий, история в самом заказе не трогается
func (r *postgresRepo) AppendLog(ctx context.Context, orderID string, entry entities.ActivityLog) error {
	query, args := r.qb.Insert("activity_log").
		Columns("order_id", "created_at", "activity", "username").
		Values(orderID, entry.Timestamp, entry.Activity, entry.User).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to append activity log: %w", err)
	}
	return nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
