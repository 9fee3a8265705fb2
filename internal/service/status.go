package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/finance"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/slots"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/trm"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/utils"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

const splitActivityPrefix = "Split off"

type OrderStore interface {
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
	ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	InsertOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	// UpdateOrder возвращает заказ в том виде, в каком он сохранен
	UpdateOrder(ctx context.Context, id string, patch entities.OrderPatch) (entities.Order, error)
}

type DrawerStore interface {
	ListDrawers(ctx context.Context) ([]entities.StorageDrawer, error)
}

type AuditSink interface {
	AppendLog(ctx context.Context, orderID string, entry entities.ActivityLog) error
}

type Reauthenticator interface {
	Reauthenticate(ctx context.Context, username, proof string) error
}

type StatusEngine struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderStore
	drawers   DrawerStore
	audit     AuditSink
	reauth    Reauthenticator
	cache     Cache
	rates     entities.ShippingRates
	validate  *validator.Validate
	now       func() time.Time
}

func NewStatusEngine(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderStore,
	drawers DrawerStore,
	audit AuditSink,
	reauth Reauthenticator,
	cache Cache,
	rates entities.ShippingRates,
) *StatusEngine {
	return &StatusEngine{
		logger:    logger.With(slog.String("service", "status")),
		txManager: txManager,
		orders:    orders,
		drawers:   drawers,
		audit:     audit,
		reauth:    reauth,
		cache:     cache,
		rates:     rates,
		validate:  utils.NewValidator(),
		now:       time.Now,
	}
}

// Create registers a new order in status NEW with its first history entry.
func (e *StatusEngine) Create(ctx context.Context, user string, in entities.NewOrder) (entities.Order, error) {
	if err := e.validateStruct(in); err != nil {
		return entities.Order{}, err
	}

	now := e.now()
	order := entities.Order{
		LocalOrderID:   in.LocalOrderID,
		ClientID:       in.ClientID,
		StoreID:        in.StoreID,
		ProductName:    in.ProductName,
		ProductURL:     in.ProductURL,
		Status:         entities.StatusNew,
		Price:          in.Price,
		Currency:       in.Currency,
		PriceInMRU:     in.PriceInMRU,
		Commission:     finance.Commission(in.PriceInMRU, in.CommissionType, in.CommissionRate, in.Commission),
		CommissionType: in.CommissionType,
		CommissionRate: in.CommissionRate,
		Quantity:       in.Quantity,
		ShippingType:   in.ShippingType,
		OrderDate:      now,
		Notes:          in.Notes,
		Attachments:    entities.Attachments{Product: in.ProductImages},
	}
	if in.OrderDate != nil {
		order.OrderDate = *in.OrderDate
	}
	if in.ExpectedArrivalDate != nil {
		order.ExpectedArrivalDate = *in.ExpectedArrivalDate
	}

	entry := entities.ActivityLog{Timestamp: now, Activity: "Order created", User: user}
	order.History = []entities.ActivityLog{entry}

	saved, err := e.orders.InsertOrder(ctx, order)
	if err != nil {
		transitionsTotal.WithLabelValues("create", "failed").Inc()
		return entities.Order{}, &entities.PersistenceError{Operation: "create", Err: err}
	}

	e.afterCommit(ctx, "create", saved, entry)
	return saved, nil
}

// Advance moves the order one step forward using the input required by its current status.
func (e *StatusEngine) Advance(ctx context.Context, id, user string, payload entities.AdvancePayload) (entities.Order, error) {
	if payload == nil {
		return entities.Order{}, entities.NewValidationError("from")
	}

	order, err := e.fetch(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	if order.Status.Terminal() {
		return entities.Order{}, e.illegal("advance", order.Status, "status is terminal")
	}
	if payload.From() != order.Status {
		return entities.Order{}, e.illegal("advance", order.Status, fmt.Sprintf("input is for status %s", payload.From()))
	}
	if order.ShipmentID != "" && order.Status.ShipmentManaged() {
		return entities.Order{}, e.illegal("advance", order.Status, fmt.Sprintf("order is moved by shipment %s", order.ShipmentID))
	}

	if err := e.validatePayload(payload, order); err != nil {
		return entities.Order{}, err
	}

	next, ok := order.Status.Next()
	if !ok {
		return entities.Order{}, e.illegal("advance", order.Status, "no next status")
	}

	now := e.now()
	changes := payload.Changes()
	if order.Status == entities.StatusArrivedAtOffice && changes.Weight != nil {
		cost := finance.ShippingCost(*changes.Weight, e.rates.For(order.ShippingType))
		changes.ShippingCost = &cost
		changes.StorageDate = &now
	}
	changes.Status = &next

	ev := entities.Event{
		Kind:    entities.EventAdvanced,
		Changes: changes,
		Entry: entities.ActivityLog{
			Timestamp: now,
			Activity:  fmt.Sprintf("%s (status: %s)", describeChanges(changes), next),
			User:      user,
		},
	}
	return e.commit(ctx, "advance", order, ev)
}

// Revert moves the order one step back. The caller must prove its identity again.
func (e *StatusEngine) Revert(ctx context.Context, id, user, proof string) (entities.Order, error) {
	if err := e.reauth.Reauthenticate(ctx, user, proof); err != nil {
		transitionsTotal.WithLabelValues("revert", "unauthorized").Inc()
		var authErr *entities.AuthenticationError
		if !errors.As(err, &authErr) {
			err = &entities.AuthenticationError{Err: err}
		}
		return entities.Order{}, err
	}

	order, err := e.fetch(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	prev, ok := order.Status.Previous()
	if !ok {
		return entities.Order{}, e.illegal("revert", order.Status, "no previous status")
	}

	ev := entities.Event{
		Kind:    entities.EventReverted,
		Changes: entities.OrderPatch{Status: &prev},
		Entry: entities.ActivityLog{
			Timestamp: e.now(),
			Activity:  fmt.Sprintf("Reverted from %s to %s", order.Status, prev),
			User:      user,
		},
	}
	return e.commit(ctx, "revert", order, ev)
}

// Cancel is allowed only while the order is ORDERED. The reason is kept in the history and on top of the notes.
func (e *StatusEngine) Cancel(ctx context.Context, id, user, reason string) (entities.Order, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Order{}, entities.NewValidationError("reason")
	}

	order, err := e.fetch(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	if order.Status != entities.StatusOrdered {
		return entities.Order{}, e.illegal("cancel", order.Status, "only ordered orders can be cancelled")
	}

	notes := "Cancellation reason: " + reason
	if order.Notes != "" {
		notes += "\n" + order.Notes
	}
	status := entities.StatusCancelled

	ev := entities.Event{
		Kind:    entities.EventCancelled,
		Changes: entities.OrderPatch{Status: &status, Notes: &notes},
		Entry: entities.ActivityLog{
			Timestamp: e.now(),
			Activity:  "Order cancelled: " + reason,
			User:      user,
		},
	}
	return e.commit(ctx, "cancel", order, ev)
}

// Edit changes non-status fields. Status only moves through the transition operations.
func (e *StatusEngine) Edit(ctx context.Context, id, user string, edit entities.OrderEdit) (entities.Order, error) {
	if err := e.validateStruct(edit); err != nil {
		return entities.Order{}, err
	}

	changes := edit.Changes()
	if changes.IsZero() {
		return entities.Order{}, entities.NewValidationError("body")
	}

	order, err := e.fetch(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	if order.Status == entities.StatusCancelled {
		return entities.Order{}, e.illegal("edit", order.Status, "order is cancelled")
	}

	if changes.PriceInMRU != nil && order.CommissionType == entities.CommissionPercentage {
		commission := finance.Commission(*changes.PriceInMRU, order.CommissionType, order.CommissionRate, order.Commission)
		changes.Commission = &commission
	}
	if changes.ShippingType != nil && order.Weight > 0 {
		cost := finance.ShippingCost(order.Weight, e.rates.For(*changes.ShippingType))
		changes.ShippingCost = &cost
	}

	ev := entities.Event{
		Kind:    entities.EventEdited,
		Changes: changes,
		Entry: entities.ActivityLog{
			Timestamp: e.now(),
			Activity:  describeChanges(changes),
			User:      user,
		},
	}
	return e.commit(ctx, "edit", order, ev)
}

// Split moves part of the quantity of a NEW order into a separate order.
// Both writes happen in one transaction.
func (e *StatusEngine) Split(ctx context.Context, id, user string, req entities.SplitRequest) (entities.SplitResult, error) {
	if err := e.validateStruct(req); err != nil {
		return entities.SplitResult{}, err
	}

	order, err := e.fetch(ctx, id)
	if err != nil {
		return entities.SplitResult{}, err
	}

	if order.Status != entities.StatusNew {
		return entities.SplitResult{}, e.illegal("split", order.Status, "only new orders can be split")
	}
	if req.Quantity >= order.Quantity {
		return entities.SplitResult{}, entities.NewValidationError("quantity")
	}

	splitPrice := finance.Scale(order.PriceInMRU, float64(req.Quantity), float64(order.Quantity))
	if req.PriceAdjustment != nil {
		splitPrice = *req.PriceAdjustment
	}
	if splitPrice > order.PriceInMRU {
		return entities.SplitResult{}, entities.NewValidationError("price_adjustment")
	}
	remainingPrice := finance.Sub(order.PriceInMRU, splitPrice)

	var splitCommission, remainingCommission float64
	if order.CommissionType == entities.CommissionPercentage {
		splitCommission = finance.Commission(splitPrice, order.CommissionType, order.CommissionRate, 0)
		remainingCommission = finance.Commission(remainingPrice, order.CommissionType, order.CommissionRate, 0)
	} else {
		splitCommission = finance.Apportion(order.Commission, req.Quantity, order.Quantity)
		if req.CommissionAdjustment != nil {
			splitCommission = *req.CommissionAdjustment
		}
		if splitCommission > order.Commission {
			return entities.SplitResult{}, entities.NewValidationError("commission_adjustment")
		}
		remainingCommission = finance.Sub(order.Commission, splitCommission)
	}

	var splitForeign float64
	if order.PriceInMRU > 0 {
		splitForeign = finance.Scale(order.Price, splitPrice, order.PriceInMRU)
	} else {
		splitForeign = finance.Scale(order.Price, float64(req.Quantity), float64(order.Quantity))
	}
	remainingForeign := finance.Sub(order.Price, splitForeign)
	remainingQuantity := order.Quantity - req.Quantity

	now := e.now()
	localID := fmt.Sprintf("%s-%d", order.LocalOrderID, splitCount(order.History)+1)

	split := entities.Order{
		LocalOrderID:        localID,
		ClientID:            order.ClientID,
		StoreID:             order.StoreID,
		ProductName:         order.ProductName,
		ProductURL:          order.ProductURL,
		Status:              entities.StatusNew,
		Price:               splitForeign,
		Currency:            order.Currency,
		PriceInMRU:          splitPrice,
		Commission:          splitCommission,
		CommissionType:      order.CommissionType,
		CommissionRate:      order.CommissionRate,
		Quantity:            req.Quantity,
		ShippingType:        order.ShippingType,
		TrackingNumber:      req.TrackingNumber,
		OrderDate:           order.OrderDate,
		ExpectedArrivalDate: order.ExpectedArrivalDate,
		Attachments:         entities.Attachments{Product: slices.Clone(order.Attachments.Product)},
		History: []entities.ActivityLog{{
			Timestamp: now,
			Activity:  "Created as split from " + order.LocalOrderID,
			User:      user,
		}},
	}

	ev := entities.Event{
		Kind: entities.EventSplit,
		Changes: entities.OrderPatch{
			Quantity:   &remainingQuantity,
			Price:      &remainingForeign,
			PriceInMRU: &remainingPrice,
			Commission: &remainingCommission,
		},
		Entry: entities.ActivityLog{
			Timestamp: now,
			Activity:  fmt.Sprintf("%s %d unit(s) into %s", splitActivityPrefix, req.Quantity, localID),
			User:      user,
		},
	}

	var res entities.SplitResult
	err = e.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		if res.Original, err = e.persist(ctx, order, ev); err != nil {
			return fmt.Errorf("failed to update original order: %w", err)
		}
		if res.Split, err = e.orders.InsertOrder(ctx, split); err != nil {
			return fmt.Errorf("failed to insert split order: %w", err)
		}
		return nil
	})
	if err != nil {
		transitionsTotal.WithLabelValues("split", "failed").Inc()
		return entities.SplitResult{}, &entities.PersistenceError{Operation: "split", Err: err}
	}

	e.afterCommit(ctx, "split", res.Original, ev.Entry)
	e.afterCommit(ctx, "split", res.Split, split.History[0])
	return res, nil
}

// ApplyShipmentUpdate attaches orders to a shipment box and moves them forward with it.
// Orders are never moved backwards or out of a terminal status.
func (e *StatusEngine) ApplyShipmentUpdate(ctx context.Context, upd entities.ShipmentUpdate) error {
	if upd.ShipmentID == "" {
		return entities.NewValidationError("shipment_id")
	}
	if upd.Status != "" && !upd.Status.ShipmentManaged() && upd.Status != entities.StatusArrivedAtOffice {
		return entities.NewValidationError("status")
	}

	var errs []error
	for _, id := range upd.OrderIDs {
		if err := e.applyShipment(ctx, id, upd); err != nil {
			errs = append(errs, fmt.Errorf("order %s: %w", id, err))
		}
	}
	return errors.Join(errs...)
}

func (e *StatusEngine) applyShipment(ctx context.Context, id string, upd entities.ShipmentUpdate) error {
	order, err := e.fetch(ctx, id)
	if err != nil {
		return err
	}

	var changes entities.OrderPatch
	if order.ShipmentID != upd.ShipmentID {
		changes.ShipmentID = &upd.ShipmentID
	}
	if upd.BoxID != "" && order.BoxID != upd.BoxID {
		changes.BoxID = &upd.BoxID
	}

	activity := fmt.Sprintf("Added to shipment %s", upd.ShipmentID)
	// статус двигаем только у заказов, которые уже едут партией
	if upd.Status != "" && order.Status.ShipmentManaged() && upd.Status.Index() > order.Status.Index() {
		changes.Status = &upd.Status
		activity = fmt.Sprintf("Shipment %s moved to %s", upd.ShipmentID, upd.Status)
	}
	// повторная доставка того же события
	if changes.IsZero() {
		e.logger.Debug("shipment update changes nothing", slog.String("order_id", order.ID), slog.String("shipment_id", upd.ShipmentID))
		return nil
	}
	if upd.BoxID != "" {
		activity += ", box " + upd.BoxID
	}

	ev := entities.Event{
		Kind:    entities.EventShipment,
		Changes: changes,
		Entry:   entities.ActivityLog{Timestamp: e.now(), Activity: activity, User: entities.SystemUser},
	}
	_, err = e.commit(ctx, "shipment", order, ev)
	return err
}

// SuggestSlot recommends a storage slot for an order waiting at the office.
func (e *StatusEngine) SuggestSlot(ctx context.Context, id string) (slots.Suggestion, error) {
	order, err := e.fetch(ctx, id)
	if err != nil {
		return slots.Suggestion{}, err
	}
	if order.Status != entities.StatusArrivedAtOffice {
		return slots.Suggestion{}, e.illegal("suggest slot for", order.Status, "order is not at the office")
	}

	var (
		stored  []entities.Order
		drawers []entities.StorageDrawer
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stored, err = e.orders.ListOrders(gctx, entities.OrderFilter{Statuses: []entities.Status{entities.StatusStored}})
		if err != nil {
			return fmt.Errorf("failed to list stored orders: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		drawers, err = e.drawers.ListDrawers(gctx)
		if err != nil {
			return fmt.Errorf("failed to list drawers: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return slots.Suggestion{}, err
	}

	s := slots.Suggest(order, stored, drawers)
	suggestionScore.Observe(float64(s.Score))
	if s.Location == "" {
		suggestionsWithoutSlot.Inc()
	}
	return s, nil
}

func (e *StatusEngine) fetch(ctx context.Context, id string) (entities.Order, error) {
	order, err := e.orders.GetOrderByID(ctx, id)
	if errors.Is(err, entities.ErrOrderNotFound) {
		return entities.Order{}, err
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

// commit persists one event. On failure the caller's copy of the order stays as it was.
func (e *StatusEngine) commit(ctx context.Context, op string, order entities.Order, ev entities.Event) (entities.Order, error) {
	saved, err := e.persist(ctx, order, ev)
	if err != nil {
		transitionsTotal.WithLabelValues(op, "failed").Inc()
		e.logger.ErrorContext(ctx, "failed to persist order", slog.String("operation", op), slog.String("order_id", order.ID), slog.Any("error", err))
		return entities.Order{}, &entities.PersistenceError{Operation: op, Err: err}
	}

	e.afterCommit(ctx, op, saved, ev.Entry)
	return saved, nil
}

func (e *StatusEngine) persist(ctx context.Context, order entities.Order, ev entities.Event) (entities.Order, error) {
	return e.orders.UpdateOrder(ctx, order.ID, ev.Resolve(order))
}

// afterCommit refreshes the cache and publishes the history entry. Both are best effort.
func (e *StatusEngine) afterCommit(ctx context.Context, op string, order entities.Order, entry entities.ActivityLog) {
	transitionsTotal.WithLabelValues(op, "ok").Inc()

	if data, err := order.Marshal(); err != nil {
		e.logger.Warn("failed to marshal order for cache", slog.String("order_id", order.ID), slog.Any("error", err))
	} else {
		e.cache.Set(order.ID, data)
	}

	if err := e.audit.AppendLog(ctx, order.ID, entry); err != nil {
		auditFailures.Inc()
		e.logger.WarnContext(ctx, "failed to publish activity", slog.String("order_id", order.ID), slog.Any("error", err))
	}

	e.logger.Debug("order updated", slog.String("operation", op), slog.String("order_id", order.ID), slog.String("status", string(order.Status)))
}

func (e *StatusEngine) illegal(op string, status entities.Status, reason string) error {
	transitionsTotal.WithLabelValues(op, "rejected").Inc()
	return &entities.IllegalTransitionError{Operation: op, Status: status, Reason: reason}
}

func (e *StatusEngine) validateStruct(v any) error {
	if err := e.validate.Struct(v); err != nil {
		if fields := utils.ValidationFields(err); len(fields) > 0 {
			return entities.NewValidationError(fields...)
		}
		return err
	}
	return nil
}

func (e *StatusEngine) validatePayload(payload entities.AdvancePayload, order entities.Order) error {
	var missing []string
	if err := e.validate.Struct(payload); err != nil {
		fields := utils.ValidationFields(err)
		if len(fields) == 0 {
			return err
		}
		missing = append(missing, fields...)
	}
	if req, ok := payload.(entities.OrderRequirements); ok {
		missing = append(missing, req.MissingOnOrder(order)...)
	}
	if len(missing) > 0 {
		return entities.NewValidationError(missing...)
	}
	return nil
}

// describeChanges names the most significant field of an update.
func describeChanges(p entities.OrderPatch) string {
	switch {
	case p.StorageLocation != nil && *p.StorageLocation != "":
		return "Stored at " + *p.StorageLocation
	case p.TrackingNumber != nil && *p.TrackingNumber != "":
		return "Tracking number set to " + *p.TrackingNumber
	case p.GlobalOrderID != nil && *p.GlobalOrderID != "":
		return "Global order ID set to " + *p.GlobalOrderID
	default:
		return "Updated Details"
	}
}

func splitCount(history []entities.ActivityLog) int {
	n := 0
	for _, h := range history {
		if strings.HasPrefix(h.Activity, splitActivityPrefix) {
			n++
		}
	}
	return n
}
