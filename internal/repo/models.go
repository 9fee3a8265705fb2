package repo

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/jmoiron/sqlx/types"
)

var orderColumns = []string{
	"id", "local_order_id", "global_order_id", "client_id", "store_id", "product_name", "product_url",
	"status", "shipment_id", "box_id",
	"price", "currency", "price_in_mru", "commission", "commission_type", "commission_rate",
	"quantity", "amount_paid", "shipping_cost", "weight", "shipping_type",
	"tracking_number", "origin_center", "receiving_company_id", "storage_location",
	"storage_date", "arrival_date_at_office", "order_date", "expected_arrival_date",
	"notes", "attachments", "history", "created_at", "updated_at",
}

type Order struct {
	ID                  string         `db:"id"`
	LocalOrderID        string         `db:"local_order_id"`
	GlobalOrderID       sql.NullString `db:"global_order_id"`
	ClientID            string         `db:"client_id"`
	StoreID             sql.NullString `db:"store_id"`
	ProductName         string         `db:"product_name"`
	ProductURL          sql.NullString `db:"product_url"`
	Status              string         `db:"status"`
	ShipmentID          sql.NullString `db:"shipment_id"`
	BoxID               sql.NullString `db:"box_id"`
	Price               float64        `db:"price"`
	Currency            sql.NullString `db:"currency"`
	PriceInMRU          float64        `db:"price_in_mru"`
	Commission          float64        `db:"commission"`
	CommissionType      string         `db:"commission_type"`
	CommissionRate      float64        `db:"commission_rate"`
	Quantity            int            `db:"quantity"`
	AmountPaid          float64        `db:"amount_paid"`
	ShippingCost        float64        `db:"shipping_cost"`
	Weight              float64        `db:"weight"`
	ShippingType        string         `db:"shipping_type"`
	TrackingNumber      sql.NullString `db:"tracking_number"`
	OriginCenter        sql.NullString `db:"origin_center"`
	ReceivingCompanyID  sql.NullString `db:"receiving_company_id"`
	StorageLocation     sql.NullString `db:"storage_location"`
	StorageDate         sql.NullTime   `db:"storage_date"`
	ArrivalDateAtOffice sql.NullTime   `db:"arrival_date_at_office"`
	OrderDate           time.Time      `db:"order_date"`
	ExpectedArrivalDate sql.NullTime   `db:"expected_arrival_date"`
	Notes               string         `db:"notes"`
	Attachments         types.JSONText `db:"attachments"`
	History             types.JSONText `db:"history"`
	CreatedAt           time.Time      `db:"created_at"`
	UpdatedAt           time.Time      `db:"updated_at"`
}

type Drawer struct {
	Name     string `db:"name"`
	Capacity int    `db:"capacity"`
}

type User struct {
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
}

// в jsonb поля храним в snake_case, как в API
type attachmentsJSON struct {
	Product    []string `json:"product,omitempty"`
	Order      []string `json:"order,omitempty"`
	HubArrival []string `json:"hub_arrival,omitempty"`
	Weighing   []string `json:"weighing,omitempty"`
	Receipt    []string `json:"receipt,omitempty"`
}

type activityJSON struct {
	Timestamp time.Time `json:"timestamp"`
	Activity  string    `json:"activity"`
	User      string    `json:"user"`
}

func OrderToEntity(o Order) (entities.Order, error) {
	order := entities.Order{
		ID:                  o.ID,
		LocalOrderID:        o.LocalOrderID,
		GlobalOrderID:       nullStringToString(o.GlobalOrderID),
		ClientID:            o.ClientID,
		StoreID:             nullStringToString(o.StoreID),
		ProductName:         o.ProductName,
		ProductURL:          nullStringToString(o.ProductURL),
		Status:              entities.Status(o.Status),
		ShipmentID:          nullStringToString(o.ShipmentID),
		BoxID:               nullStringToString(o.BoxID),
		Price:               o.Price,
		Currency:            nullStringToString(o.Currency),
		PriceInMRU:          o.PriceInMRU,
		Commission:          o.Commission,
		CommissionType:      entities.CommissionType(o.CommissionType),
		CommissionRate:      o.CommissionRate,
		Quantity:            o.Quantity,
		AmountPaid:          o.AmountPaid,
		ShippingCost:        o.ShippingCost,
		Weight:              o.Weight,
		ShippingType:        entities.ShippingType(o.ShippingType),
		TrackingNumber:      nullStringToString(o.TrackingNumber),
		OriginCenter:        nullStringToString(o.OriginCenter),
		ReceivingCompanyID:  nullStringToString(o.ReceivingCompanyID),
		StorageLocation:     nullStringToString(o.StorageLocation),
		StorageDate:         nullTimeToTime(o.StorageDate),
		ArrivalDateAtOffice: nullTimeToTime(o.ArrivalDateAtOffice),
		OrderDate:           o.OrderDate,
		ExpectedArrivalDate: nullTimeToTime(o.ExpectedArrivalDate),
		Notes:               o.Notes,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}

	if len(o.Attachments) > 0 {
		var a attachmentsJSON
		if err := o.Attachments.Unmarshal(&a); err != nil {
			return entities.Order{}, err
		}
		order.Attachments = entities.Attachments{
			Product:    a.Product,
			Order:      a.Order,
			HubArrival: a.HubArrival,
			Weighing:   a.Weighing,
			Receipt:    a.Receipt,
		}
	}

	if len(o.History) > 0 {
		var h []activityJSON
		if err := o.History.Unmarshal(&h); err != nil {
			return entities.Order{}, err
		}
		order.History = make([]entities.ActivityLog, 0, len(h))
		for _, e := range h {
			order.History = append(order.History, entities.ActivityLog{Timestamp: e.Timestamp, Activity: e.Activity, User: e.User})
		}
	}

	return order, nil
}

func OrdersToEntities(rows []Order) ([]entities.Order, error) {
	res := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		o, err := OrderToEntity(row)
		if err != nil {
			return nil, err
		}
		res = append(res, o)
	}
	return res, nil
}

// orderValues maps an order to insert values. id and timestamps are set by the repo.
func orderValues(o entities.Order) (map[string]any, error) {
	attachments, err := attachmentsToJSON(o.Attachments)
	if err != nil {
		return nil, err
	}
	history, err := historyToJSON(o.History)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"local_order_id":         o.LocalOrderID,
		"global_order_id":        nullString(o.GlobalOrderID),
		"client_id":              o.ClientID,
		"store_id":               nullString(o.StoreID),
		"product_name":           o.ProductName,
		"product_url":            nullString(o.ProductURL),
		"status":                 string(o.Status),
		"shipment_id":            nullString(o.ShipmentID),
		"box_id":                 nullString(o.BoxID),
		"price":                  o.Price,
		"currency":               nullString(o.Currency),
		"price_in_mru":           o.PriceInMRU,
		"commission":             o.Commission,
		"commission_type":        string(o.CommissionType),
		"commission_rate":        o.CommissionRate,
		"quantity":               o.Quantity,
		"amount_paid":            o.AmountPaid,
		"shipping_cost":          o.ShippingCost,
		"weight":                 o.Weight,
		"shipping_type":          string(o.ShippingType),
		"tracking_number":        nullString(o.TrackingNumber),
		"origin_center":          nullString(o.OriginCenter),
		"receiving_company_id":   nullString(o.ReceivingCompanyID),
		"storage_location":       nullString(o.StorageLocation),
		"storage_date":           nullTime(o.StorageDate),
		"arrival_date_at_office": nullTime(o.ArrivalDateAtOffice),
		"order_date":             o.OrderDate,
		"expected_arrival_date":  nullTime(o.ExpectedArrivalDate),
		"notes":                  o.Notes,
		"attachments":            attachments,
		"history":                history,
	}, nil
}

// patchValues maps the non-nil fields of a patch to columns.
func patchValues(p entities.OrderPatch) (map[string]any, error) {
	m := make(map[string]any)

	setString := func(col string, v *string) {
		if v != nil {
			m[col] = nullString(*v)
		}
	}
	setFloat := func(col string, v *float64) {
		if v != nil {
			m[col] = *v
		}
	}
	setTime := func(col string, v *time.Time) {
		if v != nil {
			m[col] = nullTime(*v)
		}
	}

	if p.Status != nil {
		m["status"] = string(*p.Status)
	}
	setString("global_order_id", p.GlobalOrderID)
	setString("shipment_id", p.ShipmentID)
	setString("box_id", p.BoxID)
	setFloat("price", p.Price)
	setFloat("price_in_mru", p.PriceInMRU)
	setFloat("commission", p.Commission)
	if p.Quantity != nil {
		m["quantity"] = *p.Quantity
	}
	setFloat("amount_paid", p.AmountPaid)
	setFloat("shipping_cost", p.ShippingCost)
	setFloat("weight", p.Weight)
	if p.ShippingType != nil {
		m["shipping_type"] = string(*p.ShippingType)
	}
	setString("tracking_number", p.TrackingNumber)
	setString("origin_center", p.OriginCenter)
	setString("receiving_company_id", p.ReceivingCompanyID)
	setString("storage_location", p.StorageLocation)
	setTime("storage_date", p.StorageDate)
	setTime("arrival_date_at_office", p.ArrivalDateAtOffice)
	setTime("expected_arrival_date", p.ExpectedArrivalDate)
	if p.Notes != nil {
		m["notes"] = *p.Notes
	}
	if p.Attachments != nil {
		a, err := attachmentsToJSON(*p.Attachments)
		if err != nil {
			return nil, err
		}
		m["attachments"] = a
	}
	if p.History != nil {
		h, err := historyToJSON(p.History)
		if err != nil {
			return nil, err
		}
		m["history"] = h
	}
	return m, nil
}

func attachmentsToJSON(a entities.Attachments) (types.JSONText, error) {
	return json.Marshal(attachmentsJSON{
		Product:    a.Product,
		Order:      a.Order,
		HubArrival: a.HubArrival,
		Weighing:   a.Weighing,
		Receipt:    a.Receipt,
	})
}

func historyToJSON(history []entities.ActivityLog) (types.JSONText, error) {
	h := make([]activityJSON, 0, len(history))
	for _, e := range history {
		h = append(h, activityJSON{Timestamp: e.Timestamp, Activity: e.Activity, User: e.User})
	}
	return json.Marshal(h)
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullTimeToTime(nt sql.NullTime) time.Time {
	if nt.Valid {
		return nt.Time
	}
	return time.Time{}
}
