package handler

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/finance"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/slots"
)

// Order представляет заказ
type Order struct {
	ID            string `json:"id"`
	LocalOrderID  string `json:"local_order_id"`
	GlobalOrderID string `json:"global_order_id,omitempty"`
	ClientID      string `json:"client_id"`
	StoreID       string `json:"store_id,omitempty"`
	ProductName   string `json:"product_name"`
	ProductURL    string `json:"product_url,omitempty"`

	Status     string `json:"status" example:"ORDERED"`
	ShipmentID string `json:"shipment_id,omitempty"`
	BoxID      string `json:"box_id,omitempty"`

	Price          float64 `json:"price"`
	Currency       string  `json:"currency,omitempty"`
	PriceInMRU     float64 `json:"price_in_mru"`
	Commission     float64 `json:"commission"`
	CommissionType string  `json:"commission_type"`
	CommissionRate float64 `json:"commission_rate,omitempty"`
	Quantity       int     `json:"quantity"`
	AmountPaid     float64 `json:"amount_paid"`
	ShippingCost   float64 `json:"shipping_cost"`
	Weight         float64 `json:"weight,omitempty"`
	ShippingType   string  `json:"shipping_type"`
	Total          float64 `json:"total"`
	Due            float64 `json:"due"`

	TrackingNumber      string     `json:"tracking_number,omitempty"`
	OriginCenter        string     `json:"origin_center,omitempty"`
	ReceivingCompanyID  string     `json:"receiving_company_id,omitempty"`
	StorageLocation     string     `json:"storage_location,omitempty"`
	StorageDate         *time.Time `json:"storage_date,omitempty"`
	ArrivalDateAtOffice *time.Time `json:"arrival_date_at_office,omitempty"`
	OrderDate           time.Time  `json:"order_date"`
	ExpectedArrivalDate *time.Time `json:"expected_arrival_date,omitempty"`

	Notes       string        `json:"notes,omitempty"`
	Attachments Attachments   `json:"attachments"`
	History     []ActivityLog `json:"history"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Attachments ссылки на изображения по категориям
type Attachments struct {
	Product    []string `json:"product,omitempty"`
	Order      []string `json:"order,omitempty"`
	HubArrival []string `json:"hub_arrival,omitempty"`
	Weighing   []string `json:"weighing,omitempty"`
	Receipt    []string `json:"receipt,omitempty"`
}

// ActivityLog запись истории заказа
type ActivityLog struct {
	Timestamp time.Time `json:"timestamp"`
	Activity  string    `json:"activity"`
	User      string    `json:"user"`
}

// AdvanceRequest тело запроса на перевод заказа в следующий статус.
// Поле from определяет, какие поля обязательны.
type AdvanceRequest struct {
	From                string     `json:"from" example:"ARRIVED_AT_OFFICE"`
	GlobalOrderID       string     `json:"global_order_id,omitempty"`
	OriginCenter        string     `json:"origin_center,omitempty"`
	ReceivingCompanyID  string     `json:"receiving_company_id,omitempty"`
	OrderImages         []string   `json:"order_images,omitempty"`
	TrackingNumber      string     `json:"tracking_number,omitempty"`
	HubArrivalImages    []string   `json:"hub_arrival_images,omitempty"`
	ArrivalDateAtOffice *time.Time `json:"arrival_date_at_office,omitempty"`
	Weight              float64    `json:"weight,omitempty"`
	StorageLocation     string     `json:"storage_location,omitempty"`
	WeighingImages      []string   `json:"weighing_images,omitempty"`
	AmountPaid          *float64   `json:"amount_paid,omitempty"`
	ReceiptImages       []string   `json:"receipt_images,omitempty"`
}

// CancelRequest причина отмены
type CancelRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// SplitResponse исходный и выделенный заказы
type SplitResponse struct {
	Original Order `json:"original"`
	Split    Order `json:"split"`
}

// SlotSuggestion рекомендация ячейки хранения
type SlotSuggestion struct {
	Drawer string `json:"drawer"`
	// null, если в ящике нет свободных ячеек
	Location *string  `json:"location"`
	Score    int      `json:"score"`
	Reasons  []string `json:"reasons"`
}

// Drawer заполненность ящика
type Drawer struct {
	Name      string   `json:"name"`
	Capacity  int      `json:"capacity"`
	Used      int      `json:"used"`
	FreeSlots []string `json:"free_slots"`
}

// Balance сводка по оплатам клиента
type Balance struct {
	ClientID   string  `json:"client_id"`
	Orders     int     `json:"orders"`
	Goods      float64 `json:"goods"`
	Commission float64 `json:"commission"`
	Shipping   float64 `json:"shipping"`
	Total      float64 `json:"total"`
	Paid       float64 `json:"paid"`
	Due        float64 `json:"due"`
}

// ReauthRequest повторный ввод пароля
type ReauthRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ReauthResponse короткоживущий токен для чувствительных операций
type ReauthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ShipmentEvent событие партии отправки из Kafka
type ShipmentEvent struct {
	ShipmentID string   `json:"shipment_id" validate:"required"`
	BoxID      string   `json:"box_id"`
	OrderIDs   []string `json:"order_ids" validate:"required,min=1,dive,required"`
	Status     string   `json:"status" validate:"omitempty,oneof=SHIPPED_FROM_STORE ARRIVED_AT_HUB IN_TRANSIT ARRIVED_AT_OFFICE"`
}

func (e ShipmentEvent) ToEntity() entities.ShipmentUpdate {
	return entities.ShipmentUpdate{
		ShipmentID: e.ShipmentID,
		BoxID:      e.BoxID,
		OrderIDs:   e.OrderIDs,
		Status:     entities.Status(e.Status),
	}
}

// DecodeAdvance picks the payload variant by the from field and decodes the body into it.
func DecodeAdvance(body []byte) (entities.AdvancePayload, error) {
	var head struct {
		From entities.Status `json:"from"`
	}
	if err := json.Unmarshal(body, &head); err != nil {
		return nil, err
	}

	var payload entities.AdvancePayload
	switch head.From {
	case entities.StatusNew:
		payload = &entities.NewOrderAdvance{}
	case entities.StatusOrdered:
		payload = &entities.OrderedAdvance{}
	case entities.StatusShippedFromStore:
		payload = &entities.ShippedFromStoreAdvance{}
	case entities.StatusArrivedAtHub:
		payload = &entities.ArrivedAtHubAdvance{}
	case entities.StatusInTransit:
		payload = &entities.InTransitAdvance{}
	case entities.StatusArrivedAtOffice:
		payload = &entities.ArrivedAtOfficeAdvance{}
	case entities.StatusStored:
		payload = &entities.StoredAdvance{}
	default:
		return nil, entities.NewValidationError("from")
	}

	if err := json.Unmarshal(body, payload); err != nil {
		return nil, fmt.Errorf("failed to decode %s input: %w", head.From, err)
	}
	return payload, nil
}

func OrderEntityToJSON(o entities.Order) Order {
	res := Order{
		ID:                  o.ID,
		LocalOrderID:        o.LocalOrderID,
		GlobalOrderID:       o.GlobalOrderID,
		ClientID:            o.ClientID,
		StoreID:             o.StoreID,
		ProductName:         o.ProductName,
		ProductURL:          o.ProductURL,
		Status:              string(o.Status),
		ShipmentID:          o.ShipmentID,
		BoxID:               o.BoxID,
		Price:               o.Price,
		Currency:            o.Currency,
		PriceInMRU:          o.PriceInMRU,
		Commission:          o.Commission,
		CommissionType:      string(o.CommissionType),
		CommissionRate:      o.CommissionRate,
		Quantity:            o.Quantity,
		AmountPaid:          o.AmountPaid,
		ShippingCost:        o.ShippingCost,
		Weight:              o.Weight,
		ShippingType:        string(o.ShippingType),
		Total:               finance.Total(o),
		Due:                 finance.Due(o),
		TrackingNumber:      o.TrackingNumber,
		OriginCenter:        o.OriginCenter,
		ReceivingCompanyID:  o.ReceivingCompanyID,
		StorageLocation:     o.StorageLocation,
		StorageDate:         timePtr(o.StorageDate),
		ArrivalDateAtOffice: timePtr(o.ArrivalDateAtOffice),
		OrderDate:           o.OrderDate,
		ExpectedArrivalDate: timePtr(o.ExpectedArrivalDate),
		Notes:               o.Notes,
		Attachments: Attachments{
			Product:    o.Attachments.Product,
			Order:      o.Attachments.Order,
			HubArrival: o.Attachments.HubArrival,
			Weighing:   o.Attachments.Weighing,
			Receipt:    o.Attachments.Receipt,
		},
		History:   make([]ActivityLog, 0, len(o.History)),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}

	for _, h := range o.History {
		res.History = append(res.History, ActivityLog{Timestamp: h.Timestamp, Activity: h.Activity, User: h.User})
	}
	return res
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	return res
}

func SuggestionEntityToJSON(s slots.Suggestion) SlotSuggestion {
	res := SlotSuggestion{
		Drawer:  s.Drawer,
		Score:   s.Score,
		Reasons: s.Reasons,
	}
	if res.Reasons == nil {
		res.Reasons = []string{}
	}
	if s.Location != "" {
		loc := s.Location
		res.Location = &loc
	}
	return res
}

func OccupancyEntityToJSON(occ []slots.Occupancy) []Drawer {
	res := make([]Drawer, 0, len(occ))
	for _, o := range occ {
		res = append(res, Drawer{
			Name:      o.Drawer.Name,
			Capacity:  o.Drawer.Capacity,
			Used:      o.Used,
			FreeSlots: o.FreeSlots,
		})
	}
	return res
}

func BalanceEntityToJSON(s finance.Summary) Balance {
	return Balance{
		ClientID:   s.ClientID,
		Orders:     s.Orders,
		Goods:      s.Goods,
		Commission: s.Commission,
		Shipping:   s.Shipping,
		Total:      s.Total,
		Paid:       s.Paid,
		Due:        s.Due,
	}
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
