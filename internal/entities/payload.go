package entities

import "time"

// AdvancePayload is the per-state input needed to move an order out of From().
// Each variant carries only the fields its state requires.
type AdvancePayload interface {
	From() Status
	Changes() OrderPatch
}

// OrderRequirements is implemented by payloads whose preconditions live on the order itself.
type OrderRequirements interface {
	MissingOnOrder(o Order) []string
}

type NewOrderAdvance struct {
	GlobalOrderID      string   `json:"global_order_id" validate:"required"`
	OriginCenter       string   `json:"origin_center" validate:"required"`
	ReceivingCompanyID string   `json:"receiving_company_id" validate:"required"`
	OrderImages        []string `json:"order_images"`
}

func (NewOrderAdvance) From() Status { return StatusNew }

func (p NewOrderAdvance) Changes() OrderPatch {
	patch := OrderPatch{
		GlobalOrderID:      &p.GlobalOrderID,
		OriginCenter:       &p.OriginCenter,
		ReceivingCompanyID: &p.ReceivingCompanyID,
	}
	if len(p.OrderImages) > 0 {
		patch.Attachments = &Attachments{Order: p.OrderImages}
	}
	return patch
}

type OrderedAdvance struct {
	TrackingNumber string `json:"tracking_number" validate:"required"`
}

func (OrderedAdvance) From() Status { return StatusOrdered }

func (p OrderedAdvance) Changes() OrderPatch {
	return OrderPatch{TrackingNumber: &p.TrackingNumber}
}

type ShippedFromStoreAdvance struct {
	HubArrivalImages []string `json:"hub_arrival_images"`
}

func (ShippedFromStoreAdvance) From() Status { return StatusShippedFromStore }

func (p ShippedFromStoreAdvance) Changes() OrderPatch {
	if len(p.HubArrivalImages) == 0 {
		return OrderPatch{}
	}
	return OrderPatch{Attachments: &Attachments{HubArrival: p.HubArrivalImages}}
}

type ArrivedAtHubAdvance struct{}

func (ArrivedAtHubAdvance) From() Status { return StatusArrivedAtHub }

func (ArrivedAtHubAdvance) Changes() OrderPatch { return OrderPatch{} }

type InTransitAdvance struct {
	ArrivalDateAtOffice *time.Time `json:"arrival_date_at_office" validate:"required"`
}

func (InTransitAdvance) From() Status { return StatusInTransit }

func (p InTransitAdvance) Changes() OrderPatch {
	return OrderPatch{ArrivalDateAtOffice: p.ArrivalDateAtOffice}
}

// ArrivedAtOfficeAdvance weighs the package and assigns it a slot.
// Shipping cost and storage date are derived by the engine.
type ArrivedAtOfficeAdvance struct {
	Weight          float64  `json:"weight" validate:"gt=0"`
	StorageLocation string   `json:"storage_location" validate:"required"`
	WeighingImages  []string `json:"weighing_images"`
}

func (ArrivedAtOfficeAdvance) From() Status { return StatusArrivedAtOffice }

func (p ArrivedAtOfficeAdvance) Changes() OrderPatch {
	patch := OrderPatch{
		Weight:          &p.Weight,
		StorageLocation: &p.StorageLocation,
	}
	if len(p.WeighingImages) > 0 {
		patch.Attachments = &Attachments{Weighing: p.WeighingImages}
	}
	return patch
}

// StoredAdvance hands the package over to the client.
type StoredAdvance struct {
	AmountPaid    *float64 `json:"amount_paid" validate:"omitempty,gte=0"`
	ReceiptImages []string `json:"receipt_images"`
}

func (StoredAdvance) From() Status { return StatusStored }

func (p StoredAdvance) Changes() OrderPatch {
	patch := OrderPatch{AmountPaid: p.AmountPaid}
	if len(p.ReceiptImages) > 0 {
		patch.Attachments = &Attachments{Receipt: p.ReceiptImages}
	}
	return patch
}

func (StoredAdvance) MissingOnOrder(o Order) []string {
	if o.StorageLocation == "" {
		return []string{"storage_location"}
	}
	return nil
}

// OrderEdit is a direct edit of non-status fields.
type OrderEdit struct {
	GlobalOrderID       *string       `json:"global_order_id"`
	Price               *float64      `json:"price" validate:"omitempty,gte=0"`
	PriceInMRU          *float64      `json:"price_in_mru" validate:"omitempty,gte=0"`
	AmountPaid          *float64      `json:"amount_paid" validate:"omitempty,gte=0"`
	ShippingType        *ShippingType `json:"shipping_type" validate:"omitempty,oneof=normal fast"`
	TrackingNumber      *string       `json:"tracking_number"`
	StorageLocation     *string       `json:"storage_location"`
	ExpectedArrivalDate *time.Time    `json:"expected_arrival_date"`
	Notes               *string       `json:"notes"`
}

func (e OrderEdit) Changes() OrderPatch {
	return OrderPatch{
		GlobalOrderID:       e.GlobalOrderID,
		Price:               e.Price,
		PriceInMRU:          e.PriceInMRU,
		AmountPaid:          e.AmountPaid,
		ShippingType:        e.ShippingType,
		TrackingNumber:      e.TrackingNumber,
		StorageLocation:     e.StorageLocation,
		ExpectedArrivalDate: e.ExpectedArrivalDate,
		Notes:               e.Notes,
	}
}

type SplitRequest struct {
	Quantity             int      `json:"quantity" validate:"required,gt=0"`
	TrackingNumber       string   `json:"tracking_number"`
	PriceAdjustment      *float64 `json:"price_adjustment" validate:"omitempty,gte=0"`
	CommissionAdjustment *float64 `json:"commission_adjustment" validate:"omitempty,gte=0"`
}

type SplitResult struct {
	Original Order
	Split    Order
}

// ShipmentUpdate comes from the external shipment workflow.
type ShipmentUpdate struct {
	ShipmentID string
	BoxID      string
	OrderIDs   []string
	Status     Status
}

// NewOrder is the input for registering an order. Commission is taken as is for the flat type
// and derived from CommissionRate for the percentage type.
type NewOrder struct {
	LocalOrderID        string         `json:"local_order_id" validate:"required"`
	ClientID            string         `json:"client_id" validate:"required"`
	StoreID             string         `json:"store_id"`
	ProductName         string         `json:"product_name" validate:"required"`
	ProductURL          string         `json:"product_url" validate:"omitempty,url"`
	Price               float64        `json:"price" validate:"gte=0"`
	Currency            string         `json:"currency" validate:"omitempty,len=3"`
	PriceInMRU          float64        `json:"price_in_mru" validate:"gte=0"`
	Commission          float64        `json:"commission" validate:"gte=0"`
	CommissionType      CommissionType `json:"commission_type" validate:"required,oneof=flat percentage"`
	CommissionRate      float64        `json:"commission_rate" validate:"gte=0,lte=100"`
	Quantity            int            `json:"quantity" validate:"required,gt=0"`
	ShippingType        ShippingType   `json:"shipping_type" validate:"required,oneof=normal fast"`
	OrderDate           *time.Time     `json:"order_date"`
	ExpectedArrivalDate *time.Time     `json:"expected_arrival_date"`
	Notes               string         `json:"notes"`
	ProductImages       []string       `json:"product_images"`
}
