package entities

import (
	"errors"
	"reflect"
	"time"
)

type Status string

const (
	StatusNew              Status = "NEW"
	StatusOrdered          Status = "ORDERED"
	StatusShippedFromStore Status = "SHIPPED_FROM_STORE"
	StatusArrivedAtHub     Status = "ARRIVED_AT_HUB"
	StatusInTransit        Status = "IN_TRANSIT"
	StatusArrivedAtOffice  Status = "ARRIVED_AT_OFFICE"
	StatusStored           Status = "STORED"
	StatusCompleted        Status = "COMPLETED"
	StatusCancelled        Status = "CANCELLED"
)

// StatusSequence is the canonical forward lifecycle. CANCELLED is a side exit and is not part of it.
var StatusSequence = []Status{
	StatusNew,
	StatusOrdered,
	StatusShippedFromStore,
	StatusArrivedAtHub,
	StatusInTransit,
	StatusArrivedAtOffice,
	StatusStored,
	StatusCompleted,
}

// Index returns the position of s in StatusSequence or -1.
func (s Status) Index() int {
	for i, st := range StatusSequence {
		if st == s {
			return i
		}
	}
	return -1
}

func (s Status) Valid() bool {
	return s == StatusCancelled || s.Index() >= 0
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Next returns the forward successor of s.
func (s Status) Next() (Status, bool) {
	i := s.Index()
	if i < 0 || i == len(StatusSequence)-1 {
		return "", false
	}
	return StatusSequence[i+1], true
}

// Previous returns the predecessor of s used by revert.
func (s Status) Previous() (Status, bool) {
	i := s.Index()
	if i <= 0 {
		return "", false
	}
	return StatusSequence[i-1], true
}

// ShipmentManaged reports whether manual advance out of s is blocked for orders in a batch shipment.
func (s Status) ShipmentManaged() bool {
	switch s {
	case StatusShippedFromStore, StatusArrivedAtHub, StatusInTransit:
		return true
	}
	return false
}

type Attachments struct {
	Product    []string
	Order      []string
	HubArrival []string
	Weighing   []string
	Receipt    []string
}

type ActivityLog struct {
	Timestamp time.Time
	Activity  string
	User      string
}

const SystemUser = "System"

type Order struct {
	ID            string
	LocalOrderID  string
	GlobalOrderID string
	ClientID      string
	StoreID       string
	ProductName   string
	ProductURL    string

	Status     Status
	ShipmentID string
	BoxID      string

	Price          float64
	Currency       string
	PriceInMRU     float64
	Commission     float64
	CommissionType CommissionType
	CommissionRate float64
	Quantity       int
	AmountPaid     float64
	ShippingCost   float64
	Weight         float64
	ShippingType   ShippingType

	TrackingNumber      string
	OriginCenter        string
	ReceivingCompanyID  string
	StorageLocation     string
	StorageDate         time.Time
	ArrivalDateAtOffice time.Time
	OrderDate           time.Time
	ExpectedArrivalDate time.Time

	Notes       string
	Attachments Attachments

	// история только дописывается, порядок не меняется
	History []ActivityLog

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderPatch is the partial update sent to the order store. Nil fields are left untouched.
type OrderPatch struct {
	Status              *Status
	GlobalOrderID       *string
	ShipmentID          *string
	BoxID               *string
	Price               *float64
	PriceInMRU          *float64
	Commission          *float64
	Quantity            *int
	AmountPaid          *float64
	ShippingCost        *float64
	Weight              *float64
	ShippingType        *ShippingType
	TrackingNumber      *string
	OriginCenter        *string
	ReceivingCompanyID  *string
	StorageLocation     *string
	StorageDate         *time.Time
	ArrivalDateAtOffice *time.Time
	ExpectedArrivalDate *time.Time
	Notes               *string
	Attachments         *Attachments
	History             []ActivityLog
}

func (p OrderPatch) IsZero() bool {
	return reflect.ValueOf(p).IsZero()
}

// OrderFilter is passed explicitly to list queries.
type OrderFilter struct {
	Statuses   []Status
	ClientID   string
	ShipmentID string
	Search     string
	Limit      int
	Offset     int
}

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidOrder  = errors.New("invalid order data")
)
