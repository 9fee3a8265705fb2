package entities

import "slices"

type EventKind string

const (
	EventCreated   EventKind = "created"
	EventAdvanced  EventKind = "advanced"
	EventReverted  EventKind = "reverted"
	EventCancelled EventKind = "cancelled"
	EventEdited    EventKind = "edited"
	EventSplit     EventKind = "split"
	EventShipment  EventKind = "shipment"
)

// Event is one audited change of an order: the field changes plus exactly one history entry.
type Event struct {
	Kind    EventKind
	Changes OrderPatch
	Entry   ActivityLog
}

// ApplyEvent is the pure reducer behind every transition. The input order is not modified.
func ApplyEvent(o Order, ev Event) Order {
	return ApplyPatch(o, ev.Resolve(o))
}

// Resolve turns the event into the full update of o: attachments of the event are added
// to the existing ones and the entry is appended to the history.
func (ev Event) Resolve(o Order) OrderPatch {
	patch := ev.Changes
	if patch.Attachments != nil {
		merged := mergeAttachments(o.Attachments, *patch.Attachments)
		patch.Attachments = &merged
	}
	patch.History = append(slices.Clone(o.History), ev.Entry)
	return patch
}

// ApplyPatch copies the non-nil fields of p onto o, the same way the order store does.
func ApplyPatch(o Order, p OrderPatch) Order {
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.GlobalOrderID != nil {
		o.GlobalOrderID = *p.GlobalOrderID
	}
	if p.ShipmentID != nil {
		o.ShipmentID = *p.ShipmentID
	}
	if p.BoxID != nil {
		o.BoxID = *p.BoxID
	}
	if p.Price != nil {
		o.Price = *p.Price
	}
	if p.PriceInMRU != nil {
		o.PriceInMRU = *p.PriceInMRU
	}
	if p.Commission != nil {
		o.Commission = *p.Commission
	}
	if p.Quantity != nil {
		o.Quantity = *p.Quantity
	}
	if p.AmountPaid != nil {
		o.AmountPaid = *p.AmountPaid
	}
	if p.ShippingCost != nil {
		o.ShippingCost = *p.ShippingCost
	}
	if p.Weight != nil {
		o.Weight = *p.Weight
	}
	if p.ShippingType != nil {
		o.ShippingType = *p.ShippingType
	}
	if p.TrackingNumber != nil {
		o.TrackingNumber = *p.TrackingNumber
	}
	if p.OriginCenter != nil {
		o.OriginCenter = *p.OriginCenter
	}
	if p.ReceivingCompanyID != nil {
		o.ReceivingCompanyID = *p.ReceivingCompanyID
	}
	if p.StorageLocation != nil {
		o.StorageLocation = *p.StorageLocation
	}
	if p.StorageDate != nil {
		o.StorageDate = *p.StorageDate
	}
	if p.ArrivalDateAtOffice != nil {
		o.ArrivalDateAtOffice = *p.ArrivalDateAtOffice
	}
	if p.ExpectedArrivalDate != nil {
		o.ExpectedArrivalDate = *p.ExpectedArrivalDate
	}
	if p.Notes != nil {
		o.Notes = *p.Notes
	}
	if p.Attachments != nil {
		o.Attachments = *p.Attachments
	}
	if p.History != nil {
		o.History = slices.Clone(p.History)
	}
	return o
}

func mergeAttachments(a, b Attachments) Attachments {
	return Attachments{
		Product:    concat(a.Product, b.Product),
		Order:      concat(a.Order, b.Order),
		HubArrival: concat(a.HubArrival, b.HubArrival),
		Weighing:   concat(a.Weighing, b.Weighing),
		Receipt:    concat(a.Receipt, b.Receipt),
	}
}

func concat(a, b []string) []string {
	if len(b) == 0 {
		return a
	}
	return append(slices.Clone(a), b...)
}
