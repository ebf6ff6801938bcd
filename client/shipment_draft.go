package client

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Shipment directions and the reference type each one carries
const (
	DirectionInbound  = "INBOUND"
	DirectionOutbound = "OUTBOUND"

	ReferenceOrder         = "ORDER"
	ReferenceClientInvoice = "CLIENT_INVOICE"
)

// Draft validation errors
var (
	ErrDraftNoDirection       = errors.New("shipment direction is not set")
	ErrDraftMissingReference  = errors.New("shipment item needs a reference id")
	ErrDraftMissingVin        = errors.New("shipment item needs a VIN")
	ErrDraftReferenceMismatch = errors.New("item reference type does not match shipment direction")
)

// ShipmentDraft accumulates shipment items interactively before the shipment
// is submitted. Items are validated as they are added; switching the
// direction clears whatever was accumulated, because items of the old
// direction reference the wrong kind of record.
type ShipmentDraft struct {
	direction          string
	shippingCost       float64
	additionalExpenses float64
	items              []ShipmentItemParams
}

// NewShipmentDraft starts an empty draft in the given direction
func NewShipmentDraft(direction string) *ShipmentDraft {
	return &ShipmentDraft{direction: strings.ToUpper(direction)}
}

// Direction returns the draft's direction
func (d *ShipmentDraft) Direction() string {
	return d.direction
}

// SetDirection changes the draft's direction. Changing to a different
// direction discards all accumulated items.
func (d *ShipmentDraft) SetDirection(direction string) {
	direction = strings.ToUpper(direction)
	if direction != d.direction {
		d.items = nil
	}
	d.direction = direction
}

// expectedReferenceType returns the reference type items of this draft must
// carry, or "" when the direction is unset or unknown
func (d *ShipmentDraft) expectedReferenceType() string {
	switch d.direction {
	case DirectionInbound:
		return ReferenceOrder
	case DirectionOutbound:
		return ReferenceClientInvoice
	}
	return ""
}

// AddItem appends one vehicle to the draft. An empty reference type on the
// item is filled in from the direction; a conflicting one is rejected.
func (d *ShipmentDraft) AddItem(item ShipmentItemParams) error {
	expected := d.expectedReferenceType()
	if expected == "" {
		return ErrDraftNoDirection
	}
	if item.ReferenceID == 0 {
		return ErrDraftMissingReference
	}
	if strings.TrimSpace(item.Vin) == "" {
		return ErrDraftMissingVin
	}
	if item.ReferenceType == "" {
		item.ReferenceType = expected
	} else if item.ReferenceType != expected {
		return ErrDraftReferenceMismatch
	}

	d.items = append(d.items, item)
	return nil
}

// RemoveItem drops the item at index; out-of-range indexes are ignored
func (d *ShipmentDraft) RemoveItem(index int) {
	if index < 0 || index >= len(d.items) {
		return
	}
	d.items = append(d.items[:index], d.items[index+1:]...)
}

// Items returns a copy of the accumulated items
func (d *ShipmentDraft) Items() []ShipmentItemParams {
	items := make([]ShipmentItemParams, len(d.items))
	copy(items, d.items)
	return items
}

// VehicleCount is the number of accumulated items
func (d *ShipmentDraft) VehicleCount() int {
	return len(d.items)
}

// SetCosts records the shipping cost and additional expenses
func (d *ShipmentDraft) SetCosts(shippingCost, additionalExpenses float64) {
	d.shippingCost = shippingCost
	d.additionalExpenses = additionalExpenses
}

// TotalCost is shipping cost plus additional expenses
func (d *ShipmentDraft) TotalCost() float64 {
	total, _ := decimal.NewFromFloat(d.shippingCost).
		Add(decimal.NewFromFloat(d.additionalExpenses)).Float64()
	return total
}

// Params assembles the draft into the write shape for ShipmentsService.Create
func (d *ShipmentDraft) Params() ShipmentParams {
	return ShipmentParams{
		ShipmentType:       d.direction,
		ShippingCost:       d.shippingCost,
		AdditionalExpenses: d.additionalExpenses,
		Items:              d.Items(),
	}
}
