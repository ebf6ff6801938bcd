package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Shipment directions
const (
	ShipmentInbound  = "INBOUND"  // supplier -> warehouse
	ShipmentOutbound = "OUTBOUND" // warehouse -> client
)

// Shipment statuses
const (
	ShipmentStatusPending   = "pending"
	ShipmentStatusScheduled = "scheduled"
	ShipmentStatusInTransit = "in_transit"
	ShipmentStatusDelivered = "delivered"
	ShipmentStatusCancelled = "cancelled"
)

// Shipment item reference types
const (
	ReferenceOrder         = "ORDER"
	ReferenceClientInvoice = "CLIENT_INVOICE"
)

// Shipment represents a vehicle transport, either inbound from a supplier or
// outbound to a client
type Shipment struct {
	ID           uint   `gorm:"primaryKey" json:"shipmentId"`
	ShipmentType string `gorm:"not null" json:"shipmentType"` // INBOUND or OUTBOUND
	Status       string `gorm:"not null;default:'pending'" json:"status"`

	Carrier         string `json:"carrier,omitempty"`
	TrackingNumber  string `json:"trackingNumber,omitempty"`
	TransportMethod string `json:"transportMethod,omitempty"`

	LoadingLocation   string `json:"loadingLocation,omitempty"`
	UnloadingLocation string `json:"unloadingLocation,omitempty"`
	CollectionDate    string `json:"collectionDate,omitempty"`
	CollectionTime    string `json:"collectionTime,omitempty"`
	DropoffDate       string `json:"dropoffDate,omitempty"`
	DropoffTime       string `json:"dropoffTime,omitempty"`

	ShippingCost       float64 `json:"shippingCost"`
	AdditionalExpenses float64 `json:"additionalExpenses"`
	// Derived: shippingCost + additionalExpenses, recomputed on every write
	TotalCost float64 `json:"totalCost"`
	// Derived: len(Items), recomputed on every write
	VehicleCount int `json:"vehicleCount"`

	CmrDocument     string `json:"cmrDocument,omitempty"`     // storage key
	ExaDocument     string `json:"exaDocument,omitempty"`     // storage key
	CustomsDocument string `json:"customsDocument,omitempty"` // storage key
	Notes           string `gorm:"type:text" json:"notes,omitempty"`

	Items []ShipmentItem `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Shipment model
func (Shipment) TableName() string {
	return "shipments"
}

// ShipmentItem is a single vehicle carried on a shipment, referencing the
// order (inbound) or client invoice (outbound) it belongs to
type ShipmentItem struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ShipmentID    uint   `gorm:"not null;index" json:"shipmentId"`
	ReferenceType string `gorm:"not null" json:"referenceType"` // ORDER or CLIENT_INVOICE
	ReferenceID   uint   `gorm:"not null" json:"referenceId"`
	Vin           string `gorm:"not null" json:"vin"`
	VehicleMake   string `json:"vehicleMake"`
	VehicleModel  string `json:"vehicleModel"`
	Notes         string `json:"notes,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the ShipmentItem model
func (ShipmentItem) TableName() string {
	return "shipment_items"
}

// Recalculate recomputes the derived columns: total cost from the two cost
// inputs and vehicle count from the item list
func (s *Shipment) Recalculate() {
	shipping := decimal.NewFromFloat(s.ShippingCost)
	additional := decimal.NewFromFloat(s.AdditionalExpenses)
	s.TotalCost, _ = shipping.Add(additional).Float64()
	s.VehicleCount = len(s.Items)
}

// ExpectedReferenceType returns the item reference type a shipment of this
// direction must carry: orders inbound, client invoices outbound
func (s *Shipment) ExpectedReferenceType() string {
	if s.ShipmentType == ShipmentOutbound {
		return ReferenceClientInvoice
	}
	return ReferenceOrder
}
