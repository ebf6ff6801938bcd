package models

import (
	"time"

	"gorm.io/gorm"
)

// Stock statuses for a VIN in inventory
const (
	StockInStock  = "in_stock"
	StockReserved = "reserved"
	StockSold     = "sold"
)

// EXA (export approval) statuses
const (
	ExaNotRequired = "not_required"
	ExaPending     = "pending"
	ExaApproved    = "approved"
	ExaRejected    = "rejected"
)

// Delivery statuses
const (
	DeliveryNotShipped = "not_shipped"
	DeliveryInTransit  = "in_transit"
	DeliveryDelivered  = "delivered"
)

// Vehicle is a single VIN in inventory with its compliance and delivery
// sub-status blocks
type Vehicle struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Vin    string `gorm:"uniqueIndex;not null" json:"vin"`
	Make   string `gorm:"not null" json:"make"`
	Model  string `gorm:"not null" json:"model"`
	Year   int    `json:"year"`
	Colour string `json:"colour"`

	SupplierID    uint     `gorm:"not null;index" json:"supplierId"`
	Supplier      Supplier `gorm:"foreignKey:SupplierID" json:"-"`
	PurchasePrice float64  `json:"purchasePrice"`
	Currency      string   `gorm:"not null;default:'EUR'" json:"currency"`

	StockStatus string `gorm:"not null;default:'in_stock';index" json:"stockStatus"`

	CocStatus       string `json:"cocStatus,omitempty"` // not_received, pending, received, expired
	CocReceivedDate string `json:"cocReceivedDate,omitempty"`
	CocDocumentKey  string `json:"cocDocumentKey,omitempty"` // storage key

	ExaStatus       string `json:"exaStatus,omitempty"`
	ExaApprovedDate string `json:"exaApprovedDate,omitempty"`
	ExaDocumentKey  string `json:"exaDocumentKey,omitempty"` // storage key

	DeliveryStatus string `json:"deliveryStatus,omitempty"`
	WaybillNumber  string `json:"waybillNumber,omitempty"`
	DeliveryDate   string `json:"deliveryDate,omitempty"`

	Notes string `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Vehicle model
func (Vehicle) TableName() string {
	return "vehicles"
}
