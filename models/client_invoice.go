package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Client invoice statuses
const (
	InvoiceDraft         = "draft"
	InvoiceSent          = "sent"
	InvoicePartiallyPaid = "partially_paid"
	InvoicePaid          = "paid"
	InvoiceCancelled     = "cancelled"
)

// ClientInvoice represents an invoice issued to a client, optionally tied to
// an order
type ClientInvoice struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	InvoiceNumber string `gorm:"uniqueIndex;not null" json:"invoiceNumber"`
	ClientID      uint   `gorm:"not null;index" json:"clientId"`
	Client        Client `gorm:"foreignKey:ClientID" json:"-"`
	CompanyID     uint   `gorm:"not null;index" json:"companyId"`

	InvoiceDate string `gorm:"not null" json:"invoiceDate"`
	DueDate     string `json:"dueDate"`
	Currency    string `gorm:"not null;default:'EUR'" json:"currency"`

	AmountNet float64 `gorm:"not null" json:"amountNet"`
	AmountVat float64 `json:"amountVat"`
	// Derived: amountNet + amountVat, recomputed on every write
	AmountGross float64 `json:"amountGross"`

	Status         string `gorm:"not null;default:'draft'" json:"status"`
	RelatedOrderID *uint  `gorm:"index" json:"relatedOrderId,omitempty"`
	Notes          string `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the ClientInvoice model
func (ClientInvoice) TableName() string {
	return "client_invoices"
}

// RecalculateGross recomputes the gross amount from net and VAT
func (i *ClientInvoice) RecalculateGross() {
	net := decimal.NewFromFloat(i.AmountNet)
	vat := decimal.NewFromFloat(i.AmountVat)
	i.AmountGross, _ = net.Add(vat).Float64()
}
