package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment types
const (
	PaymentTypeDeposit = "deposit"
	PaymentTypeBalance = "balance"
	PaymentTypeFull    = "full"
)

// Payment statuses
const (
	PaymentCompleted = "completed"
	PaymentPending   = "pending"
	PaymentFailed    = "failed"
)

// Payment represents a single payment recorded against an order. Multiple
// payments relate many-to-one to an order; the amount paid on an order is
// their sum.
type Payment struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	OrderID       uint         `gorm:"not null;index" json:"orderId"`
	Order         VehicleOrder `gorm:"foreignKey:OrderID" json:"-"`
	PaymentDate   string       `gorm:"not null" json:"paymentDate"`
	Amount        float64      `gorm:"not null;check:amount > 0" json:"amount"`
	PaymentMethod string       `gorm:"not null" json:"paymentMethod"` // bank_transfer, cash, ...
	PaymentType   string       `gorm:"not null" json:"paymentType"`   // deposit, balance, full
	Status        string       `gorm:"not null;default:'completed'" json:"status"`
	ProofKey      string       `json:"proofKey,omitempty"` // storage key of the uploaded proof
	Notes         string       `json:"notes,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
