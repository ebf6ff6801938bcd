package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order lifecycle statuses
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusInTransit = "in_transit"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order payment statuses
const (
	PaymentStatusUnpaid        = "unpaid"
	PaymentStatusDepositPaid   = "deposit_paid"
	PaymentStatusPartiallyPaid = "partially_paid"
	PaymentStatusPaid          = "paid"
)

// VehicleOrder represents a purchase order for one or more vehicles
type VehicleOrder struct {
	ID         uint  `gorm:"primaryKey" json:"id"`
	CompanyID  uint  `gorm:"not null;index" json:"companyId"`
	SupplierID *uint `gorm:"index" json:"supplierId,omitempty"`
	ClientID   *uint `gorm:"index" json:"clientId,omitempty"`

	OrderDate    string `gorm:"not null" json:"orderDate"` // ISO date, as sent on the wire
	VehicleMake  string `json:"vehicleMake"`
	VehicleModel string `json:"vehicleModel"`
	Colour       string `json:"colour"`
	Vin          string `json:"vin"`

	UnitsOrdered   int     `gorm:"not null;check:units_ordered > 0" json:"unitsOrdered"`
	UnitPriceEur   float64 `gorm:"not null" json:"unitPriceEur"`
	UnitDepositEur float64 `json:"unitDepositEur"`

	// Derived columns, recomputed from the three inputs above on every
	// create/update. Values sent by callers are ignored.
	TotalCostEur    float64 `json:"totalCostEur"`
	DepositTotalEur float64 `json:"depositTotalEur"`
	BalanceEur      float64 `json:"balanceEur"`

	Status         string `gorm:"not null;default:'pending'" json:"status"`
	PaymentStatus  string `gorm:"not null;default:'unpaid'" json:"paymentStatus"`
	DepositStatus  string `json:"depositStatus,omitempty"`
	ContractID     string `json:"contractId,omitempty"`
	ContractStatus string `json:"contractStatus,omitempty"`
	Eta            string `json:"eta,omitempty"`
	Notes          string `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the VehicleOrder model
func (VehicleOrder) TableName() string {
	return "vehicle_orders"
}

// RecalculateTotals recomputes the derived money columns from unit price,
// unit deposit and unit count. The multiplication is done in decimal so the
// stored values carry no binary rounding error; rounding to two decimal
// places happens only at display time.
func (o *VehicleOrder) RecalculateTotals() {
	units := decimal.NewFromInt(int64(o.UnitsOrdered))
	price := decimal.NewFromFloat(o.UnitPriceEur)
	deposit := decimal.NewFromFloat(o.UnitDepositEur)

	totalCost := price.Mul(units)
	depositTotal := deposit.Mul(units)
	balance := totalCost.Sub(depositTotal)

	o.TotalCostEur, _ = totalCost.Float64()
	o.DepositTotalEur, _ = depositTotal.Float64()
	o.BalanceEur, _ = balance.Float64()
}

// OutstandingBalance returns the amount still owed on the order given the sum
// of payments already recorded against it.
func (o *VehicleOrder) OutstandingBalance(paidAmount float64) float64 {
	total := decimal.NewFromFloat(o.TotalCostEur)
	paid := decimal.NewFromFloat(paidAmount)
	outstanding, _ := total.Sub(paid).Float64()
	return outstanding
}
