package models

import (
	"time"

	"gorm.io/gorm"
)

// COC statuses tracked on a client
const (
	CocNotRequired = "not_required"
	CocPending     = "pending"
	CocReceived    = "received"
	CocExpired     = "expired"
)

// Export licence statuses
const (
	ExportLicenseNotRequired = "not_required"
	ExportLicensePending     = "pending"
	ExportLicenseValid       = "valid"
	ExportLicenseExpired     = "expired"
)

// Client represents a buying customer company
type Client struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	CompanyName string `gorm:"not null;index" json:"companyName"`
	TradingName string `json:"tradingName,omitempty"`
	ContactName string `gorm:"not null" json:"contactName"`
	Email       string `gorm:"not null" json:"email"`
	Phone       string `json:"phone"`

	Street      string `json:"street"`
	Street2     string `json:"street2,omitempty"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode"`
	Region      string `json:"region,omitempty"`
	CountryCode string `gorm:"index" json:"countryCode"`

	VatNumber          string `json:"vatNumber,omitempty"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`

	CocStatus      string `gorm:"index" json:"cocStatus,omitempty"`
	CocExpiryDate  string `json:"cocExpiryDate,omitempty"`
	CocDocumentKey string `json:"cocDocumentKey,omitempty"` // storage key

	ExportLicenseStatus string `json:"exportLicenseStatus,omitempty"`
	ExportLicenseNumber string `json:"exportLicenseNumber,omitempty"`
	ExportLicenseExpiry string `json:"exportLicenseExpiry,omitempty"`

	PaymentTerms string  `json:"paymentTerms,omitempty"`
	CreditLimit  float64 `json:"creditLimit,omitempty"`

	Notes string `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Client model
func (Client) TableName() string {
	return "clients"
}
