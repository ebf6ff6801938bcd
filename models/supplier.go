package models

import (
	"time"

	"gorm.io/gorm"
)

// Supplier represents a vehicle sourcing or service company
type Supplier struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	CompanyName string `gorm:"not null;index" json:"companyName"`
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

	ServiceType   string `gorm:"index" json:"serviceType"` // vehicle_source, transport, customs, ...
	AccountNumber string `json:"accountNumber,omitempty"`

	PaymentTerms string `json:"paymentTerms,omitempty"`
	BankDetails  string `json:"bankDetails,omitempty"`

	ExportLicenseStatus string `json:"exportLicenseStatus,omitempty"`
	ExportLicenseNumber string `json:"exportLicenseNumber,omitempty"`
	ExportLicenseExpiry string `json:"exportLicenseExpiry,omitempty"`

	Notes string `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Supplier model
func (Supplier) TableName() string {
	return "suppliers"
}
