package models

import (
	"time"

	"gorm.io/gorm"
)

// Company represents one of the operation's own trading entities.
// Orders and client invoices are booked against a company.
type Company struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"uniqueIndex;not null" json:"name"`
	CountryCode string         `gorm:"not null" json:"countryCode"`
	VatNumber   string         `json:"vatNumber,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Company model
func (Company) TableName() string {
	return "companies"
}
