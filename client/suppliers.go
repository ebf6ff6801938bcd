package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/emerald-motors/vehicle-trade-api/models"
)

// SuppliersService covers the /api/suppliers endpoints
type SuppliersService struct {
	client *Client
}

// SupplierParams is the write shape for creating and updating suppliers
type SupplierParams struct {
	CompanyName string `json:"companyName"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`

	Street      string `json:"street,omitempty"`
	Street2     string `json:"street2,omitempty"`
	City        string `json:"city,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	Region      string `json:"region,omitempty"`
	CountryCode string `json:"countryCode"`

	VatNumber          string `json:"vatNumber,omitempty"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`

	ServiceType   string `json:"serviceType"`
	AccountNumber string `json:"accountNumber,omitempty"`

	PaymentTerms string `json:"paymentTerms,omitempty"`
	BankDetails  string `json:"bankDetails,omitempty"`

	ExportLicenseStatus string `json:"exportLicenseStatus,omitempty"`
	ExportLicenseNumber string `json:"exportLicenseNumber,omitempty"`
	ExportLicenseExpiry string `json:"exportLicenseExpiry,omitempty"`

	Notes string `json:"notes,omitempty"`
}

// SupplierFilter narrows the supplier listing. Zero values are omitted.
type SupplierFilter struct {
	Search      string
	ServiceType string
}

func (f SupplierFilter) query() url.Values {
	query := url.Values{}
	if f.Search != "" {
		query.Set("search", f.Search)
	}
	if f.ServiceType != "" {
		query.Set("serviceType", f.ServiceType)
	}
	return query
}

// List returns the suppliers matching the filter
func (s *SuppliersService) List(ctx context.Context, filter SupplierFilter) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := s.client.do(ctx, http.MethodGet, "/api/suppliers", filter.query(), nil, &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

// Get returns one supplier by id
func (s *SuppliersService) Get(ctx context.Context, id uint) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/suppliers/%d", id), nil, nil, &supplier); err != nil {
		return nil, err
	}
	return &supplier, nil
}

// Create registers a new supplier
func (s *SuppliersService) Create(ctx context.Context, params SupplierParams) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := s.client.do(ctx, http.MethodPost, "/api/suppliers", nil, params, &supplier); err != nil {
		return nil, err
	}
	return &supplier, nil
}

// Update replaces a supplier's editable fields
func (s *SuppliersService) Update(ctx context.Context, id uint, params SupplierParams) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/suppliers/%d", id), nil, params, &supplier); err != nil {
		return nil, err
	}
	return &supplier, nil
}

// Delete removes a supplier
func (s *SuppliersService) Delete(ctx context.Context, id uint) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/suppliers/%d", id), nil, nil, nil)
}
