package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/emerald-motors/vehicle-trade-api/models"
)

// ClientsService covers the /api/clients endpoints
type ClientsService struct {
	client *Client
}

// ClientParams is the write shape for creating and updating clients
type ClientParams struct {
	CompanyName string `json:"companyName"`
	TradingName string `json:"tradingName,omitempty"`
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

	CocStatus      string `json:"cocStatus,omitempty"`
	CocExpiryDate  string `json:"cocExpiryDate,omitempty"`
	CocDocumentKey string `json:"cocDocumentKey,omitempty"`

	ExportLicenseStatus string `json:"exportLicenseStatus,omitempty"`
	ExportLicenseNumber string `json:"exportLicenseNumber,omitempty"`
	ExportLicenseExpiry string `json:"exportLicenseExpiry,omitempty"`

	PaymentTerms string  `json:"paymentTerms,omitempty"`
	CreditLimit  float64 `json:"creditLimit"`

	Notes string `json:"notes,omitempty"`
}

// ClientFilter narrows the client listing. Zero values are omitted.
type ClientFilter struct {
	Search    string
	Country   string
	CocStatus string
}

func (f ClientFilter) query() url.Values {
	query := url.Values{}
	if f.Search != "" {
		query.Set("search", f.Search)
	}
	if f.Country != "" {
		query.Set("country", f.Country)
	}
	if f.CocStatus != "" {
		query.Set("cocStatus", f.CocStatus)
	}
	return query
}

// List returns the clients matching the filter
func (s *ClientsService) List(ctx context.Context, filter ClientFilter) ([]models.Client, error) {
	var clients []models.Client
	if err := s.client.do(ctx, http.MethodGet, "/api/clients", filter.query(), nil, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// Get returns one client by id
func (s *ClientsService) Get(ctx context.Context, id uint) (*models.Client, error) {
	var record models.Client
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/clients/%d", id), nil, nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Create registers a new client
func (s *ClientsService) Create(ctx context.Context, params ClientParams) (*models.Client, error) {
	var record models.Client
	if err := s.client.do(ctx, http.MethodPost, "/api/clients", nil, params, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Update replaces a client's editable fields
func (s *ClientsService) Update(ctx context.Context, id uint, params ClientParams) (*models.Client, error) {
	var record models.Client
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/clients/%d", id), nil, params, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Delete removes a client
func (s *ClientsService) Delete(ctx context.Context, id uint) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/clients/%d", id), nil, nil, nil)
}
