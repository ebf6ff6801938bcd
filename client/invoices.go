package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/emerald-motors/vehicle-trade-api/models"
)

// InvoicesService covers the /api/client-invoices endpoints
type InvoicesService struct {
	client *Client
}

// InvoiceParams is the write shape for creating and updating client invoices.
// The gross amount is derived server-side from net plus VAT.
type InvoiceParams struct {
	InvoiceNumber  string  `json:"invoiceNumber"`
	ClientID       uint    `json:"clientId"`
	CompanyID      uint    `json:"companyId"`
	InvoiceDate    string  `json:"invoiceDate"`
	DueDate        string  `json:"dueDate,omitempty"`
	Currency       string  `json:"currency,omitempty"`
	AmountNet      float64 `json:"amountNet"`
	AmountVat      float64 `json:"amountVat"`
	Status         string  `json:"status,omitempty"`
	RelatedOrderID *uint   `json:"relatedOrderId,omitempty"`
	Notes          string  `json:"notes,omitempty"`
}

// InvoiceFilter narrows the invoice listing. Zero values are omitted.
type InvoiceFilter struct {
	Year      int
	Status    string
	CompanyID uint
}

func (f InvoiceFilter) query() url.Values {
	query := url.Values{}
	if f.Year != 0 {
		query.Set("year", strconv.Itoa(f.Year))
	}
	if f.Status != "" {
		query.Set("status", f.Status)
	}
	if f.CompanyID != 0 {
		query.Set("companyId", strconv.FormatUint(uint64(f.CompanyID), 10))
	}
	return query
}

// List returns the invoices matching the filter, newest first
func (s *InvoicesService) List(ctx context.Context, filter InvoiceFilter) ([]models.ClientInvoice, error) {
	var invoices []models.ClientInvoice
	if err := s.client.do(ctx, http.MethodGet, "/api/client-invoices", filter.query(), nil, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// Get returns one invoice by id
func (s *InvoicesService) Get(ctx context.Context, id uint) (*models.ClientInvoice, error) {
	var invoice models.ClientInvoice
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/client-invoices/%d", id), nil, nil, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// Create issues a new invoice
func (s *InvoicesService) Create(ctx context.Context, params InvoiceParams) (*models.ClientInvoice, error) {
	var invoice models.ClientInvoice
	if err := s.client.do(ctx, http.MethodPost, "/api/client-invoices", nil, params, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// Update replaces an invoice's editable fields
func (s *InvoicesService) Update(ctx context.Context, id uint, params InvoiceParams) (*models.ClientInvoice, error) {
	var invoice models.ClientInvoice
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/client-invoices/%d", id), nil, params, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// Delete removes an invoice
func (s *InvoicesService) Delete(ctx context.Context, id uint) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/client-invoices/%d", id), nil, nil, nil)
}
