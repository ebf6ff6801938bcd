package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/emerald-motors/vehicle-trade-api/models"
)

// OrdersService covers the /api/orders endpoints
type OrdersService struct {
	client *Client
}

// OrderParams is the write shape for creating and updating orders. Derived
// totals are never part of it; the server recomputes them on every mutation.
type OrderParams struct {
	CompanyID      uint    `json:"companyId"`
	SupplierID     *uint   `json:"supplierId,omitempty"`
	ClientID       *uint   `json:"clientId,omitempty"`
	OrderDate      string  `json:"orderDate"`
	VehicleMake    string  `json:"vehicleMake,omitempty"`
	VehicleModel   string  `json:"vehicleModel,omitempty"`
	Colour         string  `json:"colour,omitempty"`
	Vin            string  `json:"vin,omitempty"`
	UnitsOrdered   int     `json:"unitsOrdered"`
	UnitPriceEur   float64 `json:"unitPriceEur"`
	UnitDepositEur float64 `json:"unitDepositEur"`
	Status         string  `json:"status,omitempty"`
	PaymentStatus  string  `json:"paymentStatus,omitempty"`
	DepositStatus  string  `json:"depositStatus,omitempty"`
	ContractID     string  `json:"contractId,omitempty"`
	ContractStatus string  `json:"contractStatus,omitempty"`
	Eta            string  `json:"eta,omitempty"`
	Notes          string  `json:"notes,omitempty"`
}

// OrderSearchFilter narrows the order search. Zero values are omitted from
// the query string.
type OrderSearchFilter struct {
	CompanyID  uint
	SupplierID uint
	Status     string
	FromDate   string
	ToDate     string
}

func (f OrderSearchFilter) query() url.Values {
	query := url.Values{}
	if f.CompanyID != 0 {
		query.Set("companyId", strconv.FormatUint(uint64(f.CompanyID), 10))
	}
	if f.SupplierID != 0 {
		query.Set("supplierId", strconv.FormatUint(uint64(f.SupplierID), 10))
	}
	if f.Status != "" {
		query.Set("status", f.Status)
	}
	if f.FromDate != "" {
		query.Set("fromDate", f.FromDate)
	}
	if f.ToDate != "" {
		query.Set("toDate", f.ToDate)
	}
	return query
}

// List returns every order
func (s *OrdersService) List(ctx context.Context) ([]models.VehicleOrder, error) {
	var orders []models.VehicleOrder
	if err := s.client.do(ctx, http.MethodGet, "/api/orders", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Search returns the orders matching the filter
func (s *OrdersService) Search(ctx context.Context, filter OrderSearchFilter) ([]models.VehicleOrder, error) {
	var orders []models.VehicleOrder
	if err := s.client.do(ctx, http.MethodGet, "/api/orders/search", filter.query(), nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Get returns one order by id
func (s *OrdersService) Get(ctx context.Context, id uint) (*models.VehicleOrder, error) {
	var order models.VehicleOrder
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d", id), nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Create places a new order
func (s *OrdersService) Create(ctx context.Context, params OrderParams) (*models.VehicleOrder, error) {
	var order models.VehicleOrder
	if err := s.client.do(ctx, http.MethodPost, "/api/orders", nil, params, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Update replaces an order's editable fields
func (s *OrdersService) Update(ctx context.Context, id uint, params OrderParams) (*models.VehicleOrder, error) {
	var order models.VehicleOrder
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/orders/%d", id), nil, params, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Delete removes an order
func (s *OrdersService) Delete(ctx context.Context, id uint) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/orders/%d", id), nil, nil, nil)
}
