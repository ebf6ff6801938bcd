package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/emerald-motors/vehicle-trade-api/models"
)

// VehiclesService covers the /api/vehicles endpoints (the VIN registry)
type VehiclesService struct {
	client *Client
}

// VehicleParams is the write shape for creating and updating vehicles
type VehicleParams struct {
	Vin    string `json:"vin"`
	Make   string `json:"make"`
	Model  string `json:"model"`
	Year   int    `json:"year,omitempty"`
	Colour string `json:"colour,omitempty"`

	SupplierID    uint    `json:"supplierId"`
	PurchasePrice float64 `json:"purchasePrice"`
	Currency      string  `json:"currency,omitempty"`

	StockStatus string `json:"stockStatus,omitempty"`

	CocStatus       string `json:"cocStatus,omitempty"`
	CocReceivedDate string `json:"cocReceivedDate,omitempty"`
	CocDocumentKey  string `json:"cocDocumentKey,omitempty"`

	ExaStatus       string `json:"exaStatus,omitempty"`
	ExaApprovedDate string `json:"exaApprovedDate,omitempty"`
	ExaDocumentKey  string `json:"exaDocumentKey,omitempty"`

	DeliveryStatus string `json:"deliveryStatus,omitempty"`
	WaybillNumber  string `json:"waybillNumber,omitempty"`
	DeliveryDate   string `json:"deliveryDate,omitempty"`

	Notes string `json:"notes,omitempty"`
}

// VehicleFilter narrows the vehicle listing. Zero values are omitted.
type VehicleFilter struct {
	StockStatus string
	SupplierID  uint
	Search      string
}

func (f VehicleFilter) query() url.Values {
	query := url.Values{}
	if f.StockStatus != "" {
		query.Set("stockStatus", f.StockStatus)
	}
	if f.SupplierID != 0 {
		query.Set("supplierId", strconv.FormatUint(uint64(f.SupplierID), 10))
	}
	if f.Search != "" {
		query.Set("search", f.Search)
	}
	return query
}

// List returns the vehicles matching the filter
func (s *VehiclesService) List(ctx context.Context, filter VehicleFilter) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := s.client.do(ctx, http.MethodGet, "/api/vehicles", filter.query(), nil, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// Get returns one vehicle by id
func (s *VehiclesService) Get(ctx context.Context, id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/vehicles/%d", id), nil, nil, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// Create registers a vehicle under its VIN
func (s *VehiclesService) Create(ctx context.Context, params VehicleParams) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := s.client.do(ctx, http.MethodPost, "/api/vehicles", nil, params, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// Update replaces a vehicle's editable fields
func (s *VehiclesService) Update(ctx context.Context, id uint, params VehicleParams) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/vehicles/%d", id), nil, params, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// Delete removes a vehicle
func (s *VehiclesService) Delete(ctx context.Context, id uint) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/vehicles/%d", id), nil, nil, nil)
}
