package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emerald-motors/vehicle-trade-api/models"
)

// ShipmentsService covers the /api/shipments endpoints
type ShipmentsService struct {
	client *Client
}

// ShipmentItemParams is one vehicle on a shipment. ReferenceType may be left
// empty; the server derives it from the shipment direction.
type ShipmentItemParams struct {
	ReferenceType string `json:"referenceType,omitempty"`
	ReferenceID   uint   `json:"referenceId"`
	Vin           string `json:"vin"`
	VehicleMake   string `json:"vehicleMake,omitempty"`
	VehicleModel  string `json:"vehicleModel,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// ShipmentParams is the write shape for creating and updating shipments.
// When Items is non-nil on update, the server replaces the item set wholesale.
type ShipmentParams struct {
	ShipmentType string `json:"shipmentType"`
	Status       string `json:"status,omitempty"`

	Carrier         string `json:"carrier,omitempty"`
	TrackingNumber  string `json:"trackingNumber,omitempty"`
	TransportMethod string `json:"transportMethod,omitempty"`

	LoadingLocation   string `json:"loadingLocation,omitempty"`
	UnloadingLocation string `json:"unloadingLocation,omitempty"`
	CollectionDate    string `json:"collectionDate,omitempty"`
	CollectionTime    string `json:"collectionTime,omitempty"`
	DropoffDate       string `json:"dropoffDate,omitempty"`
	DropoffTime       string `json:"dropoffTime,omitempty"`

	ShippingCost       float64 `json:"shippingCost"`
	AdditionalExpenses float64 `json:"additionalExpenses"`

	CmrDocument     string `json:"cmrDocument,omitempty"`
	ExaDocument     string `json:"exaDocument,omitempty"`
	CustomsDocument string `json:"customsDocument,omitempty"`
	Notes           string `json:"notes,omitempty"`

	Items []ShipmentItemParams `json:"items"`
}

// List returns every shipment
func (s *ShipmentsService) List(ctx context.Context) ([]models.Shipment, error) {
	var shipments []models.Shipment
	if err := s.client.do(ctx, http.MethodGet, "/api/shipments", nil, nil, &shipments); err != nil {
		return nil, err
	}
	return shipments, nil
}

// Get returns one shipment by id
func (s *ShipmentsService) Get(ctx context.Context, id uint) (*models.Shipment, error) {
	var shipment models.Shipment
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/shipments/%d", id), nil, nil, &shipment); err != nil {
		return nil, err
	}
	return &shipment, nil
}

// Items returns the vehicles on a shipment
func (s *ShipmentsService) Items(ctx context.Context, id uint) ([]models.ShipmentItem, error) {
	var items []models.ShipmentItem
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/shipments/%d/items", id), nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ByOrder returns the inbound shipments carrying vehicles of an order
func (s *ShipmentsService) ByOrder(ctx context.Context, orderID uint) ([]models.Shipment, error) {
	var shipments []models.Shipment
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/shipments/order/%d", orderID), nil, nil, &shipments); err != nil {
		return nil, err
	}
	return shipments, nil
}

// Create records a new shipment with its items
func (s *ShipmentsService) Create(ctx context.Context, params ShipmentParams) (*models.Shipment, error) {
	var shipment models.Shipment
	if err := s.client.do(ctx, http.MethodPost, "/api/shipments", nil, params, &shipment); err != nil {
		return nil, err
	}
	return &shipment, nil
}

// Update replaces a shipment's editable fields and, when items are provided,
// its item set
func (s *ShipmentsService) Update(ctx context.Context, id uint, params ShipmentParams) (*models.Shipment, error) {
	var shipment models.Shipment
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/shipments/%d", id), nil, params, &shipment); err != nil {
		return nil, err
	}
	return &shipment, nil
}

// Delete removes a shipment and its items
func (s *ShipmentsService) Delete(ctx context.Context, id uint) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/shipments/%d", id), nil, nil, nil)
}
