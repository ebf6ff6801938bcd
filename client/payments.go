package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/emerald-motors/vehicle-trade-api/models"
)

// PaymentsService covers the /api/payments endpoints
type PaymentsService struct {
	client *Client
}

// PaymentParams is the write shape for recording and updating payments
type PaymentParams struct {
	OrderID       uint    `json:"orderId"`
	PaymentDate   string  `json:"paymentDate"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	PaymentType   string  `json:"paymentType"`
	Status        string  `json:"status,omitempty"`
	ProofKey      string  `json:"proofKey,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}

// SuggestedAmount returns the outstanding balance of an order given its total
// cost and the sum already paid. It never goes below zero; the API rejects
// payments above it.
func SuggestedAmount(orderTotal, paid float64) float64 {
	outstanding := decimal.NewFromFloat(orderTotal).Sub(decimal.NewFromFloat(paid))
	if outstanding.IsNegative() {
		return 0
	}
	result, _ := outstanding.Float64()
	return result
}

// List returns every payment
func (s *PaymentsService) List(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.client.do(ctx, http.MethodGet, "/api/payments", nil, nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// Get returns one payment by id
func (s *PaymentsService) Get(ctx context.Context, id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/payments/%d", id), nil, nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// ByOrder returns the payments recorded against an order, oldest first
func (s *PaymentsService) ByOrder(ctx context.Context, orderID uint) ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/payments/order/%d", orderID), nil, nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// Create records a payment against an order
func (s *PaymentsService) Create(ctx context.Context, params PaymentParams) (*models.Payment, error) {
	var payment models.Payment
	if err := s.client.do(ctx, http.MethodPost, "/api/payments", nil, params, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// Update replaces a payment's editable fields
func (s *PaymentsService) Update(ctx context.Context, id uint, params PaymentParams) (*models.Payment, error) {
	var payment models.Payment
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/payments/%d", id), nil, params, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// Delete removes a payment
func (s *PaymentsService) Delete(ctx context.Context, id uint) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/payments/%d", id), nil, nil, nil)
}
