package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestVehicleOrderTableName(t *testing.T) {
	order := VehicleOrder{}
	assert.Equal(t, "vehicle_orders", order.TableName(), "Table name should be 'vehicle_orders'")
}

func TestRecalculateTotals(t *testing.T) {
	tests := []struct {
		name            string
		unitPrice       float64
		unitDeposit     float64
		units           int
		expectedTotal   float64
		expectedDeposit float64
		expectedBalance float64
	}{
		{
			name:            "three units at 1000 with 200 deposit",
			unitPrice:       1000,
			unitDeposit:     200,
			units:           3,
			expectedTotal:   3000,
			expectedDeposit: 600,
			expectedBalance: 2400,
		},
		{
			name:            "single unit",
			unitPrice:       28500,
			unitDeposit:     5000,
			units:           1,
			expectedTotal:   28500,
			expectedDeposit: 5000,
			expectedBalance: 23500,
		},
		{
			name:            "no deposit",
			unitPrice:       15000,
			unitDeposit:     0,
			units:           2,
			expectedTotal:   30000,
			expectedDeposit: 0,
			expectedBalance: 30000,
		},
		{
			name:            "fractional unit price stays exact",
			unitPrice:       1999.99,
			unitDeposit:     99.99,
			units:           3,
			expectedTotal:   5999.97,
			expectedDeposit: 299.97,
			expectedBalance: 5700,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := VehicleOrder{
				UnitPriceEur:   tt.unitPrice,
				UnitDepositEur: tt.unitDeposit,
				UnitsOrdered:   tt.units,
			}
			order.RecalculateTotals()

			assert.Equal(t, tt.expectedTotal, order.TotalCostEur, "total cost should be price x units")
			assert.Equal(t, tt.expectedDeposit, order.DepositTotalEur, "deposit total should be deposit x units")
			assert.Equal(t, tt.expectedBalance, order.BalanceEur, "balance should be total cost - deposit total")
		})
	}
}

func TestRecalculateTotalsOverwritesStaleValues(t *testing.T) {
	// Whatever a caller sends in the derived fields must be discarded
	order := VehicleOrder{
		UnitPriceEur:    1000,
		UnitDepositEur:  200,
		UnitsOrdered:    3,
		TotalCostEur:    999999,
		DepositTotalEur: 999999,
		BalanceEur:      999999,
	}
	order.RecalculateTotals()

	assert.Equal(t, float64(3000), order.TotalCostEur)
	assert.Equal(t, float64(600), order.DepositTotalEur)
	assert.Equal(t, float64(2400), order.BalanceEur)
}

func TestRecalculateTotalsBalanceIdentity(t *testing.T) {
	// balance = (P - D) x N must hold for any recomputation
	inputs := []struct {
		price   float64
		deposit float64
		units   int
	}{
		{1000, 200, 3},
		{42000.50, 4200.05, 7},
		{1, 1, 100},
		{0.10, 0.01, 9},
	}

	for _, in := range inputs {
		order := VehicleOrder{
			UnitPriceEur:   in.price,
			UnitDepositEur: in.deposit,
			UnitsOrdered:   in.units,
		}
		order.RecalculateTotals()

		expected, _ := decimal.NewFromFloat(in.price).
			Sub(decimal.NewFromFloat(in.deposit)).
			Mul(decimal.NewFromInt(int64(in.units))).
			Float64()

		assert.Equal(t, expected, order.BalanceEur,
			"balance should equal (price - deposit) x units for price=%v deposit=%v units=%v",
			in.price, in.deposit, in.units)
	}
}

func TestOutstandingBalance(t *testing.T) {
	order := VehicleOrder{
		UnitPriceEur:   1000,
		UnitDepositEur: 200,
		UnitsOrdered:   3,
	}
	order.RecalculateTotals()

	assert.Equal(t, float64(3000), order.OutstandingBalance(0), "nothing paid yet")
	assert.Equal(t, float64(2400), order.OutstandingBalance(600), "deposit recorded")
	assert.Equal(t, float64(0), order.OutstandingBalance(3000), "fully paid")
}

func TestOrderStatusConstants(t *testing.T) {
	tests := []struct {
		name   string
		status string
	}{
		{"pending", OrderStatusPending},
		{"confirmed", OrderStatusConfirmed},
		{"in_transit", OrderStatusInTransit},
		{"delivered", OrderStatusDelivered},
		{"cancelled", OrderStatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := VehicleOrder{Status: tt.status}
			assert.Equal(t, tt.status, order.Status, "Status should be set correctly")
		})
	}
}
