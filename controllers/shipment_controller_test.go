package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emerald-motors/vehicle-trade-api/config"
	"github.com/emerald-motors/vehicle-trade-api/models"
)

func TestCreateShipment(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedStatus int
		expectedError  string
		checkResponse  func(t *testing.T, response map[string]interface{})
	}{
		{
			name: "Successfully create inbound shipment with items",
			requestBody: map[string]interface{}{
				"shipmentType":       "INBOUND",
				"carrier":            "TransEuro Logistics",
				"shippingCost":       1500,
				"additionalExpenses": 250.50,
				"items": []map[string]interface{}{
					{"referenceId": 1, "vin": "WVWZZZ1JZXW000001"},
					{"referenceId": 1, "vin": "WVWZZZ1JZXW000002"},
				},
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, response map[string]interface{}) {
				data := response["data"].(map[string]interface{})
				assert.Equal(t, float64(1750.50), data["totalCost"])
				assert.Equal(t, float64(2), data["vehicleCount"])
				items := data["items"].([]interface{})
				assert.Equal(t, 2, len(items))
				// Items on an inbound shipment default to order references
				first := items[0].(map[string]interface{})
				assert.Equal(t, "ORDER", first["referenceType"])
			},
		},
		{
			name: "Successfully create outbound shipment",
			requestBody: map[string]interface{}{
				"shipmentType": "OUTBOUND",
				"shippingCost": 800,
				"items": []map[string]interface{}{
					{"referenceId": 5, "vin": "WVWZZZ1JZXW000003", "referenceType": "CLIENT_INVOICE"},
				},
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, response map[string]interface{}) {
				data := response["data"].(map[string]interface{})
				assert.Equal(t, float64(800), data["totalCost"])
				assert.Equal(t, float64(1), data["vehicleCount"])
			},
		},
		{
			name: "Empty item list yields a zero vehicle count",
			requestBody: map[string]interface{}{
				"shipmentType": "INBOUND",
				"shippingCost": 400,
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, response map[string]interface{}) {
				data := response["data"].(map[string]interface{})
				assert.Equal(t, float64(0), data["vehicleCount"])
				assert.Equal(t, float64(400), data["totalCost"])
			},
		},
		{
			name: "Fail when inbound shipment carries invoice references",
			requestBody: map[string]interface{}{
				"shipmentType": "INBOUND",
				"items": []map[string]interface{}{
					{"referenceId": 5, "vin": "WVWZZZ1JZXW000004", "referenceType": "CLIENT_INVOICE"},
				},
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "ITEM_REFERENCE_MISMATCH",
		},
		{
			name: "Fail when outbound shipment carries order references",
			requestBody: map[string]interface{}{
				"shipmentType": "OUTBOUND",
				"items": []map[string]interface{}{
					{"referenceId": 1, "vin": "WVWZZZ1JZXW000005", "referenceType": "ORDER"},
				},
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "ITEM_REFERENCE_MISMATCH",
		},
		{
			name: "Fail with unknown shipment type",
			requestBody: map[string]interface{}{
				"shipmentType": "SIDEWAYS",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name: "Fail with negative shipping cost",
			requestBody: map[string]interface{}{
				"shipmentType": "INBOUND",
				"shippingCost": -10,
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db.Exec("DELETE FROM shipment_items")
			db.Exec("DELETE FROM shipments")

			router := setupTestRouter()
			router.POST("/shipments", mockAuthMiddleware(1, "staff"), CreateShipment)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/shipments", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code, "Response body: %s", w.Body.String())

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)

			if tt.expectedError != "" {
				assert.False(t, response["success"].(bool))
				errorData := response["error"].(map[string]interface{})
				assert.Equal(t, tt.expectedError, errorData["code"])
			}

			if tt.checkResponse != nil {
				tt.checkResponse(t, response)
			}
		})
	}
}

func TestUpdateShipment_ReplacesItems(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	shipment := models.Shipment{
		ShipmentType: models.ShipmentInbound,
		Status:       models.ShipmentStatusPending,
		ShippingCost: 1000,
		Items: []models.ShipmentItem{
			{ReferenceType: models.ReferenceOrder, ReferenceID: 1, Vin: "WVWZZZ1JZXW000001"},
			{ReferenceType: models.ReferenceOrder, ReferenceID: 1, Vin: "WVWZZZ1JZXW000002"},
		},
	}
	shipment.Recalculate()
	db.Create(&shipment)

	router := setupTestRouter()
	router.PUT("/shipments/:id", mockAuthMiddleware(1, "staff"), UpdateShipment)

	// Switch direction and submit a single invoice-referencing item: the old
	// order-referencing items must be gone afterwards
	body, _ := json.Marshal(map[string]interface{}{
		"shipmentType": "OUTBOUND",
		"shippingCost": 1200,
		"items": []map[string]interface{}{
			{"referenceId": 9, "vin": "WVWZZZ1JZXW000009"},
		},
	})
	req, _ := http.NewRequest(http.MethodPut, "/shipments/1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "Response body: %s", w.Body.String())

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["vehicleCount"])
	assert.Equal(t, float64(1200), data["totalCost"])

	var items []models.ShipmentItem
	db.Where("shipment_id = ?", shipment.ID).Find(&items)
	assert.Equal(t, 1, len(items))
	assert.Equal(t, models.ReferenceClientInvoice, items[0].ReferenceType)
	assert.Equal(t, "WVWZZZ1JZXW000009", items[0].Vin)
}

func TestGetShipmentsByOrder(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	onOrder := models.Shipment{
		ShipmentType: models.ShipmentInbound,
		Status:       models.ShipmentStatusPending,
		Items: []models.ShipmentItem{
			{ReferenceType: models.ReferenceOrder, ReferenceID: 42, Vin: "WVWZZZ1JZXW000001"},
		},
	}
	onOrder.Recalculate()
	db.Create(&onOrder)

	otherOrder := models.Shipment{
		ShipmentType: models.ShipmentInbound,
		Status:       models.ShipmentStatusPending,
		Items: []models.ShipmentItem{
			{ReferenceType: models.ReferenceOrder, ReferenceID: 7, Vin: "WVWZZZ1JZXW000002"},
		},
	}
	otherOrder.Recalculate()
	db.Create(&otherOrder)

	outbound := models.Shipment{
		ShipmentType: models.ShipmentOutbound,
		Status:       models.ShipmentStatusPending,
		Items: []models.ShipmentItem{
			// Invoice reference with the same id must not match order 42
			{ReferenceType: models.ReferenceClientInvoice, ReferenceID: 42, Vin: "WVWZZZ1JZXW000003"},
		},
	}
	outbound.Recalculate()
	db.Create(&outbound)

	router := setupTestRouter()
	router.GET("/shipments/order/:orderId", mockAuthMiddleware(1, "staff"), GetShipmentsByOrder)

	req, _ := http.NewRequest(http.MethodGet, "/shipments/order/42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	data := response["data"].([]interface{})
	assert.Equal(t, 1, len(data))
	found := data[0].(map[string]interface{})
	assert.Equal(t, float64(onOrder.ID), found["shipmentId"])
}

func TestDeleteShipment_RemovesItems(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	shipment := models.Shipment{
		ShipmentType: models.ShipmentInbound,
		Status:       models.ShipmentStatusPending,
		Items: []models.ShipmentItem{
			{ReferenceType: models.ReferenceOrder, ReferenceID: 1, Vin: "WVWZZZ1JZXW000001"},
		},
	}
	shipment.Recalculate()
	db.Create(&shipment)

	router := setupTestRouter()
	router.DELETE("/shipments/:id", mockAuthMiddleware(1, "staff"), DeleteShipment)

	req, _ := http.NewRequest(http.MethodDelete, "/shipments/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var shipmentCount, itemCount int64
	db.Model(&models.Shipment{}).Count(&shipmentCount)
	db.Model(&models.ShipmentItem{}).Count(&itemCount)
	assert.Equal(t, int64(0), shipmentCount)
	assert.Equal(t, int64(0), itemCount)
}

func TestGetShipmentItems_NotFound(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	router := setupTestRouter()
	router.GET("/shipments/:id/items", mockAuthMiddleware(1, "staff"), GetShipmentItems)

	req, _ := http.NewRequest(http.MethodGet, "/shipments/99999/items", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	errorData := response["error"].(map[string]interface{})
	assert.Equal(t, "SHIPMENT_NOT_FOUND", errorData["code"])
}
