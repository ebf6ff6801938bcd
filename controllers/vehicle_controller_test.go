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

func seedVehicles(t *testing.T) {
	db := config.GetDB()
	vehicles := []models.Vehicle{
		{Vin: "WVWZZZ1JZXW000111", Make: "Volkswagen", Model: "Golf", Year: 2023, SupplierID: 1, Currency: "EUR", StockStatus: models.StockInStock, DeliveryStatus: models.DeliveryNotShipped},
		{Vin: "WAUZZZ8V9KA000222", Make: "Audi", Model: "A3", Year: 2024, SupplierID: 1, Currency: "EUR", StockStatus: models.StockReserved, DeliveryStatus: models.DeliveryInTransit},
		{Vin: "JTDBT923771000333", Make: "Toyota", Model: "Yaris", Year: 2022, SupplierID: 2, Currency: "EUR", StockStatus: models.StockSold, DeliveryStatus: models.DeliveryDelivered},
	}
	for i := range vehicles {
		if err := db.Create(&vehicles[i]).Error; err != nil {
			t.Fatalf("Failed to seed vehicle: %v", err)
		}
	}
}

func TestGetVehicles_Filters(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	seedVehicles(t)

	tests := []struct {
		name          string
		queryParams   string
		expectedCount int
		expectedFirst string
	}{
		{
			name:          "No filters returns everything",
			queryParams:   "",
			expectedCount: 3,
		},
		{
			name:          "Filter by stock status",
			queryParams:   "?stockStatus=reserved",
			expectedCount: 1,
			expectedFirst: "WAUZZZ8V9KA000222",
		},
		{
			name:          "Filter by supplier",
			queryParams:   "?supplierId=1",
			expectedCount: 2,
		},
		{
			name:          "Search matches make case-insensitively",
			queryParams:   "?search=toyota",
			expectedCount: 1,
			expectedFirst: "JTDBT923771000333",
		},
		{
			name:          "Search matches partial VIN",
			queryParams:   "?search=000111",
			expectedCount: 1,
			expectedFirst: "WVWZZZ1JZXW000111",
		},
		{
			name:          "Stock status and search combine with AND",
			queryParams:   "?stockStatus=in_stock&search=audi",
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTestRouter()
			router.GET("/vehicles", mockAuthMiddleware(1, "staff"), GetVehicles)

			req, _ := http.NewRequest(http.MethodGet, "/vehicles"+tt.queryParams, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)

			data := response["data"].([]interface{})
			assert.Equal(t, tt.expectedCount, len(data))

			if tt.expectedFirst != "" && len(data) > 0 {
				first := data[0].(map[string]interface{})
				assert.Equal(t, tt.expectedFirst, first["vin"])
			}
		})
	}
}

func TestCreateVehicle(t *testing.T) {
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
			name: "Successfully create vehicle with defaults",
			requestBody: map[string]interface{}{
				"vin":        "wvwzzz1jzxw000111",
				"make":       "Volkswagen",
				"model":      "Golf",
				"year":       2023,
				"supplierId": 1,
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, response map[string]interface{}) {
				data := response["data"].(map[string]interface{})
				// VIN is normalised to upper case
				assert.Equal(t, "WVWZZZ1JZXW000111", data["vin"])
				assert.Equal(t, "in_stock", data["stockStatus"])
				assert.Equal(t, "not_shipped", data["deliveryStatus"])
				assert.Equal(t, "EUR", data["currency"])
			},
		},
		{
			name: "Fail with VIN of wrong length",
			requestBody: map[string]interface{}{
				"vin":        "SHORT",
				"make":       "Volkswagen",
				"model":      "Golf",
				"supplierId": 1,
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name: "Fail with VIN containing excluded letters",
			requestBody: map[string]interface{}{
				// I, O and Q never appear in a VIN
				"vin":        "WVWZZZIOQXW000111",
				"make":       "Volkswagen",
				"model":      "Golf",
				"supplierId": 1,
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name: "Fail with missing supplier",
			requestBody: map[string]interface{}{
				"vin":   "WVWZZZ1JZXW000111",
				"make":  "Volkswagen",
				"model": "Golf",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name: "Fail with unknown stock status",
			requestBody: map[string]interface{}{
				"vin":         "WVWZZZ1JZXW000111",
				"make":        "Volkswagen",
				"model":       "Golf",
				"supplierId":  1,
				"stockStatus": "misplaced",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db.Exec("DELETE FROM vehicles")

			router := setupTestRouter()
			router.POST("/vehicles", mockAuthMiddleware(1, "staff"), CreateVehicle)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/vehicles", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code, "Response body: %s", w.Body.String())

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)

			if tt.expectedError != "" {
				errorData := response["error"].(map[string]interface{})
				assert.Equal(t, tt.expectedError, errorData["code"])
			}

			if tt.checkResponse != nil {
				tt.checkResponse(t, response)
			}
		})
	}
}

func TestCreateVehicle_DuplicateVin(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	db.Create(&models.Vehicle{
		Vin:            "WVWZZZ1JZXW000111",
		Make:           "Volkswagen",
		Model:          "Golf",
		SupplierID:     1,
		Currency:       "EUR",
		StockStatus:    models.StockInStock,
		DeliveryStatus: models.DeliveryNotShipped,
	})

	router := setupTestRouter()
	router.POST("/vehicles", mockAuthMiddleware(1, "staff"), CreateVehicle)

	body, _ := json.Marshal(map[string]interface{}{
		"vin":        "WVWZZZ1JZXW000111",
		"make":       "Volkswagen",
		"model":      "Golf",
		"supplierId": 2,
	})
	req, _ := http.NewRequest(http.MethodPost, "/vehicles", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	errorData := response["error"].(map[string]interface{})
	assert.Equal(t, "VIN_EXISTS", errorData["code"])
}

func TestUpdateVehicle_SubStatusBlocks(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	vehicle := models.Vehicle{
		Vin:            "WVWZZZ1JZXW000111",
		Make:           "Volkswagen",
		Model:          "Golf",
		SupplierID:     1,
		Currency:       "EUR",
		StockStatus:    models.StockInStock,
		DeliveryStatus: models.DeliveryNotShipped,
	}
	db.Create(&vehicle)

	router := setupTestRouter()
	router.PUT("/vehicles/:id", mockAuthMiddleware(1, "staff"), UpdateVehicle)

	body, _ := json.Marshal(map[string]interface{}{
		"vin":            "WVWZZZ1JZXW000111",
		"make":           "Volkswagen",
		"model":          "Golf",
		"supplierId":     1,
		"stockStatus":    "sold",
		"exaStatus":      "approved",
		"deliveryStatus": "in_transit",
		"waybillNumber":  "WB-7781",
	})
	req, _ := http.NewRequest(http.MethodPut, "/vehicles/1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "Response body: %s", w.Body.String())

	var stored models.Vehicle
	db.First(&stored, vehicle.ID)
	assert.Equal(t, models.StockSold, stored.StockStatus)
	assert.Equal(t, models.ExaApproved, stored.ExaStatus)
	assert.Equal(t, models.DeliveryInTransit, stored.DeliveryStatus)
	assert.Equal(t, "WB-7781", stored.WaybillNumber)
}
