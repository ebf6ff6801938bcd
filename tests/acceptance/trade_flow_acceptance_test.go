package acceptance

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/emerald-motors/vehicle-trade-api/config"
	"github.com/emerald-motors/vehicle-trade-api/controllers"
	"github.com/emerald-motors/vehicle-trade-api/middleware"
	"github.com/emerald-motors/vehicle-trade-api/models"
	"github.com/emerald-motors/vehicle-trade-api/tests/testutil"
	"github.com/emerald-motors/vehicle-trade-api/utils"
)

// TradeFlowAcceptanceTestSuite drives a full import deal over real HTTP:
// log in, register the supplier and client, place the order, record the
// inbound shipment and payments, then invoice the client.
type TradeFlowAcceptanceTestSuite struct {
	suite.Suite
	server *httptest.Server
	db     *gorm.DB
	cfg    *config.Config
	token  string
}

func (suite *TradeFlowAcceptanceTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	os.Setenv("GO_ENV", "test")
	utils.RegisterValidators()
}

func (suite *TradeFlowAcceptanceTestSuite) TearDownSuite() {
	if suite.server != nil {
		suite.server.Close()
	}
}

func (suite *TradeFlowAcceptanceTestSuite) SetupTest() {
	suite.db = testutil.SetupTestDatabase(suite.T())
	suite.cfg = testutil.TestConfig(suite.T())

	user := testutil.CreateUser(suite.T(), "demo@ad.com", "demo123", "staff")
	suite.token = testutil.IssueTokenFor(suite.T(), suite.cfg, user)

	if suite.server != nil {
		suite.server.Close()
	}
	suite.server = httptest.NewServer(suite.createRouter())
}

// createRouter mounts the full authenticated API surface the way main does
func (suite *TradeFlowAcceptanceTestSuite) createRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api")
	{
		api.POST("/auth/login", controllers.Login)

		protected := api.Group("")
		protected.Use(middleware.RequireAuth(suite.cfg))
		{
			protected.GET("/companies", controllers.GetCompanies)

			protected.POST("/suppliers", controllers.CreateSupplier)
			protected.POST("/clients", controllers.CreateClient)

			protected.POST("/orders", controllers.CreateOrder)
			protected.GET("/orders/:id", controllers.GetOrder)
			protected.GET("/orders/search", controllers.SearchOrders)

			protected.POST("/shipments", controllers.CreateShipment)
			protected.GET("/shipments/order/:orderId", controllers.GetShipmentsByOrder)
			protected.GET("/shipments/:id/items", controllers.GetShipmentItems)

			protected.POST("/payments", controllers.CreatePayment)
			protected.GET("/payments/order/:orderId", controllers.GetPaymentsByOrder)

			protected.POST("/client-invoices", controllers.CreateClientInvoice)
			protected.GET("/client-invoices", controllers.GetClientInvoices)

			protected.POST("/vehicles", controllers.CreateVehicle)
			protected.GET("/vehicles", controllers.GetVehicles)
		}
	}

	return router
}

// request performs an authenticated JSON request against the live server and
// decodes the envelope
func (suite *TradeFlowAcceptanceTestSuite) request(method, path string, body interface{}) (int, map[string]interface{}) {
	var buf bytes.Buffer
	if body != nil {
		suite.NoError(json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, suite.server.URL+path, &buf)
	suite.NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.token)

	resp, err := http.DefaultClient.Do(req)
	suite.NoError(err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	suite.NoError(json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func (suite *TradeFlowAcceptanceTestSuite) seedCompany() uint {
	company := models.Company{Name: "Emerald Motors Ltd", CountryCode: "IE"}
	suite.NoError(suite.db.Create(&company).Error)
	return company.ID
}

func dataID(response map[string]interface{}) uint {
	return uint(response["data"].(map[string]interface{})["id"].(float64))
}

func (suite *TradeFlowAcceptanceTestSuite) TestCompleteImportDeal() {
	companyID := suite.seedCompany()

	// Step 1: register the German supplier we buy from
	status, response := suite.request(http.MethodPost, "/api/suppliers", map[string]interface{}{
		"companyName": "Bavaria Auto Export GmbH",
		"contactName": "Stefan Weber",
		"email":       "stefan@bavaria-export.de",
		"countryCode": "de",
		"serviceType": "vehicles",
	})
	assert.Equal(suite.T(), http.StatusCreated, status)
	supplierID := dataID(response)
	assert.Equal(suite.T(), "DE", response["data"].(map[string]interface{})["countryCode"])

	// Step 2: register the client who ordered the vehicles
	status, response = suite.request(http.MethodPost, "/api/clients", map[string]interface{}{
		"companyName": "Dublin Auto Imports",
		"contactName": "Aoife Byrne",
		"email":       "aoife@dublinautoimports.ie",
		"countryCode": "IE",
	})
	assert.Equal(suite.T(), http.StatusCreated, status)
	clientID := dataID(response)

	// Step 3: place the purchase order, 2 units at 15000 with 3000 deposits
	status, response = suite.request(http.MethodPost, "/api/orders", map[string]interface{}{
		"companyId":      companyID,
		"supplierId":     supplierID,
		"clientId":       clientID,
		"orderDate":      "2026-04-10",
		"vehicleMake":    "Volkswagen",
		"vehicleModel":   "Transporter",
		"unitsOrdered":   2,
		"unitPriceEur":   15000.0,
		"unitDepositEur": 3000.0,
	})
	assert.Equal(suite.T(), http.StatusCreated, status)
	orderID := dataID(response)
	orderData := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), 30000.0, orderData["totalCostEur"])
	assert.Equal(suite.T(), 6000.0, orderData["depositTotalEur"])
	assert.Equal(suite.T(), 24000.0, orderData["balanceEur"])
	assert.Equal(suite.T(), "unpaid", orderData["paymentStatus"])

	// Step 4: the deposit payment moves the order to partially paid
	status, _ = suite.request(http.MethodPost, "/api/payments", map[string]interface{}{
		"orderId":       orderID,
		"paymentDate":   "2026-04-12",
		"amount":        6000.0,
		"paymentMethod": "bank_transfer",
		"paymentType":   "deposit",
	})
	assert.Equal(suite.T(), http.StatusCreated, status)

	status, response = suite.request(http.MethodGet, fmt.Sprintf("/api/orders/%d", orderID), nil)
	assert.Equal(suite.T(), http.StatusOK, status)
	assert.Equal(suite.T(), "partially_paid", response["data"].(map[string]interface{})["paymentStatus"])

	// Step 5: record the inbound shipment carrying both vehicles
	status, response = suite.request(http.MethodPost, "/api/shipments", map[string]interface{}{
		"shipmentType":      "INBOUND",
		"carrier":           "Rotterdam Vehicle Logistics",
		"loadingLocation":   "Munich",
		"unloadingLocation": "Dublin Port",
		"shippingCost":      1400.0,
		"items": []map[string]interface{}{
			{"referenceId": orderID, "vin": "WV1ZZZ7HZLH000001", "vehicleMake": "Volkswagen", "vehicleModel": "Transporter"},
			{"referenceId": orderID, "vin": "WV1ZZZ7HZLH000002", "vehicleMake": "Volkswagen", "vehicleModel": "Transporter"},
		},
	})
	assert.Equal(suite.T(), http.StatusCreated, status)
	shipmentID := dataID(response)
	assert.Equal(suite.T(), float64(2), response["data"].(map[string]interface{})["vehicleCount"])

	status, response = suite.request(http.MethodGet, fmt.Sprintf("/api/shipments/order/%d", orderID), nil)
	assert.Equal(suite.T(), http.StatusOK, status)
	shipments := response["data"].([]interface{})
	assert.Len(suite.T(), shipments, 1)
	assert.Equal(suite.T(), float64(shipmentID), shipments[0].(map[string]interface{})["id"])

	status, response = suite.request(http.MethodGet, fmt.Sprintf("/api/shipments/%d/items", shipmentID), nil)
	assert.Equal(suite.T(), http.StatusOK, status)
	assert.Len(suite.T(), response["data"], 2)

	// Step 6: settle the balance, order becomes paid
	status, _ = suite.request(http.MethodPost, "/api/payments", map[string]interface{}{
		"orderId":       orderID,
		"paymentDate":   "2026-05-02",
		"amount":        24000.0,
		"paymentMethod": "bank_transfer",
		"paymentType":   "balance",
	})
	assert.Equal(suite.T(), http.StatusCreated, status)

	status, response = suite.request(http.MethodGet, fmt.Sprintf("/api/orders/%d", orderID), nil)
	assert.Equal(suite.T(), http.StatusOK, status)
	assert.Equal(suite.T(), "paid", response["data"].(map[string]interface{})["paymentStatus"])

	// Step 7: invoice the client for the resale
	status, response = suite.request(http.MethodPost, "/api/client-invoices", map[string]interface{}{
		"invoiceNumber":  "INV-2026-0041",
		"clientId":       clientID,
		"companyId":      companyID,
		"invoiceDate":    "2026-05-05",
		"amountNet":      34000.0,
		"amountVat":      7820.0,
		"status":         "sent",
		"relatedOrderId": orderID,
	})
	assert.Equal(suite.T(), http.StatusCreated, status)
	invoiceData := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), 41820.0, invoiceData["amountGross"])

	// Step 8: both vehicles land in stock under their VINs
	for _, vin := range []string{"WV1ZZZ7HZLH000001", "WV1ZZZ7HZLH000002"} {
		status, _ = suite.request(http.MethodPost, "/api/vehicles", map[string]interface{}{
			"vin":        vin,
			"make":       "Volkswagen",
			"model":      "Transporter",
			"year":       2026,
			"supplierId": supplierID,
		})
		assert.Equal(suite.T(), http.StatusCreated, status)
	}

	status, response = suite.request(http.MethodGet, "/api/vehicles?stockStatus=in_stock", nil)
	assert.Equal(suite.T(), http.StatusOK, status)
	assert.Len(suite.T(), response["data"], 2)

	// Step 9: the deal is findable through order search
	status, response = suite.request(http.MethodGet,
		fmt.Sprintf("/api/orders/search?supplierId=%d&fromDate=2026-01-01&toDate=2026-12-31", supplierID), nil)
	assert.Equal(suite.T(), http.StatusOK, status)
	assert.Len(suite.T(), response["data"], 1)
}

func (suite *TradeFlowAcceptanceTestSuite) TestUnauthenticatedRequestsAreRejected() {
	req, err := http.NewRequest(http.MethodGet, suite.server.URL+"/api/companies", nil)
	suite.NoError(err)

	resp, err := http.DefaultClient.Do(req)
	suite.NoError(err)
	defer resp.Body.Close()

	assert.Equal(suite.T(), http.StatusUnauthorized, resp.StatusCode)
}

func (suite *TradeFlowAcceptanceTestSuite) TestLoginIssuesWorkingToken() {
	var buf bytes.Buffer
	json.NewEncoder(&buf).Encode(map[string]string{"email": "demo@ad.com", "password": "demo123"})

	resp, err := http.Post(suite.server.URL+"/api/auth/login", "application/json", &buf)
	suite.NoError(err)
	defer resp.Body.Close()

	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)

	var decoded map[string]interface{}
	suite.NoError(json.NewDecoder(resp.Body).Decode(&decoded))
	token := decoded["data"].(map[string]interface{})["token"].(string)

	req, err := http.NewRequest(http.MethodGet, suite.server.URL+"/api/companies", nil)
	suite.NoError(err)
	req.Header.Set("Authorization", "Bearer "+token)

	authResp, err := http.DefaultClient.Do(req)
	suite.NoError(err)
	defer authResp.Body.Close()

	assert.Equal(suite.T(), http.StatusOK, authResp.StatusCode)
}

func TestTradeFlowAcceptanceTestSuite(t *testing.T) {
	testutil.RequireTestEnvironmentOrSkip(t)
	suite.Run(t, new(TradeFlowAcceptanceTestSuite))
}
