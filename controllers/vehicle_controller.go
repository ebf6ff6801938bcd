package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/emerald-motors/vehicle-trade-api/config"
	"github.com/emerald-motors/vehicle-trade-api/models"
	"github.com/emerald-motors/vehicle-trade-api/utils"
)

// VehicleRequest represents the request body for creating or updating a VIN
// in inventory
type VehicleRequest struct {
	Vin    string `json:"vin" binding:"required,vin"`
	Make   string `json:"make" binding:"required"`
	Model  string `json:"model" binding:"required"`
	Year   int    `json:"year" binding:"omitempty,gte=1980"`
	Colour string `json:"colour"`

	SupplierID    uint    `json:"supplierId" binding:"required"`
	PurchasePrice float64 `json:"purchasePrice" binding:"gte=0"`
	Currency      string  `json:"currency"`

	StockStatus string `json:"stockStatus" binding:"omitempty,oneof=in_stock reserved sold"`

	CocStatus       string `json:"cocStatus" binding:"omitempty,oneof=not_received pending received expired"`
	CocReceivedDate string `json:"cocReceivedDate"`
	CocDocumentKey  string `json:"cocDocumentKey"`

	ExaStatus       string `json:"exaStatus" binding:"omitempty,oneof=not_required pending approved rejected"`
	ExaApprovedDate string `json:"exaApprovedDate"`
	ExaDocumentKey  string `json:"exaDocumentKey"`

	DeliveryStatus string `json:"deliveryStatus" binding:"omitempty,oneof=not_shipped in_transit delivered"`
	WaybillNumber  string `json:"waybillNumber"`
	DeliveryDate   string `json:"deliveryDate"`

	Notes string `json:"notes"`
}

// GetVehicles handles GET /api/vehicles - lists the VIN inventory, filtered
// by the optional stockStatus, supplierId and search query parameters
func GetVehicles(c *gin.Context) {
	db := config.GetDB()
	query := db.Model(&models.Vehicle{})

	if stockStatus := c.Query("stockStatus"); stockStatus != "" {
		query = query.Where("stock_status = ?", stockStatus)
	}
	if supplierID := c.Query("supplierId"); supplierID != "" {
		query = query.Where("supplier_id = ?", supplierID)
	}

	var vehicles []models.Vehicle
	if err := query.Order("id DESC").Find(&vehicles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load vehicles",
			},
		})
		return
	}

	vehicles = utils.Filter(vehicles, utils.TextContains(c.Query("search"), func(v models.Vehicle) []string {
		return []string{v.Vin, v.Make, v.Model}
	}))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    vehicles,
	})
}

// GetVehicle handles GET /api/vehicles/:id - gets a single vehicle
func GetVehicle(c *gin.Context) {
	db := config.GetDB()

	var vehicle models.Vehicle
	if err := db.First(&vehicle, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VEHICLE_NOT_FOUND",
				"message": "Vehicle not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    vehicle,
	})
}

// CreateVehicle handles POST /api/vehicles - registers a VIN in inventory
func CreateVehicle(c *gin.Context) {
	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	vehicle := vehicleFromRequest(&req)

	db := config.GetDB()
	if err := db.Create(vehicle).Error; err != nil {
		// Check for duplicate VIN (works with both PostgreSQL and SQLite)
		errMsg := strings.ToLower(err.Error())
		if strings.Contains(errMsg, "duplicate") ||
			strings.Contains(errMsg, "unique constraint") ||
			strings.Contains(errMsg, "unique") {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VIN_EXISTS",
					"message": "A vehicle with this VIN is already registered",
				},
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create vehicle",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    vehicle,
	})
}

// UpdateVehicle handles PUT /api/vehicles/:id - replaces a vehicle's fields
func UpdateVehicle(c *gin.Context) {
	db := config.GetDB()

	var vehicle models.Vehicle
	if err := db.First(&vehicle, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VEHICLE_NOT_FOUND",
				"message": "Vehicle not found",
			},
		})
		return
	}

	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	updated := vehicleFromRequest(&req)
	updated.ID = vehicle.ID
	updated.CreatedAt = vehicle.CreatedAt

	if err := db.Save(updated).Error; err != nil {
		errMsg := strings.ToLower(err.Error())
		if strings.Contains(errMsg, "duplicate") ||
			strings.Contains(errMsg, "unique constraint") ||
			strings.Contains(errMsg, "unique") {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VIN_EXISTS",
					"message": "A vehicle with this VIN is already registered",
				},
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update vehicle",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    updated,
	})
}

// DeleteVehicle handles DELETE /api/vehicles/:id - removes a VIN from
// inventory
func DeleteVehicle(c *gin.Context) {
	db := config.GetDB()

	var vehicle models.Vehicle
	if err := db.First(&vehicle, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VEHICLE_NOT_FOUND",
				"message": "Vehicle not found",
			},
		})
		return
	}

	if err := db.Delete(&vehicle).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete vehicle",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Vehicle deleted",
	})
}

func vehicleFromRequest(req *VehicleRequest) *models.Vehicle {
	currency := req.Currency
	if currency == "" {
		currency = "EUR"
	}
	stockStatus := req.StockStatus
	if stockStatus == "" {
		stockStatus = models.StockInStock
	}
	deliveryStatus := req.DeliveryStatus
	if deliveryStatus == "" {
		deliveryStatus = models.DeliveryNotShipped
	}

	return &models.Vehicle{
		Vin:             strings.ToUpper(req.Vin),
		Make:            req.Make,
		Model:           req.Model,
		Year:            req.Year,
		Colour:          req.Colour,
		SupplierID:      req.SupplierID,
		PurchasePrice:   req.PurchasePrice,
		Currency:        currency,
		StockStatus:     stockStatus,
		CocStatus:       req.CocStatus,
		CocReceivedDate: req.CocReceivedDate,
		CocDocumentKey:  req.CocDocumentKey,
		ExaStatus:       req.ExaStatus,
		ExaApprovedDate: req.ExaApprovedDate,
		ExaDocumentKey:  req.ExaDocumentKey,
		DeliveryStatus:  deliveryStatus,
		WaybillNumber:   req.WaybillNumber,
		DeliveryDate:    req.DeliveryDate,
		Notes:           req.Notes,
	}
}
