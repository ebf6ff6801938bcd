package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/emerald-motors/vehicle-trade-api/config"
	"github.com/emerald-motors/vehicle-trade-api/models"
)

// ShipmentItemRequest represents one vehicle on a shipment payload
type ShipmentItemRequest struct {
	ReferenceType string `json:"referenceType"`
	ReferenceID   uint   `json:"referenceId" binding:"required"`
	Vin           string `json:"vin" binding:"required"`
	VehicleMake   string `json:"vehicleMake"`
	VehicleModel  string `json:"vehicleModel"`
	Notes         string `json:"notes"`
}

// ShipmentRequest represents the request body for creating or updating a
// shipment. Totals and vehicle count are recomputed server-side.
type ShipmentRequest struct {
	ShipmentType string `json:"shipmentType" binding:"required,oneof=INBOUND OUTBOUND"`
	Status       string `json:"status"`

	Carrier         string `json:"carrier"`
	TrackingNumber  string `json:"trackingNumber"`
	TransportMethod string `json:"transportMethod"`

	LoadingLocation   string `json:"loadingLocation"`
	UnloadingLocation string `json:"unloadingLocation"`
	CollectionDate    string `json:"collectionDate"`
	CollectionTime    string `json:"collectionTime"`
	DropoffDate       string `json:"dropoffDate"`
	DropoffTime       string `json:"dropoffTime"`

	ShippingCost       float64 `json:"shippingCost" binding:"gte=0"`
	AdditionalExpenses float64 `json:"additionalExpenses" binding:"gte=0"`

	CmrDocument     string `json:"cmrDocument"`
	ExaDocument     string `json:"exaDocument"`
	CustomsDocument string `json:"customsDocument"`
	Notes           string `json:"notes"`

	Items []ShipmentItemRequest `json:"items"`
}

// GetShipments handles GET /api/shipments - lists all shipments with items
func GetShipments(c *gin.Context) {
	db := config.GetDB()

	var shipments []models.Shipment
	if err := db.Preload("Items").Order("id DESC").Find(&shipments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load shipments",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    shipments,
	})
}

// GetShipment handles GET /api/shipments/:id - gets a single shipment with
// its items
func GetShipment(c *gin.Context) {
	db := config.GetDB()

	var shipment models.Shipment
	if err := db.Preload("Items").First(&shipment, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SHIPMENT_NOT_FOUND",
				"message": "Shipment not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    shipment,
	})
}

// GetShipmentItems handles GET /api/shipments/:id/items - lists the vehicles
// on a shipment
func GetShipmentItems(c *gin.Context) {
	db := config.GetDB()

	var shipment models.Shipment
	if err := db.First(&shipment, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SHIPMENT_NOT_FOUND",
				"message": "Shipment not found",
			},
		})
		return
	}

	var items []models.ShipmentItem
	if err := db.Where("shipment_id = ?", shipment.ID).Order("id").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load shipment items",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
	})
}

// GetShipmentsByOrder handles GET /api/shipments/order/:orderId - lists the
// shipments carrying vehicles from an order
func GetShipmentsByOrder(c *gin.Context) {
	db := config.GetDB()

	itemQuery := db.Model(&models.ShipmentItem{}).
		Select("shipment_id").
		Where("reference_type = ? AND reference_id = ?", models.ReferenceOrder, c.Param("orderId"))

	var shipments []models.Shipment
	if err := db.Preload("Items").Where("id IN (?)", itemQuery).Order("id DESC").Find(&shipments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load shipments for order",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    shipments,
	})
}

// CreateShipment handles POST /api/shipments - creates a shipment together
// with its item list
func CreateShipment(c *gin.Context) {
	var req ShipmentRequest
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

	shipment := shipmentFromRequest(&req)
	if code, msg := validateItems(shipment); code != "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    code,
				"message": msg,
			},
		})
		return
	}
	shipment.Recalculate()

	db := config.GetDB()
	if err := db.Create(shipment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create shipment",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    shipment,
	})
}

// UpdateShipment handles PUT /api/shipments/:id - replaces a shipment's
// fields and item list. Items are always replaced by the submitted list: a
// direction change therefore cannot leave items referencing the wrong entity
// type behind.
func UpdateShipment(c *gin.Context) {
	db := config.GetDB()

	var existing models.Shipment
	if err := db.First(&existing, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SHIPMENT_NOT_FOUND",
				"message": "Shipment not found",
			},
		})
		return
	}

	var req ShipmentRequest
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

	updated := shipmentFromRequest(&req)
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if code, msg := validateItems(updated); code != "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    code,
				"message": msg,
			},
		})
		return
	}
	updated.Recalculate()

	err := db.Transaction(func(tx *gorm.DB) error {
		// Replace the item list wholesale
		if err := tx.Unscoped().Where("shipment_id = ?", existing.ID).Delete(&models.ShipmentItem{}).Error; err != nil {
			return err
		}
		return tx.Save(updated).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update shipment",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    updated,
	})
}

// DeleteShipment handles DELETE /api/shipments/:id - removes a shipment and
// its items
func DeleteShipment(c *gin.Context) {
	db := config.GetDB()

	var shipment models.Shipment
	if err := db.First(&shipment, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SHIPMENT_NOT_FOUND",
				"message": "Shipment not found",
			},
		})
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shipment_id = ?", shipment.ID).Delete(&models.ShipmentItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&shipment).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete shipment",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Shipment deleted",
	})
}

func shipmentFromRequest(req *ShipmentRequest) *models.Shipment {
	status := req.Status
	if status == "" {
		status = models.ShipmentStatusPending
	}

	shipment := &models.Shipment{
		ShipmentType:       req.ShipmentType,
		Status:             status,
		Carrier:            req.Carrier,
		TrackingNumber:     req.TrackingNumber,
		TransportMethod:    req.TransportMethod,
		LoadingLocation:    req.LoadingLocation,
		UnloadingLocation:  req.UnloadingLocation,
		CollectionDate:     req.CollectionDate,
		CollectionTime:     req.CollectionTime,
		DropoffDate:        req.DropoffDate,
		DropoffTime:        req.DropoffTime,
		ShippingCost:       req.ShippingCost,
		AdditionalExpenses: req.AdditionalExpenses,
		CmrDocument:        req.CmrDocument,
		ExaDocument:        req.ExaDocument,
		CustomsDocument:    req.CustomsDocument,
		Notes:              req.Notes,
	}

	for _, item := range req.Items {
		referenceType := item.ReferenceType
		if referenceType == "" {
			referenceType = shipment.ExpectedReferenceType()
		}
		shipment.Items = append(shipment.Items, models.ShipmentItem{
			ReferenceType: referenceType,
			ReferenceID:   item.ReferenceID,
			Vin:           item.Vin,
			VehicleMake:   item.VehicleMake,
			VehicleModel:  item.VehicleModel,
			Notes:         item.Notes,
		})
	}

	return shipment
}

// validateItems checks every item against the shipment direction: inbound
// shipments may only reference orders, outbound only client invoices
func validateItems(shipment *models.Shipment) (code, message string) {
	expected := shipment.ExpectedReferenceType()
	for _, item := range shipment.Items {
		if item.ReferenceType != expected {
			return "ITEM_REFERENCE_MISMATCH",
				"A " + shipment.ShipmentType + " shipment can only carry " + expected + " references"
		}
	}
	return "", ""
}
