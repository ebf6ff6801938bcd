package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emerald-motors/vehicle-trade-api/config"
	"github.com/emerald-motors/vehicle-trade-api/models"
)

// OrderRequest represents the request body for creating or updating an order.
// The derived totals are intentionally absent: the server recomputes them.
type OrderRequest struct {
	CompanyID      uint    `json:"companyId" binding:"required"`
	SupplierID     *uint   `json:"supplierId"`
	ClientID       *uint   `json:"clientId"`
	OrderDate      string  `json:"orderDate" binding:"required"`
	VehicleMake    string  `json:"vehicleMake"`
	VehicleModel   string  `json:"vehicleModel"`
	Colour         string  `json:"colour"`
	Vin            string  `json:"vin" binding:"omitempty,vin"`
	UnitsOrdered   int     `json:"unitsOrdered" binding:"required,gte=1"`
	UnitPriceEur   float64 `json:"unitPriceEur" binding:"required,gt=0"`
	UnitDepositEur float64 `json:"unitDepositEur" binding:"gte=0"`
	Status         string  `json:"status"`
	PaymentStatus  string  `json:"paymentStatus"`
	DepositStatus  string  `json:"depositStatus"`
	ContractID     string  `json:"contractId"`
	ContractStatus string  `json:"contractStatus"`
	Eta            string  `json:"eta"`
	Notes          string  `json:"notes"`
}

// GetOrders handles GET /api/orders - lists all orders
func GetOrders(c *gin.Context) {
	db := config.GetDB()

	var orders []models.VehicleOrder
	if err := db.Order("order_date DESC, id DESC").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load orders",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orders,
	})
}

// SearchOrders handles GET /api/orders/search - lists orders matching the
// query-parameter filters (companyId, supplierId, status, fromDate, toDate)
func SearchOrders(c *gin.Context) {
	db := config.GetDB()
	query := db.Model(&models.VehicleOrder{})

	if companyID := c.Query("companyId"); companyID != "" {
		query = query.Where("company_id = ?", companyID)
	}
	if supplierID := c.Query("supplierId"); supplierID != "" {
		query = query.Where("supplier_id = ?", supplierID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if fromDate := c.Query("fromDate"); fromDate != "" {
		query = query.Where("order_date >= ?", fromDate)
	}
	if toDate := c.Query("toDate"); toDate != "" {
		query = query.Where("order_date <= ?", toDate)
	}

	var orders []models.VehicleOrder
	if err := query.Order("order_date DESC, id DESC").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to search orders",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orders,
	})
}

// GetOrder handles GET /api/orders/:id - gets a single order
func GetOrder(c *gin.Context) {
	db := config.GetDB()

	var order models.VehicleOrder
	if err := db.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "Order not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// CreateOrder handles POST /api/orders - creates a new order with
// server-computed totals
func CreateOrder(c *gin.Context) {
	var req OrderRequest
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

	order := orderFromRequest(&req)
	order.RecalculateTotals()

	db := config.GetDB()
	if err := db.Create(order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create order",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    order,
	})
}

// UpdateOrder handles PUT /api/orders/:id - replaces an order's fields and
// recomputes its totals
func UpdateOrder(c *gin.Context) {
	db := config.GetDB()

	var order models.VehicleOrder
	if err := db.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "Order not found",
			},
		})
		return
	}

	var req OrderRequest
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

	updated := orderFromRequest(&req)
	updated.ID = order.ID
	updated.CreatedAt = order.CreatedAt
	updated.RecalculateTotals()

	if err := db.Save(updated).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update order",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    updated,
	})
}

// DeleteOrder handles DELETE /api/orders/:id - removes an order
func DeleteOrder(c *gin.Context) {
	db := config.GetDB()

	var order models.VehicleOrder
	if err := db.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "Order not found",
			},
		})
		return
	}

	if err := db.Delete(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete order",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order deleted",
	})
}

func orderFromRequest(req *OrderRequest) *models.VehicleOrder {
	status := req.Status
	if status == "" {
		status = models.OrderStatusPending
	}
	paymentStatus := req.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = models.PaymentStatusUnpaid
	}

	return &models.VehicleOrder{
		CompanyID:      req.CompanyID,
		SupplierID:     req.SupplierID,
		ClientID:       req.ClientID,
		OrderDate:      req.OrderDate,
		VehicleMake:    req.VehicleMake,
		VehicleModel:   req.VehicleModel,
		Colour:         req.Colour,
		Vin:            req.Vin,
		UnitsOrdered:   req.UnitsOrdered,
		UnitPriceEur:   req.UnitPriceEur,
		UnitDepositEur: req.UnitDepositEur,
		Status:         status,
		PaymentStatus:  paymentStatus,
		DepositStatus:  req.DepositStatus,
		ContractID:     req.ContractID,
		ContractStatus: req.ContractStatus,
		Eta:            req.Eta,
		Notes:          req.Notes,
	}
}
