package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/emerald-motors/vehicle-trade-api/config"
	"github.com/emerald-motors/vehicle-trade-api/models"
)

// PaymentRequest represents the request body for recording or amending a
// payment against an order
type PaymentRequest struct {
	OrderID       uint    `json:"orderId" binding:"required"`
	PaymentDate   string  `json:"paymentDate" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod string  `json:"paymentMethod" binding:"required"`
	PaymentType   string  `json:"paymentType" binding:"required,oneof=deposit balance full"`
	Status        string  `json:"status"`
	ProofKey      string  `json:"proofKey"`
	Notes         string  `json:"notes"`
}

// GetPayments handles GET /api/payments - lists all payments
func GetPayments(c *gin.Context) {
	db := config.GetDB()

	var payments []models.Payment
	if err := db.Order("payment_date DESC, id DESC").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load payments",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    payments,
	})
}

// GetPayment handles GET /api/payments/:id - gets a single payment
func GetPayment(c *gin.Context) {
	db := config.GetDB()

	var payment models.Payment
	if err := db.First(&payment, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PAYMENT_NOT_FOUND",
				"message": "Payment not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    payment,
	})
}

// GetPaymentsByOrder handles GET /api/payments/order/:orderId - lists the
// payment history of an order
func GetPaymentsByOrder(c *gin.Context) {
	db := config.GetDB()

	var payments []models.Payment
	if err := db.Where("order_id = ?", c.Param("orderId")).Order("payment_date, id").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load payments for order",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    payments,
	})
}

// CreatePayment handles POST /api/payments - records a payment. The amount
// may not exceed the order's outstanding balance.
func CreatePayment(c *gin.Context) {
	var req PaymentRequest
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

	db := config.GetDB()
	var order models.VehicleOrder
	if err := db.First(&order, req.OrderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "Order not found for payment",
			},
		})
		return
	}

	paid := sumCompletedPayments(db, order.ID, 0)
	outstanding := order.OutstandingBalance(paid)
	if req.Amount > outstanding {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "AMOUNT_EXCEEDS_BALANCE",
				"message": "Payment amount exceeds the order's outstanding balance",
			},
		})
		return
	}

	status := req.Status
	if status == "" {
		status = models.PaymentCompleted
	}

	payment := models.Payment{
		OrderID:       req.OrderID,
		PaymentDate:   req.PaymentDate,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		PaymentType:   req.PaymentType,
		Status:        status,
		ProofKey:      req.ProofKey,
		Notes:         req.Notes,
	}

	if err := db.Create(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to record payment",
			},
		})
		return
	}

	refreshOrderPaymentStatus(db, &order)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    payment,
	})
}

// UpdatePayment handles PUT /api/payments/:id - amends a recorded payment,
// re-checking the balance cap against the other payments on the order
func UpdatePayment(c *gin.Context) {
	db := config.GetDB()

	var payment models.Payment
	if err := db.First(&payment, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PAYMENT_NOT_FOUND",
				"message": "Payment not found",
			},
		})
		return
	}

	var req PaymentRequest
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

	var order models.VehicleOrder
	if err := db.First(&order, req.OrderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "Order not found for payment",
			},
		})
		return
	}

	paid := sumCompletedPayments(db, order.ID, payment.ID)
	outstanding := order.OutstandingBalance(paid)
	if req.Amount > outstanding {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "AMOUNT_EXCEEDS_BALANCE",
				"message": "Payment amount exceeds the order's outstanding balance",
			},
		})
		return
	}

	payment.OrderID = req.OrderID
	payment.PaymentDate = req.PaymentDate
	payment.Amount = req.Amount
	payment.PaymentMethod = req.PaymentMethod
	payment.PaymentType = req.PaymentType
	if req.Status != "" {
		payment.Status = req.Status
	}
	payment.ProofKey = req.ProofKey
	payment.Notes = req.Notes

	if err := db.Save(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update payment",
			},
		})
		return
	}

	refreshOrderPaymentStatus(db, &order)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    payment,
	})
}

// DeletePayment handles DELETE /api/payments/:id - removes a payment record
func DeletePayment(c *gin.Context) {
	db := config.GetDB()

	var payment models.Payment
	if err := db.First(&payment, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PAYMENT_NOT_FOUND",
				"message": "Payment not found",
			},
		})
		return
	}

	if err := db.Delete(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete payment",
			},
		})
		return
	}

	var order models.VehicleOrder
	if err := db.First(&order, payment.OrderID).Error; err == nil {
		refreshOrderPaymentStatus(db, &order)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment deleted",
	})
}

// sumCompletedPayments adds up the completed payments on an order, excluding
// one payment id (pass 0 to exclude nothing). The sum is computed in decimal
// so a run of fractional amounts cannot drift.
func sumCompletedPayments(db *gorm.DB, orderID uint, excludeID uint) float64 {
	var payments []models.Payment
	query := db.Where("order_id = ? AND status = ?", orderID, models.PaymentCompleted)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Find(&payments).Error; err != nil {
		return 0
	}

	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(decimal.NewFromFloat(p.Amount))
	}
	sum, _ := total.Float64()
	return sum
}

// refreshOrderPaymentStatus re-derives an order's payment status from the sum
// of its completed payments
func refreshOrderPaymentStatus(db *gorm.DB, order *models.VehicleOrder) {
	paid := sumCompletedPayments(db, order.ID, 0)

	status := models.PaymentStatusUnpaid
	switch {
	case paid <= 0:
		status = models.PaymentStatusUnpaid
	case paid >= order.TotalCostEur:
		status = models.PaymentStatusPaid
	default:
		status = models.PaymentStatusPartiallyPaid
	}

	if status != order.PaymentStatus {
		db.Model(order).Update("payment_status", status)
	}
}
