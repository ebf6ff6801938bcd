package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/emerald-motors/vehicle-trade-api/config"
	"github.com/emerald-motors/vehicle-trade-api/models"
)

// ClientInvoiceRequest represents the request body for creating or updating
// a client invoice. The gross amount is recomputed server-side.
type ClientInvoiceRequest struct {
	InvoiceNumber  string  `json:"invoiceNumber" binding:"required"`
	ClientID       uint    `json:"clientId" binding:"required"`
	CompanyID      uint    `json:"companyId" binding:"required"`
	InvoiceDate    string  `json:"invoiceDate" binding:"required"`
	DueDate        string  `json:"dueDate"`
	Currency       string  `json:"currency"`
	AmountNet      float64 `json:"amountNet" binding:"required,gt=0"`
	AmountVat      float64 `json:"amountVat" binding:"gte=0"`
	Status         string  `json:"status" binding:"omitempty,oneof=draft sent partially_paid paid cancelled"`
	RelatedOrderID *uint   `json:"relatedOrderId"`
	Notes          string  `json:"notes"`
}

// GetClientInvoices handles GET /api/client-invoices - lists invoices,
// filtered by the optional year, status and companyId query parameters
func GetClientInvoices(c *gin.Context) {
	db := config.GetDB()
	query := db.Model(&models.ClientInvoice{})

	if year := c.Query("year"); year != "" {
		// Invoice dates travel as ISO strings; a year filter is a date range
		query = query.Where("invoice_date >= ? AND invoice_date <= ?",
			fmt.Sprintf("%s-01-01", year), fmt.Sprintf("%s-12-31", year))
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if companyID := c.Query("companyId"); companyID != "" {
		query = query.Where("company_id = ?", companyID)
	}

	var invoices []models.ClientInvoice
	if err := query.Order("invoice_date DESC, id DESC").Find(&invoices).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load client invoices",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    invoices,
	})
}

// GetClientInvoice handles GET /api/client-invoices/:id - gets a single
// invoice
func GetClientInvoice(c *gin.Context) {
	db := config.GetDB()

	var invoice models.ClientInvoice
	if err := db.First(&invoice, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVOICE_NOT_FOUND",
				"message": "Client invoice not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    invoice,
	})
}

// CreateClientInvoice handles POST /api/client-invoices - creates an invoice
func CreateClientInvoice(c *gin.Context) {
	var req ClientInvoiceRequest
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

	invoice := invoiceFromRequest(&req)
	invoice.RecalculateGross()

	db := config.GetDB()
	if err := db.Create(invoice).Error; err != nil {
		// Check for duplicate invoice number (works with both PostgreSQL and SQLite)
		errMsg := strings.ToLower(err.Error())
		if strings.Contains(errMsg, "duplicate") ||
			strings.Contains(errMsg, "unique constraint") ||
			strings.Contains(errMsg, "unique") {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVOICE_EXISTS",
					"message": "An invoice with this number already exists",
				},
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create client invoice",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    invoice,
	})
}

// UpdateClientInvoice handles PUT /api/client-invoices/:id - replaces an
// invoice's fields and recomputes its gross amount
func UpdateClientInvoice(c *gin.Context) {
	db := config.GetDB()

	var invoice models.ClientInvoice
	if err := db.First(&invoice, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVOICE_NOT_FOUND",
				"message": "Client invoice not found",
			},
		})
		return
	}

	var req ClientInvoiceRequest
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

	updated := invoiceFromRequest(&req)
	updated.ID = invoice.ID
	updated.CreatedAt = invoice.CreatedAt
	updated.RecalculateGross()

	if err := db.Save(updated).Error; err != nil {
		errMsg := strings.ToLower(err.Error())
		if strings.Contains(errMsg, "duplicate") ||
			strings.Contains(errMsg, "unique constraint") ||
			strings.Contains(errMsg, "unique") {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVOICE_EXISTS",
					"message": "An invoice with this number already exists",
				},
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update client invoice",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    updated,
	})
}

// DeleteClientInvoice handles DELETE /api/client-invoices/:id - removes an
// invoice
func DeleteClientInvoice(c *gin.Context) {
	db := config.GetDB()

	var invoice models.ClientInvoice
	if err := db.First(&invoice, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVOICE_NOT_FOUND",
				"message": "Client invoice not found",
			},
		})
		return
	}

	if err := db.Delete(&invoice).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete client invoice",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Client invoice deleted",
	})
}

func invoiceFromRequest(req *ClientInvoiceRequest) *models.ClientInvoice {
	currency := req.Currency
	if currency == "" {
		currency = "EUR"
	}
	status := req.Status
	if status == "" {
		status = models.InvoiceDraft
	}

	return &models.ClientInvoice{
		InvoiceNumber:  req.InvoiceNumber,
		ClientID:       req.ClientID,
		CompanyID:      req.CompanyID,
		InvoiceDate:    req.InvoiceDate,
		DueDate:        req.DueDate,
		Currency:       currency,
		AmountNet:      req.AmountNet,
		AmountVat:      req.AmountVat,
		Status:         status,
		RelatedOrderID: req.RelatedOrderID,
		Notes:          req.Notes,
	}
}
