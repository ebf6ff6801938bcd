package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/emerald-motors/vehicle-trade-api/config"
	"github.com/emerald-motors/vehicle-trade-api/models"
	"github.com/emerald-motors/vehicle-trade-api/utils"
)

// ClientRequest represents the request body for creating or updating a client
type ClientRequest struct {
	CompanyName string `json:"companyName" binding:"required"`
	TradingName string `json:"tradingName"`
	ContactName string `json:"contactName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`

	Street      string `json:"street"`
	Street2     string `json:"street2"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode"`
	Region      string `json:"region"`
	CountryCode string `json:"countryCode" binding:"required"`

	VatNumber          string `json:"vatNumber"`
	RegistrationNumber string `json:"registrationNumber"`

	CocStatus      string `json:"cocStatus" binding:"omitempty,oneof=not_required pending received expired"`
	CocExpiryDate  string `json:"cocExpiryDate"`
	CocDocumentKey string `json:"cocDocumentKey"`

	ExportLicenseStatus string `json:"exportLicenseStatus" binding:"omitempty,oneof=not_required pending valid expired"`
	ExportLicenseNumber string `json:"exportLicenseNumber"`
	ExportLicenseExpiry string `json:"exportLicenseExpiry"`

	PaymentTerms string  `json:"paymentTerms"`
	CreditLimit  float64 `json:"creditLimit" binding:"gte=0"`

	Notes string `json:"notes"`
}

// GetClients handles GET /api/clients - lists clients, filtered by the
// optional search, country and cocStatus query parameters. The enum filters
// run in SQL; the free-text search runs over the fetched collection.
func GetClients(c *gin.Context) {
	db := config.GetDB()
	query := db.Model(&models.Client{})

	if country := c.Query("country"); country != "" {
		query = query.Where("country_code = ?", country)
	}
	if cocStatus := c.Query("cocStatus"); cocStatus != "" {
		query = query.Where("coc_status = ?", cocStatus)
	}

	var clients []models.Client
	if err := query.Order("company_name").Find(&clients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load clients",
			},
		})
		return
	}

	clients = utils.Filter(clients, utils.TextContains(c.Query("search"), func(client models.Client) []string {
		return []string{client.CompanyName, client.TradingName, client.ContactName, client.Email, client.VatNumber}
	}))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    clients,
	})
}

// GetClient handles GET /api/clients/:id - gets a single client
func GetClient(c *gin.Context) {
	db := config.GetDB()

	var client models.Client
	if err := db.First(&client, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CLIENT_NOT_FOUND",
				"message": "Client not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    client,
	})
}

// CreateClient handles POST /api/clients - creates a new client
func CreateClient(c *gin.Context) {
	var req ClientRequest
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

	client := clientFromRequest(&req)

	db := config.GetDB()
	if err := db.Create(client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create client",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    client,
	})
}

// UpdateClient handles PUT /api/clients/:id - replaces a client's fields
func UpdateClient(c *gin.Context) {
	db := config.GetDB()

	var client models.Client
	if err := db.First(&client, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CLIENT_NOT_FOUND",
				"message": "Client not found",
			},
		})
		return
	}

	var req ClientRequest
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

	updated := clientFromRequest(&req)
	updated.ID = client.ID
	updated.CreatedAt = client.CreatedAt

	if err := db.Save(updated).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update client",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    updated,
	})
}

// DeleteClient handles DELETE /api/clients/:id - removes a client
func DeleteClient(c *gin.Context) {
	db := config.GetDB()

	var client models.Client
	if err := db.First(&client, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CLIENT_NOT_FOUND",
				"message": "Client not found",
			},
		})
		return
	}

	if err := db.Delete(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete client",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Client deleted",
	})
}

func clientFromRequest(req *ClientRequest) *models.Client {
	return &models.Client{
		CompanyName:         req.CompanyName,
		TradingName:         req.TradingName,
		ContactName:         req.ContactName,
		Email:               req.Email,
		Phone:               req.Phone,
		Street:              req.Street,
		Street2:             req.Street2,
		City:                req.City,
		PostalCode:          req.PostalCode,
		Region:              req.Region,
		CountryCode:         strings.ToUpper(req.CountryCode),
		VatNumber:           req.VatNumber,
		RegistrationNumber:  req.RegistrationNumber,
		CocStatus:           req.CocStatus,
		CocExpiryDate:       req.CocExpiryDate,
		CocDocumentKey:      req.CocDocumentKey,
		ExportLicenseStatus: req.ExportLicenseStatus,
		ExportLicenseNumber: req.ExportLicenseNumber,
		ExportLicenseExpiry: req.ExportLicenseExpiry,
		PaymentTerms:        req.PaymentTerms,
		CreditLimit:         req.CreditLimit,
		Notes:               req.Notes,
	}
}
