package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/emerald-motors/vehicle-trade-api/config"
	"github.com/emerald-motors/vehicle-trade-api/models"
	"github.com/emerald-motors/vehicle-trade-api/utils"
)

// SupplierRequest represents the request body for creating or updating a
// supplier
type SupplierRequest struct {
	CompanyName string `json:"companyName" binding:"required"`
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

	ServiceType   string `json:"serviceType" binding:"required"`
	AccountNumber string `json:"accountNumber"`

	PaymentTerms string `json:"paymentTerms"`
	BankDetails  string `json:"bankDetails"`

	ExportLicenseStatus string `json:"exportLicenseStatus" binding:"omitempty,oneof=not_required valid expired"`
	ExportLicenseNumber string `json:"exportLicenseNumber"`
	ExportLicenseExpiry string `json:"exportLicenseExpiry"`

	Notes string `json:"notes"`
}

// GetSuppliers handles GET /api/suppliers - lists suppliers, filtered by the
// optional search and serviceType query parameters
func GetSuppliers(c *gin.Context) {
	db := config.GetDB()
	query := db.Model(&models.Supplier{})

	if serviceType := c.Query("serviceType"); serviceType != "" {
		query = query.Where("service_type = ?", serviceType)
	}

	var suppliers []models.Supplier
	if err := query.Order("company_name").Find(&suppliers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load suppliers",
			},
		})
		return
	}

	suppliers = utils.Filter(suppliers, utils.TextContains(c.Query("search"), func(s models.Supplier) []string {
		return []string{s.CompanyName, s.ContactName, s.Email, s.VatNumber}
	}))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    suppliers,
	})
}

// GetSupplier handles GET /api/suppliers/:id - gets a single supplier
func GetSupplier(c *gin.Context) {
	db := config.GetDB()

	var supplier models.Supplier
	if err := db.First(&supplier, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SUPPLIER_NOT_FOUND",
				"message": "Supplier not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    supplier,
	})
}

// CreateSupplier handles POST /api/suppliers - creates a new supplier
func CreateSupplier(c *gin.Context) {
	var req SupplierRequest
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

	supplier := supplierFromRequest(&req)

	db := config.GetDB()
	if err := db.Create(supplier).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create supplier",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    supplier,
	})
}

// UpdateSupplier handles PUT /api/suppliers/:id - replaces a supplier's
// fields
func UpdateSupplier(c *gin.Context) {
	db := config.GetDB()

	var supplier models.Supplier
	if err := db.First(&supplier, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SUPPLIER_NOT_FOUND",
				"message": "Supplier not found",
			},
		})
		return
	}

	var req SupplierRequest
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

	updated := supplierFromRequest(&req)
	updated.ID = supplier.ID
	updated.CreatedAt = supplier.CreatedAt

	if err := db.Save(updated).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update supplier",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    updated,
	})
}

// DeleteSupplier handles DELETE /api/suppliers/:id - removes a supplier
func DeleteSupplier(c *gin.Context) {
	db := config.GetDB()

	var supplier models.Supplier
	if err := db.First(&supplier, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SUPPLIER_NOT_FOUND",
				"message": "Supplier not found",
			},
		})
		return
	}

	if err := db.Delete(&supplier).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete supplier",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Supplier deleted",
	})
}

func supplierFromRequest(req *SupplierRequest) *models.Supplier {
	return &models.Supplier{
		CompanyName:         req.CompanyName,
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
		ServiceType:         req.ServiceType,
		AccountNumber:       req.AccountNumber,
		PaymentTerms:        req.PaymentTerms,
		BankDetails:         req.BankDetails,
		ExportLicenseStatus: req.ExportLicenseStatus,
		ExportLicenseNumber: req.ExportLicenseNumber,
		ExportLicenseExpiry: req.ExportLicenseExpiry,
		Notes:               req.Notes,
	}
}
