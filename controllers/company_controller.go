package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emerald-motors/vehicle-trade-api/config"
	"github.com/emerald-motors/vehicle-trade-api/models"
)

// GetCompanies handles GET /api/companies - lists the operation's own trading
// entities for the company selectors
func GetCompanies(c *gin.Context) {
	db := config.GetDB()

	var companies []models.Company
	if err := db.Order("name").Find(&companies).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load companies",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    companies,
	})
}
