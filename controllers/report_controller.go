package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/emerald-motors/vehicle-trade-api/config"
	"github.com/emerald-motors/vehicle-trade-api/models"
)

// ExportOrdersReport handles GET /api/reports/orders.xlsx - streams the order
// book as a spreadsheet, optionally restricted to a calendar year
func ExportOrdersReport(c *gin.Context) {
	db := config.GetDB()
	query := db.Model(&models.VehicleOrder{})

	if year := c.Query("year"); year != "" {
		query = query.Where("order_date >= ? AND order_date <= ?",
			fmt.Sprintf("%s-01-01", year), fmt.Sprintf("%s-12-31", year))
	}

	var orders []models.VehicleOrder
	if err := query.Order("order_date, id").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load orders for report",
			},
		})
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Orders"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "REPORT_ERROR",
				"message": "Failed to build report",
			},
		})
		return
	}

	headings := []string{
		"OrderDate", "Make", "Model", "Colour", "VIN",
		"Units", "UnitPriceEUR", "TotalCostEUR", "DepositTotalEUR", "BalanceEUR",
		"Status", "PaymentStatus",
	}
	col := 'A'
	for _, h := range headings {
		f.SetCellValue(sheet, string(col)+"1", h)
		col++
	}

	for i, o := range orders {
		row := fmt.Sprint(i + 2)
		f.SetCellValue(sheet, "A"+row, o.OrderDate)
		f.SetCellValue(sheet, "B"+row, o.VehicleMake)
		f.SetCellValue(sheet, "C"+row, o.VehicleModel)
		f.SetCellValue(sheet, "D"+row, o.Colour)
		f.SetCellValue(sheet, "E"+row, o.Vin)
		f.SetCellValue(sheet, "F"+row, o.UnitsOrdered)
		f.SetCellValue(sheet, "G"+row, o.UnitPriceEur)
		f.SetCellValue(sheet, "H"+row, o.TotalCostEur)
		f.SetCellValue(sheet, "I"+row, o.DepositTotalEur)
		f.SetCellValue(sheet, "J"+row, o.BalanceEur)
		f.SetCellValue(sheet, "K"+row, o.Status)
		f.SetCellValue(sheet, "L"+row, o.PaymentStatus)
	}

	filename := "orders.xlsx"
	if year := c.Query("year"); year != "" {
		filename = fmt.Sprintf("orders-%s.xlsx", year)
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+filename)
	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
