package controllers

import (
	"errors"
	"net/http"

	"github.com/cleaningmadeasy/laundry-api/config"
	"github.com/cleaningmadeasy/laundry-api/services"
	"github.com/gin-gonic/gin"
)

// GetReport handles GET /api/v1/reports/:type - aggregates order count and
// revenue for a reporting period (admin only). Daily reports take
// ?startDate=YYYY-MM-DD; weekly, monthly and yearly reports also take
// ?endDate=YYYY-MM-DD.
func GetReport(c *gin.Context) {
	reportService := services.NewReportService(config.GetDB())
	report, err := reportService.Generate(c.Param("type"), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": vErr.Message,
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to generate report",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    report,
	})
}
