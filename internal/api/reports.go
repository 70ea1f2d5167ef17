package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/canteenhq/canteen-backend/internal/service"
	"github.com/canteenhq/canteen-backend/internal/types"
)

type ReportHandler struct {
	reportService service.IReportService
}

func NewReportHandler(reportService service.IReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/reports")
	{
		reports.GET("", h.GetReport)
	}
}

// GetReport returns the admin dashboard aggregates: the lifetime
// payment total and the cumulative redemption count.
func (h *ReportHandler) GetReport(c *gin.Context) {
	_, role, ok := identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	total, err := h.reportService.TotalPayments(c.Request.Context(), role)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	count, err := h.reportService.MealsServedCount(c.Request.Context(), role)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.ReportResponse{
		TotalPayments: total,
		MealsServed:   count,
	})
}
