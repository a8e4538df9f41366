package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// getSalesTrends handles GET /get-sales-trends
func (h *Handler) getSalesTrends(c *gin.Context) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	itemName := c.Query("item_name")

	if startDate == "" || endDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Start and end dates are required"})
		return
	}

	trends, err := h.reports.GetSalesTrends(c.Request.Context(), startDate, endDate, itemName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, trends)
}

// getHourlyReport handles GET /get-x-report and GET /get-z-report; both are
// the same hourly aggregation with a cutoff hour.
func (h *Handler) getHourlyReport(c *gin.Context) {
	reportDate := c.DefaultQuery("report_date", time.Now().Format("2006-01-02"))
	upToHour, err := strconv.Atoi(c.Query("up_to_hour"))
	if err != nil || upToHour <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing parameters"})
		return
	}

	hourly, err := h.reports.GetHourlySales(c.Request.Context(), reportDate, upToHour)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"hourly_sales": hourly})
}

// getProductUsage handles GET /get-productusage
func (h *Handler) getProductUsage(c *gin.Context) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	if startDate == "" || endDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Start and end dates are required"})
		return
	}

	usage, err := h.reports.GetProductUsage(c.Request.Context(), startDate, endDate)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, usage)
}
