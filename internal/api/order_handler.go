package api

import (
	"net/http"
	"strconv"

	"pos-service/internal/service"
	"pos-service/internal/store"

	"github.com/gin-gonic/gin"
)

// submitOrder handles POST /submit-order
func (h *Handler) submitOrder(c *gin.Context) {
	var req service.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := h.orders.SubmitOrder(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// getOrders handles GET /orders with pagination and substring filters
func (h *Handler) getOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	filter := store.OrderFilter{
		Customer: c.Query("customer"),
		Date:     c.Query("date"),
		Employee: c.Query("employee"),
		Price:    c.Query("price"),
		Page:     page,
		Limit:    limit,
	}

	orders, err := h.orders.GetOrders(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// getOrderDetails handles GET /orders/:id/details
func (h *Handler) getOrderDetails(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
		return
	}

	details, err := h.orders.GetOrderDetails(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"details": details})
}
