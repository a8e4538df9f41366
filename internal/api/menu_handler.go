package api

import (
	"net/http"

	"pos-service/internal/models"
	"pos-service/internal/service"

	"github.com/gin-gonic/gin"
)

// getMenuItems handles GET /menu-items
func (h *Handler) getMenuItems(c *gin.Context) {
	items, err := h.menu.GetMenuItems(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// addMenuItem handles POST /add-menu-item
func (h *Handler) addMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if err := h.menu.AddMenuItem(c.Request.Context(), &item); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added successfully"})
}

// viewPrices handles GET /view-prices
func (h *Handler) viewPrices(c *gin.Context) {
	prices, err := h.menu.GetPrices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prices)
}

// modifyPrices handles PUT /modify-prices with a list of name/price pairs
func (h *Handler) modifyPrices(c *gin.Context) {
	var changes []service.PriceUpdate
	if err := c.ShouldBindJSON(&changes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if err := h.menu.UpdatePrices(c.Request.Context(), changes); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Prices updated successfully"})
}

// getCustomerPrices handles GET /get-customer-prices
func (h *Handler) getCustomerPrices(c *gin.Context) {
	prices, err := h.menu.GetCustomerPrices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prices)
}
