package api

import (
	"net/http"

	"pos-service/internal/models"

	"github.com/gin-gonic/gin"
)

// getInventory handles GET /inventory
func (h *Handler) getInventory(c *gin.Context) {
	items, err := h.inventory.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

type addInventoryRequest struct {
	Name     string   `json:"name"`
	Quantity *float64 `json:"quantity"`
	Unit     string   `json:"unit"`
}

// addInventory handles POST /inventory
func (h *Handler) addInventory(c *gin.Context) {
	var req addInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	violations := []string{}
	if req.Name == "" {
		violations = append(violations, "name is required")
	}
	if req.Quantity == nil {
		violations = append(violations, "quantity is required")
	}
	if req.Unit == "" {
		violations = append(violations, "unit is required")
	}
	if len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "violations": violations})
		return
	}

	ing := &models.Ingredient{Name: req.Name, Quantity: *req.Quantity, Unit: req.Unit}
	if err := h.inventory.Add(c.Request.Context(), ing); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Added"})
}

type updateInventoryRequest struct {
	Quantity *float64 `json:"quantity"`
	Unit     string   `json:"unit"`
}

// updateInventory handles PUT /inventory/:name (restock / manual correction)
func (h *Handler) updateInventory(c *gin.Context) {
	var req updateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if req.Quantity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "violations": []string{"quantity is required"}})
		return
	}

	if err := h.inventory.SetQuantity(c.Request.Context(), c.Param("name"), *req.Quantity, req.Unit); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Updated"})
}

// deleteInventory handles DELETE /inventory/:name
func (h *Handler) deleteInventory(c *gin.Context) {
	if err := h.inventory.Remove(c.Request.Context(), c.Param("name")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

// getRestockInfo handles GET /inventory-restock-info
func (h *Handler) getRestockInfo(c *gin.Context) {
	info, err := h.inventory.GetRestockInfo(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

type massUpdateEntry struct {
	Name     string   `json:"name"`
	Quantity *float64 `json:"quantity"`
}

type massUpdateRequest struct {
	Updates []massUpdateEntry `json:"updates"`
}

// massInventoryUpdate handles POST /mass-inventory-update
func (h *Handler) massInventoryUpdate(c *gin.Context) {
	var req massUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input format. 'updates' should be a list."})
		return
	}
	if len(req.Updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input format. 'updates' should be a list."})
		return
	}

	updates := make([]models.Ingredient, 0, len(req.Updates))
	for _, u := range req.Updates {
		if u.Name == "" || u.Quantity == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Each update must include 'name' and 'quantity'."})
			return
		}
		updates = append(updates, models.Ingredient{Name: u.Name, Quantity: *u.Quantity})
	}

	if err := h.inventory.MassUpdate(c.Request.Context(), updates); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inventory updated successfully."})
}
