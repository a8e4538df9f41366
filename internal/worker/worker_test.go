package worker

import (
	"testing"

	"pos-service/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSelectAlerts(t *testing.T) {
	rows := []models.RestockInfo{
		{IngredientName: "flour", CurrentQuantity: 5, TotalQuantityNeeded: 50, PriorityScore: 0.9},
		{IngredientName: "oil", CurrentQuantity: 200, TotalQuantityNeeded: 50, PriorityScore: 0.25},
		{IngredientName: "rice", CurrentQuantity: 10, TotalQuantityNeeded: 40, PriorityScore: 0.75},
	}
	usage := map[string]float64{"flour": 10, "oil": 2}

	alerts := SelectAlerts(rows, usage, 0.75)

	// rice is above threshold but this order did not touch it.
	assert.Len(t, alerts, 1)
	assert.Equal(t, "flour", alerts[0].IngredientName)
}

func TestSelectAlertsThresholdInclusive(t *testing.T) {
	rows := []models.RestockInfo{
		{IngredientName: "rice", PriorityScore: 0.75},
	}
	usage := map[string]float64{"rice": 4}

	assert.Len(t, SelectAlerts(rows, usage, 0.75), 1)
	assert.Empty(t, SelectAlerts(rows, usage, 0.76))
}

func TestSelectAlertsNoUsage(t *testing.T) {
	rows := []models.RestockInfo{
		{IngredientName: "flour", PriorityScore: 0.99},
	}

	assert.Empty(t, SelectAlerts(rows, nil, 0.5))
}
