package service

import (
	"testing"
	"time"

	"pos-service/internal/models"

	"github.com/stretchr/testify/assert"
)

func orderAt(hour int, total float64) models.Order {
	return models.Order{
		OrderDate:  time.Date(2024, 2, 10, hour, 15, 0, 0, time.UTC),
		TotalPrice: total,
	}
}

func TestAggregateHourlySales(t *testing.T) {
	orders := []models.Order{
		orderAt(11, 12.50),
		orderAt(11, 8.30),
		orderAt(9, 21.00),
		orderAt(13, 5.75),
	}

	hourly := AggregateHourlySales(orders)

	assert.Len(t, hourly, 3)
	assert.Equal(t, 9, hourly[0].Hour)
	assert.Equal(t, 11, hourly[1].Hour)
	assert.Equal(t, 13, hourly[2].Hour)

	assert.Equal(t, int64(2), hourly[1].TotalOrders)
	assert.InDelta(t, 20.80, hourly[1].OrderValue, 0.001)
}

func TestAggregateHourlySalesEmpty(t *testing.T) {
	hourly := AggregateHourlySales(nil)
	assert.Empty(t, hourly)
}
