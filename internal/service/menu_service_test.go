package service

import (
	"encoding/json"
	"testing"

	"pos-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCustomerPrices(t *testing.T) {
	rows := []models.Price{
		{Name: "base_bowl", Price: 8.30},
		{Name: "base_plate", Price: 9.80},
		{Name: "ala m reg", Price: 5.20},
		{Name: "ftn drk s", Price: 2.10},
		{Name: "something_unknown", Price: 99.99},
	}

	prices := BuildCustomerPrices(rows)

	assert.Equal(t, 8.30, prices.Combo.Bowl)
	assert.Equal(t, 9.80, prices.Combo.Plate)
	assert.Equal(t, 5.20, prices.ALaCarte.Regular["Medium"])
	assert.Equal(t, 2.10, prices.Drinks["Small"])

	// Missing rows keep their zero placeholders.
	assert.Equal(t, 0.0, prices.Combo.BiggerPlate)
	assert.Equal(t, 0.0, prices.Appetizers["Large"])

	// The upcharge default survives when no row overrides it.
	assert.Equal(t, 1.50, prices.Combo.PremiumUpcharge)
}

func TestFilterPriceUpdates(t *testing.T) {
	price := 10.50

	valid := filterPriceUpdates([]PriceUpdate{
		{Name: "base_plate", Price: &price},
		{Name: "", Price: &price},
		{Name: "base_bowl"},
	})

	// Only the complete entry survives; a name with no price must not zero
	// the row.
	assert.Equal(t, []models.Price{{Name: "base_plate", Price: 10.50}}, valid)
}

func TestFilterPriceUpdatesOmittedPriceField(t *testing.T) {
	var changes []PriceUpdate
	require.NoError(t, json.Unmarshal(
		[]byte(`[{"name":"base_bowl"},{"name":"base_plate","price":9.80}]`), &changes))

	valid := filterPriceUpdates(changes)

	assert.Len(t, valid, 1)
	assert.Equal(t, "base_plate", valid[0].Name)
	assert.Equal(t, 9.80, valid[0].Price)
}

func TestHashPassword(t *testing.T) {
	// Hex sha256, compatible with the stored pass_hash values.
	assert.Equal(t,
		"5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
		HashPassword("password"))
	assert.NotEqual(t, HashPassword("a"), HashPassword("b"))
}
