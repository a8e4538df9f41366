package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIngredientUsageAggregation(t *testing.T) {
	usage := IngredientUsage{}

	// Two meals each containing one "bun" must consume flour at 2x the
	// single-item recipe quantity.
	usage.Add("flour", 10)
	usage.Add("flour", 10)
	usage.Add("sesame", 0.5)

	assert.Equal(t, 20.0, usage["flour"])
	assert.Equal(t, 0.5, usage["sesame"])
}

func TestIngredientUsageAcrossItems(t *testing.T) {
	usage := IngredientUsage{}

	// Different items sharing an ingredient contribute to one total.
	usage.Add("oil", 2)   // fried rice
	usage.Add("oil", 1.5) // orange chicken
	usage.Add("rice", 4)

	assert.Equal(t, 3.5, usage["oil"])
	assert.Equal(t, 4.0, usage["rice"])
}

func TestIngredientUsageSortedNames(t *testing.T) {
	usage := IngredientUsage{}
	usage.Add("soy sauce", 1)
	usage.Add("chicken", 3)
	usage.Add("rice", 2)

	assert.Equal(t, []string{"chicken", "rice", "soy sauce"}, usage.SortedNames())
}

func TestSubmitOrderRequestValidation(t *testing.T) {
	total := 35.50

	tests := []struct {
		name       string
		req        SubmitOrderRequest
		violations int
	}{
		{
			name: "valid",
			req: SubmitOrderRequest{
				CustomerName: "alex",
				OrderDate:    "2024-02-10 10:00:00",
				TotalPrice:   &total,
				Items: []MealRequest{
					{MealType: "bowl", MealItems: []MealItemRequest{{ItemName: "Orange Chicken"}}},
				},
			},
			violations: 0,
		},
		{
			name:       "everything missing",
			req:        SubmitOrderRequest{},
			violations: 4,
		},
		{
			name: "bad date and empty item name",
			req: SubmitOrderRequest{
				CustomerName: "alex",
				OrderDate:    "not-a-date",
				TotalPrice:   &total,
				Items: []MealRequest{
					{MealType: "bowl", MealItems: []MealItemRequest{{ItemName: ""}}},
				},
			},
			violations: 2,
		},
		{
			name: "meal with no items is valid",
			req: SubmitOrderRequest{
				CustomerName: "alex",
				OrderDate:    "2024-02-10 10:00:00",
				TotalPrice:   &total,
				Items:        []MealRequest{{MealType: "drink"}},
			},
			violations: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.violations == 0 {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
			assert.Len(t, vErr.Violations, tt.violations)
		})
	}
}

func TestSubmitOrderRequestValidationCollectsAll(t *testing.T) {
	// All violations must be reported together, not just the first.
	req := SubmitOrderRequest{
		Items: []MealRequest{
			{MealType: "", MealItems: []MealItemRequest{{ItemName: ""}}},
		},
	}

	err := req.Validate()
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Violations, "customer_name is required")
	assert.Contains(t, vErr.Violations, "order_date is required")
	assert.Contains(t, vErr.Violations, "total_price is required")
	assert.Contains(t, vErr.Violations, "items[0].meal_type is required")
	assert.Contains(t, vErr.Violations, "items[0].meal_items[0].item_name is required")
}

func TestParseOrderDate(t *testing.T) {
	ts, err := parseOrderDate("2024-02-10 10:00:00")
	assert.NoError(t, err)
	assert.Equal(t, 10, ts.Hour())

	_, err = parseOrderDate("2024-02-10T10:00:00Z")
	assert.NoError(t, err)

	_, err = parseOrderDate("tomorrow")
	assert.Error(t, err)
}

func TestComputeOrderTotal(t *testing.T) {
	prices := map[string]float64{
		"base_bowl":         8.30,
		"base_plate":        9.80,
		"base_bigger_plate": 11.30,
	}

	items := []MealRequest{
		{MealType: "bowl"},
		{MealType: "Bigger Plate"},
		{MealType: "mystery"},
	}

	assert.InDelta(t, 19.60, computeOrderTotal(items, prices), 0.001)
}
