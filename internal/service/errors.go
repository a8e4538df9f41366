package service

import (
	"fmt"
	"strings"
)

// ValidationError collects every violation found in a request so the caller
// can fix them all at once instead of resubmitting per field.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// MissingIngredientError aborts an order submission when a recipe references
// an ingredient absent from inventory. The whole transaction rolls back.
type MissingIngredientError struct {
	Ingredient string
}

func (e *MissingIngredientError) Error() string {
	return fmt.Sprintf("ingredient '%s' not found in inventory", e.Ingredient)
}

// InsufficientStockError aborts an order submission under the reject
// negative-stock policy.
type InsufficientStockError struct {
	Ingredient string
	Required   float64
	Available  float64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough '%s' in inventory: required %.2f, available %.2f",
		e.Ingredient, e.Required, e.Available)
}

// TotalMismatchError rejects a client-supplied total that disagrees with the
// server-side recomputation.
type TotalMismatchError struct {
	Supplied float64
	Computed float64
}

func (e *TotalMismatchError) Error() string {
	return fmt.Sprintf("total_price %.2f does not match computed total %.2f",
		e.Supplied, e.Computed)
}
