package models

import "time"

// Event types
const (
	EventTypeOrderSubmitted = "ORDER_SUBMITTED"
	EventTypeLowStock       = "LOW_STOCK"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderSubmittedEvent is published after an order transaction commits.
// IngredientUsage carries the aggregated decrements so downstream consumers
// do not need to re-derive them from recipes.
type OrderSubmittedEvent struct {
	BaseEvent
	OrderID         int64              `json:"order_id"`
	CustomerName    string             `json:"customer_name"`
	EmployeeID      *int64             `json:"employee_id,omitempty"`
	TotalPrice      float64            `json:"total_price"`
	Meals           []MealData         `json:"meals"`
	IngredientUsage map[string]float64 `json:"ingredient_usage"`
}

// MealData represents one meal in an event payload.
type MealData struct {
	MealType string   `json:"meal_type"`
	Items    []string `json:"items"`
}

// LowStockEvent is published by the stock-alert worker when an ingredient's
// restock priority crosses the alert threshold.
type LowStockEvent struct {
	BaseEvent
	IngredientName string  `json:"ingredient_name"`
	Quantity       float64 `json:"quantity"`
	QuantityNeeded float64 `json:"quantity_needed"`
	PriorityScore  float64 `json:"priority_score"`
}
