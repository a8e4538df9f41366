package models

import "time"

// Order represents one customer transaction at the register.
type Order struct {
	ID           int64     `db:"id" json:"id"`
	CustomerName string    `db:"customer_name" json:"customer_name"`
	OrderDate    time.Time `db:"order_date" json:"order_date"`
	EmployeeID   *int64    `db:"employee_id" json:"employee_id,omitempty"`
	TotalPrice   float64   `db:"total_price" json:"total_price"`
}

// Meal is a grouping of items within an order (bowl, plate, ...).
type Meal struct {
	ID       int64  `db:"id" json:"id"`
	OrderID  int64  `db:"order_id" json:"order_id"`
	MealType string `db:"meal_type" json:"meal_type"`
}

// MealItem is one menu item instance inside a meal.
type MealItem struct {
	MealID   int64  `db:"meal_id" json:"meal_id"`
	ItemName string `db:"item_name" json:"item_name"`
}

// Ingredient is a stocked raw material. Quantity may go negative when the
// negative-stock policy allows overselling.
type Ingredient struct {
	Name     string  `db:"name" json:"name"`
	Quantity float64 `db:"quantity" json:"quantity"`
	Unit     string  `db:"unit" json:"unit"`
}

// ItemIngredient maps a menu item to one ingredient it consumes.
type ItemIngredient struct {
	ItemName       string  `db:"item_name" json:"item_name"`
	IngredientName string  `db:"ingredient_name" json:"ingredient_name"`
	QuantityNeeded float64 `db:"quantity_needed" json:"quantity_needed"`
}

// RestockInfo is the derived restock urgency row for one ingredient.
type RestockInfo struct {
	IngredientName      string  `db:"ingredient_name" json:"ingredient_name"`
	CurrentQuantity     float64 `db:"current_quantity" json:"current_quantity"`
	TotalQuantityNeeded float64 `db:"total_quantity_needed" json:"total_quantity_needed"`
	PriorityScore       float64 `json:"priority_score"`
}

// Employee is a register or manager account.
type Employee struct {
	ID          int64   `db:"id" json:"id"`
	FirstName   string  `db:"first_name" json:"first_name"`
	LastName    string  `db:"last_name" json:"last_name"`
	Email       string  `db:"email" json:"email"`
	PhoneNumber string  `db:"phone_number" json:"phone_number"`
	IsManager   bool    `db:"is_manager" json:"is_manager"`
	PassHash    string  `db:"pass_hash" json:"-"`
	GoogleID    *string `db:"google_id" json:"-"`
}

// MenuItem is an orderable item on the menu.
type MenuItem struct {
	Name string `db:"name" json:"name"`
	Type string `db:"type" json:"type"`
}

// Price is one named price row (base meals, a la carte sizes, drinks, ...).
type Price struct {
	Name  string  `db:"name" json:"name"`
	Price float64 `db:"price" json:"price"`
}

// Translation caches one English to Spanish translation.
type Translation struct {
	En string `db:"en" json:"en"`
	Es string `db:"es" json:"es"`
}

// OrderSummary is a row of the paginated order listing joined with the
// employee who rang it up.
type OrderSummary struct {
	ID                int64     `db:"id" json:"id"`
	CustomerName      string    `db:"customer_name" json:"customer_name"`
	OrderDate         time.Time `db:"order_date" json:"order_date"`
	EmployeeFirstName string    `db:"employee_first_name" json:"employee_first_name"`
	EmployeeLastName  string    `db:"employee_last_name" json:"employee_last_name"`
	TotalPrice        float64   `db:"total_price" json:"total_price"`
}

// MealDetail groups the items of one meal for the order-details view.
type MealDetail struct {
	MealType string   `json:"meal_type"`
	Items    []string `json:"items"`
}

// SalesTrendPoint is the per-day order count for one item.
type SalesTrendPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// HourlySales aggregates orders rung up within one hour of the day.
type HourlySales struct {
	Hour        int     `json:"hour"`
	TotalOrders int64   `json:"totalOrders"`
	OrderValue  float64 `json:"orderValue"`
}

// ProductUsage is the total amount of one ingredient consumed over a date range.
type ProductUsage struct {
	IngredientName string  `db:"ingredient_name" json:"ingredient_name"`
	TotalUsed      float64 `db:"total_used" json:"total_used"`
}
