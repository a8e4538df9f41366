package store

import (
	"context"
	"fmt"

	"pos-service/internal/models"

	"github.com/jmoiron/sqlx"
)

// InsertOrderTx inserts the order row and fills in the generated id.
func (s *Store) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, order *models.Order) error {
	query := `
		INSERT INTO orders (customer_name, order_date, employee_id, total_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	return tx.GetContext(ctx, &order.ID, query,
		order.CustomerName, order.OrderDate, order.EmployeeID, order.TotalPrice)
}

// InsertMealTx inserts a meal row tied to an order and fills in the
// generated id.
func (s *Store) InsertMealTx(ctx context.Context, tx *sqlx.Tx, meal *models.Meal) error {
	query := `
		INSERT INTO meals (order_id, meal_type)
		VALUES ($1, $2)
		RETURNING id`

	return tx.GetContext(ctx, &meal.ID, query, meal.OrderID, meal.MealType)
}

// InsertMealItemTx inserts one menu item instance into a meal.
func (s *Store) InsertMealItemTx(ctx context.Context, tx *sqlx.Tx, item *models.MealItem) error {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO meal_item (meal_id, item_name) VALUES ($1, $2)",
		item.MealID, item.ItemName)
	return err
}

// OrderFilter narrows the paginated order listing. Empty fields match
// everything.
type OrderFilter struct {
	Customer string
	Date     string
	Employee string
	Price    string
	Page     int
	Limit    int
}

// GetOrders lists orders joined with the employee who rang them up, newest
// first, filtered by substring match on each populated filter field.
func (s *Store) GetOrders(ctx context.Context, filter OrderFilter) ([]models.OrderSummary, error) {
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	offset := filter.Page * filter.Limit

	orders := []models.OrderSummary{}
	query := `
		SELECT
			o.id,
			o.customer_name,
			o.order_date,
			e.first_name AS employee_first_name,
			e.last_name AS employee_last_name,
			o.total_price
		FROM orders o
		JOIN employees e ON o.employee_id = e.id
		WHERE o.customer_name ILIKE $1
		  AND (TO_CHAR(o.order_date, 'MM/DD/YYYY HH24:MI:SS') ILIKE $2
		       OR TO_CHAR(o.order_date, 'YYYY-MM-DD') ILIKE $2)
		  AND (e.first_name || ' ' || e.last_name) ILIKE $3
		  AND CAST(o.total_price AS TEXT) ILIKE $4
		ORDER BY o.order_date DESC
		LIMIT $5 OFFSET $6`

	err := s.db.SelectContext(ctx, &orders, query,
		"%"+filter.Customer+"%",
		"%"+filter.Date+"%",
		"%"+filter.Employee+"%",
		"%"+filter.Price+"%",
		filter.Limit,
		offset)
	return orders, err
}

// GetOrderDetails returns the meals of one order with their items, grouped
// by meal type.
func (s *Store) GetOrderDetails(ctx context.Context, orderID int64) ([]models.MealDetail, error) {
	type row struct {
		MealType string `db:"meal_type"`
		ItemName string `db:"item_name"`
	}

	rows := []row{}
	err := s.db.SelectContext(ctx, &rows, `
		SELECT m.meal_type, mi.item_name
		FROM meals m
		JOIN meal_item mi ON m.id = mi.meal_id
		WHERE m.order_id = $1
		ORDER BY m.id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order details: %w", err)
	}

	grouped := map[string][]string{}
	order := []string{}
	for _, r := range rows {
		if _, seen := grouped[r.MealType]; !seen {
			order = append(order, r.MealType)
		}
		grouped[r.MealType] = append(grouped[r.MealType], r.ItemName)
	}

	details := make([]models.MealDetail, 0, len(order))
	for _, mealType := range order {
		details = append(details, models.MealDetail{MealType: mealType, Items: grouped[mealType]})
	}
	return details, nil
}
