package store

import (
	"context"
	"time"

	"pos-service/internal/models"
)

// GetSalesTrends returns the per-day count of orders containing each item
// between startDate and endDate (inclusive). itemName narrows the result to
// one item when non-empty.
func (s *Store) GetSalesTrends(ctx context.Context, startDate, endDate, itemName string) (map[string][]models.SalesTrendPoint, error) {
	type row struct {
		OrderDay   time.Time `db:"order_day"`
		ItemName   string    `db:"item_name"`
		OrderCount int64     `db:"order_count"`
	}

	query := `
		SELECT o.order_date::date AS order_day, mi.item_name, COUNT(DISTINCT o.id) AS order_count
		FROM orders o
		JOIN meals m ON o.id = m.order_id
		JOIN meal_item mi ON m.id = mi.meal_id
		WHERE o.order_date BETWEEN $1 AND $2`
	args := []interface{}{startDate, endDate}

	if itemName != "" {
		query += " AND mi.item_name = $3"
		args = append(args, itemName)
	}

	query += `
		GROUP BY o.order_date::date, mi.item_name
		ORDER BY o.order_date::date, mi.item_name`

	rows := []row{}
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	trends := map[string][]models.SalesTrendPoint{}
	for _, r := range rows {
		trends[r.ItemName] = append(trends[r.ItemName], models.SalesTrendPoint{
			Date:  r.OrderDay.Format("2006-01-02"),
			Count: r.OrderCount,
		})
	}
	return trends, nil
}

// GetOrdersByHour returns order timestamps and totals for one day, limited
// to orders rung up before the cutoff hour. Aggregation happens in the
// report service.
func (s *Store) GetOrdersByHour(ctx context.Context, reportDate string, upToHour int) ([]models.Order, error) {
	orders := []models.Order{}
	err := s.db.SelectContext(ctx, &orders, `
		SELECT id, customer_name, order_date, employee_id, total_price
		FROM orders
		WHERE order_date::date = $1
		AND EXTRACT(HOUR FROM order_date) < $2`,
		reportDate, upToHour)
	return orders, err
}

// GetProductUsage returns total ingredient consumption across all orders in
// a date range, derived through the recipe mapping.
func (s *Store) GetProductUsage(ctx context.Context, startDate, endDate string) ([]models.ProductUsage, error) {
	usage := []models.ProductUsage{}
	err := s.db.SelectContext(ctx, &usage, `
		SELECT ii.ingredient_name,
		       SUM(ii.quantity_needed) AS total_used
		FROM orders o
		LEFT JOIN meals m ON o.id = m.order_id
		LEFT JOIN meal_item mi ON mi.meal_id = m.id
		LEFT JOIN item_ingredients ii ON mi.item_name = ii.item_name
		WHERE o.order_date BETWEEN $1 AND $2
		  AND ii.ingredient_name IS NOT NULL
		GROUP BY ii.ingredient_name
		ORDER BY ii.ingredient_name`,
		startDate, endDate)
	return usage, err
}
