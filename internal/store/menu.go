package store

import (
	"context"
	"fmt"

	"pos-service/internal/models"
)

// GetMenuItems retrieves all menu items.
func (s *Store) GetMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	err := s.db.SelectContext(ctx, &items, "SELECT name, type FROM items ORDER BY name")
	return items, err
}

// AddMenuItem inserts a new menu item.
func (s *Store) AddMenuItem(ctx context.Context, item *models.MenuItem) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO items (name, type) VALUES ($1, $2)", item.Name, item.Type)
	return err
}

// GetPrices retrieves all price rows.
func (s *Store) GetPrices(ctx context.Context) ([]models.Price, error) {
	prices := []models.Price{}
	err := s.db.SelectContext(ctx, &prices, "SELECT name, price FROM prices")
	return prices, err
}

// UpdatePrices applies a batch of price changes in one transaction.
func (s *Store) UpdatePrices(ctx context.Context, changes []models.Price) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, change := range changes {
		if _, err := tx.ExecContext(ctx,
			"UPDATE prices SET price = $1 WHERE name = $2",
			change.Price, change.Name); err != nil {
			return fmt.Errorf("failed to update price for %s: %w", change.Name, err)
		}
	}

	return tx.Commit()
}
