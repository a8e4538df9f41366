package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pos-service/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// ErrDuplicateIngredient reports an insert that hit the unique-name constraint.
var ErrDuplicateIngredient = errors.New("ingredient already exists")

// ErrIngredientNotFound reports an operation on an ingredient name that has
// no inventory row.
var ErrIngredientNotFound = errors.New("ingredient not found")

// GetInventory retrieves all ingredients sorted by name ascending.
func (s *Store) GetInventory(ctx context.Context) ([]models.Ingredient, error) {
	items := []models.Ingredient{}
	err := s.db.SelectContext(ctx, &items,
		"SELECT name, quantity, unit FROM inventory ORDER BY name ASC")
	return items, err
}

// GetIngredient retrieves a single ingredient by name.
func (s *Store) GetIngredient(ctx context.Context, name string) (*models.Ingredient, error) {
	var ing models.Ingredient
	err := s.db.GetContext(ctx, &ing,
		"SELECT name, quantity, unit FROM inventory WHERE name = $1", name)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrIngredientNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	return &ing, nil
}

// AddIngredient inserts a new inventory row. The name carries a unique
// constraint; duplicates surface as ErrDuplicateIngredient.
func (s *Store) AddIngredient(ctx context.Context, ing *models.Ingredient) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO inventory (name, quantity, unit) VALUES ($1, $2, $3)",
		ing.Name, ing.Quantity, ing.Unit)
	if err != nil && isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", ErrDuplicateIngredient, ing.Name)
	}
	return err
}

// SetIngredientQuantity overwrites quantity and unit for restock or manual
// correction. Not used by order submission.
func (s *Store) SetIngredientQuantity(ctx context.Context, name string, quantity float64, unit string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE inventory SET quantity = $1, unit = $2 WHERE name = $3",
		quantity, unit, name)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrIngredientNotFound, name)
	}
	return nil
}

// DeleteIngredient removes an inventory row.
func (s *Store) DeleteIngredient(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM inventory WHERE name = $1", name)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrIngredientNotFound, name)
	}
	return nil
}

// GetIngredientQuantityTx reads the current stock of one ingredient inside
// an order transaction. sql.ErrNoRows means the recipe references an
// ingredient that is not stocked, which aborts the whole submission.
func (s *Store) GetIngredientQuantityTx(ctx context.Context, tx *sqlx.Tx, name string) (float64, error) {
	var quantity float64
	err := tx.GetContext(ctx, &quantity,
		"SELECT quantity FROM inventory WHERE name = $1", name)
	return quantity, err
}

// DecrementIngredientTx applies an accumulated order decrement as a single
// atomic statement. Read-modify-write in separate statements would lose
// updates under concurrent submissions; the row lock taken by this UPDATE
// is the only coordination between cashiers.
func (s *Store) DecrementIngredientTx(ctx context.Context, tx *sqlx.Tx, name string, delta float64) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE inventory SET quantity = quantity - $1 WHERE name = $2",
		delta, name)
	if err != nil {
		return fmt.Errorf("failed to decrement %s: %w", name, err)
	}
	return nil
}

// MassUpdateInventory sets absolute quantities for a batch of ingredients in
// one transaction.
func (s *Store) MassUpdateInventory(ctx context.Context, updates []models.Ingredient) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, u := range updates {
		if _, err := tx.ExecContext(ctx,
			"UPDATE inventory SET quantity = $1 WHERE name = $2",
			u.Quantity, u.Name); err != nil {
			return fmt.Errorf("failed to update %s: %w", u.Name, err)
		}
	}

	return tx.Commit()
}

// GetRestockRows returns every ingredient with the total recipe demand
// referencing it (0 when no recipe uses it). Scoring and ordering happen in
// the service so the formula stays unit-testable.
func (s *Store) GetRestockRows(ctx context.Context) ([]models.RestockInfo, error) {
	rows := []models.RestockInfo{}
	err := s.db.SelectContext(ctx, &rows, `
		SELECT
			i.name AS ingredient_name,
			i.quantity AS current_quantity,
			COALESCE(SUM(ii.quantity_needed), 0) AS total_quantity_needed
		FROM inventory i
		LEFT JOIN item_ingredients ii ON i.name = ii.ingredient_name
		GROUP BY i.name, i.quantity`)
	return rows, err
}

// GetRecipeTx retrieves the ingredient requirements of one menu item inside
// an order transaction. An item with no recipe returns an empty slice.
func (s *Store) GetRecipeTx(ctx context.Context, tx *sqlx.Tx, itemName string) ([]models.ItemIngredient, error) {
	recipe := []models.ItemIngredient{}
	err := tx.SelectContext(ctx, &recipe,
		"SELECT item_name, ingredient_name, quantity_needed FROM item_ingredients WHERE item_name = $1",
		itemName)
	return recipe, err
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
