package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"pos-service/internal/models"
)

const employeeColumns = "id, first_name, last_name, email, phone_number, is_manager"

// GetEmployees retrieves all employee accounts.
func (s *Store) GetEmployees(ctx context.Context) ([]models.Employee, error) {
	employees := []models.Employee{}
	err := s.db.SelectContext(ctx, &employees,
		"SELECT "+employeeColumns+" FROM employees ORDER BY id")
	return employees, err
}

// GetEmployeeByCredentials looks up an employee by email and password hash.
// Returns nil without error when no row matches.
func (s *Store) GetEmployeeByCredentials(ctx context.Context, email, passHash string) (*models.Employee, error) {
	var emp models.Employee
	err := s.db.GetContext(ctx, &emp,
		"SELECT "+employeeColumns+" FROM employees WHERE email = $1 AND pass_hash = $2",
		email, passHash)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// GetEmployeeByGoogleID looks up an employee by their linked Google account.
// Returns nil without error when no row matches.
func (s *Store) GetEmployeeByGoogleID(ctx context.Context, googleID string) (*models.Employee, error) {
	var emp models.Employee
	err := s.db.GetContext(ctx, &emp,
		"SELECT "+employeeColumns+" FROM employees WHERE google_id = $1", googleID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// CreateEmployee inserts a new employee account.
func (s *Store) CreateEmployee(ctx context.Context, emp *models.Employee) error {
	query := `
		INSERT INTO employees (first_name, last_name, email, phone_number, is_manager, pass_hash, google_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	return s.db.GetContext(ctx, &emp.ID, query,
		emp.FirstName, emp.LastName, emp.Email, emp.PhoneNumber,
		emp.IsManager, emp.PassHash, emp.GoogleID)
}

// EmployeeUpdate holds the fields of a partial employee update. Nil fields
// are left untouched.
type EmployeeUpdate struct {
	FirstName   *string
	LastName    *string
	Email       *string
	PhoneNumber *string
	IsManager   *bool
	PassHash    *string
}

// UpdateEmployee applies a partial update to one employee.
func (s *Store) UpdateEmployee(ctx context.Context, id int64, upd EmployeeUpdate) error {
	fields := []string{}
	args := []interface{}{}

	appendField := func(column string, value interface{}) {
		args = append(args, value)
		fields = append(fields, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.FirstName != nil {
		appendField("first_name", *upd.FirstName)
	}
	if upd.LastName != nil {
		appendField("last_name", *upd.LastName)
	}
	if upd.Email != nil {
		appendField("email", *upd.Email)
	}
	if upd.PhoneNumber != nil {
		appendField("phone_number", *upd.PhoneNumber)
	}
	if upd.IsManager != nil {
		appendField("is_manager", *upd.IsManager)
	}
	if upd.PassHash != nil {
		appendField("pass_hash", *upd.PassHash)
	}

	if len(fields) == 0 {
		return fmt.Errorf("no fields to update")
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE employees SET %s WHERE id = $%d",
		strings.Join(fields, ", "), len(args))

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("employee not found: %d", id)
	}
	return nil
}

// DeleteEmployee removes an employee account.
func (s *Store) DeleteEmployee(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM employees WHERE id = $1", id)
	return err
}
