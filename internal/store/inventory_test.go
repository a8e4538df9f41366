package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert failed: %w", &pq.Error{Code: "23505"})))

	// Other constraint classes and non-pq errors are not duplicates.
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("duplicate key value")))
}

func TestIngredientNotFoundWrapping(t *testing.T) {
	err := fmt.Errorf("%w: flour", ErrIngredientNotFound)

	assert.ErrorIs(t, err, ErrIngredientNotFound)
	assert.Equal(t, "ingredient not found: flour", err.Error())
}
