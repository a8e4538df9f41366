package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyLoginEmptyPassword(t *testing.T) {
	svc := NewStaffService(nil, "")

	// Rejected before any store lookup; a google-only account must not be
	// reachable with a blank password.
	emp, err := svc.VerifyLogin(context.Background(), "manager@example.com", "")
	assert.NoError(t, err)
	assert.Nil(t, emp)
}

func TestCredentialHash(t *testing.T) {
	assert.Equal(t, HashPassword("secret"), credentialHash("secret"))

	// Google-only accounts store an empty hash, which no sha256 hex digest
	// can ever equal.
	assert.Empty(t, credentialHash(""))
	assert.NotEqual(t, HashPassword(""), credentialHash(""))
}

func TestCreateEmployeeRequestValidation(t *testing.T) {
	googleID := "108234"

	passwordless := CreateEmployeeRequest{
		FirstName:   "Ada",
		LastName:    "Lam",
		Email:       "ada@example.com",
		PhoneNumber: "555-0101",
	}
	var vErr *ValidationError
	assert.ErrorAs(t, passwordless.Validate(), &vErr)
	assert.Contains(t, vErr.Violations, "either password or google_id is required")

	googleOnly := passwordless
	googleOnly.GoogleID = &googleID
	assert.NoError(t, googleOnly.Validate())
}
