package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"pos-service/internal/models"
	"pos-service/internal/store"
	"pos-service/internal/util"

	"go.uber.org/zap"
)

const googleTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// StaffService handles employee accounts and login verification.
type StaffService struct {
	store              *store.Store
	googleAuthClientID string
	httpClient         *http.Client
	logger             *zap.Logger
}

// NewStaffService creates a new staff service
func NewStaffService(store *store.Store, googleAuthClientID string) *StaffService {
	return &StaffService{
		store:              store,
		googleAuthClientID: googleAuthClientID,
		httpClient:         &http.Client{Timeout: 10 * time.Second},
		logger:             util.GetLogger(),
	}
}

// HashPassword produces the hex sha256 digest stored in pass_hash.
func HashPassword(password string) string {
	digest := sha256.Sum256([]byte(password))
	return hex.EncodeToString(digest[:])
}

// credentialHash returns the pass_hash to store for a new account. Accounts
// created without a password (google-only) get an empty hash, which can
// never equal a sha256 hex digest, so password login stays closed for them.
func credentialHash(password string) string {
	if password == "" {
		return ""
	}
	return HashPassword(password)
}

// VerifyLogin checks email and password against stored credentials. Returns
// nil without error when the credentials do not match any employee. Empty
// passwords never authenticate; google-only accounts have no usable hash.
func (s *StaffService) VerifyLogin(ctx context.Context, email, password string) (*models.Employee, error) {
	ctx, span := util.StartSpan(ctx, "StaffService.VerifyLogin")
	defer span.End()

	if password == "" {
		return nil, nil
	}

	emp, err := s.store.GetEmployeeByCredentials(ctx, email, HashPassword(password))
	if err != nil {
		return nil, err
	}
	if emp == nil {
		s.logger.Info("Login rejected", zap.String("email", email))
		return nil, nil
	}
	return emp, nil
}

// googleTokenClaims is the subset of Google's tokeninfo response we use.
type googleTokenClaims struct {
	Sub      string `json:"sub"`
	Audience string `json:"aud"`
}

// ErrInvalidGoogleToken reports a Google ID token that failed verification.
type ErrInvalidGoogleToken struct {
	Reason string
}

func (e *ErrInvalidGoogleToken) Error() string {
	return "invalid google token: " + e.Reason
}

// GoogleLogin verifies a Google ID token against the tokeninfo endpoint and
// looks up the employee linked to the Google account. Returns nil without
// error when the token is valid but no employee is registered for it.
func (s *StaffService) GoogleLogin(ctx context.Context, idToken string) (*models.Employee, error) {
	ctx, span := util.StartSpan(ctx, "StaffService.GoogleLogin")
	defer span.End()

	claims, err := s.verifyGoogleToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	return s.store.GetEmployeeByGoogleID(ctx, claims.Sub)
}

func (s *StaffService) verifyGoogleToken(ctx context.Context, idToken string) (*googleTokenClaims, error) {
	endpoint := googleTokenInfoURL + "?id_token=" + url.QueryEscape(idToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tokeninfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ErrInvalidGoogleToken{Reason: fmt.Sprintf("tokeninfo returned %d", resp.StatusCode)}
	}

	var claims googleTokenClaims
	if err := json.NewDecoder(resp.Body).Decode(&claims); err != nil {
		return nil, fmt.Errorf("failed to decode tokeninfo response: %w", err)
	}

	if s.googleAuthClientID != "" && claims.Audience != s.googleAuthClientID {
		return nil, &ErrInvalidGoogleToken{Reason: "audience mismatch"}
	}
	return &claims, nil
}

// CreateEmployeeRequest carries a new employee account. Either a password or
// a Google account link must be present.
type CreateEmployeeRequest struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phone_number"`
	IsManager   bool    `json:"is_manager"`
	Password    string  `json:"password"`
	GoogleID    *string `json:"google_id,omitempty"`
}

// Validate reports every missing required field.
func (req *CreateEmployeeRequest) Validate() error {
	violations := []string{}
	if req.FirstName == "" {
		violations = append(violations, "first_name is required")
	}
	if req.LastName == "" {
		violations = append(violations, "last_name is required")
	}
	if req.Email == "" {
		violations = append(violations, "email is required")
	}
	if req.PhoneNumber == "" {
		violations = append(violations, "phone_number is required")
	}
	if req.Password == "" && req.GoogleID == nil {
		violations = append(violations, "either password or google_id is required")
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

// CreateEmployee adds a new employee account.
func (s *StaffService) CreateEmployee(ctx context.Context, req *CreateEmployeeRequest) (*models.Employee, error) {
	ctx, span := util.StartSpan(ctx, "StaffService.CreateEmployee")
	defer span.End()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp := &models.Employee{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		IsManager:   req.IsManager,
		PassHash:    credentialHash(req.Password),
		GoogleID:    req.GoogleID,
	}
	if err := s.store.CreateEmployee(ctx, emp); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	s.logger.Info("Employee created", zap.Int64("employee_id", emp.ID), zap.String("email", emp.Email))
	return emp, nil
}

// UpdateEmployeeRequest carries a partial employee update.
type UpdateEmployeeRequest struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	IsManager   *bool   `json:"is_manager,omitempty"`
	Password    *string `json:"password,omitempty"`
}

// GetEmployees lists all employee accounts.
func (s *StaffService) GetEmployees(ctx context.Context) ([]models.Employee, error) {
	return s.store.GetEmployees(ctx)
}

// UpdateEmployee applies a partial update, hashing any new password.
func (s *StaffService) UpdateEmployee(ctx context.Context, id int64, req *UpdateEmployeeRequest) error {
	ctx, span := util.StartSpan(ctx, "StaffService.UpdateEmployee")
	defer span.End()

	upd := store.EmployeeUpdate{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		IsManager:   req.IsManager,
	}
	if req.Password != nil {
		hash := HashPassword(*req.Password)
		upd.PassHash = &hash
	}

	return s.store.UpdateEmployee(ctx, id, upd)
}

// DeleteEmployee removes an employee account.
func (s *StaffService) DeleteEmployee(ctx context.Context, id int64) error {
	return s.store.DeleteEmployee(ctx, id)
}
