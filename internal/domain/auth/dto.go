package auth

import (
	"strings"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
)

const MinPasswordLength = 6

type RegisterRequest struct {
	CompanyName string `json:"companyName"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Password    string `json:"password"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	r.CompanyName = strings.TrimSpace(r.CompanyName)
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)

	if validator.IsEmpty(r.CompanyName) {
		errs.Add("companyName", "Company name is required")
	}
	if len(r.CompanyName) > 255 {
		errs.Add("companyName", "Company name must not exceed 255 characters")
	}
	if validator.IsEmpty(r.Name) {
		errs.Add("name", "Name is required")
	}
	if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "Valid email is required")
	}
	if r.Phone != "" && !validator.IsValidPhone(r.Phone) {
		errs.Add("phone", "Phone must contain digits only")
	}
	if len(r.Password) < MinPasswordLength {
		errs.Add("password", "Password must be at least 6 characters")
	}

	return errs.Err()
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "Valid email is required")
	}
	if r.Password == "" {
		errs.Add("password", "Password is required")
	}

	return errs.Err()
}

// TokenResponse is written at the top level of the envelope, next to
// success, so the SPA can read token and user directly.
type TokenResponse struct {
	Token     string            `json:"token"`
	ExpiresAt int64             `json:"expiresAt"`
	User      user.UserResponse `json:"user"`
}
