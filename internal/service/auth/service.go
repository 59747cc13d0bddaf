package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	registerDepartment = "Management"
	registerJobTitle   = "Administrator"
)

type AuthServiceImpl struct {
	user.UserRepository
	employee.EmployeeRepository
	jwt.Service
	tx  database.Transactor
	now func() time.Time
}

func NewAuthService(tx database.Transactor, userRepository user.UserRepository, employeeRepository employee.EmployeeRepository, jwtService jwt.Service, now func() time.Time) auth.AuthService {
	if now == nil {
		now = time.Now
	}
	return &AuthServiceImpl{
		UserRepository:     userRepository,
		EmployeeRepository: employeeRepository,
		Service:            jwtService,
		tx:                 tx,
		now:                now,
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := uuid.NewV7()
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate user id: %w", err)
	}
	employeeID, err := uuid.NewV7()
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate employee id: %w", err)
	}

	now := a.now()
	var created user.User
	err = a.tx.WithinTx(ctx, func(ctx context.Context) error {
		created, err = a.UserRepository.Create(ctx, user.User{
			ID:           userID.String(),
			CompanyName:  req.CompanyName,
			Name:         req.Name,
			Email:        req.Email,
			Phone:        req.Phone,
			PasswordHash: passwordHash,
			Role:         user.RoleAdmin,
		})
		if err != nil {
			return err
		}

		_, err = a.EmployeeRepository.Create(ctx, employee.Employee{
			ID:           employeeID.String(),
			EmployeeCode: employee.GenerateCode(now),
			UserID:       created.ID,
			Name:         req.Name,
			Email:        req.Email,
			Phone:        req.Phone,
			Department:   registerDepartment,
			Role:         registerJobTitle,
			Status:       employee.StatusActive,
			JoinDate:     now,
		})
		return err
	})
	if err != nil {
		if errors.Is(err, user.ErrUserEmailExists) || errors.Is(err, employee.ErrEmailExists) {
			return auth.TokenResponse{}, user.ErrUserEmailExists
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to register: %w", err)
	}

	slog.Info("account registered", "user_id", created.ID, "company", created.CompanyName)
	return a.issueToken(created)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueToken(userData)
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context) (user.UserResponse, error) {
	id, err := user.IdentityFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}
	userData, err := a.UserRepository.GetByID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.UserResponse{}, auth.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	return userData.ToResponse(), nil
}

func (a *AuthServiceImpl) issueToken(u user.User) (auth.TokenResponse, error) {
	token, expiresAt, err := a.Service.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return auth.TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      u.ToResponse(),
	}, nil
}
