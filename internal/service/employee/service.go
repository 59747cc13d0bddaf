package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	userRepo     user.UserRepository
	tx           database.Transactor
	now          func() time.Time
}

func NewEmployeeService(tx database.Transactor, employeeRepo employee.EmployeeRepository, userRepo user.UserRepository, now func() time.Time) employee.EmployeeService {
	if now == nil {
		now = time.Now
	}
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		userRepo:     userRepo,
		tx:           tx,
		now:          now,
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	resp := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		resp = append(resp, e.ToResponse())
	}
	return resp, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return e.ToResponse(), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return employee.CreateEmployeeResponse{}, err
	}

	identity, err := user.IdentityFromContext(ctx)
	if err != nil {
		return employee.CreateEmployeeResponse{}, err
	}
	creator, err := s.userRepo.GetByID(ctx, identity.UserID)
	if err != nil {
		return employee.CreateEmployeeResponse{}, fmt.Errorf("failed to load acting user: %w", err)
	}

	now := s.now()
	code := employee.GenerateCode(now)
	if req.EmployeeCode != nil {
		code = *req.EmployeeCode
	}

	exists, err := s.employeeRepo.ExistsByEmailOrCode(ctx, req.Email, code)
	if err != nil {
		return employee.CreateEmployeeResponse{}, fmt.Errorf("failed to check existing employee: %w", err)
	}
	if exists {
		return employee.CreateEmployeeResponse{}, employee.ErrEmailExists
	}

	password := employee.DefaultPassword
	usedDefault := true
	if req.Password != nil {
		password = *req.Password
		usedDefault = false
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return employee.CreateEmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := uuid.NewV7()
	if err != nil {
		return employee.CreateEmployeeResponse{}, fmt.Errorf("failed to generate user id: %w", err)
	}
	employeeID, err := uuid.NewV7()
	if err != nil {
		return employee.CreateEmployeeResponse{}, fmt.Errorf("failed to generate employee id: %w", err)
	}

	var created employee.Employee
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.userRepo.Create(ctx, user.User{
			ID:           userID.String(),
			CompanyName:  creator.CompanyName,
			Name:         req.Name,
			Email:        req.Email,
			Phone:        req.Phone,
			PasswordHash: string(hash),
			Role:         user.RoleEmployee,
		}); err != nil {
			return err
		}

		created, err = s.employeeRepo.Create(ctx, employee.Employee{
			ID:           employeeID.String(),
			EmployeeCode: code,
			UserID:       userID.String(),
			Name:         req.Name,
			Email:        req.Email,
			Phone:        req.Phone,
			Department:   req.Department,
			Role:         req.Role,
			Status:       employee.StatusActive,
			JoinDate:     now,
		})
		return err
	})
	if err != nil {
		if errors.Is(err, user.ErrUserEmailExists) {
			return employee.CreateEmployeeResponse{}, employee.ErrEmailExists
		}
		if errors.Is(err, employee.ErrEmailExists) || errors.Is(err, employee.ErrEmployeeCodeExists) {
			return employee.CreateEmployeeResponse{}, err
		}
		return employee.CreateEmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.Info("employee created", "employee_id", created.ID, "code", created.EmployeeCode, "by", identity.UserID)
	return employee.CreateEmployeeResponse{
		Employee:            created.ToResponse(),
		UsedDefaultPassword: usedDefault,
	}, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var updated employee.Employee
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.employeeRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		req.Apply(&current)

		updated, err = s.employeeRepo.Update(ctx, current)
		if err != nil {
			return err
		}

		// The login user mirrors the contact fields.
		if req.Name == nil && req.Email == nil && req.Phone == nil {
			return nil
		}
		account, err := s.userRepo.GetByID(ctx, updated.UserID)
		if err != nil {
			return err
		}
		account.Name, account.Email, account.Phone = updated.Name, updated.Email, updated.Phone
		return s.userRepo.Update(ctx, account)
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserEmailExists):
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		case errors.Is(err, employee.ErrEmployeeNotFound),
			errors.Is(err, employee.ErrEmailExists),
			errors.Is(err, employee.ErrEmployeeCodeExists):
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return updated.ToResponse(), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	identity, err := user.IdentityFromContext(ctx)
	if err != nil {
		return err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		target, err := s.employeeRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if target.UserID == identity.UserID {
			return employee.ErrCannotDeleteSelf
		}
		if err := s.employeeRepo.Delete(ctx, id); err != nil {
			return err
		}
		if err := s.userRepo.Delete(ctx, target.UserID); err != nil && !errors.Is(err, user.ErrUserNotFound) {
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) || errors.Is(err, employee.ErrCannotDeleteSelf) {
			return err
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	slog.Info("employee deleted", "employee_id", id, "by", identity.UserID)
	return nil
}
