package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"gopkg.in/yaml.v3"
)

type account struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	Password string `yaml:"password"`
}

type member struct {
	Name       string `yaml:"name"`
	Email      string `yaml:"email"`
	Phone      string `yaml:"phone"`
	Department string `yaml:"department"`
	Role       string `yaml:"role"`
	Password   string `yaml:"password,omitempty"`
}

type fixture struct {
	Company   string   `yaml:"company"`
	Admin     account  `yaml:"admin"`
	HR        *member  `yaml:"hr,omitempty"`
	Employees []member `yaml:"employees"`
}

func loadFixture(r io.Reader) (fixture, error) {
	var f fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return fixture{}, fmt.Errorf("decode fixture: %w", err)
	}
	if f.Admin.Email == "" || f.Admin.Password == "" {
		return fixture{}, errors.New("fixture: admin email and password are required")
	}
	return f, nil
}

type seedResult struct {
	Created int
	Skipped int
}

// seed signs in as the fixture admin, registering it first when needed, and
// creates every listed member through the employee service. Members whose
// email already exists are skipped.
func seed(ctx context.Context, authSvc auth.AuthService, employeeSvc employee.EmployeeService, hrRole func(ctx context.Context, userID string) error, f fixture) (seedResult, error) {
	var result seedResult

	session, err := authSvc.Login(ctx, auth.LoginRequest{Email: f.Admin.Email, Password: f.Admin.Password})
	if errors.Is(err, auth.ErrInvalidCredentials) {
		session, err = authSvc.Register(ctx, auth.RegisterRequest{
			CompanyName: f.Company,
			Name:        f.Admin.Name,
			Email:       f.Admin.Email,
			Phone:       f.Admin.Phone,
			Password:    f.Admin.Password,
		})
		if err == nil {
			result.Created++
		}
	}
	if err != nil {
		return result, fmt.Errorf("admin account: %w", err)
	}

	ctx = user.WithIdentity(ctx, user.Identity{UserID: session.User.ID, Email: session.User.Email, Role: user.RoleAdmin})

	members := f.Employees
	if f.HR != nil {
		members = append([]member{*f.HR}, members...)
	}

	for i, m := range members {
		code := employee.SequentialCode(int64(i + 1))
		req := employee.CreateEmployeeRequest{
			EmployeeCode: &code,
			Name:         m.Name,
			Email:        m.Email,
			Phone:        m.Phone,
			Department:   m.Department,
			Role:         m.Role,
		}
		if m.Password != "" {
			password := m.Password
			req.Password = &password
		}

		created, err := employeeSvc.CreateEmployee(ctx, req)
		if errors.Is(err, employee.ErrEmailExists) || errors.Is(err, employee.ErrEmployeeCodeExists) {
			slog.Info("seed: skipping existing employee", "email", m.Email, "code", code)
			result.Skipped++
			continue
		}
		if err != nil {
			return result, fmt.Errorf("create %s: %w", m.Email, err)
		}

		if f.HR != nil && i == 0 && hrRole != nil {
			if err := hrRole(ctx, created.Employee.UserID); err != nil {
				return result, fmt.Errorf("promote %s: %w", m.Email, err)
			}
		}
		slog.Info("seed: employee created", "email", m.Email, "code", created.Employee.EmployeeCode)
		result.Created++
	}

	return result, nil
}
