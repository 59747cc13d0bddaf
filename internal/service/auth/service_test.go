package auth

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
	"github.com/dayflow-hr/dayflow-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (auth.AuthService, *memory.Store, jwt.Service) {
	t.Helper()
	store := memory.NewStore()
	jwtService, err := jwt.NewJWTService("test-secret", "1h")
	require.NoError(t, err)
	now := func() time.Time { return time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC) }
	svc := NewAuthService(store.Transactor(), store.Users(), store.Employees(), jwtService, now)
	return svc, store, jwtService
}

func validRegister() auth.RegisterRequest {
	return auth.RegisterRequest{
		CompanyName: "Dayflow",
		Name:        "Admin User",
		Email:       "Admin@Dayflow.com",
		Phone:       "+91-9876543210",
		Password:    "password123",
	}
}

func TestRegister_CreatesAdminWithEmployeeRecord(t *testing.T) {
	svc, store, jwtService := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, validRegister())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin@dayflow.com", resp.User.Email)
	assert.Equal(t, string(user.RoleAdmin), resp.User.Role)

	emp, err := store.Employees().GetByUserID(ctx, resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Management", emp.Department)
	assert.Equal(t, "EMP1704877200000", emp.EmployeeCode)

	token, err := jwtService.JWTAuth().Decode(resp.Token)
	require.NoError(t, err)
	role, _ := token.Get("role")
	assert.Equal(t, "admin", role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, validRegister())
	require.NoError(t, err)

	_, err = svc.Register(ctx, validRegister())
	assert.ErrorIs(t, err, user.ErrUserEmailExists)
}

func TestRegister_Validation(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Register(context.Background(), auth.RegisterRequest{Email: "bad"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestLogin(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, validRegister())
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		resp, err := svc.Login(ctx, auth.LoginRequest{Email: "ADMIN@dayflow.com", Password: "password123"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "Admin User", resp.User.Name)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Email: "admin@dayflow.com", Password: "nope"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Email: "ghost@dayflow.com", Password: "password123"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestMe(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	reg, err := svc.Register(ctx, validRegister())
	require.NoError(t, err)

	_, err = svc.Me(ctx)
	assert.ErrorIs(t, err, user.ErrIdentityMissing)

	me, err := svc.Me(user.WithIdentity(ctx, user.Identity{UserID: reg.User.ID, Role: user.RoleAdmin}))
	require.NoError(t, err)
	assert.Equal(t, reg.User, me)

	_, err = svc.Me(user.WithIdentity(ctx, user.Identity{UserID: "missing"}))
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}
