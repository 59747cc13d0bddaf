package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
	"github.com/dayflow-hr/dayflow-backend-go/internal/repository/postgresql"
	"github.com/dayflow-hr/dayflow-backend-go/migrations"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// testDB stays nil when TEST_DATABASE_URL is unset; every test then skips.
var testDB *database.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn != "" {
		ctx := context.Background()
		db, err := database.NewPostgreSQLDB(ctx, dsn)
		if err != nil {
			fmt.Fprintln(os.Stderr, "connect test database:", err)
			os.Exit(1)
		}
		if err := database.Migrate(ctx, db, migrations.FS, "up"); err != nil {
			fmt.Fprintln(os.Stderr, "migrate test database:", err)
			os.Exit(1)
		}
		testDB = db
	}

	code := m.Run()
	if testDB != nil {
		testDB.Close()
	}
	os.Exit(code)
}

// setupTestDB skips without a database and truncates every table otherwise.
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()
	if testDB == nil {
		t.Skip("TEST_DATABASE_URL not set")
	}
	_, err := testDB.Exec(context.Background(), `TRUNCATE TABLE payrolls, leave_requests, attendances, employees, users CASCADE`)
	require.NoError(t, err)
	return testDB
}

func newID(t *testing.T) string {
	t.Helper()
	id, err := uuid.NewV7()
	require.NoError(t, err)
	return id.String()
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// createTestEmployee inserts a user and its employee record.
func createTestEmployee(t *testing.T, db *database.DB, code, email string) employee.Employee {
	t.Helper()
	ctx := context.Background()

	u, err := postgresql.NewUserRepository(db).Create(ctx, user.User{
		ID:           newID(t),
		CompanyName:  "Dayflow HR",
		Name:         "Test " + code,
		Email:        email,
		PasswordHash: "hash",
		Role:         user.RoleEmployee,
	})
	require.NoError(t, err)

	e, err := postgresql.NewEmployeeRepository(db).Create(ctx, employee.Employee{
		ID:           newID(t),
		EmployeeCode: code,
		UserID:       u.ID,
		Name:         u.Name,
		Email:        email,
		Department:   "Engineering",
		Role:         "Developer",
		Status:       employee.StatusActive,
		JoinDate:     day(2024, time.January, 2),
	})
	require.NoError(t, err)
	return e
}
