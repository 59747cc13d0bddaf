package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
)

// CurrentEmployee resolves the employee record of the acting user.
func CurrentEmployee(ctx context.Context, repo EmployeeRepository) (Employee, error) {
	id, err := user.IdentityFromContext(ctx)
	if err != nil {
		return Employee{}, err
	}
	return repo.GetByUserID(ctx, id.UserID)
}

// GenerateCode returns the default human-readable employee code.
func GenerateCode(now time.Time) string {
	return fmt.Sprintf("EMP%d", now.UnixMilli())
}

// SequentialCode returns codes of the form EMP001 used for seeded data.
func SequentialCode(n int64) string {
	return fmt.Sprintf("EMP%03d", n)
}
