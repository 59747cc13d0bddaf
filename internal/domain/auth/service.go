package auth

import (
	"context"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
)

type AuthService interface {
	// Register creates an admin account with its own employee record
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	// Me returns the user behind the request identity
	Me(ctx context.Context) (user.UserResponse, error)
}
