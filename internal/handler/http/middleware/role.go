package middleware

import (
	"log/slog"
	"net/http"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hr/dayflow-backend-go/internal/handler/http/response"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/authz"
)

// RequirePermission checks the caller's role against permission. In shadow
// mode denials are logged and the request proceeds.
func RequirePermission(authorizer *authz.Authorizer, permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := user.IdentityFromContext(r.Context())
			if err != nil {
				response.HandleError(w, err)
				return
			}

			allowed, enforced, err := authorizer.Authorize(identity.Role, permission)
			if err != nil {
				slog.Error("authorization check failed", "error", err, "permission", permission)
				response.InternalServerError(w, "Server error")
				return
			}
			if !allowed {
				if !enforced {
					slog.Warn("authorization shadow deny", "user_id", identity.UserID, "role", identity.Role, "permission", permission)
					next.ServeHTTP(w, r)
					return
				}
				response.Forbidden(w, "User role '"+string(identity.Role)+"' is not authorized to access this route")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
