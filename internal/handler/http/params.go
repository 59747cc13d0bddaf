package http

import (
	"net/http"
	"strings"

	"github.com/dayflow-hr/dayflow-backend-go/internal/handler/http/response"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// pathID reads the {id} URL parameter and writes a 400 when it is not a
// valid identifier.
func pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Invalid id", []validator.ValidationError{{Field: "id", Message: "id must be a valid id"}})
		return "", false
	}
	return strings.ToLower(id), true
}

// queryPtr returns nil for an absent or blank query value.
func queryPtr(r *http.Request, key string) *string {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return nil
	}
	return &v
}
