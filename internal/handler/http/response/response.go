package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
)

type Response struct {
	Success bool                        `json:"success"`
	Message string                      `json:"message,omitempty"`
	Data    interface{}                 `json:"data,omitempty"`
	Count   *int                        `json:"count,omitempty"`
	Errors  []validator.ValidationError `json:"errors,omitempty"`
}

// AuthResponse carries the token and user next to success instead of under data.
type AuthResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Token     string      `json:"token,omitempty"`
	ExpiresAt int64       `json:"expiresAt,omitempty"`
	User      interface{} `json:"user"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Success responses
func Success(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

func SuccessWithMessage(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Created(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// List writes a collection with its length in count.
func List[T any](w http.ResponseWriter, items []T) {
	if items == nil {
		items = []T{}
	}
	count := len(items)
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    items,
		Count:   &count,
	})
}

func Auth(w http.ResponseWriter, statusCode int, message, token string, expiresAt int64, user interface{}) {
	writeJSON(w, statusCode, AuthResponse{
		Success:   true,
		Message:   message,
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	})
}

// Error responses
func BadRequest(w http.ResponseWriter, message string, errs []validator.ValidationError) {
	writeJSON(w, http.StatusBadRequest, Response{
		Success: false,
		Message: message,
		Errors:  errs,
	})
}

func ValidationError(w http.ResponseWriter, errs validator.ValidationErrors) {
	BadRequest(w, "Validation failed", errs)
}

func Unauthorized(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnauthorized, Response{Success: false, Message: message})
}

func Forbidden(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusForbidden, Response{Success: false, Message: message})
}

func NotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, Response{Success: false, Message: message})
}

func InternalServerError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusInternalServerError, Response{Success: false, Message: message})
}
