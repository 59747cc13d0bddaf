package employee

import "errors"

var (
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrEmployeeRecordNotFound = errors.New("employee record not found")
	ErrEmployeeCodeExists     = errors.New("employee code already exists")
	ErrEmailExists            = errors.New("employee with this email already exists")
	ErrCannotDeleteSelf       = errors.New("cannot delete your own employee record")
)
