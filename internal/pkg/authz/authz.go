package authz

import (
	"errors"
	"fmt"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
)

type Mode string

const (
	ModeEnforce  Mode = "enforce"
	ModeShadow   Mode = "shadow"
	ModeDisabled Mode = "disabled"
)

// ParseMode validates a configured mode string.
func ParseMode(raw string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ModeEnforce:
		return ModeEnforce, nil
	case ModeShadow:
		return ModeShadow, nil
	case ModeDisabled:
		return ModeDisabled, nil
	default:
		return "", errors.New("authz: invalid mode (expected enforce|shadow|disabled)")
	}
}

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

type Authorizer struct {
	enforcer *casbin.Enforcer
	mode     Mode
}

// NewAuthorizer builds an in-memory enforcer whose policy is the role table
// in user.RolePermissions.
func NewAuthorizer(mode Mode) (*Authorizer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("authz: load model: %w", err)
	}
	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("authz: create enforcer: %w", err)
	}

	for role, perms := range user.RolePermissions {
		for _, p := range perms {
			obj, act := p.Split()
			if _, err := enforcer.AddPolicy(SubjectFromRole(role), obj, act); err != nil {
				return nil, fmt.Errorf("authz: add policy %s %s: %w", role, p, err)
			}
		}
	}

	return &Authorizer{enforcer: enforcer, mode: mode}, nil
}

func SubjectFromRole(role user.Role) string {
	r := strings.TrimSpace(strings.ToLower(string(role)))
	if r == "" {
		r = "anonymous"
	}
	return "role:" + r
}

func (a *Authorizer) Mode() Mode {
	return a.mode
}

// Authorize reports whether role holds permission. enforced is false when
// the decision must not block the request (shadow or disabled mode).
func (a *Authorizer) Authorize(role user.Role, permission user.Permission) (allowed bool, enforced bool, err error) {
	obj, act := permission.Split()
	switch a.mode {
	case ModeDisabled:
		return true, false, nil
	case ModeShadow:
		ok, err := a.enforcer.Enforce(SubjectFromRole(role), obj, act)
		if err != nil {
			return false, false, err
		}
		return ok, false, nil
	case ModeEnforce:
		ok, err := a.enforcer.Enforce(SubjectFromRole(role), obj, act)
		if err != nil {
			return false, true, err
		}
		return ok, true, nil
	default:
		return false, false, errors.New("authz: unknown mode")
	}
}
