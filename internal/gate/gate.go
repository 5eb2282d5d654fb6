// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gate decides whether a page may be shown for the current session.
//
// The gate has three states: loading (the session has not been resolved
// yet), unauthenticated, and authenticated with a role. While loading no
// redirect is ever decided.
package gate

import (
	"strings"

	"github.com/MKhiriev/eco-ideas/models"
)

// Canonical paths.
const (
	LoginPath = "/login"
	UserHome  = "/dashboard"
	AdminHome = "/admin"
)

// Requirement is the access level of a path.
type Requirement int

const (
	// RequireAny admits every authenticated principal.
	RequireAny Requirement = iota
	// RequireUser admits regular users only.
	RequireUser
	// RequireAdmin admits administrators only.
	RequireAdmin
)

// Kind is the outcome of a gate decision.
type Kind int

const (
	Wait Kind = iota
	Allow
	RedirectLogin
	RedirectRoleHome
)

func (k Kind) String() string {
	switch k {
	case Wait:
		return "wait"
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect_login"
	case RedirectRoleHome:
		return "redirect_role_home"
	default:
		return "unknown"
	}
}

// State is what the gate knows about the session.
type State struct {
	Loading       bool
	Authenticated bool
	Role          models.Role
}

// Decision tells the caller what to render. Target is set for redirects;
// From keeps the requested path on a redirect to the login page.
type Decision struct {
	Kind   Kind
	Target string
	From   string
}

// Routes maps every gated path to its requirement.
var Routes = map[string]Requirement{
	UserHome:         RequireUser,
	"/ideas":         RequireUser,
	"/ideas/new":     RequireUser,
	AdminHome:        RequireAdmin,
	"/admin/ideas":   RequireAdmin,
	"/admin/goals":   RequireAdmin,
	"/admin/users":   RequireAdmin,
	"/chat":          RequireAny,
	"/notifications": RequireAny,
}

// Home returns the single home path of role.
func Home(role models.Role) string {
	if role == models.RoleAdmin {
		return AdminHome
	}
	return UserHome
}

// Permits reports whether role satisfies required.
func Permits(required Requirement, role models.Role) bool {
	switch required {
	case RequireUser:
		return role != models.RoleAdmin
	case RequireAdmin:
		return role == models.RoleAdmin
	default:
		return true
	}
}

// RequirementFor looks path up in Routes. Trailing slashes are ignored.
func RequirementFor(path string) (Requirement, bool) {
	if path != "/" {
		path = strings.TrimRight(path, "/")
	}
	r, ok := Routes[path]
	return r, ok
}

// Decide returns what to do with a request for path that needs required.
func Decide(state State, required Requirement, path string) Decision {
	switch {
	case state.Loading:
		return Decision{Kind: Wait}
	case !state.Authenticated:
		return Decision{Kind: RedirectLogin, Target: LoginPath, From: path}
	case !Permits(required, state.Role):
		return Decision{Kind: RedirectRoleHome, Target: Home(state.Role)}
	default:
		return Decision{Kind: Allow}
	}
}

// DecidePath is Decide with the requirement read from Routes. Unknown
// paths need an authenticated principal of any role.
func DecidePath(state State, path string) Decision {
	required, ok := RequirementFor(path)
	if !ok {
		required = RequireAny
	}
	return Decide(state, required, path)
}

// LoginReturn is where a principal of role goes after signing in from a
// redirect that remembered from. It is from itself when that path is known
// and permitted, and the role home otherwise.
func LoginReturn(from string, role models.Role) string {
	if from == "" || from == LoginPath {
		return Home(role)
	}

	required, ok := RequirementFor(from)
	if !ok || !Permits(required, role) {
		return Home(role)
	}
	return from
}
