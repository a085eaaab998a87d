// Package domain provides domain models and events for the Etree admin
// service.
package domain

// Built-in role names. These two roles are provisioned by the seed
// command and bypass table-level permission checks.
const (
	RoleSuperUser = "Super User"
	RoleAdmin     = "Admin"
)

// IsAdminRole reports whether the role name is one of the built-in
// administrative roles.
func IsAdminRole(name string) bool {
	return name == RoleSuperUser || name == RoleAdmin
}
