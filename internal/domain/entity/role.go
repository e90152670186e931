// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleBuyer indicates a footage buyer.
	RoleBuyer Role = "buyer"
	// RoleCreator indicates a drone footage creator.
	RoleCreator Role = "creator"
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleCreator, RoleAdmin:
		return true
	default:
		return false
	}
}

// DefaultApproved reports whether a freshly registered account with this
// role is usable immediately. Creator accounts stay locked until an
// administrator approves them.
func (r Role) DefaultApproved() bool {
	return r != RoleCreator
}
