package entities

import "github.com/google/uuid"

// Role is the primary capability of a login
type Role string

const (
	RoleNone       Role = "none"
	RoleInvestor   Role = "investor"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// RoleResolution is the outcome of probing the admin and investor collections
// for a user. A login holding both capabilities reports the admin role as
// primary but keeps its investor linkage.
type RoleResolution struct {
	Role         Role       `json:"role"`
	AdminID      *uuid.UUID `json:"adminId,omitempty"`
	InvestorID   *uuid.UUID `json:"investorId,omitempty"`
	IsSuperAdmin bool       `json:"isSuperAdmin"`
	Permissions  []string   `json:"permissions,omitempty"`
}

// HasRole reports whether the resolution carries any capability at all.
func (r *RoleResolution) HasRole() bool {
	return r != nil && r.Role != RoleNone
}
