package user

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

// Kind separates self-service guests from hotel staff.
type Kind string

const (
	KindCustomer Kind = "customer"
	KindStaff    Kind = "staff"
)

// Role applies to staff principals only. Front office handles check-in/out,
// sales & marketing handles group bookings.
type Role string

const (
	RoleNone        Role = ""
	RoleFrontOffice Role = "fo"
	RoleSales       Role = "sm"
	RoleOwner       Role = "owner"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleNone, RoleFrontOffice, RoleSales, RoleOwner:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}

// Principal is the already-authenticated caller injected by the auth
// middleware. Everything below the handler layer trusts it.
type Principal struct {
	ID   uuid.UUID
	Kind Kind
	Role Role
}

func (p Principal) IsStaff() bool {
	return p.Kind == KindStaff
}
