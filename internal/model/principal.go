package model

import "github.com/google/uuid"

// Principal is the caller identity extracted from the access token.
type Principal struct {
	UserID    uuid.UUID
	Name      string
	Email     string
	Role      Role
	Staff     bool
	Superuser bool
}

func (p Principal) IsStaff() bool {
	return p.Staff || p.Superuser
}

func (p Principal) IsDonor() bool {
	return p.Role == RoleDonor
}

func (p Principal) IsRecipient() bool {
	return p.Role == RoleRecipient
}
