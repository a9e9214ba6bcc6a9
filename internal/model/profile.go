package model

import "github.com/google/uuid"

type Role string

const (
	RoleDonor     Role = "DONOR"
	RoleRecipient Role = "RECIPIENT"
	RoleAdmin     Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleDonor, RoleRecipient, RoleAdmin:
		return true
	}
	return false
}

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

type Profile struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	Name    string
	Email   string
	Role    Role
	Gender  Gender
	Phone   string
	Address string
}
