package model

import (
	"fmt"
	"time"
)

// UserRole is the persisted role of a user.
type UserRole int

const (
	RoleAdministrator UserRole = iota
	RoleEditor
	RoleReader
)

var roleNames = map[UserRole]string{
	RoleAdministrator: "Administrator",
	RoleEditor:        "Editor",
	RoleReader:        "Reader",
}

// String returns the role name carried in the token role claim.
func (r UserRole) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("UserRole(%d)", int(r))
}

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// ParseUserRole maps a role name back to its UserRole.
func ParseUserRole(name string) (UserRole, bool) {
	for role, n := range roleNames {
		if n == name {
			return role, true
		}
	}
	return 0, false
}

// User represents an account that can log in to the auth API.
// Password is stored as given; there is no hashing.
type User struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Email     string     `json:"email" gorm:"size:255;not null"`
	Password  string     `json:"password" gorm:"size:255;not null"`
	Role      UserRole   `json:"role" gorm:"not null"`
	CreatedAt time.Time  `json:"createdAt" gorm:"not null"`
	UpdatedAt *time.Time `json:"updatedAt" gorm:"autoUpdateTime:false"`
}
