package models

import (
	"fmt"
	"strings"
	"time"
)

// Role is the platform role embedded into issued tokens.
type Role string

const (
	RoleStudent Role = "Student"
	RoleTeacher Role = "Teacher"
)

func (r Role) String() string { return string(r) }

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// ParseRole accepts a role name in any letter case.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "student":
		return RoleStudent, nil
	case "teacher":
		return RoleTeacher, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// User is a persisted account. Password holds the stored argon2id hash.
type User struct {
	ID          string
	FirstName   string
	LastName    string
	Email       string
	Password    string
	DateOfBirth time.Time
	Role        Role
	CreatedAt   time.Time
}

// DraftUser is a registrant that has not confirmed its email yet.
// Password holds the argon2id hash of what was submitted.
type DraftUser struct {
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	Password    string    `json:"password"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}
