package models

import "time"

// Role enumerates the four account roles. Authorization decisions switch
// exhaustively over this set; an unknown role is always an error, never a
// silent pass-through.
type Role string

const (
	RoleStudent           Role = "student"
	RoleLecturer          Role = "lecturer"
	RoleProgramReviewLead Role = "prl"
	RoleProgramLeader     Role = "pl"
)

// Valid reports whether the role is one of the known four.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleLecturer, RoleProgramReviewLead, RoleProgramLeader:
		return true
	}
	return false
}

// User is a row of the users table. Role and faculty are fixed at
// registration; no mutation path exists.
type User struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	Faculty      string    `db:"faculty" json:"faculty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
