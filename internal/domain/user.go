package domain

type User struct {
	ID           uint
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	IsTeam       bool
}

// Actor is the identity resolved from a bearer token. Authorization
// decisions branch on IsTeam only.
type Actor struct {
	UserID uint
	IsTeam bool
}
