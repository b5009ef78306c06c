package domain

type UserRepository interface {
	CreateUser(user *User) error
	GetUserByID(userID uint) (*User, error)
	GetUserByEmail(email string) (*User, error)
	GetUsers(skip, limit int) ([]*User, error)
}
