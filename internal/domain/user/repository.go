package user

import "context"

// Repository handles user persistence.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetBySID(ctx context.Context, sid string) (*User, error)
	Update(ctx context.Context, user *User) error
}
