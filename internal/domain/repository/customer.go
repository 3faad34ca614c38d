package repository

import (
	"context"

	"github.com/mkazlauskas/shoplt/internal/domain/model"
)

// UserRepository describes persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, login, passwordHash, email, firstName, lastName string) (*model.User, error)
	GetByLogin(ctx context.Context, login string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// CustomerRepository describes persistence operations for customer profiles.
type CustomerRepository interface {
	Create(ctx context.Context, userID int64, phone, address string) (*model.Customer, error)
	GetByUser(ctx context.Context, userID int64) (*model.Customer, error)
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
}
