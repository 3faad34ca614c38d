package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/mkazlauskas/shoplt/internal/domain/errors"
	"github.com/mkazlauskas/shoplt/internal/domain/model"
	"github.com/mkazlauskas/shoplt/internal/domain/repository"
	pkgAuth "github.com/mkazlauskas/shoplt/internal/pkg/auth"
)

// AuthUseCase handles account lifecycle and session token management.
type AuthUseCase struct {
	users     repository.UserRepository
	customers repository.CustomerRepository
	hasher    pkgAuth.PasswordHasher
	tokens    pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, customers repository.CustomerRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, customers: customers, hasher: hasher, tokens: strategy}
}

// Register creates a user account plus its customer profile and returns a
// session token.
func (u *AuthUseCase) Register(ctx context.Context, form RegistrationForm) (*model.User, string, error) {
	form.Login = strings.TrimSpace(form.Login)
	if err := ValidateRegistration(form); err != nil {
		return nil, "", err
	}

	hash, err := u.hasher.Hash(form.Password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, form.Login, hash, form.Email, form.FirstName, form.LastName)
	if err != nil {
		return nil, "", err
	}

	if _, err := u.customers.Create(ctx, usr.ID, form.Phone, form.Address); err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns a session token.
func (u *AuthUseCase) Authenticate(ctx context.Context, login, password string) (*model.User, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts user ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// UserByID fetches user by identifier.
func (u *AuthUseCase) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// CustomerByUser fetches the customer profile belonging to a user.
func (u *AuthUseCase) CustomerByUser(ctx context.Context, userID int64) (*model.Customer, error) {
	return u.customers.GetByUser(ctx, userID)
}
