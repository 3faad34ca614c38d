package usecase_test

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/mkazlauskas/shoplt/internal/domain/errors"
	pkgAuth "github.com/mkazlauskas/shoplt/internal/pkg/auth"
	testhelpers "github.com/mkazlauskas/shoplt/internal/test"
	. "github.com/mkazlauskas/shoplt/internal/usecase"
)

func validRegistration() RegistrationForm {
	return RegistrationForm{
		Login:           "ivan",
		Password:        "secret",
		ConfirmPassword: "secret",
		Email:           "ivan@example.com",
		FirstName:       "Ivan",
		LastName:        "Petrov",
		Phone:           "+37060000000",
		Address:         "Vilnius, Gedimino pr. 1",
	}
}

func newAuthFixture() (*AuthUseCase, *testhelpers.UserRepositoryStub, *testhelpers.CustomerRepositoryStub) {
	users := testhelpers.NewUserRepositoryStub()
	customers := testhelpers.NewCustomerRepositoryStub()
	uc := NewAuthUseCase(users, customers, &testhelpers.HasherStub{}, &testhelpers.StrategyStub{})
	return uc, users, customers
}

func TestAuthUseCaseRegister(t *testing.T) {
	uc, users, customers := newAuthFixture()

	user, token, err := uc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if token == "" {
		t.Fatal("expected session token")
	}
	if user.Login != "ivan" || user.Email != "ivan@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if _, ok := users.Users["ivan"]; !ok {
		t.Fatal("user not persisted")
	}
	profile, ok := customers.ByUser[user.ID]
	if !ok {
		t.Fatal("customer profile not created")
	}
	if profile.Phone != "+37060000000" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestAuthUseCaseRegisterDuplicateLogin(t *testing.T) {
	uc, _, _ := newAuthFixture()

	if _, _, err := uc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, err := uc.Register(context.Background(), validRegistration()); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestAuthUseCaseRegisterValidation(t *testing.T) {
	uc, users, _ := newAuthFixture()

	tests := []struct {
		name   string
		mutate func(*RegistrationForm)
	}{
		{"empty login", func(f *RegistrationForm) { f.Login = "  " }},
		{"empty password", func(f *RegistrationForm) { f.Password = "" }},
		{"password mismatch", func(f *RegistrationForm) { f.ConfirmPassword = "other" }},
		{"bad email", func(f *RegistrationForm) { f.Email = "not-an-email" }},
		{"missing phone", func(f *RegistrationForm) { f.Phone = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validRegistration()
			tt.mutate(&form)
			if _, _, err := uc.Register(context.Background(), form); !errors.Is(err, domainErrors.ErrInvalidInput) {
				t.Fatalf("expected invalid input, got %v", err)
			}
		})
	}
	if len(users.Users) != 0 {
		t.Fatal("invalid forms must not create users")
	}
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	uc, _, _ := newAuthFixture()
	registered, _, err := uc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	user, token, err := uc.Authenticate(context.Background(), "ivan", "secret")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("expected user %d, got %d", registered.ID, user.ID)
	}
	if token == "" {
		t.Fatal("expected session token")
	}
}

func TestAuthUseCaseAuthenticateFailures(t *testing.T) {
	uc, _, _ := newAuthFixture()
	if _, _, err := uc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("register: %v", err)
	}

	tests := []struct {
		name     string
		login    string
		password string
	}{
		{"unknown login", "nobody", "secret"},
		{"wrong password", "ivan", "guess"},
		{"empty login", "", "secret"},
		{"empty password", "ivan", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := uc.Authenticate(context.Background(), tt.login, tt.password); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
				t.Fatalf("expected invalid credentials, got %v", err)
			}
		})
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	customers := testhelpers.NewCustomerRepositoryStub()
	strategy := testhelpers.StrategyStub{ParseFn: func(token string) (int64, error) {
		if token != "token-7" {
			return 0, pkgAuth.ErrInvalidToken
		}
		return 7, nil
	}}
	uc := NewAuthUseCase(users, customers, testhelpers.HasherStub{}, strategy)

	id, err := uc.ParseToken("token-7")
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected user 7, got %d", id)
	}

	if _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestAuthUseCaseCustomerByUser(t *testing.T) {
	uc, _, _ := newAuthFixture()
	user, _, err := uc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	customer, err := uc.CustomerByUser(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("customer lookup returned error: %v", err)
	}
	if customer.UserID != user.ID {
		t.Fatalf("unexpected customer: %+v", customer)
	}

	if _, err := uc.CustomerByUser(context.Background(), 999); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
