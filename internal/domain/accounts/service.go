package accounts

import (
	"context"
	"errors"

	"sitecrew/internal/auth"
)

type StoreAPI interface {
	CreateAccount(ctx context.Context, acc UserAccount) (*UserAccount, error)
	ListAccounts(ctx context.Context) ([]UserAccount, error)
	FindByUsername(ctx context.Context, username string) (*UserAccount, error)
	CreateLink(ctx context.Context, link UserEmployeeLink) (*UserEmployeeLink, error)
	ListLinks(ctx context.Context) ([]UserEmployeeLink, error)
}

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

type RegisterInput struct {
	Name       string
	Username   string
	Email      string
	Password   string
	Phone      string
	EmployeeID string
}

// Register stores a new account with a bcrypt password hash. Usernames are
// not unique at the storage level; duplicates register as distinct accounts.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*UserAccount, error) {
	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	return s.Store.CreateAccount(ctx, UserAccount{
		Name:         input.Name,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Phone:        input.Phone,
		EmployeeID:   input.EmployeeID,
	})
}

// Login authenticates against the first account matching the username.
// Returns ErrNotFound when no account matches and ErrInvalidCredentials when
// the password does not check out against the stored hash.
func (s *Service) Login(ctx context.Context, username, password string) (*UserAccount, error) {
	acc, err := s.Store.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := auth.CheckPassword(acc.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return acc, nil
}

func (s *Service) ListAccounts(ctx context.Context) ([]UserAccount, error) {
	return s.Store.ListAccounts(ctx)
}

func (s *Service) FindByUsername(ctx context.Context, username string) (*UserAccount, error) {
	return s.Store.FindByUsername(ctx, username)
}

func (s *Service) CreateLink(ctx context.Context, link UserEmployeeLink) (*UserEmployeeLink, error) {
	if link.UserID == "" || link.EmployeeID == "" {
		return nil, errors.New("userId and employeeId are required")
	}
	return s.Store.CreateLink(ctx, link)
}

func (s *Service) ListLinks(ctx context.Context) ([]UserEmployeeLink, error) {
	return s.Store.ListLinks(ctx)
}
