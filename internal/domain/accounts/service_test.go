package accounts

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

type fakeStore struct {
	accounts []UserAccount
	links    []UserEmployeeLink
	nextID   int
}

func (f *fakeStore) CreateAccount(ctx context.Context, acc UserAccount) (*UserAccount, error) {
	f.nextID++
	acc.ID = fmt.Sprintf("acc-%d", f.nextID)
	f.accounts = append(f.accounts, acc)
	return &acc, nil
}

func (f *fakeStore) ListAccounts(ctx context.Context) ([]UserAccount, error) {
	return f.accounts, nil
}

func (f *fakeStore) FindByUsername(ctx context.Context, username string) (*UserAccount, error) {
	for _, acc := range f.accounts {
		if acc.Username == username {
			found := acc
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeStore) CreateLink(ctx context.Context, link UserEmployeeLink) (*UserEmployeeLink, error) {
	f.nextID++
	link.ID = fmt.Sprintf("link-%d", f.nextID)
	f.links = append(f.links, link)
	return &link, nil
}

func (f *fakeStore) ListLinks(ctx context.Context) ([]UserEmployeeLink, error) {
	return f.links, nil
}

func TestRegisterHashesPassword(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	acc, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Alice Smith",
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct",
		Phone:    "0712345678",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if acc.PasswordHash == "" || acc.PasswordHash == "correct" {
		t.Fatalf("password was not hashed: %q", acc.PasswordHash)
	}
}

func TestLoginAfterRegister(t *testing.T) {
	svc := NewService(&fakeStore{})
	if _, err := svc.Register(context.Background(), RegisterInput{Username: "alice", Password: "correct"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	acc, err := svc.Login(context.Background(), "alice", "correct")
	if err != nil {
		t.Fatalf("expected login success, got %v", err)
	}
	if acc.Username != "alice" {
		t.Fatalf("unexpected profile username: %q", acc.Username)
	}

	if _, err := svc.Login(context.Background(), "alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if _, err := svc.Login(context.Background(), "bob", "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoginUsesFirstMatchOnDuplicateUsernames(t *testing.T) {
	svc := NewService(&fakeStore{})
	if _, err := svc.Register(context.Background(), RegisterInput{Username: "alice", Password: "first"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), RegisterInput{Username: "alice", Password: "second"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.Login(context.Background(), "alice", "first"); err != nil {
		t.Fatalf("expected first account to win, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "alice", "second"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected second password to fail against first account, got %v", err)
	}
}

func TestCreateLinkRequiresBothIDs(t *testing.T) {
	svc := NewService(&fakeStore{})
	if _, err := svc.CreateLink(context.Background(), UserEmployeeLink{UserID: "u1"}); err == nil {
		t.Fatal("expected error for missing employeeId")
	}
	if _, err := svc.CreateLink(context.Background(), UserEmployeeLink{UserID: "u1", EmployeeID: "e1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
