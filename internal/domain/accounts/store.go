package accounts

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound           = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const accountColumns = `id, name, username, email, password_hash, phone, COALESCE(employee_id::text, '')`

func scanAccount(row pgx.Row) (*UserAccount, error) {
	var acc UserAccount
	err := row.Scan(&acc.ID, &acc.Name, &acc.Username, &acc.Email, &acc.PasswordHash, &acc.Phone, &acc.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &acc, nil
}

func (s *Store) CreateAccount(ctx context.Context, acc UserAccount) (*UserAccount, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO user_accounts (name, username, email, password_hash, phone, employee_id)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING `+accountColumns+`
  `, acc.Name, acc.Username, acc.Email, acc.PasswordHash, acc.Phone, nullIfEmpty(acc.EmployeeID))
	return scanAccount(row)
}

func (s *Store) ListAccounts(ctx context.Context) ([]UserAccount, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+accountColumns+` FROM user_accounts`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []UserAccount{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *acc)
	}
	return out, rows.Err()
}

// FindByUsername returns the first match; uniqueness is not enforced at the
// storage level.
func (s *Store) FindByUsername(ctx context.Context, username string) (*UserAccount, error) {
	row := s.DB.QueryRow(ctx, `SELECT `+accountColumns+` FROM user_accounts WHERE username = $1 LIMIT 1`, username)
	return scanAccount(row)
}

func (s *Store) CreateLink(ctx context.Context, link UserEmployeeLink) (*UserEmployeeLink, error) {
	var out UserEmployeeLink
	err := s.DB.QueryRow(ctx, `
    INSERT INTO user_employee_links (user_id, employee_id)
    VALUES ($1,$2)
    RETURNING id, user_id, employee_id
  `, link.UserID, link.EmployeeID).Scan(&out.ID, &out.UserID, &out.EmployeeID)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Store) ListLinks(ctx context.Context) ([]UserEmployeeLink, error) {
	rows, err := s.DB.Query(ctx, `SELECT id, user_id, employee_id FROM user_employee_links`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []UserEmployeeLink{}
	for rows.Next() {
		var link UserEmployeeLink
		if err := rows.Scan(&link.ID, &link.UserID, &link.EmployeeID); err != nil {
			return nil, err
		}
		out = append(out, link)
	}
	return out, rows.Err()
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
