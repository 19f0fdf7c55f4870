package workforce

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("record not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

const employeeColumns = `id, employee_name, address, phone_number, employee_type, salary_from, salary_to`

func scanEmployee(row pgx.Row) (*Employee, error) {
	var emp Employee
	err := row.Scan(&emp.ID, &emp.EmployeeName, &emp.Address, &emp.PhoneNumber, &emp.EmployeeType, &emp.SalaryFrom, &emp.SalaryTo)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &emp, nil
}

func (s *Store) ListEmployees(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+employeeColumns+` FROM employees`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Employee{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *emp)
	}
	return out, rows.Err()
}

func (s *Store) GetEmployee(ctx context.Context, id string) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)
	return scanEmployee(row)
}

func (s *Store) CreateEmployee(ctx context.Context, emp Employee) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO employees (employee_name, address, phone_number, employee_type, salary_from, salary_to)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING `+employeeColumns+`
  `, emp.EmployeeName, emp.Address, emp.PhoneNumber, emp.EmployeeType, emp.SalaryFrom, emp.SalaryTo)
	return scanEmployee(row)
}

func (s *Store) UpdateEmployee(ctx context.Context, id string, emp Employee) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `
    UPDATE employees
    SET employee_name = $1,
        address = $2,
        phone_number = $3,
        employee_type = $4,
        salary_from = $5,
        salary_to = $6
    WHERE id = $7
    RETURNING `+employeeColumns+`
  `, emp.EmployeeName, emp.Address, emp.PhoneNumber, emp.EmployeeType, emp.SalaryFrom, emp.SalaryTo, id)
	return scanEmployee(row)
}

func (s *Store) DeleteEmployee(ctx context.Context, id string) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `DELETE FROM employees WHERE id = $1 RETURNING `+employeeColumns, id)
	return scanEmployee(row)
}

const siteColumns = `id, location_name, address, start_date, target_date`

func scanSite(row pgx.Row) (*SiteDetail, error) {
	var site SiteDetail
	err := row.Scan(&site.ID, &site.LocationName, &site.Address, &site.StartDate, &site.TargetDate)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &site, nil
}

func (s *Store) ListSites(ctx context.Context) ([]SiteDetail, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+siteColumns+` FROM site_details`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []SiteDetail{}
	for rows.Next() {
		site, err := scanSite(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *site)
	}
	return out, rows.Err()
}

func (s *Store) GetSite(ctx context.Context, id string) (*SiteDetail, error) {
	row := s.DB.QueryRow(ctx, `SELECT `+siteColumns+` FROM site_details WHERE id = $1`, id)
	return scanSite(row)
}

func (s *Store) CreateSite(ctx context.Context, site SiteDetail) (*SiteDetail, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO site_details (location_name, address, start_date, target_date)
    VALUES ($1,$2,$3,$4)
    RETURNING `+siteColumns+`
  `, site.LocationName, site.Address, site.StartDate, site.TargetDate)
	return scanSite(row)
}

func (s *Store) UpdateSite(ctx context.Context, id string, site SiteDetail) (*SiteDetail, error) {
	row := s.DB.QueryRow(ctx, `
    UPDATE site_details
    SET location_name = $1,
        address = $2,
        start_date = $3,
        target_date = $4
    WHERE id = $5
    RETURNING `+siteColumns+`
  `, site.LocationName, site.Address, site.StartDate, site.TargetDate, id)
	return scanSite(row)
}

func (s *Store) DeleteSite(ctx context.Context, id string) (*SiteDetail, error) {
	row := s.DB.QueryRow(ctx, `DELETE FROM site_details WHERE id = $1 RETURNING `+siteColumns, id)
	return scanSite(row)
}
