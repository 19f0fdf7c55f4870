package workforce

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

const assignmentColumns = `id, site_id, employee_id, start_date, end_date`

func scanAssignment(row pgx.Row) (*SiteAssignment, error) {
	var a SiteAssignment
	err := row.Scan(&a.ID, &a.SiteID, &a.EmployeeID, &a.StartDate, &a.EndDate)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &a, nil
}

// ListAssignments resolves both references for display. Assignments whose
// site or employee has since been deleted keep a nil Site/Employee.
func (s *Store) ListAssignments(ctx context.Context) ([]SiteAssignment, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT a.id, a.site_id, a.employee_id, a.start_date, a.end_date,
           sd.id, sd.location_name, sd.address, sd.start_date, sd.target_date,
           e.id, e.employee_name, e.address, e.phone_number, e.employee_type, e.salary_from, e.salary_to
    FROM site_assignments a
    LEFT JOIN site_details sd ON sd.id = a.site_id
    LEFT JOIN employees e ON e.id = a.employee_id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []SiteAssignment{}
	for rows.Next() {
		var a SiteAssignment
		var siteID, siteName, siteAddress *string
		var siteStart, siteTarget *time.Time
		var empID, empName, empAddress, empPhone, empType *string
		var salaryFrom, salaryTo *float64
		if err := rows.Scan(
			&a.ID, &a.SiteID, &a.EmployeeID, &a.StartDate, &a.EndDate,
			&siteID, &siteName, &siteAddress, &siteStart, &siteTarget,
			&empID, &empName, &empAddress, &empPhone, &empType, &salaryFrom, &salaryTo,
		); err != nil {
			return nil, err
		}
		if siteID != nil {
			a.Site = &SiteDetail{ID: *siteID, LocationName: *siteName, Address: *siteAddress, StartDate: siteStart, TargetDate: siteTarget}
		}
		if empID != nil {
			a.Employee = &Employee{ID: *empID, EmployeeName: *empName, Address: *empAddress, PhoneNumber: *empPhone, EmployeeType: *empType, SalaryFrom: *salaryFrom, SalaryTo: *salaryTo}
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) CreateAssignment(ctx context.Context, a SiteAssignment) (*SiteAssignment, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO site_assignments (site_id, employee_id, start_date, end_date)
    VALUES ($1,$2,$3,$4)
    RETURNING `+assignmentColumns+`
  `, a.SiteID, a.EmployeeID, a.StartDate, a.EndDate)
	return scanAssignment(row)
}

func (s *Store) UpdateAssignment(ctx context.Context, id string, a SiteAssignment) (*SiteAssignment, error) {
	row := s.DB.QueryRow(ctx, `
    UPDATE site_assignments
    SET site_id = $1,
        employee_id = $2,
        start_date = $3,
        end_date = $4
    WHERE id = $5
    RETURNING `+assignmentColumns+`
  `, a.SiteID, a.EmployeeID, a.StartDate, a.EndDate, id)
	return scanAssignment(row)
}

func (s *Store) DeleteAssignment(ctx context.Context, id string) (*SiteAssignment, error) {
	row := s.DB.QueryRow(ctx, `DELETE FROM site_assignments WHERE id = $1 RETURNING `+assignmentColumns, id)
	return scanAssignment(row)
}

type assignmentSiteRow struct {
	SiteName  *string
	StartDate time.Time
	EndDate   time.Time
}

func (s *Store) AssignmentSitesByEmployee(ctx context.Context, employeeID string) ([]assignmentSiteRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT sd.location_name, a.start_date, a.end_date
    FROM site_assignments a
    LEFT JOIN site_details sd ON sd.id = a.site_id
    WHERE a.employee_id = $1
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []assignmentSiteRow
	for rows.Next() {
		var row assignmentSiteRow
		if err := rows.Scan(&row.SiteName, &row.StartDate, &row.EndDate); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
