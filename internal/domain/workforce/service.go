package workforce

import (
	"context"
	"log/slog"
)

type AssignmentLookupStore interface {
	AssignmentSitesByEmployee(ctx context.Context, employeeID string) ([]assignmentSiteRow, error)
}

type Service struct {
	Store AssignmentLookupStore
}

func NewService(store AssignmentLookupStore) *Service {
	return &Service{Store: store}
}

// SitesByEmployee projects each assignment of the employee to its site name
// and period. Assignments whose site reference no longer resolves are skipped
// with a warning instead of failing the whole lookup.
func (s *Service) SitesByEmployee(ctx context.Context, employeeID string) ([]EmployeeSiteView, error) {
	rows, err := s.Store.AssignmentSitesByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	out := []EmployeeSiteView{}
	for _, row := range rows {
		if row.SiteName == nil {
			slog.Warn("assignment references missing site", "employeeId", employeeID)
			continue
		}
		out = append(out, EmployeeSiteView{
			SiteName:  *row.SiteName,
			StartDate: row.StartDate,
			EndDate:   row.EndDate,
		})
	}
	return out, nil
}
