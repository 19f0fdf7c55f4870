package workforce

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeLookupStore struct {
	rows []assignmentSiteRow
	err  error
}

func (f *fakeLookupStore) AssignmentSitesByEmployee(ctx context.Context, employeeID string) ([]assignmentSiteRow, error) {
	return f.rows, f.err
}

func strPtr(s string) *string { return &s }

func TestSitesByEmployeeProjectsResolvedRows(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	store := &fakeLookupStore{rows: []assignmentSiteRow{
		{SiteName: strPtr("North Yard"), StartDate: start, EndDate: end},
		{SiteName: strPtr("Harbor Site"), StartDate: start, EndDate: end},
	}}

	views, err := NewService(store).SitesByEmployee(context.Background(), "emp-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}
	if views[0].SiteName != "North Yard" || views[1].SiteName != "Harbor Site" {
		t.Fatalf("unexpected site names: %+v", views)
	}
	if !views[0].StartDate.Equal(start) || !views[0].EndDate.Equal(end) {
		t.Fatalf("dates not carried through: %+v", views[0])
	}
}

func TestSitesByEmployeeSkipsDanglingSiteReference(t *testing.T) {
	store := &fakeLookupStore{rows: []assignmentSiteRow{
		{SiteName: nil, StartDate: time.Now(), EndDate: time.Now()},
		{SiteName: strPtr("Harbor Site"), StartDate: time.Now(), EndDate: time.Now()},
	}}

	views, err := NewService(store).SitesByEmployee(context.Background(), "emp-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected dangling reference to be skipped, got %d views", len(views))
	}
	if views[0].SiteName != "Harbor Site" {
		t.Fatalf("unexpected view: %+v", views[0])
	}
}

func TestSitesByEmployeeEmptyResult(t *testing.T) {
	views, err := NewService(&fakeLookupStore{}).SitesByEmployee(context.Background(), "emp-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if views == nil || len(views) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", views)
	}
}

func TestSitesByEmployeePropagatesStoreError(t *testing.T) {
	storeErr := errors.New("connection reset")
	_, err := NewService(&fakeLookupStore{err: storeErr}).SitesByEmployee(context.Background(), "emp-1")
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}
