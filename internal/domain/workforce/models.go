package workforce

import "time"

type Employee struct {
	ID           string  `json:"id"`
	EmployeeName string  `json:"employeeName"`
	Address      string  `json:"address"`
	PhoneNumber  string  `json:"phoneNumber"`
	EmployeeType string  `json:"employeeType"`
	SalaryFrom   float64 `json:"salaryFrom"`
	SalaryTo     float64 `json:"salaryTo"`
}

type SiteDetail struct {
	ID           string     `json:"id"`
	LocationName string     `json:"locationName"`
	Address      string     `json:"address"`
	StartDate    *time.Time `json:"startDate"`
	TargetDate   *time.Time `json:"targetDate"`
}

// SiteAssignment links an employee to a site for a period. Site and Employee
// are filled in on populated reads and stay nil when the reference no longer
// resolves.
type SiteAssignment struct {
	ID         string      `json:"id"`
	SiteID     string      `json:"siteId"`
	EmployeeID string      `json:"employeeId"`
	StartDate  time.Time   `json:"startDate"`
	EndDate    time.Time   `json:"endDate"`
	Site       *SiteDetail `json:"site,omitempty"`
	Employee   *Employee   `json:"employee,omitempty"`
}

// EmployeeSiteView is the projection returned by the sites-by-employee lookup.
type EmployeeSiteView struct {
	SiteName  string    `json:"siteName"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}
