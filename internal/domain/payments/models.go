package payments

import "time"

type PaymentDetail struct {
	ID           string     `json:"id"`
	EmployeeType string     `json:"employeeType"`
	StartDate    *time.Time `json:"startDate"`
	TargetDate   *time.Time `json:"targetDate"`
	Total        float64    `json:"total"`
	LastUpdated  time.Time  `json:"lastUpdated"`
}

// Payment references its detail records by identifier, in the order the jobs
// were submitted. FinalTotal always equals the sum of the referenced detail
// totals as stored.
type Payment struct {
	ID         string   `json:"id"`
	SiteID     string   `json:"siteId"`
	EmployeeID string   `json:"employeeId"`
	DetailIDs  []string `json:"paymentDetails"`
	FinalTotal float64  `json:"finalTotal"`
	PaymentBy  string   `json:"paymentBy"`
}

type JobInput struct {
	EmployeeType string
	StartDate    *time.Time
	TargetDate   *time.Time
	Total        float64
}

type CreatePaymentInput struct {
	SiteID     string
	EmployeeID string
	Jobs       []JobInput
	PaymentBy  string
}

type CreatePaymentResult struct {
	Payment        Payment         `json:"payment"`
	PaymentDetails []PaymentDetail `json:"paymentDetails"`
}
