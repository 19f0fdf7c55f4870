package accounts

type UserAccount struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Phone        string `json:"phone"`
	EmployeeID   string `json:"employeeId,omitempty"`
}

type UserEmployeeLink struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	EmployeeID string `json:"employeeId"`
}

// Profile is the minimal view of an account returned by login.
type Profile struct {
	Username string `json:"username"`
}
