package types

type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

type SignupResponse struct {
	Message string `json:"message"`
	UserID  uint   `json:"user_id"`
	Role    Role   `json:"role"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Role        Role   `json:"role"`
}

type EmployeeResponse struct {
	ID          uint    `json:"id"`
	UserID      uint    `json:"user_id"`
	FullName    string  `json:"full_name"`
	Department  *string `json:"department"`
	Designation *string `json:"designation"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
}

type AttendanceResponse struct {
	ID             uint    `json:"id"`
	EmployeeID     uint    `json:"employee_id"`
	AttendanceDate string  `json:"attendance_date"`
	CheckIn        *string `json:"check_in"`
	CheckOut       *string `json:"check_out"`
	WorkMinutes    *int    `json:"work_minutes"`
}

type AttendanceSummaryResponse struct {
	Month                int     `json:"month"`
	Year                 int     `json:"year"`
	TotalWorkingDays     int     `json:"total_working_days"`
	PresentDays          int     `json:"present_days"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

type LeaveResponse struct {
	ID         uint    `json:"id"`
	EmployeeID uint    `json:"employee_id"`
	LeaveType  string  `json:"leave_type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Reason     *string `json:"reason"`
	Status     string  `json:"status"`
	AppliedOn  string  `json:"applied_on"`
}

type LeaveDecisionResponse struct {
	Message string `json:"message"`
	LeaveID uint   `json:"leave_id"`
	Status  string `json:"status"`
}

type PayrollResponse struct {
	ID           uint    `json:"id"`
	EmployeeID   uint    `json:"employee_id"`
	Month        int     `json:"month"`
	Year         int     `json:"year"`
	PresentDays  int     `json:"present_days"`
	TotalDays    int     `json:"total_days"`
	BaseSalary   float64 `json:"base_salary"`
	SalaryAmount float64 `json:"salary_amount"`
	Status       string  `json:"status"`
}
