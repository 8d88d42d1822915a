package types

// Role is the capability tag carried by every authenticated identity.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

const (
	LeaveStatusPending  = "Pending"
	LeaveStatusApproved = "Approved"
	LeaveStatusRejected = "Rejected"
)

var LeaveTypes = []string{"Paid", "Sick", "Unpaid"}

const PayrollStatusGenerated = "Generated"
