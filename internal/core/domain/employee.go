package domain

// Role is an operator's permission level.
type Role string

const (
	RoleManager Role = "Manager"
	RoleTeller  Role = "Teller"
)

// Employee is a bank operator who can log in to the system. Passwords are
// stored only as bcrypt hashes. Inactive employees cannot log in.
type Employee struct {
	EmployeeID   string `json:"employeeID"` // "EMP..." token
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}
