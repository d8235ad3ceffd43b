package entity

import "time"

type Employee struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	FullName     string    `db:"full_name"`
	Password     string    `db:"password"`
	Role         string    `db:"role"`
	Department   string    `db:"department"`
	LeaveBalance float64   `db:"leave_balance"`
	HireDate     time.Time `db:"hire_date"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type EmployeeLoginData struct {
	ID    string
	Email string
	Role  string
}

const (
	RoleEmployee = "employe"
	RoleManager  = "gestionnaire"
	RoleAdmin    = "admin"
)
