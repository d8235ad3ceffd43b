package auth

import "time"

type RegisterRequest struct {
	Email      string `json:"email" validate:"required,email"`
	FullName   string `json:"full_name" validate:"required,min=2,max=128"`
	Password   string `json:"password" validate:"required,min=8"`
	Department string `json:"department" validate:"required,min=2,max=64"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string           `json:"access_token"`
	ExpiresAt   int64            `json:"expires_at"`
	Employee    EmployeeResponse `json:"employee"`
}

type EmployeeResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Role         string    `json:"role"`
	Department   string    `json:"department"`
	LeaveBalance float64   `json:"leave_balance"`
	HireDate     time.Time `json:"hire_date"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}
