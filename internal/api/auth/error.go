package auth

import "github.com/Abdouldav-cyber/chat/pkg/response"

var (
	ErrEmployeeNotFound       = response.NewError(404, "employee not found")
	ErrInvalidEmailOrPassword = response.NewError(400, "invalid email or password")
	ErrEmailAlreadyInUse      = response.NewError(409, "email already in use")
	ErrPasswordSame           = response.NewError(400, "new password cannot be the same as old password")
	ErrRegisterEmployee       = response.NewError(500, "failed to register employee")
	ErrChangePassword         = response.NewError(500, "failed to change password")
)
