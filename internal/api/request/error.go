package request

import "github.com/Abdouldav-cyber/chat/pkg/response"

var (
	ErrRequestNotFound         = response.NewError(404, "request not found")
	ErrRequestNotOwned         = response.NewError(403, "request does not belong to employee")
	ErrRequestAlreadyProcessed = response.NewError(409, "request has already been processed")
	ErrInvalidDateRange        = response.NewError(400, "invalid date range")
	ErrMissingDates            = response.NewError(400, "leave requests need a start and end date")
	ErrInsufficientBalance     = response.NewError(400, "insufficient leave balance")
	ErrCreateRequest           = response.NewError(500, "failed to create request")
	ErrProcessRequest          = response.NewError(500, "failed to process request")
)
