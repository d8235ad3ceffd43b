package authService

import (
	"errors"
	"time"

	"github.com/Abdouldav-cyber/chat/internal/api/auth"
	"github.com/Abdouldav-cyber/chat/internal/entity"
	contextPkg "github.com/Abdouldav-cyber/chat/pkg/context"
	jwtPkg "github.com/Abdouldav-cyber/chat/pkg/jwt"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// New hires start with the statutory yearly allowance.
const defaultLeaveBalance = 25

const accessTokenTTL = 24 * time.Hour

func (s *authService) Register(ctx context.Context, req auth.RegisterRequest) (*auth.EmployeeResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}
	defer repo.Rollback()

	hashedPassword, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return nil, auth.ErrRegisterEmployee
	}

	employeeID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return nil, err
	}

	now := time.Now()

	employee := entity.Employee{
		ID:           employeeID,
		Email:        req.Email,
		FullName:     req.FullName,
		Password:     hashedPassword,
		Role:         entity.RoleEmployee,
		Department:   req.Department,
		LeaveBalance: defaultLeaveBalance,
		HireDate:     now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := repo.Employees.CreateEmployee(ctx, employee); err != nil {
		if errors.Is(err, auth.ErrEmailAlreadyInUse) {
			return nil, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create employee")
		return nil, auth.ErrRegisterEmployee
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return nil, auth.ErrRegisterEmployee
	}

	return makeEmployeeResponse(employee), nil
}

func (s *authService) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	employee, err := repo.Employees.GetEmployeeByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrEmployeeNotFound) {
			return nil, auth.ErrInvalidEmailOrPassword
		}
		return nil, err
	}

	if err := s.bcryptUtils.ComparePassword(employee.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Password mismatch on login")
		return nil, auth.ErrInvalidEmailOrPassword
	}

	accessToken, expiresAt, err := jwtPkg.Sign(map[string]interface{}{
		"id":    employee.ID,
		"email": employee.Email,
		"role":  employee.Role,
	}, accessTokenTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign access token")
		return nil, err
	}

	return &auth.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		Employee:    *makeEmployeeResponse(employee),
	}, nil
}

func (s *authService) GetProfile(ctx context.Context, employeeID string) (*auth.EmployeeResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	employee, err := repo.Employees.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return makeEmployeeResponse(employee), nil
}

func (s *authService) ChangePassword(ctx context.Context, employeeID string, req auth.ChangePasswordRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	employee, err := repo.Employees.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		return err
	}

	if err := s.bcryptUtils.ComparePassword(employee.Password, req.OldPassword); err != nil {
		return auth.ErrInvalidEmailOrPassword
	}

	if req.OldPassword == req.NewPassword {
		return auth.ErrPasswordSame
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return auth.ErrChangePassword
	}

	if err := repo.Employees.UpdatePassword(ctx, employeeID, hashedPassword); err != nil {
		return auth.ErrChangePassword
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return auth.ErrChangePassword
	}

	return nil
}

func makeEmployeeResponse(employee entity.Employee) *auth.EmployeeResponse {
	return &auth.EmployeeResponse{
		ID:           employee.ID,
		Email:        employee.Email,
		FullName:     employee.FullName,
		Role:         employee.Role,
		Department:   employee.Department,
		LeaveBalance: employee.LeaveBalance,
		HireDate:     employee.HireDate,
	}
}
