package authService

import (
	"context"

	"github.com/Abdouldav-cyber/chat/internal/api/auth"
	authRepository "github.com/Abdouldav-cyber/chat/internal/api/auth/repository"
	"github.com/Abdouldav-cyber/chat/pkg/bcrypt"
	"github.com/Abdouldav-cyber/chat/pkg/utils"
	"github.com/sirupsen/logrus"
)

type IAuthService interface {
	Register(ctx context.Context, req auth.RegisterRequest) (*auth.EmployeeResponse, error)
	Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error)
	GetProfile(ctx context.Context, employeeID string) (*auth.EmployeeResponse, error)
	ChangePassword(ctx context.Context, employeeID string, req auth.ChangePasswordRequest) error
}

type authService struct {
	log         *logrus.Logger
	authRepo    authRepository.Repository
	bcryptUtils bcrypt.IBcrypt
	utils       utils.IUtils
}

func New(
	log *logrus.Logger,
	authRepo authRepository.Repository,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) IAuthService {
	return &authService{
		log:         log,
		authRepo:    authRepo,
		bcryptUtils: bcryptUtils,
		utils:       utils,
	}
}
