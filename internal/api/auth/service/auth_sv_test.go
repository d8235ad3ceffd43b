package authService

import (
	"io"
	"testing"

	"github.com/Abdouldav-cyber/chat/internal/api/auth"
	authRepository "github.com/Abdouldav-cyber/chat/internal/api/auth/repository"
	"github.com/Abdouldav-cyber/chat/internal/entity"
	"github.com/Abdouldav-cyber/chat/pkg/bcrypt"
	"github.com/Abdouldav-cyber/chat/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type stubEmployees struct {
	byEmail   map[string]entity.Employee
	byID      map[string]entity.Employee
	created   []entity.Employee
	passwords map[string]string
}

func (s *stubEmployees) CreateEmployee(_ context.Context, employee entity.Employee) error {
	if _, ok := s.byEmail[employee.Email]; ok {
		return auth.ErrEmailAlreadyInUse
	}
	s.created = append(s.created, employee)
	return nil
}

func (s *stubEmployees) GetEmployeeByID(_ context.Context, id string) (entity.Employee, error) {
	employee, ok := s.byID[id]
	if !ok {
		return entity.Employee{}, auth.ErrEmployeeNotFound
	}
	return employee, nil
}

func (s *stubEmployees) GetEmployeeByEmail(_ context.Context, email string) (entity.Employee, error) {
	employee, ok := s.byEmail[email]
	if !ok {
		return entity.Employee{}, auth.ErrEmployeeNotFound
	}
	return employee, nil
}

func (s *stubEmployees) UpdatePassword(_ context.Context, id string, hashedPassword string) error {
	if s.passwords == nil {
		s.passwords = map[string]string{}
	}
	s.passwords[id] = hashedPassword
	return nil
}

type stubAuthRepository struct {
	employees *stubEmployees
}

func (r *stubAuthRepository) NewClient(bool) (authRepository.Client, error) {
	return authRepository.Client{
		Employees: r.employees,
		Commit:    func() error { return nil },
		Rollback:  func() error { return nil },
	}, nil
}

func newTestService(employees *stubEmployees) IAuthService {
	return New(testLogger(), &stubAuthRepository{employees: employees}, bcrypt.NewWithCost(4), utils.New())
}

func TestRegisterDefaults(t *testing.T) {
	employees := &stubEmployees{}
	service := newTestService(employees)

	result, err := service.Register(context.Background(), auth.RegisterRequest{
		Email:    "marie@example.com",
		FullName: "Marie Dupont",
		Password: "motdepasse",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if result.Role != entity.RoleEmployee {
		t.Errorf("Role = %q, want %q", result.Role, entity.RoleEmployee)
	}
	if result.LeaveBalance != defaultLeaveBalance {
		t.Errorf("LeaveBalance = %v, want %v", result.LeaveBalance, defaultLeaveBalance)
	}
	if len(employees.created) != 1 {
		t.Fatalf("created %d employees, want 1", len(employees.created))
	}
	if employees.created[0].Password == "motdepasse" {
		t.Error("password stored in clear")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	employees := &stubEmployees{byEmail: map[string]entity.Employee{
		"marie@example.com": {Email: "marie@example.com"},
	}}
	service := newTestService(employees)

	_, err := service.Register(context.Background(), auth.RegisterRequest{
		Email:    "marie@example.com",
		FullName: "Marie Dupont",
		Password: "motdepasse",
	})
	if err != auth.ErrEmailAlreadyInUse {
		t.Errorf("Register error = %v, want ErrEmailAlreadyInUse", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	hashed, err := bcrypt.NewWithCost(4).HashPassword("motdepasse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	employees := &stubEmployees{byEmail: map[string]entity.Employee{
		"marie@example.com": {ID: "emp-1", Email: "marie@example.com", Password: hashed},
	}}
	service := newTestService(employees)

	_, err = service.Login(context.Background(), auth.LoginRequest{
		Email:    "marie@example.com",
		Password: "mauvais",
	})
	if err != auth.ErrInvalidEmailOrPassword {
		t.Errorf("Login error = %v, want ErrInvalidEmailOrPassword", err)
	}
}

func TestLoginUnknownEmailHidesExistence(t *testing.T) {
	service := newTestService(&stubEmployees{})

	_, err := service.Login(context.Background(), auth.LoginRequest{
		Email:    "absent@example.com",
		Password: "motdepasse",
	})
	if err != auth.ErrInvalidEmailOrPassword {
		t.Errorf("Login error = %v, want ErrInvalidEmailOrPassword", err)
	}
}

func TestLoginIssuesToken(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	hashed, err := bcrypt.NewWithCost(4).HashPassword("motdepasse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	employees := &stubEmployees{byEmail: map[string]entity.Employee{
		"marie@example.com": {
			ID:       "emp-1",
			Email:    "marie@example.com",
			Password: hashed,
			Role:     entity.RoleEmployee,
		},
	}}
	service := newTestService(employees)

	result, err := service.Login(context.Background(), auth.LoginRequest{
		Email:    "marie@example.com",
		Password: "motdepasse",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if result.AccessToken == "" {
		t.Error("AccessToken missing")
	}
	if result.Employee.ID != "emp-1" {
		t.Errorf("Employee.ID = %q", result.Employee.ID)
	}
}

func TestChangePasswordSameValue(t *testing.T) {
	hashed, err := bcrypt.NewWithCost(4).HashPassword("motdepasse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	employees := &stubEmployees{byID: map[string]entity.Employee{
		"emp-1": {ID: "emp-1", Password: hashed},
	}}
	service := newTestService(employees)

	err = service.ChangePassword(context.Background(), "emp-1", auth.ChangePasswordRequest{
		OldPassword: "motdepasse",
		NewPassword: "motdepasse",
	})
	if err != auth.ErrPasswordSame {
		t.Errorf("ChangePassword error = %v, want ErrPasswordSame", err)
	}
}
