package authservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/snekrasov/regcenter/internal/domain"
	"github.com/snekrasov/regcenter/pkg/auth"
)

type EmployeeRepo interface {
	FindByLogin(ctx context.Context, login string) (*domain.Employee, error)
	FindByID(ctx context.Context, id int) (*domain.Employee, error)
}

type Service struct {
	employeeRepo EmployeeRepo
	hashService  auth.HashServiceInterface
	jwtService   auth.JWTServiceInterface
	tokenTTL     time.Duration
}

func New(employeeRepo EmployeeRepo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		employeeRepo: employeeRepo,
		hashService:  hashService,
		jwtService:   jwtService,
		tokenTTL:     tokenTTL,
	}
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmployeeNotFound   = errors.New("employee not found")
)

// Login authenticates an employee and issues a bearer token. Deactivated
// accounts are rejected the same way as wrong passwords.
func (s *Service) Login(ctx context.Context, login, password string) (string, *domain.Employee, error) {
	employee, err := s.employeeRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find employee", zap.Error(err))
		return "", nil, err
	}
	if employee == nil || !employee.IsActive {
		return "", nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(employee.PasswordHash, password); !ok {
		return "", nil, ErrInvalidCredentials
	}

	expirationTime := time.Now().Add(s.tokenTTL)
	token, err := s.jwtService.GenerateJWT(employee.ID, employee.Name, string(employee.Role), employee.Login, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", nil, err
	}
	zap.L().Info("employee authenticated", zap.String("login", login))
	return token, employee, nil
}

// Me resolves the authenticated employee by id.
func (s *Service) Me(ctx context.Context, employeeID int) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		zap.L().Error("can't find employee", zap.Error(err))
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}
	return employee, nil
}
