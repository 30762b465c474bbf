package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/snekrasov/regcenter/internal/domain"
	"github.com/snekrasov/regcenter/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockEmployeeRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	employeeRepo := NewMockEmployeeRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)
	service := New(employeeRepo, hashService, jwtService, 15*time.Minute)
	defer ctrl.Finish()
	return service, employeeRepo, hashService, jwtService
}

func activeEmployee() *domain.Employee {
	return &domain.Employee{
		ID:           5,
		Name:         "Смирнова А.",
		Role:         domain.RoleOperator,
		Login:        "operator1",
		PasswordHash: "hashedpassword",
		IsActive:     true,
	}
}

func TestLogin(t *testing.T) {
	service, employeeRepo, hashService, jwtService := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "successful login",
			prepareMock: func() {
				employeeRepo.EXPECT().FindByLogin(gomock.Any(), "operator1").Return(activeEmployee(), nil)
				hashService.EXPECT().ComparePassword("hashedpassword", "secret").Return(true)
				jwtService.EXPECT().GenerateJWT(5, "Смирнова А.", string(domain.RoleOperator), "operator1", gomock.Any()).
					Return("token123", nil)
			},
		},
		{
			name: "unknown login",
			prepareMock: func() {
				employeeRepo.EXPECT().FindByLogin(gomock.Any(), "operator1").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "deactivated account",
			prepareMock: func() {
				employee := activeEmployee()
				employee.IsActive = false
				employeeRepo.EXPECT().FindByLogin(gomock.Any(), "operator1").Return(employee, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			prepareMock: func() {
				employeeRepo.EXPECT().FindByLogin(gomock.Any(), "operator1").Return(activeEmployee(), nil)
				hashService.EXPECT().ComparePassword("hashedpassword", "secret").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "repo error",
			prepareMock: func() {
				employeeRepo.EXPECT().FindByLogin(gomock.Any(), "operator1").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			token, employee, err := service.Login(context.Background(), "operator1", "secret")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "token123", token)
				assert.Equal(t, 5, employee.ID)
			}
		})
	}
}

func TestMe(t *testing.T) {
	service, employeeRepo, _, _ := NewMock(t)

	t.Run("found", func(t *testing.T) {
		employeeRepo.EXPECT().FindByID(gomock.Any(), 5).Return(activeEmployee(), nil)
		employee, err := service.Me(context.Background(), 5)
		assert.NoError(t, err)
		assert.Equal(t, "operator1", employee.Login)
	})

	t.Run("missing", func(t *testing.T) {
		employeeRepo.EXPECT().FindByID(gomock.Any(), 5).Return(nil, nil)
		_, err := service.Me(context.Background(), 5)
		assert.ErrorIs(t, err, ErrEmployeeNotFound)
	})
}
