package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"tatvaops/internal/domain"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	u.ID = 1
	return args.Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockJWTService struct {
	mock.Mock
}

func (m *mockJWTService) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

type mockSessionSeeder struct {
	mock.Mock
}

func (m *mockSessionSeeder) SetCurrentRole(ctx context.Context, userID int64, role domain.UserRole) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

func TestService_RegisterCustomer_Success(t *testing.T) {
	users := new(mockUserRepo)
	jwtSvc := new(mockJWTService)
	session := new(mockSessionSeeder)

	users.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)
	session.On("SetCurrentRole", mock.Anything, int64(1), domain.RoleCustomer).Return(nil)
	jwtSvc.On("GenerateToken", int64(1), "customer").Return("fake-jwt-token", nil)

	svc := NewService(users, jwtSvc, session)
	res, err := svc.RegisterCustomer(context.Background(), RegisterRequest{
		Email:    "new@example.com",
		Password: "strongpass1",
		Name:     "Asha Patel",
	})

	assert.NoError(t, err)
	assert.Equal(t, "fake-jwt-token", res.Token)
	assert.Equal(t, domain.RoleCustomer, res.User.Role)
	assert.Empty(t, res.User.PasswordHash)
	users.AssertExpectations(t)
	session.AssertExpectations(t)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	users := new(mockUserRepo)
	jwtSvc := new(mockJWTService)
	session := new(mockSessionSeeder)

	users.On("GetByEmail", mock.Anything, "taken@example.com").
		Return(&domain.User{ID: 7, Email: "taken@example.com"}, nil)

	svc := NewService(users, jwtSvc, session)
	_, err := svc.RegisterVendor(context.Background(), RegisterRequest{
		Email:    "taken@example.com",
		Password: "strongpass1",
		Name:     "Someone Else",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Login_Success(t *testing.T) {
	users := new(mockUserRepo)
	jwtSvc := new(mockJWTService)
	session := new(mockSessionSeeder)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	assert.NoError(t, err)

	users.On("GetByEmail", mock.Anything, "vendor@example.com").Return(&domain.User{
		ID:           3,
		Email:        "vendor@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleVendor,
	}, nil)
	jwtSvc.On("GenerateToken", int64(3), "vendor").Return("token-3", nil)

	svc := NewService(users, jwtSvc, session)
	res, err := svc.Login(context.Background(), LoginRequest{
		Email:    "vendor@example.com",
		Password: "correct-horse",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token-3", res.Token)
	assert.Empty(t, res.User.PasswordHash)
}

func TestService_Login_WrongPassword(t *testing.T) {
	users := new(mockUserRepo)
	jwtSvc := new(mockJWTService)
	session := new(mockSessionSeeder)

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	users.On("GetByEmail", mock.Anything, "vendor@example.com").Return(&domain.User{
		ID:           3,
		Email:        "vendor@example.com",
		PasswordHash: string(hash),
	}, nil)

	svc := NewService(users, jwtSvc, session)
	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "vendor@example.com",
		Password: "wrong-battery",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	users := new(mockUserRepo)
	jwtSvc := new(mockJWTService)
	session := new(mockSessionSeeder)

	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	svc := NewService(users, jwtSvc, session)
	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
