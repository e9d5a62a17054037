package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"tatvaops/internal/domain"
)

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}

type sessionSeeder interface {
	SetCurrentRole(ctx context.Context, userID int64, role domain.UserRole) error
}

// Service handles registration and login for both marketplace roles.
type Service struct {
	users   UserRepository
	jwt     jwtService
	session sessionSeeder
}

func NewService(users UserRepository, jwt jwtService, session sessionSeeder) *Service {
	return &Service{users: users, jwt: jwt, session: session}
}

func (s *Service) RegisterCustomer(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	return s.register(ctx, req, domain.RoleCustomer)
}

func (s *Service) RegisterVendor(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	return s.register(ctx, req, domain.RoleVendor)
}

func (s *Service) register(ctx context.Context, req RegisterRequest, role domain.UserRole) (*AuthResponse, error) {
	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         role,
		Name:         req.Name,
		Phone:        req.Phone,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	// Seed the persisted dashboard role so the first page load after
	// registration lands on the right side of the marketplace.
	if err := s.session.SetCurrentRole(ctx, user.ID, role); err != nil {
		return nil, err
	}

	return s.withToken(user)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.withToken(user)
}

func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *Service) withToken(user *domain.User) (*AuthResponse, error) {
	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return &AuthResponse{User: user, Token: token}, nil
}

// isUniqueViolation catches a concurrent registration racing past the
// GetByEmail check. Postgres reports SQLSTATE 23505; sqlite embeds the
// constraint name in the error text.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
