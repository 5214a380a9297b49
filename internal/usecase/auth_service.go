package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ottstream/mylist/internal/auth"
	"github.com/ottstream/mylist/internal/domain/model"
	"github.com/ottstream/mylist/internal/domain/repository"
)

// ErrInvalidCredentials is returned for an unknown username or a wrong
// password. The two cases are deliberately indistinguishable to callers.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthUser is the public view of a user account, without the password.
type AuthUser struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

// LoginOutput contains the result of a successful login.
type LoginOutput struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

// AuthService defines the token-based login flow.
type AuthService interface {
	// Login checks credentials against the user directory and issues an
	// access token. Returns ErrInvalidCredentials on any mismatch.
	Login(ctx context.Context, username, password string) (*LoginOutput, error)

	// Verify validates an access token and returns its claims.
	Verify(ctx context.Context, token string) (*auth.Claims, error)
}

// AuthServiceConfig holds configuration for AuthService.
type AuthServiceConfig struct {
	JWTSecret   string
	TokenExpiry time.Duration
}

type authService struct {
	users repository.UserDirectory
	cfg   AuthServiceConfig
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users repository.UserDirectory, cfg AuthServiceConfig) AuthService {
	return &authService{users: users, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, username, password string) (*LoginOutput, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	// Seed accounts store plain-text passwords; hashing is out of scope
	// for this service.
	if password != user.Password {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Username, user.Email, s.cfg.JWTSecret, s.cfg.TokenExpiry)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &LoginOutput{
		Token: token,
		User:  toAuthUser(user),
	}, nil
}

func (s *authService) Verify(ctx context.Context, token string) (*auth.Claims, error) {
	return auth.VerifyToken(token, s.cfg.JWTSecret)
}

func toAuthUser(u *model.User) AuthUser {
	return AuthUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
