package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ottstream/mylist/internal/domain/model"
	"github.com/ottstream/mylist/internal/domain/repository"
)

const testJWTSecret = "test-secret"

func newTestAuthService(users *mockUserDirectory) AuthService {
	return NewAuthService(users, AuthServiceConfig{
		JWTSecret:   testJWTSecret,
		TokenExpiry: time.Hour,
	})
}

func testUser() *model.User {
	return &model.User{
		ID:        "user-1",
		Username:  "demo",
		Email:     "demo@example.com",
		Password:  "password123",
		Name:      "Demo User",
		CreatedAt: "2024-01-01T00:00:00Z",
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		findFn   func(ctx context.Context, username string) (*model.User, error)
		wantErr  error
	}{
		{
			name:     "successful login",
			username: "demo",
			password: "password123",
			findFn: func(ctx context.Context, username string) (*model.User, error) {
				return testUser(), nil
			},
		},
		{
			name:     "wrong password",
			username: "demo",
			password: "nope",
			findFn: func(ctx context.Context, username string) (*model.User, error) {
				return testUser(), nil
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "unknown user",
			username: "ghost",
			password: "password123",
			findFn: func(ctx context.Context, username string) (*model.User, error) {
				return nil, repository.ErrUserNotFound
			},
			wantErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAuthService(&mockUserDirectory{findByUsernameFn: tt.findFn})

			output, err := svc.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if output.Token == "" {
				t.Error("expected a signed token")
			}
			if output.User.Username != "demo" {
				t.Errorf("expected username demo, got %s", output.User.Username)
			}

			// The issued token must verify against the same secret.
			claims, err := svc.Verify(context.Background(), output.Token)
			if err != nil {
				t.Fatalf("issued token failed verification: %v", err)
			}
			if claims.UserID != "user-1" {
				t.Errorf("expected user-1 in claims, got %s", claims.UserID)
			}
		})
	}
}

func TestAuthService_Login_DoesNotExposePassword(t *testing.T) {
	svc := newTestAuthService(&mockUserDirectory{
		findByUsernameFn: func(ctx context.Context, username string) (*model.User, error) {
			return testUser(), nil
		},
	})

	output, err := svc.Login(context.Background(), "demo", "password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.User.ID != "user-1" || output.User.Email != "demo@example.com" {
		t.Errorf("unexpected user view: %+v", output.User)
	}
}

func TestAuthService_Verify_InvalidToken(t *testing.T) {
	svc := newTestAuthService(&mockUserDirectory{})

	if _, err := svc.Verify(context.Background(), "not-a-token"); err == nil {
		t.Error("expected error for a malformed token")
	}
}
