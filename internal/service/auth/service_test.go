package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffhub-hr/hrms-backend-go/internal/domain/user"
	"github.com/staffhub-hr/hrms-backend-go/internal/pkg/jwt"
)

type stubUserRepo struct {
	byEmail  map[string]user.User
	byID     map[string]user.User
	emailErr error
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	if s.emailErr != nil {
		return user.User{}, s.emailErr
	}
	if u, ok := s.byEmail[email]; ok {
		return u, nil
	}
	return user.User{}, user.ErrUserNotFound
}

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	if u, ok := s.byID[id]; ok {
		return u, nil
	}
	return user.User{}, user.ErrUserNotFound
}

func newTestAuthService(t *testing.T, users ...user.User) (*AuthService, jwt.Service) {
	t.Helper()
	repo := &stubUserRepo{
		byEmail: make(map[string]user.User),
		byID:    make(map[string]user.User),
	}
	for _, u := range users {
		repo.byEmail[u.Email] = u
		repo.byID[u.ID] = u
	}
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	return NewAuthService(repo, jwtService), jwtService
}

func testUser(t *testing.T, password string) user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	hashed := string(hash)
	employeeID := "emp-1"
	return user.User{
		ID:           "user-1",
		Email:        "hr@example.com",
		PasswordHash: &hashed,
		Role:         user.RoleHR,
		EmployeeID:   &employeeID,
		IsActive:     true,
	}
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc, jwtService := newTestAuthService(t, testUser(t, "password123"))

	pair, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "hr@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "user-1", pair.User.ID)

	decoded, err := jwtService.JWTAuth().Decode(pair.AccessToken)
	require.NoError(t, err)
	tokenType, ok := decoded.Get("type")
	require.True(t, ok)
	assert.Equal(t, "access", tokenType)
	role, ok := decoded.Get("role")
	require.True(t, ok)
	assert.Equal(t, "hr", role)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _ := newTestAuthService(t, testUser(t, "password123"))

	_, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "hr@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	u := testUser(t, "password123")
	u.IsActive = false
	svc, _ := newTestAuthService(t, u)

	_, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "hr@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLoginPropagatesStorageError(t *testing.T) {
	repo := &stubUserRepo{emailErr: errors.New("connection refused")}
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	svc := NewAuthService(repo, jwtService)

	_, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "hr@example.com",
		Password: "password123",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, user.ErrInvalidCredentials)
	assert.ErrorContains(t, err, "connection refused")
}

func TestRefreshRotatesTokens(t *testing.T) {
	svc, _ := newTestAuthService(t, testUser(t, "password123"))

	pair, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "hr@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", refreshed.User.ID)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEmpty(t, refreshed.RefreshToken)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newTestAuthService(t, testUser(t, "password123"))

	pair, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "hr@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, user.ErrInvalidToken)
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	svc, _ := newTestAuthService(t, testUser(t, "password123"))

	_, err := svc.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, user.ErrInvalidToken)
}
