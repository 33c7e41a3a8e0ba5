package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/staffhub-hr/hrms-backend-go/internal/domain/user"
	"github.com/staffhub-hr/hrms-backend-go/internal/pkg/jwt"
)

type AuthService struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) *AuthService {
	return &AuthService{userRepo: userRepo, jwtService: jwtService}
}

// Login verifies the credentials and issues an access/refresh token pair.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req user.LoginRequest) (user.TokenPair, error) {
	if err := req.Validate(); err != nil {
		return user.TokenPair{}, err
	}

	account, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.TokenPair{}, user.ErrInvalidCredentials
		}
		return user.TokenPair{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !account.IsActive || account.PasswordHash == nil {
		return user.TokenPair{}, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*account.PasswordHash), []byte(req.Password)); err != nil {
		return user.TokenPair{}, user.ErrInvalidCredentials
	}

	return s.issueTokens(account)
}

// Refresh exchanges a valid refresh token for a fresh pair. The refresh
// token rotates on every call.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (user.TokenPair, error) {
	userID, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return user.TokenPair{}, user.ErrInvalidToken
	}

	account, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.TokenPair{}, user.ErrInvalidToken
		}
		return user.TokenPair{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if !account.IsActive {
		return user.TokenPair{}, user.ErrInvalidToken
	}

	return s.issueTokens(account)
}

func (s *AuthService) issueTokens(account user.User) (user.TokenPair, error) {
	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(account.ID, account.Email, account.EmployeeID, account.Role)
	if err != nil {
		return user.TokenPair{}, fmt.Errorf("failed to create access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(account.ID)
	if err != nil {
		return user.TokenPair{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return user.TokenPair{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExpiresAt,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExpiresAt,
		User:             account,
	}, nil
}
