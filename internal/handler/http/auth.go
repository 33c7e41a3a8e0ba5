package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/staffhub-hr/hrms-backend-go/internal/domain/user"
	"github.com/staffhub-hr/hrms-backend-go/internal/handler/http/response"
	"github.com/staffhub-hr/hrms-backend-go/internal/pkg/jwt"
	authService "github.com/staffhub-hr/hrms-backend-go/internal/service/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService *authService.AuthService
	jwtService  jwt.Service
}

func NewAuthHandler(service *authService.AuthService, jwtService jwt.Service) AuthHandler {
	return &AuthHandlerImpl{authService: service, jwtService: jwtService}
}

// Login implements AuthHandler.
func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req user.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	pair, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(pair.RefreshToken, pair.RefreshExpiresAt))
	response.SuccessWithMessage(w, "Logged in successfully", toLoginResponse(pair))
}

// Refresh implements AuthHandler. The refresh token travels in an HTTP-only
// cookie and rotates on every exchange.
func (h *AuthHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		response.Unauthorized(w, "Refresh token is missing")
		return
	}

	pair, err := h.authService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(pair.RefreshToken, pair.RefreshExpiresAt))
	response.SuccessWithMessage(w, "Token refreshed successfully", toLoginResponse(pair))
}

// Logout implements AuthHandler. Expires the refresh cookie; access tokens
// simply age out.
func (h *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.jwtService.RefreshTokenCookie("", 0))
	response.SuccessWithMessage(w, "Logged out successfully", nil)
}

func toLoginResponse(pair user.TokenPair) user.LoginResponse {
	return user.LoginResponse{
		AccessToken: pair.AccessToken,
		ExpiresAt:   pair.AccessExpiresAt,
		User: user.LoginUserInfo{
			ID:         pair.User.ID,
			Email:      pair.User.Email,
			Role:       string(pair.User.Role),
			EmployeeID: pair.User.EmployeeID,
		},
	}
}
