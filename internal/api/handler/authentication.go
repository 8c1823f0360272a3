package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/smart-inventory-api/internal/domain"
	"github.com/vfg2006/smart-inventory-api/internal/usecases/authenticating"
	"github.com/vfg2006/smart-inventory-api/pkg/apiErrors"
	"github.com/vfg2006/smart-inventory-api/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		token, err := service.LoginUser(req.Email, req.Password)
		if err != nil {
			handleLoginError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{Token: token})
	}
}

// GetMe returns the claims of the logged user.
func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User not authenticated", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"email":   userClaims.UserEmail,
			"role_id": userClaims.UserRoleID,
		})
	}
}

// handleLoginError never tells apart an unknown user from a wrong password.
func handleLoginError(w http.ResponseWriter, err error) {
	switch {
	case authenticating.IsCredentialsError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Invalid email or password", nil)
	case errors.Is(err, authenticating.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Email and password are required", nil)
	default:
		var authErr *authenticating.AuthError
		if errors.As(err, &authErr) {
			apiErrors.WriteError(w, authErr.Code, "Could not log in", nil)
			return
		}
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Could not log in", nil)
	}
}
