package usecase

import (
	authdomain "imf-gadget-backend/internal/auth/domain"
	authdto "imf-gadget-backend/internal/auth/dto"
)

// AuthUsecase covers account lifecycle and session tokens.
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdomain.User, error)
	// Login returns the authenticated user and a signed session token.
	Login(req *authdto.LoginRequest) (*authdomain.User, string, error)
	// ValidateToken resolves a token to its user. A well-formed, unexpired
	// token that has been blacklisted is treated as unauthenticated.
	ValidateToken(token string) (*authdomain.User, error)
	// Logout blacklists the presented token; repeated calls are no-ops.
	Logout(token string) error
	Update(user *authdomain.User, req *authdto.UpdateUserRequest) (*authdomain.User, error)
	Delete(userID string) (*authdomain.User, error)
}
