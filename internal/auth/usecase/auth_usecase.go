package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	authdomain "imf-gadget-backend/internal/auth/domain"
	authdto "imf-gadget-backend/internal/auth/dto"
	"imf-gadget-backend/internal/auth/repository"
	"imf-gadget-backend/pkg/config"
	"imf-gadget-backend/pkg/response"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// Claims binds the session token to its user.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// authUsecase implements AuthUsecase
type authUsecase struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	config    *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, tokenRepo repository.TokenRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		config:    cfg,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdomain.User, error) {
	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Name:     req.Name,
		Email:    strings.ToLower(req.Email),
		Password: hashedPassword,
	}

	// The unique index is the duplicate check; a pre-read would leave a
	// race window between the lookup and the insert.
	if err := u.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.Conflict("User already exists!")
		}
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdomain.User, string, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, "", err
	}

	if user == nil {
		return nil, "", response.Unauthorized("No User found!")
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, "", response.Unauthorized("Invalid Password!")
	}

	token, err := u.generateToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (u *authUsecase) ValidateToken(tokenString string) (*authdomain.User, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, response.Unauthorized("Token expired, please log in again!")
		}
		return nil, response.Unauthorized("Invalid token!")
	}
	if !token.Valid {
		return nil, response.Unauthorized("Invalid token!")
	}

	// Cryptographic validity is not enough: a signed-out token stays in the
	// blacklist until it would have expired anyway.
	blacklisted, err := u.tokenRepo.IsBlacklisted(tokenString)
	if err != nil {
		return nil, err
	}
	if blacklisted {
		return nil, response.Unauthorized("Session expired, please log in again!")
	}

	user, err := u.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, response.Unauthorized("No User found!")
	}

	return user, nil
}

func (u *authUsecase) Logout(token string) error {
	return u.tokenRepo.Blacklist(token)
}

func (u *authUsecase) Update(user *authdomain.User, req *authdto.UpdateUserRequest) (*authdomain.User, error) {
	if req.Name != "" && req.Name == user.Name {
		return nil, response.BadRequest("New name and existing name are same! Enter new value.")
	}

	if req.Email != "" && strings.EqualFold(req.Email, user.Email) {
		return nil, response.BadRequest("New email and existing email are same! Enter new value.")
	}

	if req.Email != "" {
		existing, err := u.userRepo.FindByEmail(req.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, response.BadRequest("Another account exists on this email! Provide another email.")
		}
	}

	fields := map[string]interface{}{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Email != "" {
		fields["email"] = req.Email
	}
	if req.Password != "" {
		hashedPassword, err := repository.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		fields["password"] = hashedPassword
	}

	if len(fields) == 0 {
		return nil, response.BadRequest("No data")
	}

	updated, err := u.userRepo.Update(user.ID, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.BadRequest("Another account exists on this email! Provide another email.")
		}
		return nil, err
	}
	if updated == nil {
		return nil, response.NotFound("No User found!")
	}

	return updated, nil
}

func (u *authUsecase) Delete(userID string) (*authdomain.User, error) {
	deleted, err := u.userRepo.Delete(userID)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, response.BadRequest("Unable to delete User!")
	}
	return deleted, nil
}

func (u *authUsecase) generateToken(userID string) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(u.config.JWTExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(u.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
