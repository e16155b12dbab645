package delivery

import (
	"net/http"

	authdto "imf-gadget-backend/internal/auth/dto"
	"imf-gadget-backend/internal/auth/usecase"
	"imf-gadget-backend/pkg/config"
	"imf-gadget-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	config      *config.Config
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		config:      cfg,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.BadRequest("Please enter Name, Email and Password!"))
		return
	}

	user, err := h.authUsecase.Register(&req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Created(c, "Account created successfully!", user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.BadRequest("Email or Password missing!"))
		return
	}

	user, token, err := h.authUsecase.Login(&req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	h.setSessionCookie(c, token)
	response.OK(c, "Logged In successfully!", user)
}

func (h *AuthHandler) Details(c *gin.Context) {
	response.OK(c, "User data fetched!", CurrentUser(c))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authUsecase.Logout(CurrentToken(c)); err != nil {
		response.Fail(c, response.Internal("Sign Out failed!"))
		return
	}

	h.clearSessionCookie(c)
	response.OK(c, "User Logged out!", nil)
}

func (h *AuthHandler) Update(c *gin.Context) {
	var req authdto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.BadRequest("Please enter a valid Email!"))
		return
	}

	updated, err := h.authUsecase.Update(CurrentUser(c), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "User updated!", updated)
}

func (h *AuthHandler) Delete(c *gin.Context) {
	deleted, err := h.authUsecase.Delete(CurrentUser(c).ID)
	if err != nil {
		response.Fail(c, err)
		return
	}

	h.clearSessionCookie(c)
	response.OK(c, "User Account DELETED!", deleted)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	sameSite := http.SameSiteLaxMode
	if h.config.IsProduction() {
		sameSite = http.SameSiteNoneMode
	}
	c.SetSameSite(sameSite)
	c.SetCookie("token", token, int(h.config.JWTExpiry.Seconds()), "/", "", h.config.IsProduction(), true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", h.config.IsProduction(), true)
}
