package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ss-collections-api/internal/domain"
	"ss-collections-api/internal/service"
	mdw "ss-collections-api/internal/transport/http/middleware"
	resp "ss-collections-api/internal/transport/http/response"
)

const sessionMaxAge = 7 * 24 * 3600

type AuthHandler struct {
	accounts *service.AccountService
	resets   *service.ResetService
	// secureCookie prod 环境置位，cookie 带 Secure
	secureCookie bool
}

func NewAuthHandler(accounts *service.AccountService, resets *service.ResetService, secureCookie bool) *AuthHandler {
	return &AuthHandler{accounts: accounts, resets: resets, secureCookie: secureCookie}
}

// userView 对外的用户视图；密码散列永远不出门
type userView struct {
	ID       string      `json:"id"`
	Email    string      `json:"email"`
	FullName string      `json:"full_name"`
	Phone    string      `json:"phone,omitempty"`
	Role     domain.Role `json:"role"`
}

func viewOf(u *domain.User) userView {
	return userView{ID: u.ID, Email: u.Email, FullName: u.FullName, Phone: u.Phone, Role: u.Role}
}

func (h *AuthHandler) setSession(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(mdw.CookieName, token, sessionMaxAge, "/", "", h.secureCookie, true)
}

func (h *AuthHandler) clearSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(mdw.CookieName, "", -1, "/", "", h.secureCookie, true)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var in struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		FullName string `json:"fullName" binding:"omitempty,max=64"`
		Phone    string `json:"phone" binding:"omitempty,max=32"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.WriteErr(c, resp.CodeBadRequest, "email and password are required")
		return
	}

	res, err := h.accounts.Register(c.Request.Context(), in.Email, in.Password, in.FullName, in.Phone)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			// 冲突时不发 cookie
			resp.WriteErr(c, resp.CodeConflict, "user already exists")
			return
		}
		resp.WriteErr(c, resp.CodeServerError, "registration failed")
		return
	}

	h.setSession(c, res.Token)
	resp.WriteOK(c, http.StatusCreated, gin.H{"user": viewOf(res.User)})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.WriteErr(c, resp.CodeBadRequest, "email and password are required")
		return
	}

	res, err := h.accounts.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			resp.WriteErr(c, resp.CodeUnauthorized, "invalid credentials")
			return
		}
		resp.WriteErr(c, resp.CodeServerError, "login failed")
		return
	}

	h.setSession(c, res.Token)
	resp.WriteOK(c, http.StatusOK, gin.H{"user": viewOf(res.User)})
}

func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var in struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.WriteErr(c, resp.CodeBadRequest, "email and password are required")
		return
	}

	res, err := h.accounts.AdminLogin(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			resp.WriteErr(c, resp.CodeUnauthorized, "invalid credentials")
			return
		}
		resp.WriteErr(c, resp.CodeServerError, "login failed")
		return
	}

	h.setSession(c, res.Token)
	resp.WriteOK(c, http.StatusOK, gin.H{"user": viewOf(res.User)})
}

// Logout 服务端没有吊销表，登出就是清 cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSession(c)
	resp.WriteOK(c, http.StatusOK, gin.H{"message": "logged out"})
}

// Me 挂在 AuthSession 之后
func (h *AuthHandler) Me(c *gin.Context) {
	u := mdw.SessionUser(c)
	if u == nil {
		resp.WriteErr(c, resp.CodeUnauthorized, "authentication required")
		return
	}
	resp.WriteOK(c, http.StatusOK, gin.H{"user": viewOf(u)})
}

// genericResetMsg 不论邮箱存不存在都回同一句话
const genericResetMsg = "If an account with that email exists, we sent a password reset link."

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var in struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.WriteErr(c, resp.CodeBadRequest, "email is required")
		return
	}

	if err := h.resets.RequestReset(c.Request.Context(), in.Email); err != nil {
		resp.WriteErr(c, resp.CodeServerError, "failed to send reset email")
		return
	}
	resp.WriteOK(c, http.StatusOK, gin.H{"message": genericResetMsg})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var in struct {
		Token    string `json:"token" binding:"required"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.WriteErr(c, resp.CodeBadRequest, "token and password are required")
		return
	}

	if err := h.resets.ConsumeReset(c.Request.Context(), in.Token, in.Password); err != nil {
		if errors.Is(err, domain.ErrResetTokenInvalid) {
			resp.WriteErr(c, resp.CodeBadRequest, "invalid or expired reset token")
			return
		}
		resp.WriteErr(c, resp.CodeServerError, "password reset failed")
		return
	}
	resp.WriteOK(c, http.StatusOK, gin.H{"message": "password reset successfully"})
}
