package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ss-collections-api/internal/domain"
	"ss-collections-api/internal/service"
	resp "ss-collections-api/internal/transport/http/response"
)

// AdminUserHandler 管理员的增列降；降级只改 role，不删行
type AdminUserHandler struct {
	accounts *service.AccountService
	users    domain.UserRepository
}

func NewAdminUserHandler(accounts *service.AccountService, users domain.UserRepository) *AdminUserHandler {
	return &AdminUserHandler{accounts: accounts, users: users}
}

func (h *AdminUserHandler) Create(c *gin.Context) {
	var in struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		FullName string `json:"fullName" binding:"omitempty,max=64"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.WriteErr(c, resp.CodeBadRequest, "email and password are required")
		return
	}

	u, err := h.accounts.CreateAdmin(c.Request.Context(), in.Email, in.Password, in.FullName)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			resp.WriteErr(c, resp.CodeConflict, "admin with this email already exists")
			return
		}
		resp.WriteErr(c, resp.CodeServerError, "failed to create admin")
		return
	}
	resp.WriteOK(c, http.StatusCreated, gin.H{"admin": viewOf(u)})
}

func (h *AdminUserHandler) List(c *gin.Context) {
	var q struct {
		Offset int `form:"offset,default=0"`
		Limit  int `form:"limit,default=20"`
	}
	if err := c.ShouldBindQuery(&q); err != nil || q.Limit <= 0 || q.Limit > 100 {
		q.Offset, q.Limit = 0, 20
	}

	admins, total, err := h.users.List(c.Request.Context(), domain.RoleAdmin, q.Offset, q.Limit)
	if err != nil {
		resp.WriteErr(c, resp.CodeServerError, "failed to list admins")
		return
	}
	items := make([]userView, 0, len(admins))
	for i := range admins {
		items = append(items, viewOf(&admins[i]))
	}
	resp.WriteOK(c, http.StatusOK, gin.H{"total": total, "items": items})
}

func (h *AdminUserHandler) Demote(c *gin.Context) {
	id := c.Param("id")
	if err := h.accounts.DemoteAdmin(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			resp.WriteErr(c, resp.CodeNotFound, "user not found")
			return
		}
		resp.WriteErr(c, resp.CodeServerError, "failed to demote admin")
		return
	}
	resp.WriteOK(c, http.StatusOK, gin.H{"id": id, "role": domain.RoleUser})
}
