package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ss-collections-api/internal/domain"
	resp "ss-collections-api/internal/transport/http/response"
)

// AdminStatsHandler 后台首页的几个计数
type AdminStatsHandler struct {
	products domain.ProductRepository
	users    domain.UserRepository
	reviews  domain.ReviewRepository
}

func NewAdminStatsHandler(products domain.ProductRepository, users domain.UserRepository, reviews domain.ReviewRepository) *AdminStatsHandler {
	return &AdminStatsHandler{products: products, users: users, reviews: reviews}
}

func (h *AdminStatsHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	products, err := h.products.Count(ctx)
	if err != nil {
		resp.WriteErr(c, resp.CodeServerError, "failed to load stats")
		return
	}
	users, err := h.users.Count(ctx)
	if err != nil {
		resp.WriteErr(c, resp.CodeServerError, "failed to load stats")
		return
	}
	reviews, err := h.reviews.Count(ctx)
	if err != nil {
		resp.WriteErr(c, resp.CodeServerError, "failed to load stats")
		return
	}

	resp.WriteOK(c, http.StatusOK, gin.H{
		"products": products,
		"users":    users,
		"reviews":  reviews,
	})
}
