package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ss-collections-api/internal/domain"
	mdw "ss-collections-api/internal/transport/http/middleware"
	resp "ss-collections-api/internal/transport/http/response"
	"ss-collections-api/pkg/utils"
)

type ReviewHandler struct {
	reviews domain.ReviewRepository
}

func NewReviewHandler(reviews domain.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// List GET /reviews?productId=
func (h *ReviewHandler) List(c *gin.Context) {
	productID := c.Query("productId")
	if productID == "" {
		resp.WriteErr(c, resp.CodeBadRequest, "product ID is required")
		return
	}
	rs, err := h.reviews.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		resp.WriteErr(c, resp.CodeServerError, "failed to load reviews")
		return
	}
	resp.WriteOK(c, http.StatusOK, rs)
}

// Create POST /reviews（需登录）
func (h *ReviewHandler) Create(c *gin.Context) {
	u := mdw.SessionUser(c)

	var in struct {
		ProductID string `json:"productId" binding:"required"`
		Rating    int    `json:"rating" binding:"required,min=1,max=5"`
		Comment   string `json:"comment" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.WriteErr(c, resp.CodeBadRequest, "product ID, rating (1-5), and comment are required")
		return
	}

	name := u.FullName
	if name == "" {
		name = u.Email
	}
	rv := &domain.Review{
		ID:        utils.NewID(),
		ProductID: in.ProductID,
		UserID:    u.ID,
		UserName:  name,
		Rating:    in.Rating,
		Comment:   in.Comment,
	}
	if err := h.reviews.Create(c.Request.Context(), rv); err != nil {
		resp.WriteErr(c, resp.CodeServerError, "failed to create review")
		return
	}
	resp.WriteOK(c, http.StatusCreated, gin.H{"review": rv})
}

// Helpful POST /reviews/:id/helpful（需登录）
func (h *ReviewHandler) Helpful(c *gin.Context) {
	var in struct {
		IsHelpful *bool `json:"isHelpful" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.WriteErr(c, resp.CodeBadRequest, "isHelpful must be a boolean")
		return
	}

	delta := 1
	if !*in.IsHelpful {
		delta = -1
	}
	err := h.reviews.AdjustHelpful(c.Request.Context(), c.Param("id"), delta)
	if err != nil {
		if errors.Is(err, domain.ErrReviewNotFound) {
			resp.WriteErr(c, resp.CodeNotFound, "review not found")
			return
		}
		resp.WriteErr(c, resp.CodeServerError, "failed to update review")
		return
	}
	resp.WriteOK(c, http.StatusOK, gin.H{"message": "review helpfulness updated"})
}
