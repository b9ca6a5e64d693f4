package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ss-collections-api/internal/domain"
	resp "ss-collections-api/internal/transport/http/response"
)

type NewsletterHandler struct {
	subs domain.NewsletterRepository
}

func NewNewsletterHandler(subs domain.NewsletterRepository) *NewsletterHandler {
	return &NewsletterHandler{subs: subs}
}

func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var in struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.WriteErr(c, resp.CodeBadRequest, "a valid email is required")
		return
	}
	sub, err := h.subs.Subscribe(c.Request.Context(), in.Email)
	if err != nil {
		resp.WriteErr(c, resp.CodeServerError, "subscription failed")
		return
	}
	resp.WriteOK(c, http.StatusOK, gin.H{
		"message":      "successfully subscribed to newsletter",
		"subscription": sub,
	})
}

func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	var in struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.WriteErr(c, resp.CodeBadRequest, "a valid email is required")
		return
	}
	if err := h.subs.Unsubscribe(c.Request.Context(), in.Email); err != nil {
		resp.WriteErr(c, resp.CodeServerError, "unsubscribe failed")
		return
	}
	resp.WriteOK(c, http.StatusOK, gin.H{"message": "successfully unsubscribed from newsletter"})
}
