package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ss-collections-api/internal/core/cache"
	"ss-collections-api/internal/domain"
	resp "ss-collections-api/internal/transport/http/response"
	"ss-collections-api/pkg/utils"
)

// AdminProductHandler 管理端商品 CRUD；列表不过滤 show_on_user_side
type AdminProductHandler struct {
	products domain.ProductRepository
	cache    *cache.Cache // 可为 nil
}

func NewAdminProductHandler(products domain.ProductRepository, c *cache.Cache) *AdminProductHandler {
	return &AdminProductHandler{products: products, cache: c}
}

type productIn struct {
	Name           string           `json:"name" binding:"required"`
	Description    string           `json:"description"`
	Price          float64          `json:"price" binding:"required,gt=0"`
	OriginalPrice  *float64         `json:"original_price"`
	Category       string           `json:"category" binding:"required"`
	Sizes          []domain.Variant `json:"sizes"`
	Colors         []string         `json:"colors"`
	Images         []string         `json:"images"`
	Stock          int              `json:"stock" binding:"omitempty,min=0"`
	Rating         float64          `json:"rating" binding:"omitempty,min=0,max=5"`
	ReviewsCount   int              `json:"reviews_count"`
	IsNew          bool             `json:"is_new"`
	IsFeatured     bool             `json:"is_featured"`
	IsOnSale       bool             `json:"is_on_sale"`
	ShowOnUserSide *bool            `json:"show_on_user_side"`
}

func (in *productIn) apply(p *domain.Product) {
	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.OriginalPrice = in.OriginalPrice
	p.Category = in.Category
	p.Sizes = in.Sizes
	p.Colors = in.Colors
	p.Images = in.Images
	p.Stock = in.Stock
	p.Rating = in.Rating
	p.ReviewsCount = in.ReviewsCount
	p.IsNew = in.IsNew
	p.IsFeatured = in.IsFeatured
	p.IsOnSale = in.IsOnSale
	if in.ShowOnUserSide != nil {
		p.ShowOnUserSide = *in.ShowOnUserSide
	} else {
		p.ShowOnUserSide = true
	}
}

func (h *AdminProductHandler) List(c *gin.Context) {
	ps, err := h.products.ListAll(c.Request.Context())
	if err != nil {
		resp.WriteErr(c, resp.CodeServerError, "failed to list products")
		return
	}
	resp.WriteOK(c, http.StatusOK, ps)
}

func (h *AdminProductHandler) Create(c *gin.Context) {
	var in productIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.WriteErr(c, resp.CodeBadRequest, "name, price and category are required")
		return
	}
	p := &domain.Product{ID: utils.NewID()}
	in.apply(p)
	if err := h.products.Create(c.Request.Context(), p); err != nil {
		resp.WriteErr(c, resp.CodeServerError, "failed to create product")
		return
	}
	resp.WriteOK(c, http.StatusCreated, p)
}

func (h *AdminProductHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var in productIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.WriteErr(c, resp.CodeBadRequest, "name, price and category are required")
		return
	}
	p := &domain.Product{ID: id}
	in.apply(p)
	if err := h.products.Update(c.Request.Context(), p); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			resp.WriteErr(c, resp.CodeNotFound, "product not found")
			return
		}
		resp.WriteErr(c, resp.CodeServerError, "failed to update product")
		return
	}
	if h.cache != nil {
		h.cache.Invalidate(c.Request.Context(), "product:"+id)
	}
	resp.WriteOK(c, http.StatusOK, p)
}

func (h *AdminProductHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			resp.WriteErr(c, resp.CodeNotFound, "product not found")
			return
		}
		resp.WriteErr(c, resp.CodeServerError, "failed to delete product")
		return
	}
	if h.cache != nil {
		h.cache.Invalidate(c.Request.Context(), "product:"+id)
	}
	resp.WriteOK(c, http.StatusOK, gin.H{"id": id})
}
