package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"ss-collections-api/internal/catalog"
	"ss-collections-api/internal/core/cache"
	"ss-collections-api/internal/domain"
	resp "ss-collections-api/internal/transport/http/response"
)

const productCacheTTL = 5 * time.Minute

type ProductHandler struct {
	engine *catalog.Engine
	cache  *cache.Cache // 可为 nil（未配置 Redis）
}

func NewProductHandler(engine *catalog.Engine, c *cache.Cache) *ProductHandler {
	return &ProductHandler{engine: engine, cache: c}
}

func parsePrice(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// List GET /products — 浏览永远 200，主库挂了走兜底目录
func (h *ProductHandler) List(c *gin.Context) {
	f := catalog.Filters{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		MinPrice: parsePrice(c.Query("minPrice")),
		MaxPrice: parsePrice(c.Query("maxPrice")),
		Sizes:    splitCSV(c.Query("sizes")),
		Colors:   splitCSV(c.Query("colors")),
		IsNew:    c.Query("isNew") == "true",
		IsOnSale: c.Query("isOnSale") == "true",
		// 两个参数名都认，老前端用 featured
		Featured: c.Query("featured") == "true" || c.Query("isFeatured") == "true",
	}
	products := h.engine.Query(c.Request.Context(), f, c.DefaultQuery("sort", catalog.SortFeatured))
	resp.WriteOK(c, http.StatusOK, products)
}

// Get GET /products/:id — 详情走 Redis 缓存，miss 再回源
func (h *ProductHandler) Get(c *gin.Context) {
	id := c.Param("id")

	p, err := cache.GetOrLoadJSON[domain.Product](h.cache, c.Request.Context(),
		"product:"+id, productCacheTTL,
		func(ctx context.Context) (*domain.Product, error) {
			return h.engine.Get(ctx, id), nil
		})
	if err != nil || p == nil {
		// 缓存层故障时也直接回源一次
		if err != nil {
			p = h.engine.Get(c.Request.Context(), id)
		}
		if p == nil {
			resp.WriteErr(c, resp.CodeNotFound, "product not found")
			return
		}
	}
	if !p.ShowOnUserSide {
		// 隐藏商品对用户端视同不存在
		resp.WriteErr(c, resp.CodeNotFound, "product not found")
		return
	}
	resp.WriteOK(c, http.StatusOK, p)
}
