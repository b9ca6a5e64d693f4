package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ss-collections-api/internal/catalog"
	"ss-collections-api/internal/core/config"
	resp "ss-collections-api/internal/transport/http/response"
	"ss-collections-api/internal/whatsapp"
)

// OrderHandler 下单走 WhatsApp 深链：服务端核价、拼消息，
// 不落订单库，收单和履约都在店家的 WhatsApp 里完成
type OrderHandler struct {
	engine *catalog.Engine
	store  config.Store
}

func NewOrderHandler(engine *catalog.Engine, store config.Store) *OrderHandler {
	return &OrderHandler{engine: engine, store: store}
}

func (h *OrderHandler) CreateWhatsApp(c *gin.Context) {
	var in struct {
		Items []struct {
			ProductID string `json:"productId" binding:"required"`
			Quantity  int    `json:"quantity" binding:"required,min=1"`
			Size      string `json:"size"`
			Color     string `json:"color"`
		} `json:"items" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.WriteErr(c, resp.CodeBadRequest, "at least one order item is required")
		return
	}

	order := whatsapp.Order{
		StoreName: h.store.Name,
		Currency:  h.store.Currency,
		Number:    fmt.Sprintf("ORD-%d", time.Now().Unix()),
	}
	for _, it := range in.Items {
		p := h.engine.Get(c.Request.Context(), it.ProductID)
		if p == nil || !p.ShowOnUserSide {
			resp.WriteErr(c, resp.CodeBadRequest, "unknown product: "+it.ProductID)
			return
		}
		if it.Size != "" && !p.HasSize(it.Size) {
			resp.WriteErr(c, resp.CodeBadRequest,
				fmt.Sprintf("product %s has no size %s", p.Name, it.Size))
			return
		}
		// 价格以服务端为准，客户端只报 id/数量
		price := p.VariantPrice(it.Size)
		order.Items = append(order.Items, whatsapp.OrderItem{
			Name:     p.Name,
			Price:    price,
			Quantity: it.Quantity,
			Size:     it.Size,
			Color:    it.Color,
		})
		order.Total += price * float64(it.Quantity)
	}

	resp.WriteOK(c, http.StatusOK, gin.H{
		"link":   order.Link(h.store.WhatsAppPhone),
		"number": order.Number,
		"total":  order.Total,
	})
}
