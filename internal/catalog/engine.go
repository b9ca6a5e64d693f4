package catalog

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"ss-collections-api/internal/domain"
)

var fallbackServed = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "catalog_fallback_total",
	Help: "Times the static fallback catalog was served instead of the primary store",
})

func init() { prometheus.MustRegister(fallbackServed) }

// Engine 两级目录：主库 + 静态兜底。顾客浏览永远不报错，
// 主库挂了就退化到小的固定目录。
type Engine struct {
	primary  domain.ProductRepository
	fallback []domain.Product
	log      *zap.Logger
}

func NewEngine(primary domain.ProductRepository, l *zap.Logger) *Engine {
	return &Engine{primary: primary, fallback: fallbackProducts, log: l}
}

// Query 用户端查询；隐藏商品（show_on_user_side=false）永远不出现
func (e *Engine) Query(ctx context.Context, f Filters, sortBy string) []domain.Product {
	products, err := e.primary.ListVisible(ctx)
	if err != nil || len(products) == 0 {
		if err != nil {
			e.log.Warn("catalog primary unavailable, serving fallback", zap.Error(err))
		}
		fallbackServed.Inc()
		products = e.fallback
	}
	return Apply(products, f, sortBy)
}

// Get 单品查询；主库查不到或报错时再翻兜底目录，都没有返回 nil
func (e *Engine) Get(ctx context.Context, id string) *domain.Product {
	p, err := e.primary.FindByID(ctx, id)
	if err != nil {
		e.log.Warn("catalog primary unavailable, serving fallback", zap.Error(err))
	}
	if p != nil {
		return p
	}
	for i := range e.fallback {
		if e.fallback[i].ID == id {
			return &e.fallback[i]
		}
	}
	return nil
}

// Available 容量探测；给健康检查用
func (e *Engine) Available(ctx context.Context) bool {
	return e.primary.Ping(ctx) == nil
}
