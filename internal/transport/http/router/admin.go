package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ss-collections-api/internal/core/server"
	"ss-collections-api/internal/domain"
	"ss-collections-api/internal/repo"
	"ss-collections-api/internal/service"
	"ss-collections-api/internal/transport/http/handler"
	mdw "ss-collections-api/internal/transport/http/middleware"
)

// NewAdminEngine 管理端：商品 CRUD / 管理员管理 / 看板计数。
// 登录走用户端的 /auth/admin-login，这里统一收 admin 会话
func NewAdminEngine(d Deps) *gin.Engine {
	r := server.NewRouter(d.Log)

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(100, 200),
		mdw.ConcurrencyLimit(100),
		mdw.MaxBodyBytes(4<<20),
		mdw.Timeout(10*time.Second),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
	)

	users := repo.NewUserRepo(d.DB)
	products := repo.NewProductRepo(d.DB)
	reviews := repo.NewReviewRepo(d.DB)

	accounts := service.NewAccountService(users, d.JWT)
	resolver := service.NewSessionResolver(users, d.JWT)

	productH := handler.NewAdminProductHandler(products, d.Cache)
	adminH := handler.NewAdminUserHandler(accounts, users)
	statsH := handler.NewAdminStatsHandler(products, users, reviews)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthSession(resolver, domain.RoleAdmin, d.Log))
	{
		admin.GET("/products", productH.List)
		admin.POST("/products", productH.Create)
		admin.PUT("/products/:id", productH.Update)
		admin.DELETE("/products/:id", productH.Delete)

		admin.GET("/admins", adminH.List)
		admin.POST("/admins", adminH.Create)
		admin.POST("/admins/:id/demote", adminH.Demote)

		admin.GET("/stats", statsH.Stats)
	}

	return r
}
