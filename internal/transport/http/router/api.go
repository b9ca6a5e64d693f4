package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ss-collections-api/internal/catalog"
	"ss-collections-api/internal/core/auth"
	"ss-collections-api/internal/core/cache"
	"ss-collections-api/internal/core/config"
	"ss-collections-api/internal/core/server"
	"ss-collections-api/internal/domain"
	"ss-collections-api/internal/notify"
	"ss-collections-api/internal/repo"
	"ss-collections-api/internal/service"
	"ss-collections-api/internal/transport/http/handler"
	mdw "ss-collections-api/internal/transport/http/middleware"
)

// Deps 两个端共用的装配件；显式注入，不留全局单例
type Deps struct {
	Log    *zap.Logger
	DB     *gorm.DB
	JWT    *auth.JWTer
	Cache  *cache.Cache // 可为 nil
	Mailer notify.Mailer
	Cfg    *config.Config
}

// NewAPIEngine 用户端：目录 / 认证 / 评论 / 订阅 / WhatsApp 下单
func NewAPIEngine(d Deps) *gin.Engine {
	// 基础引擎自带 panic 恢复和 CORS（cookie 会话要 credentials）
	r := server.NewRouter(d.Log)

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
	)

	users := repo.NewUserRepo(d.DB)
	products := repo.NewProductRepo(d.DB)
	reviews := repo.NewReviewRepo(d.DB)
	resets := repo.NewResetRepo(d.DB)
	subs := repo.NewNewsletterRepo(d.DB)

	engine := catalog.NewEngine(products, d.Log)
	accounts := service.NewAccountService(users, d.JWT)
	resetSvc := service.NewResetService(d.DB, users, resets, d.Mailer, d.Log)
	resolver := service.NewSessionResolver(users, d.JWT)

	authH := handler.NewAuthHandler(accounts, resetSvc, d.Cfg.App.IsProd())
	productH := handler.NewProductHandler(engine, d.Cache)
	reviewH := handler.NewReviewHandler(reviews)
	newsH := handler.NewNewsletterHandler(subs)
	orderH := handler.NewOrderHandler(engine, d.Cfg.Store)

	// 健康检查：目录层自带降级，主库状态只作展示
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": 1, "db": engine.Available(c.Request.Context())})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	// 认证面单独压每 IP 限速，防撞库 / 枚举
	authGroup := api.Group("/auth")
	authGroup.Use(mdw.RateLimitPerIP(5, 10))
	{
		authGroup.POST("/register", authH.Register)
		authGroup.POST("/login", authH.Login)
		authGroup.POST("/admin-login", authH.AdminLogin)
		authGroup.POST("/logout", authH.Logout)
		authGroup.POST("/forgot-password", authH.ForgotPassword)
		authGroup.POST("/reset-password", authH.ResetPassword)
	}
	api.GET("/auth/me",
		mdw.AuthSession(resolver, domain.RoleUser, d.Log), authH.Me)

	api.GET("/products", productH.List)
	api.GET("/products/:id", productH.Get)

	api.GET("/reviews", reviewH.List)
	loggedIn := api.Group("")
	loggedIn.Use(mdw.AuthSession(resolver, domain.RoleUser, d.Log))
	{
		loggedIn.POST("/reviews", reviewH.Create)
		loggedIn.POST("/reviews/:id/helpful", reviewH.Helpful)
		loggedIn.POST("/orders/whatsapp", orderH.CreateWhatsApp)
	}

	api.POST("/newsletter/subscribe", newsH.Subscribe)
	api.POST("/newsletter/unsubscribe", newsH.Unsubscribe)

	return r
}
