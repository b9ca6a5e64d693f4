package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ss-collections-api/internal/domain"
	"ss-collections-api/internal/service"
	resp "ss-collections-api/internal/transport/http/response"
)

// CookieName 会话 cookie；唯一的会话传递通道
const CookieName = "auth-token"

const ctxUserKey = "sessionUser"

// AuthSession 会话门：cookie → 验签 → 查库 → 角色判定。
// 拒绝原因只进日志；对外只有 401（无/坏令牌）和 403（角色不够）
func AuthSession(resolver *service.SessionResolver, required domain.Role, l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(CookieName)
		u, reason := resolver.Authorize(c.Request.Context(), token, required)
		switch reason {
		case service.DenyNone:
			c.Set(ctxUserKey, u)
			c.Set("userId", u.ID)
			c.Set("role", string(u.Role))
			c.Next()
		case service.DenyInsufficientRole:
			l.Info("access denied",
				zap.String("reason", string(reason)),
				zap.String("path", c.FullPath()),
				zap.String("ip", c.ClientIP()),
			)
			resp.AbortErr(c, resp.CodeForbidden, "forbidden")
		default: // no_token / invalid_token
			l.Info("access denied",
				zap.String("reason", string(reason)),
				zap.String("path", c.FullPath()),
				zap.String("ip", c.ClientIP()),
			)
			resp.AbortErr(c, resp.CodeUnauthorized, "authentication required")
		}
	}
}

// SessionUser 取门放进来的用户；只在挂了 AuthSession 的分组里有值
func SessionUser(c *gin.Context) *domain.User {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*domain.User)
	return u
}
