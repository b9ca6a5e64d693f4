package service

import (
	"context"

	"ss-collections-api/internal/core/auth"
	"ss-collections-api/internal/domain"
)

// DenyReason 只进日志，不回给客户端
type DenyReason string

const (
	DenyNone             DenyReason = ""
	DenyNoToken          DenyReason = "no_token"
	DenyInvalidToken     DenyReason = "invalid_token"
	DenyInsufficientRole DenyReason = "insufficient_role"
)

// SessionResolver cookie 令牌 → 用户。令牌合法只是必要条件，
// 账号没了同样算无会话；角色永远以库里的行为准，不信令牌里的声明
type SessionResolver struct {
	users domain.UserRepository
	jwt   *auth.JWTer
}

func NewSessionResolver(users domain.UserRepository, jwt *auth.JWTer) *SessionResolver {
	return &SessionResolver{users: users, jwt: jwt}
}

// Resolve 缺失 / 篡改 / 过期 / 账号已删，统一返回 nil
func (s *SessionResolver) Resolve(ctx context.Context, token string) *domain.User {
	if token == "" {
		return nil
	}
	claims, err := s.jwt.Parse(token)
	if err != nil {
		return nil
	}
	u, err := s.users.FindByID(ctx, claims.UID)
	if err != nil || u == nil {
		return nil
	}
	return u
}

// Authorize 每请求同步判定一次：有令牌 → 验签 → 查用户 → 角色够不够。
// 任何一步失败短路到拒绝
func (s *SessionResolver) Authorize(ctx context.Context, token string, required domain.Role) (*domain.User, DenyReason) {
	if token == "" {
		return nil, DenyNoToken
	}
	u := s.Resolve(ctx, token)
	if u == nil {
		return nil, DenyInvalidToken
	}
	if !u.Role.Allows(required) {
		return nil, DenyInsufficientRole
	}
	return u, DenyNone
}
