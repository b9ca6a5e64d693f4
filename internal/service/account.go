package service

import (
	"context"
	"strings"

	"ss-collections-api/internal/core/auth"
	"ss-collections-api/internal/domain"
	"ss-collections-api/pkg/utils"
)

// AccountService 注册 / 登录 / 管理员登录
type AccountService struct {
	users domain.UserRepository
	jwt   *auth.JWTer
}

func NewAccountService(users domain.UserRepository, jwt *auth.JWTer) *AccountService {
	return &AccountService{users: users, jwt: jwt}
}

type AuthResult struct {
	User  *domain.User
	Token string
}

func (s *AccountService) Register(ctx context.Context, email, password, fullName, phone string) (*AuthResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	u := &domain.User{
		ID:           utils.NewID(),
		Email:        email,
		FullName:     strings.TrimSpace(fullName),
		Phone:        strings.TrimSpace(phone),
		PasswordHash: utils.HashPassword(password),
		Role:         domain.RoleUser,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	tok, err := s.jwt.Issue(u.ID, u.Email, string(u.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: u, Token: tok}, nil
}

// Login 查不到用户和密码不对走同一个错误，登录面不暴露账号是否存在
func (s *AccountService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	tok, err := s.jwt.Issue(u.ID, u.Email, string(u.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: u, Token: tok}, nil
}

// AdminLogin 只在 role=admin 的记录里解析；令牌固定打 admin 角色
func (s *AccountService) AdminLogin(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil || u.Role != domain.RoleAdmin || !utils.CheckPassword(password, u.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	tok, err := s.jwt.Issue(u.ID, u.Email, string(domain.RoleAdmin))
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: u, Token: tok}, nil
}

// CreateAdmin 管理后台建管理员；邮箱占用返回 ErrEmailTaken
func (s *AccountService) CreateAdmin(ctx context.Context, email, password, fullName string) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	u := &domain.User{
		ID:           utils.NewID(),
		Email:        email,
		FullName:     strings.TrimSpace(fullName),
		PasswordHash: utils.HashPassword(password),
		Role:         domain.RoleAdmin,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// DemoteAdmin 降级回普通用户，不删行
func (s *AccountService) DemoteAdmin(ctx context.Context, id string) error {
	return s.users.UpdateRole(ctx, id, domain.RoleUser)
}
