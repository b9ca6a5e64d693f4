package domain

import "errors"

// 认证 / 账号
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// 密码重置：三种失效原因对外折叠成一个错误，避免泄露令牌状态
var ErrResetTokenInvalid = errors.New("invalid or expired reset token")

// 邮件投递失败时用户拿不到令牌，必须向上抛
var ErrMailDelivery = errors.New("failed to send reset email")

// 目录 / 评论
var (
	ErrProductNotFound = errors.New("product not found")
	ErrReviewNotFound  = errors.New("review not found")
)
