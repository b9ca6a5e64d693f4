package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// PasswordReset 一次性重置令牌；已用/过期行保留作审计，从不删除
type PasswordReset struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	UserID    string    `gorm:"size:32;not null;index" json:"user_id"`
	Token     string    `gorm:"size:64;not null;index" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Used      bool      `gorm:"not null;default:false" json:"used"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PasswordReset) TableName() string { return "password_resets" }

type PasswordResetRepository interface {
	Create(ctx context.Context, r *PasswordReset) error
	// FindValid 只命中 used=false 且未过期的行；其余一律 (nil, nil)，
	// 调用方无从区分“不存在/过期/已用”
	FindValid(ctx context.Context, token string, now time.Time) (*PasswordReset, error)
	MarkUsed(ctx context.Context, tx *gorm.DB, id string) error
}
