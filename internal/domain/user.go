package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           string         `gorm:"primaryKey;size:32" json:"id"`
	Email        string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	FullName     string         `gorm:"size:64" json:"full_name"`
	Phone        string         `gorm:"size:32" json:"phone,omitempty"`
	PasswordHash string         `gorm:"size:100;not null" json:"-"`
	Role         Role           `gorm:"size:16;not null;default:user" json:"role"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	// FindByEmail 大小写不敏感匹配；查不到返回 (nil, nil)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, role Role, offset, limit int) ([]User, int64, error)
	// UpdatePasswordHash 传入 tx 时参与外层事务（密码重置要求两写合一）
	UpdatePasswordHash(ctx context.Context, tx *gorm.DB, id, hash string) error
	UpdateRole(ctx context.Context, id string, role Role) error
	Count(ctx context.Context) (int64, error)
}
