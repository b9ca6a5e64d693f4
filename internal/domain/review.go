package domain

import (
	"context"
	"time"
)

type Review struct {
	ID           string    `gorm:"primaryKey;size:32" json:"id"`
	ProductID    string    `gorm:"size:32;not null;index" json:"product_id"`
	UserID       string    `gorm:"size:32;not null" json:"user_id"`
	UserName     string    `gorm:"size:64" json:"user_name"`
	Rating       int       `gorm:"not null" json:"rating"` // 1..5
	Comment      string    `gorm:"type:text" json:"comment"`
	HelpfulCount int       `gorm:"not null;default:0" json:"helpful_count"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Review) TableName() string { return "reviews" }

type ReviewRepository interface {
	Create(ctx context.Context, r *Review) error
	ListByProduct(ctx context.Context, productID string) ([]Review, error)
	// AdjustHelpful delta ±1；计数不落到负数
	AdjustHelpful(ctx context.Context, id string, delta int) error
	Count(ctx context.Context) (int64, error)
}
