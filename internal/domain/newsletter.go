package domain

import (
	"context"
	"time"
)

type NewsletterSubscriber struct {
	ID           string    `gorm:"primaryKey;size:32" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	SubscribedAt time.Time `gorm:"autoCreateTime" json:"subscribed_at"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
}

func (NewsletterSubscriber) TableName() string { return "newsletter_subscribers" }

type NewsletterRepository interface {
	// Subscribe 重复订阅按 upsert 处理，重新激活并刷新时间
	Subscribe(ctx context.Context, email string) (*NewsletterSubscriber, error)
	Unsubscribe(ctx context.Context, email string) error
}
