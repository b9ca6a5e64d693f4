package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"ss-collections-api/internal/domain"
	"ss-collections-api/pkg/utils"
)

type NewsletterRepo struct{ db *gorm.DB }

func NewNewsletterRepo(db *gorm.DB) *NewsletterRepo { return &NewsletterRepo{db: db} }

func (r *NewsletterRepo) Subscribe(ctx context.Context, email string) (*domain.NewsletterSubscriber, error) {
	var sub domain.NewsletterSubscriber
	err := r.db.WithContext(ctx).First(&sub, "lower(email) = lower(?)", email).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		sub = domain.NewsletterSubscriber{
			ID:       utils.NewID(),
			Email:    email,
			IsActive: true,
		}
		if e := r.db.WithContext(ctx).Create(&sub).Error; e != nil {
			return nil, e
		}
		return &sub, nil
	case err != nil:
		return nil, err
	default:
		// 重复订阅：重新激活并刷新订阅时间
		sub.IsActive = true
		sub.SubscribedAt = time.Now()
		if e := r.db.WithContext(ctx).Model(&sub).
			Updates(map[string]any{"is_active": true, "subscribed_at": sub.SubscribedAt}).Error; e != nil {
			return nil, e
		}
		return &sub, nil
	}
}

func (r *NewsletterRepo) Unsubscribe(ctx context.Context, email string) error {
	// 不存在也算成功，不向调用方泄露订阅状态
	return r.db.WithContext(ctx).Model(&domain.NewsletterSubscriber{}).
		Where("lower(email) = lower(?)", email).
		Update("is_active", false).Error
}
