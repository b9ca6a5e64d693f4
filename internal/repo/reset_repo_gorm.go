package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"ss-collections-api/internal/domain"
)

type ResetRepo struct{ db *gorm.DB }

func NewResetRepo(db *gorm.DB) *ResetRepo { return &ResetRepo{db: db} }

func (r *ResetRepo) Create(ctx context.Context, pr *domain.PasswordReset) error {
	return r.db.WithContext(ctx).Create(pr).Error
}

func (r *ResetRepo) FindValid(ctx context.Context, token string, now time.Time) (*domain.PasswordReset, error) {
	var pr domain.PasswordReset
	err := r.db.WithContext(ctx).
		Where("token = ? AND used = ? AND expires_at > ?", token, false, now).
		First(&pr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

func (r *ResetRepo) MarkUsed(ctx context.Context, tx *gorm.DB, id string) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	// used=false 条件兜底，并发下同一令牌只消费一次
	res := db.WithContext(ctx).Model(&domain.PasswordReset{}).
		Where("id = ? AND used = ?", id, false).
		Update("used", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrResetTokenInvalid
	}
	return nil
}
