package repo

import (
	"context"

	"gorm.io/gorm"

	"ss-collections-api/internal/domain"
)

type ReviewRepo struct{ db *gorm.DB }

func NewReviewRepo(db *gorm.DB) *ReviewRepo { return &ReviewRepo{db: db} }

func (r *ReviewRepo) Create(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rv).Error; err != nil {
			return err
		}
		// 商品上的评论数跟着走
		return tx.Model(&domain.Product{}).
			Where("id = ?", rv.ProductID).
			UpdateColumn("reviews_count", gorm.Expr("reviews_count + 1")).Error
	})
}

func (r *ReviewRepo) ListByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	var rs []domain.Review
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&rs).Error
	return rs, err
}

func (r *ReviewRepo) AdjustHelpful(ctx context.Context, id string, delta int) error {
	res := r.db.WithContext(ctx).Model(&domain.Review{}).
		Where("id = ?", id).
		Where("helpful_count + ? >= 0", delta).
		UpdateColumn("helpful_count", gorm.Expr("helpful_count + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Review{}).Count(&n).Error
	return n, err
}
