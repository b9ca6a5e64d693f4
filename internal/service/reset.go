package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ss-collections-api/internal/domain"
	"ss-collections-api/internal/notify"
	"ss-collections-api/pkg/utils"
)

const resetTokenTTL = time.Hour

// ResetService 密码重置：签发一次性令牌 → 邮件投递 → 消费
type ResetService struct {
	db     *gorm.DB
	users  domain.UserRepository
	resets domain.PasswordResetRepository
	mailer notify.Mailer
	log    *zap.Logger
}

func NewResetService(db *gorm.DB, users domain.UserRepository, resets domain.PasswordResetRepository, mailer notify.Mailer, l *zap.Logger) *ResetService {
	return &ResetService{db: db, users: users, resets: resets, mailer: mailer, log: l}
}

// RequestReset 邮箱不存在时静默成功，防账号枚举；
// 邮件发不出去要报错，否则用户永远拿不到令牌
func (s *ResetService) RequestReset(ctx context.Context, email string) error {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if u == nil {
		return nil
	}

	pr := &domain.PasswordReset{
		ID:        utils.NewID(),
		UserID:    u.ID,
		Token:     utils.NewResetToken(),
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := s.resets.Create(ctx, pr); err != nil {
		return err
	}

	if err := s.mailer.SendPasswordReset(ctx, u.Email, pr.Token, u.FullName); err != nil {
		s.log.Error("reset mail delivery failed", zap.String("user_id", u.ID), zap.Error(err))
		return domain.ErrMailDelivery
	}
	return nil
}

// ConsumeReset 改密码和标记已用放同一事务：令牌没被用掉就不可能只改了密码，
// 反过来密码没改成令牌也不会作废
func (s *ResetService) ConsumeReset(ctx context.Context, token, newPassword string) error {
	pr, err := s.resets.FindValid(ctx, token, time.Now())
	if err != nil {
		return err
	}
	if pr == nil {
		return domain.ErrResetTokenInvalid
	}

	hash := utils.HashPassword(newPassword)
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.users.UpdatePasswordHash(ctx, tx, pr.UserID, hash); err != nil {
			return err
		}
		return s.resets.MarkUsed(ctx, tx, pr.ID)
	})
}
