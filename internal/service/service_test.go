package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ss-collections-api/internal/core/auth"
	"ss-collections-api/internal/domain"
)

var dbSeq atomic.Int64

// newTestDB 每个用例独立的内存库；cache=shared 让连接池里的连接看同一份数据
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Product{},
		&domain.Review{},
		&domain.NewsletterSubscriber{},
		&domain.PasswordReset{},
	))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newTestJWT() *auth.JWTer {
	return &auth.JWTer{Secret: []byte("svc-test-secret"), Issuer: "ss-collections", TTL: time.Hour}
}

// capturingMailer 记录投递参数，可配置失败
type capturingMailer struct {
	to, token, name string
	fail            bool
	sent            int
}

func (m *capturingMailer) SendPasswordReset(ctx context.Context, to, token, name string) error {
	if m.fail {
		return fmt.Errorf("smtp unreachable")
	}
	m.to, m.token, m.name = to, token, name
	m.sent++
	return nil
}
