package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"ss-collections-api/internal/core/auth"
	"ss-collections-api/internal/core/config"
	"ss-collections-api/internal/domain"
	"ss-collections-api/internal/repo"
	"ss-collections-api/pkg/utils"
)

func init() { gin.SetMode(gin.TestMode) }

var dbSeq atomic.Int64

type nopMailer struct{}

func (nopMailer) SendPasswordReset(ctx context.Context, to, token, name string) error { return nil }

func newTestDeps(t *testing.T) Deps {
	t.Helper()
	dsn := fmt.Sprintf("file:router_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
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
	return Deps{
		Log:    zap.NewNop(),
		DB:     db,
		JWT:    &auth.JWTer{Secret: []byte("router-test-secret"), Issuer: "ss-collections", TTL: time.Hour},
		Mailer: nopMailer{},
		Cfg: &config.Config{
			App:   config.App{Env: "dev"},
			Store: config.Store{Name: "SS Collections", WhatsAppPhone: "923001234567", Currency: "Rs"},
		},
	}
}

func doJSON(e *gin.Engine, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "auth-token" {
			return c
		}
	}
	t.Fatal("no auth-token cookie in response")
	return nil
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, visible bool) *domain.Product {
	t.Helper()
	p := &domain.Product{
		ID:             utils.NewID(),
		Name:           name,
		Price:          price,
		Category:       "women",
		Sizes:          []domain.Variant{{Size: "M", Price: price}},
		ShowOnUserSide: visible,
	}
	require.NoError(t, repo.NewProductRepo(db).Create(context.Background(), p))
	return p
}

func registerUser(t *testing.T, e *gin.Engine, email string) *http.Cookie {
	t.Helper()
	w := doJSON(e, http.MethodPost, "/api/v1/auth/register", gin.H{
		"email": email, "password": "pass-1234", "fullName": "Test User",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return sessionCookie(t, w)
}

func TestRegisterIssuesSession(t *testing.T) {
	d := newTestDeps(t)
	e := NewAPIEngine(d)

	w := doJSON(e, http.MethodPost, "/api/v1/auth/register", gin.H{
		"email": "alice@example.com", "password": "pass-1234", "fullName": "Alice",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	ck := sessionCookie(t, w)
	assert.True(t, ck.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, ck.SameSite)
	assert.False(t, ck.Secure) // dev 环境不带 Secure

	// cookie 直接可用
	me := doJSON(e, http.MethodGet, "/api/v1/auth/me", nil, ck)
	require.Equal(t, http.StatusOK, me.Code)
	body := decode(t, me)
	user := body["data"].(map[string]any)["user"].(map[string]any)
	assert.Equal(t, "alice@example.com", user["email"])
	assert.Equal(t, "user", user["role"])
	// 散列不出门
	assert.NotContains(t, me.Body.String(), "password")
}

func TestRegisterDuplicateConflict(t *testing.T) {
	d := newTestDeps(t)
	e := NewAPIEngine(d)

	registerUser(t, e, "bob@example.com")

	w := doJSON(e, http.MethodPost, "/api/v1/auth/register", gin.H{
		"email": "bob@example.com", "password": "other-pass",
	}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	// 冲突响应不发会话
	for _, c := range w.Result().Cookies() {
		assert.NotEqual(t, "auth-token", c.Name)
	}
}

func TestLoginFailures(t *testing.T) {
	d := newTestDeps(t)
	e := NewAPIEngine(d)
	registerUser(t, e, "carol@example.com")

	w := doJSON(e, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email": "carol@example.com", "password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(e, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email": "ghost@example.com", "password": "whatever",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 登录面对两种失败回同一响应体
	assert.Contains(t, w.Body.String(), "invalid credentials")
}

func TestMeRequiresSession(t *testing.T) {
	e := NewAPIEngine(newTestDeps(t))

	w := doJSON(e, http.MethodGet, "/api/v1/auth/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(e, http.MethodGet, "/api/v1/auth/me", nil, &http.Cookie{Name: "auth-token", Value: "garbage"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	e := NewAPIEngine(newTestDeps(t))
	ck := registerUser(t, e, "dave@example.com")

	w := doJSON(e, http.MethodPost, "/api/v1/auth/logout", nil, ck)
	require.Equal(t, http.StatusOK, w.Code)

	cleared := sessionCookie(t, w)
	assert.Empty(t, cleared.Value)
	assert.Less(t, cleared.MaxAge, 0)
}

func TestProductListHidesAndSorts(t *testing.T) {
	d := newTestDeps(t)
	e := NewAPIEngine(d)

	seedProduct(t, d.DB, "Mid", 700, true)
	seedProduct(t, d.DB, "Cheap", 500, true)
	seedProduct(t, d.DB, "Pricey", 900, true)
	hidden := seedProduct(t, d.DB, "Secret", 100, false)

	w := doJSON(e, http.MethodGet, "/api/v1/products?sort=price-low", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	items := decode(t, w)["data"].([]any)
	require.Len(t, items, 3)
	names := make([]string, 0, 3)
	for _, it := range items {
		names = append(names, it.(map[string]any)["name"].(string))
	}
	assert.Equal(t, []string{"Cheap", "Mid", "Pricey"}, names)

	// 隐藏商品详情也拿不到
	g := doJSON(e, http.MethodGet, "/api/v1/products/"+hidden.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, g.Code)
}

func TestProductListFallbackWhenEmpty(t *testing.T) {
	e := NewAPIEngine(newTestDeps(t))

	w := doJSON(e, http.MethodGet, "/api/v1/products", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode(t, w)["data"].([]any))
}

func TestProductPriceFilter(t *testing.T) {
	d := newTestDeps(t)
	e := NewAPIEngine(d)

	seedProduct(t, d.DB, "Cheap", 500, true)
	seedProduct(t, d.DB, "Pricey", 900, true)

	w := doJSON(e, http.MethodGet, "/api/v1/products?minPrice=600&maxPrice=1000", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decode(t, w)["data"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "Pricey", items[0].(map[string]any)["name"])
}

func TestReviewFlowRequiresSession(t *testing.T) {
	d := newTestDeps(t)
	e := NewAPIEngine(d)
	p := seedProduct(t, d.DB, "Kurta", 500, true)

	w := doJSON(e, http.MethodPost, "/api/v1/reviews", gin.H{
		"productId": p.ID, "rating": 5, "comment": "great",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	ck := registerUser(t, e, "eve@example.com")
	w = doJSON(e, http.MethodPost, "/api/v1/reviews", gin.H{
		"productId": p.ID, "rating": 5, "comment": "great",
	}, ck)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	list := doJSON(e, http.MethodGet, "/api/v1/reviews?productId="+p.ID, nil, nil)
	require.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), "great")
}

func TestWhatsAppOrder(t *testing.T) {
	d := newTestDeps(t)
	e := NewAPIEngine(d)
	p := seedProduct(t, d.DB, "Kurta", 500, true)
	ck := registerUser(t, e, "frank@example.com")

	w := doJSON(e, http.MethodPost, "/api/v1/orders/whatsapp", gin.H{
		"items": []gin.H{{"productId": p.ID, "quantity": 2, "size": "M"}},
	}, ck)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := decode(t, w)["data"].(map[string]any)
	assert.Contains(t, data["link"], "https://wa.me/923001234567?text=")
	assert.EqualValues(t, 1000, data["total"])

	// 不存在的尺码拒单
	w = doJSON(e, http.MethodPost, "/api/v1/orders/whatsapp", gin.H{
		"items": []gin.H{{"productId": p.ID, "quantity": 1, "size": "XXL"}},
	}, ck)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestForgotPasswordGenericResponse(t *testing.T) {
	e := NewAPIEngine(newTestDeps(t))

	// 邮箱不存在照样 200，同一句话
	w := doJSON(e, http.MethodPost, "/api/v1/auth/forgot-password", gin.H{"email": "nobody@example.com"}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "If an account with that email exists")
}

func TestNewsletterEndpoints(t *testing.T) {
	e := NewAPIEngine(newTestDeps(t))

	w := doJSON(e, http.MethodPost, "/api/v1/newsletter/subscribe", gin.H{"email": "kate@example.com"}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(e, http.MethodPost, "/api/v1/newsletter/unsubscribe", gin.H{"email": "kate@example.com"}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealth(t *testing.T) {
	e := NewAPIEngine(newTestDeps(t))
	w := doJSON(e, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
