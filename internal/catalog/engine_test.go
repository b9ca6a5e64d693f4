package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"ss-collections-api/internal/domain"
)

// stubRepo 只实现目录层用到的读路径
type stubRepo struct {
	products []domain.Product
	err      error
}

func (s *stubRepo) Create(ctx context.Context, p *domain.Product) error { return nil }

func (s *stubRepo) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i], nil
		}
	}
	return nil, nil
}

func (s *stubRepo) ListAll(ctx context.Context) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubRepo) ListVisible(ctx context.Context) ([]domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.ShowOnUserSide {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubRepo) Update(ctx context.Context, p *domain.Product) error { return nil }
func (s *stubRepo) Delete(ctx context.Context, id string) error         { return nil }
func (s *stubRepo) Count(ctx context.Context) (int64, error)            { return int64(len(s.products)), s.err }
func (s *stubRepo) Ping(ctx context.Context) error                      { return s.err }

func TestQueryHidesInvisibleProducts(t *testing.T) {
	repo := &stubRepo{products: []domain.Product{
		{ID: "a", Name: "Visible", Price: 100, ShowOnUserSide: true},
		{ID: "b", Name: "Hidden", Price: 200},
	}}
	e := NewEngine(repo, zap.NewNop())

	got := e.Query(context.Background(), Filters{}, SortFeatured)
	assert.Equal(t, []string{"a"}, ids(got))
}

func TestQueryFallbackOnError(t *testing.T) {
	e := NewEngine(&stubRepo{err: errors.New("db down")}, zap.NewNop())

	got := e.Query(context.Background(), Filters{}, SortFeatured)
	assert.NotEmpty(t, got)
	assert.Equal(t, len(fallbackProducts), len(got))
}

func TestQueryFallbackOnEmptyStore(t *testing.T) {
	// 空库同样兜底，商店上线前目录不至于空白
	e := NewEngine(&stubRepo{}, zap.NewNop())

	got := e.Query(context.Background(), Filters{}, SortFeatured)
	assert.Equal(t, len(fallbackProducts), len(got))
}

func TestQueryFallbackStillFiltered(t *testing.T) {
	e := NewEngine(&stubRepo{err: errors.New("db down")}, zap.NewNop())

	got := e.Query(context.Background(), Filters{Search: "no-such-product-xyz"}, SortFeatured)
	assert.Empty(t, got)
}

func TestGetPrimaryThenFallback(t *testing.T) {
	repo := &stubRepo{products: []domain.Product{
		{ID: "a", Name: "Visible", Price: 100, ShowOnUserSide: true},
	}}
	e := NewEngine(repo, zap.NewNop())

	assert.NotNil(t, e.Get(context.Background(), "a"))
	assert.Nil(t, e.Get(context.Background(), "missing"))

	// 主库报错时翻兜底目录
	broken := NewEngine(&stubRepo{err: errors.New("db down")}, zap.NewNop())
	assert.NotNil(t, broken.Get(context.Background(), fallbackProducts[0].ID))
}

func TestAvailable(t *testing.T) {
	assert.True(t, NewEngine(&stubRepo{}, zap.NewNop()).Available(context.Background()))
	assert.False(t, NewEngine(&stubRepo{err: errors.New("down")}, zap.NewNop()).Available(context.Background()))
}
