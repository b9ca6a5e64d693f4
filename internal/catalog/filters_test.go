package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ss-collections-api/internal/domain"
)

func sample() []domain.Product {
	return []domain.Product{
		{
			ID: "p1", Name: "Linen Kurta", Category: "men",
			Sizes:  []domain.Variant{{Size: "M", Price: 700}, {Size: "S", Price: 500}},
			Colors: []string{"white", "beige"},
			IsNew:  true, ShowOnUserSide: true, Rating: 4.2,
		},
		{
			ID: "p2", Name: "Silk Dupatta", Category: "women",
			Price:  1000,
			Colors: []string{"red"},
			IsOnSale: true, ShowOnUserSide: true, Rating: 4.8,
		},
		{
			ID: "p3", Name: "Cotton Shawl", Category: "women",
			Price:      900,
			IsFeatured: true, ShowOnUserSide: true, Rating: 3.9,
		},
	}
}

func ids(ps []domain.Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestApplyPriceRange(t *testing.T) {
	// 价格对最低变体价取闭区间：p1 的最低变体是 500
	got := Apply(sample(), Filters{MinPrice: f64(500), MaxPrice: f64(950)}, SortFeatured)
	assert.ElementsMatch(t, []string{"p1", "p3"}, ids(got))

	got = Apply(sample(), Filters{MinPrice: f64(501)}, SortFeatured)
	assert.NotContains(t, ids(got), "p1")

	// 边界值包含
	got = Apply(sample(), Filters{MinPrice: f64(1000), MaxPrice: f64(1000)}, SortFeatured)
	assert.Equal(t, []string{"p2"}, ids(got))
}

func TestApplyConjunction(t *testing.T) {
	got := Apply(sample(), Filters{Category: "women", IsOnSale: true}, SortFeatured)
	assert.Equal(t, []string{"p2"}, ids(got))

	// category=all 等同不过滤
	got = Apply(sample(), Filters{Category: "all"}, SortFeatured)
	assert.Len(t, got, 3)
}

func TestApplySearchCaseInsensitive(t *testing.T) {
	got := Apply(sample(), Filters{Search: "silk"}, SortFeatured)
	assert.Equal(t, []string{"p2"}, ids(got))

	got = Apply(sample(), Filters{Search: "KURTA"}, SortFeatured)
	assert.Equal(t, []string{"p1"}, ids(got))
}

func TestApplySizeAndColor(t *testing.T) {
	got := Apply(sample(), Filters{Sizes: []string{"S", "XL"}}, SortFeatured)
	assert.Equal(t, []string{"p1"}, ids(got))

	got = Apply(sample(), Filters{Colors: []string{"red", "black"}}, SortFeatured)
	assert.Equal(t, []string{"p2"}, ids(got))
}

func TestSortPriceLow(t *testing.T) {
	got := Apply(sample(), Filters{}, SortPriceLow)
	prices := []float64{got[0].DisplayPrice(), got[1].DisplayPrice(), got[2].DisplayPrice()}
	assert.Equal(t, []float64{500, 900, 1000}, prices)
}

func TestSortPriceHigh(t *testing.T) {
	got := Apply(sample(), Filters{}, SortPriceHigh)
	assert.Equal(t, []string{"p2", "p3", "p1"}, ids(got))
}

func TestSortRating(t *testing.T) {
	got := Apply(sample(), Filters{}, SortRating)
	assert.Equal(t, []string{"p2", "p1", "p3"}, ids(got))
}

func TestSortFeaturedStable(t *testing.T) {
	// featured 在前，其余保持输入相对顺序
	got := Apply(sample(), Filters{}, SortFeatured)
	assert.Equal(t, []string{"p3", "p1", "p2"}, ids(got))

	// 未知排序键按默认 featured 处理
	got2 := Apply(sample(), Filters{}, "bogus")
	assert.Equal(t, ids(got), ids(got2))
}

func TestSortNewest(t *testing.T) {
	got := Apply(sample(), Filters{}, SortNewest)
	assert.Equal(t, "p1", got[0].ID)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	in := sample()
	_ = Apply(in, Filters{}, SortPriceHigh)
	assert.Equal(t, []string{"p1", "p2", "p3"}, ids(in))
}
