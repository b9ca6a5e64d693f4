package catalog

import (
	"sort"
	"strings"

	"ss-collections-api/internal/domain"
)

// Filters 所有条件取 AND；零值字段表示不过滤
type Filters struct {
	Category string   // "all" 或空 = 不过滤
	Search   string   // 名称子串，大小写不敏感
	MinPrice *float64 // 与最低变体价比较，闭区间
	MaxPrice *float64
	Sizes    []string // 任一变体尺码命中即可
	Colors   []string // 任一颜色命中即可
	IsNew    bool     // 置位时只留 true
	IsOnSale bool
	Featured bool
}

// 排序键
const (
	SortFeatured  = "featured" // 默认
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortNewest    = "newest"
)

func (f Filters) match(p *domain.Product) bool {
	if f.Category != "" && f.Category != "all" && p.Category != f.Category {
		return false
	}
	if f.Search != "" &&
		!strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
		return false
	}
	price := p.DisplayPrice()
	if f.MinPrice != nil && price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && price > *f.MaxPrice {
		return false
	}
	if len(f.Sizes) > 0 && !anySize(p, f.Sizes) {
		return false
	}
	if len(f.Colors) > 0 && !anyColor(p, f.Colors) {
		return false
	}
	if f.IsNew && !p.IsNew {
		return false
	}
	if f.IsOnSale && !p.IsOnSale {
		return false
	}
	if f.Featured && !p.IsFeatured {
		return false
	}
	return true
}

func anySize(p *domain.Product, sizes []string) bool {
	for _, s := range sizes {
		if p.HasSize(s) {
			return true
		}
	}
	return false
}

func anyColor(p *domain.Product, colors []string) bool {
	for _, want := range colors {
		for _, c := range p.Colors {
			if c == want {
				return true
			}
		}
	}
	return false
}

// Apply 过滤 + 稳定排序；等键元素保持输入相对顺序
func Apply(products []domain.Product, f Filters, sortBy string) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for i := range products {
		if f.match(&products[i]) {
			out = append(out, products[i])
		}
	}

	switch sortBy {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DisplayPrice() < out[j].DisplayPrice()
		})
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DisplayPrice() > out[j].DisplayPrice()
		})
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].IsNew && !out[j].IsNew
		})
	default: // featured
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].IsFeatured && !out[j].IsFeatured
		})
	}
	return out
}
