package domain

import (
	"context"
	"time"
)

// Variant 某个尺码的可购配置；价格以该表为准，price 字段只是兜底
type Variant struct {
	Size  string  `json:"size"`
	Price float64 `json:"price"`
}

type Product struct {
	ID             string    `gorm:"primaryKey;size:32" json:"id"`
	Name           string    `gorm:"size:191;not null;index" json:"name"`
	Description    string    `gorm:"type:text" json:"description"`
	Price          float64   `gorm:"not null" json:"price"`
	OriginalPrice  *float64  `json:"original_price,omitempty"`
	Category       string    `gorm:"size:64;index" json:"category"`
	Sizes          []Variant `gorm:"serializer:json" json:"sizes"`
	Colors         []string  `gorm:"serializer:json" json:"colors"`
	Images         []string  `gorm:"serializer:json" json:"images"`
	Stock          int       `gorm:"not null;default:0" json:"stock"`
	Rating         float64   `gorm:"not null;default:0" json:"rating"`
	ReviewsCount   int       `gorm:"not null;default:0" json:"reviews_count"`
	IsNew          bool      `gorm:"not null;default:false" json:"is_new"`
	IsFeatured     bool      `gorm:"not null;default:false" json:"is_featured"`
	IsOnSale       bool      `gorm:"not null;default:false" json:"is_on_sale"`
	ShowOnUserSide bool      `gorm:"not null;default:true" json:"show_on_user_side"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string { return "products" }

// DisplayPrice 有尺码变体时取最低变体价，否则退回基础价
func (p *Product) DisplayPrice() float64 {
	if len(p.Sizes) == 0 {
		return p.Price
	}
	min := p.Sizes[0].Price
	for _, v := range p.Sizes[1:] {
		if v.Price < min {
			min = v.Price
		}
	}
	return min
}

// Discounted 原价高于展示价才允许挂折扣标
func (p *Product) Discounted() bool {
	return p.OriginalPrice != nil && *p.OriginalPrice > p.DisplayPrice()
}

func (p *Product) HasSize(size string) bool {
	for _, v := range p.Sizes {
		if v.Size == size {
			return true
		}
	}
	return false
}

// VariantPrice 指定尺码的价格；尺码不存在时退回展示价
func (p *Product) VariantPrice(size string) float64 {
	for _, v := range p.Sizes {
		if v.Size == size {
			return v.Price
		}
	}
	return p.DisplayPrice()
}

type ProductRepository interface {
	Create(ctx context.Context, p *Product) error
	FindByID(ctx context.Context, id string) (*Product, error)
	// ListAll 管理端列表，不过滤 show_on_user_side
	ListAll(ctx context.Context) ([]Product, error)
	// ListVisible 用户端列表，固定 show_on_user_side=true
	ListVisible(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	// Ping 容量探测，主库不可达时目录层切换兜底数据
	Ping(ctx context.Context) error
}
