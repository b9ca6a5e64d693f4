package catalog

import "ss-collections-api/internal/domain"

func f64(v float64) *float64 { return &v }

// fallbackProducts 主库不可用时的固定小目录
var fallbackProducts = []domain.Product{
	{
		ID:            "fb-1",
		Name:          "Premium Cotton T-Shirt",
		Description:   "Soft and comfortable premium cotton t-shirt perfect for everyday wear.",
		Price:         29.99,
		OriginalPrice: f64(39.99),
		Category:      "men",
		Sizes: []domain.Variant{
			{Size: "S", Price: 29.99}, {Size: "M", Price: 29.99},
			{Size: "L", Price: 32.99}, {Size: "XL", Price: 34.99},
		},
		Colors:         []string{"White", "Black", "Navy"},
		Images:         []string{"/images/placeholder.svg"},
		Stock:          50,
		Rating:         4.5,
		ReviewsCount:   23,
		IsNew:          true,
		IsFeatured:     true,
		IsOnSale:       true,
		ShowOnUserSide: true,
	},
	{
		ID:          "fb-2",
		Name:        "Elegant Summer Dress",
		Description: "Beautiful flowing summer dress perfect for any occasion.",
		Price:       79.99,
		Category:    "women",
		Sizes: []domain.Variant{
			{Size: "XS", Price: 79.99}, {Size: "S", Price: 79.99},
			{Size: "M", Price: 84.99}, {Size: "L", Price: 84.99},
		},
		Colors:         []string{"Blue", "Pink", "White"},
		Images:         []string{"/images/placeholder.svg"},
		Stock:          30,
		Rating:         4.8,
		ReviewsCount:   45,
		IsFeatured:     true,
		ShowOnUserSide: true,
	},
	{
		ID:            "fb-3",
		Name:          "Classic Denim Jeans",
		Description:   "High-quality denim jeans with a perfect fit and timeless style.",
		Price:         89.99,
		OriginalPrice: f64(109.99),
		Category:      "men",
		Sizes: []domain.Variant{
			{Size: "30", Price: 89.99}, {Size: "32", Price: 89.99},
			{Size: "34", Price: 94.99}, {Size: "36", Price: 94.99},
		},
		Colors:         []string{"Blue", "Black"},
		Images:         []string{"/images/placeholder.svg"},
		Stock:          25,
		Rating:         4.3,
		ReviewsCount:   67,
		IsOnSale:       true,
		IsFeatured:     true,
		ShowOnUserSide: true,
	},
	{
		ID:          "fb-4",
		Name:        "Stylish Sneakers",
		Description: "Comfortable and trendy sneakers for everyday activities.",
		Price:       119.99,
		Category:    "shoes",
		Sizes: []domain.Variant{
			{Size: "8", Price: 119.99}, {Size: "9", Price: 119.99},
			{Size: "10", Price: 124.99}, {Size: "11", Price: 124.99},
		},
		Colors:         []string{"White", "Black", "Gray"},
		Images:         []string{"/images/placeholder.svg"},
		Stock:          40,
		Rating:         4.6,
		ReviewsCount:   89,
		IsNew:          true,
		IsFeatured:     true,
		ShowOnUserSide: true,
	},
	{
		ID:            "fb-5",
		Name:          "Cozy Winter Sweater",
		Description:   "Warm and comfortable sweater perfect for cold weather.",
		Price:         69.99,
		OriginalPrice: f64(89.99),
		Category:      "women",
		Sizes: []domain.Variant{
			{Size: "S", Price: 69.99}, {Size: "M", Price: 69.99},
			{Size: "L", Price: 74.99}, {Size: "XL", Price: 74.99},
		},
		Colors:         []string{"Beige", "Gray", "Navy"},
		Images:         []string{"/images/placeholder.svg"},
		Stock:          35,
		Rating:         4.4,
		ReviewsCount:   34,
		IsOnSale:       true,
		ShowOnUserSide: true,
	},
	{
		ID:          "fb-6",
		Name:        "Elegant Handbag",
		Description: "Stylish and practical handbag perfect for any occasion.",
		Price:       99.99,
		Category:    "accessories",
		Sizes: []domain.Variant{
			{Size: "One Size", Price: 99.99},
		},
		Colors:         []string{"Black", "Brown", "Tan"},
		Images:         []string{"/images/placeholder.svg"},
		Stock:          15,
		Rating:         4.9,
		ReviewsCount:   123,
		IsNew:          true,
		IsFeatured:     true,
		ShowOnUserSide: true,
	},
}
