package repository

import (
	"time"

	"github.com/spec-kit/shop-service/internal/domain"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func price(v float64) *float64 { return &v }

// MockProducts returns the catalog served when no database is configured.
func MockProducts() []domain.Product {
	return []domain.Product{
		{
			ID: "1", Name: "Designer Leather Handbag", Description: "Premium quality leather handbag with modern design",
			Price: 459, OriginalPrice: price(599), Category: "Fashion", Stock: 15,
			Images: []string{"/images/handbag1.jpg"}, Colors: []string{"Black", "Brown", "Tan"}, Sizes: []string{"One Size"},
			Brand: "LuxuryBrand", Rating: 4.5, NumReviews: 23, IsFeatured: true, Status: "active", CreatedAt: day("2024-01-15"),
		},
		{
			ID: "2", Name: "Hopena Shop Kişiye Özel Fotoğraf", Description: "Custom photo printing service for special memories",
			Price: 283.5, OriginalPrice: price(315), Category: "Photography", Stock: 8,
			Images: []string{"/images/photo1.jpg"}, Colors: []string{"Colorful"}, Sizes: []string{"A4", "A3"},
			Brand: "HopenaShop", Rating: 4.2, NumReviews: 15, Status: "active", CreatedAt: day("2024-01-20"),
		},
		{
			ID: "3", Name: "Luxury Face Cream", Description: "Anti-aging luxury face cream for all skin types",
			Price: 125, OriginalPrice: price(199), Category: "Beauty", Stock: 12,
			Images: []string{"/images/cream1.jpg"}, Colors: []string{"White"}, Sizes: []string{"50ml", "100ml"},
			Brand: "BeautyLux", Rating: 4.8, NumReviews: 45, IsFeatured: true, Status: "active", CreatedAt: day("2024-02-01"),
		},
		{
			ID: "4", Name: "Sport Running Shoes", Description: "High-performance running shoes for athletes",
			Price: 299, OriginalPrice: price(399), Category: "Sports", Stock: 6,
			Images: []string{"/images/shoes1.jpg"}, Colors: []string{"Black", "White", "Red"}, Sizes: []string{"38", "39", "40", "41", "42", "43"},
			Brand: "SportMax", Rating: 4.6, NumReviews: 32, Status: "active", CreatedAt: day("2024-02-10"),
		},
		{
			ID: "5", Name: "Wireless Bluetooth Headphones", Description: "Premium wireless headphones with noise cancellation",
			Price: 199, OriginalPrice: price(299), Category: "Electronics", Stock: 20,
			Images: []string{"/images/headphones1.jpg"}, Colors: []string{"Black", "White", "Blue"}, Sizes: []string{"One Size"},
			Brand: "AudioTech", Rating: 4.7, NumReviews: 67, IsFeatured: true, Status: "active", CreatedAt: day("2024-02-15"),
		},
		{
			ID: "6", Name: "Yoga Mat Premium", Description: "Non-slip premium yoga mat for all yoga practices",
			Price: 89, OriginalPrice: price(129), Category: "Sports", Stock: 25,
			Images: []string{"/images/yogamat1.jpg"}, Colors: []string{"Purple", "Blue", "Pink"}, Sizes: []string{"Standard"},
			Brand: "YogaLife", Rating: 4.4, NumReviews: 28, Status: "active", CreatedAt: day("2024-03-01"),
		},
	}
}

// MockCategories returns the categories served when no database is configured.
// The seed command writes the same set to Postgres.
func MockCategories() []domain.Category {
	return []domain.Category{
		{ID: "1", Name: "Fitness Ekipmanları", Description: "Genel fitness ve antrenman ekipmanları", ProductCount: 15, Status: domain.CategoryStatusActive, Color: "bg-blue-500", CreatedAt: day("2024-01-15")},
		{ID: "2", Name: "Yoga Ürünleri", Description: "Yoga matları, blokları ve aksesuarları", ProductCount: 8, Status: domain.CategoryStatusActive, Color: "bg-purple-500", CreatedAt: day("2024-01-20")},
		{ID: "3", Name: "Protein ve Beslenme", Description: "Protein tozları, vitaminler ve besin takviyeleri", ProductCount: 12, Status: domain.CategoryStatusActive, Color: "bg-green-500", CreatedAt: day("2024-02-01")},
		{ID: "4", Name: "Kardiyo Ekipmanları", Description: "Koşu bandları, bisikletler ve kardiyo makineleri", ProductCount: 6, Status: domain.CategoryStatusActive, Color: "bg-red-500", CreatedAt: day("2024-02-10")},
		{ID: "5", Name: "Ağırlık Antrenmanı", Description: "Dumbbelllar, barbelllar ve ağırlık ekipmanları", ProductCount: 20, Status: domain.CategoryStatusActive, Color: "bg-orange-500", CreatedAt: day("2024-02-15")},
		{ID: "6", Name: "Spor Giyim", Description: "Antrenman kıyafetleri ve spor ayakkabıları", ProductCount: 0, Status: domain.CategoryStatusInactive, Color: "bg-pink-500", CreatedAt: day("2024-03-01")},
	}
}
