package domain

import "time"

// Product is a catalog item.
type Product struct {
	ID            string    `json:"_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"originalPrice,omitempty"`
	DiscountPrice *float64  `json:"discountPrice,omitempty"`
	Category      string    `json:"category"`
	Images        []string  `json:"images"`
	Stock         int       `json:"stock"`
	Colors        []string  `json:"colors"`
	Sizes         []string  `json:"sizes"`
	Brand         string    `json:"brand,omitempty"`
	Rating        float64   `json:"rating"`
	NumReviews    int       `json:"numReviews"`
	IsFeatured    bool      `json:"isFeatured"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ProductSort selects list ordering.
type ProductSort string

const (
	SortNewest    ProductSort = "newest"
	SortPriceAsc  ProductSort = "price_asc"
	SortPriceDesc ProductSort = "price_desc"
)

// ParseProductSort maps a query value to a sort, defaulting to newest.
func ParseProductSort(v string) ProductSort {
	switch ProductSort(v) {
	case SortPriceAsc, SortPriceDesc:
		return ProductSort(v)
	default:
		return SortNewest
	}
}

// ProductFilter captures list query parameters.
type ProductFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Search   string
	Sort     ProductSort
}
