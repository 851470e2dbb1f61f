package domain

import "time"

// CategoryStatus toggles category visibility.
type CategoryStatus string

const (
	CategoryStatusActive   CategoryStatus = "active"
	CategoryStatusInactive CategoryStatus = "inactive"
)

// Category groups products by name.
type Category struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Status       CategoryStatus `json:"status"`
	ProductCount int            `json:"productCount"`
	Color        string         `json:"color"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// CategoryFilter captures list query parameters. An empty or "all" status means no filter.
type CategoryFilter struct {
	Status string
	Search string
}

// categoryColors is the display palette handed out to new categories.
var categoryColors = []string{"blue", "purple", "green", "red", "orange", "pink"}

// CategoryColor picks a palette entry for the n-th category.
func CategoryColor(n int) string {
	if n < 0 {
		n = -n
	}
	return "bg-" + categoryColors[n%len(categoryColors)] + "-500"
}
