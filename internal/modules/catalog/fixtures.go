package catalog

import "time"

func f64(v float64) *float64 { return &v }
func str(v string) *string   { return &v }

// SeedCategories returns the demo category tree. "T-Shirts" and "Hoodies"
// are children of "Apparel"; the rest are top-level.
func SeedCategories() []Category {
	return []Category{
		{ID: "cat-apparel", Name: "Apparel", Slug: "apparel", Description: "Clothing for every season", Image: "/images/categories/apparel.jpg"},
		{ID: "cat-tshirts", Name: "T-Shirts", Slug: "t-shirts", ParentID: str("cat-apparel"), Image: "/images/categories/t-shirts.jpg"},
		{ID: "cat-hoodies", Name: "Hoodies", Slug: "hoodies", ParentID: str("cat-apparel"), Image: "/images/categories/hoodies.jpg"},
		{ID: "cat-mugs", Name: "Mugs", Slug: "mugs", Description: "Ceramic and travel mugs", Image: "/images/categories/mugs.jpg"},
		{ID: "cat-posters", Name: "Posters", Slug: "posters", Description: "Wall art prints", Image: "/images/categories/posters.jpg"},
		{ID: "cat-stickers", Name: "Stickers", Slug: "stickers", Description: "Die-cut vinyl stickers", Image: "/images/categories/stickers.jpg"},
	}
}

// SeedProducts returns the demo catalog used by the storefront.
func SeedProducts() []Product {
	return []Product{
		{
			ID: "prod-001", Name: "Classic Crew Tee", Slug: "classic-crew-tee",
			Description: "Soft combed cotton tee with a relaxed fit.",
			Price:       19.99, OriginalPrice: f64(24.99), CategoryID: "cat-tshirts",
			Images: []string{"/images/products/crew-tee-1.jpg", "/images/products/crew-tee-2.jpg"},
			Rating: f64(4.6), IsFeatured: true,
			Tags:      []string{"cotton", "unisex", "basics"},
			CreatedAt: time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC),
		},
		{
			ID: "prod-002", Name: "Midnight Hoodie", Slug: "midnight-hoodie",
			Description: "Heavyweight fleece hoodie in deep navy.",
			Price:       54.00, CategoryID: "cat-hoodies",
			Images: []string{"/images/products/midnight-hoodie.jpg"},
			Rating: f64(4.8), IsNew: true, IsFeatured: true,
			Tags:      []string{"fleece", "winter"},
			CreatedAt: time.Date(2025, 7, 2, 9, 30, 0, 0, time.UTC),
		},
		{
			ID: "prod-003", Name: "Sunrise Gradient Mug", Slug: "sunrise-gradient-mug",
			Description: "11oz ceramic mug with a warm gradient glaze.",
			Price:       12.50, OriginalPrice: f64(16.00), CategoryID: "cat-mugs",
			Images: []string{"/images/products/sunrise-mug.jpg"},
			Rating: f64(4.2),
			Tags:   []string{"ceramic", "kitchen", "gift"},
			CreatedAt: time.Date(2025, 1, 20, 14, 15, 0, 0, time.UTC),
		},
		{
			ID: "prod-004", Name: "City Lines Poster", Slug: "city-lines-poster",
			Description: "Minimalist skyline print on matte stock.",
			Price:       22.00, CategoryID: "cat-posters",
			Images: []string{"/images/products/city-lines.jpg"},
			Rating: f64(4.9), IsFeatured: true,
			Tags:   []string{"wall-art", "minimalist"},
			CreatedAt: time.Date(2024, 11, 5, 8, 0, 0, 0, time.UTC),
		},
		{
			ID: "prod-005", Name: "Retro Wave Sticker Pack", Slug: "retro-wave-sticker-pack",
			Description: "Ten die-cut stickers in synthwave colors.",
			Price:       7.99, CategoryID: "cat-stickers",
			Images: []string{"/images/products/retro-pack.jpg"},
			IsNew: true,
			Tags:  []string{"vinyl", "retro", "laptop"},
			CreatedAt: time.Date(2025, 7, 18, 16, 45, 0, 0, time.UTC),
		},
		{
			ID: "prod-006", Name: "Pocket Logo Tee", Slug: "pocket-logo-tee",
			Description: "Everyday tee with an embroidered chest pocket.",
			Price:       21.50, CategoryID: "cat-tshirts",
			Images: []string{"/images/products/pocket-tee.jpg"},
			Rating: f64(4.1),
			Tags:   []string{"cotton", "embroidered"},
			CreatedAt: time.Date(2025, 5, 9, 11, 20, 0, 0, time.UTC),
		},
		{
			ID: "prod-007", Name: "Trail Map Travel Mug", Slug: "trail-map-travel-mug",
			Description: "Insulated 16oz travel mug with topographic print.",
			Price:       18.00, OriginalPrice: f64(20.00), CategoryID: "cat-mugs",
			Images: []string{"/images/products/trail-mug.jpg"},
			Rating: f64(3.9),
			Tags:   []string{"insulated", "outdoors", "travel"},
			CreatedAt: time.Date(2025, 2, 28, 13, 5, 0, 0, time.UTC),
		},
		{
			ID: "prod-008", Name: "Botanical Study Poster", Slug: "botanical-study-poster",
			Description: "Vintage botanical illustration, archival print.",
			Price:       26.00, CategoryID: "cat-posters",
			Images: []string{"/images/products/botanical.jpg"},
			Rating: f64(4.4), IsFeatured: true,
			Tags:   []string{"wall-art", "vintage", "botanical"},
			CreatedAt: time.Date(2025, 4, 1, 10, 10, 0, 0, time.UTC),
		},
	}
}

// SeedReviews returns demo reviews for the seeded products.
func SeedReviews() []Review {
	return []Review{
		{ID: "rev-001", ProductID: "prod-001", Author: "Maya", Rating: 5, Comment: "Fits perfectly, great fabric.", CreatedAt: time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)},
		{ID: "rev-002", ProductID: "prod-001", Author: "Jordan", Rating: 4, Comment: "Slightly long but comfortable.", CreatedAt: time.Date(2025, 5, 14, 18, 30, 0, 0, time.UTC)},
		{ID: "rev-003", ProductID: "prod-002", Author: "Sam", Rating: 5, Comment: "Warmest hoodie I own.", CreatedAt: time.Date(2025, 7, 20, 12, 0, 0, 0, time.UTC)},
		{ID: "rev-004", ProductID: "prod-004", Author: "Ari", Rating: 5, Comment: "Looks stunning framed.", CreatedAt: time.Date(2025, 1, 8, 20, 45, 0, 0, time.UTC)},
		{ID: "rev-005", ProductID: "prod-007", Author: "Lee", Rating: 3, Comment: "Keeps drinks warm, lid leaks a bit.", CreatedAt: time.Date(2025, 3, 30, 7, 15, 0, 0, time.UTC)},
	}
}
