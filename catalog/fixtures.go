package catalog

import "electrofusion/models"

// The shipped demo catalog. Images are file names under the assets dir.
var sampleProducts = []models.Product{
	{
		ID:    "1",
		Name:  "iPhone 15 Pro Max",
		Brand: "Apple",
		Price: 134900,
		Image: "iphone-15-pro-max.jpg",
		Specs: models.Specs{
			RAM:       "8GB",
			Storage:   "256GB",
			Display:   `6.7" Super Retina XDR`,
			Processor: "A17 Pro",
		},
		PriceComparison: models.PriceComparison{Amazon: 139900, Flipkart: 136900, Myntra: 142000, Meesho: 135000},
		Category:        "smartphones",
	},
	{
		ID:    "2",
		Name:  "Samsung Galaxy S24 Ultra",
		Brand: "Samsung",
		Price: 121999,
		Image: "samsung-s24-ultra.jpg",
		Specs: models.Specs{
			RAM:       "12GB",
			Storage:   "256GB",
			Display:   `6.8" Dynamic AMOLED 2X`,
			Processor: "Snapdragon 8 Gen 3",
		},
		PriceComparison: models.PriceComparison{Amazon: 125999, Flipkart: 123999, Myntra: 127000, Meesho: 124500},
		Category:        "smartphones",
	},
	{
		ID:    "3",
		Name:  `MacBook Pro 14"`,
		Brand: "Apple",
		Price: 194900,
		Image: "macbook-pro-14.jpg",
		Specs: models.Specs{
			RAM:       "16GB",
			Storage:   "512GB SSD",
			Display:   `14.2" Liquid Retina XDR`,
			Processor: "M3 Pro",
		},
		PriceComparison: models.PriceComparison{Amazon: 199900, Flipkart: 196900, Myntra: 201000, Meesho: 197500},
		Category:        "laptops",
	},
	{
		ID:    "4",
		Name:  "Dell XPS 13",
		Brand: "Dell",
		Price: 89999,
		Image: "dell-xps-13.jpg",
		Specs: models.Specs{
			RAM:       "16GB",
			Storage:   "512GB SSD",
			Display:   `13.4" FHD+ InfinityEdge`,
			Processor: "Intel Core i7-1355U",
		},
		PriceComparison: models.PriceComparison{Amazon: 92999, Flipkart: 91499, Myntra: 94000, Meesho: 90500},
		Category:        "laptops",
	},
	{
		ID:    "5",
		Name:  "Sony WH-1000XM5",
		Brand: "Sony",
		Price: 29990,
		Image: "sony-wh1000xm5.jpg",
		Specs: models.Specs{
			Display:   "Wireless Noise Canceling",
			Processor: "V1 Processor",
		},
		PriceComparison: models.PriceComparison{Amazon: 31990, Flipkart: 30990, Myntra: 32500, Meesho: 30500},
		Category:        "audio",
	},
	{
		ID:    "6",
		Name:  `iPad Pro 12.9"`,
		Brand: "Apple",
		Price: 112900,
		Image: "ipad-pro-129.jpg",
		Specs: models.Specs{
			RAM:       "8GB",
			Storage:   "256GB",
			Display:   `12.9" Liquid Retina XDR`,
			Processor: "M2",
		},
		PriceComparison: models.PriceComparison{Amazon: 115900, Flipkart: 114500, Myntra: 117000, Meesho: 113500},
		Category:        "tablets",
	},
	{
		ID:    "7",
		Name:  `Samsung 55" Neo QLED 4K TV`,
		Brand: "Samsung",
		Price: 89999,
		Image: "samsung-neo-qled-tv.jpg",
		Specs: models.Specs{
			Display:   `55" Neo QLED 4K`,
			Processor: "Neo Quantum Processor 4K",
		},
		PriceComparison: models.PriceComparison{Amazon: 92999, Flipkart: 91499, Myntra: 94500, Meesho: 90999},
		Category:        "tv",
	},
	{
		ID:    "8",
		Name:  "Nintendo Switch OLED",
		Brand: "Nintendo",
		Price: 34999,
		Image: "nintendo-switch-oled.jpg",
		Specs: models.Specs{
			RAM:       "4GB",
			Storage:   "64GB",
			Display:   `7" OLED Screen`,
			Processor: "Custom NVIDIA Tegra",
		},
		PriceComparison: models.PriceComparison{Amazon: 36999, Flipkart: 35999, Myntra: 37500, Meesho: 35500},
		Category:        "gaming",
	},
}

var sampleCategories = []Category{
	{ID: "all", Name: "All Products", Icon: "📱"},
	{ID: "smartphones", Name: "Smartphones", Icon: "📱"},
	{ID: "laptops", Name: "Laptops", Icon: "💻"},
	{ID: "tablets", Name: "Tablets", Icon: "📱"},
	{ID: "audio", Name: "Audio", Icon: "🎧"},
	{ID: "tv", Name: "TV & Display", Icon: "📺"},
	{ID: "gaming", Name: "Gaming", Icon: "🎮"},
}
