package catalog

import "github.com/asshop/storefront/internal/domain"

func defaultProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			Name:        "Wireless Bluetooth Headphones",
			Price:       12000,
			Stock:       45,
			Category:    "Electronics",
			Status:      "active",
			Description: "High-quality wireless headphones with noise cancellation",
			Colors:      []string{"Black", "White", "Blue"},
			Weight:      0.3,
		},
		{
			ID:          2,
			Name:        "Smart Fitness Watch",
			Price:       26800,
			Stock:       23,
			Category:    "Wearables",
			Status:      "active",
			Description: "Advanced fitness tracking with heart rate monitor",
			Colors:      []string{"Black", "Silver", "Rose Gold"},
			Weight:      0.2,
		},
		{
			ID:          3,
			Name:        "Premium T-Shirt",
			Price:       2500,
			Stock:       67,
			Category:    "Fashion",
			Status:      "active",
			Description: "Premium cotton t-shirt with modern fit",
			Sizes:       []string{"S", "M", "L", "XL", "2XL", "3XL"},
			Colors:      []string{"White", "Black", "Navy", "Gray", "Red"},
			Weight:      0.2,
		},
		{
			ID:          4,
			Name:        "Premium Coffee Beans",
			Price:       3350,
			Stock:       120,
			Category:    "Food",
			Status:      "active",
			Description: "Single-origin arabica beans, medium roast",
			Weight:      1.0,
		},
		{
			ID:          5,
			Name:        "Leather Crossbody Bag",
			Price:       8900,
			Stock:       18,
			Category:    "Fashion",
			Status:      "active",
			Description: "Handcrafted genuine leather bag",
			Colors:      []string{"Brown", "Black"},
			Weight:      0.6,
		},
		{
			ID:          6,
			Name:        "Portable Power Bank",
			Price:       4500,
			Stock:       80,
			Category:    "Electronics",
			Status:      "active",
			Description: "20000mAh fast-charging power bank",
		},
	}
}
