package seed

// sampleCatalog is the demo storefront inventory: seven clothing products
// across five categories, thirty-three variations, a handful deliberately out
// of stock and one with a negative price adjustment.
func sampleCatalog() []sampleProduct {
	return []sampleProduct{
		{
			name:        "Classic Cotton T-Shirt",
			description: "Comfortable 100% cotton t-shirt perfect for everyday wear.",
			basePrice:   "19.99",
			category:    "shirts",
			imageURL:    "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500",
			variations: []sampleVariation{
				{size: "S", color: "White", adjustment: "0.00", stockQuantity: 15, sku: "TSHIRT-WHITE-S"},
				{size: "M", color: "White", adjustment: "0.00", stockQuantity: 20, sku: "TSHIRT-WHITE-M"},
				{size: "L", color: "White", adjustment: "0.00", stockQuantity: 12, sku: "TSHIRT-WHITE-L"},
				{size: "S", color: "Black", adjustment: "2.00", stockQuantity: 8, sku: "TSHIRT-BLACK-S"},
				{size: "M", color: "Black", adjustment: "2.00", stockQuantity: 0, sku: "TSHIRT-BLACK-M"},
				{size: "L", color: "Black", adjustment: "2.00", stockQuantity: 5, sku: "TSHIRT-BLACK-L"},
			},
		},
		{
			name:        "Denim Slim Fit Jeans",
			description: "Premium denim jeans with a modern slim fit.",
			basePrice:   "89.99",
			category:    "pants",
			imageURL:    "https://images.unsplash.com/photo-1542272604-787c3835535d?w=500",
			variations: []sampleVariation{
				{size: "30", color: "Blue", adjustment: "0.00", stockQuantity: 10, sku: "JEANS-BLUE-30"},
				{size: "32", color: "Blue", adjustment: "0.00", stockQuantity: 15, sku: "JEANS-BLUE-32"},
				{size: "34", color: "Blue", adjustment: "0.00", stockQuantity: 12, sku: "JEANS-BLUE-34"},
				{size: "32", color: "Black", adjustment: "10.00", stockQuantity: 0, sku: "JEANS-BLACK-32"},
				{size: "34", color: "Black", adjustment: "10.00", stockQuantity: 8, sku: "JEANS-BLACK-34"},
			},
		},
		{
			name:        "Summer Floral Dress",
			description: "Light and breezy floral dress perfect for summer occasions.",
			basePrice:   "79.99",
			category:    "dresses",
			imageURL:    "https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=500",
			variations: []sampleVariation{
				{size: "XS", color: "Pink", adjustment: "0.00", stockQuantity: 6, sku: "DRESS-PINK-XS"},
				{size: "S", color: "Pink", adjustment: "0.00", stockQuantity: 10, sku: "DRESS-PINK-S"},
				{size: "M", color: "Pink", adjustment: "0.00", stockQuantity: 8, sku: "DRESS-PINK-M"},
				{size: "S", color: "Blue", adjustment: "5.00", stockQuantity: 12, sku: "DRESS-BLUE-S"},
				{size: "M", color: "Blue", adjustment: "5.00", stockQuantity: 0, sku: "DRESS-BLUE-M"},
			},
		},
		{
			name:        "Leather Bomber Jacket",
			description: "Stylish genuine leather bomber jacket for a timeless look.",
			basePrice:   "199.99",
			category:    "jackets",
			imageURL:    "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=500",
			variations: []sampleVariation{
				{size: "S", color: "Brown", adjustment: "0.00", stockQuantity: 4, sku: "JACKET-BROWN-S"},
				{size: "M", color: "Brown", adjustment: "0.00", stockQuantity: 6, sku: "JACKET-BROWN-M"},
				{size: "L", color: "Brown", adjustment: "0.00", stockQuantity: 3, sku: "JACKET-BROWN-L"},
				{size: "M", color: "Black", adjustment: "25.00", stockQuantity: 5, sku: "JACKET-BLACK-M"},
				{size: "L", color: "Black", adjustment: "25.00", stockQuantity: 0, sku: "JACKET-BLACK-L"},
			},
		},
		{
			name:        "Wool Blend Sweater",
			description: "Cozy wool blend sweater ideal for cooler weather.",
			basePrice:   "65.99",
			category:    "shirts",
			imageURL:    "https://images.unsplash.com/photo-1576995853123-5a10305d93c0?w=500",
			variations: []sampleVariation{
				{size: "S", color: "Gray", adjustment: "0.00", stockQuantity: 12, sku: "SWEATER-GRAY-S"},
				{size: "M", color: "Gray", adjustment: "0.00", stockQuantity: 15, sku: "SWEATER-GRAY-M"},
				{size: "L", color: "Gray", adjustment: "0.00", stockQuantity: 9, sku: "SWEATER-GRAY-L"},
				{size: "M", color: "Navy", adjustment: "8.00", stockQuantity: 7, sku: "SWEATER-NAVY-M"},
			},
		},
		{
			name:        "Silk Scarf Collection",
			description: "Elegant silk scarf available in multiple patterns.",
			basePrice:   "45.99",
			category:    "accessories",
			imageURL:    "https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=500",
			variations: []sampleVariation{
				{size: "One Size", color: "Floral", adjustment: "0.00", stockQuantity: 20, sku: "SCARF-FLORAL-OS"},
				{size: "One Size", color: "Geometric", adjustment: "5.00", stockQuantity: 15, sku: "SCARF-GEO-OS"},
				{size: "One Size", color: "Solid", adjustment: "-5.00", stockQuantity: 0, sku: "SCARF-SOLID-OS"},
			},
		},
		{
			name:        "High-Waisted Trousers",
			description: "Professional high-waisted trousers for office wear.",
			basePrice:   "95.99",
			category:    "pants",
			imageURL:    "https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?w=500",
			variations: []sampleVariation{
				{size: "28", color: "Navy", adjustment: "0.00", stockQuantity: 8, sku: "TROUSER-NAVY-28"},
				{size: "30", color: "Navy", adjustment: "0.00", stockQuantity: 12, sku: "TROUSER-NAVY-30"},
				{size: "32", color: "Navy", adjustment: "0.00", stockQuantity: 10, sku: "TROUSER-NAVY-32"},
				{size: "30", color: "Black", adjustment: "10.00", stockQuantity: 6, sku: "TROUSER-BLACK-30"},
				{size: "32", color: "Black", adjustment: "10.00", stockQuantity: 0, sku: "TROUSER-BLACK-32"},
			},
		},
	}
}
