package main

import (
	"log"
	"time"

	"bazar/internal/models"
	"bazar/internal/repositories"
)

// seedProducts populates the in-memory catalog so the storefront is
// browsable without a database. IDs are fixed so cart links stay stable
// across restarts in memory-only mode.
func seedProducts(repo repositories.ProductRepository) {
	day := func(d string) time.Time {
		t, _ := time.Parse("2006-01-02", d)
		return t
	}

	products := []models.Product{
		{ID: "1", Name: "Designer Kurta Set", Price: 899, OriginalPrice: 1299, Category: "garments", Subcategory: "womens-wear", Description: "Beautiful designer kurta set with dupatta. Perfect for festive occasions.", Image: "https://images.unsplash.com/photo-1583391733956-6c78276477e2?w=500", InStock: true, Rating: 4.5, CreatedAt: day("2024-01-15")},
		{ID: "2", Name: "Men's Cotton Shirt", Price: 599, OriginalPrice: 799, Category: "garments", Subcategory: "mens-wear", Description: "Premium cotton formal shirt. Available in multiple colors.", Image: "https://images.unsplash.com/photo-1602810318383-e386cc2a3ccf?w=500", InStock: true, Rating: 4.3, CreatedAt: day("2024-01-14")},
		{ID: "3", Name: "Kids Party Dress", Price: 699, OriginalPrice: 999, Category: "garments", Subcategory: "kids-wear", Description: "Adorable party dress for girls. Sizes 2-10 years.", Image: "https://images.unsplash.com/photo-1518831959646-742c3a14ebf7?w=500", InStock: true, Rating: 4.7, CreatedAt: day("2024-01-13")},
		{ID: "4", Name: "Traditional Saree", Price: 1499, OriginalPrice: 2199, Category: "garments", Subcategory: "womens-wear", Description: "Elegant silk saree with beautiful embroidery work.", Image: "https://images.unsplash.com/photo-1610030469983-98e550d6193c?w=500", InStock: true, Rating: 4.8, CreatedAt: day("2024-01-12")},
		{ID: "5", Name: "School Uniform Shirt", Price: 350, OriginalPrice: 450, Category: "uniforms", Subcategory: "school", Description: "Official school uniform shirt. White, premium fabric.", Image: "https://images.unsplash.com/photo-1489987707025-afc232f7ea0f?w=500", InStock: true, Rating: 4.4, CreatedAt: day("2024-01-11")},
		{ID: "6", Name: "School Uniform Pants", Price: 450, OriginalPrice: 600, Category: "uniforms", Subcategory: "school", Description: "Comfortable school uniform pants. Navy blue.", Image: "https://images.unsplash.com/photo-1473966968600-fa801b869a1a?w=500", InStock: true, Rating: 4.5, CreatedAt: day("2024-01-10")},
		{ID: "7", Name: "Formal Leather Shoes", Price: 1299, OriginalPrice: 1799, Category: "footwear", Subcategory: "formal", Description: "Premium leather formal shoes for men. Perfect for office wear.", Image: "https://images.unsplash.com/photo-1614252235316-8c857d38b5f4?w=500", InStock: true, Rating: 4.6, CreatedAt: day("2024-01-09")},
		{ID: "8", Name: "Casual Chappals", Price: 299, OriginalPrice: 399, Category: "footwear", Subcategory: "casual", Description: "Comfortable daily wear chappals. Durable and stylish.", Image: "https://images.unsplash.com/photo-1603487742131-4160ec999306?w=500", InStock: true, Rating: 4.2, CreatedAt: day("2024-01-08")},
		{ID: "9", Name: "Women's Bellies", Price: 499, OriginalPrice: 699, Category: "footwear", Subcategory: "bellies", Description: "Trendy flat bellies for women. Multiple colors available.", Image: "https://images.unsplash.com/photo-1543163521-1bf539c55dd2?w=500", InStock: true, Rating: 4.4, CreatedAt: day("2024-01-07")},
		{ID: "10", Name: "Fashion Earrings", Price: 199, OriginalPrice: 299, Category: "accessories", Subcategory: "jewellery", Description: "Trendy fashion earrings. Gold-plated design.", Image: "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=500", InStock: true, Rating: 4.3, CreatedAt: day("2024-01-06")},
		{ID: "11", Name: "Necklace Set", Price: 799, OriginalPrice: 1199, Category: "accessories", Subcategory: "jewellery", Description: "Beautiful necklace set with matching earrings.", Image: "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=500", InStock: true, Rating: 4.7, CreatedAt: day("2024-01-05")},
		{ID: "12", Name: "Makeup Kit", Price: 599, OriginalPrice: 899, Category: "accessories", Subcategory: "cosmetics", Description: "Complete makeup kit with essential items.", Image: "https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=500", InStock: true, Rating: 4.5, CreatedAt: day("2024-01-04")},
		{ID: "13", Name: "Cotton Socks Pack", Price: 249, OriginalPrice: 349, Category: "hosiery", Subcategory: "socks", Description: "Pack of 3 premium cotton socks. Comfortable and durable.", Image: "https://images.unsplash.com/photo-1586350977771-b3b0abd50c82?w=500", InStock: true, Rating: 4.4, CreatedAt: day("2024-01-03")},
		{ID: "14", Name: "Innerwear Set", Price: 399, OriginalPrice: 549, Category: "hosiery", Subcategory: "innerwear", Description: "Premium quality innerwear set. Soft and comfortable.", Image: "https://images.unsplash.com/photo-1618354691373-d851c5c3a990?w=500", InStock: true, Rating: 4.6, CreatedAt: day("2024-01-02")},
		{ID: "15", Name: "Decorative Gift Set", Price: 899, OriginalPrice: 1299, Category: "gifts", Subcategory: "decorative", Description: "Beautiful decorative gift set. Perfect for all occasions.", Image: "https://images.unsplash.com/photo-1513885535751-8b9238bd345a?w=500", InStock: true, Rating: 4.5, CreatedAt: day("2024-01-01")},
		{ID: "16", Name: "Kids Toy Set", Price: 699, OriginalPrice: 999, Category: "gifts", Subcategory: "toys", Description: "Educational toy set for kids. Safe and fun.", Image: "https://images.unsplash.com/photo-1558060370-d644479cb6f7?w=500", InStock: true, Rating: 4.8, CreatedAt: day("2023-12-31")},
	}

	for i := range products {
		if err := repo.Create(&products[i]); err != nil {
			log.Printf("Error seeding product %s: %v", products[i].Name, err)
		}
	}
}
