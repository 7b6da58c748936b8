package service

import "github.com/MKhiriev/go-marketplace/models"

// DemoPassword is shared by every demo account.
const DemoPassword = "password123"

type demoUser struct {
	username string
	email    string
}

// demoProduct references its seller by position in demoUsers.
type demoProduct struct {
	input  models.ProductInput
	seller int
}

// demoFavorite references the user and product by position, starting at 0.
type demoFavorite struct {
	user    int
	product int
}

var demoUsers = []demoUser{
	{username: "john_doe", email: "john@example.com"},
	{username: "jane_smith", email: "jane@example.com"},
}

var demoProducts = []demoProduct{
	{seller: 0, input: models.ProductInput{
		Title:       "Wireless Noise-Cancelling Headphones",
		Description: "Premium over-ear headphones with active noise cancellation, 30-hour battery life, and crystal-clear sound quality. Perfect for music lovers and professionals who want immersive audio.",
		Price:       299.99,
		Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=600",
		Category:    "electronics",
	}},
	{seller: 0, input: models.ProductInput{
		Title:       "Vintage Leather Messenger Bag",
		Description: "Handcrafted genuine leather messenger bag with antique brass hardware. Features multiple compartments, padded laptop sleeve, and adjustable shoulder strap. Ages beautifully over time.",
		Price:       149.99,
		Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=600",
		Category:    "fashion",
	}},
	{seller: 0, input: models.ProductInput{
		Title:       "Smart Home Security Camera",
		Description: "4K HDR security camera with night vision, two-way audio, and AI-powered motion detection. Weather-resistant for indoor/outdoor use. Includes cloud and local storage options.",
		Price:       79.99,
		Image:       "https://images.unsplash.com/photo-1558002038-1055907df827?w=600",
		Category:    "electronics",
	}},
	{seller: 1, input: models.ProductInput{
		Title:       "Organic Matcha Tea Set",
		Description: "Premium Japanese ceremonial grade matcha powder with traditional bamboo whisk, scoop, and ceramic bowl. Sourced from Uji, Kyoto. A perfect gift for tea enthusiasts.",
		Price:       44.99,
		Image:       "https://images.unsplash.com/photo-1515823064-d6e0c04616a7?w=600",
		Category:    "food",
	}},
	{seller: 1, input: models.ProductInput{
		Title:       "Minimalist Mechanical Keyboard",
		Description: "Compact 75% layout mechanical keyboard with hot-swappable switches, RGB backlighting, and PBT double-shot keycaps. USB-C and Bluetooth 5.0 connectivity for versatile use.",
		Price:       129.99,
		Image:       "https://images.unsplash.com/photo-1618384887929-16ec33fab9ef?w=600",
		Category:    "electronics",
	}},
	{seller: 1, input: models.ProductInput{
		Title:       "Handmade Ceramic Plant Pot Set",
		Description: "Set of 3 artisan ceramic plant pots in earth-tone glazes. Each pot features drainage holes and matching saucers. Perfect for succulents, herbs, or small houseplants.",
		Price:       34.99,
		Image:       "https://images.unsplash.com/photo-1485955900006-10f4d324d411?w=600",
		Category:    "home",
	}},
	{seller: 0, input: models.ProductInput{
		Title:       "Professional Yoga Mat",
		Description: "Extra-thick 6mm eco-friendly TPE yoga mat with alignment markings. Non-slip surface, moisture-resistant, and comes with a carrying strap. Available in multiple colors.",
		Price:       59.99,
		Image:       "https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=600",
		Category:    "fitness",
	}},
	{seller: 1, input: models.ProductInput{
		Title:       "Artisan Coffee Bean Sampler",
		Description: "Collection of 5 single-origin specialty coffee beans from around the world. Each 100g bag is freshly roasted. Includes tasting notes and brewing recommendations for each origin.",
		Price:       39.99,
		Image:       "https://images.unsplash.com/photo-1559056199-641a0ac8b55e?w=600",
		Category:    "food",
	}},
	{seller: 0, input: models.ProductInput{
		Title:       "Portable Bluetooth Speaker",
		Description: "Waterproof IPX7 portable speaker with 360-degree sound, 20-hour battery life, and built-in microphone. Compact design with carabiner clip for outdoor adventures.",
		Price:       69.99,
		Image:       "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=600",
		Category:    "electronics",
	}},
	{seller: 1, input: models.ProductInput{
		Title:       "Illustrated World Atlas",
		Description: "Stunning large-format illustrated atlas featuring detailed maps, cultural insights, and breathtaking photography. Over 400 pages covering every country with fascinating facts and statistics.",
		Price:       54.99,
		Image:       "https://images.unsplash.com/photo-1524578271613-d550eacf6090?w=600",
		Category:    "books",
	}},
}

var demoFavorites = []demoFavorite{
	{user: 0, product: 3}, // matcha
	{user: 0, product: 4}, // keyboard
	{user: 1, product: 0}, // headphones
	{user: 1, product: 6}, // yoga mat
}
