package store

// Seed populates the read-only reference data: payment methods, categories,
// services and the product catalog. It runs once at process start and is not
// part of request handling.
func (s *Store) Seed() {
	for _, m := range []PaymentMethodInput{
		{Name: "Credit / Debit Card", Code: "card", Icon: "credit-card", RequiresCardDetails: true, SortOrder: 1, Enabled: true},
		{Name: "Google Pay", Code: "googlepay", Icon: "google", IsDigitalWallet: true, SortOrder: 2, Enabled: true},
		{Name: "Apple Pay", Code: "applepay", Icon: "apple", IsDigitalWallet: true, SortOrder: 3, Enabled: true},
		{Name: "PayPal", Code: "paypal", Icon: "paypal", IsDigitalWallet: true, SortOrder: 4, Enabled: true},
		{Name: "Cash on Delivery", Code: "cod", Icon: "cash", IsCashOption: true, SortOrder: 5, Enabled: true},
	} {
		s.CreatePaymentMethod(m)
	}

	plants := s.CreateCategory(CategoryInput{Name: "Plants", Slug: "plants"})
	pots := s.CreateCategory(CategoryInput{Name: "Pots", Slug: "pots"})
	soil := s.CreateCategory(CategoryInput{Name: "Soil", Slug: "soil"})
	accessories := s.CreateCategory(CategoryInput{Name: "Accessories", Slug: "accessories"})

	for _, svc := range []ServiceInput{
		{Name: "Indoor Plant Care", Description: "Expert care for your indoor plants and arrangements", Icon: "leaf"},
		{Name: "Garden Design", Description: "Professional landscape and garden design services", Icon: "pencil-ruler"},
		{Name: "Plant Health", Description: "Diagnosis and treatment for plant diseases and pests", Icon: "heartbeat"},
		{Name: "Seasonal Planting", Description: "Seasonal planting and garden refresh services", Icon: "calendar"},
	} {
		s.CreateService(svc)
	}

	monstera := s.CreateProduct(ProductInput{
		Name:          "Monstera Deliciosa Plant",
		Slug:          "monstera-deliciosa",
		Description:   "The Monstera Deliciosa, also known as the Swiss Cheese Plant, is famous for its quirky natural leaf holes.",
		Price:         49900,
		OriginalPrice: int64Ptr(69900),
		ImageURL:      "https://images.unsplash.com/photo-1614594895304-fe7116ac3b73?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		CategoryID:    plants.ID,
		InStock:       true,
		Featured:      true,
		Rating:        4.0,
		ReviewCount:   24,
	})
	s.CreateProductDetail(ProductDetailInput{
		ProductID:        monstera.ID,
		Light:            "Bright Indirect",
		Water:            "Once a week",
		Height:           "30-40 cm",
		Temperature:      "18-30°C",
		CareInstructions: "Keep soil moist but not soggy\nPlace in bright, indirect sunlight\nWipe leaves occasionally to remove dust\nRepot every 2-3 years in spring",
	})

	for _, p := range []ProductInput{
		{
			Name:        "Snake Plant",
			Slug:        "snake-plant",
			Description: "The Snake Plant is one of the most low-maintenance plants you can grow, making it perfect for beginners.",
			Price:       34900,
			ImageURL:    "https://images.unsplash.com/photo-1598880513596-cf08398a71d1?ixlib=rb-1.2.1&auto=format&fit=crop&w=400&q=80",
			CategoryID:  plants.ID,
			InStock:     true,
			Featured:    true,
			Rating:      4.5,
			ReviewCount: 42,
		},
		{
			Name:        "Peace Lily",
			Slug:        "peace-lily",
			Description: "The Peace Lily is an easy-care plant that brings elegance and tranquility to any indoor space.",
			Price:       59900,
			ImageURL:    "https://images.unsplash.com/photo-1632822118334-6896c2e7364f?ixlib=rb-1.2.1&auto=format&fit=crop&w=400&q=80",
			CategoryID:  plants.ID,
			InStock:     true,
			Featured:    true,
			Rating:      4.0,
			ReviewCount: 18,
		},
		{
			Name:        "Money Plant",
			Slug:        "money-plant",
			Description: "The Money Plant is believed to bring good luck and prosperity, and it's also very easy to grow.",
			Price:       29900,
			ImageURL:    "https://images.unsplash.com/photo-1603436326446-74e69e9f54af?ixlib=rb-1.2.1&auto=format&fit=crop&w=400&q=80",
			CategoryID:  plants.ID,
			InStock:     true,
			Featured:    true,
			Rating:      3.5,
			ReviewCount: 31,
		},
		{
			Name:        "Ceramic Pot",
			Slug:        "ceramic-pot",
			Description: "A beautiful ceramic pot for your favorite plants.",
			Price:       59900,
			ImageURL:    "https://images.unsplash.com/photo-1562517634-baa2da3acfbf?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
			CategoryID:  pots.ID,
			InStock:     true,
			Rating:      4.2,
			ReviewCount: 15,
		},
		{
			Name:        "Gardening Gloves",
			Slug:        "gardening-gloves",
			Description: "Durable gardening gloves to protect your hands while working in the garden.",
			Price:       24900,
			ImageURL:    "https://images.unsplash.com/photo-1559070657-e4f688d76e8d?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
			CategoryID:  accessories.ID,
			InStock:     true,
			Rating:      4.0,
			ReviewCount: 23,
		},
		{
			Name:        "Watering Can",
			Slug:        "watering-can",
			Description: "A stylish watering can for all your plant watering needs.",
			Price:       39900,
			ImageURL:    "https://images.unsplash.com/photo-1588621697430-44e66a13a29f?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
			CategoryID:  accessories.ID,
			InStock:     true,
			Rating:      4.1,
			ReviewCount: 19,
		},
		{
			Name:        "Garden Shovel",
			Slug:        "garden-shovel",
			Description: "A high-quality garden shovel for your planting needs.",
			Price:       34900,
			ImageURL:    "https://images.unsplash.com/photo-1599707367072-cd6ada2bc375?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
			CategoryID:  accessories.ID,
			InStock:     true,
			Rating:      3.9,
			ReviewCount: 27,
		},
		{
			Name:        "Organic Potting Soil",
			Slug:        "organic-potting-soil",
			Description: "High-quality organic potting soil for healthy plant growth.",
			Price:       29900,
			ImageURL:    "https://images.unsplash.com/photo-1467205077495-1712e4be58d0?ixlib=rb-1.2.1&auto=format&fit=crop&w=400&q=80",
			CategoryID:  soil.ID,
			InStock:     true,
			Rating:      4.3,
			ReviewCount: 32,
		},
		{
			Name:        "Vermicompost",
			Slug:        "vermicompost",
			Description: "Nutrient-rich organic compost produced by earthworms for your plants.",
			Price:       19900,
			ImageURL:    "https://images.unsplash.com/photo-1581281698667-7524cd5b2ba2?ixlib=rb-1.2.1&auto=format&fit=crop&w=400&q=80",
			CategoryID:  soil.ID,
			InStock:     true,
			Rating:      4.6,
			ReviewCount: 44,
		},
		{
			Name:        "Coco Peat",
			Slug:        "coco-peat",
			Description: "Eco-friendly growing medium made from coconut husk.",
			Price:       14900,
			ImageURL:    "https://images.unsplash.com/photo-1635526909130-f0b76e90f7dc?ixlib=rb-1.2.1&auto=format&fit=crop&w=400&q=80",
			CategoryID:  soil.ID,
			InStock:     true,
			Rating:      4.2,
			ReviewCount: 36,
		},
		{
			Name:        "Perlite Mix",
			Slug:        "perlite-mix",
			Description: "Lightweight soil amendment for improved drainage and aeration.",
			Price:       24900,
			ImageURL:    "https://images.unsplash.com/photo-1605159723089-96db12163e1a?ixlib=rb-1.2.1&auto=format&fit=crop&w=400&q=80",
			CategoryID:  soil.ID,
			InStock:     true,
			Rating:      4.0,
			ReviewCount: 28,
		},
	} {
		s.CreateProduct(p)
	}
}

func int64Ptr(v int64) *int64 {
	return &v
}
