package catalog

import (
	"webmart-io/store/pkg/models"
)

// Seed returns the demo catalog. Image entries are asset references; the
// renderer resolves them.
func Seed() *Catalog {
	return New(seedProducts(), SeedCategories(), SeedConditions())
}

func SeedCategories() []models.Category {
	return []models.Category{
		{ID: "electronics", Name: "Electronics", Emoji: "📱"},
		{ID: "fashion", Name: "Fashion", Emoji: "🧥"},
		{ID: "home", Name: "Home & Garden", Emoji: "🏡"},
		{ID: "sports", Name: "Sports & Outdoors", Emoji: "⛺"},
		{ID: "toys", Name: "Toys & Games", Emoji: "🧩"},
		{ID: "books", Name: "Books & Media", Emoji: "📚"},
		{ID: "auto", Name: "Automotive", Emoji: "🚗"},
		{ID: "beauty", Name: "Health & Beauty", Emoji: "🧴"},
		{ID: "jewelry", Name: "Jewelry & Accessories", Emoji: "💎"},
		{ID: "collectibles", Name: "Collectibles & Art", Emoji: "🖼️"},
	}
}

func SeedConditions() []models.ConditionType {
	return []models.ConditionType{
		models.ConditionNew,
		models.ConditionLikeNew,
		models.ConditionGood,
		models.ConditionFair,
	}
}

func seedProducts() []models.Product {
	return []models.Product{
		{
			ID: "p001", Title: "iPhone 14 Pro 256GB (Unlocked) — Deep Purple", Price: 799,
			Category: "electronics", Condition: models.ConditionLikeNew, Rating: 4.8, Reviews: 214,
			Location: "Austin, TX",
			Shipping: []models.ShippingOption{models.ShippingOptionShip, models.ShippingOptionPickup},
			AcceptOffers: true,
			Seller:       models.Seller{ID: "u101", Name: "Maya Chen", Badges: []string{"Verified", "Fast shipper"}, ResponseMins: 38, SoldCount: 1294},
			Images:       []string{"images/p001-1.svg", "images/p001-2.svg", "images/p001-3.svg"},
			Description:  "Lightly used iPhone 14 Pro with pristine screen and minimal wear. Battery health at 93%. Includes original box, USB-C to Lightning cable, and a matte MagSafe case. Clean IMEI and ready to activate.",
			Variants:     []models.Variant{{Name: "Storage", Options: []string{"128GB", "256GB", "512GB"}}},
			Trending:     true, Featured: true,
		},
		{
			ID: "p002", Title: "Sony WH-1000XM5 Noise Canceling Headphones", Price: 249,
			Category: "electronics", Condition: models.ConditionGood, Rating: 4.6, Reviews: 98,
			Location: "San Jose, CA",
			Shipping: []models.ShippingOption{models.ShippingOptionShip},
			AcceptOffers: true,
			Seller:       models.Seller{ID: "u102", Name: "Jordan Patel", Badges: []string{"Top rated"}, ResponseMins: 22, SoldCount: 642},
			Images:       []string{"images/p002-1.svg", "images/p002-2.svg"},
			Description:  "Comfortable, powerful ANC headphones with excellent call quality. Pads are clean and the hinge is tight. Includes carrying case and airline adapter.",
			Variants:     []models.Variant{{Name: "Color", Options: []string{"Black", "Silver"}}},
			Trending:     true,
		},
		{
			ID: "p003", Title: "Vintage Levi's 501 (Made in USA) — 32x32", Price: 120,
			Category: "fashion", Condition: models.ConditionGood, Rating: 4.7, Reviews: 51,
			Location: "Portland, OR",
			Shipping: []models.ShippingOption{models.ShippingOptionShip},
			Seller:   models.Seller{ID: "u103", Name: "Avery Miles", Badges: []string{"Verified"}, ResponseMins: 55, SoldCount: 312},
			Images:   []string{"images/p003-1.svg", "images/p003-2.svg"},
			Description: "Authentic vintage 501s with a great fade and solid structure. No major stains; small edge wear consistent with age. Washed and ready to wear.",
			Variants:    []models.Variant{{Name: "Size", Options: []string{"30x32", "32x32", "34x32"}}},
		},
		{
			ID: "p004", Title: "Solid Walnut Coffee Table — Mid-Century Style", Price: 420,
			Category: "home", Condition: models.ConditionLikeNew, Rating: 4.9, Reviews: 33,
			Location: "Brooklyn, NY",
			Shipping: []models.ShippingOption{models.ShippingOptionPickup, models.ShippingOptionDelivery},
			AcceptOffers: true,
			Seller:       models.Seller{ID: "u104", Name: "Sofia Reyes", Badges: []string{"Fast shipper"}, ResponseMins: 18, SoldCount: 87},
			Images:       []string{"images/p004-1.svg", "images/p004-2.svg"},
			Description:  "Beautiful walnut coffee table with a warm finish and clean lines. Kept in a smoke-free home and rarely used. Smooth surface with no scratches.",
		},
		{
			ID: "p005", Title: "Trek Domane AL 3 Road Bike — Size 54", Price: 950,
			Category: "sports", Condition: models.ConditionGood, Rating: 4.5, Reviews: 19,
			Location: "Denver, CO",
			Shipping: []models.ShippingOption{models.ShippingOptionPickup},
			AcceptOffers: true,
			Seller:       models.Seller{ID: "u105", Name: "Ethan Kim", Badges: []string{"Verified"}, ResponseMins: 44, SoldCount: 58},
			Images:       []string{"images/p005-1.svg", "images/p005-2.svg"},
			Description:  "Well-maintained endurance road bike, tuned and ready for spring rides. Fresh bar tape and new chain installed last month. Brakes are strong, shifting is crisp.",
			Variants:     []models.Variant{{Name: "Pedals", Options: []string{"Flat", "SPD clipless"}}},
		},
		{
			ID: "p006", Title: "Nintendo Switch OLED Bundle — 2 Games + Case", Price: 325,
			Category: "toys", Condition: models.ConditionLikeNew, Rating: 4.8, Reviews: 76,
			Location: "Chicago, IL",
			Shipping: []models.ShippingOption{models.ShippingOptionShip, models.ShippingOptionPickup},
			AcceptOffers: true,
			Seller:       models.Seller{ID: "u106", Name: "Noah Brooks", Badges: []string{"Top rated", "Fast shipper"}, ResponseMins: 15, SoldCount: 402},
			Images:       []string{"images/p006-1.svg", "images/p006-2.svg"},
			Description:  "OLED Switch in excellent condition with vibrant display. Includes dock, Joy-Cons, charger, travel case, and two popular games. Reset and ready for your account.",
		},
		{
			ID: "p007", Title: "Kindle Paperwhite (11th Gen) — 8GB, Ad-Free", Price: 85,
			Category: "books", Condition: models.ConditionGood, Rating: 4.4, Reviews: 40,
			Location: "Raleigh, NC",
			Shipping: []models.ShippingOption{models.ShippingOptionShip},
			Seller:   models.Seller{ID: "u107", Name: "Priya Nair", Badges: []string{"Verified"}, ResponseMins: 62, SoldCount: 210},
			Images:   []string{"images/p007-1.svg", "images/p007-2.svg"},
			Description: "Paperwhite with warm light and long battery life. Screen is clean; minor back scuffs. Includes a slim magnetic cover.",
			Variants:    []models.Variant{{Name: "Cover", Options: []string{"None", "Black", "Sage"}}},
		},
		{
			ID: "p008", Title: "CarPlay/Android Auto Dash Display — 9\" IPS", Price: 149,
			Category: "auto", Condition: models.ConditionNew, Rating: 4.3, Reviews: 12,
			Location: "Phoenix, AZ",
			Shipping: []models.ShippingOption{models.ShippingOptionShip},
			AcceptOffers: true,
			Seller:       models.Seller{ID: "u108", Name: "Harper Lane", Badges: []string{"Fast shipper"}, ResponseMins: 27, SoldCount: 130},
			Images:       []string{"images/p008-1.svg", "images/p008-2.svg"},
			Description:  "Brand new CarPlay/Android Auto display with bright IPS panel and responsive touch. Includes suction mount, dash pad, and cable set.",
		},
		{
			ID: "p009", Title: "Dyson Airwrap Complete — Long (Nickel/Copper)", Price: 399,
			Category: "beauty", Condition: models.ConditionLikeNew, Rating: 4.7, Reviews: 64,
			Location: "Miami, FL",
			Shipping: []models.ShippingOption{models.ShippingOptionShip},
			AcceptOffers: true,
			Seller:       models.Seller{ID: "u109", Name: "Lina Gomez", Badges: []string{"Verified", "Top rated"}, ResponseMins: 20, SoldCount: 519},
			Images:       []string{"images/p009-1.svg", "images/p009-2.svg"},
			Description:  "Barely used Airwrap with full attachment set. Cleaned and sanitized. Includes storage case and brush attachments for smooth blowouts and curls.",
			Variants:     []models.Variant{{Name: "Barrel", Options: []string{"Long", "Short"}}},
		},
		{
			ID: "p010", Title: "14K Gold Minimalist Chain Necklace — 18\"", Price: 260,
			Category: "jewelry", Condition: models.ConditionNew, Rating: 4.9, Reviews: 27,
			Location: "Los Angeles, CA",
			Shipping: []models.ShippingOption{models.ShippingOptionShip},
			Seller:   models.Seller{ID: "u110", Name: "Elise Park", Badges: []string{"Verified"}, ResponseMins: 48, SoldCount: 77},
			Images:   []string{"images/p010-1.svg", "images/p010-2.svg"},
			Description: "New 14K gold chain with a refined, minimalist look. Comfortable for everyday wear and layers beautifully. Includes gift box and authenticity card.",
			Variants:    []models.Variant{{Name: "Length", Options: []string{"16\"", "18\"", "20\""}}},
		},
		{
			ID: "p011", Title: "Original Abstract Canvas — 24x36, Signed", Price: 540,
			Category: "collectibles", Condition: models.ConditionNew, Rating: 4.6, Reviews: 9,
			Location: "Seattle, WA",
			Shipping: []models.ShippingOption{models.ShippingOptionShip},
			AcceptOffers: true,
			Seller:       models.Seller{ID: "u111", Name: "Kai Nguyen", Badges: []string{"Verified"}, ResponseMins: 33, SoldCount: 44},
			Images:       []string{"images/p011-1.svg", "images/p011-2.svg"},
			Description:  "Original acrylic abstract on stretched canvas with rich texture and a modern palette. Signed on the back and sealed with a matte varnish.",
		},
		{
			ID: "p012", Title: "Premium Espresso Grinder — Stepless, Single Dose", Price: 289,
			Category: "home", Condition: models.ConditionGood, Rating: 4.5, Reviews: 22,
			Location: "Boston, MA",
			Shipping: []models.ShippingOption{models.ShippingOptionShip},
			AcceptOffers: true,
			Seller:       models.Seller{ID: "u112", Name: "Samir Ali", Badges: []string{"Fast shipper"}, ResponseMins: 26, SoldCount: 96},
			Images:       []string{"images/p012-1.svg", "images/p012-2.svg"},
			Description:  "Stepless grinder tuned for espresso and pour-over. Consistent particle size with low retention for single dosing. Includes dosing cup and bellows.",
			Variants:     []models.Variant{{Name: "Voltage", Options: []string{"110V", "220V"}}},
		},
		{
			ID: "p013", Title: "GoPro HERO11 Black — Bundle", Price: 379,
			Category: "electronics", Condition: models.ConditionLikeNew, Rating: 4.7, Reviews: 48,
			Location: "Orlando, FL",
			Shipping: []models.ShippingOption{models.ShippingOptionShip, models.ShippingOptionPickup},
			AcceptOffers: true,
			Seller:       models.Seller{ID: "u113", Name: "Iris Wang", Badges: []string{"Top rated"}, ResponseMins: 20, SoldCount: 210},
			Images:       []string{"images/p013-1.svg"},
			Description:  "High-quality action camera with mounts and spare battery. Well cared for; includes ND filters and travel case.",
		},
		{
			ID: "p014", Title: "Patio Bistro Set — 2 chairs + table", Price: 199,
			Category: "home", Condition: models.ConditionGood, Rating: 4.4, Reviews: 14,
			Location: "Tucson, AZ",
			Shipping: []models.ShippingOption{models.ShippingOptionPickup},
			AcceptOffers: true,
			Seller:       models.Seller{ID: "u114", Name: "Lola Bennett", Badges: []string{}, ResponseMins: 72, SoldCount: 34},
			Images:       []string{"images/p014-1.svg"},
			Description:  "Compact bistro set perfect for small patios and balconies. Cushions included.",
		},
		{
			ID: "p015", Title: "Used DSLR Kit — 24-70mm + 50mm", Price: 625,
			Category: "electronics", Condition: models.ConditionGood, Rating: 4.6, Reviews: 26,
			Location: "San Diego, CA",
			Shipping: []models.ShippingOption{models.ShippingOptionShip},
			AcceptOffers: true,
			Seller:       models.Seller{ID: "u115", Name: "Marco Silva", Badges: []string{"Verified"}, ResponseMins: 34, SoldCount: 98},
			Images:       []string{"images/p015-1.svg"},
			Description:  "Reliable DSLR kit for enthusiasts — includes two lenses, bag, and a spare battery. Lightly used.",
		},
		{
			ID: "p016", Title: "Kids Wooden Train Set — 120 pcs", Price: 45,
			Category: "toys", Condition: models.ConditionNew, Rating: 4.8, Reviews: 82,
			Location: "Cleveland, OH",
			Shipping: []models.ShippingOption{models.ShippingOptionShip},
			Seller:   models.Seller{ID: "u116", Name: "Nina Park", Badges: []string{"Top rated"}, ResponseMins: 12, SoldCount: 410},
			Images:   []string{"images/p016-1.svg"},
			Description: "Durable wooden train pieces with bridges and scenery. Great educational toy for toddlers.",
		},
		{
			ID: "p017", Title: "Leather Office Chair — Ergonomic", Price: 180,
			Category: "home", Condition: models.ConditionLikeNew, Rating: 4.5, Reviews: 37,
			Location: "Columbus, OH",
			Shipping: []models.ShippingOption{models.ShippingOptionPickup, models.ShippingOptionDelivery},
			AcceptOffers: true,
			Seller:       models.Seller{ID: "u117", Name: "Darren Cole", Badges: []string{}, ResponseMins: 40, SoldCount: 66},
			Images:       []string{"images/p017-1.svg"},
			Description:  "Comfortable leather chair with lumbar support and tilt. Excellent for home offices.",
			Variants:     []models.Variant{{Name: "Color", Options: []string{"Black", "Brown"}}},
		},
		{
			ID: "p018", Title: "Hardcover Cookbooks Set — 6 Volumes", Price: 65,
			Category: "books", Condition: models.ConditionGood, Rating: 4.2, Reviews: 11,
			Location: "Minneapolis, MN",
			Shipping: []models.ShippingOption{models.ShippingOptionShip},
			Seller:   models.Seller{ID: "u118", Name: "Greta Olson", Badges: []string{}, ResponseMins: 88, SoldCount: 24},
			Images:   []string{"images/p018-1.svg"},
			Description: "A curated set of hardcover cookbooks covering baking, grilling, and weeknight dinners.",
		},
	}
}
