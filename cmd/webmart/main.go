package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"webmart-io/store/configs"
	"webmart-io/store/pkg/catalog"
	"webmart-io/store/pkg/kv"
	"webmart-io/store/pkg/models"
	"webmart-io/store/pkg/search"
	"webmart-io/store/pkg/services"
)

func main() {
	var (
		action      = flag.String("action", "browse", "Action: browse, suggest, cart, orders, listings")
		query       = flag.String("q", "", "Search query")
		category    = flag.String("category", "", "Category filter")
		condition   = flag.String("condition", "", "Condition filter: New, Like New, Good, Fair")
		status      = flag.String("status", "", "Listing status filter: active, sold, paused, removed")
		sortKey     = flag.String("sort", "relevance", "Sort: relevance, price_asc, price_desc, rating_desc, newest, popular")
		page        = flag.Int("page", 1, "Result page")
		coupon      = flag.String("coupon", "", "Coupon code for cart totals")
		pricingPath = flag.String("pricing", "pricing.yaml", "Pricing rules file")
		timeout     = flag.Duration("timeout", 10*time.Second, "Operation timeout")
		jsonOutput  = flag.Bool("json", false, "Output in JSON format")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pricing, err := configs.LoadPricing(*pricingPath)
	if err != nil {
		log.Fatal("Failed to load pricing rules:", err)
	}

	scopes := kv.MemoryScopes()
	if redisURL := configs.LoadEnvFor("REDIS_URL"); redisURL != "" {
		client, err := kv.ConnectRedis(redisURL)
		if err != nil {
			log.Fatal("Failed to connect to Redis:", err)
		}
		defer client.Close()
		scopes.Durable = kv.NewRedis(client)
	}

	cat := catalog.Seed()
	carts := services.NewCartService(scopes.Durable, cat)
	prices := services.NewPricingService(cat, pricing)
	orders := services.NewOrderService(scopes.Durable)
	listings := services.NewListingService(scopes.Durable, scopes.Session)

	switch *action {
	case "browse":
		criteria := search.Criteria{
			Query: *query,
			Sort:  search.ParseSortKey(*sortKey),
			Page:  *page,
		}
		if *category != "" {
			criteria.Categories = []string{*category}
		}
		if *condition != "" {
			cond, ok := models.ParseConditionType(*condition)
			if !ok {
				log.Fatalf("Unknown condition: %s", *condition)
			}
			criteria.Conditions = []string{string(cond)}
		}
		results := search.Filter(cat, criteria)
		pages := search.PageCount(len(results), search.PAGE_SIZE)
		visible := search.Page(results, criteria.Page, search.PAGE_SIZE)
		emit(*jsonOutput, visible, func() {
			for _, p := range visible {
				fmt.Printf("%-6s %-34s $%-8.0f %.1f (%d reviews)\n", p.ID, p.Title, p.Price, p.Rating, p.Reviews)
			}
			fmt.Printf("%d results, page %d of %d\n", len(results), criteria.Page, pages)
		})

	case "suggest":
		idx := search.BuildIndex(cat)
		suggestions := idx.Suggest(*query)
		emit(*jsonOutput, suggestions, func() {
			for _, s := range suggestions {
				fmt.Printf("%-6s %-34s %s\n", s.ID, s.Title, s.Category)
			}
		})

	case "cart":
		totals := prices.ComputeTotals(ctx, carts.Cart(ctx), *coupon)
		emit(*jsonOutput, totals, func() {
			for _, line := range totals.Items {
				fmt.Printf("%-34s x%-3d $%.0f\n", line.Product.Title, line.Qty, line.LineTotal)
			}
			fmt.Printf("subtotal $%.0f  shipping $%.0f  tax $%.0f  discount $%.0f  total $%.0f\n",
				totals.Subtotal, totals.Shipping, totals.Tax, totals.Discount, totals.Total)
		})

	case "orders":
		all := orders.Orders(ctx)
		emit(*jsonOutput, all, func() {
			for _, o := range all {
				fmt.Printf("%-14s %-12s $%-8.0f %s\n", o.ID, o.Status, o.Totals.Total, o.PlacedAt.Format(time.RFC3339))
			}
		})

	case "listings":
		all := listings.Listings(ctx)
		if *status != "" {
			var state models.ListingStateType
			state, err := state.ParseListingStateType(*status)
			if err != nil {
				log.Fatal("Invalid status filter:", err)
			}
			kept := all[:0]
			for _, l := range all {
				if l.Status == state {
					kept = append(kept, l)
				}
			}
			all = kept
		}
		emit(*jsonOutput, all, func() {
			for _, l := range all {
				fmt.Printf("%-14s %-10s %-34s $%.0f\n", l.ID, l.Status, l.Title, l.Price)
			}
		})

	default:
		log.Fatalf("Unknown action: %s", *action)
	}
}

func emit(asJSON bool, v any, plain func()) {
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			log.Fatal("Failed to encode output:", err)
		}
		return
	}
	plain()
}
