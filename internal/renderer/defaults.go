package renderer

import (
	"fmt"

	"sitegen_ai_server/internal/utils"
)

// defaultsFunc synthesizes the complete default prop set for one widget.
// Every function is total: any variant, any context, always a full map.
type defaultsFunc func(variant string, rc Context) map[string]any

// widgetDefaults is the per-widget registry; unknown widgets fall through
// to genericDefaults so the renderer never fails on a validated plan.
var widgetDefaults = map[string]defaultsFunc{
	"header":        headerDefaults,
	"hero":          heroDefaults,
	"services":      servicesDefaults,
	"features":      featuresDefaults,
	"about":         aboutDefaults,
	"steps":         stepsDefaults,
	"testimonials":  testimonialsDefaults,
	"stats":         statsDefaults,
	"pricing":       pricingDefaults,
	"portfolio":     portfolioDefaults,
	"blog_teasers":  blogTeasersDefaults,
	"faq":           faqDefaults,
	"cta":           ctaDefaults,
	"contact":       contactDefaults,
	"footer":        footerDefaults,
	"categories":    categoriesDefaults,
	"products_grid": productsGridDefaults,
	"promo_strip":   promoStripDefaults,
}

// DefaultsFor resolves the default props of a (widget, variant) pair.
func DefaultsFor(widget, variant string, rc Context) map[string]any {
	if fn, ok := widgetDefaults[widget]; ok {
		return fn(variant, rc)
	}
	return genericDefaults(variant, rc)
}

func genericDefaults(_ string, rc Context) map[string]any {
	return map[string]any{"title": rc.businessName()}
}

func headerDefaults(variant string, rc Context) map[string]any {
	props := map[string]any{
		"brand": rc.businessName(),
		"logo":  rc.LogoURL,
		"nav":   rc.navProp(),
		"cta":   map[string]any{"label": "Get in touch", "href": "/contact"},
	}
	if variant == "v2-search" {
		props["search"] = true
	}
	return props
}

func heroDefaults(variant string, rc Context) map[string]any {
	props := map[string]any{
		"headline":    rc.businessName(),
		"subheadline": utils.Truncate(rc.Prompt, 120),
		"bullets":     []any{},
		"stats":       []any{},
		"cta":         map[string]any{"label": "Learn more", "href": "/contact"},
	}
	if variant == "v2-split" {
		props["image"] = placeholderImage("hero")
	}
	if len(rc.Products) > 0 {
		limit := 3
		if limit > len(rc.Products) {
			limit = len(rc.Products)
		}
		featured := make([]any, 0, limit)
		for _, p := range rc.Products[:limit] {
			featured = append(featured, map[string]any{"name": p})
		}
		props["products"] = featured
	}
	return props
}

func servicesDefaults(_ string, rc Context) map[string]any {
	return map[string]any{
		"title": "What we do",
		"items": placeholderItems(3, "Service"),
	}
}

func featuresDefaults(_ string, rc Context) map[string]any {
	return map[string]any{
		"title": "Why choose " + rc.businessName(),
		"items": placeholderItems(4, "Feature"),
	}
}

func aboutDefaults(variant string, rc Context) map[string]any {
	props := map[string]any{
		"title": "About " + rc.businessName(),
		"body":  utils.Truncate(rc.Prompt, 280),
	}
	if variant == "split_image" {
		props["image"] = placeholderImage("about")
	}
	return props
}

func stepsDefaults(_ string, _ Context) map[string]any {
	return map[string]any{
		"title": "How it works",
		"items": placeholderItems(3, "Step"),
	}
}

func testimonialsDefaults(_ string, _ Context) map[string]any {
	return map[string]any{
		"title": "What clients say",
		"items": []any{
			map[string]any{"quote": "Outstanding service from start to finish.", "author": "A happy client"},
			map[string]any{"quote": "Professional, fast and reliable.", "author": "A returning customer"},
		},
	}
}

func statsDefaults(_ string, _ Context) map[string]any {
	return map[string]any{
		"items": []any{
			map[string]any{"label": "Years of experience", "value": "10+"},
			map[string]any{"label": "Happy clients", "value": "500+"},
			map[string]any{"label": "Projects delivered", "value": "1200+"},
		},
	}
}

func pricingDefaults(_ string, _ Context) map[string]any {
	return map[string]any{
		"title": "Pricing",
		"tiers": []any{
			map[string]any{"name": "Starter", "price": "$9", "features": []any{"Basic access"}},
			map[string]any{"name": "Pro", "price": "$29", "features": []any{"Everything in Starter", "Priority support"}},
			map[string]any{"name": "Business", "price": "$99", "features": []any{"Everything in Pro", "Dedicated manager"}},
		},
	}
}

func portfolioDefaults(_ string, _ Context) map[string]any {
	return map[string]any{
		"title": "Selected work",
		"items": placeholderItems(4, "Project"),
	}
}

func blogTeasersDefaults(_ string, _ Context) map[string]any {
	return map[string]any{
		"title": "From the blog",
		"items": placeholderItems(3, "Post"),
	}
}

func faqDefaults(_ string, _ Context) map[string]any {
	return map[string]any{
		"title": "Frequently asked questions",
		"items": []any{
			map[string]any{"question": "How do I get started?", "answer": "Reach out via the contact page."},
			map[string]any{"question": "Where are you located?", "answer": "See the contact section for details."},
			map[string]any{"question": "Do you offer custom work?", "answer": "Yes, get in touch to discuss."},
		},
	}
}

func ctaDefaults(_ string, rc Context) map[string]any {
	return map[string]any{
		"headline": "Ready to work with " + rc.businessName() + "?",
		"button":   map[string]any{"label": "Contact us", "href": "/contact"},
	}
}

func contactDefaults(variant string, rc Context) map[string]any {
	return map[string]any{
		"title":   "Contact us",
		"phone":   rc.Phone,
		"email":   rc.Email,
		"address": rc.fullAddress(),
		"form":    variant == "form_map",
	}
}

func footerDefaults(_ string, rc Context) map[string]any {
	return map[string]any{
		"brand": rc.businessName(),
		"nav":   rc.navProp(),
		"contact": map[string]any{
			"phone": rc.Phone,
			"email": rc.Email,
		},
		"legal": "© " + rc.businessName(),
	}
}

func categoriesDefaults(_ string, rc Context) map[string]any {
	items := placeholderItems(4, "Category")
	if len(rc.Products) > 0 {
		items = items[:0]
		for _, p := range rc.Products {
			items = append(items, map[string]any{"title": p})
		}
	}
	return map[string]any{
		"title": "Shop by category",
		"items": items,
	}
}

func productsGridDefaults(variant string, rc Context) map[string]any {
	count := 8
	switch variant {
	case "grid_4":
		count = 4
	case "carousel":
		count = 6
	}
	items := make([]any, 0, count)
	for i := 0; i < count; i++ {
		name := fmt.Sprintf("Product %d", i+1)
		if i < len(rc.Products) {
			name = rc.Products[i]
		}
		items = append(items, map[string]any{
			"name":  name,
			"price": "",
			"image": placeholderImage(fmt.Sprintf("product-%d", i+1)),
		})
	}
	return map[string]any{
		"title": "Our products",
		"items": items,
	}
}

func promoStripDefaults(_ string, _ Context) map[string]any {
	return map[string]any{
		"items": []any{
			map[string]any{"icon": "truck", "text": "Fast delivery"},
			map[string]any{"icon": "refresh", "text": "Easy returns"},
			map[string]any{"icon": "chat", "text": "Friendly support"},
		},
	}
}

func placeholderItems(n int, label string) []any {
	items := make([]any, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, map[string]any{
			"title":       fmt.Sprintf("%s %d", label, i+1),
			"description": "",
		})
	}
	return items
}

func placeholderImage(slot string) string {
	return "/assets/placeholders/" + slot + ".jpg"
}
