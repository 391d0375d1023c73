package catalog

import "strings"

// Recipe is a named, ordered home-page skeleton: "widget:variant" tokens in
// render order. Recipes describe the home page only; other pages are
// composed from fixed per-slug templates.
type Recipe struct {
	ID       string
	Pack     TemplatePack
	Sections []string
}

var recipes = map[string]Recipe{
	"info-classic": {
		ID: "info-classic", Pack: InfoPack,
		Sections: []string{
			"header:v1", "hero:v1", "services:cards_3", "testimonials:cards",
			"cta:banner", "contact:form_map", "footer:v1",
		},
	},
	"info-medical": {
		ID: "info-medical", Pack: InfoPack,
		Sections: []string{
			"header:v1", "hero:v1", "services:cards_3", "steps:numbered",
			"testimonials:quotes", "stats:counters", "cta:banner",
			"contact:form_map", "footer:v1",
		},
	},
	"info-saas": {
		ID: "info-saas", Pack: InfoPack,
		Sections: []string{
			"header:v1", "hero:v2-split", "features:grid_4", "steps:numbered",
			"stats:counters", "testimonials:cards", "pricing:tiers_3",
			"cta:banner", "contact:simple", "footer:v2-mega",
		},
	},
	"info-luxury": {
		ID: "info-luxury", Pack: InfoPack,
		Sections: []string{
			"header:v1-centered", "hero:v1-centered", "about:split_image",
			"services:list", "testimonials:quotes", "cta:split",
			"contact:simple", "footer:minimal",
		},
	},
	"info-restaurant": {
		ID: "info-restaurant", Pack: InfoPack,
		Sections: []string{
			"header:v1", "hero:v1", "about:v1", "services:cards_3",
			"testimonials:quotes", "stats:inline", "cta:banner",
			"contact:form_map", "footer:v1",
		},
	},
	"info-agency": {
		ID: "info-agency", Pack: InfoPack,
		Sections: []string{
			"header:v1", "hero:v2-split", "services:cards_3", "portfolio:grid",
			"stats:counters", "testimonials:carousel", "cta:banner",
			"contact:form_map", "footer:v2-mega",
		},
	},
	"catalog-classic": {
		ID: "catalog-classic", Pack: CatalogPack,
		Sections: []string{
			"header:v2-search", "hero:banner", "categories:icons_grid",
			"products_grid:grid_8", "promo_strip:icons", "testimonials:cards",
			"cta:banner", "footer:v2-mega",
		},
	},
	"catalog-boutique": {
		ID: "catalog-boutique", Pack: CatalogPack,
		Sections: []string{
			"header:v1", "hero:v1", "categories:tiles", "products_grid:grid_4",
			"promo_strip:banner", "stats:counters", "cta:banner",
			"contact:simple", "footer:v1",
		},
	},
}

// DefaultRecipeID is the per-pack catch-all when archetype inference finds
// nothing better.
func DefaultRecipeID(pack TemplatePack) string {
	if pack == CatalogPack {
		return "catalog-classic"
	}
	return "info-classic"
}

func RecipeByID(id string) (Recipe, bool) {
	r, ok := recipes[id]
	return r, ok
}

// RecipeInPack reports whether the id names a recipe belonging to the pack.
func RecipeInPack(id string, pack TemplatePack) bool {
	r, ok := recipes[id]
	return ok && r.Pack == pack
}

func RecipeIDsForPack(pack TemplatePack) []string {
	var ids []string
	for id, r := range recipes {
		if r.Pack == pack {
			ids = append(ids, id)
		}
	}
	return ids
}

// ParseSectionToken splits a "widget:variant" token. A token without a
// variant keeps the widget and reports an empty variant so the caller can
// substitute the pack default.
func ParseSectionToken(token string) (widget, variant string) {
	parts := strings.SplitN(token, ":", 2)
	widget = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		variant = strings.TrimSpace(parts[1])
	}
	return widget, variant
}
