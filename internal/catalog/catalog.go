package catalog

// TemplatePack selects which sub-library of widgets, variants and recipes
// applies to a plan. There is exactly one pack per website type.
type TemplatePack string

const (
	InfoPack    TemplatePack = "info_pack"
	CatalogPack TemplatePack = "catalog_pack"
)

// WidgetDef describes one widget inside a pack: the closed set of variants a
// plan may reference, and the prop keys the renderer resolves for it. The
// first variant is the default used when a recipe or the model leaves the
// variant empty.
type WidgetDef struct {
	Variants []string
	PropKeys []string
}

// packs is the whole curated library, built once at init and read-only
// afterwards. Concurrent readers need no locking.
var packs = map[TemplatePack]map[string]WidgetDef{
	InfoPack: {
		"header": {
			Variants: []string{"v1", "v1-centered", "v2-minimal"},
			PropKeys: []string{"brand", "logo", "nav", "cta"},
		},
		"hero": {
			Variants: []string{"v1", "v2-split", "v1-centered"},
			PropKeys: []string{"headline", "subheadline", "bullets", "stats", "cta", "image"},
		},
		"services": {
			Variants: []string{"cards_3", "list", "icons"},
			PropKeys: []string{"title", "items"},
		},
		"features": {
			Variants: []string{"grid_4", "checklist", "alternating"},
			PropKeys: []string{"title", "items"},
		},
		"about": {
			Variants: []string{"v1", "split_image"},
			PropKeys: []string{"title", "body", "image"},
		},
		"steps": {
			Variants: []string{"numbered", "timeline"},
			PropKeys: []string{"title", "items"},
		},
		"testimonials": {
			Variants: []string{"cards", "carousel", "quotes"},
			PropKeys: []string{"title", "items"},
		},
		"stats": {
			Variants: []string{"counters", "inline"},
			PropKeys: []string{"items"},
		},
		"pricing": {
			Variants: []string{"tiers_3", "simple"},
			PropKeys: []string{"title", "tiers"},
		},
		"portfolio": {
			Variants: []string{"grid", "masonry"},
			PropKeys: []string{"title", "items"},
		},
		"blog_teasers": {
			Variants: []string{"cards_3", "list"},
			PropKeys: []string{"title", "items"},
		},
		"faq": {
			Variants: []string{"accordion", "two_col"},
			PropKeys: []string{"title", "items"},
		},
		"cta": {
			Variants: []string{"banner", "split"},
			PropKeys: []string{"headline", "button"},
		},
		"contact": {
			Variants: []string{"form_map", "simple"},
			PropKeys: []string{"title", "phone", "email", "address", "form"},
		},
		"footer": {
			Variants: []string{"v1", "v2-mega", "minimal"},
			PropKeys: []string{"brand", "nav", "contact", "legal"},
		},
	},
	CatalogPack: {
		"header": {
			Variants: []string{"v1", "v2-search"},
			PropKeys: []string{"brand", "logo", "nav", "cta", "search"},
		},
		"hero": {
			Variants: []string{"v1", "v2-split", "banner"},
			PropKeys: []string{"headline", "subheadline", "bullets", "stats", "products", "cta", "image"},
		},
		"categories": {
			Variants: []string{"icons_grid", "tiles"},
			PropKeys: []string{"title", "items"},
		},
		"products_grid": {
			Variants: []string{"grid_8", "grid_4", "carousel"},
			PropKeys: []string{"title", "items"},
		},
		"promo_strip": {
			Variants: []string{"icons", "banner"},
			PropKeys: []string{"items"},
		},
		"features": {
			Variants: []string{"grid_4", "checklist"},
			PropKeys: []string{"title", "items"},
		},
		"testimonials": {
			Variants: []string{"cards", "quotes"},
			PropKeys: []string{"title", "items"},
		},
		"stats": {
			Variants: []string{"counters", "inline"},
			PropKeys: []string{"items"},
		},
		"cta": {
			Variants: []string{"banner", "split"},
			PropKeys: []string{"headline", "button"},
		},
		"contact": {
			Variants: []string{"form_map", "simple"},
			PropKeys: []string{"title", "phone", "email", "address", "form"},
		},
		"footer": {
			Variants: []string{"v1", "v2-mega"},
			PropKeys: []string{"brand", "nav", "contact", "legal"},
		},
	},
}

// PackForType maps a website type ("info" or "catalog") to its template
// pack. Unknown input falls back to the info pack so callers stay total.
func PackForType(websiteType string) TemplatePack {
	if websiteType == "catalog" {
		return CatalogPack
	}
	return InfoPack
}

// TypeForPack is the inverse mapping, used by the validator for the 1:1
// pack/type consistency check.
func TypeForPack(pack TemplatePack) string {
	if pack == CatalogPack {
		return "catalog"
	}
	return "info"
}

// Widgets returns the widget registry for a pack. Callers must treat the
// returned map as read-only.
func Widgets(pack TemplatePack) map[string]WidgetDef {
	return packs[pack]
}

func HasWidget(pack TemplatePack, widget string) bool {
	_, ok := packs[pack][widget]
	return ok
}

func HasVariant(pack TemplatePack, widget, variant string) bool {
	def, ok := packs[pack][widget]
	if !ok {
		return false
	}
	for _, v := range def.Variants {
		if v == variant {
			return true
		}
	}
	return false
}

// DefaultVariant returns the first (canonical) variant of a widget, or ""
// when the widget is not in the pack.
func DefaultVariant(pack TemplatePack, widget string) string {
	def, ok := packs[pack][widget]
	if !ok || len(def.Variants) == 0 {
		return ""
	}
	return def.Variants[0]
}
