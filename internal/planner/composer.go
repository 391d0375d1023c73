package planner

import (
	"sitegen_ai_server/internal/catalog"
	"sitegen_ai_server/internal/utils"
)

// ComposeInput is everything the deterministic composer needs to expand a
// recipe into concrete per-page section lists.
type ComposeInput struct {
	WebsiteType string
	Archetype   string
	DesignKit   string
	Recipe      catalog.Recipe
	PageSlugs   []string // empty means the per-type default page set
}

// repeatableWidgets may appear more than once per page with different seed
// data; everything else is de-duplicated by (widget, variant).
var repeatableWidgets = map[string]bool{
	"products_grid": true,
	"blog_teasers":  true,
}

func defaultPageSlugs(websiteType string) []string {
	if websiteType == WebsiteTypeCatalog {
		return []string{"/", "/products", "/about", "/contact"}
	}
	return []string{"/", "/about", "/services", "/contact"}
}

// ComposePages expands the recipe into a full page list. The recipe drives
// the home page; every other page comes from a fixed per-slug template.
// Total: fallback clauses exist at every branch, so the composer always
// terminates with some valid composition.
func ComposePages(in ComposeInput) []PagePlan {
	pack := catalog.PackForType(in.WebsiteType)

	slugs := in.PageSlugs
	if len(slugs) == 0 {
		slugs = defaultPageSlugs(in.WebsiteType)
	}
	slugs = normalizeSlugs(slugs)

	pages := make([]PagePlan, 0, len(slugs))
	for _, slug := range slugs {
		var sections []SectionSlot
		if slug == "/" {
			sections = composeHome(in, pack)
		} else {
			sections = composePageTemplate(in, pack, slug)
		}
		pages = append(pages, PagePlan{
			Slug:     slug,
			Name:     utils.TitleFromSlug(slug),
			NavLabel: utils.TitleFromSlug(slug),
			Sections: sections,
		})
	}
	return pages
}

// normalizeSlugs drops unknown and duplicate slugs, forces "/" to be
// present, and caps the list at MaxPages keeping the home page.
func normalizeSlugs(slugs []string) []string {
	out := []string{"/"}
	seen := map[string]bool{"/": true}
	for _, s := range slugs {
		if !slugAllowed(s) || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	if len(out) > MaxPages {
		out = out[:MaxPages]
	}
	return out
}

func composeHome(in ComposeInput, pack catalog.TemplatePack) []SectionSlot {
	var sections []SectionSlot
	seen := map[string]bool{}
	for _, token := range in.Recipe.Sections {
		widget, variant := catalog.ParseSectionToken(token)
		if !catalog.HasWidget(pack, widget) {
			continue
		}
		if variant == "" || !catalog.HasVariant(pack, widget, variant) {
			variant = catalog.DefaultVariant(pack, widget)
		}
		variant = chooseVariant(widget, variant, in, "/")
		key := widget + ":" + variant
		if seen[key] && !repeatableWidgets[widget] {
			continue
		}
		seen[key] = true
		sections = append(sections, SectionSlot{Widget: widget, Variant: variant})
	}
	return sections
}

// composePageTemplate synthesizes a non-home page. These are hand-written
// per-slug templates, intentionally independent of the recipe ordering.
func composePageTemplate(in ComposeInput, pack catalog.TemplatePack, slug string) []SectionSlot {
	var widgets []string
	switch slug {
	case "/contact":
		widgets = []string{"header", pickWidget(pack, "contact", "cta"), "footer"}
	case "/about":
		widgets = []string{
			"header",
			pickWidget(pack, "about", "features"),
			pickWidget(pack, "testimonials", "stats"),
			"cta", "footer",
		}
	case "/services":
		widgets = []string{
			"header",
			pickWidget(pack, "services", "features"),
			pickWidget(pack, "steps", "cta"),
			"cta", "footer",
		}
	case "/products":
		widgets = []string{
			"header",
			pickWidget(pack, "categories", "products_grid"),
			"products_grid",
			pickWidget(pack, "promo_strip", "cta"),
			"footer",
		}
	default:
		widgets = []string{"header", pickWidget(pack, "cta", "features"), "footer"}
	}

	var sections []SectionSlot
	seen := map[string]bool{}
	for _, widget := range widgets {
		if widget == "" || widget == "hero" || !catalog.HasWidget(pack, widget) {
			continue
		}
		variant := chooseVariant(widget, catalog.DefaultVariant(pack, widget), in, slug)
		key := widget + ":" + variant
		if seen[key] && !repeatableWidgets[widget] {
			continue
		}
		seen[key] = true
		sections = append(sections, SectionSlot{Widget: widget, Variant: variant})
	}
	return sections
}

// pickWidget returns the first candidate the pack knows. The last candidate
// is expected to always exist in both packs.
func pickWidget(pack catalog.TemplatePack, candidates ...string) string {
	for _, w := range candidates {
		if catalog.HasWidget(pack, w) {
			return w
		}
	}
	return ""
}

// chooseVariant refines a generic variant to a design-kit- or page-specific
// one. Deterministic, keyed on (widget, website type, kit, archetype, slug);
// any override that does not exist in the pack keeps the incoming variant.
func chooseVariant(widget, variant string, in ComposeInput, slug string) string {
	pack := catalog.PackForType(in.WebsiteType)
	override := ""

	switch widget {
	case "header":
		if in.WebsiteType == WebsiteTypeCatalog {
			override = "v2-search"
		} else if in.Archetype == ArchetypeLuxury && slug == "/" {
			override = "v1-centered"
		}
	case "hero":
		switch in.DesignKit {
		case "modern-saas", "bold-gradient":
			override = "v2-split"
		}
	case "footer":
		if in.Archetype == ArchetypeSaaS || in.Archetype == ArchetypeAgency {
			override = "v2-mega"
		}
	case "products_grid":
		if in.DesignKit == "luxury-elegant" {
			override = "grid_4"
		}
	}

	if override != "" && catalog.HasVariant(pack, widget, override) {
		return override
	}
	return variant
}

// ComposeFallbackPlan runs the full deterministic pipeline output: a
// LayoutPlan that is valid by construction, used both as the base the
// generative output merges into and as the terminal fallback.
func ComposeFallbackPlan(brief Brief, intent Intent, kitID, presetID string, recipe catalog.Recipe) *LayoutPlan {
	in := ComposeInput{
		WebsiteType: intent.WebsiteType,
		Archetype:   intent.Archetype,
		DesignKit:   kitID,
		Recipe:      recipe,
	}
	if brief.MaxPages > 0 && brief.MaxPages < len(defaultPageSlugs(intent.WebsiteType)) {
		in.PageSlugs = defaultPageSlugs(intent.WebsiteType)[:brief.MaxPages]
	}

	plan := &LayoutPlan{
		WebsiteType:  intent.WebsiteType,
		DesignKit:    kitID,
		StylePreset:  presetID,
		TemplatePack: catalog.PackForType(intent.WebsiteType),
		RecipeID:     recipe.ID,
		Pages:        ComposePages(in),
	}

	plan.UnsupportedFeatures = DetectUnsupportedFeatures(brief.Prompt)
	if len(plan.UnsupportedFeatures) > 0 {
		plan.Warnings = append(plan.Warnings, UnsupportedFeaturesWarning)
	}
	plan.RequiredSections = Checklist(plan)
	return plan
}
