package renderer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitegen_ai_server/internal/catalog"
	"sitegen_ai_server/internal/planner"
)

// catalogPlan mirrors the reference scenario: a catalog site on the
// modern-saas kit with home, products and contact pages.
func catalogPlan() *planner.LayoutPlan {
	return &planner.LayoutPlan{
		WebsiteType:  planner.WebsiteTypeCatalog,
		DesignKit:    "modern-saas",
		StylePreset:  "dark-neon",
		TemplatePack: catalog.CatalogPack,
		RecipeID:     "catalog-classic",
		Pages: []planner.PagePlan{
			{Slug: "/", Name: "Home", Sections: []planner.SectionSlot{
				{Widget: "header", Variant: "v2-search"},
				{Widget: "hero", Variant: "v2-split"},
				{Widget: "categories", Variant: "icons_grid"},
				{Widget: "products_grid", Variant: "grid_8"},
				{Widget: "promo_strip", Variant: "icons"},
				{Widget: "footer", Variant: "v2-mega"},
			}},
			{Slug: "/products", Name: "Products", Sections: []planner.SectionSlot{
				{Widget: "header", Variant: "v2-search"},
				{Widget: "products_grid", Variant: "grid_8"},
				{Widget: "footer", Variant: "v2-mega"},
			}},
			{Slug: "/contact", Name: "Contact", Sections: []planner.SectionSlot{
				{Widget: "header", Variant: "v2-search"},
				{Widget: "contact", Variant: "form_map"},
				{Widget: "footer", Variant: "v2-mega"},
			}},
		},
	}
}

func TestRender_ReferenceScenario(t *testing.T) {
	site := Render(catalogPlan(), Context{BusinessName: "Lumen Goods"})

	require.Len(t, site.Pages, 3)
	home := site.Pages[0]
	assert.Equal(t, "/", home.Slug)
	assert.Equal(t, "header", home.Sections[0].Widget)
	assert.Equal(t, "hero", home.Sections[1].Widget)

	nav := home.Sections[0].Props["nav"].([]any)
	require.NotEmpty(t, nav)
	first := nav[0].(map[string]any)
	last := nav[len(nav)-1].(map[string]any)
	assert.Equal(t, "/", first["href"])
	assert.Equal(t, "/contact", last["href"])
}

func TestRender_HeaderFirstOnEveryPage(t *testing.T) {
	site := Render(catalogPlan(), Context{})
	for _, page := range site.Pages {
		require.NotEmpty(t, page.Sections)
		assert.Equalf(t, "header", page.Sections[0].Widget, "page %s", page.Slug)
	}
}

func TestRender_ThemePropagation(t *testing.T) {
	plan := catalogPlan()
	site := Render(plan, Context{})
	assert.Equal(t, plan.DesignKit, site.Theme.DesignKit)

	kit, _ := catalog.KitByID("modern-saas")
	assert.Equal(t, kit.Primary, site.Theme.Primary)
}

func TestRender_BrandColorsOverrideKit(t *testing.T) {
	site := Render(catalogPlan(), Context{BrandColors: []string{"#123456", "#654321"}})
	assert.Equal(t, "#123456", site.Theme.Primary)
	assert.Equal(t, "#654321", site.Theme.Secondary)
	// Back-reference to the kit survives the override.
	assert.Equal(t, "modern-saas", site.Theme.DesignKit)
}

func TestRender_DeterministicSectionIDs(t *testing.T) {
	rc := Context{BusinessName: "Lumen Goods", Products: []string{"Lamp", "Vase"}}
	a := Render(catalogPlan(), rc)
	b := Render(catalogPlan(), rc)

	require.Equal(t, len(a.Pages), len(b.Pages))
	for i := range a.Pages {
		require.Equal(t, len(a.Pages[i].Sections), len(b.Pages[i].Sections))
		for j := range a.Pages[i].Sections {
			assert.Equal(t, a.Pages[i].Sections[j].ID, b.Pages[i].Sections[j].ID)
		}
	}

	assert.Equal(t, "sec_header_home_1", a.Pages[0].Sections[0].ID)
	assert.Equal(t, "sec_hero_home_2", a.Pages[0].Sections[1].ID)
}

func TestRender_PageOrdering(t *testing.T) {
	plan := &planner.LayoutPlan{
		WebsiteType:  planner.WebsiteTypeInfo,
		DesignKit:    "clean-minimal",
		TemplatePack: catalog.InfoPack,
		Pages: []planner.PagePlan{
			{Slug: "/contact", Name: "Contact", Sections: oneHeaderSection()},
			{Slug: "/blog", Name: "Blog", Sections: oneHeaderSection()},
			{Slug: "/", Name: "Home", Sections: oneHeaderSection()},
			{Slug: "/about", Name: "About", Sections: oneHeaderSection()},
			{Slug: "/services", Name: "Services", Sections: oneHeaderSection()},
		},
	}
	site := Render(plan, Context{})

	var slugs []string
	for _, p := range site.Pages {
		slugs = append(slugs, p.Slug)
	}
	assert.Equal(t, []string{"/", "/services", "/about", "/blog", "/contact"}, slugs)

	require.NotEmpty(t, site.Nav)
	assert.Equal(t, "/", site.Nav[0].Href)
	assert.Equal(t, "/contact", site.Nav[len(site.Nav)-1].Href)
}

func TestRender_InvariantInjectionReordersSections(t *testing.T) {
	// Header buried mid-page and hero first: the renderer corrects both.
	plan := &planner.LayoutPlan{
		WebsiteType:  planner.WebsiteTypeInfo,
		DesignKit:    "clean-minimal",
		TemplatePack: catalog.InfoPack,
		Pages: []planner.PagePlan{
			{Slug: "/", Name: "Home", Sections: []planner.SectionSlot{
				{Widget: "hero", Variant: "v1"},
				{Widget: "cta", Variant: "banner"},
				{Widget: "header", Variant: "v1"},
				{Widget: "footer", Variant: "v1"},
			}},
		},
	}
	site := Render(plan, Context{})

	home := site.Pages[0]
	assert.Equal(t, "header", home.Sections[0].Widget)
	assert.Equal(t, "hero", home.Sections[1].Widget)
	assert.Equal(t, "cta", home.Sections[2].Widget)
	assert.Equal(t, "footer", home.Sections[3].Widget)
}

func TestEnforceSectionInvariants_Idempotent(t *testing.T) {
	site := Render(catalogPlan(), Context{})
	before := fmt.Sprintf("%+v", site.Pages)
	EnforceSectionInvariants(site)
	after := fmt.Sprintf("%+v", site.Pages)
	assert.Equal(t, before, after)
}

func TestRender_SeedMergesOverDefaults(t *testing.T) {
	plan := catalogPlan()
	plan.Pages[0].Sections[1].PropsSeed = map[string]any{"headline": "Everything glows"}
	site := Render(plan, Context{BusinessName: "Lumen Goods", Prompt: "a store for designer lamps"})

	hero := site.Pages[0].Sections[1]
	assert.Equal(t, "Everything glows", hero.Props["headline"])
	// Defaults the seed did not touch are still present.
	assert.Contains(t, hero.Props, "subheadline")
	assert.Contains(t, hero.Props, "cta")
}

func TestRender_HeaderIdentityForcedFromContext(t *testing.T) {
	plan := catalogPlan()
	plan.Pages[0].Sections[0].PropsSeed = map[string]any{
		"brand": "Spoofed Inc", "logo": "http://evil/logo.png", "nav": []any{},
	}
	site := Render(plan, Context{BusinessName: "Lumen Goods", LogoURL: "/logo.svg"})

	header := site.Pages[0].Sections[0]
	assert.Equal(t, "Lumen Goods", header.Props["brand"])
	assert.Equal(t, "/logo.svg", header.Props["logo"])
	nav := header.Props["nav"].([]any)
	assert.Len(t, nav, len(site.Nav))
}

func TestRender_SEO(t *testing.T) {
	plan := catalogPlan()
	plan.Pages[1].Purpose = "Browse the full lamp collection"
	site := Render(plan, Context{
		BusinessName: "Lumen Goods",
		Prompt:       "a store for designer lamps",
		City:         "Lisbon",
	})

	var products RenderedPage
	for _, p := range site.Pages {
		if p.Slug == "/products" {
			products = p
		}
	}
	assert.Equal(t, "Lumen Goods | Products", products.SEO.Title)
	assert.Equal(t, "Browse the full lamp collection", products.SEO.Description)
	assert.Contains(t, products.SEO.Keywords, "Lumen Goods")
	assert.Contains(t, products.SEO.Keywords, "Lisbon")

	home := site.Pages[0]
	assert.Equal(t, "Lumen Goods | Home", home.SEO.Title)
	assert.Equal(t, "a store for designer lamps", home.SEO.Description)
}

func TestRender_ProductsGridUsesSuppliedProducts(t *testing.T) {
	site := Render(catalogPlan(), Context{Products: []string{"Arc Lamp", "Moon Vase"}})

	grid := site.Pages[0].Sections[3]
	require.Equal(t, "products_grid", grid.Widget)
	items := grid.Props["items"].([]any)
	require.Len(t, items, 8)
	assert.Equal(t, "Arc Lamp", items[0].(map[string]any)["name"])
	assert.Equal(t, "Moon Vase", items[1].(map[string]any)["name"])
	assert.Equal(t, "Product 3", items[2].(map[string]any)["name"])
}

func TestTruncatedSEODescription(t *testing.T) {
	long := make([]byte, 400)
	for i := range long {
		long[i] = 'x'
	}
	plan := catalogPlan()
	site := Render(plan, Context{Prompt: string(long)})
	desc := site.Pages[0].SEO.Description
	assert.LessOrEqual(t, len([]rune(desc)), 160)
}

func oneHeaderSection() []planner.SectionSlot {
	return []planner.SectionSlot{{Widget: "header", Variant: "v1"}}
}
