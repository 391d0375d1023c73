package renderer

import (
	"fmt"
	"strings"

	"sitegen_ai_server/internal/planner"
	"sitegen_ai_server/internal/utils"
)

// Context carries the caller-supplied overrides the renderer resolves props
// against. Nav is populated by the renderer itself once page order is known.
type Context struct {
	BusinessName string
	Prompt       string
	Locale       string
	BrandColors  []string
	LogoURL      string
	Phone        string
	Email        string
	Address      string
	City         string
	Country      string
	Products     []string

	Nav []NavItem
}

type NavItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type RenderedSection struct {
	ID      string         `json:"id"`
	Widget  string         `json:"widget"`
	Variant string         `json:"variant"`
	Props   map[string]any `json:"props"`
}

type SEO struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

type RenderedPage struct {
	ID       string            `json:"id"`
	Slug     string            `json:"slug"`
	Name     string            `json:"name"`
	SEO      SEO               `json:"seo"`
	Sections []RenderedSection `json:"sections"`
}

// RenderedSite is the final artifact handed to the editor, the store and
// the preview surface. The renderer constructs it exclusively.
type RenderedSite struct {
	Theme Theme          `json:"theme"`
	Nav   []NavItem      `json:"nav"`
	Pages []RenderedPage `json:"pages"`
}

// middleOrder is the canonical ordering of non-home, non-contact pages.
var middleOrder = []string{"/services", "/products", "/pricing", "/portfolio", "/about", "/blog"}

// Render turns a validated LayoutPlan into a RenderedSite. Given a validated
// plan it has no failure mode: every default is total and the invariant pass
// corrects anything an upstream stage got wrong.
func Render(plan *planner.LayoutPlan, rc Context) *RenderedSite {
	site := &RenderedSite{Theme: ResolveTheme(plan, rc)}

	pages := sortPages(plan.Pages)
	site.Nav = buildNav(pages)
	rc.Nav = site.Nav

	for _, page := range pages {
		pageID := pageIDForSlug(page.Slug)
		rendered := RenderedPage{
			ID:   pageID,
			Slug: page.Slug,
			Name: pageName(page),
			SEO:  buildSEO(page, plan, rc),
		}
		for i, slot := range page.Sections {
			props := mergeProps(DefaultsFor(slot.Widget, slot.Variant, rc), slot.PropsSeed)
			if slot.Widget == "header" {
				// Brand identity and navigation always come from the
				// resolved context, whatever the seed said.
				props["brand"] = rc.businessName()
				props["logo"] = rc.LogoURL
				props["nav"] = rc.navProp()
			}
			rendered.Sections = append(rendered.Sections, RenderedSection{
				ID:      fmt.Sprintf("sec_%s_%s_%d", slot.Widget, pageID, i+1),
				Widget:  slot.Widget,
				Variant: slot.Variant,
				Props:   props,
			})
		}
		site.Pages = append(site.Pages, rendered)
	}

	EnforceSectionInvariants(site)
	return site
}

// EnforceSectionInvariants is the idempotent post-pass: header at index 0 on
// every page, hero at index 1 on the home page. It corrects upstream
// regressions rather than reporting them.
func EnforceSectionInvariants(site *RenderedSite) {
	for p := range site.Pages {
		page := &site.Pages[p]
		moveWidgetTo(page, "header", 0)
		if page.Slug == "/" {
			moveWidgetTo(page, "hero", 1)
		}
	}
}

func moveWidgetTo(page *RenderedPage, widget string, index int) {
	if index >= len(page.Sections) {
		return
	}
	current := -1
	for i, s := range page.Sections {
		if s.Widget == widget {
			current = i
			break
		}
	}
	if current < 0 || current == index {
		return
	}
	section := page.Sections[current]
	page.Sections = append(page.Sections[:current], page.Sections[current+1:]...)
	rest := append([]RenderedSection{}, page.Sections[index:]...)
	page.Sections = append(page.Sections[:index], section)
	page.Sections = append(page.Sections, rest...)
}

// sortPages orders pages home-first, contact-last, with the fixed canonical
// order in between; unknown slugs land at the end of the middle group.
func sortPages(pages []planner.PagePlan) []planner.PagePlan {
	rank := func(slug string) int {
		switch slug {
		case "/":
			return 0
		case "/contact":
			return len(middleOrder) + 2
		}
		for i, s := range middleOrder {
			if s == slug {
				return i + 1
			}
		}
		return len(middleOrder) + 1
	}

	sorted := append([]planner.PagePlan{}, pages...)
	// Insertion sort keeps the input order of equally-ranked pages stable.
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && rank(sorted[j].Slug) < rank(sorted[j-1].Slug); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	return sorted
}

func buildNav(pages []planner.PagePlan) []NavItem {
	nav := make([]NavItem, 0, len(pages))
	for _, page := range pages {
		label := page.NavLabel
		if label == "" {
			label = pageName(page)
		}
		nav = append(nav, NavItem{Label: label, Href: page.Slug})
	}
	return nav
}

func pageName(page planner.PagePlan) string {
	if page.Name != "" {
		return page.Name
	}
	return utils.TitleFromSlug(page.Slug)
}

func pageIDForSlug(slug string) string {
	if slug == "/" {
		return "home"
	}
	id := strings.Trim(slug, "/")
	return strings.ReplaceAll(id, "/", "_")
}

// mergeProps overlays the seed on the defaults; the seed wins per key but
// never removes a default.
func mergeProps(defaults, seed map[string]any) map[string]any {
	merged := make(map[string]any, len(defaults)+len(seed))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range seed {
		if v == nil {
			continue
		}
		merged[k] = v
	}
	return merged
}

func (rc Context) businessName() string {
	if rc.BusinessName != "" {
		return rc.BusinessName
	}
	return "Your Business"
}

func (rc Context) fullAddress() string {
	parts := []string{rc.Address, rc.City, rc.Country}
	var filled []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			filled = append(filled, strings.TrimSpace(p))
		}
	}
	return strings.Join(filled, ", ")
}

// navProp renders the nav as the []any shape section props use.
func (rc Context) navProp() []any {
	nav := make([]any, 0, len(rc.Nav))
	for _, item := range rc.Nav {
		nav = append(nav, map[string]any{"label": item.Label, "href": item.Href})
	}
	return nav
}
