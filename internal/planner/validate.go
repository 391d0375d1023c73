package planner

import (
	"fmt"

	"sitegen_ai_server/internal/catalog"
)

// ValidationError is a named validation failure. Code identifies the class
// of failure for the repair prompt and for tests; Message is human-readable.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Code + ": " + e.Message
}

func validationErrorf(code, format string, args ...any) *ValidationError {
	return &ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Checklist computes the required-sections checklist for a plan. Keys are
// stable and type-specific; a false value means the requirement is unmet.
func Checklist(p *LayoutPlan) map[string]bool {
	home := p.HomePage()
	homeHasHero := false
	if home != nil {
		for _, s := range home.Sections {
			if s.Widget == "hero" {
				homeHasHero = true
				break
			}
		}
	}

	everyPageHasHeader := len(p.Pages) > 0
	for _, page := range p.Pages {
		pageHasHeader := false
		for _, s := range page.Sections {
			if s.Widget == "header" {
				pageHasHeader = true
				break
			}
		}
		if !pageHasHeader {
			everyPageHasHeader = false
		}
	}

	checklist := map[string]bool{
		"home_page":   home != nil,
		"home_hero":   homeHasHero,
		"page_header": everyPageHasHeader,
	}

	if p.WebsiteType == WebsiteTypeCatalog {
		checklist["categories"] = p.HasWidget("categories")
		checklist["products_grid"] = p.HasWidget("products_grid")
		checklist["promo_strip"] = p.HasWidget("promo_strip")
		checklist["footer_or_contact"] = p.HasWidget("footer") || p.HasWidget("contact")
	} else {
		checklist["services_or_features"] = p.HasWidget("services") || p.HasWidget("features")
		checklist["testimonials_or_stats"] = p.HasWidget("testimonials") || p.HasWidget("stats")
		checklist["cta"] = p.HasWidget("cta")
		checklist["contact"] = p.HasWidget("contact")
		checklist["footer"] = p.HasWidget("footer")
	}
	return checklist
}

// ValidatePlan runs structural then semantic validation. It never mutates
// the plan except to record the computed checklist; the caller decides
// whether a failure means repair or fallback.
func ValidatePlan(p *LayoutPlan) error {
	if err := validateStructure(p); err != nil {
		return err
	}
	return validateSemantics(p)
}

// validateStructure checks the strict shape: enumerated slugs, bounded page
// count, non-empty sections. Structural failure is a hard rejection.
func validateStructure(p *LayoutPlan) error {
	if p == nil {
		return validationErrorf("empty_plan", "plan is nil")
	}
	if p.WebsiteType != WebsiteTypeInfo && p.WebsiteType != WebsiteTypeCatalog {
		return validationErrorf("bad_website_type", "unknown website_type %q", p.WebsiteType)
	}
	if len(p.Pages) == 0 {
		return validationErrorf("no_pages", "plan has no pages")
	}
	if len(p.Pages) > MaxPages {
		return validationErrorf("too_many_pages", "plan has %d pages, maximum is %d", len(p.Pages), MaxPages)
	}

	seen := map[string]bool{}
	for _, page := range p.Pages {
		if !slugAllowed(page.Slug) {
			return validationErrorf("bad_slug", "slug %q is not in the allowed set", page.Slug)
		}
		if seen[page.Slug] {
			return validationErrorf("duplicate_slug", "slug %q appears more than once", page.Slug)
		}
		seen[page.Slug] = true
		if len(page.Sections) == 0 {
			return validationErrorf("empty_page", "page %q has no sections", page.Slug)
		}
		for _, s := range page.Sections {
			if s.Widget == "" {
				return validationErrorf("empty_widget", "page %q has a section with no widget", page.Slug)
			}
		}
	}
	return nil
}

// validateSemantics checks catalog membership, pack/type consistency,
// recipe membership and the required-sections checklist.
func validateSemantics(p *LayoutPlan) error {
	if p.TemplatePack != catalog.PackForType(p.WebsiteType) {
		return validationErrorf("pack_mismatch",
			"template_pack %q does not match website_type %q", p.TemplatePack, p.WebsiteType)
	}
	if p.RecipeID != "" && !catalog.RecipeInPack(p.RecipeID, p.TemplatePack) {
		return validationErrorf("unknown_recipe",
			"recipe %q is not in the recipe set for pack %q", p.RecipeID, p.TemplatePack)
	}
	if p.DesignKit != "" {
		if _, ok := catalog.KitByID(p.DesignKit); !ok {
			return validationErrorf("unknown_design_kit", "design kit %q does not exist", p.DesignKit)
		}
	}
	if p.StylePreset != "" {
		if _, ok := catalog.PresetByID(p.StylePreset); !ok {
			return validationErrorf("unknown_style_preset", "style preset %q does not exist", p.StylePreset)
		}
	}

	for _, page := range p.Pages {
		for _, s := range page.Sections {
			if !catalog.HasWidget(p.TemplatePack, s.Widget) {
				return validationErrorf("unknown_widget",
					"widget %q on page %q is not in pack %q", s.Widget, page.Slug, p.TemplatePack)
			}
			if s.Variant != "" && !catalog.HasVariant(p.TemplatePack, s.Widget, s.Variant) {
				return validationErrorf("unknown_variant",
					"variant %q of widget %q on page %q is not in pack %q",
					s.Variant, s.Widget, page.Slug, p.TemplatePack)
			}
		}
		if page.Slug != "/" {
			for _, s := range page.Sections {
				if s.Widget == "hero" {
					return validationErrorf("hero_outside_home",
						"page %q contains a hero section; hero is home-only", page.Slug)
				}
			}
		}
	}

	checklist := Checklist(p)
	p.RequiredSections = checklist
	for key, ok := range checklist {
		if !ok {
			return validationErrorf("missing_required_section",
				"required-sections checklist failed at %q", key)
		}
	}
	return nil
}
