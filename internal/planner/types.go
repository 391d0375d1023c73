package planner

import "sitegen_ai_server/internal/catalog"

// Website types understood by the planner.
const (
	WebsiteTypeInfo    = "info"
	WebsiteTypeCatalog = "catalog"
)

// Business archetypes, used to bias style and recipe choices.
const (
	ArchetypeMedical    = "medical"
	ArchetypeSaaS       = "saas"
	ArchetypeLuxury     = "luxury"
	ArchetypeRestaurant = "restaurant"
	ArchetypeAgency     = "agency"
	ArchetypeGeneral    = "general"
)

// AllowedSlugs is the fixed set of page slugs a plan may use.
var AllowedSlugs = []string{
	"/", "/about", "/services", "/products", "/pricing",
	"/portfolio", "/blog", "/contact",
}

// MaxPages bounds every plan; the generative schema repeats this bound.
const MaxPages = 7

// SectionSlot is one section of a page. PropsSeed is author/model-supplied
// partial data; the renderer merges it over widget defaults, it never
// replaces them.
type SectionSlot struct {
	Widget    string         `json:"widget"`
	Variant   string         `json:"variant"`
	PropsSeed map[string]any `json:"props_seed,omitempty"`
}

// PagePlan is one page of a plan: a slug from AllowedSlugs and a non-empty
// ordered section list.
type PagePlan struct {
	Slug     string        `json:"slug"`
	Name     string        `json:"name"`
	NavLabel string        `json:"nav_label,omitempty"`
	Purpose  string        `json:"purpose,omitempty"`
	Sections []SectionSlot `json:"sections"`
}

// LayoutPlan is the root planning artifact produced by either the
// deterministic composer or the generative client, validated before it
// reaches the renderer.
type LayoutPlan struct {
	WebsiteType         string               `json:"website_type"`
	DesignKit           string               `json:"design_kit"`
	StylePreset         string               `json:"style_preset"`
	TemplatePack        catalog.TemplatePack `json:"template_pack"`
	RecipeID            string               `json:"recipe_id"`
	Pages               []PagePlan           `json:"pages"`
	RequiredSections    map[string]bool      `json:"required_sections_checklist,omitempty"`
	UnsupportedFeatures []string             `json:"unsupported_features,omitempty"`
	Warnings            []string             `json:"warnings,omitempty"`
}

// Brief carries the caller-supplied planning inputs through the pipeline.
type Brief struct {
	Prompt       string
	Locale       string
	WebsiteType  string // explicit override, "" to infer
	Tone         string
	BusinessName string
	BrandColors  []string
	LogoURL      string
	Phone        string
	Email        string
	Address      string
	City         string
	Country      string
	Products     []string
	MaxPages     int // 0 means no constraint beyond MaxPages
}

// HomePage returns the plan's "/" page, or nil when absent.
func (p *LayoutPlan) HomePage() *PagePlan {
	for i := range p.Pages {
		if p.Pages[i].Slug == "/" {
			return &p.Pages[i]
		}
	}
	return nil
}

// HasWidget reports whether any page of the plan contains the widget.
func (p *LayoutPlan) HasWidget(widget string) bool {
	for _, page := range p.Pages {
		for _, s := range page.Sections {
			if s.Widget == widget {
				return true
			}
		}
	}
	return false
}

func slugAllowed(slug string) bool {
	for _, s := range AllowedSlugs {
		if s == slug {
			return true
		}
	}
	return false
}
