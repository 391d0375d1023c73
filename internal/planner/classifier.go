package planner

import "strings"

// Intent is the classifier output: which pack applies and which business
// archetype biases style and recipe choices.
type Intent struct {
	WebsiteType string
	Archetype   string
}

// catalogHints select the catalog website type when present in the prompt.
var catalogHints = []string{"product", "catalog", "shop", "store", "collection", "sku"}

// archetypeKeywords are tried in order; the first family with a hit wins.
var archetypeKeywords = []struct {
	archetype string
	keywords  []string
}{
	{ArchetypeMedical, []string{"clinic", "dental", "doctor", "medical", "health", "therapy", "physio", "wellness"}},
	{ArchetypeSaaS, []string{"saas", "software", "startup", "platform", "b2b", " api", "app "}},
	{ArchetypeLuxury, []string{"luxury", "premium", "boutique", "jewelry", "jewellery", "high-end", "elegant"}},
	{ArchetypeRestaurant, []string{"restaurant", "cafe", "bistro", "bakery", "menu", "coffee", "food"}},
	{ArchetypeAgency, []string{"agency", "studio", "marketing", "creative", "branding", "portfolio"}},
}

// ClassifyIntent maps a free-text prompt to a website type and archetype.
// An explicit type override wins over hint scanning. The function is total:
// unmatched input yields info/general.
func ClassifyIntent(prompt, explicitType string) Intent {
	lower := strings.ToLower(prompt)

	websiteType := WebsiteTypeInfo
	switch explicitType {
	case WebsiteTypeInfo, WebsiteTypeCatalog:
		websiteType = explicitType
	default:
		for _, hint := range catalogHints {
			if strings.Contains(lower, hint) {
				websiteType = WebsiteTypeCatalog
				break
			}
		}
	}

	archetype := ArchetypeGeneral
	for _, family := range archetypeKeywords {
		for _, kw := range family.keywords {
			if strings.Contains(lower, kw) {
				archetype = family.archetype
				break
			}
		}
		if archetype != ArchetypeGeneral {
			break
		}
	}

	return Intent{WebsiteType: websiteType, Archetype: archetype}
}
