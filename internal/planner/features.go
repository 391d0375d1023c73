package planner

import "strings"

// UnsupportedFeaturesWarning accompanies any plan whose prompt asked for
// functionality outside a marketing/catalog site.
const UnsupportedFeaturesWarning = "Marketing/catalog site only; advanced features not included."

// unsupportedKeywords are features the planner recognizes but never builds.
// Matches are reported, not rejected.
var unsupportedKeywords = []string{
	"login", "auth", "payments", "checkout", "marketplace",
	"booking engine", "dashboard", "portal", "admin panel",
}

// DetectUnsupportedFeatures scans the prompt and any per-page purpose text
// for unsupported-feature keywords, returning matches in keyword order.
func DetectUnsupportedFeatures(texts ...string) []string {
	joined := strings.ToLower(strings.Join(texts, "\n"))
	var found []string
	for _, kw := range unsupportedKeywords {
		if strings.Contains(joined, kw) {
			found = append(found, kw)
		}
	}
	return found
}

// PagePurposes collects the purpose strings of a plan's pages, for feeding
// into DetectUnsupportedFeatures alongside the prompt.
func PagePurposes(p *LayoutPlan) []string {
	var out []string
	for _, page := range p.Pages {
		if page.Purpose != "" {
			out = append(out, page.Purpose)
		}
	}
	return out
}
