package renderer

import (
	"sitegen_ai_server/internal/planner"
	"sitegen_ai_server/internal/utils"
)

const seoDescriptionLimit = 160

// buildSEO derives per-page metadata: title from business and page name,
// description from the page purpose (falling back to the prompt), and a
// de-duplicated keyword list.
func buildSEO(page planner.PagePlan, plan *planner.LayoutPlan, rc Context) SEO {
	description := page.Purpose
	if description == "" {
		description = rc.Prompt
	}

	keywords := utils.UniqueStrings([]string{
		rc.businessName(),
		plan.WebsiteType,
		pageName(page),
		rc.City,
		rc.Country,
	})

	return SEO{
		Title:       rc.businessName() + " | " + pageName(page),
		Description: utils.Truncate(description, seoDescriptionLimit),
		Keywords:    keywords,
	}
}
