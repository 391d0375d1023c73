package planner

import "sitegen_ai_server/internal/catalog"

// recipePreference lists, per website type, the archetype-specific recipe
// preference order. The per-pack default recipe is the catch-all.
var recipePreference = map[string]map[string][]string{
	WebsiteTypeInfo: {
		ArchetypeMedical:    {"info-medical", "info-classic"},
		ArchetypeSaaS:       {"info-saas", "info-classic"},
		ArchetypeLuxury:     {"info-luxury", "info-classic"},
		ArchetypeRestaurant: {"info-restaurant", "info-classic"},
		ArchetypeAgency:     {"info-agency", "info-classic"},
	},
	WebsiteTypeCatalog: {
		ArchetypeLuxury: {"catalog-boutique", "catalog-classic"},
	},
}

// SelectRecipe picks the recipe for an intent. An explicit recipe id takes
// precedence when it exists in the pack's recipe set; otherwise the
// archetype preference order applies, ending at the pack default.
func SelectRecipe(intent Intent, explicitID string) catalog.Recipe {
	pack := catalog.PackForType(intent.WebsiteType)

	if explicitID != "" && catalog.RecipeInPack(explicitID, pack) {
		r, _ := catalog.RecipeByID(explicitID)
		return r
	}

	for _, id := range recipePreference[intent.WebsiteType][intent.Archetype] {
		if catalog.RecipeInPack(id, pack) {
			r, _ := catalog.RecipeByID(id)
			return r
		}
	}

	r, _ := catalog.RecipeByID(catalog.DefaultRecipeID(pack))
	return r
}
