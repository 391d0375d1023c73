package ai

import (
	"encoding/json"
	"sort"

	"sitegen_ai_server/internal/catalog"
	"sitegen_ai_server/internal/planner"
)

// PlanSchema builds the strict output schema (a JSON Schema subset: enums,
// required fields, nested objects/arrays, additionalProperties false) for
// the active template pack. Sections are a oneOf over per-widget schemas so
// the variant enum is scoped to its widget.
func PlanSchema(pack catalog.TemplatePack) map[string]any {
	widgets := catalog.Widgets(pack)

	names := make([]string, 0, len(widgets))
	for name := range widgets {
		names = append(names, name)
	}
	sort.Strings(names)

	sectionVariants := make([]any, 0, len(names))
	for _, name := range names {
		sectionVariants = append(sectionVariants, map[string]any{
			"type": "object",
			"properties": map[string]any{
				"widget":     map[string]any{"const": name},
				"variant":    map[string]any{"enum": widgets[name].Variants},
				"props_seed": map[string]any{"type": "object"},
			},
			"required":             []string{"widget", "variant"},
			"additionalProperties": false,
		})
	}

	pageSchema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"slug":      map[string]any{"enum": planner.AllowedSlugs},
			"name":      map[string]any{"type": "string"},
			"nav_label": map[string]any{"type": "string"},
			"purpose":   map[string]any{"type": "string"},
			"sections": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    map[string]any{"oneOf": sectionVariants},
			},
		},
		"required":             []string{"slug", "name", "sections"},
		"additionalProperties": false,
	}

	kitIDs := catalog.KitIDs()
	sort.Strings(kitIDs)
	presetIDs := catalog.PresetIDs()
	sort.Strings(presetIDs)
	recipeIDs := catalog.RecipeIDsForPack(pack)
	sort.Strings(recipeIDs)

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"website_type":  map[string]any{"const": catalog.TypeForPack(pack)},
			"template_pack": map[string]any{"const": string(pack)},
			"design_kit":    map[string]any{"enum": kitIDs},
			"style_preset":  map[string]any{"enum": presetIDs},
			"recipe_id":     map[string]any{"enum": recipeIDs},
			"pages": map[string]any{
				"type":     "array",
				"minItems": 1,
				"maxItems": planner.MaxPages,
				"items":    pageSchema,
			},
		},
		"required":             []string{"website_type", "template_pack", "pages"},
		"additionalProperties": false,
	}
}

// PlanSchemaJSON renders the schema as indented JSON for prompt embedding.
func PlanSchemaJSON(pack catalog.TemplatePack) string {
	data, err := json.MarshalIndent(PlanSchema(pack), "", "  ")
	if err != nil {
		// The schema is built from static data; marshal cannot fail.
		return "{}"
	}
	return string(data)
}
