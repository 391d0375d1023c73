package planner

import "sitegen_ai_server/internal/catalog"

// kitByArchetype is the fixed archetype -> design kit table. Every archetype
// not listed falls through to clean-minimal for both website types.
var kitByArchetype = map[string]string{
	ArchetypeMedical:    "medical-blue",
	ArchetypeSaaS:       "modern-saas",
	ArchetypeLuxury:     "luxury-elegant",
	ArchetypeRestaurant: "warm-organic",
	ArchetypeAgency:     "bold-gradient",
}

// presetByKit maps a design kit to its coarser style preset fallback.
var presetByKit = map[string]string{
	"modern-saas":   "dark-neon",
	"bold-gradient": "dark-neon",
	"warm-organic":  "light-commerce",
}

const defaultPresetID = "premium-minimal"

// ResolveStyle maps an intent to a (design kit, style preset) pair. Both
// mappings are total and side-effect-free; the tone string is reserved for
// future tie-breaks and currently does not alter the tables.
func ResolveStyle(intent Intent, tone string) (kitID, presetID string) {
	kitID, ok := kitByArchetype[intent.Archetype]
	if !ok {
		kitID = catalog.DefaultKitID
	}
	presetID, ok = presetByKit[kitID]
	if !ok {
		presetID = defaultPresetID
	}
	return kitID, presetID
}
