package prompts

// SystemPrompt is the fixed system instruction for both the planning and
// the repair call.
const SystemPrompt = "You are a website layout planner. You output only JSON conforming exactly to the provided schema. Never invent widgets, variants, design kits or page slugs that are not listed in the schema."

// GetLayoutPlanPrompt returns the planning prompt template. Placeholders, in
// order: business description, locale, brand/contact hints, template pack
// id, JSON schema.
func GetLayoutPlanPrompt() string {
	return `
		A user wants a website for the following business:

		---
		"%s"
		---

		Locale: %s
		Known brand/contact details (use them, do not invent replacements):
		%s

		Plan the site as a JSON document for the "%s" template pack.

		Rules:
		1. Use only widgets, variants, slugs and ids listed in the schema below.
		2. Every page starts with a "header" section.
		3. Only the home page ("/") may contain a "hero" section, directly after the header.
		4. Seed each section's "props_seed" with short, concrete copy drawn from the business description. Partial seeds are fine; defaults fill the rest.
		5. At most 7 pages. Keep the set small and purposeful.

		Output schema (JSON Schema):

		%s

		Respond with a single JSON object matching the schema. No markdown, no commentary.
	`
}

// GetRepairPrompt returns the repair prompt template, used exactly once per
// planning request. Placeholders, in order: validation error, invalid
// payload, JSON schema.
func GetRepairPrompt() string {
	return `
		The JSON layout plan below failed validation:

		Validation error: %s

		Invalid plan:
		%s

		Fix the plan so it conforms to this schema. Keep everything that is already
		valid; change only what the error requires. Do not add commentary.

		Output schema (JSON Schema):

		%s

		Respond with the corrected JSON object only.
	`
}
