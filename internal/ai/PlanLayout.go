package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"sitegen_ai_server/internal/ai/prompts"
	"sitegen_ai_server/internal/catalog"
	"sitegen_ai_server/internal/planner"
	"sitegen_ai_server/internal/utils"
)

// Warning strings surfaced on the plan when the generative path degrades.
const (
	WarnFallback        = "Used deterministic planner fallback."
	WarnFallbackAIError = "Planner used fallback due to temporary AI error."
)

// planState is the explicit state machine of the planning call:
// Plan -> Repair -> Fallback, with Success terminal at any validation pass.
// The machine issues at most two external calls per planning request.
type planState int

const (
	statePlan planState = iota
	stateRepair
	stateFallback
)

// PlanLayout runs the generative planning state machine. The fallback plan
// is the deterministic composer output; it is both the merge base for the
// model's pages and the terminal result when the model cannot produce a
// valid plan. The returned plan is always validated. The only error ever
// returned is the caller's context cancellation, in which case no plan is
// surfaced at all.
func (g *Generator) PlanLayout(ctx context.Context, brief planner.Brief, fallback *planner.LayoutPlan) (*planner.LayoutPlan, error) {
	pack := fallback.TemplatePack
	schemaJSON := PlanSchemaJSON(pack)
	userPrompt := fmt.Sprintf(prompts.GetLayoutPlanPrompt(),
		brief.Prompt, localeOrDefault(brief.Locale), briefHints(brief), pack, schemaJSON)

	state := statePlan
	fallbackWarning := WarnFallback
	var invalidRaw string
	var invalidErr error

	for {
		switch state {
		case statePlan:
			raw, err := g.complete(ctx, userPrompt)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				// Transport failure goes straight to fallback, no repair.
				log.Printf("WARN: planning call failed: %v", err)
				if utils.ShouldRetry(err) {
					fallbackWarning = WarnFallbackAIError
				}
				state = stateFallback
				continue
			}
			plan, verr := g.adoptModelPlan(raw, brief, fallback)
			if verr == nil {
				return plan, nil
			}
			log.Printf("Info: model plan failed validation (%v), attempting repair", verr)
			invalidRaw, invalidErr = raw, verr
			state = stateRepair

		case stateRepair:
			repairPrompt := fmt.Sprintf(prompts.GetRepairPrompt(), invalidErr, invalidRaw, schemaJSON)
			raw, err := g.complete(ctx, repairPrompt)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				log.Printf("WARN: repair call failed: %v", err)
				if utils.ShouldRetry(err) {
					fallbackWarning = WarnFallbackAIError
				}
				state = stateFallback
				continue
			}
			plan, verr := g.adoptModelPlan(raw, brief, fallback)
			if verr == nil {
				return plan, nil
			}
			log.Printf("WARN: repaired plan still invalid (%v), discarding model output", verr)
			state = stateFallback

		case stateFallback:
			fallback.Warnings = append(fallback.Warnings, fallbackWarning)
			return fallback, nil
		}
	}
}

// complete issues a single chat completion. No internal retries: the state
// machine owns the two-call budget.
func (g *Generator) complete(ctx context.Context, userPrompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, g.callTimeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model: g.modelID,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompts.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Printf("OpenAI usage for empty response: %+v", resp.Usage)
		return "", errors.New("openai returned empty response")
	}
	return resp.Choices[0].Message.Content, nil
}

// adoptModelPlan parses raw model output, merges it over the deterministic
// fallback, and validates the result. A non-nil error means the payload
// needs repair or discarding; the fallback is never mutated here.
func (g *Generator) adoptModelPlan(raw string, brief planner.Brief, fallback *planner.LayoutPlan) (*planner.LayoutPlan, error) {
	cleaned := stripCodeFences(raw)

	var modelPlan planner.LayoutPlan
	if err := json.Unmarshal([]byte(cleaned), &modelPlan); err != nil {
		return nil, &planner.ValidationError{Code: "unparsable", Message: err.Error()}
	}

	merged := mergeWithFallback(&modelPlan, fallback, pageLimit(brief))
	if err := planner.ValidatePlan(merged); err != nil {
		return nil, err
	}

	texts := append([]string{brief.Prompt}, planner.PagePurposes(merged)...)
	merged.UnsupportedFeatures = planner.DetectUnsupportedFeatures(texts...)
	if len(merged.UnsupportedFeatures) > 0 {
		merged.Warnings = append(merged.Warnings, planner.UnsupportedFeaturesWarning)
	}
	return merged, nil
}

// pageLimit is the effective page budget for a brief: the caller's
// constraint when set, the global bound otherwise.
func pageLimit(brief planner.Brief) int {
	if brief.MaxPages > 0 && brief.MaxPages < planner.MaxPages {
		return brief.MaxPages
	}
	return planner.MaxPages
}

// mergeWithFallback overlays the model plan on the deterministic one at the
// page level: model pages win per slug, fallback pages the model omitted are
// appended while the page budget allows, and anything past the budget is
// cut (home page always survives the cut). Empty top-level ids fall back to
// the deterministic choices.
func mergeWithFallback(model, fallback *planner.LayoutPlan, limit int) *planner.LayoutPlan {
	merged := &planner.LayoutPlan{
		WebsiteType: model.WebsiteType,
		DesignKit:   model.DesignKit,
		StylePreset: model.StylePreset,
		RecipeID:    model.RecipeID,
	}
	if merged.WebsiteType == "" {
		merged.WebsiteType = fallback.WebsiteType
	}
	merged.TemplatePack = model.TemplatePack
	if merged.TemplatePack == "" {
		merged.TemplatePack = catalog.PackForType(merged.WebsiteType)
	}
	if merged.DesignKit == "" {
		merged.DesignKit = fallback.DesignKit
	}
	if merged.StylePreset == "" {
		merged.StylePreset = fallback.StylePreset
	}
	if merged.RecipeID == "" {
		merged.RecipeID = fallback.RecipeID
	}

	merged.Pages = append(merged.Pages, model.Pages...)
	have := make(map[string]bool, len(merged.Pages))
	for _, p := range merged.Pages {
		have[p.Slug] = true
	}
	for _, p := range fallback.Pages {
		if len(merged.Pages) >= limit {
			break
		}
		if !have[p.Slug] {
			merged.Pages = append(merged.Pages, p)
			have[p.Slug] = true
		}
	}
	merged.Pages = capPages(merged.Pages, limit)
	return merged
}

// capPages trims a page list to the budget. When the home page sits past
// the cut it takes the last kept slot, so trimming never removes it.
func capPages(pages []planner.PagePlan, limit int) []planner.PagePlan {
	if len(pages) <= limit {
		return pages
	}
	home := -1
	for i, p := range pages {
		if p.Slug == "/" {
			home = i
			break
		}
	}
	if home < limit {
		return pages[:limit]
	}
	kept := append([]planner.PagePlan(nil), pages[:limit-1]...)
	return append(kept, pages[home])
}

func stripCodeFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

func localeOrDefault(locale string) string {
	if locale == "" {
		return "en"
	}
	return locale
}

// briefHints renders the caller-supplied brand and contact details for the
// prompt, or a placeholder line when nothing was supplied.
func briefHints(brief planner.Brief) string {
	var lines []string
	if brief.BusinessName != "" {
		lines = append(lines, "Business name: "+brief.BusinessName)
	}
	if len(brief.BrandColors) > 0 {
		lines = append(lines, "Brand colors: "+strings.Join(brief.BrandColors, ", "))
	}
	if brief.Phone != "" {
		lines = append(lines, "Phone: "+brief.Phone)
	}
	if brief.Email != "" {
		lines = append(lines, "Email: "+brief.Email)
	}
	if brief.City != "" || brief.Country != "" {
		lines = append(lines, strings.TrimSpace("Location: "+strings.TrimSpace(brief.City+" "+brief.Country)))
	}
	if len(brief.Products) > 0 {
		lines = append(lines, "Products: "+strings.Join(brief.Products, ", "))
	}
	if brief.MaxPages > 0 {
		lines = append(lines, fmt.Sprintf("Page limit: at most %d pages", brief.MaxPages))
	}
	if len(lines) == 0 {
		return "(none provided)"
	}
	return strings.Join(lines, "\n\t\t")
}
