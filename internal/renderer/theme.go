package renderer

import (
	"sitegen_ai_server/internal/catalog"
	"sitegen_ai_server/internal/planner"
)

// Theme is the fully resolved visual bundle of a rendered site. DesignKit
// keeps the originating kit id as a back-reference so a preview surface can
// re-resolve tokens later.
type Theme struct {
	DesignKit   string `json:"designKit"`
	StylePreset string `json:"stylePreset"`
	Primary     string `json:"primary"`
	Secondary   string `json:"secondary"`
	Accent      string `json:"accent"`
	Background  string `json:"background"`
	Text        string `json:"text"`
	FontFamily  string `json:"fontFamily"`
	HeadingFont string `json:"headingFont"`
	Radius      string `json:"radius"`
	ButtonStyle string `json:"buttonStyle"`
}

// ResolveTheme turns the plan's kit/preset ids into concrete values. The
// design kit wins; the coarser style preset fills in when the kit id is
// unknown; caller-supplied brand colors override primary/secondary last.
func ResolveTheme(plan *planner.LayoutPlan, rc Context) Theme {
	kitID := plan.DesignKit
	if kitID == "" {
		kitID = catalog.DefaultKitID
	}

	theme := Theme{DesignKit: kitID, StylePreset: plan.StylePreset}

	if kit, ok := catalog.KitByID(kitID); ok {
		theme.Primary = kit.Primary
		theme.Secondary = kit.Secondary
		theme.Accent = kit.Accent
		theme.Background = kit.Background
		theme.Text = kit.Text
		theme.FontFamily = kit.FontFamily
		theme.HeadingFont = kit.HeadingFont
		theme.Radius = kit.Radius
		theme.ButtonStyle = kit.ButtonStyle
	} else if preset, ok := catalog.PresetByID(plan.StylePreset); ok {
		theme.Primary = preset.PrimaryColor
		theme.Secondary = preset.SecondaryColor
		theme.FontFamily = preset.FontFamily
		theme.HeadingFont = preset.FontFamily
		theme.Radius = preset.Radius
		theme.ButtonStyle = preset.ButtonStyle
		theme.Background = "#FFFFFF"
		theme.Text = "#111827"
	}

	if len(rc.BrandColors) > 0 && rc.BrandColors[0] != "" {
		theme.Primary = rc.BrandColors[0]
	}
	if len(rc.BrandColors) > 1 && rc.BrandColors[1] != "" {
		theme.Secondary = rc.BrandColors[1]
	}
	return theme
}
