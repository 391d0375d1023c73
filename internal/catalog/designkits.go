package catalog

// DesignKit is an immutable named bundle of visual tokens. Plans reference a
// kit by id only; the renderer resolves the id to concrete values.
type DesignKit struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
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

// StylePreset is a coarser fallback bundle used when brand overrides are
// absent; each design kit maps to exactly one preset.
type StylePreset struct {
	ID             string `json:"id"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	FontFamily     string `json:"fontFamily"`
	Radius         string `json:"radius"`
	ButtonStyle    string `json:"buttonStyle"`
}

const DefaultKitID = "clean-minimal"

var designKits = map[string]DesignKit{
	"clean-minimal": {
		ID: "clean-minimal", Label: "Clean Minimal",
		Primary: "#1A73E8", Secondary: "#0F2A4A", Accent: "#FF6F61",
		Background: "#F9FAFB", Text: "#111827",
		FontFamily: "Inter, sans-serif", HeadingFont: "Inter, sans-serif",
		Radius: "8px", ButtonStyle: "solid",
	},
	"medical-blue": {
		ID: "medical-blue", Label: "Medical Blue",
		Primary: "#2563EB", Secondary: "#1E3A8A", Accent: "#38BDF8",
		Background: "#F0F7FF", Text: "#0F172A",
		FontFamily: "Inter, sans-serif", HeadingFont: "Inter, sans-serif",
		Radius: "10px", ButtonStyle: "solid",
	},
	"modern-saas": {
		ID: "modern-saas", Label: "Modern SaaS",
		Primary: "#7C3AED", Secondary: "#0B1021", Accent: "#22D3EE",
		Background: "#0B1021", Text: "#E5E7EB",
		FontFamily: "Inter, sans-serif", HeadingFont: "Space Grotesk, sans-serif",
		Radius: "12px", ButtonStyle: "gradient",
	},
	"luxury-elegant": {
		ID: "luxury-elegant", Label: "Luxury Elegant",
		Primary: "#B08D57", Secondary: "#1C1917", Accent: "#E7D9C4",
		Background: "#FCFAF7", Text: "#1C1917",
		FontFamily: "Lora, serif", HeadingFont: "Playfair Display, serif",
		Radius: "2px", ButtonStyle: "outline",
	},
	"warm-organic": {
		ID: "warm-organic", Label: "Warm Organic",
		Primary: "#C2410C", Secondary: "#431407", Accent: "#FBBF24",
		Background: "#FFF7ED", Text: "#292524",
		FontFamily: "Nunito, sans-serif", HeadingFont: "Fraunces, serif",
		Radius: "16px", ButtonStyle: "solid",
	},
	"bold-gradient": {
		ID: "bold-gradient", Label: "Bold Gradient",
		Primary: "#EC4899", Secondary: "#111827", Accent: "#8B5CF6",
		Background: "#0F0A1E", Text: "#F3F4F6",
		FontFamily: "Inter, sans-serif", HeadingFont: "Sora, sans-serif",
		Radius: "14px", ButtonStyle: "gradient",
	},
}

var stylePresets = map[string]StylePreset{
	"premium-minimal": {
		ID: "premium-minimal", PrimaryColor: "#1A73E8", SecondaryColor: "#0F2A4A",
		FontFamily: "Inter, sans-serif", Radius: "8px", ButtonStyle: "solid",
	},
	"dark-neon": {
		ID: "dark-neon", PrimaryColor: "#7C3AED", SecondaryColor: "#22D3EE",
		FontFamily: "Inter, sans-serif", Radius: "12px", ButtonStyle: "gradient",
	},
	"light-commerce": {
		ID: "light-commerce", PrimaryColor: "#C2410C", SecondaryColor: "#FBBF24",
		FontFamily: "Nunito, sans-serif", Radius: "16px", ButtonStyle: "solid",
	},
}

// KitByID resolves a design kit id. Unknown ids report ok=false; callers
// decide whether to fall back to DefaultKitID.
func KitByID(id string) (DesignKit, bool) {
	kit, ok := designKits[id]
	return kit, ok
}

func PresetByID(id string) (StylePreset, bool) {
	p, ok := stylePresets[id]
	return p, ok
}

func KitIDs() []string {
	ids := make([]string, 0, len(designKits))
	for id := range designKits {
		ids = append(ids, id)
	}
	return ids
}

func PresetIDs() []string {
	ids := make([]string, 0, len(stylePresets))
	for id := range stylePresets {
		ids = append(ids, id)
	}
	return ids
}
