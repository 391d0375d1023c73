package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyIntent_WebsiteType(t *testing.T) {
	tests := []struct {
		name         string
		prompt       string
		explicitType string
		wantType     string
	}{
		{"plain info prompt", "a website for my dental clinic", "", WebsiteTypeInfo},
		{"catalog hint product", "sell handmade products online", "", WebsiteTypeCatalog},
		{"catalog hint shop", "a shop for vintage lamps", "", WebsiteTypeCatalog},
		{"catalog hint sku", "manage 300 SKU listings", "", WebsiteTypeCatalog},
		{"override wins over hints", "an online store", "info", WebsiteTypeInfo},
		{"override catalog", "a simple brochure site", "catalog", WebsiteTypeCatalog},
		{"unknown override ignored", "a store for sneakers", "blog", WebsiteTypeCatalog},
		{"empty prompt", "", "", WebsiteTypeInfo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyIntent(tt.prompt, tt.explicitType)
			assert.Equal(t, tt.wantType, got.WebsiteType)
		})
	}
}

func TestClassifyIntent_Archetype(t *testing.T) {
	tests := []struct {
		prompt string
		want   string
	}{
		{"a website for my dental clinic in Berlin", ArchetypeMedical},
		{"landing page for our SaaS analytics platform", ArchetypeSaaS},
		{"luxury jewelry boutique", ArchetypeLuxury},
		{"cozy italian restaurant with a seasonal menu", ArchetypeRestaurant},
		{"creative branding agency portfolio", ArchetypeAgency},
		{"a website for my plumbing business", ArchetypeGeneral},
		{"", ArchetypeGeneral},
	}
	for _, tt := range tests {
		got := ClassifyIntent(tt.prompt, "")
		assert.Equalf(t, tt.want, got.Archetype, "prompt: %s", tt.prompt)
	}
}

func TestClassifyIntent_FirstFamilyWins(t *testing.T) {
	// "medical" outranks "software" because families are tried in order.
	got := ClassifyIntent("medical software for hospitals", "")
	assert.Equal(t, ArchetypeMedical, got.Archetype)
}

func TestResolveStyle(t *testing.T) {
	tests := []struct {
		archetype  string
		wantKit    string
		wantPreset string
	}{
		{ArchetypeMedical, "medical-blue", "premium-minimal"},
		{ArchetypeSaaS, "modern-saas", "dark-neon"},
		{ArchetypeLuxury, "luxury-elegant", "premium-minimal"},
		{ArchetypeRestaurant, "warm-organic", "light-commerce"},
		{ArchetypeAgency, "bold-gradient", "dark-neon"},
		{ArchetypeGeneral, "clean-minimal", "premium-minimal"},
	}
	for _, tt := range tests {
		kit, preset := ResolveStyle(Intent{WebsiteType: WebsiteTypeInfo, Archetype: tt.archetype}, "")
		assert.Equal(t, tt.wantKit, kit)
		assert.Equal(t, tt.wantPreset, preset)
	}
}

func TestSelectRecipe(t *testing.T) {
	r := SelectRecipe(Intent{WebsiteType: WebsiteTypeInfo, Archetype: ArchetypeMedical}, "")
	assert.Equal(t, "info-medical", r.ID)

	r = SelectRecipe(Intent{WebsiteType: WebsiteTypeInfo, Archetype: ArchetypeGeneral}, "")
	assert.Equal(t, "info-classic", r.ID)

	r = SelectRecipe(Intent{WebsiteType: WebsiteTypeCatalog, Archetype: ArchetypeLuxury}, "")
	assert.Equal(t, "catalog-boutique", r.ID)

	r = SelectRecipe(Intent{WebsiteType: WebsiteTypeCatalog, Archetype: ArchetypeMedical}, "")
	assert.Equal(t, "catalog-classic", r.ID)
}

func TestSelectRecipe_ExplicitIDTakesPrecedence(t *testing.T) {
	r := SelectRecipe(Intent{WebsiteType: WebsiteTypeInfo, Archetype: ArchetypeMedical}, "info-agency")
	assert.Equal(t, "info-agency", r.ID)

	// Explicit id from the wrong pack falls back to inference.
	r = SelectRecipe(Intent{WebsiteType: WebsiteTypeInfo, Archetype: ArchetypeMedical}, "catalog-classic")
	assert.Equal(t, "info-medical", r.ID)

	r = SelectRecipe(Intent{WebsiteType: WebsiteTypeInfo, Archetype: ArchetypeMedical}, "no-such-recipe")
	assert.Equal(t, "info-medical", r.ID)
}

func TestDetectUnsupportedFeatures(t *testing.T) {
	got := DetectUnsupportedFeatures("a site with login and payments for my members")
	assert.Equal(t, []string{"login", "payments"}, got)

	got = DetectUnsupportedFeatures("a plain marketing site")
	assert.Empty(t, got)

	// Per-page purpose text is scanned too.
	got = DetectUnsupportedFeatures("a plain site", "page for the admin panel")
	assert.Equal(t, []string{"admin panel"}, got)
}
