package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sitegen_ai_server/internal/ai"
	"sitegen_ai_server/internal/planner"
	"sitegen_ai_server/internal/renderer"
	"sitegen_ai_server/internal/store"
)

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	aiGenerator *ai.Generator
	siteStore   *store.Store
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(aiGen *ai.Generator, siteStore *store.Store) *APIHandler {
	return &APIHandler{
		aiGenerator: aiGen,
		siteStore:   siteStore,
	}
}

// --- Structs for API Requests/Responses ---

type BrandInput struct {
	Colors  []string `json:"colors" binding:"omitempty,max=2"`
	LogoURL string   `json:"logo_url"`
}

type ContactInput struct {
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type ConstraintsInput struct {
	MaxPages int `json:"max_pages" binding:"omitempty,min=1,max=7"`
}

type PlanRequest struct {
	Prompt       string            `json:"prompt" binding:"required"`
	Locale       string            `json:"locale"`
	WebsiteType  string            `json:"website_type" binding:"omitempty,oneof=info catalog"`
	Tone         string            `json:"tone"`
	BusinessName string            `json:"business_name"`
	Brand        *BrandInput       `json:"brand"`
	Contact      *ContactInput     `json:"contact"`
	Products     []string          `json:"products"`
	Constraints  *ConstraintsInput `json:"constraints"`
}

type PlanResponse struct {
	LayoutPlan          *planner.LayoutPlan    `json:"layoutPlan"`
	SiteSpec            *renderer.RenderedSite `json:"siteSpec"`
	EditToken           string                 `json:"editToken"`
	ShareSlug           string                 `json:"shareSlug"`
	Warnings            []string               `json:"warnings"`
	UnsupportedFeatures []string               `json:"unsupported_features"`
}

type UpdateSectionRequest struct {
	PageID    string         `json:"page_id" binding:"required"`
	SectionID string         `json:"section_id" binding:"required"`
	Props     map[string]any `json:"props" binding:"required"`
}

// --- API Handlers ---

// POST /site/plan
func (h *APIHandler) PlanSite(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	brief := briefFromRequest(req)
	intent := planner.ClassifyIntent(brief.Prompt, brief.WebsiteType)
	kitID, presetID := planner.ResolveStyle(intent, brief.Tone)
	recipe := planner.SelectRecipe(intent, "")
	fallback := planner.ComposeFallbackPlan(brief, intent, kitID, presetID, recipe)

	log.Printf("Planning site: type=%s archetype=%s kit=%s recipe=%s",
		intent.WebsiteType, intent.Archetype, kitID, recipe.ID)

	plan, err := h.aiGenerator.PlanLayout(c.Request.Context(), brief, fallback)
	if err != nil {
		// Only context cancellation reaches here; model failures already
		// degraded to the deterministic fallback inside PlanLayout.
		log.Printf("Planning aborted: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Planning request was cancelled"})
		return
	}

	site := renderer.Render(plan, renderContext(brief))
	rec := h.siteStore.Save(site, plan)

	log.Printf("Plan ready: pages=%d warnings=%d token=%s", len(site.Pages), len(plan.Warnings), rec.EditToken)
	c.JSON(http.StatusCreated, PlanResponse{
		LayoutPlan:          plan,
		SiteSpec:            site,
		EditToken:           rec.EditToken,
		ShareSlug:           rec.ShareSlug,
		Warnings:            warningsOrEmpty(plan.Warnings),
		UnsupportedFeatures: warningsOrEmpty(plan.UnsupportedFeatures),
	})
}

// GET /site/:token
func (h *APIHandler) GetSite(c *gin.Context) {
	rec, err := h.siteStore.Get(c.Param("token"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// PATCH /site/:token/sections
func (h *APIHandler) UpdateSection(c *gin.Context) {
	var req UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	token := c.Param("token")
	if err := h.siteStore.UpdateSectionProps(token, req.PageID, req.SectionID, req.Props); err != nil {
		respondStoreError(c, err)
		return
	}

	rec, err := h.siteStore.Get(token)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// GET /share/:slug — public read-only preview payload, no edit metadata.
func (h *APIHandler) GetSharedSite(c *gin.Context) {
	rec, err := h.siteStore.GetByShare(c.Param("slug"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"site": rec.Site, "expiresAt": rec.ExpiresAt})
}

func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Site not found"})
	case errors.Is(err, store.ErrExpired):
		c.JSON(http.StatusGone, gin.H{"error": "Site has expired"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to access site store"})
	}
}

func briefFromRequest(req PlanRequest) planner.Brief {
	brief := planner.Brief{
		Prompt:       req.Prompt,
		Locale:       req.Locale,
		WebsiteType:  req.WebsiteType,
		Tone:         req.Tone,
		BusinessName: req.BusinessName,
		Products:     req.Products,
	}
	if req.Brand != nil {
		brief.BrandColors = req.Brand.Colors
		brief.LogoURL = req.Brand.LogoURL
	}
	if req.Contact != nil {
		brief.Phone = req.Contact.Phone
		brief.Email = req.Contact.Email
		brief.Address = req.Contact.Address
		brief.City = req.Contact.City
		brief.Country = req.Contact.Country
	}
	if req.Constraints != nil {
		brief.MaxPages = req.Constraints.MaxPages
	}
	return brief
}

func renderContext(brief planner.Brief) renderer.Context {
	return renderer.Context{
		BusinessName: brief.BusinessName,
		Prompt:       brief.Prompt,
		Locale:       brief.Locale,
		BrandColors:  brief.BrandColors,
		LogoURL:      brief.LogoURL,
		Phone:        brief.Phone,
		Email:        brief.Email,
		Address:      brief.Address,
		City:         brief.City,
		Country:      brief.Country,
		Products:     brief.Products,
	}
}

func warningsOrEmpty(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
