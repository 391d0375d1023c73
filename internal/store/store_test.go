package store

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitegen_ai_server/internal/planner"
	"sitegen_ai_server/internal/renderer"
)

func sampleSite() *renderer.RenderedSite {
	return &renderer.RenderedSite{
		Pages: []renderer.RenderedPage{
			{ID: "home", Slug: "/", Name: "Home", Sections: []renderer.RenderedSection{
				{ID: "sec_header_home_1", Widget: "header", Props: map[string]any{"brand": "X"}},
				{ID: "sec_hero_home_2", Widget: "hero", Props: map[string]any{"headline": "Hi"}},
			}},
		},
	}
}

func TestStore_SaveAndGet(t *testing.T) {
	s := New(time.Hour)
	rec := s.Save(sampleSite(), &planner.LayoutPlan{WebsiteType: planner.WebsiteTypeInfo})

	require.NotEmpty(t, rec.EditToken)
	require.NotEmpty(t, rec.ShareSlug)
	assert.NotEqual(t, rec.EditToken, rec.ShareSlug)

	got, err := s.Get(rec.EditToken)
	require.NoError(t, err)
	assert.Equal(t, rec.EditToken, got.EditToken)
	assert.Equal(t, rec.Site, got.Site)

	shared, err := s.GetByShare(rec.ShareSlug)
	require.NoError(t, err)
	assert.Equal(t, rec.EditToken, shared.EditToken)
}

func TestStore_GetReturnsSnapshot(t *testing.T) {
	s := New(time.Hour)
	rec := s.Save(sampleSite(), &planner.LayoutPlan{})

	got, err := s.Get(rec.EditToken)
	require.NoError(t, err)

	// Mutating the snapshot must not leak into stored state.
	got.Site.Pages[0].Sections[0].Props["brand"] = "Hacked"
	got.Site.Pages[0].Sections = nil

	again, err := s.Get(rec.EditToken)
	require.NoError(t, err)
	require.Len(t, again.Site.Pages[0].Sections, 2)
	assert.Equal(t, "X", again.Site.Pages[0].Sections[0].Props["brand"])
}

func TestStore_ConcurrentReadAndUpdate(t *testing.T) {
	s := New(time.Hour)
	rec := s.Save(sampleSite(), &planner.LayoutPlan{})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			got, err := s.Get(rec.EditToken)
			assert.NoError(t, err)
			_, err = json.Marshal(got)
			assert.NoError(t, err)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			err := s.UpdateSectionProps(rec.EditToken, "home", "sec_hero_home_2",
				map[string]any{"headline": "v", "n": i})
			assert.NoError(t, err)
		}
	}()
	wg.Wait()

	got, err := s.Get(rec.EditToken)
	require.NoError(t, err)
	assert.Equal(t, "v", got.Site.Pages[0].Sections[1].Props["headline"])
}

func TestStore_UnknownToken(t *testing.T) {
	s := New(time.Hour)
	_, err := s.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetByShare("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Expiry(t *testing.T) {
	s := New(time.Millisecond)
	rec := s.Save(sampleSite(), &planner.LayoutPlan{})

	time.Sleep(5 * time.Millisecond)

	_, err := s.Get(rec.EditToken)
	assert.ErrorIs(t, err, ErrExpired)

	// Lazy eviction removed the record entirely.
	_, err = s.Get(rec.EditToken)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetByShare(rec.ShareSlug)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_SweepEvictsExpired(t *testing.T) {
	s := New(time.Millisecond)
	s.Save(sampleSite(), &planner.LayoutPlan{})
	time.Sleep(5 * time.Millisecond)

	s.sweepOnce()

	s.mu.RLock()
	defer s.mu.RUnlock()
	assert.Empty(t, s.byToken)
	assert.Empty(t, s.byShare)
}

func TestStore_UpdateSectionProps(t *testing.T) {
	s := New(time.Hour)
	rec := s.Save(sampleSite(), &planner.LayoutPlan{})

	err := s.UpdateSectionProps(rec.EditToken, "home", "sec_hero_home_2",
		map[string]any{"headline": "Updated", "badge": "New"})
	require.NoError(t, err)

	got, err := s.Get(rec.EditToken)
	require.NoError(t, err)
	hero := got.Site.Pages[0].Sections[1]
	assert.Equal(t, "Updated", hero.Props["headline"])
	assert.Equal(t, "New", hero.Props["badge"])
}

func TestStore_UpdateSectionProps_UnknownSection(t *testing.T) {
	s := New(time.Hour)
	rec := s.Save(sampleSite(), &planner.LayoutPlan{})

	err := s.UpdateSectionProps(rec.EditToken, "home", "sec_missing", map[string]any{"a": 1})
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.UpdateSectionProps("bad-token", "home", "sec_hero_home_2", map[string]any{"a": 1})
	assert.ErrorIs(t, err, ErrNotFound)
}
