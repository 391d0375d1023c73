package store

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"sitegen_ai_server/internal/planner"
	"sitegen_ai_server/internal/renderer"
)

var (
	ErrNotFound = errors.New("site not found")
	ErrExpired  = errors.New("site expired")
)

// Record is one stored site: the rendered artifact plus the plan it came
// from, addressed privately by edit token and publicly by share slug.
type Record struct {
	EditToken string                 `json:"editToken"`
	ShareSlug string                 `json:"shareSlug"`
	Site      *renderer.RenderedSite `json:"site"`
	Plan      *planner.LayoutPlan    `json:"plan"`
	CreatedAt time.Time              `json:"createdAt"`
	ExpiresAt time.Time              `json:"expiresAt"`
}

// Store keeps rendered sites in process memory. Single-instance only: state
// is not shared across processes, and expiry is best-effort (lazy on read
// plus a periodic sweep).
type Store struct {
	mu      sync.RWMutex
	byToken map[string]*Record
	byShare map[string]string // share slug -> edit token
	ttl     time.Duration
}

func New(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	return &Store{
		byToken: make(map[string]*Record),
		byShare: make(map[string]string),
		ttl:     ttl,
	}
}

// Save stores a rendered site under a fresh edit token and share slug. The
// record keeps its own copies of the site and plan, so the caller's values
// never alias the stored state.
func (s *Store) Save(site *renderer.RenderedSite, plan *planner.LayoutPlan) *Record {
	now := time.Now()
	rec := &Record{
		EditToken: uuid.New().String(),
		ShareSlug: newShareSlug(),
		Site:      cloneSite(site),
		Plan:      clonePlan(plan),
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.byToken[rec.EditToken] = rec
	s.byShare[rec.ShareSlug] = rec.EditToken
	s.mu.Unlock()
	return rec.clone()
}

// Get resolves an edit token, evicting lazily when the record expired. The
// returned record is a snapshot: callers serialize it outside the store lock
// while editor updates keep mutating the stored one.
func (s *Store) Get(token string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, err := s.lookupLocked(token)
	if err != nil {
		return nil, err
	}
	return rec.clone(), nil
}

// GetByShare resolves a public share slug to a record snapshot.
func (s *Store) GetByShare(slug string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token, ok := s.byShare[slug]
	if !ok {
		return nil, ErrNotFound
	}
	rec, err := s.lookupLocked(token)
	if err != nil {
		return nil, err
	}
	return rec.clone(), nil
}

// lookupLocked returns the live record for a token, evicting lazily when it
// expired. Callers hold s.mu.
func (s *Store) lookupLocked(token string) (*Record, error) {
	rec, ok := s.byToken[token]
	if !ok {
		return nil, ErrNotFound
	}
	if time.Now().After(rec.ExpiresAt) {
		s.evictLocked(rec)
		return nil, ErrExpired
	}
	return rec, nil
}

// UpdateSectionProps applies a path-addressed prop update from the editor:
// (pageID, sectionID) selects the section, props are merged key-wise over
// the existing ones. The invariant pass re-runs afterwards so editor input
// can never break section ordering.
func (s *Store) UpdateSectionProps(token, pageID, sectionID string, props map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, err := s.lookupLocked(token)
	if err != nil {
		return err
	}
	for p := range rec.Site.Pages {
		page := &rec.Site.Pages[p]
		if page.ID != pageID {
			continue
		}
		for i := range page.Sections {
			if page.Sections[i].ID != sectionID {
				continue
			}
			if page.Sections[i].Props == nil {
				page.Sections[i].Props = map[string]any{}
			}
			for k, v := range props {
				page.Sections[i].Props[k] = v
			}
			renderer.EnforceSectionInvariants(rec.Site)
			return nil
		}
	}
	return ErrNotFound
}

// Sweep evicts expired records every interval until ctx is cancelled.
func (s *Store) Sweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweepOnce()
		}
	}
}

func (s *Store) sweepOnce() {
	now := time.Now()
	s.mu.Lock()
	evicted := 0
	for _, rec := range s.byToken {
		if now.After(rec.ExpiresAt) {
			s.evictLocked(rec)
			evicted++
		}
	}
	s.mu.Unlock()
	if evicted > 0 {
		log.Printf("Evicted %d expired site records", evicted)
	}
}

func (s *Store) evictLocked(rec *Record) {
	delete(s.byToken, rec.EditToken)
	delete(s.byShare, rec.ShareSlug)
}

// clone snapshots a record for handing outside the lock. Prop maps are
// copied one level deep; nested prop values (default item lists and the
// like) are never rewritten after storage, only whole keys are replaced.
func (r *Record) clone() *Record {
	cp := *r
	cp.Site = cloneSite(r.Site)
	cp.Plan = clonePlan(r.Plan)
	return &cp
}

func cloneSite(site *renderer.RenderedSite) *renderer.RenderedSite {
	if site == nil {
		return nil
	}
	cp := &renderer.RenderedSite{
		Theme: site.Theme,
		Nav:   append([]renderer.NavItem(nil), site.Nav...),
		Pages: make([]renderer.RenderedPage, len(site.Pages)),
	}
	for i, page := range site.Pages {
		p := page
		p.SEO.Keywords = append([]string(nil), page.SEO.Keywords...)
		p.Sections = make([]renderer.RenderedSection, len(page.Sections))
		for j, sec := range page.Sections {
			sc := sec
			sc.Props = copyProps(sec.Props)
			p.Sections[j] = sc
		}
		cp.Pages[i] = p
	}
	return cp
}

func clonePlan(plan *planner.LayoutPlan) *planner.LayoutPlan {
	if plan == nil {
		return nil
	}
	cp := *plan
	cp.UnsupportedFeatures = append([]string(nil), plan.UnsupportedFeatures...)
	cp.Warnings = append([]string(nil), plan.Warnings...)
	if plan.RequiredSections != nil {
		cp.RequiredSections = make(map[string]bool, len(plan.RequiredSections))
		for k, v := range plan.RequiredSections {
			cp.RequiredSections[k] = v
		}
	}
	cp.Pages = make([]planner.PagePlan, len(plan.Pages))
	for i, page := range plan.Pages {
		p := page
		p.Sections = make([]planner.SectionSlot, len(page.Sections))
		for j, slot := range page.Sections {
			sl := slot
			sl.PropsSeed = copyProps(slot.PropsSeed)
			p.Sections[j] = sl
		}
		cp.Pages[i] = p
	}
	return &cp
}

func copyProps(props map[string]any) map[string]any {
	if props == nil {
		return nil
	}
	out := make(map[string]any, len(props))
	for k, v := range props {
		out[k] = v
	}
	return out
}

// newShareSlug derives a short public slug from a uuid; collisions are as
// unlikely as uuid prefix collisions and harmless (the later write wins).
func newShareSlug() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}
