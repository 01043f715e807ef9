package layout

import (
	"context"
	"fmt"
	"sync"

	"github.com/amardimiaty/storefront-backend/internal/platform/kv"
	"github.com/amardimiaty/storefront-backend/internal/platform/pubsub"
)

// SectionID names a landing-page section. The set is fixed; admins can
// reorder and toggle sections but never invent new ones.
type SectionID string

const (
	SectionHero        SectionID = "hero"
	SectionCategories  SectionID = "categories"
	SectionBanners     SectionID = "banners"
	SectionFeatured    SectionID = "featured"
	SectionNewArrivals SectionID = "new-arrivals"
	SectionSale        SectionID = "sale"
	SectionNewsletter  SectionID = "newsletter"
)

// Section is one entry of the landing-page manifest. Order within the
// manifest and Visible are the only admin-mutable fields.
type Section struct {
	ID         SectionID `json:"id"`
	Visible    bool      `json:"visible"`
	Editable   bool      `json:"editable"`
	EditTarget string    `json:"edit_target,omitempty"`
}

// FeaturedCategories configures the category strip on the landing page.
type FeaturedCategories struct {
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle,omitempty"`
	CategoryIDs []string `json:"category_ids"`
	Style       string   `json:"style"`
}

// AdminEvent is published whenever admin layout content changes, so
// navigation and landing surfaces re-render.
type AdminEvent struct {
	What string
}

const (
	sectionsKey = "admin:home-sections"
	featuredKey = "admin:featured-categories"
)

// DefaultSections is the manifest order shipped before any admin edits.
func DefaultSections() []Section {
	return []Section{
		{ID: SectionHero, Visible: true, Editable: true, EditTarget: "hero-settings"},
		{ID: SectionCategories, Visible: true, Editable: true, EditTarget: "featured-categories"},
		{ID: SectionBanners, Visible: true, Editable: true, EditTarget: "notifications"},
		{ID: SectionFeatured, Visible: true, Editable: false},
		{ID: SectionNewArrivals, Visible: true, Editable: false},
		{ID: SectionSale, Visible: false, Editable: false},
		{ID: SectionNewsletter, Visible: true, Editable: true, EditTarget: "newsletter-settings"},
	}
}

// DefaultFeaturedCategories is the pre-configured category strip.
func DefaultFeaturedCategories() FeaturedCategories {
	return FeaturedCategories{
		Title:       "Shop by Category",
		CategoryIDs: []string{"cat-apparel", "cat-mugs", "cat-posters"},
		Style:       "grid",
	}
}

// Manager owns the landing-page manifest and display settings. Like the
// notification manager this is global admin content under fixed keys.
type Manager struct {
	mu       sync.Mutex
	sections []Section
	featured FeaturedCategories
	persist  kv.Store
	bus      *pubsub.Bus[AdminEvent]
	hydrated bool
}

// NewManager creates an unhydrated manager.
func NewManager(persist kv.Store, bus *pubsub.Bus[AdminEvent]) *Manager {
	return &Manager{
		sections: DefaultSections(),
		featured: DefaultFeaturedCategories(),
		persist:  persist,
		bus:      bus,
	}
}

func (m *Manager) hydrate(ctx context.Context) error {
	if m.hydrated {
		return nil
	}
	var sections []Section
	ok, err := kv.LoadJSON(ctx, m.persist, sectionsKey, &sections)
	if err != nil {
		return err
	}
	if ok && validManifest(sections) {
		m.sections = sections
	}
	var featured FeaturedCategories
	ok, err = kv.LoadJSON(ctx, m.persist, featuredKey, &featured)
	if err != nil {
		return err
	}
	if ok {
		m.featured = featured
	}
	m.hydrated = true
	return nil
}

// validManifest checks a persisted manifest is a permutation of the
// known section set, so damaged state cannot drop or invent sections.
func validManifest(sections []Section) bool {
	defaults := DefaultSections()
	if len(sections) != len(defaults) {
		return false
	}
	seen := make(map[SectionID]bool, len(sections))
	known := make(map[SectionID]bool, len(defaults))
	for _, s := range defaults {
		known[s.ID] = true
	}
	for _, s := range sections {
		if !known[s.ID] || seen[s.ID] {
			return false
		}
		seen[s.ID] = true
	}
	return true
}

func (m *Manager) notify(what string) {
	m.bus.Publish(AdminEvent{What: what})
}

// Manifest returns the ordered section list.
func (m *Manager) Manifest(ctx context.Context) ([]Section, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.hydrate(ctx); err != nil {
		return nil, err
	}
	out := make([]Section, len(m.sections))
	copy(out, m.sections)
	return out, nil
}

// SetVisible toggles one section's visibility.
func (m *Manager) SetVisible(ctx context.Context, id SectionID, visible bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.hydrate(ctx); err != nil {
		return err
	}
	for i := range m.sections {
		if m.sections[i].ID == id {
			m.sections[i].Visible = visible
			if err := kv.SaveJSON(ctx, m.persist, sectionsKey, m.sections); err != nil {
				return err
			}
			m.notify("sections")
			return nil
		}
	}
	return fmt.Errorf("unknown section %q", id)
}

// Reorder replaces the manifest order. The new order must be a
// permutation of the existing section IDs.
func (m *Manager) Reorder(ctx context.Context, order []SectionID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.hydrate(ctx); err != nil {
		return err
	}
	if len(order) != len(m.sections) {
		return fmt.Errorf("order must list all %d sections, got %d", len(m.sections), len(order))
	}
	byID := make(map[SectionID]Section, len(m.sections))
	for _, s := range m.sections {
		byID[s.ID] = s
	}
	next := make([]Section, 0, len(order))
	seen := make(map[SectionID]bool, len(order))
	for _, id := range order {
		s, ok := byID[id]
		if !ok {
			return fmt.Errorf("unknown section %q", id)
		}
		if seen[id] {
			return fmt.Errorf("duplicate section %q", id)
		}
		seen[id] = true
		next = append(next, s)
	}
	m.sections = next
	if err := kv.SaveJSON(ctx, m.persist, sectionsKey, m.sections); err != nil {
		return err
	}
	m.notify("sections")
	return nil
}

// Reset restores the default manifest.
func (m *Manager) Reset(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.hydrate(ctx); err != nil {
		return err
	}
	m.sections = DefaultSections()
	if err := kv.SaveJSON(ctx, m.persist, sectionsKey, m.sections); err != nil {
		return err
	}
	m.notify("sections")
	return nil
}

// Featured returns the featured-categories settings.
func (m *Manager) Featured(ctx context.Context) (FeaturedCategories, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.hydrate(ctx); err != nil {
		return FeaturedCategories{}, err
	}
	return m.featured, nil
}

// SetFeatured replaces the featured-categories settings.
func (m *Manager) SetFeatured(ctx context.Context, fc FeaturedCategories) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.hydrate(ctx); err != nil {
		return err
	}
	if fc.Title == "" {
		return fmt.Errorf("title is required")
	}
	if fc.Style == "" {
		fc.Style = "grid"
	}
	m.featured = fc
	if err := kv.SaveJSON(ctx, m.persist, featuredKey, fc); err != nil {
		return err
	}
	m.notify("featured-categories")
	return nil
}
