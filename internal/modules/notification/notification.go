package notification

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/amardimiaty/storefront-backend/internal/platform/kv"
)

// Notification is an admin-configured storefront banner. Only active
// notifications are surfaced to shoppers.
type Notification struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Highlight string `json:"highlight,omitempty"`
	Active    bool   `json:"active"`
}

// ErrNotFound is returned for operations on an unknown notification ID.
var ErrNotFound = errors.New("notification not found")

const (
	stateKey = "admin:notifications"
	colorKey = "admin:notification-color"
)

// DefaultColor is the banner color used until an admin picks one.
const DefaultColor = "#1f2937"

// Manager owns the notification list and its banner color. State is
// global (shared storefront content, not per-session) and persists under
// fixed admin keys with the usual hydrate-once discipline.
type Manager struct {
	mu       sync.Mutex
	items    []Notification
	color    string
	persist  kv.Store
	hydrated bool
}

// NewManager creates an unhydrated manager over the persistence adapter.
func NewManager(persist kv.Store) *Manager {
	return &Manager{persist: persist, color: DefaultColor}
}

type persistedState struct {
	Items []Notification `json:"items"`
}

func (m *Manager) hydrate(ctx context.Context) error {
	if m.hydrated {
		return nil
	}
	var state persistedState
	ok, err := kv.LoadJSON(ctx, m.persist, stateKey, &state)
	if err != nil {
		return err
	}
	if ok {
		m.items = state.Items
	}
	var color string
	ok, err = kv.LoadJSON(ctx, m.persist, colorKey, &color)
	if err != nil {
		return err
	}
	if ok && color != "" {
		m.color = color
	}
	m.hydrated = true
	return nil
}

func (m *Manager) save(ctx context.Context) error {
	return kv.SaveJSON(ctx, m.persist, stateKey, persistedState{Items: m.items})
}

// List returns every notification, active or not (the admin view).
func (m *Manager) List(ctx context.Context) ([]Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.hydrate(ctx); err != nil {
		return nil, err
	}
	out := make([]Notification, len(m.items))
	copy(out, m.items)
	return out, nil
}

// Active returns the notifications currently surfaced to shoppers.
func (m *Manager) Active(ctx context.Context) ([]Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.hydrate(ctx); err != nil {
		return nil, err
	}
	var out []Notification
	for _, n := range m.items {
		if n.Active {
			out = append(out, n)
		}
	}
	return out, nil
}

// Add creates a notification. New notifications start inactive; an
// explicit Toggle is required before they display.
func (m *Manager) Add(ctx context.Context, text, highlight string) (*Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.hydrate(ctx); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, fmt.Errorf("text is required")
	}
	n := Notification{
		ID:        uuid.NewString(),
		Text:      text,
		Highlight: highlight,
		Active:    false,
	}
	m.items = append(m.items, n)
	if err := m.save(ctx); err != nil {
		return nil, err
	}
	return &n, nil
}

// Update replaces the text and highlight of an existing notification.
func (m *Manager) Update(ctx context.Context, id, text, highlight string) (*Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.hydrate(ctx); err != nil {
		return nil, err
	}
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Text = text
			m.items[i].Highlight = highlight
			if err := m.save(ctx); err != nil {
				return nil, err
			}
			n := m.items[i]
			return &n, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
}

// Toggle flips the active flag.
func (m *Manager) Toggle(ctx context.Context, id string) (*Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.hydrate(ctx); err != nil {
		return nil, err
	}
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Active = !m.items[i].Active
			if err := m.save(ctx); err != nil {
				return nil, err
			}
			n := m.items[i]
			return &n, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
}

// Remove deletes a notification by ID.
func (m *Manager) Remove(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.hydrate(ctx); err != nil {
		return err
	}
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return m.save(ctx)
		}
	}
	return fmt.Errorf("%w: %q", ErrNotFound, id)
}

// Color returns the banner color.
func (m *Manager) Color(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.hydrate(ctx); err != nil {
		return "", err
	}
	return m.color, nil
}

// SetColor updates and persists the banner color.
func (m *Manager) SetColor(ctx context.Context, color string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.hydrate(ctx); err != nil {
		return err
	}
	if color == "" {
		color = DefaultColor
	}
	m.color = color
	return kv.SaveJSON(ctx, m.persist, colorKey, color)
}
