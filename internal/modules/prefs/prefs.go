package prefs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/amardimiaty/storefront-backend/internal/platform/kv"
	"github.com/amardimiaty/storefront-backend/internal/platform/pubsub"
)

// Consent is the visitor's cookie-consent choice. The zero value means
// the banner has not been answered yet.
type Consent string

const (
	ConsentUnset    Consent = ""
	ConsentAccepted Consent = "accepted"
	ConsentRejected Consent = "rejected"
)

// ConsentEvent is published when a session resolves the consent banner.
type ConsentEvent struct {
	SessionID string
	Choice    Consent
}

type state struct {
	Consent        Consent `json:"consent"`
	NewsletterSeen bool    `json:"newsletter_seen"`
}

// Store holds one session's consent and newsletter flags. Resolving
// consent publishes a consent-resolved event and arms the newsletter
// prompt after a short delay, matching the storefront's signup flow:
// the popup never races the consent banner and never reappears once
// seen.
type Store struct {
	mu          sync.Mutex
	state       state
	persist     kv.Store
	bus         *pubsub.Bus[ConsentEvent]
	sessionID   string
	promptDelay time.Duration
	promptReady bool
	hydrated    bool
}

// NewStore creates an unhydrated store for one session. promptDelay is
// how long after consent resolution the newsletter prompt becomes
// eligible.
func NewStore(persist kv.Store, bus *pubsub.Bus[ConsentEvent], sessionID string, promptDelay time.Duration) *Store {
	return &Store{
		persist:     persist,
		bus:         bus,
		sessionID:   sessionID,
		promptDelay: promptDelay,
	}
}

func (s *Store) key() string {
	return fmt.Sprintf("prefs:%s", s.sessionID)
}

func (s *Store) hydrate(ctx context.Context) error {
	if s.hydrated {
		return nil
	}
	var saved state
	ok, err := kv.LoadJSON(ctx, s.persist, s.key(), &saved)
	if err != nil {
		return err
	}
	if ok {
		s.state = saved
	}
	s.hydrated = true
	// A returning visitor with resolved consent re-arms the prompt.
	if s.state.Consent != ConsentUnset && !s.state.NewsletterSeen {
		s.armPromptLocked()
	}
	return nil
}

func (s *Store) armPromptLocked() {
	time.AfterFunc(s.promptDelay, func() {
		s.mu.Lock()
		s.promptReady = true
		s.mu.Unlock()
	})
}

// Consent returns the current choice.
func (s *Store) Consent(ctx context.Context) (Consent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hydrate(ctx); err != nil {
		return ConsentUnset, err
	}
	return s.state.Consent, nil
}

// SetConsent records the visitor's choice, persists it, publishes the
// consent-resolved event and arms the newsletter prompt.
func (s *Store) SetConsent(ctx context.Context, choice Consent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hydrate(ctx); err != nil {
		return err
	}
	if choice != ConsentAccepted && choice != ConsentRejected {
		return fmt.Errorf("invalid consent choice %q", choice)
	}
	s.state.Consent = choice
	if err := kv.SaveJSON(ctx, s.persist, s.key(), s.state); err != nil {
		return err
	}
	s.bus.Publish(ConsentEvent{SessionID: s.sessionID, Choice: choice})
	if !s.state.NewsletterSeen {
		s.armPromptLocked()
	}
	return nil
}

// MarkNewsletterSeen records that the popup was shown (or dismissed),
// so it never reappears for this session.
func (s *Store) MarkNewsletterSeen(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hydrate(ctx); err != nil {
		return err
	}
	s.state.NewsletterSeen = true
	s.promptReady = false
	return kv.SaveJSON(ctx, s.persist, s.key(), s.state)
}

// ShouldPrompt reports whether the newsletter popup should display now:
// consent resolved, delay elapsed, not yet seen.
func (s *Store) ShouldPrompt(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hydrate(ctx); err != nil {
		return false, err
	}
	return s.promptReady && !s.state.NewsletterSeen && s.state.Consent != ConsentUnset, nil
}
