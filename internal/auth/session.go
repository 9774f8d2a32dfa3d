// Package auth implements the session gate: a simulated login/register flow
// that fabricates a user profile, a synchronous logout, and zone resolution
// for the auth/app split. There is no credential verification here; a real
// auth collaborator would keep the same call signatures.
package auth

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/homemanager/homemanager/internal/ident"
	"github.com/homemanager/homemanager/internal/model"
	"github.com/homemanager/homemanager/internal/validate"
)

// ErrLoginPending rejects a session-mutating call while another one is in
// flight, so two racing logins cannot interleave their session writes.
var ErrLoginPending = fmt.Errorf("%w: a login attempt is already in progress", model.ErrAuth)

// Zone is one side of the navigation split.
type Zone string

const (
	ZoneAuth Zone = "auth"
	ZoneApp  Zone = "app"
)

// Service holds the singleton session.
type Service struct {
	mu      sync.Mutex
	gen     ident.Generator
	delay   time.Duration
	log     zerolog.Logger
	user    *model.User
	pending bool
}

// NewService builds a signed-out session. delay is the simulated round trip
// applied to Login and Register.
func NewService(gen ident.Generator, delay time.Duration, log zerolog.Logger) *Service {
	return &Service{gen: gen, delay: delay, log: log}
}

// Login simulates an authentication round trip and establishes a session for
// any credentials. The profile name is taken from the email local part.
func (s *Service) Login(ctx context.Context, email, password string) (*model.User, error) {
	if err := validate.Email(email); err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrAuth, err)
	}
	name, _, _ := strings.Cut(email, "@")
	return s.establish(ctx, email, name)
}

// Register behaves like Login but takes the profile name explicitly.
func (s *Service) Register(ctx context.Context, email, password, name string) (*model.User, error) {
	if err := validate.Email(email); err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrAuth, err)
	}
	if err := validate.NonEmpty("name", name); err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrAuth, err)
	}
	return s.establish(ctx, email, name)
}

func (s *Service) establish(ctx context.Context, email, name string) (*model.User, error) {
	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return nil, ErrLoginPending
	}
	s.pending = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.pending = false
		s.mu.Unlock()
	}()

	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %s", model.ErrAuth, ctx.Err())
	}

	u := &model.User{
		ID:        s.gen.NewID(),
		Email:     email,
		Name:      name,
		CreatedAt: s.gen.Now(),
	}
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
	s.log.Info().Str("email", email).Msg("session established")
	return u, nil
}

// Logout clears the session synchronously.
func (s *Service) Logout() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	s.log.Info().Msg("session cleared")
}

// Current returns the signed-in user, if any.
func (s *Service) Current() (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

// Authenticated reports whether a session exists.
func (s *Service) Authenticated() bool {
	_, ok := s.Current()
	return ok
}

// Resolve applies the redirect-on-mismatch rule: unauthenticated requests
// for the app zone land in the auth zone, and authenticated requests for the
// auth zone land in the app zone.
func (s *Service) Resolve(target Zone) Zone {
	authed := s.Authenticated()
	switch {
	case target == ZoneApp && !authed:
		return ZoneAuth
	case target == ZoneAuth && authed:
		return ZoneApp
	default:
		return target
	}
}
