package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/homemanager/homemanager/internal/model"
)

type fixedGen struct {
	n int
	t time.Time
}

func (g *fixedGen) NewID() string  { g.n++; return fmt.Sprintf("u-%d", g.n) }
func (g *fixedGen) Now() time.Time { return g.t }

func newService(delay time.Duration) *Service {
	gen := &fixedGen{t: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	return NewService(gen, delay, zerolog.Nop())
}

func TestLoginFabricatesUserFromEmail(t *testing.T) {
	s := newService(0)
	u, err := s.Login(context.Background(), "alex.smith@example.com", "whatever")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.Name != "alex.smith" {
		t.Fatalf("expected name from email local part, got %q", u.Name)
	}
	if u.Email != "alex.smith@example.com" || u.ID == "" {
		t.Fatalf("unexpected user: %+v", u)
	}
	cur, ok := s.Current()
	if !ok || cur.ID != u.ID {
		t.Fatalf("session not established: %+v, %v", cur, ok)
	}
}

func TestLoginRejectsBadEmail(t *testing.T) {
	s := newService(0)
	if _, err := s.Login(context.Background(), "not-an-email", "x"); !errors.Is(err, model.ErrAuth) {
		t.Fatalf("expected auth error, got %v", err)
	}
	if s.Authenticated() {
		t.Fatal("failed login must not establish a session")
	}
}

func TestRegisterRequiresName(t *testing.T) {
	s := newService(0)
	if _, err := s.Register(context.Background(), "a@b.com", "x", "  "); !errors.Is(err, model.ErrAuth) {
		t.Fatalf("expected auth error, got %v", err)
	}
	u, err := s.Register(context.Background(), "a@b.com", "x", "Alex")
	if err != nil || u.Name != "Alex" {
		t.Fatalf("register: %+v, %v", u, err)
	}
}

func TestConcurrentLoginIsRejectedWhilePending(t *testing.T) {
	s := newService(200 * time.Millisecond)

	var wg sync.WaitGroup
	wg.Add(1)
	started := make(chan struct{})
	go func() {
		defer wg.Done()
		close(started)
		if _, err := s.Login(context.Background(), "first@example.com", "x"); err != nil {
			t.Errorf("first login: %v", err)
		}
	}()

	<-started
	time.Sleep(50 * time.Millisecond)
	_, err := s.Login(context.Background(), "second@example.com", "x")
	if !errors.Is(err, ErrLoginPending) {
		t.Fatalf("expected pending rejection, got %v", err)
	}
	wg.Wait()

	cur, ok := s.Current()
	if !ok || cur.Email != "first@example.com" {
		t.Fatalf("expected the first login to win: %+v, %v", cur, ok)
	}
}

func TestLoginHonorsContextCancellation(t *testing.T) {
	s := newService(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	if _, err := s.Login(ctx, "a@b.com", "x"); !errors.Is(err, model.ErrAuth) {
		t.Fatalf("expected auth error on cancellation, got %v", err)
	}
	if s.Authenticated() {
		t.Fatal("cancelled login must not establish a session")
	}
}

func TestLogoutClearsSessionImmediately(t *testing.T) {
	s := newService(0)
	if _, err := s.Login(context.Background(), "a@b.com", "x"); err != nil {
		t.Fatalf("login: %v", err)
	}
	s.Logout()
	if s.Authenticated() {
		t.Fatal("session survived logout")
	}
}

func TestResolveRedirectsOnMismatch(t *testing.T) {
	s := newService(0)
	if got := s.Resolve(ZoneApp); got != ZoneAuth {
		t.Fatalf("signed out + app: got %q", got)
	}
	if got := s.Resolve(ZoneAuth); got != ZoneAuth {
		t.Fatalf("signed out + auth: got %q", got)
	}
	s.Login(context.Background(), "a@b.com", "x")
	if got := s.Resolve(ZoneAuth); got != ZoneApp {
		t.Fatalf("signed in + auth: got %q", got)
	}
	if got := s.Resolve(ZoneApp); got != ZoneApp {
		t.Fatalf("signed in + app: got %q", got)
	}
}
