package hotkey

import (
	"fmt"
	"io"
	"log/slog"
	"testing"
)

// fakeService records registrations and revocations.
type fakeService struct {
	next         int
	registered   map[Token]Binding
	unregistered []Token
}

func newFakeService() *fakeService {
	return &fakeService{registered: make(map[Token]Binding)}
}

func (s *fakeService) Register(b Binding) Token {
	s.next++
	token := Token(fmt.Sprintf("tok-%d", s.next))
	s.registered[token] = b
	return token
}

func (s *fakeService) Unregister(token Token) {
	delete(s.registered, token)
	s.unregistered = append(s.unregistered, token)
}

// fire simulates a key press against the live bindings.
func (s *fakeService) fire(key string) int {
	fired := 0
	for _, b := range s.registered {
		if b.Key != key {
			continue
		}
		if b.When != nil && !b.When() {
			continue
		}
		b.Action()
		fired++
	}
	return fired
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBinderBindAndTrigger(t *testing.T) {
	svc := newFakeService()
	b := NewBinder(svc, testLogger())

	var activated string
	b.Bind("v", "select", func() bool { return true }, func() { activated = "select" })

	if got := svc.fire("v"); got != 1 {
		t.Fatalf("fired %d bindings, want 1", got)
	}
	if activated != "select" {
		t.Errorf("action activated %q, want %q", activated, "select")
	}

	binding := func() Binding {
		for _, bd := range svc.registered {
			return bd
		}
		return Binding{}
	}()
	if binding.ActionName != "tool.switch.select" {
		t.Errorf("ActionName = %q, want %q", binding.ActionName, "tool.switch.select")
	}
}

// The enabled-set predicate is evaluated when the key fires, not when the
// binding is registered.
func TestBinderPredicateEvaluatedAtTriggerTime(t *testing.T) {
	svc := newFakeService()
	b := NewBinder(svc, testLogger())

	enabled := false
	fired := 0
	b.Bind("r", "rect", func() bool { return enabled }, func() { fired++ })

	if svc.fire("r"); fired != 0 {
		t.Fatal("binding fired while disabled")
	}

	enabled = true
	if svc.fire("r"); fired != 1 {
		t.Fatalf("binding fired %d times after enabling, want 1", fired)
	}
}

func TestBinderEmptyKeyIgnored(t *testing.T) {
	svc := newFakeService()
	b := NewBinder(svc, testLogger())

	b.Bind("", "select", nil, func() {})

	if len(svc.registered) != 0 {
		t.Error("empty key produced a registration")
	}
}

// Duplicate keys are tolerated: both bindings stay live and fire
// independently.
func TestBinderDuplicateKeyBothLive(t *testing.T) {
	svc := newFakeService()
	b := NewBinder(svc, testLogger())

	var order []string
	b.Bind("p", "pen", func() bool { return true }, func() { order = append(order, "pen") })
	b.Bind("p", "path", func() bool { return true }, func() { order = append(order, "path") })

	if got := svc.fire("p"); got != 2 {
		t.Fatalf("fired %d bindings for duplicate key, want 2", got)
	}

	// Bindings reports the last registration for the colliding key.
	if got := b.Bindings()["p"]; got != "path" {
		t.Errorf("Bindings()[p] = %q, want %q", got, "path")
	}
}

func TestBinderUnbindAll(t *testing.T) {
	svc := newFakeService()
	b := NewBinder(svc, testLogger())

	b.Bind("v", "select", nil, func() {})
	b.Bind("r", "rect", nil, func() {})

	b.UnbindAll()

	if len(svc.registered) != 0 {
		t.Errorf("%d bindings still registered after UnbindAll", len(svc.registered))
	}
	if len(svc.unregistered) != 2 {
		t.Errorf("unregistered %d tokens, want 2", len(svc.unregistered))
	}
	if len(b.Bindings()) != 0 {
		t.Error("Bindings() not empty after UnbindAll")
	}

	// Idempotent.
	b.UnbindAll()
	if len(svc.unregistered) != 2 {
		t.Error("second UnbindAll revoked tokens again")
	}
}
