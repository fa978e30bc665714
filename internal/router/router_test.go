package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ankitha/wordrow/internal/screen"
)

type fakeScreen struct {
	name     string
	inited   bool
	received []tea.Msg
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inited = true
	return nil
}

func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	f.received = append(f.received, msg)
	return f, nil
}

func (f *fakeScreen) View(int, int) string { return f.name }
func (f *fakeScreen) Title() string        { return f.name }

func top(t *testing.T, r *Router) string {
	t.Helper()
	if r.Active() == nil {
		t.Fatal("empty stack")
	}
	return r.Active().Title()
}

func TestNavigation(t *testing.T) {
	base := &fakeScreen{name: "base"}
	r := New(base)

	pushed := &fakeScreen{name: "pushed"}
	r.Update(PushScreenMsg{Screen: pushed})
	if !pushed.inited {
		t.Error("pushed screen was not initialized")
	}
	if got := top(t, r); got != "pushed" || r.Depth() != 2 {
		t.Fatalf("after push: top=%q depth=%d", got, r.Depth())
	}

	swapped := &fakeScreen{name: "swapped"}
	r.Update(ReplaceScreenMsg{Screen: swapped})
	if !swapped.inited {
		t.Error("replacement screen was not initialized")
	}
	if got := top(t, r); got != "swapped" || r.Depth() != 2 {
		t.Fatalf("after replace: top=%q depth=%d", got, r.Depth())
	}

	r.Update(PopScreenMsg{})
	if got := top(t, r); got != "base" || r.Depth() != 1 {
		t.Fatalf("after pop: top=%q depth=%d", got, r.Depth())
	}
}

func TestPopKeepsBottomScreen(t *testing.T) {
	r := New(&fakeScreen{name: "base"})
	r.Pop()
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("Depth = %d, want 1", r.Depth())
	}
	if got := top(t, r); got != "base" {
		t.Errorf("top = %q, want base", got)
	}
}

func TestReplaceOnEmptyStackPushes(t *testing.T) {
	r := &Router{}
	s := &fakeScreen{name: "solo"}
	r.Replace(s)
	if r.Depth() != 1 || !s.inited {
		t.Errorf("Depth = %d, inited = %v", r.Depth(), s.inited)
	}
}

func TestUpdateForwardsToActiveScreenOnly(t *testing.T) {
	below := &fakeScreen{name: "below"}
	above := &fakeScreen{name: "above"}
	r := New(below)
	r.Push(above)

	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})

	if len(below.received) != 0 {
		t.Errorf("covered screen received %d messages", len(below.received))
	}
	if len(above.received) != 1 {
		t.Errorf("active screen received %d messages, want 1", len(above.received))
	}
}
