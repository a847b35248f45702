package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/arnavj/mathsprint/internal/screen"
)

type fakeScreen struct {
	name     string
	inits    int
	lastMsg  tea.Msg
	received int
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inits++
	return nil
}

func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	f.lastMsg = msg
	f.received++
	return f, nil
}

func (f *fakeScreen) View(int, int) string { return f.name }
func (f *fakeScreen) Title() string        { return f.name }

func active(t *testing.T, r *Router) *fakeScreen {
	t.Helper()
	s, ok := r.Active().(*fakeScreen)
	if !ok {
		t.Fatalf("active screen is %T", r.Active())
	}
	return s
}

func TestPushAndPop(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)

	next := &fakeScreen{name: "map"}
	r.Push(next)
	if r.Depth() != 2 || active(t, r) != next {
		t.Fatalf("after push: depth %d, active %s", r.Depth(), active(t, r).name)
	}
	if next.inits != 1 {
		t.Errorf("pushed screen initialized %d times, want 1", next.inits)
	}

	r.Pop()
	if r.Depth() != 1 || active(t, r) != home {
		t.Fatalf("after pop: depth %d, active %s", r.Depth(), active(t, r).name)
	}
}

func TestPopKeepsLastScreen(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)

	r.Pop()
	r.Pop()
	if r.Depth() != 1 || active(t, r) != home {
		t.Fatalf("root screen gone: depth %d", r.Depth())
	}
}

func TestReplaceSwapsInPlace(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.Push(&fakeScreen{name: "quiz"})

	results := &fakeScreen{name: "results"}
	r.Replace(results)

	if r.Depth() != 2 {
		t.Errorf("depth = %d after replace, want 2", r.Depth())
	}
	if active(t, r) != results {
		t.Errorf("active = %s, want results", active(t, r).name)
	}
	if results.inits != 1 {
		t.Errorf("replacement initialized %d times, want 1", results.inits)
	}

	// The quiz screen is gone: popping lands back on home.
	r.Pop()
	if got := active(t, r).name; got != "home" {
		t.Errorf("after pop: active = %s, want home", got)
	}
}

func TestNavigationMessages(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)

	pushed := &fakeScreen{name: "shop"}
	r.Update(PushScreenMsg{Screen: pushed})
	if active(t, r) != pushed || pushed.inits != 1 {
		t.Fatalf("PushScreenMsg not applied: active %s inits %d", active(t, r).name, pushed.inits)
	}

	swapped := &fakeScreen{name: "summary"}
	r.Update(ReplaceScreenMsg{Screen: swapped})
	if active(t, r) != swapped || r.Depth() != 2 {
		t.Fatalf("ReplaceScreenMsg not applied: active %s depth %d", active(t, r).name, r.Depth())
	}

	r.Update(PopScreenMsg{})
	if active(t, r) != home {
		t.Fatalf("PopScreenMsg not applied: active %s", active(t, r).name)
	}
}

func TestUpdateReachesOnlyActiveScreen(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)
	top := &fakeScreen{name: "map"}
	r.Push(top)

	msg := tea.WindowSizeMsg{Width: 80, Height: 24}
	r.Update(msg)

	if top.received != 1 || top.lastMsg != msg {
		t.Errorf("active screen saw %d messages, last %v", top.received, top.lastMsg)
	}
	if home.received != 0 {
		t.Errorf("buried screen saw %d messages, want 0", home.received)
	}
}
