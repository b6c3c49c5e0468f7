package nav

import (
	"slices"
	"testing"

	"pgregory.net/rapid"

	"github.com/zjrosen/berth/internal/catalog"
)

// navMachine drives a Controller with random selections and checks it against
// a trivial model: the last successfully selected key.
type navMachine struct {
	c      *Controller
	keys   []catalog.Key
	active catalog.Key
}

func (m *navMachine) Select(t *rapid.T) {
	key := rapid.SampledFrom(m.keys).Draw(t, "key")
	if err := m.c.Select(key); err != nil {
		t.Fatalf("select %q: %v", key, err)
	}
	m.active = key
}

func (m *navMachine) SelectInvalid(t *rapid.T) {
	key := catalog.Key(rapid.StringMatching(`[A-Z]{1,6}`).Draw(t, "invalid"))
	if err := m.c.Select(key); err == nil {
		t.Fatalf("select %q: expected error", key)
	}
}

func (m *navMachine) Step(t *rapid.T) {
	delta := rapid.IntRange(-5, 5).Draw(t, "delta")
	m.c.Step(delta)
	i := slices.Index(m.keys, m.active)
	n := len(m.keys)
	m.active = m.keys[((i+delta)%n+n)%n]
}

func (m *navMachine) Check(t *rapid.T) {
	if got := m.c.Active(); got != m.active {
		t.Fatalf("active = %q, want %q", got, m.active)
	}
	if !slices.Equal(m.c.Keys(), m.keys) {
		t.Fatalf("keys changed: %v", m.c.Keys())
	}
	if _, err := m.c.Render(); err != nil {
		t.Fatalf("render %q: %v", m.active, err)
	}
}

func TestController_StateMachine(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.SliceOfNDistinct(rapid.StringMatching(`[a-z]{1,8}`), 1, 12, rapid.ID[string]).Draw(t, "keys")

		b := catalog.NewBuilder()
		keys := make([]catalog.Key, len(raw))
		for i, k := range raw {
			keys[i] = catalog.Key(k)
			if err := b.Register(keys[i], "", nil); err != nil {
				t.Fatalf("register: %v", err)
			}
		}
		reg, err := b.Build()
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		c, err := New(reg)
		if err != nil {
			t.Fatalf("new: %v", err)
		}

		m := &navMachine{c: c, keys: keys, active: keys[0]}
		t.Repeat(rapid.StateMachineActions(m))
	})
}
