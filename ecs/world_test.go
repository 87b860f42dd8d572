package ecs

import (
	"testing"

	"github.com/yumeututucosmology/RPG-sub000/ecs/component"
)

type hitPoints struct{ Value int }
type label struct{ Name string }
type marker struct{}

var (
	hpKind     = component.NewComponentKind[hitPoints]()
	labelKind  = component.NewComponentKind[label]()
	markerKind = component.NewComponentKind[marker]()
)

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name    string
		create  int
		destroy int // -1 = none
	}{
		{"single", 1, 0},
		{"destroy_middle", 3, 1},
		{"keep_all", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				e := CreateEntity(w)
				if !e.Valid() {
					t.Fatalf("entity %d should be valid", i)
				}
				ents = append(ents, e)
			}
			if got := len(Entities(w)); got != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, got)
			}
			if c.destroy < 0 {
				return
			}
			if !DestroyEntity(w, ents[c.destroy]) {
				t.Fatalf("DestroyEntity should succeed for a live entity")
			}
			if IsAlive(w, ents[c.destroy]) {
				t.Fatalf("entity should be dead after destroy")
			}
			if DestroyEntity(w, ents[c.destroy]) {
				t.Fatalf("second destroy should report false")
			}
			if got := len(Entities(w)); got != c.create-1 {
				t.Fatalf("expected %d entities after destroy, got %d", c.create-1, got)
			}
		})
	}
}

func TestStaleHandleAfterReuse(t *testing.T) {
	w := NewWorld()
	old := CreateEntity(w)
	if err := Add(w, old, hpKind, &hitPoints{Value: 3}); err != nil {
		t.Fatalf("add: %v", err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh == old {
		t.Fatalf("reused slot should carry a new generation, got %s twice", fresh)
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle %s should not be alive", old)
	}
	if _, ok := Get(w, fresh, hpKind); ok {
		t.Fatalf("components of the destroyed entity leaked into %s", fresh)
	}
	if err := Add(w, old, hpKind, &hitPoints{}); err != ErrEntityNotAlive {
		t.Fatalf("add on stale handle: expected ErrEntityNotAlive, got %v", err)
	}
}

func TestComponentAddGetRemove(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	if err := Add[hitPoints](w, e, hpKind, nil); err != ErrNilComponent {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	if err := Add(w, e, component.ComponentKind[hitPoints]{}, &hitPoints{}); err != ErrInvalidKind {
		t.Fatalf("expected ErrInvalidKind, got %v", err)
	}

	if err := Add(w, e, hpKind, &hitPoints{Value: 5}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := Add(w, e, hpKind, &hitPoints{Value: 9}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	hp, ok := Get(w, e, hpKind)
	if !ok || hp.Value != 9 {
		t.Fatalf("expected replaced value 9, got %+v ok=%v", hp, ok)
	}
	if Count(w, hpKind) != 1 {
		t.Fatalf("replace should not grow the store, count=%d", Count(w, hpKind))
	}
	if Has(w, e, labelKind) {
		t.Fatalf("entity should not have a label")
	}
	if !Remove(w, e, hpKind) {
		t.Fatalf("remove should report true")
	}
	if Remove(w, e, hpKind) {
		t.Fatalf("second remove should report false")
	}
	if Has(w, e, hpKind) {
		t.Fatalf("component should be gone")
	}
}

func TestQueries(t *testing.T) {
	w := NewWorld()
	hero := CreateEntity(w)
	villager := CreateEntity(w)
	rock := CreateEntity(w)

	mustAdd(t, w, hero, hpKind, &hitPoints{Value: 10})
	mustAdd(t, w, hero, labelKind, &label{Name: "hero"})
	mustAdd(t, w, hero, markerKind, &marker{})
	mustAdd(t, w, villager, hpKind, &hitPoints{Value: 4})
	mustAdd(t, w, villager, labelKind, &label{Name: "villager"})
	mustAdd(t, w, rock, labelKind, &label{Name: "rock"})

	cases := []struct {
		name string
		run  func() map[Entity]struct{}
		want []Entity
	}{
		{"one_kind", func() map[Entity]struct{} {
			got := map[Entity]struct{}{}
			ForEach(w, labelKind, func(e Entity, _ *label) { got[e] = struct{}{} })
			return got
		}, []Entity{hero, villager, rock}},
		{"two_kinds", func() map[Entity]struct{} {
			got := map[Entity]struct{}{}
			ForEach2(w, hpKind, labelKind, func(e Entity, _ *hitPoints, _ *label) { got[e] = struct{}{} })
			return got
		}, []Entity{hero, villager}},
		{"three_kinds", func() map[Entity]struct{} {
			got := map[Entity]struct{}{}
			ForEach3(w, hpKind, labelKind, markerKind, func(e Entity, _ *hitPoints, _ *label, _ *marker) { got[e] = struct{}{} })
			return got
		}, []Entity{hero}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.run()
			if len(got) != len(c.want) {
				t.Fatalf("expected %d matches, got %d", len(c.want), len(got))
			}
			for _, e := range c.want {
				if _, ok := got[e]; !ok {
					t.Fatalf("missing %s", e)
				}
			}
		})
	}

	e, lbl, ok := First(w, markerKind)
	if !ok || e != hero || lbl == nil {
		t.Fatalf("First(marker) = %s ok=%v, want hero", e, ok)
	}

	DestroyEntity(w, hero)
	if _, _, ok := First(w, markerKind); ok {
		t.Fatalf("destroying hero should empty the marker store")
	}
	if Count(w, labelKind) != 2 {
		t.Fatalf("expected 2 labels left, got %d", Count(w, labelKind))
	}
}

type recordingSystem struct {
	name  string
	trace *[]string
	push  bool
}

func (s *recordingSystem) Update(w *World, _ float64) {
	*s.trace = append(*s.trace, s.name)
	if s.push {
		w.Events().Push(Event{Type: EventSound})
	}
}

func TestSchedulerOrderAndEventFlush(t *testing.T) {
	w := NewWorld()
	var trace []string
	seen := -1
	s := NewScheduler(
		&recordingSystem{name: "input", trace: &trace},
		&recordingSystem{name: "move", trace: &trace, push: true},
	)
	s.Add(nil)
	s.Add(systemFunc(func(w *World, _ float64) {
		trace = append(trace, "audio")
		seen = w.Events().Len()
	}))

	s.Update(w, 1.0/60)

	want := []string{"input", "move", "audio"}
	if len(trace) != len(want) {
		t.Fatalf("trace = %v, want %v", trace, want)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Fatalf("trace = %v, want %v", trace, want)
		}
	}
	if seen != 1 {
		t.Fatalf("audio should see the queued event, saw %d", seen)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("queue should be flushed after the tick")
	}
	if len(s.Systems()) != 3 {
		t.Fatalf("expected 3 systems, got %d", len(s.Systems()))
	}
}

type systemFunc func(w *World, dt float64)

func (f systemFunc) Update(w *World, dt float64) { f(w, dt) }

func mustAdd[T any](t *testing.T, w *World, e Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := Add(w, e, kind, v); err != nil {
		t.Fatalf("add %s to %s: %v", kind, e, err)
	}
}
