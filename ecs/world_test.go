package ecs

import (
	"testing"

	"github.com/milk9111/dungeonroom/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld(nil)
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			require.Len(t, Entities(w), c.create)

			if c.destroyIndex >= 0 {
				require.True(t, DestroyEntity(w, ents[c.destroyIndex]))
				assert.False(t, IsAlive(w, ents[c.destroyIndex]))
				assert.False(t, DestroyEntity(w, ents[c.destroyIndex]), "second destroy is a no-op")
				assert.Len(t, Entities(w), c.create-1)
			}
		})
	}
}

func TestRecycledEntityDoesNotAlias(t *testing.T) {
	w := NewWorld(nil)
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	v := 1
	require.NoError(t, Add(w, old, h.Kind(), &v))
	require.True(t, DestroyEntity(w, old))

	reused := CreateEntity(w)
	assert.Equal(t, old.id(), reused.id(), "slot is recycled")
	assert.NotEqual(t, old, reused)
	assert.False(t, IsAlive(w, old))
	assert.False(t, Has(w, reused, h.Kind()))

	_, ok := Get(w, old, h.Kind())
	assert.False(t, ok)
	assert.ErrorIs(t, Add(w, old, h.Kind(), &v), component.ErrEntityNotAlive)
}

func TestComponentAccessors(t *testing.T) {
	w := NewWorld(nil)
	ints := component.NewComponent[int]()
	names := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	one, two := 1, 2
	name := "blob"
	require.NoError(t, Add(w, e1, ints.Kind(), &one))
	require.NoError(t, Add(w, e2, ints.Kind(), &two))
	require.NoError(t, Add(w, e2, names.Kind(), &name))

	got, ok := Get(w, e2, ints.Kind())
	require.True(t, ok)
	assert.Equal(t, 2, *got)
	*got = 20
	got, _ = Get(w, e2, ints.Kind())
	assert.Equal(t, 20, *got, "Get returns the stored pointer")

	assert.Equal(t, 2, Count(w, ints.Kind()))
	assert.Equal(t, 1, Count(w, names.Kind()))
	assert.ElementsMatch(t, []Entity{e1, e2}, Query(w, ints.Kind()))

	var both []Entity
	ForEach2(w, ints.Kind(), names.Kind(), func(e Entity, _ *int, n *string) {
		both = append(both, e)
		assert.Equal(t, "blob", *n)
	})
	assert.Equal(t, []Entity{e2}, both)

	first, ok := First(w, names.Kind())
	require.True(t, ok)
	assert.Equal(t, e2, first)

	assert.True(t, Remove(w, e2, names.Kind()))
	assert.False(t, Remove(w, e2, names.Kind()))
	_, ok = First(w, names.Kind())
	assert.False(t, ok)
}

func TestAddErrors(t *testing.T) {
	w := NewWorld(nil)
	e := CreateEntity(w)
	v := 1

	assert.ErrorIs(t, Add(w, e, component.ComponentKind[int]{}, &v), component.ErrInvalidComponentKind)
	assert.ErrorIs(t, Add[int](w, e, component.NewComponent[int]().Kind(), nil), component.ErrNilComponent)
	assert.ErrorIs(t, Add(nil, e, component.NewComponent[int]().Kind(), &v), component.ErrEntityNotAlive)
}

func TestForEachToleratesDestroyDuringIteration(t *testing.T) {
	w := NewWorld(nil)
	h := component.NewComponent[int]()

	ents := make([]Entity, 4)
	for i := range ents {
		ents[i] = CreateEntity(w)
		v := i
		require.NoError(t, Add(w, ents[i], h.Kind(), &v))
	}

	var visited []int
	ForEach(w, h.Kind(), func(e Entity, v *int) {
		visited = append(visited, *v)
		if *v == 0 {
			DestroyEntity(w, ents[2])
			extra := CreateEntity(w)
			n := 99
			_ = Add(w, extra, h.Kind(), &n)
		}
	})

	assert.Equal(t, []int{0, 1, 3}, visited, "destroyed entities are skipped and new ones wait")
	assert.Equal(t, 4, Count(w, h.Kind()))
}

func TestEventQueue(t *testing.T) {
	w := NewWorld(nil)
	q := w.Events()
	q.Push(Event{Type: EventRoomLoaded, At: 1})
	q.Push(Event{Type: EventRoomCleared, At: 2})
	assert.Equal(t, 2, q.Len())

	events := q.Drain()
	require.Len(t, events, 2)
	assert.Equal(t, EventRoomLoaded, events[0].Type)
	assert.Zero(t, q.Len())
	assert.Nil(t, q.Drain())
}

func TestPipelineRunsInOrder(t *testing.T) {
	var order []string
	p := NewPipeline().
		Then("a", systemFunc(func(*World) { order = append(order, "a") })).
		Then("b", systemFunc(func(*World) { order = append(order, "b") })).
		Then("none", nil)

	p.Update(NewWorld(nil))
	assert.Equal(t, []string{"a", "b"}, order)
	assert.Equal(t, []string{"a", "b"}, p.Stages())
}

func TestPipelineHaltSkipsRemainingStages(t *testing.T) {
	var order []string
	halted := false
	p := NewPipeline().
		Then("hit", systemFunc(func(*World) {
			order = append(order, "hit")
			halted = true
		})).
		Then("after", systemFunc(func(*World) { order = append(order, "after") })).
		HaltWhen(func(*World) bool { return halted })

	w := NewWorld(nil)
	p.Update(w)
	p.Update(w)
	assert.Equal(t, []string{"hit"}, order)
}

type systemFunc func(*World)

func (f systemFunc) Update(w *World) { f(w) }
