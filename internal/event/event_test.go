package event

import (
	"testing"

	"go-survivors/internal/types"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatcherRoutesByType(t *testing.T) {
	d := NewDispatcher()
	dmg := &recorder{}
	lvl := &recorder{}
	d.Subscribe(DamageDealt, dmg)
	d.Subscribe(LevelUp, lvl)

	d.Dispatch(Event{Type: DamageDealt, Data: DamageEvent{Amount: 5}})
	d.Dispatch(Event{Type: PlayerDied})

	assert.Len(t, dmg.got, 1)
	assert.Empty(t, lvl.got)
	assert.Equal(t, 5.0, dmg.got[0].Data.(DamageEvent).Amount)
}

func TestDispatcherUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(LevelUp, r)
	d.Unsubscribe(LevelUp, r)
	d.Dispatch(Event{Type: LevelUp})
	assert.Empty(t, r.got)
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	fn := ListenerFunc(func(Event) { calls++ })
	d.Subscribe(PlayerDied, fn)
	d.Dispatch(Event{Type: PlayerDied})
	assert.Equal(t, 1, calls)

	// Отписка функции не паникует и ничего не делает.
	other := &recorder{}
	d.Subscribe(PlayerDied, other)
	assert.NotPanics(t, func() { d.Unsubscribe(PlayerDied, fn) })
	assert.NotPanics(t, func() { d.Unsubscribe(PlayerDied, other) })
	d.Dispatch(Event{Type: PlayerDied})
	assert.Equal(t, 2, calls)
	assert.Empty(t, other.got)
}

func TestSubscribeAll(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r, LevelUp, PlayerDied)
	d.Dispatch(Event{Type: LevelUp})
	d.Dispatch(Event{Type: PlayerDied})
	d.Dispatch(Event{Type: DamageDealt})
	assert.Len(t, r.got, 2)
}

func TestQueuesReset(t *testing.T) {
	q := NewQueues()
	assert.True(t, q.Empty())
	q.Damage = append(q.Damage, DamageEvent{Target: types.EntityID{Index: 1, Generation: 1}, Amount: 3})
	q.Death = append(q.Death, DeathEvent{})
	q.LevelUp = append(q.LevelUp, LevelUpEvent{})
	assert.False(t, q.Empty())

	q.Reset()
	assert.True(t, q.Empty())
}
