package models

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSearchStateDefaults(t *testing.T) {
	assert.Equal(t, "React", NewSearchState("").Term())
	assert.Equal(t, "Redux", NewSearchState("Redux").Term())
}

func TestSearchStateSetRoundTrip(t *testing.T) {
	st := NewSearchState("")

	for _, v := range []string{"redux", "", "  spaced  ", "ünïcode", "React"} {
		st.Set(v)
		assert.Equal(t, v, st.Term())
	}
}

func TestSearchStatesPerSession(t *testing.T) {
	reg := NewSearchStates("")

	a := reg.For("session-a")
	b := reg.For("session-b")
	assert.Equal(t, 2, reg.Len())
	assert.Same(t, a, reg.For("session-a"))

	a.Set("redux")
	assert.Equal(t, "redux", reg.For("session-a").Term())
	assert.Equal(t, "React", b.Term(), "sessions must not share search text")

	reg.Drop("session-a")
	assert.Equal(t, 1, reg.Len())
	assert.Equal(t, "React", reg.For("session-a").Term(), "remount starts from the default")
}

func TestSearchStatesCustomDefault(t *testing.T) {
	reg := NewSearchStates("Redux")
	assert.Equal(t, "Redux", reg.For("x").Term())
}

func TestSearchStatesConcurrentMount(t *testing.T) {
	reg := NewSearchStates("")

	var wg sync.WaitGroup
	got := make([]*SearchState, 16)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = reg.For("same")
		}(i)
	}
	wg.Wait()

	for _, st := range got {
		assert.Same(t, got[0], st)
	}
	assert.Equal(t, 1, reg.Len())
}

func TestSearchStatesSweepDropsIdleSessions(t *testing.T) {
	reg := NewSearchStates("")
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	reg.now = func() time.Time { return clock }

	// Cookieless clients each mount a state that nobody comes back to
	for i := 0; i < 500; i++ {
		reg.For(fmt.Sprintf("anon-%d", i))
	}
	active := reg.For("active")
	active.Set("redux")
	assert.Equal(t, 501, reg.Len())

	clock = clock.Add(20 * time.Minute)
	reg.For("active") // still in use
	assert.Equal(t, 0, reg.Sweep(30*time.Minute), "nothing is idle long enough yet")

	clock = clock.Add(15 * time.Minute)
	assert.Equal(t, 500, reg.Sweep(30*time.Minute))
	assert.Equal(t, 1, reg.Len())
	assert.Same(t, active, reg.For("active"))
	assert.Equal(t, "redux", active.Term())
}

func TestSearchStatesSweeper(t *testing.T) {
	reg := NewSearchStates("")
	reg.For("idle")

	stop := reg.StartSweeper(20 * time.Millisecond)
	defer stop()

	assert.Eventually(t, func() bool { return reg.Len() == 0 },
		time.Second, 5*time.Millisecond, "idle state should be swept")

	stop()
	stop() // safe to call twice
}

func TestSearchStatesSweeperDisabled(t *testing.T) {
	reg := NewSearchStates("")
	reg.For("kept")

	stop := reg.StartSweeper(0)
	stop()
	assert.Equal(t, 1, reg.Len())
}
