package game

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/fantasyquest/internal/config"
	"github.com/samdwyer/fantasyquest/internal/gamedata"
	"github.com/samdwyer/fantasyquest/internal/ui"
)

// post delivers ev, retrying while the event queue is full.
func post(t *testing.T, sim tcell.SimulationScreen, ev tcell.Event) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for sim.PostEvent(ev) != nil {
		if time.Now().After(deadline) {
			t.Fatal("event queue stayed full")
		}
		time.Sleep(time.Millisecond)
	}
}

func typeLine(t *testing.T, sim tcell.SimulationScreen, text string) {
	t.Helper()
	for _, r := range text {
		post(t, sim, tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	post(t, sim, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
}

// screenContains reports whether any row of the screen contains text.
func screenContains(sim tcell.SimulationScreen, text string) bool {
	w, h := sim.Size()
	for y := 0; y < h; y++ {
		var row strings.Builder
		for x := 0; x < w; x++ {
			r, comb, _, _ := sim.GetContent(x, y)
			if r == 0 {
				r = ' '
			}
			row.WriteRune(r)
			row.WriteString(string(comb))
		}
		if strings.Contains(row.String(), text) {
			return true
		}
	}
	return false
}

func TestDefeatKeepsGameOverOnScreen(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := ui.NewScreenFrom(sim)
	require.NoError(t, err)
	sim.SetSize(80, 24)
	t.Cleanup(screen.Close)

	// Dragon; every attack rolls 15 and every retaliation 30.
	q := queue{3, 0, 25, 0, 25, 0, 25, 0, 25}
	g := New(config.GameConfig{Seed: 1}, ui.NewConsole(screen),
		gamedata.MustLoadEnemyRegistry(), gamedata.MustLoadItemRegistry(), WithSource(&q))

	done := make(chan error, 1)
	go func() { done <- g.Run(context.Background()) }()

	for _, line := range []string{"Kai", "explore", "attack", "attack", "attack", "attack"} {
		typeLine(t, sim, line)
	}

	require.Eventually(t, func() bool { return screenContains(sim, exitPrompt) },
		5*time.Second, 10*time.Millisecond, "session waits for a key after defeat")
	assert.True(t, screenContains(sim, "Game Over!"))
	assert.True(t, screenContains(sim, "Your adventure ends here, Kai..."))

	post(t, sim, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("session did not end after the key press")
	}

	assert.Equal(t, StateQuit, g.State())
	assert.True(t, screenContains(sim, "Your adventure ends here, Kai..."), "panel stays after the session ends")
	assert.False(t, screenContains(sim, exitPrompt))
}

func TestQuitKeepsFarewellOnScreen(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := ui.NewScreenFrom(sim)
	require.NoError(t, err)
	sim.SetSize(80, 24)
	t.Cleanup(screen.Close)

	g := New(config.GameConfig{Seed: 1}, ui.NewConsole(screen),
		gamedata.MustLoadEnemyRegistry(), gamedata.MustLoadItemRegistry())

	done := make(chan error, 1)
	go func() { done <- g.Run(context.Background()) }()

	typeLine(t, sim, "Kai")
	typeLine(t, sim, "quit")

	require.Eventually(t, func() bool { return screenContains(sim, exitPrompt) },
		5*time.Second, 10*time.Millisecond)
	assert.True(t, screenContains(sim, "Thanks for playing!"))

	post(t, sim, tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("session did not end after the key press")
	}
	assert.True(t, screenContains(sim, "Thanks for playing!"))
}
