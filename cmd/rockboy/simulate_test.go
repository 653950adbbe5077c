package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rock-boy/internal/core"
	"github.com/vovakirdan/rock-boy/internal/games/rockboy"
)

func TestParseScript(t *testing.T) {
	steps, err := parseScript(" right:120, right+jump:10 ,idle:5")
	require.NoError(t, err)
	require.Len(t, steps, 3)

	assert.Equal(t, []core.Action{core.ActionRight}, steps[0].Actions)
	assert.Equal(t, 120, steps[0].Ticks)
	assert.Equal(t, []core.Action{core.ActionRight, core.ActionJump}, steps[1].Actions)
	assert.Empty(t, steps[2].Actions)
	assert.Equal(t, 5, steps[2].Ticks)

	steps, err = parseScript("")
	require.NoError(t, err)
	assert.Nil(t, steps)
}

func TestParseScriptErrors(t *testing.T) {
	for _, s := range []string{"right", "right:0", "right:x", "fly:3", "left:-1"} {
		_, err := parseScript(s)
		assert.Error(t, err, s)
	}
}

func newSimGame(seed int64) *rockboy.Game {
	g := rockboy.New(false)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func TestSimulateDeterministic(t *testing.T) {
	script, err := parseScript("right:90,right+jump:15,left:40")
	require.NoError(t, err)

	a := newSimGame(42)
	b := newSimGame(42)
	ra := simulate(a, script, 300)
	rb := simulate(b, script, 300)

	assert.Equal(t, 300, ra.Ticks)
	assert.Equal(t, ra, rb)
	assert.Equal(t, a.Sim().Body().X, b.Sim().Body().X)
	assert.Equal(t, a.Sim().Body().Y, b.Sim().Body().Y)
}

func TestSimulateScriptMovesRock(t *testing.T) {
	script, err := parseScript("right:60")
	require.NoError(t, err)

	g := newSimGame(3)
	startX := g.Sim().Body().X
	simulate(g, script, 60)
	assert.Greater(t, g.Sim().Body().X, startX)
}

func TestPrintSimSummary(t *testing.T) {
	g := newSimGame(9)
	res := simulate(g, nil, 10)

	var buf bytes.Buffer
	printSimSummary(&buf, g, 9, res)
	out := buf.String()
	assert.Contains(t, out, "Super Rock Boy")
	assert.Contains(t, out, "Ticks:       10")
	assert.Contains(t, out, "Seed:        9")
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, l)

	_, err = newLogger("loud")
	assert.Error(t, err)
}
