package model

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stepOnce(t *testing.T, rows ...string) [][]bool {
	t.Helper()
	sim := NewSimulator(gridFromRows(t, rows...))
	sim.Step()
	return sim.Grid().Snapshot().Matrix()
}

func TestStepLonelyCellDies(t *testing.T) {
	got := stepOnce(t,
		"---",
		"-*-",
		"---",
	)
	want := matrix("---", "---", "---")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lonely cell (-want +got):\n%s", diff)
	}
}

func TestStepBlinker(t *testing.T) {
	got := stepOnce(t,
		"---",
		"***",
		"---",
	)
	want := matrix(
		"-*-",
		"-*-",
		"-*-",
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("blinker (-want +got):\n%s", diff)
	}
}

func TestStepBlockIsStill(t *testing.T) {
	rows := []string{
		"----",
		"-**-",
		"-**-",
		"----",
	}
	if diff := cmp.Diff(matrix(rows...), stepOnce(t, rows...)); diff != "" {
		t.Errorf("block (-want +got):\n%s", diff)
	}
}

func TestStepBirthAndDeath(t *testing.T) {
	// center has exactly 3 neighbors whether alive or dead
	for _, center := range []string{"-", "*"} {
		got := stepOnce(t,
			"*-*",
			"-"+center+"-",
			"*--",
		)
		assert.True(t, got[1][1], "center=%s with 3 neighbors must be alive", center)
	}

	// live center with 4 neighbors dies of overcrowding
	got := stepOnce(t,
		"*-*",
		"-*-",
		"*-*",
	)
	assert.False(t, got[1][1])

	// live center with 1 neighbor dies of loneliness
	got = stepOnce(t,
		"*--",
		"-*-",
		"---",
	)
	assert.False(t, got[1][1])
}

func TestStepGliderMoves(t *testing.T) {
	sim := NewSimulator(gridFromRows(t,
		"-*----",
		"--*---",
		"***---",
		"------",
		"------",
		"------",
	))
	for range 4 {
		sim.Step()
	}
	want := matrix(
		"------",
		"--*---",
		"---*--",
		"-***--",
		"------",
		"------",
	)
	if diff := cmp.Diff(want, sim.Grid().Snapshot().Matrix()); diff != "" {
		t.Errorf("glider after 4 steps (-want +got):\n%s", diff)
	}
}

func TestStepIsDeterministic(t *testing.T) {
	g, err := NewGrid(12, 17)
	require.NoError(t, err)
	g.SeedRandom(0.4, &seqSource{draws: []float64{0.1, 0.7, 0.3, 0.9, 0.2, 0.55, 0.05}})

	a := NewSimulator(g.Clone())
	b := NewSimulator(g.Clone())
	for range 5 {
		a.Step()
		b.Step()
	}
	assert.Empty(t, cmp.Diff(a.Grid().Snapshot().Matrix(), b.Grid().Snapshot().Matrix()))
}

func TestRunZero(t *testing.T) {
	g := gridFromRows(t, "---", "***", "---")
	before := g.Snapshot().Matrix()

	sim := NewSimulator(g)
	called := false
	sim.OnGeneration = func(int, Snapshot) { called = true }

	history := sim.Run(0)
	assert.Empty(t, history)
	assert.False(t, called)
	assert.Empty(t, cmp.Diff(before, g.Snapshot().Matrix()))

	assert.Empty(t, sim.Run(-3))
}

func TestRunCapturesBeforeEachStep(t *testing.T) {
	horizontal := matrix("---", "***", "---")
	vertical := matrix("-*-", "-*-", "-*-")

	sim := NewSimulator(gridFromRows(t, "---", "***", "---"))
	var generations []int
	sim.OnGeneration = func(generation int, _ Snapshot) {
		generations = append(generations, generation)
	}

	history := sim.Run(3)
	require.Len(t, history, 3)
	assert.Equal(t, []int{1, 2, 3}, generations)

	assert.Empty(t, cmp.Diff(horizontal, history[0].Matrix()))
	assert.Empty(t, cmp.Diff(vertical, history[1].Matrix()))
	assert.Empty(t, cmp.Diff(horizontal, history[2].Matrix()))

	// the live grid is one generation past the last snapshot
	assert.Empty(t, cmp.Diff(vertical, sim.Grid().Snapshot().Matrix()))
}

func TestStepAfterResize(t *testing.T) {
	g := gridFromRows(t, "--", "--")
	sim := NewSimulator(g)
	sim.Step()

	require.NoError(t, g.LoadFromSource(strings.NewReader("3 3\n---\n***\n---\n")))
	sim.Step()

	want := matrix("-*-", "-*-", "-*-")
	assert.Empty(t, cmp.Diff(want, g.Snapshot().Matrix()))
}
