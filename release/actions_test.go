package release_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valvenet/release"
	"github.com/katalvlaran/valvenet/valve"
	"github.com/katalvlaran/valvenet/valve/valvetest"
)

func TestActions_RankedByProjectedRelease(t *testing.T) {
	tbl := mustTable(t, valvetest.Example(t))

	got, err := release.Actions(tbl, 30, nil)
	require.NoError(t, err)
	// JJ 21×27=567, DD 20×28=560, HH 22×24=528, BB 13×28=364, EE 3×27=81, CC 2×27=54.
	require.Equal(t, []release.ActionView{
		{Target: "JJ", Free: 27},
		{Target: "DD", Free: 28},
		{Target: "HH", Free: 24},
		{Target: "BB", Free: 28},
		{Target: "EE", Free: 27},
		{Target: "CC", Free: 27},
		{Target: "", Free: 0},
	}, got)
}

func TestActions_SkipOpenedValves(t *testing.T) {
	tbl := mustTable(t, valvetest.Example(t))

	got, err := release.Actions(tbl, 30, []string{"DD", "JJ"})
	require.NoError(t, err)
	var targets []string
	for _, a := range got {
		targets = append(targets, a.Target)
	}
	require.Equal(t, []string{"HH", "BB", "EE", "CC", ""}, targets)
}

func TestActions_RequireATickAfterOpening(t *testing.T) {
	tbl := mustTable(t, valvetest.Example(t))

	// d+1 < 3 keeps only the neighbours BB and DD.
	got, err := release.Actions(tbl, 3, nil)
	require.NoError(t, err)
	require.Equal(t, []release.ActionView{
		{Target: "DD", Free: 1},
		{Target: "BB", Free: 1},
		{Target: "", Free: 0},
	}, got)

	// Nothing is worth doing with two ticks left from AA: idle only.
	got, err = release.Actions(tbl, 2, nil)
	require.NoError(t, err)
	require.Equal(t, []release.ActionView{{Target: "", Free: 0}}, got)
}

func TestActions_TiesFavourLowerIndex(t *testing.T) {
	tbl := mustTable(t, valvetest.MustBuild(t, []valve.Record{
		{Name: "AA", Tunnels: []string{"BB", "CC"}},
		{Name: "BB", FlowRate: 4},
		{Name: "CC", FlowRate: 4},
	}))
	got, err := release.Actions(tbl, 10, nil)
	require.NoError(t, err)
	require.Equal(t, "BB", got[0].Target)
	require.Equal(t, "CC", got[1].Target)
}

func TestFold(t *testing.T) {
	net := valvetest.Example(t)

	total, err := release.Fold(net, map[string]int{"DD": 28, "BB": 25, "JJ": 21, "HH": 13, "EE": 9, "CC": 6})
	require.NoError(t, err)
	require.Equal(t, 1651, total)

	total, err = release.Fold(net, nil)
	require.NoError(t, err)
	require.Zero(t, total)

	_, err = release.Fold(net, map[string]int{"XX": 3})
	require.ErrorIs(t, err, valve.ErrValveNotFound)
	_, err = release.Fold(net, map[string]int{"BB": -1})
	require.ErrorIs(t, err, release.ErrOptionViolation)
	_, err = release.Fold(nil, nil)
	require.ErrorIs(t, err, release.ErrNilNetwork)

	require.Equal(t, 2*3+5*1, release.FoldRaw([]int{3, 0, 1}, []int{2, 9, 5}))
}
