package valve_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/valvenet/valve"
	"github.com/katalvlaran/valvenet/valve/valvetest"
)

type NetworkSuite struct {
	suite.Suite
	net *valve.Network
}

func (s *NetworkSuite) SetupTest() {
	s.net = valvetest.Example(s.T())
}

func (s *NetworkSuite) TestIndexFollowsRecordOrder() {
	require := require.New(s.T())
	require.Equal(10, s.net.Len())
	for i, r := range valvetest.ExampleRecords() {
		idx, ok := s.net.Index(r.Name)
		require.True(ok, "missing %s", r.Name)
		require.Equal(i, idx)
		require.Equal(r.Name, s.net.Name(i))
		require.Equal(r.FlowRate, s.net.FlowRate(i))
	}
	_, ok := s.net.Index("ZZ")
	require.False(ok)
}

func (s *NetworkSuite) TestTunnelsAreMirrored() {
	require := require.New(s.T())
	// HH only lists GG, JJ only lists II; the reverse direction must exist too.
	require.True(s.net.HasTunnel("GG", "HH"))
	require.True(s.net.HasTunnel("HH", "GG"))
	require.True(s.net.HasTunnel("II", "JJ"))
	require.True(s.net.HasTunnel("JJ", "II"))
	require.False(s.net.HasTunnel("AA", "JJ"))
	require.False(s.net.HasTunnel("AA", "nope"))

	aa, _ := s.net.Index("AA")
	require.Equal(3, s.net.Degree(aa))
	for _, tn := range s.net.Tunnels() {
		require.True(s.net.HasTunnel(tn.To, tn.From), "%s→%s has no mirror", tn.From, tn.To)
	}
}

func (s *NetworkSuite) TestDuplicateTunnelsCollapse() {
	require := require.New(s.T())
	// AA lists DD and DD lists AA; only one neighbor entry each.
	aa, _ := s.net.Index("AA")
	dd, _ := s.net.Index("DD")
	count := 0
	for _, j := range s.net.Neighbors(aa) {
		if j == dd {
			count++
		}
	}
	require.Equal(1, count)
}

func (s *NetworkSuite) TestActiveAndTotalFlow() {
	require := require.New(s.T())
	var names []string
	for _, i := range s.net.Active() {
		names = append(names, s.net.Name(i))
	}
	require.Equal([]string{"BB", "CC", "DD", "EE", "HH", "JJ"}, names)
	require.Equal(81, s.net.TotalFlow())
}

func (s *NetworkSuite) TestAccessorsReturnCopies() {
	require := require.New(s.T())
	vs := s.net.Valves()
	vs[0].FlowRate = 99
	require.Equal(0, s.net.FlowRate(0))

	nb := s.net.Neighbors(0)
	nb[0] = -1
	require.NotEqual(-1, s.net.Neighbors(0)[0])
}

func (s *NetworkSuite) TestLookup() {
	require := require.New(s.T())
	i, err := s.net.Lookup("JJ")
	require.NoError(err)
	require.Equal(9, i)
	_, err = s.net.Lookup("QQ")
	require.ErrorIs(err, valve.ErrValveNotFound)
}

func TestNetworkSuite(t *testing.T) {
	suite.Run(t, new(NetworkSuite))
}

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name    string
		records []valve.Record
		opts    []valve.Option
		want    error
	}{
		{"empty name", []valve.Record{{Name: ""}}, nil, valve.ErrEmptyName},
		{"negative flow", []valve.Record{{Name: "AA", FlowRate: -1}}, nil, valve.ErrNegativeFlow},
		{"duplicate", []valve.Record{{Name: "AA"}, {Name: "AA"}}, nil, valve.ErrDuplicateValve},
		{"unknown target", []valve.Record{{Name: "AA", Tunnels: []string{"BB"}}}, nil, valve.ErrValveNotFound},
		{"self tunnel", []valve.Record{{Name: "AA", Tunnels: []string{"AA"}}}, nil, valve.ErrLoopNotAllowed},
		{
			"disconnected",
			[]valve.Record{{Name: "AA", Tunnels: []string{"BB"}}, {Name: "BB"}, {Name: "CC"}},
			[]valve.Option{valve.WithConnectivityCheck()},
			valve.ErrDisconnected,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := valve.Build(tc.records, tc.opts...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuild_DisconnectedAllowedWithoutCheck(t *testing.T) {
	net, err := valve.Build([]valve.Record{{Name: "AA"}, {Name: "BB"}})
	require.NoError(t, err)
	require.False(t, net.Connected())
}

func TestConnected_EmptyAndSingle(t *testing.T) {
	empty, err := valve.Build(nil)
	require.NoError(t, err)
	require.True(t, empty.Connected())

	single, err := valve.Build([]valve.Record{{Name: "AA", FlowRate: 5}})
	require.NoError(t, err)
	require.True(t, single.Connected())
	require.Equal(t, []int{0}, single.Active())
}
