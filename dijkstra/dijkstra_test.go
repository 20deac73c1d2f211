package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/graphcore/csr"
	"github.com/katalvlaran/graphcore/dijkstra"
	"github.com/katalvlaran/graphcore/model"
	"github.com/katalvlaran/graphcore/routedata"
	"github.com/stretchr/testify/require"
)

func buildGermany(t *testing.T) *csr.Graph[int, int, model.NoValue, model.NoValue] {
	t.Helper()
	g := csr.New[int, int, model.NoValue, model.NoValue]()
	require.NoError(t, g.LoadEdges(routedata.VertexCount, routedata.DirectedEdges))
	return g
}

// TestShortestPaths_FromErfurt locks in spec.md section 8 scenario 4:
// Dijkstra seeded at Erfurt over the directed route table reaches only
// Stuttgart (167) and Munchen (183); every other vertex — including
// Nurnberg, which Erfurt has no edge toward — is unreachable.
func TestShortestPaths_FromErfurt(t *testing.T) {
	g := buildGermany(t)
	res, err := dijkstra.ShortestPaths[int, int, csr.Edge[int, int]](g, routedata.Erfurt)
	require.NoError(t, err)

	require.True(t, res.Reachable[routedata.Erfurt])
	require.Equal(t, 0, res.Distance[routedata.Erfurt])

	require.True(t, res.Reachable[routedata.Stuttgart])
	require.Equal(t, 167, res.Distance[routedata.Stuttgart])

	require.True(t, res.Reachable[routedata.Munchen])
	require.Equal(t, 183, res.Distance[routedata.Munchen])

	for _, v := range []int{
		routedata.Frankfurt, routedata.Mannheim, routedata.Karlsruhe,
		routedata.Augsburg, routedata.Wurzburg, routedata.Kassel, routedata.Nurnberg,
	} {
		require.False(t, res.Reachable[v], "vertex %d should be unreachable from Erfurt", v)
	}
}

func TestShortestPaths_ReturnPath(t *testing.T) {
	g := buildGermany(t)
	res, err := dijkstra.ShortestPaths[int, int, csr.Edge[int, int]](g, routedata.Erfurt, dijkstra.ReturnPath())
	require.NoError(t, err)

	require.Equal(t, routedata.Erfurt, res.Predecessor[routedata.Erfurt])
	require.Equal(t, routedata.Erfurt, res.Predecessor[routedata.Stuttgart])
	require.Equal(t, routedata.Erfurt, res.Predecessor[routedata.Munchen])
}

func TestShortestPaths_WithoutReturnPath_PredecessorNil(t *testing.T) {
	g := buildGermany(t)
	res, err := dijkstra.ShortestPaths[int, int, csr.Edge[int, int]](g, routedata.Frankfurt)
	require.NoError(t, err)
	require.Nil(t, res.Predecessor)
}

// TestShortestPaths_FromFrankfurt_ReachesEverything exercises the general
// (fully reachable) case: every vertex has a finite, optimal distance.
func TestShortestPaths_FromFrankfurt_ReachesEverything(t *testing.T) {
	g := buildGermany(t)
	res, err := dijkstra.ShortestPaths[int, int, csr.Edge[int, int]](g, routedata.Frankfurt)
	require.NoError(t, err)

	for v := 0; v < routedata.VertexCount; v++ {
		require.True(t, res.Reachable[v], "vertex %d should be reachable from Frankfurt", v)
	}
	// Frankfurt -> Wurzburg -> Erfurt -> Stuttgart: 217+103+167 = 487, strictly
	// better than both Frankfurt -> Mannheim -> Karlsruhe -> Augsburg ->
	// Stuttgart (85+80+250+84 = 499) and Frankfurt -> Kassel -> Stuttgart
	// (173+502 = 675).
	require.Equal(t, 487, res.Distance[routedata.Stuttgart])
}

// TestShortestPaths_NegativeWeightAccepted locks in spec.md section 4.6's
// explicit failure semantics: a negative edge weight is accepted, not
// rejected — the relaxation just runs with whatever the edge says, which on
// this single-edge graph gives vertex 1 a distance of -5.
func TestShortestPaths_NegativeWeightAccepted(t *testing.T) {
	g := csr.New[int, int, model.NoValue, model.NoValue]()
	require.NoError(t, g.LoadEdges(2, []model.CopyableEdge[int, int]{{Source: 0, Target: 1, Value: -5}}))

	res, err := dijkstra.ShortestPaths[int, int, csr.Edge[int, int]](g, 0)
	require.NoError(t, err)
	require.True(t, res.Reachable[1])
	require.Equal(t, -5, res.Distance[1])
}

func TestShortestPaths_InvalidSeed_OutOfRange(t *testing.T) {
	g := buildGermany(t)
	_, err := dijkstra.ShortestPaths[int, int, csr.Edge[int, int]](g, routedata.VertexCount)
	var oor *model.OutOfRange
	require.ErrorAs(t, err, &oor)
}
