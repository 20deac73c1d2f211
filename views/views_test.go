package views_test

import (
	"testing"

	"github.com/katalvlaran/graphcore/csr"
	"github.com/katalvlaran/graphcore/model"
	"github.com/katalvlaran/graphcore/routedata"
	"github.com/katalvlaran/graphcore/views"
	"github.com/stretchr/testify/require"
)

func drain[T any](c *views.Cursor[T]) []T {
	var out []T
	for {
		v, ok := c.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

func buildGermany(t *testing.T) *csr.Graph[int, int, model.NoValue, model.NoValue] {
	t.Helper()
	g := csr.New[int, int, model.NoValue, model.NoValue]()
	require.NoError(t, g.LoadEdges(routedata.VertexCount, routedata.DirectedEdges))
	return g
}

func TestVertexList(t *testing.T) {
	g := buildGermany(t)
	got := drain(views.VertexList[int](g))
	require.Len(t, got, routedata.VertexCount)
	require.Equal(t, 0, got[0])
	require.Equal(t, 9, got[9])
}

func TestVertexListProjected(t *testing.T) {
	g := buildGermany(t)
	got := drain(views.VertexListProjected[int](g, func(v int) string { return routedata.Names[v] }))
	require.Equal(t, "Frankfurt", got[routedata.Frankfurt])
}

func TestIncidence(t *testing.T) {
	g := buildGermany(t)
	got := drain(views.Incidence[int, csr.Edge[int, int]](g, routedata.Frankfurt))
	require.Len(t, got, 3)
	require.Equal(t, routedata.Mannheim, model.TargetID[int](got[0]))
}

func TestIncidenceProjected(t *testing.T) {
	g := buildGermany(t)
	got := drain(views.IncidenceProjected[int, csr.Edge[int, int]](g, routedata.Frankfurt, func(e csr.Edge[int, int]) int {
		return model.EdgeValue[int](e)
	}))
	require.Equal(t, []int{85, 217, 173}, got)
}

func TestNeighbors(t *testing.T) {
	g := buildGermany(t)
	got := drain(views.Neighbors[int, csr.Edge[int, int]](g, routedata.Frankfurt))
	require.Equal(t, []int{routedata.Mannheim, routedata.Wurzburg, routedata.Kassel}, got)
}

func TestEdgeList(t *testing.T) {
	g := buildGermany(t)
	got := drain(views.EdgeList[int, int, csr.Edge[int, int]](g))
	require.Len(t, got, len(routedata.DirectedEdges))
	require.Equal(t, routedata.Frankfurt, got[0].Source)
}

func TestEdgeListRange(t *testing.T) {
	g := buildGermany(t)
	got := drain(views.EdgeListRange[int, int, csr.Edge[int, int]](g, 4, 5))
	for _, entry := range got {
		require.Equal(t, routedata.Wurzburg, entry.Source)
	}
	require.Len(t, got, 2) // Wurzburg -> {Erfurt, Nurnberg}
}

// sourcedRing is a minimal IncidenceRange over model.EdgeSourcedValue,
// exercising NeighborsUndirected's re-crossing guard independently of csr
// and dynamic, neither of which emits sourced edge records.
type sourcedRing struct {
	rows [][]model.EdgeSourcedValue[int, model.NoValue]
}

func (r sourcedRing) EdgesAt(id int) []model.EdgeSourcedValue[int, model.NoValue] { return r.rows[id] }

func TestNeighborsUndirected_ReCrossingGuard(t *testing.T) {
	ring := sourcedRing{rows: [][]model.EdgeSourcedValue[int, model.NoValue]{
		{{SourceID: 0, TargetID: 1}},
		{{SourceID: 0, TargetID: 1}},
	}}

	got0 := drain(views.NeighborsUndirected[int, model.EdgeSourcedValue[int, model.NoValue]](ring, 0))
	require.Equal(t, []int{1}, got0)

	got1 := drain(views.NeighborsUndirected[int, model.EdgeSourcedValue[int, model.NoValue]](ring, 1))
	require.Equal(t, []int{0}, got1)
}
