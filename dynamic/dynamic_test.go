package dynamic_test

import (
	"testing"

	"github.com/katalvlaran/graphcore/dynamic"
	"github.com/katalvlaran/graphcore/model"
	"github.com/katalvlaran/graphcore/routedata"
	"github.com/stretchr/testify/require"
)

func TestLoadEdges_GermanyRoutes(t *testing.T) {
	g := dynamic.New[int, int, model.NoValue, model.NoValue]()
	require.NoError(t, g.LoadEdges(routedata.DirectedEdges))

	require.Equal(t, routedata.VertexCount, g.VertexCount())
	require.Equal(t, len(routedata.DirectedEdges), g.EdgeCount())

	var sum int
	for _, u := range g.Vertices() {
		for _, e := range g.EdgesAt(u) {
			sum += model.EdgeValue[int](e)
		}
	}
	require.Equal(t, routedata.TotalEdgeValue, sum)
}

// TestLoadEdges_AnyOrder proves dynamic.Graph, unlike csr.Graph, accepts
// edges arriving out of (source, target) order.
func TestLoadEdges_AnyOrder(t *testing.T) {
	g := dynamic.New[int, int, model.NoValue, model.NoValue]()
	edges := []model.CopyableEdge[int, int]{
		{Source: 2, Target: 0, Value: 1},
		{Source: 0, Target: 2, Value: 2},
		{Source: 0, Target: 1, Value: 3},
	}
	require.NoError(t, g.LoadEdges(edges))
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())
	require.Len(t, g.EdgesAt(0), 2)
}

// TestLoadEdges_Incremental proves dynamic.Graph, unlike csr.Graph, accepts
// more than one LoadEdges call, appending rather than rejecting.
func TestLoadEdges_Incremental(t *testing.T) {
	g := dynamic.New[int, int, model.NoValue, model.NoValue]()
	require.NoError(t, g.LoadEdges([]model.CopyableEdge[int, int]{{Source: 0, Target: 1, Value: 1}}))
	require.NoError(t, g.LoadEdges([]model.CopyableEdge[int, int]{{Source: 0, Target: 2, Value: 2}}))
	require.Equal(t, 2, g.EdgeCount())
	require.Len(t, g.EdgesAt(0), 2)
}

func TestAddEdge_NegativeID(t *testing.T) {
	g := dynamic.New[int, int, model.NoValue, model.NoValue]()
	err := g.AddEdge(-1, 0, 1)
	require.Error(t, err)
	var be *model.BadEdge
	require.ErrorAs(t, err, &be)
}

// TestInnerVector_PreservesInsertionOrder locks in InnerVector and InnerList
// rows iterating in the order edges were appended.
func TestInnerVector_PreservesInsertionOrder(t *testing.T) {
	g := dynamic.New[int, int, model.NoValue, model.NoValue](dynamic.WithInnerKind[int, int, model.NoValue, model.NoValue](dynamic.InnerVector))
	require.NoError(t, g.AddEdge(0, 1, 10))
	require.NoError(t, g.AddEdge(0, 2, 20))
	require.NoError(t, g.AddEdge(0, 3, 30))

	row := g.EdgesAt(0)
	require.Equal(t, []int{1, 2, 3}, targets(row))
}

func TestInnerList_PreservesInsertionOrder(t *testing.T) {
	g := dynamic.New[int, int, model.NoValue, model.NoValue](dynamic.WithInnerKind[int, int, model.NoValue, model.NoValue](dynamic.InnerList))
	require.NoError(t, g.AddEdge(0, 1, 10))
	require.NoError(t, g.AddEdge(0, 2, 20))
	require.NoError(t, g.AddEdge(0, 3, 30))

	row := g.EdgesAt(0)
	require.Equal(t, []int{1, 2, 3}, targets(row))
}

// TestInnerForwardList_ReversesInsertionOrder locks in the documented
// consequence of choosing InnerForwardList: since its only O(1) insertion
// point is the front, a row's iteration order is the reverse of the order
// edges were added in.
func TestInnerForwardList_ReversesInsertionOrder(t *testing.T) {
	g := dynamic.New[int, int, model.NoValue, model.NoValue](dynamic.WithInnerKind[int, int, model.NoValue, model.NoValue](dynamic.InnerForwardList))
	require.NoError(t, g.AddEdge(0, 1, 10))
	require.NoError(t, g.AddEdge(0, 2, 20))
	require.NoError(t, g.AddEdge(0, 3, 30))

	row := g.EdgesAt(0)
	require.Equal(t, []int{3, 2, 1}, targets(row))
}

func TestWithVertexCount_PreSizes(t *testing.T) {
	g := dynamic.New[int, int, model.NoValue, model.NoValue](dynamic.WithVertexCount[int, int, model.NoValue, model.NoValue](5))
	require.Equal(t, 5, g.VertexCount())
	require.Empty(t, g.EdgesAt(4))
}

// TestWithVertexCount_PinsRowCount proves a Graph built with WithVertexCount
// rejects ids past its fixed vertex count instead of growing to fit them.
func TestWithVertexCount_PinsRowCount(t *testing.T) {
	g := dynamic.New[int, int, model.NoValue, model.NoValue](dynamic.WithVertexCount[int, int, model.NoValue, model.NoValue](3))
	require.NoError(t, g.AddEdge(0, 2, 1))

	err := g.AddEdge(0, 3, 1)
	require.Error(t, err)
	var be *model.BadEdge
	require.ErrorAs(t, err, &be)
	require.Equal(t, 3, g.VertexCount())

	err = g.AddEdge(3, 0, 1)
	require.Error(t, err)
	require.ErrorAs(t, err, &be)
}

func TestVertexAndGraphValues(t *testing.T) {
	g := dynamic.New[int, int, string, string](dynamic.WithGraphValue[int, int, string, string]("germany"))
	require.NoError(t, g.LoadEdges(routedata.DirectedEdges))
	require.NoError(t, g.LoadVertices([]model.CopyableVertex[int, string]{
		{ID: routedata.Frankfurt, Value: "Frankfurt"},
	}))

	require.Equal(t, "germany", g.GraphValue())
	require.Equal(t, "Frankfurt", g.VertexValueOf(routedata.Frankfurt))
	require.Equal(t, "", g.VertexValueOf(routedata.Mannheim))
}

func targets(row []dynamic.Edge[int, int]) []int {
	out := make([]int, len(row))
	for i, e := range row {
		out[i] = model.TargetID[int](e)
	}
	return out
}
