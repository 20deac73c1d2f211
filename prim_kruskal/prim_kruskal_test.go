package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/graphcore/csr"
	"github.com/katalvlaran/graphcore/model"
	"github.com/katalvlaran/graphcore/prim_kruskal"
	"github.com/katalvlaran/graphcore/routedata"
	"github.com/stretchr/testify/require"
)

func TestKruskal_MinimumSpanningTree(t *testing.T) {
	mst, total, err := prim_kruskal.Kruskal[int](routedata.VertexCount, routedata.UndirectedEdges(), prim_kruskal.MinWeight[int])
	require.NoError(t, err)
	require.Len(t, mst, routedata.VertexCount-1)
	require.Equal(t, routedata.MSTWeight, total)
}

func TestKruskal_MaximumSpanningTree(t *testing.T) {
	mst, total, err := prim_kruskal.Kruskal[int](routedata.VertexCount, routedata.UndirectedEdges(), prim_kruskal.MaxWeight[int])
	require.NoError(t, err)
	require.Len(t, mst, routedata.VertexCount-1)
	require.Equal(t, routedata.MaxSpanningTreeWeight, total)
}

// TestKruskal_Disconnected locks in spec.md section 8's forest property: a
// disconnected graph yields a minimum spanning forest with |V| − c edges
// (c = number of components), not an error.
func TestKruskal_Disconnected(t *testing.T) {
	edges := []model.CopyableEdge[int, int]{{Source: 0, Target: 1, Value: 1}}
	forest, total, err := prim_kruskal.Kruskal[int](3, edges, prim_kruskal.MinWeight[int])
	require.NoError(t, err)
	require.Len(t, forest, 1) // |V|=3, c=2 components ({0,1}, {2}) -> 1 edge
	require.Equal(t, 1, total)
}

func TestKruskal_SingleVertex(t *testing.T) {
	mst, total, err := prim_kruskal.Kruskal[int](1, nil, prim_kruskal.MinWeight[int])
	require.NoError(t, err)
	require.Empty(t, mst)
	require.Equal(t, 0, total)
}

func TestKruskal_SkipsSelfLoop(t *testing.T) {
	edges := []model.CopyableEdge[int, int]{
		{Source: 0, Target: 0, Value: 999},
		{Source: 0, Target: 1, Value: 5},
	}
	mst, total, err := prim_kruskal.Kruskal[int](2, edges, prim_kruskal.MinWeight[int])
	require.NoError(t, err)
	require.Len(t, mst, 1)
	require.Equal(t, 5, total)
}

// TestKruskalInPlace_SortsCallerSlice proves the in-place variant mutates
// its own edges argument (ascending by Value here, under MinWeight) rather
// than a copy.
func TestKruskalInPlace_SortsCallerSlice(t *testing.T) {
	edges := []model.CopyableEdge[int, int]{
		{Source: 0, Target: 1, Value: 3},
		{Source: 1, Target: 2, Value: 1},
		{Source: 2, Target: 3, Value: 2},
	}
	forest, total, err := prim_kruskal.KruskalInPlace[int](4, edges, prim_kruskal.MinWeight[int])
	require.NoError(t, err)
	require.Len(t, forest, 3)
	require.Equal(t, 6, total)
	require.Equal(t, 1, edges[0].Value) // caller's slice was sorted ascending in place
}

func buildUndirectedGermany(t *testing.T) *csr.Graph[int, int, model.NoValue, model.NoValue] {
	t.Helper()
	edges := append([]model.CopyableEdge[int, int]{}, routedata.UndirectedEdges()...)
	sortByRowThenColumn(edges)
	g := csr.New[int, int, model.NoValue, model.NoValue]()
	require.NoError(t, g.LoadEdges(routedata.VertexCount, edges))
	return g
}

// sortByRowThenColumn is a tiny insertion sort over the handful of doubled
// route edges, just enough to satisfy csr.Graph.LoadEdges' ordering
// requirement; dynamic.Graph would not need this step at all.
func sortByRowThenColumn(edges []model.CopyableEdge[int, int]) {
	for i := 1; i < len(edges); i++ {
		for j := i; j > 0; j-- {
			a, b := edges[j-1], edges[j]
			if a.Source < b.Source || (a.Source == b.Source && a.Target <= b.Target) {
				break
			}
			edges[j-1], edges[j] = edges[j], edges[j-1]
		}
	}
}

func TestPrim_MinimumSpanningTree(t *testing.T) {
	g := buildUndirectedGermany(t)
	pred := make([]int, routedata.VertexCount)
	weight := make([]int, routedata.VertexCount)
	total, err := prim_kruskal.Prim[int, int, csr.Edge[int, int]](g, routedata.Frankfurt, routedata.VertexCount, pred, weight, prim_kruskal.MinWeight[int])
	require.NoError(t, err)
	require.Equal(t, routedata.MSTWeight, total)
	require.Equal(t, routedata.Frankfurt, pred[routedata.Frankfurt])

	var sum int
	for v := 0; v < routedata.VertexCount; v++ {
		if v != routedata.Frankfurt {
			sum += weight[v]
		}
	}
	require.Equal(t, routedata.MSTWeight, sum)
}

func TestPrim_MaximumSpanningTree(t *testing.T) {
	g := buildUndirectedGermany(t)
	pred := make([]int, routedata.VertexCount)
	weight := make([]int, routedata.VertexCount)
	total, err := prim_kruskal.Prim[int, int, csr.Edge[int, int]](g, routedata.Frankfurt, routedata.VertexCount, pred, weight, prim_kruskal.MaxWeight[int])
	require.NoError(t, err)
	require.Equal(t, routedata.MaxSpanningTreeWeight, total)
}

// TestPrim_Disconnected locks in spec.md section 8's "on the seed's
// component" scoping: a vertex outside root's component is left at its
// default pred[v] == v, weight[v] == zero, and Prim reports no error.
func TestPrim_Disconnected(t *testing.T) {
	g := csr.New[int, int, model.NoValue, model.NoValue]()
	require.NoError(t, g.LoadEdges(3, []model.CopyableEdge[int, int]{
		{Source: 0, Target: 1, Value: 1},
		{Source: 1, Target: 0, Value: 1},
	}))
	pred := make([]int, 3)
	weight := make([]int, 3)
	total, err := prim_kruskal.Prim[int, int, csr.Edge[int, int]](g, 0, 3, pred, weight, prim_kruskal.MinWeight[int])
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, 2, pred[2]) // vertex 2 untouched: its own default
	require.Equal(t, 0, weight[2])
}

func TestPrim_InvalidRoot_OutOfRange(t *testing.T) {
	g := buildUndirectedGermany(t)
	pred := make([]int, routedata.VertexCount)
	weight := make([]int, routedata.VertexCount)
	_, err := prim_kruskal.Prim[int, int, csr.Edge[int, int]](g, routedata.VertexCount, routedata.VertexCount, pred, weight, prim_kruskal.MinWeight[int])
	var oor *model.OutOfRange
	require.ErrorAs(t, err, &oor)
}

func TestPrim_ShortOutputArray_OutOfRange(t *testing.T) {
	g := buildUndirectedGermany(t)
	pred := make([]int, routedata.VertexCount-1)
	weight := make([]int, routedata.VertexCount)
	_, err := prim_kruskal.Prim[int, int, csr.Edge[int, int]](g, routedata.Frankfurt, routedata.VertexCount, pred, weight, prim_kruskal.MinWeight[int])
	var oor *model.OutOfRange
	require.ErrorAs(t, err, &oor)
}
