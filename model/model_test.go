package model_test

import (
	"testing"

	"github.com/katalvlaran/graphcore/model"
	"github.com/stretchr/testify/require"
)

// TestEdgeRecordShapes locks in the four recognized inner-edge shapes from
// spec.md section 4.1's table: each shape exposes exactly the accessors its
// row says are available.
func TestEdgeRecordShapes(t *testing.T) {
	t1 := model.EdgeTarget[int]{TargetID: 3}
	require.Equal(t, 3, model.TargetID[int](t1))

	t2 := model.EdgeTargetValue[int, string]{TargetID: 4, Value: "w"}
	require.Equal(t, 4, model.TargetID[int](t2))
	require.Equal(t, "w", model.EdgeValue[string](t2))

	t3 := model.EdgeSourced[int]{SourceID: 1, TargetID: 2}
	require.Equal(t, 2, model.TargetID[int](t3))
	require.Equal(t, 1, model.SourceID[int](t3))

	t4 := model.EdgeSourcedValue[int, float64]{SourceID: 5, TargetID: 6, Value: 2.5}
	require.Equal(t, 6, model.TargetID[int](t4))
	require.Equal(t, 5, model.SourceID[int](t4))
	require.Equal(t, 2.5, model.EdgeValue[float64](t4))
}

// TestRealTargetID locks in the undirected re-crossing guard: an edge whose
// target equals the id we arrived from resolves to its source instead.
func TestRealTargetID(t *testing.T) {
	e := model.EdgeSourced[int]{SourceID: 0, TargetID: 1}
	require.Equal(t, 1, model.RealTargetID[int](e, 0))
	require.Equal(t, 0, model.RealTargetID[int](e, 1))
}

// TestDescriptor locks in the index-backed Descriptor contract: Deref
// yields the element, Valid reports in-bounds, and DescriptorSubrangeView
// keeps ids relative to the container's own origin.
func TestDescriptor(t *testing.T) {
	s := []int{10, 20, 30, 40}
	full := model.DescriptorView(&s)
	require.Len(t, full, 4)
	require.Equal(t, 30, full[2].Deref())
	require.True(t, full[2].Valid())

	sub := model.DescriptorSubrangeView(&s, 1, 3)
	require.Len(t, sub, 2)
	require.Equal(t, 1, sub[0].Index())
	require.Equal(t, 20, sub[0].Deref())
	require.Equal(t, 2, sub[1].Index())
	require.Equal(t, 30, sub[1].Deref())
}

func TestErrors(t *testing.T) {
	oor := model.NewOutOfRange("FindVertex", 7, 5)
	require.Contains(t, oor.Error(), "FindVertex")
	require.Contains(t, oor.Error(), "7")

	le := model.NewLoadError("rows not ordered")
	require.Contains(t, le.Error(), "rows not ordered")

	be := model.NewBadEdge("target id exceeds the number of vertices", 9)
	require.Contains(t, be.Error(), "target id exceeds")
}
