package builder

import (
	"fmt"

	"github.com/katalvlaran/graphcore/model"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// GridID returns the row-major vertex id for cell (r, c) in a grid with the
// given column count: id = r*cols + c. Grid's constructed Result uses this
// scheme, so callers can map a solved path or distance back to coordinates.
func GridID(r, c, cols int) int { return r*cols + c }

// GridCoords inverts GridID: given an id and the grid's column count, it
// returns the (row, col) the id was assigned.
func GridCoords(id, cols int) (r, c int) { return id / cols, id % cols }

// Grid builds a rows x cols orthogonal grid with 4-neighborhood adjacency,
// rows, cols >= 1: vertex ids are row-major (see GridID), and edges connect
// each cell to its right and bottom neighbors where they exist.
//
// Complexity: O(rows*cols) vertices, O(rows*cols) edges (doubled when
// undirected).
func Grid[W model.Weight](rows, cols int, opts ...Option[W]) (Result[W], error) {
	if rows < minGridDim || cols < minGridDim {
		return Result[W]{}, fmt.Errorf("%s: rows=%d, cols=%d (each must be >= %d): %w",
			methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)

	edges := make([]model.CopyableEdge[int, W], 0, 2*rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := GridID(r, c, cols)
			if c+1 < cols {
				edges = appendPair(edges, cfg, u, GridID(r, c+1, cols))
			}
			if r+1 < rows {
				edges = appendPair(edges, cfg, u, GridID(r+1, c, cols))
			}
		}
	}
	sortEdges(edges)
	return Result[W]{VertexCount: rows * cols, Edges: edges}, nil
}
