package prim_kruskal

import (
	"github.com/katalvlaran/graphcore/model"
)

// MSTEdge is one edge of a computed spanning tree (Kruskal's yield shape).
type MSTEdge[VId model.Integer, W model.Weight] struct {
	Source VId
	Target VId
	Weight W
}

// Comparator reports whether a should be preferred over b when choosing
// the next tree edge. MinWeight and MaxWeight are the two built-in
// comparators; both Kruskal and Prim are agnostic to which one is passed.
type Comparator[W model.Weight] func(a, b W) bool

// MinWeight prefers the smaller weight, yielding a minimum spanning tree.
func MinWeight[W model.Weight](a, b W) bool { return a < b }

// MaxWeight prefers the larger weight, yielding a maximum spanning tree.
func MaxWeight[W model.Weight](a, b W) bool { return a > b }

// weightedEdge is the edge-record method set Prim needs: a target id to
// grow toward and a weight to compare candidates by.
type weightedEdge[VId model.Integer, W model.Weight] interface {
	model.TargetIDer[VId]
	model.EdgeValuer[W]
}

// weightedGraph is the graph method set Prim needs: per-vertex incidence
// to discover candidate edges from the frontier.
type weightedGraph[VId model.Integer, ER any] interface {
	model.IncidenceRange[VId, ER]
}
