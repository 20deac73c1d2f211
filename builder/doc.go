// Package builder assembles deterministic, named edge lists — paths,
// cycles, stars, wheels, complete graphs, complete bipartite graphs, grids,
// and two random topologies — for feeding directly into csr.Graph.LoadEdges
// or dynamic.Graph.LoadEdges.
//
// Every constructor returns a Result[W], whose Edges slice is already
// sorted in (Source, Target) order: the order csr.Graph.LoadEdges requires
// and dynamic.Graph.LoadEdges tolerates. Constructors never mutate a graph
// object directly; callers choose which container to load the result into.
//
// Determinism is explicit: stochastic constructors (RandomSparse,
// RandomRegular) draw only from the *rand.Rand supplied via WithSeed or
// WithRand, and produce identical output for identical (n, seed, options).
// Option constructors validate and panic on meaningless input (a nil
// *rand.Rand, a nil weight function); constructors themselves never
// panic, returning sentinel errors instead.
package builder
