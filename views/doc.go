// Package views implements the read-only traversal ranges spec.md section
// 4.4 names: vertexlist, incidence, neighbors, and edgelist. Each view is a
// pull-model Cursor rather than the teacher's eager hook-callback style: a
// caller drives iteration by repeatedly calling Next(). Each view builds its
// full result slice when it is constructed, with any projection or
// flattening already applied, and the Cursor then hands those elements out
// one at a time.
//
// Every view is generic over the customization-point interfaces in model,
// not over a concrete container type, so it works identically whether the
// underlying graph is a csr.Graph or a dynamic.Graph.
package views
