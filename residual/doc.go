// Package residual implements the capacitated residual graph shared by every
// max-flow solver in this module.
//
// 🚀 What is residual?
//
//	A minimal, zero-dependency adjacency-list graph keyed by integer vertex
//	index, built for one purpose: feed augmenting-path algorithms.
//
//	  • Vertices are plain ints in [0, n) — no string IDs, no metadata.
//	  • Every inserted edge is paired with a reverse edge so residual
//	    capacity can be decremented/incremented in O(1) on both sides.
//	  • Insertion order is preserved; solvers rely on it for determinism.
//
// Under the hood each vertex owns a flat []Edge slice. The paired reverse
// edge is addressed by a stable index (rev), never by pointer — this is
// what lets Dinic and Edmonds–Karp mutate capacities in place without
// walking the list to find the opposite edge.
package residual
