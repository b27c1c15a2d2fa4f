// Package flow implements maximum-flow solvers over a *residual.Graph.
//
// Two interchangeable engines are provided, both sharing the residual
// graph contract from the residual package:
//
//   - Dinic: BFS level graph + blocking-flow DFS with a current-arc
//     (dead-edge skipping) pointer. O(V²E) worst case, O(E√V) on
//     unit-capacity networks.
//
//   - EdmondsKarp: BFS shortest augmenting path, one augmentation per
//     phase. O(V·E²) worst case.
//
// Both satisfy the Solver interface and return identical totals. Each is
// deterministic: for a fixed insertion order of edges, repeated runs of
// the same solver leave the residual graph in the same state. The two
// solvers may augment along different paths, so their final residual
// graphs can differ from each other.
//
// # Options
//
// FlowOptions configures both solvers via functional options:
//
//	opts := flow.DefaultOptions(flow.WithLogger(myLogger), flow.WithVerbose())
//	d := flow.NewDinic(g, opts)
//	total, err := d.MaxFlow(ctx, source, sink)
//
// # Errors
//
//	residual.ErrInvalidVertex  — source or sink out of range
//	residual.OverflowError     — flow accumulator would overflow int64
//	ErrSolverBusy              — MaxFlow called concurrently on one instance
//
// # Determinism & state
//
// A solver instance moves Ready → Running → Ready; Running is transient
// and non-reentrant. Re-invoking MaxFlow on an already-saturated residual
// returns 0 — there is no separate "done" state to query.
package flow
