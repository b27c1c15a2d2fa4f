// 🚀 What is netflow?
//
// netflow is a library of maximum-flow algorithms on capacitated
// directed graphs, plus a Gomory–Hu cut-tree built on top of them:
//
//	residual/  — the residual-graph data structure: integer vertices,
//	             paired reverse edges, O(1) reverse lookup
//	flow/      — Dinic (level graph + blocking-flow DFS) and
//	             Edmonds–Karp (BFS shortest augmenting path), sharing
//	             one Solver interface
//	gomoryhu/  — an all-pairs minimum-cut tree built from n−1 Dinic
//	             calls against a fresh residual copy each time
//
// ✨ Why netflow?
//
//   - Exact integer arithmetic — no epsilon tolerances, overflow is
//     reported rather than silently wrapped
//   - Two interchangeable solvers (Dinic, Edmonds–Karp) agreeing on
//     every input
//   - O(1) reverse-edge addressing via stable adjacency-list indices,
//     not pointers
//
// Quick example:
//
//	g := residual.New(4)
//	g.AddEdge(0, 1, 10)
//	g.AddEdge(1, 3, 5)
//	g.AddEdge(0, 2, 10)
//	g.AddEdge(2, 3, 10)
//	d := flow.NewDinic(g, flow.DefaultOptions())
//	total, _ := d.MaxFlow(context.Background(), 0, 3)
//	fmt.Println(total) // 15
//
// cmd/netflow wraps the library as a stdin/stdout collaborator; the
// Example functions in the flow and gomoryhu packages are runnable
// library-level demonstrations.
//
//	go get github.com/katalvlaran/netflow
package netflow

