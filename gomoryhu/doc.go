// 🚀 What is gomoryhu?
//
// Package gomoryhu builds a Gomory–Hu cut tree over an undirected,
// non-negatively weighted graph: a spanning tree on the same vertex set
// such that the minimum-weight edge on the tree path between any two
// vertices a, b equals the minimum a-b cut (equivalently, the maximum
// a-b flow) in the original graph.
//
// Construction follows Gusfield's simplified form: n−1 iterations,
// each running flow.Dinic on a fresh residual.Graph copy against the
// current tree-parent, then re-rooting any subtrees that fall on the
// source side of that iteration's cut.
//
// # Usage
//
//	t := gomoryhu.New(4)
//	t.AddEdge(0, 1, 10)
//	t.AddEdge(1, 2, 5)
//	t.AddEdge(2, 3, 15)
//	if err := t.BuildTree(context.Background()); err != nil {
//		log.Fatal(err)
//	}
//	for _, e := range t.GetTree() {
//		fmt.Println(e.U, e.V, e.W)
//	}
//
// AddEdge accepts each undirected edge once; it is inserted into the
// underlying residual graph in both directions so that min-cut semantics
// hold (a directed-only reverse edge would instead model a one-way arc —
// see residual.Graph.AddEdge's doc comment for why this matters).
//
// # Cost
//
// Each iteration allocates a fresh *residual.Graph sized to the original
// topology; a residual.Pool amortizes this across the n−1 iterations.
// This copy is the only place memory allocation scales with n·m across
// the whole construction.
package gomoryhu
