package gomoryhu

import (
	"context"
	"sync/atomic"

	"github.com/katalvlaran/netflow/flow"
	"github.com/katalvlaran/netflow/residual"
)

// Tree builds a Gomory–Hu cut tree over an undirected weighted graph on
// n vertices, following Gusfield's simplified construction: n−1
// max-flow computations, each against the current tree-parent on a
// fresh residual copy, followed by a re-rooting pass.
type Tree struct {
	n     int
	edges []edgeSpec
	opts  flow.FlowOptions

	tree    []TreeEdge
	running atomic.Bool
}

// New allocates a Tree builder for n vertices with no edges yet.
func New(n int, opts ...flow.Option) *Tree {
	return &Tree{
		n:    n,
		opts: flow.DefaultOptions(opts...),
	}
}

// AddEdge records one undirected edge (u, v) with non-negative weight w.
// It is replayed into each iteration's fresh residual graph as two
// directed insertions — AddEdge(u, v, w) and AddEdge(v, u, w) — so the
// resulting residual carries capacity w in both directions, matching
// min-cut semantics for an undirected edge (residual.Graph.AddEdge alone
// only ever models one direction).
func (t *Tree) AddEdge(u, v int, w int64) error {
	if u < 0 || u >= t.n || v < 0 || v >= t.n {
		return residual.ErrInvalidVertex
	}
	if w < 0 {
		return residual.EdgeError{From: u, To: v, Cap: w}
	}
	t.edges = append(t.edges, edgeSpec{u: u, v: v, w: w})
	return nil
}

// FromGraph reconstructs a Tree's edge list from an existing residual
// graph built the way Tree.AddEdge builds one: every undirected edge
// present as two independent directed insertions, so that exactly one
// of the two entries from u to v carries the original positive weight
// and the other carries the zero-capacity reverse pairing. Scanning only
// the u < v direction recovers each undirected edge exactly once.
func FromGraph(g *residual.Graph, opts ...flow.Option) (*Tree, error) {
	n := g.N()
	t := New(n, opts...)
	for u := 0; u < n; u++ {
		for _, e := range g.Adj(u) {
			if e.To > u && e.Cap > 0 {
				if err := t.AddEdge(u, e.To, e.Cap); err != nil {
					return nil, err
				}
			}
		}
	}
	return t, nil
}

// replay builds a fresh residual graph carrying every recorded edge in
// both directions, acquiring the backing array from pool when non-nil.
func (t *Tree) replay(pool *residual.Pool) *residual.Graph {
	var g *residual.Graph
	if pool != nil {
		g = pool.Acquire()
	} else {
		g = residual.New(t.n)
	}
	for _, es := range t.edges {
		_ = g.AddEdge(es.u, es.v, es.w)
		_ = g.AddEdge(es.v, es.u, es.w)
	}
	return g
}

// BuildTree runs Gusfield's construction and stores the result for
// GetTree. It is not reentrant: a concurrent second call on the same
// Tree returns flow.ErrSolverBusy.
func (t *Tree) BuildTree(ctx context.Context) error {
	if !t.running.CompareAndSwap(false, true) {
		return flow.ErrSolverBusy
	}
	defer t.running.Store(false)

	if t.n == 0 {
		t.tree = nil
		return nil
	}

	parent := make([]int, t.n)
	weight := make([]int64, t.n)
	pool := residual.NewPool(t.n, len(t.edges)*2)

	for v := 1; v < t.n; v++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		g := t.replay(pool)
		d := flow.NewDinic(g, t.opts)
		f, err := d.MaxFlow(ctx, v, parent[v])
		if err != nil {
			pool.Put(g)
			return err
		}
		weight[v] = f

		inS := g.ReachableFrom(v)
		pool.Put(g)
		for w := v + 1; w < t.n; w++ {
			if inS[w] && parent[w] == parent[v] {
				parent[w] = v
			}
		}

		// Grandparent rewrite: parent[0] is never a real parent pointer
		// (0 is the tree root), so a swap is only possible when v's
		// parent is itself non-root.
		if p := parent[v]; p != 0 {
			gp := parent[p]
			if inS[gp] {
				oldWeight := weight[p]
				weight[p] = weight[v]
				weight[v] = oldWeight
				parent[v] = gp
				parent[p] = v
			}
		}
	}

	t.tree = make([]TreeEdge, 0, t.n-1)
	for v := 1; v < t.n; v++ {
		t.tree = append(t.tree, TreeEdge{U: parent[v], V: v, W: weight[v]})
	}
	return nil
}

// GetTree returns the n−1 tree edges computed by the last successful
// BuildTree call, or nil if BuildTree has not yet succeeded.
func (t *Tree) GetTree() []TreeEdge {
	return t.tree
}
