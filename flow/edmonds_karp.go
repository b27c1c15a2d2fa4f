package flow

import (
	"context"
	"sync/atomic"

	"github.com/katalvlaran/netflow/residual"
)

// EdmondsKarp computes maximum flow via repeated BFS shortest augmenting
// paths. Unlike a naive Ford-Fulkerson/BFS hybrid, the traversed
// edge on the augmentation pass is looked up by the adjacency-list index
// recorded during BFS, not by a second O(deg) linear scan over the
// predecessor's neighbor list.
type EdmondsKarp struct {
	g       *residual.Graph
	opts    FlowOptions
	parent  []int // predecessor vertex; -1 unvisited, -2 is the source itself
	viaIdx  []int // index into parent's adjacency list of the edge used to reach this vertex
	running atomic.Bool
}

// NewEdmondsKarp builds an Edmonds-Karp solver bound to g.
func NewEdmondsKarp(g *residual.Graph, opts FlowOptions) *EdmondsKarp {
	return &EdmondsKarp{
		g:      g,
		opts:   opts,
		parent: make([]int, g.N()),
		viaIdx: make([]int, g.N()),
	}
}

const (
	unvisited     = -1
	sourceMarker  = -2
)

// MaxFlow implements Solver.
func (ek *EdmondsKarp) MaxFlow(ctx context.Context, s, t int) (int64, error) {
	if err := validateEndpoints(ek.g, s, t); err != nil {
		return 0, err
	}
	if s == t {
		return 0, nil
	}
	if !ek.running.CompareAndSwap(false, true) {
		return 0, ErrSolverBusy
	}
	defer ek.running.Store(false)

	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		if !ek.bfs(s, t) {
			return total, nil
		}
		if ek.opts.Verbose {
			ek.opts.Logger.Debug("edmonds-karp: path found", "source", s, "sink", t)
		}

		bottleneck := ek.bottleneck(s, t)
		ek.augment(s, t, bottleneck)

		var err error
		total, err = addFlow(total, bottleneck)
		if err != nil {
			return total, err
		}
		if ek.opts.Logger != nil {
			ek.opts.Logger.Debug("edmonds-karp: augmented", "pushed", bottleneck, "total", total)
		}
		if ek.opts.OnAugment != nil {
			ek.opts.OnAugment(bottleneck, total)
		}
	}
}

// bfs finds a shortest (fewest-edge) s-to-t path over positive-capacity
// edges, recording parent/viaIdx for each reached vertex. It reports
// whether t was reached.
func (ek *EdmondsKarp) bfs(s, t int) bool {
	for i := range ek.parent {
		ek.parent[i] = unvisited
	}
	ek.parent[s] = sourceMarker
	queue := make([]int, 0, len(ek.parent))
	queue = append(queue, s)
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		if u == t {
			return true
		}
		for idx, e := range ek.g.Adj(u) {
			if e.Cap > 0 && ek.parent[e.To] == unvisited {
				ek.parent[e.To] = u
				ek.viaIdx[e.To] = idx
				queue = append(queue, e.To)
			}
		}
	}
	return ek.parent[t] != unvisited
}

// bottleneck walks the BFS tree from t back to s and returns the
// smallest residual capacity along the path.
func (ek *EdmondsKarp) bottleneck(s, t int) int64 {
	bn := int64(maxInt64)
	for v := t; v != s; {
		p := ek.parent[v]
		cap := ek.g.Adj(p)[ek.viaIdx[v]].Cap
		if cap < bn {
			bn = cap
		}
		v = p
	}
	return bn
}

// augment walks t back to s a second time, decrementing each forward
// edge by amount and incrementing its paired reverse.
func (ek *EdmondsKarp) augment(s, t int, amount int64) {
	for v := t; v != s; {
		p := ek.parent[v]
		idx := ek.viaIdx[v]
		ek.g.Adj(p)[idx].Cap -= amount
		ek.g.Reverse(p, idx).Cap += amount
		v = p
	}
}
