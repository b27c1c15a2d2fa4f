package flow

import (
	"context"
	"sync/atomic"

	"github.com/katalvlaran/netflow/residual"
)

// Dinic computes maximum flow via level-graph construction plus
// blocking-flow DFS with a current-arc pointer: BFS assigns level[v],
// then a DFS bounded to strictly-forward edges in the level graph is
// re-run from s until it returns 0 for the phase.
//
// A Dinic instance owns its residual graph and auxiliary level/iter
// arrays for its entire lifetime; construct a fresh instance (or call
// NewDinic again) per residual graph.
type Dinic struct {
	g       *residual.Graph
	opts    FlowOptions
	level   []int
	iter    []int
	running atomic.Bool
}

// NewDinic builds a Dinic solver bound to g. g is mutated in place by
// MaxFlow; construct Dinic via Clone if you need to preserve g.
func NewDinic(g *residual.Graph, opts FlowOptions) *Dinic {
	return &Dinic{
		g:     g,
		opts:  opts,
		level: make([]int, g.N()),
		iter:  make([]int, g.N()),
	}
}

// MaxFlow implements Solver.
func (d *Dinic) MaxFlow(ctx context.Context, s, t int) (int64, error) {
	if err := validateEndpoints(d.g, s, t); err != nil {
		return 0, err
	}
	if s == t {
		return 0, nil
	}
	if !d.running.CompareAndSwap(false, true) {
		return 0, ErrSolverBusy
	}
	defer d.running.Store(false)

	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		d.bfs(s)
		if d.level[t] < 0 {
			return total, nil
		}
		if d.opts.Verbose {
			d.opts.Logger.Debug("dinic: new phase", "source", s, "sink", t, "sink_level", d.level[t])
		}

		for i := range d.iter {
			d.iter[i] = 0
		}
		for {
			if err := ctx.Err(); err != nil {
				return total, err
			}
			pushed := d.dfs(s, t, maxInt64)
			if pushed == 0 {
				break
			}
			var err error
			total, err = addFlow(total, pushed)
			if err != nil {
				return total, err
			}
			if d.opts.Logger != nil {
				d.opts.Logger.Debug("dinic: augmented", "pushed", pushed, "total", total)
			}
			if d.opts.OnAugment != nil {
				d.opts.OnAugment(pushed, total)
			}
		}
	}
}

// bfs assigns level[v] = distance from s over strictly-positive-capacity
// edges, -1 for unreached vertices.
func (d *Dinic) bfs(s int) {
	for i := range d.level {
		d.level[i] = -1
	}
	d.level[s] = 0
	queue := make([]int, 0, len(d.level))
	queue = append(queue, s)
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, e := range d.g.Adj(u) {
			if e.Cap > 0 && d.level[e.To] < 0 {
				d.level[e.To] = d.level[u] + 1
				queue = append(queue, e.To)
			}
		}
	}
}

// dfs pushes up to f units of flow from v to t along strictly-forward
// edges of the level graph (level[e.To] == level[v]+1). A saturated or
// exhausted edge advances iter[v] so it is never revisited within this
// phase; a partially-drained edge is left in place so it can be reused
// by a later call within the same phase.
func (d *Dinic) dfs(v, t int, f int64) int64 {
	if v == t {
		return f
	}
	adj := d.g.Adj(v)
	for d.iter[v] < len(adj) {
		i := d.iter[v]
		e := adj[i]
		if e.Cap > 0 && d.level[e.To] == d.level[v]+1 {
			bottleneck := f
			if e.Cap < bottleneck {
				bottleneck = e.Cap
			}
			pushed := d.dfs(e.To, t, bottleneck)
			if pushed > 0 {
				adj[i].Cap -= pushed
				d.g.Reverse(v, i).Cap += pushed
				return pushed
			}
		}
		d.iter[v]++
	}
	return 0
}
