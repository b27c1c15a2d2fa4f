package flow_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/netflow/flow"
	"github.com/katalvlaran/netflow/residual"
)

// DinicSuite exercises Dinic against the scenarios catalogued in the
// package's design notes: disjoint paths, saturated bottlenecks,
// disconnected sinks, overflow-scale capacities, and a wide skip-chain.
type DinicSuite struct {
	suite.Suite
}

func TestDinicSuite(t *testing.T) {
	suite.Run(t, new(DinicSuite))
}

// TestTwoDisjointPaths: two vertex-disjoint s-t paths sum their capacities.
func (s *DinicSuite) TestTwoDisjointPaths() {
	g := residual.New(4)
	require.NoError(s.T(), g.AddEdge(0, 1, 10))
	require.NoError(s.T(), g.AddEdge(1, 3, 10))
	require.NoError(s.T(), g.AddEdge(0, 2, 5))
	require.NoError(s.T(), g.AddEdge(2, 3, 5))

	d := flow.NewDinic(g, flow.DefaultOptions())
	mf, err := d.MaxFlow(context.Background(), 0, 3)
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 15, mf)
}

// TestSaturatedMiddleEdge: a single bottleneck edge caps the whole flow.
func (s *DinicSuite) TestSaturatedMiddleEdge() {
	g := residual.New(4)
	require.NoError(s.T(), g.AddEdge(0, 1, 10))
	require.NoError(s.T(), g.AddEdge(1, 2, 0))
	require.NoError(s.T(), g.AddEdge(2, 3, 10))

	d := flow.NewDinic(g, flow.DefaultOptions())
	mf, err := d.MaxFlow(context.Background(), 0, 3)
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 0, mf)
}

// TestClassicSixVertex is the textbook CLRS-style network with max flow 23.
func (s *DinicSuite) TestClassicSixVertex() {
	g := residual.New(6)
	edges := [][3]int64{
		{0, 1, 16}, {0, 2, 13},
		{1, 2, 10}, {2, 1, 4},
		{1, 3, 12}, {3, 2, 9},
		{2, 4, 14}, {4, 3, 7},
		{3, 5, 20}, {4, 5, 4},
	}
	for _, e := range edges {
		require.NoError(s.T(), g.AddEdge(int(e[0]), int(e[1]), e[2]))
	}

	d := flow.NewDinic(g, flow.DefaultOptions())
	mf, err := d.MaxFlow(context.Background(), 0, 5)
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 23, mf)
}

// TestDisconnectedSink: no path at all yields zero without error.
func (s *DinicSuite) TestDisconnectedSink() {
	g := residual.New(3)
	require.NoError(s.T(), g.AddEdge(0, 1, 5))

	d := flow.NewDinic(g, flow.DefaultOptions())
	mf, err := d.MaxFlow(context.Background(), 0, 2)
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 0, mf)
}

// TestMaxCapacityDoesNotOverflow pushes a single edge at int64 max and
// expects the exact value back, not an OverflowError.
func (s *DinicSuite) TestMaxCapacityDoesNotOverflow() {
	const maxInt64 = 1<<63 - 1
	g := residual.New(2)
	require.NoError(s.T(), g.AddEdge(0, 1, maxInt64))

	d := flow.NewDinic(g, flow.DefaultOptions())
	mf, err := d.MaxFlow(context.Background(), 0, 1)
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), maxInt64, mf)
}

// TestWideSkipChain mirrors the large-graph regression scenario: a chain
// of 5000 vertices where every vertex also has a direct skip edge to the
// vertex two ahead, totalling max_capacity + max_capacity/2.
func (s *DinicSuite) TestWideSkipChain() {
	const (
		n            = 5000
		maxCapacity  = 1_000_000
		halfCapacity = maxCapacity / 2
	)
	g := residual.New(n)
	for i := 0; i < n-1; i++ {
		require.NoError(s.T(), g.AddEdge(i, i+1, maxCapacity))
	}
	for i := 0; i < n-2; i++ {
		require.NoError(s.T(), g.AddEdge(i, i+2, halfCapacity))
	}

	d := flow.NewDinic(g, flow.DefaultOptions())
	mf, err := d.MaxFlow(context.Background(), 0, n-1)
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), maxCapacity+halfCapacity, mf)
}

// TestSameSourceAndSink short-circuits to zero without touching the graph.
func (s *DinicSuite) TestSameSourceAndSink() {
	g := residual.New(2)
	require.NoError(s.T(), g.AddEdge(0, 1, 10))

	d := flow.NewDinic(g, flow.DefaultOptions())
	mf, err := d.MaxFlow(context.Background(), 0, 0)
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 0, mf)
	require.EqualValues(s.T(), 10, g.Adj(0)[0].Cap, "graph must be untouched")
}

// TestInvalidVertex rejects out-of-range source/sink.
func (s *DinicSuite) TestInvalidVertex() {
	g := residual.New(2)
	d := flow.NewDinic(g, flow.DefaultOptions())
	_, err := d.MaxFlow(context.Background(), 0, 5)
	require.ErrorIs(s.T(), err, residual.ErrInvalidVertex)
}

// TestIdempotentOnSaturatedGraph: a second MaxFlow call on an already
// saturated residual returns 0, not an error and not the original total.
func (s *DinicSuite) TestIdempotentOnSaturatedGraph() {
	g := residual.New(3)
	require.NoError(s.T(), g.AddEdge(0, 1, 4))
	require.NoError(s.T(), g.AddEdge(1, 2, 4))

	d := flow.NewDinic(g, flow.DefaultOptions())
	first, err := d.MaxFlow(context.Background(), 0, 2)
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 4, first)

	second, err := d.MaxFlow(context.Background(), 0, 2)
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 0, second)
}

// TestContextCancellation: a context canceled before the call makes
// MaxFlow return the context's error.
func (s *DinicSuite) TestContextCancellation() {
	g := residual.New(2)
	require.NoError(s.T(), g.AddEdge(0, 1, 10))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := flow.NewDinic(g, flow.DefaultOptions())
	_, err := d.MaxFlow(ctx, 0, 1)
	require.True(s.T(), errors.Is(err, context.Canceled))
}

// TestConcurrentCallsRejected ensures the Ready/Running state machine
// rejects a second concurrent MaxFlow on the same instance.
func (s *DinicSuite) TestConcurrentCallsRejected() {
	const n = 200
	g := residual.New(n)
	for i := 0; i < n-1; i++ {
		require.NoError(s.T(), g.AddEdge(i, i+1, 1))
	}

	d := flow.NewDinic(g, flow.DefaultOptions())

	bc := newBlockingContext()
	errs := make(chan error, 1)
	go func() {
		_, err := d.MaxFlow(bc, 0, n-1)
		errs <- err
	}()
	<-bc.started

	_, err := d.MaxFlow(context.Background(), 0, n-1)
	require.ErrorIs(s.T(), err, flow.ErrSolverBusy)

	close(bc.release)
	require.NoError(s.T(), <-errs)
}

// blockingContext signals started on its first Err() poll, then blocks
// until release is closed; later polls return nil immediately. It gives
// the test a window to race a second concurrent MaxFlow call.
type blockingContext struct {
	context.Context
	started  chan struct{}
	release  chan struct{}
	polled   *int32
}

func newBlockingContext() *blockingContext {
	var n int32
	return &blockingContext{
		Context: context.Background(),
		started: make(chan struct{}),
		release: make(chan struct{}),
		polled:  &n,
	}
}

func (c *blockingContext) Err() error {
	if atomic.CompareAndSwapInt32(c.polled, 0, 1) {
		close(c.started)
		<-c.release
	}
	return nil
}
