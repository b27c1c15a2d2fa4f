// Command netflow reads a capacitated graph from stdin and prints its
// maximum flow, or, in -gomoryhu mode, its Gomory–Hu cut tree.
//
// Flow mode input:
//
//	<n> <m>
//	<u_1> <v_1> <c_1>
//	...
//	<u_m> <v_m> <c_m>
//	<s> <t>
//
// Gomory–Hu mode input (edges treated as undirected, no trailing s/t line):
//
//	<n> <m>
//	<u_1> <v_1> <w_1>
//	...
//	<u_m> <v_m> <w_m>
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/katalvlaran/netflow/flow"
	"github.com/katalvlaran/netflow/gomoryhu"
	"github.com/katalvlaran/netflow/internal/config"
	"github.com/katalvlaran/netflow/internal/logging"
	"github.com/katalvlaran/netflow/residual"
)

func main() {
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]))
}

func run(stdin io.Reader, stdout, stderr io.Writer, args []string) int {
	fs := flag.NewFlagSet("netflow", flag.ContinueOnError)
	fs.SetOutput(stderr)
	algo := fs.String("algo", "", "solver to use: dinic or edmonds-karp (default from config)")
	gomoryHuMode := fs.Bool("gomoryhu", false, "build a Gomory-Hu cut tree instead of computing s-t max flow")
	configPath := fs.String("config", "", "path to a YAML config file")
	verbose := fs.Bool("verbose", false, "log one line per solver phase/augmentation")
	timeout := fs.Duration("timeout", 0, "if set, bounds stdin reading only; the solver call itself is never canceled")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if *algo != "" {
		cfg.Algorithm = *algo
	}
	if *verbose {
		// Solver trace lines are emitted at debug level.
		cfg.Log.Level = "debug"
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
		File:   logging.RotationConfig{Path: cfg.Log.File},
	})

	runID := uuid.New().String()
	logger = logger.With("run_id", runID)
	logger.Info("netflow: starting", "algorithm", cfg.Algorithm, "gomoryhu", *gomoryHuMode)

	opts := []flow.Option{flow.WithLogger(logger)}
	if *verbose {
		opts = append(opts, flow.WithVerbose())
	}

	ctx := context.Background()
	readCtx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		readCtx, cancel = context.WithTimeout(readCtx, *timeout)
		defer cancel()
	}
	reader := bufio.NewReader(stdin)

	var runErr error
	if *gomoryHuMode {
		runErr = runGomoryHu(readCtx, ctx, reader, stdout, opts...)
	} else {
		runErr = runMaxFlow(readCtx, ctx, reader, stdout, cfg.Algorithm, opts...)
	}

	if runErr != nil {
		logger.Error("netflow: failed", "error", runErr)
		fmt.Fprintln(stderr, runErr)
		return 1
	}
	logger.Info("netflow: done")
	return 0
}

func runMaxFlow(readCtx, solveCtx context.Context, r *bufio.Reader, w io.Writer, algorithm string, opts ...flow.Option) error {
	g, _, err := readGraph(readCtx, r, false)
	if err != nil {
		return err
	}
	var s, t int
	if err := readBounded(readCtx, func() error {
		_, err := fmt.Fscan(r, &s, &t)
		return err
	}); err != nil {
		return fmt.Errorf("netflow: read source/sink: %w", err)
	}

	solver, err := buildSolver(algorithm, g, flow.DefaultOptions(opts...))
	if err != nil {
		return err
	}
	total, err := solver.MaxFlow(solveCtx, s, t)
	if err != nil {
		return fmt.Errorf("netflow: max flow: %w", err)
	}

	_, err = fmt.Fprintf(w, "Maximum flow: %d\n", total)
	return err
}

func runGomoryHu(readCtx, solveCtx context.Context, r *bufio.Reader, w io.Writer, opts ...flow.Option) error {
	_, tree, err := readGraph(readCtx, r, true)
	if err != nil {
		return err
	}
	if err := tree.BuildTree(solveCtx); err != nil {
		return fmt.Errorf("netflow: build tree: %w", err)
	}
	for _, e := range tree.GetTree() {
		if _, err := fmt.Fprintf(w, "%d %d %d\n", e.U, e.V, e.W); err != nil {
			return err
		}
	}
	return nil
}

// readGraph parses "<n> <m>" followed by m "<u> <v> <c>" lines. In
// gomoryHu mode it builds a *gomoryhu.Tree instead of a *residual.Graph;
// exactly one of the two return values is non-nil. The parse runs on its
// own goroutine so readCtx's deadline, if any, bounds only this read —
// never the solver call that follows it.
func readGraph(readCtx context.Context, r *bufio.Reader, gomoryHuMode bool) (*residual.Graph, *gomoryhu.Tree, error) {
	type result struct {
		g   *residual.Graph
		t   *gomoryhu.Tree
		err error
	}
	done := make(chan result, 1)
	go func() {
		g, t, err := parseGraph(r, gomoryHuMode)
		done <- result{g: g, t: t, err: err}
	}()

	select {
	case res := <-done:
		return res.g, res.t, res.err
	case <-readCtx.Done():
		return nil, nil, fmt.Errorf("netflow: stdin read: %w", readCtx.Err())
	}
}

// readBounded runs fn on its own goroutine and returns readCtx's error
// instead of fn's result if readCtx expires first.
func readBounded(readCtx context.Context, fn func() error) error {
	done := make(chan error, 1)
	go func() { done <- fn() }()

	select {
	case err := <-done:
		return err
	case <-readCtx.Done():
		return readCtx.Err()
	}
}

func parseGraph(r *bufio.Reader, gomoryHuMode bool) (*residual.Graph, *gomoryhu.Tree, error) {
	var n, m int
	if _, err := fmt.Fscan(r, &n, &m); err != nil {
		return nil, nil, fmt.Errorf("netflow: read n/m: %w", err)
	}

	if gomoryHuMode {
		t := gomoryhu.New(n)
		for i := 0; i < m; i++ {
			var u, v int
			var c int64
			if _, err := fmt.Fscan(r, &u, &v, &c); err != nil {
				return nil, nil, fmt.Errorf("netflow: read edge %d: %w", i, err)
			}
			if err := t.AddEdge(u, v, c); err != nil {
				return nil, nil, fmt.Errorf("netflow: edge %d: %w", i, err)
			}
		}
		return nil, t, nil
	}

	g := residual.New(n)
	for i := 0; i < m; i++ {
		var u, v int
		var c int64
		if _, err := fmt.Fscan(r, &u, &v, &c); err != nil {
			return nil, nil, fmt.Errorf("netflow: read edge %d: %w", i, err)
		}
		if err := g.AddEdge(u, v, c); err != nil {
			return nil, nil, fmt.Errorf("netflow: edge %d: %w", i, err)
		}
	}
	return g, nil, nil
}

func buildSolver(algorithm string, g *residual.Graph, opts flow.FlowOptions) (flow.Solver, error) {
	switch algorithm {
	case "edmonds-karp":
		return flow.NewEdmondsKarp(g, opts), nil
	case "dinic", "":
		return flow.NewDinic(g, opts), nil
	default:
		return nil, fmt.Errorf("netflow: unknown algorithm %q", algorithm)
	}
}
