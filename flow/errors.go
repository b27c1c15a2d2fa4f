package flow

import "errors"

// ErrSolverBusy is returned when MaxFlow is invoked on a solver instance
// that is already mid-computation. Solvers are Ready → Running → Ready
// state machines and are not reentrant.
var ErrSolverBusy = errors.New("flow: solver is already running")
