// Package pool runs independent external jobs with bounded concurrency.
package pool

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ErrJobFailed wraps the failure of a single task.
var ErrJobFailed = errors.New("job failed")

// Task is one input/output file pair.
type Task struct {
	Input  string
	Output string
}

// State is a task's lifecycle state.
type State int32

const (
	Pending State = iota
	Running
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Terminal reports whether the state is final.
func (s State) Terminal() bool {
	return s == Succeeded || s == Failed
}

// Runner executes one task.
type Runner interface {
	Run(ctx context.Context, task Task) error
}

// RunnerFunc adapts a function to Runner.
type RunnerFunc func(ctx context.Context, task Task) error

// Run calls f.
func (f RunnerFunc) Run(ctx context.Context, task Task) error {
	return f(ctx, task)
}

// Report is the outcome of a pool run.
type Report struct {
	Tasks  []Task
	States []State
}

// Count returns how many tasks ended in state.
func (r *Report) Count(state State) int {
	n := 0
	for _, s := range r.States {
		if s == state {
			n++
		}
	}
	return n
}

// Pool drains a task list with at most Workers concurrent jobs.
type Pool struct {
	workers int
	runner  Runner
}

// New creates a Pool. Workers below one are raised to one.
func New(workers int, runner Runner) *Pool {
	return &Pool{workers: max(workers, 1), runner: runner}
}

// cursor hands out task indexes; each index is claimed once.
type cursor struct {
	next    atomic.Int64
	stopped atomic.Bool
	size    int64
}

func (c *cursor) claim() (int, bool) {
	if c.stopped.Load() {
		return 0, false
	}
	i := c.next.Add(1) - 1
	if i >= c.size {
		return 0, false
	}
	return int(i), true
}

// Run executes every task at most once. After the first failure no new task
// is claimed; jobs already running are allowed to finish. The returned error
// is the first failure observed.
func (p *Pool) Run(ctx context.Context, tasks []Task) (*Report, error) {
	report := &Report{Tasks: tasks, States: make([]State, len(tasks))}
	var mux sync.Mutex
	setState := func(i int, state State) {
		mux.Lock()
		report.States[i] = state
		mux.Unlock()
	}

	c := &cursor{size: int64(len(tasks))}
	group := errgroup.Group{}
	for w := 0; w < min(p.workers, len(tasks)); w++ {
		group.Go(func() error {
			for {
				i, ok := c.claim()
				if !ok {
					return nil
				}
				setState(i, Running)
				if err := p.runner.Run(ctx, tasks[i]); err != nil {
					setState(i, Failed)
					c.stopped.Store(true)
					return fmt.Errorf("%w: %s: %v", ErrJobFailed, tasks[i].Input, err)
				}
				setState(i, Succeeded)
			}
		})
	}
	err := group.Wait()
	return report, err
}
