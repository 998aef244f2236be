package graph

import (
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// DefaultPoolWidth is the number of concurrent tasks per traversal level.
const DefaultPoolWidth = 4

// taskPool runs tasks with bounded concurrency. Unlike a bare errgroup it
// never stops on the first error: every failure (including a recovered
// panic) is counted and the remaining tasks still run.
type taskPool struct {
	group    errgroup.Group
	failures atomic.Int64
}

func newTaskPool(width int) *taskPool {
	if width < 1 {
		width = 1
	}

	p := &taskPool{}
	p.group.SetLimit(width)

	return p
}

// Go schedules fn, blocking while the pool is full.
func (p *taskPool) Go(fn func() error) {
	p.group.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v", errPanicked, r)
			}

			if err != nil {
				p.failures.Add(1)
			}
		}()

		return fn()
	})
}

// Wait blocks until every scheduled task returns and reports how many failed.
func (p *taskPool) Wait() int {
	_ = p.group.Wait() // failures are counted per task
	return int(p.failures.Load())
}

var errPanicked = errors.New("task panicked")
