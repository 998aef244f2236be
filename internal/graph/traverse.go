package graph

import (
	"context"
	"sync"
)

// Order selects how a frontier is consumed.
type Order int

const (
	// BreadthFirst consumes each frontier FIFO.
	BreadthFirst Order = iota
	// DepthFirst consumes each frontier LIFO. Expansion is still level
	// synchronous and concurrent, so no DFS discovery-order property holds.
	DepthFirst
)

// TraversalResult is the outcome of one traversal call.
type TraversalResult struct {
	Visited     []int // real ids, ascending
	FailedTasks int
}

// Complete reports whether every expansion task succeeded.
func (r *TraversalResult) Complete() bool { return r.FailedTasks == 0 }

// Traverser runs parallel traversals over one CSR snapshot.
type Traverser struct {
	g      *CSR
	width  int
	expand func(idx int) ([]int, error)
}

// NewTraverser returns a traverser with width concurrent tasks per level.
func NewTraverser(g *CSR, width int) *Traverser {
	if width < 1 {
		width = DefaultPoolWidth
	}

	t := &Traverser{g: g, width: width}
	t.expand = func(idx int) ([]int, error) {
		return g.neighborIndices(idx), nil
	}

	return t
}

// BFS traverses from start, expanding each level concurrently.
func (t *Traverser) BFS(ctx context.Context, start int) (*TraversalResult, error) {
	return t.from(ctx, start, BreadthFirst)
}

// DFS traverses from start over a stack-like frontier.
func (t *Traverser) DFS(ctx context.Context, start int) (*TraversalResult, error) {
	return t.from(ctx, start, DepthFirst)
}

// BFSAll traverses every indexed node, one task per unclaimed root.
func (t *Traverser) BFSAll(ctx context.Context) (*TraversalResult, error) {
	return t.all(ctx, BreadthFirst)
}

// DFSAll is BFSAll with each task draining a stack instead of a queue.
func (t *Traverser) DFSAll(ctx context.Context) (*TraversalResult, error) {
	return t.all(ctx, DepthFirst)
}

func (t *Traverser) from(ctx context.Context, start int, order Order) (*TraversalResult, error) {
	si, ok := t.g.nodeToIndex[start]
	if !ok {
		// The visited set is seeded before lookup; an unindexed start has no neighbors.
		return &TraversalResult{Visited: []int{start}}, nil
	}

	visited := newVisitedSet(t.g.NodeCount())
	visited.claim(si)

	frontier := []int{si}
	failed := 0

	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return t.result(visited, failed), err
		}

		var (
			mu   sync.Mutex
			next []int
		)

		pool := newTaskPool(t.width)
		for _, idx := range frontier {
			pool.Go(func() error {
				targets, err := t.expand(idx)
				if err != nil {
					return err
				}

				var found []int
				for _, vi := range targets {
					if visited.claim(vi) {
						found = append(found, vi)
					}
				}

				if len(found) > 0 {
					mu.Lock()
					next = append(next, found...)
					mu.Unlock()
				}

				return nil
			})
		}
		failed += pool.Wait()

		if order == DepthFirst {
			reverse(next)
		}
		frontier = next
	}

	return t.result(visited, failed), nil
}

func (t *Traverser) all(ctx context.Context, order Order) (*TraversalResult, error) {
	visited := newVisitedSet(t.g.NodeCount())

	var (
		mu     sync.Mutex
		failed int
	)

	roots := newTaskPool(t.width)
	for root := 0; root < t.g.NodeCount(); root++ {
		if ctx.Err() != nil {
			break
		}

		if !visited.claim(root) {
			continue
		}

		roots.Go(func() error {
			n := t.drain(ctx, root, visited, order)
			if n > 0 {
				mu.Lock()
				failed += n
				mu.Unlock()
			}

			return nil
		})
	}
	failed += roots.Wait()

	return t.result(visited, failed), ctx.Err()
}

// drain exhausts the reach of root sequentially against the shared visited
// set and returns the number of failed expansions.
func (t *Traverser) drain(ctx context.Context, root int, visited *visitedSet, order Order) int {
	work := []int{root}
	failed := 0

	for len(work) > 0 && ctx.Err() == nil {
		var idx int
		if order == DepthFirst {
			idx, work = work[len(work)-1], work[:len(work)-1]
		} else {
			idx, work = work[0], work[1:]
		}

		targets, err := t.safeExpand(idx)
		if err != nil {
			failed++
			continue
		}

		for _, vi := range targets {
			if visited.claim(vi) {
				work = append(work, vi)
			}
		}
	}

	return failed
}

func (t *Traverser) safeExpand(idx int) (targets []int, err error) {
	defer func() {
		if r := recover(); r != nil {
			targets, err = nil, errPanicked
		}
	}()

	return t.expand(idx)
}

func (t *Traverser) result(visited *visitedSet, failed int) *TraversalResult {
	return &TraversalResult{
		Visited:     t.g.ids(visited.indices()),
		FailedTasks: failed,
	}
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
