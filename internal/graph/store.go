// Package graph implements the worker-side graph engine: a build-once,
// query-many CSR (compressed sparse row) store and the parallel algorithms
// that run over it.
package graph

import (
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/persistorai/graphbench/internal/models"
)

// Weight bounds for synthetic edge weights: [minWeight, maxWeight).
const (
	minWeight = 1.0
	maxWeight = 10.0
)

// WeightFunc assigns a weight to the edge slot u→v at build time.
type WeightFunc func(u, v int) float64

// Option configures a Store.
type Option func(*Store)

// WithSeed makes weight assignment reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Store) { s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithWeightFunc replaces random weights with fn. Intended for fixtures
// that need known weights.
func WithWeightFunc(fn WeightFunc) Option {
	return func(s *Store) { s.weightFn = fn }
}

// Store owns one build session and the most recently built CSR. AddEdge is
// safe for concurrent callers; Build swaps the CSR atomically, so readers
// holding an older *CSR keep a consistent snapshot.
type Store struct {
	mu       sync.Mutex // guards session and rng
	session  *Session
	rng      *rand.Rand
	weightFn WeightFunc
	csr      atomic.Pointer[CSR]
}

// NewStore creates an empty store. Without WithSeed, weights are seeded from the clock.
func NewStore(opts ...Option) *Store {
	s := &Store{}
	for _, o := range opts {
		o(s)
	}

	if s.rng == nil {
		seed := uint64(time.Now().UnixNano())
		s.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}

	return s
}

// AddEdge appends v to u's pending adjacency list.
func (s *Store) AddEdge(u, v int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending().add(u, v)
}

// AddEdges appends a batch of edges to the pending session. The append
// holds the store lock, so a concurrent Build either takes the whole batch
// or leaves it for the next one.
func (s *Store) AddEdges(edges []models.Edge) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending().addBatch(edges)
}

// Pending returns the number of edges waiting for the next Build.
func (s *Store) Pending() int {
	s.mu.Lock()
	sess := s.session
	s.mu.Unlock()

	if sess == nil {
		return 0
	}

	return sess.Len()
}

// pending returns the open session, creating it on demand. Callers hold s.mu.
func (s *Store) pending() *Session {
	if s.session == nil {
		s.session = newSession()
	}

	return s.session
}

// Build snapshots the pending session into a new CSR, assigns weights,
// releases the session and publishes the CSR for queries. Building with no
// pending edges yields an empty CSR.
func (s *Store) Build() *CSR {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session
	s.session = nil

	var adj map[int][]int
	if sess != nil {
		adj = sess.drain()
	}

	weight := s.weightFn
	if weight == nil {
		weight = func(_, _ int) float64 {
			return minWeight + s.rng.Float64()*(maxWeight-minWeight)
		}
	}

	g := buildCSR(adj, weight)
	s.csr.Store(g)

	return g
}

// CSR returns the current built graph, or nil before the first Build.
func (s *Store) CSR() *CSR {
	return s.csr.Load()
}

// Neighbors returns the targets of id in the current CSR; empty when unbuilt or unindexed.
func (s *Store) Neighbors(id int) []int {
	g := s.CSR()
	if g == nil {
		return []int{}
	}

	return g.Neighbors(id)
}

// EdgeWeight returns the weight of u→v in the current CSR, or +Inf.
func (s *Store) EdgeWeight(u, v int) float64 {
	g := s.CSR()
	if g == nil {
		return inf
	}

	return g.EdgeWeight(u, v)
}

// Clear drops both pending and built state.
func (s *Store) Clear() {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()

	s.csr.Store(nil)
}
