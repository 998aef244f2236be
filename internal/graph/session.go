package graph

import (
	"sync"

	"github.com/persistorai/graphbench/internal/models"
)

// Session accumulates pending adjacency lists between load and finalize.
// Its lifetime is one load cycle: Build drains it and Clear discards it.
type Session struct {
	mu    sync.Mutex
	adj   map[int][]int
	edges int
}

func newSession() *Session {
	return &Session{adj: make(map[int][]int)}
}

func (s *Session) add(u, v int) {
	s.mu.Lock()
	s.adj[u] = append(s.adj[u], v)
	s.edges++
	s.mu.Unlock()
}

func (s *Session) addBatch(edges []models.Edge) {
	s.mu.Lock()
	for _, e := range edges {
		s.adj[e.U] = append(s.adj[e.U], e.V)
	}
	s.edges += len(edges)
	s.mu.Unlock()
}

// Len returns the number of pending edges.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.edges
}

// drain hands the adjacency map to the caller and empties the session.
func (s *Session) drain() map[int][]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	adj := s.adj
	s.adj = make(map[int][]int)
	s.edges = 0

	return adj
}
