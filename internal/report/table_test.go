package report

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/persistorai/graphbench/internal/models"
)

func TestMerge_KeepsWorkerOrder(t *testing.T) {
	a := MST([]models.WeightedEdge{{U: 0, V: 1, Weight: 1.23456}})
	b := MST([]models.WeightedEdge{{U: 5, V: 6, Weight: 2}, {U: 6, V: 7, Weight: 9.99999}})

	merged, err := Merge(a, nil, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "u,v,weight\n0,1,1.2346\n5,6,2.0000\n6,7,10.0000\n"
	if got := string(merged.Bytes()); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestMerge_HeaderMismatch(t *testing.T) {
	_, err := Merge(ShortestPath(0, nil), ShortestPath(1, nil))
	if !errors.Is(err, ErrHeaderMismatch) {
		t.Errorf("expected ErrHeaderMismatch, got %v", err)
	}
}

func TestMerge_Empty(t *testing.T) {
	if _, err := Merge(); err == nil {
		t.Error("expected error merging nothing")
	}
}

func TestParse_RoundTrip(t *testing.T) {
	src := ShortestPath(3, map[int]int{4: 2147483647, 3: 0, 1: 7})

	got, err := Parse(strings.NewReader(string(src.Bytes())))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Header[1] != "distance_from_3" {
		t.Errorf("header = %v", got.Header)
	}
	if got.Len() != 3 || got.Rows[0][0] != "1" || got.Rows[2][1] != "2147483647" {
		t.Errorf("rows = %v", got.Rows)
	}
}

func TestParse_Empty(t *testing.T) {
	if _, err := Parse(strings.NewReader("")); err == nil {
		t.Error("expected error for empty document")
	}
}

func TestPageRank_GroupsByComponent(t *testing.T) {
	tbl := PageRank([]map[int]float64{
		{4: 0.25, 2: 0.75},
		{9: 1},
	})

	want := "node_id,component_id,pagerank\n2,0,0.75\n4,0,0.25\n9,1,1\n"
	if got := string(tbl.Bytes()); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestComponents_HashSummary(t *testing.T) {
	tbl := Components([][]int{{1, 2, 3}, {10}})

	want := "component_id,size,hash_summary\n0,3,6\n1,1,10\n"
	if got := string(tbl.Bytes()); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestTimings(t *testing.T) {
	tbl := Timings([]Timing{{
		Workers: 2, Nodes: 1000,
		BFS: 1500 * time.Millisecond, DFS: 2 * time.Second,
		PageRank: 250 * time.Millisecond, MST: time.Millisecond, ShortestPath: 0,
	}})

	want := "workers,nodes,bfs_time,dfs_time,pagerank_time,mst_time,shortest_path_time\n" +
		"2,1000,1.500,2.000,0.250,0.001,0.000\n"
	if got := string(tbl.Bytes()); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}
