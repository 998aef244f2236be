package report

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/persistorai/graphbench/internal/models"
)

// PageRank builds the node_id,component_id,pagerank table. ranks[i] holds the
// ranks of component i; rows are grouped by component and sorted by node.
func PageRank(ranks []map[int]float64) *Table {
	t := &Table{Header: []string{"node_id", "component_id", "pagerank"}}

	for cid, comp := range ranks {
		nodes := make([]int, 0, len(comp))
		for id := range comp {
			nodes = append(nodes, id)
		}
		slices.Sort(nodes)

		for _, id := range nodes {
			t.Rows = append(t.Rows, []string{
				strconv.Itoa(id),
				strconv.Itoa(cid),
				strconv.FormatFloat(comp[id], 'f', -1, 64),
			})
		}
	}

	return t
}

// MST builds the u,v,weight table in acceptance order.
func MST(edges []models.WeightedEdge) *Table {
	t := &Table{Header: []string{"u", "v", "weight"}}

	for _, e := range edges {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(e.U),
			strconv.Itoa(e.V),
			strconv.FormatFloat(e.Weight, 'f', 4, 64),
		})
	}

	return t
}

// ShortestPath builds the node,distance_from_<start> table sorted by node.
func ShortestPath(start int, dist map[int]int) *Table {
	t := &Table{Header: []string{"node", "distance_from_" + strconv.Itoa(start)}}

	nodes := make([]int, 0, len(dist))
	for id := range dist {
		nodes = append(nodes, id)
	}
	slices.Sort(nodes)

	for _, id := range nodes {
		t.Rows = append(t.Rows, []string{strconv.Itoa(id), strconv.Itoa(dist[id])})
	}

	return t
}

// Components builds the component_id,size,hash_summary table, where the hash
// is the sum of member ids.
func Components(components [][]int) *Table {
	t := &Table{Header: []string{"component_id", "size", "hash_summary"}}

	for cid, comp := range components {
		var sum int64
		for _, id := range comp {
			sum += int64(id)
		}

		t.Rows = append(t.Rows, []string{
			strconv.Itoa(cid),
			strconv.Itoa(len(comp)),
			strconv.FormatInt(sum, 10),
		})
	}

	return t
}

// Timing is one benchmark measurement: per-phase wall time for a worker
// count and graph size.
type Timing struct {
	Workers      int           `json:"workers"`
	Nodes        int           `json:"nodes"`
	BFS          time.Duration `json:"bfs"`
	DFS          time.Duration `json:"dfs"`
	PageRank     time.Duration `json:"pagerank"`
	MST          time.Duration `json:"mst"`
	ShortestPath time.Duration `json:"shortest_path"`
}

// Timings builds the benchmark summary table with times in seconds.
func Timings(rows []Timing) *Table {
	t := &Table{Header: []string{
		"workers", "nodes", "bfs_time", "dfs_time", "pagerank_time", "mst_time", "shortest_path_time",
	}}

	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(r.Workers),
			strconv.Itoa(r.Nodes),
			seconds(r.BFS),
			seconds(r.DFS),
			seconds(r.PageRank),
			seconds(r.MST),
			seconds(r.ShortestPath),
		})
	}

	return t
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.3f", d.Seconds())
}
