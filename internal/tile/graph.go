package tile

import (
	"slices"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Graph builds the undirected adjacency graph of resolved records: one
// node per tile and one edge per neighbor pair.
func Graph(records map[ID]Record) *simple.UndirectedGraph {
	ids := sortedKeys(records)
	g := simple.NewUndirectedGraph()
	for _, id := range ids {
		g.AddNode(simple.Node(id))
	}
	for _, id := range ids {
		for _, n := range records[id] {
			other, ok := n.ID()
			if !ok || other == id {
				continue
			}
			g.SetEdge(g.NewEdge(simple.Node(id), simple.Node(other)))
		}
	}
	return g
}

// Components returns the connected groups of tiles in records, each
// sorted ascending and ordered by their smallest ID. A solvable puzzle
// has exactly one.
func Components(records map[ID]Record) [][]ID {
	var out [][]ID
	for _, nodes := range topo.ConnectedComponents(Graph(records)) {
		ids := make([]ID, 0, len(nodes))
		for _, n := range nodes {
			ids = append(ids, ID(n.ID()))
		}
		slices.Sort(ids)
		out = append(out, ids)
	}
	slices.SortFunc(out, func(a, b []ID) int { return int(a[0] - b[0]) })
	return out
}
