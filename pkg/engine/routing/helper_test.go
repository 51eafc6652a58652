package routing

import (
	"github.com/lintang-b-s/parkmap/pkg"
	da "github.com/lintang-b-s/parkmap/pkg/datastructure"
	"github.com/lintang-b-s/parkmap/pkg/osmparser"
)

type pairEdge struct {
	to     int
	weight float64
}

// buildGraph builds a CSR graph from an adjacency list. coordinates don't
// matter for reachability, the parser leaves them at the origin.
func buildGraph(adjList [][]pairEdge) *da.Graph {
	edges := make([]osmparser.Edge, 0)
	for from, outs := range adjList {
		for _, e := range outs {
			edges = append(edges, osmparser.NewEdge(uint32(from), uint32(e.to), e.weight, pkg.RESIDENTIAL))
		}
	}

	op := osmparser.NewOsmParser()
	return op.BuildGraph(edges, uint32(len(adjList)))
}
