package routing

import (
	"github.com/lintang-b-s/parkmap/pkg"
	da "github.com/lintang-b-s/parkmap/pkg/datastructure"
)

const INVALID_VERTEX_ID = da.Index(^uint32(0))

// Dijkstra single-pair shortest path by edge length (meter) over the CSR
// graph. State is preallocated per query, so one Dijkstra value per search.
type Dijkstra struct {
	graph *da.Graph

	dist    []float64
	parent  []da.Index
	pqNodes []*da.PriorityQueueNode[da.Index]

	pq *da.MinHeap[da.Index]

	numSettledNodes int
}

func NewDijkstra(graph *da.Graph) *Dijkstra {
	return &Dijkstra{
		graph: graph,
		pq:    da.NewFourAryHeap[da.Index](),
	}
}

func (d *Dijkstra) preallocate() {
	n := d.graph.NumberOfVertices()
	d.dist = make([]float64, n)
	d.parent = make([]da.Index, n)
	d.pqNodes = make([]*da.PriorityQueueNode[da.Index], n)
	for i := 0; i < n; i++ {
		d.dist[i] = pkg.INF_WEIGHT
		d.parent[i] = INVALID_VERTEX_ID
	}
	d.pq.Clear()
	d.pq.Preallocate(n)
	d.numSettledNodes = 0
}

// ShortestPath returns the vertex path from s to t, its total length in
// meter, and whether t is reachable from s at all.
func (d *Dijkstra) ShortestPath(s, t da.Index) ([]da.Index, float64, bool) {
	d.preallocate()

	d.dist[s] = 0
	sNode := da.NewPriorityQueueNode(0, s)
	d.pqNodes[s] = sNode
	d.pq.Insert(sNode)

	for !d.pq.IsEmpty() {
		uNode, err := d.pq.ExtractMin()
		if err != nil {
			break
		}
		u := uNode.GetItem()
		d.numSettledNodes++

		if u == t {
			break
		}

		d.graph.ForOutEdgesOf(u, func(outEdge *da.OutEdge) {
			v := outEdge.GetHead()
			newDist := d.dist[u] + outEdge.GetDist()
			if newDist >= d.dist[v] {
				return
			}

			d.dist[v] = newDist
			d.parent[v] = u
			if d.pqNodes[v] != nil && d.pqNodes[v].GetPos() >= 0 {
				d.pq.DecreaseKey(d.pqNodes[v], newDist)
			} else {
				vNode := da.NewPriorityQueueNode(newDist, v)
				d.pqNodes[v] = vNode
				d.pq.Insert(vNode)
			}
		})
	}

	if d.dist[t] == pkg.INF_WEIGHT {
		return nil, 0, false
	}

	path := make([]da.Index, 0)
	for cur := t; cur != INVALID_VERTEX_ID; cur = d.parent[cur] {
		path = append(path, cur)
		if cur == s {
			break
		}
	}

	// path was collected target-first
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, d.dist[t], true
}

func (d *Dijkstra) GetNumSettledNodes() int {
	return d.numSettledNodes
}
