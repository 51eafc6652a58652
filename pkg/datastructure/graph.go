package datastructure

import (
	"github.com/lintang-b-s/parkmap/pkg"
	"github.com/lintang-b-s/parkmap/pkg/geo"
)

type Index uint32

type Vertex struct {
	lat      float64
	lon      float64
	firstOut Index // index of the first outEdge of this vertex in the flattened graph.outEdges array
	id       Index
	osmId    int64
}

func NewVertex(lat, lon float64, id Index) *Vertex {
	return &Vertex{
		lat: lat,
		lon: lon,
		id:  id,
	}
}

func (v *Vertex) SetFirstOut(firstOut Index) {
	v.firstOut = firstOut
}

func (v *Vertex) SetOsmId(osmId int64) {
	v.osmId = osmId
}

func (v *Vertex) GetID() Index {
	return v.id
}

func (v *Vertex) GetLat() float64 {
	return v.lat
}

func (v *Vertex) GetLon() float64 {
	return v.lon
}

func (v *Vertex) GetFirstOut() Index {
	return v.firstOut
}

func (v *Vertex) GetOsmId() int64 {
	return v.osmId
}

type OutEdge struct {
	dist   float64 // meter
	edgeId Index
	head   Index
	hwType pkg.OsmHighwayType
}

func NewOutEdge(edgeId, head Index, dist float64, hwType pkg.OsmHighwayType) *OutEdge {
	return &OutEdge{
		edgeId: edgeId,
		head:   head,
		dist:   dist,
		hwType: hwType,
	}
}

func (e *OutEdge) GetEdgeId() Index {
	return e.edgeId
}

func (e *OutEdge) GetHead() Index {
	return e.head
}

func (e *OutEdge) GetDist() float64 {
	return e.dist
}

func (e *OutEdge) GetHighwayType() pkg.OsmHighwayType {
	return e.hwType
}

// Graph road network in compressed-sparse-row form. vertices has one sentinel
// entry at the end so that the outEdges of vertex v are
// outEdges[vertices[v].firstOut:vertices[v+1].firstOut]. Immutable after load.
type Graph struct {
	vertices    []*Vertex // numVertices+1 entries, last one is the sentinel
	outEdges    []*OutEdge
	boundingBox geo.BoundingBox
}

func NewGraph(vertices []*Vertex, outEdges []*OutEdge) *Graph {
	return &Graph{
		vertices: vertices,
		outEdges: outEdges,
	}
}

func (g *Graph) NumberOfVertices() int {
	return len(g.vertices) - 1
}

func (g *Graph) NumberOfEdges() int {
	return len(g.outEdges)
}

func (g *Graph) GetVertex(v Index) *Vertex {
	return g.vertices[v]
}

func (g *Graph) GetVertexCoordinates(v Index) (float64, float64) {
	return g.vertices[v].lat, g.vertices[v].lon
}

func (g *Graph) GetOutEdge(e Index) *OutEdge {
	return g.outEdges[e]
}

func (g *Graph) GetOutDegree(v Index) int {
	return int(g.vertices[v+1].firstOut - g.vertices[v].firstOut)
}

// ForOutEdgesOf iterates over the outEdges of vertex u.
func (g *Graph) ForOutEdgesOf(u Index, handle func(outEdge *OutEdge)) {
	for e := g.vertices[u].firstOut; e < g.vertices[u+1].firstOut; e++ {
		handle(g.outEdges[e])
	}
}

// ForOutEdges iterates over every outEdge of the graph together with its tail.
func (g *Graph) ForOutEdges(handle func(outEdge *OutEdge, tail Index)) {
	for v := Index(0); v < Index(g.NumberOfVertices()); v++ {
		for e := g.vertices[v].firstOut; e < g.vertices[v+1].firstOut; e++ {
			handle(g.outEdges[e], v)
		}
	}
}

func (g *Graph) SetBoundingBox(bb geo.BoundingBox) {
	g.boundingBox = bb
}

func (g *Graph) GetBoundingBox() geo.BoundingBox {
	return g.boundingBox
}

// IsDegenerate reports whether the network is too small to route on. route
// generation must not be attempted on a degenerate graph.
func (g *Graph) IsDegenerate() bool {
	return g.NumberOfVertices() < 2 || g.NumberOfEdges() < 1
}
