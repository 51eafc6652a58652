package spatialindex

import (
	"testing"

	"github.com/lintang-b-s/parkmap/pkg"
	"github.com/lintang-b-s/parkmap/pkg/datastructure"
	"github.com/lintang-b-s/parkmap/pkg/geo"
	"go.uber.org/zap"
)

func buildIndexedGraph() *datastructure.Graph {
	// three intersections along marina beach road, a few hundred meters apart
	vertices := []*datastructure.Vertex{
		datastructure.NewVertex(13.0500, 80.2824, 0),
		datastructure.NewVertex(13.0550, 80.2820, 1),
		datastructure.NewVertex(13.0600, 80.2816, 2),
		datastructure.NewVertex(0, 0, 3), // sentinel
	}
	vertices[0].SetFirstOut(0)
	vertices[1].SetFirstOut(1)
	vertices[2].SetFirstOut(2)
	vertices[3].SetFirstOut(2)

	outEdges := []*datastructure.OutEdge{
		datastructure.NewOutEdge(0, 1, 500, pkg.RESIDENTIAL),
		datastructure.NewOutEdge(1, 2, 500, pkg.RESIDENTIAL),
	}

	g := datastructure.NewGraph(vertices, outEdges)
	g.SetBoundingBox(geo.NewBoundingBox(13.04, 80.27, 13.07, 80.29))
	return g
}

func TestNearestVertex(t *testing.T) {
	rt := NewRtree()
	rt.Build(buildIndexedGraph(), 0.05, zap.NewNop())

	// just off vertex 1
	v, ok := rt.NearestVertex(13.0551, 80.2821, 0.5)
	if !ok {
		t.Fatal("expected a vertex within 500m")
	}
	if v != 1 {
		t.Errorf("nearest vertex = %d, want 1", v)
	}
}

func TestNearestVertexOutOfRange(t *testing.T) {
	rt := NewRtree()
	rt.Build(buildIndexedGraph(), 0.05, zap.NewNop())

	// delhi is nowhere near the indexed region
	if _, ok := rt.NearestVertex(28.6139, 77.2090, 0.5); ok {
		t.Error("expected no vertex near a far-away query")
	}
}

func TestSearchWithinRadius(t *testing.T) {
	rt := NewRtree()
	rt.Build(buildIndexedGraph(), 0.05, zap.NewNop())

	// 2 km covers all three intersections
	results := rt.SearchWithinRadius(13.0550, 80.2820, 2.0)
	if len(results) != 3 {
		t.Errorf("found %d vertices, want 3", len(results))
	}
}
