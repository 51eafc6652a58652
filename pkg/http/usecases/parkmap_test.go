package usecases

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/lintang-b-s/parkmap/pkg"
	da "github.com/lintang-b-s/parkmap/pkg/datastructure"
	"github.com/lintang-b-s/parkmap/pkg/osmparser"
	"github.com/lintang-b-s/parkmap/pkg/renderer"
	"go.uber.org/zap"
)

type fakeSpatialIndex struct {
	vertex da.Index
	found  bool
}

func (f fakeSpatialIndex) NearestVertex(_, _ float64, _ float64) (da.Index, bool) {
	return f.vertex, f.found
}

func triangleGraph() *da.Graph {
	edges := []osmparser.Edge{
		osmparser.NewEdge(0, 1, 100, pkg.RESIDENTIAL),
		osmparser.NewEdge(1, 0, 100, pkg.RESIDENTIAL),
		osmparser.NewEdge(1, 2, 150, pkg.RESIDENTIAL),
		osmparser.NewEdge(2, 1, 150, pkg.RESIDENTIAL),
		osmparser.NewEdge(2, 0, 200, pkg.RESIDENTIAL),
		osmparser.NewEdge(0, 2, 200, pkg.RESIDENTIAL),
	}
	return osmparser.NewOsmParser().BuildGraph(edges, 3)
}

func newTestService(t *testing.T, graph *da.Graph) *ParkMapService {
	t.Helper()

	mr, err := renderer.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	region := da.NewRegion("chennai", 13.14, 12.97, 80.29, 80.08, 13.0827, 80.2707)
	newRand := func() *rand.Rand { return rand.New(rand.NewSource(7)) }

	return NewParkMapService(zap.NewNop(), graph, region,
		fakeSpatialIndex{vertex: 0, found: true}, mr, newRand, 0.5)
}

func TestSampleRoutes(t *testing.T) {
	svc := newTestService(t, triangleGraph())

	routes, warnings, err := svc.SampleRoutes(3)
	if err != nil {
		t.Fatalf("sample routes: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(routes) != 3 {
		t.Fatalf("routes = %d, want 3", len(routes))
	}

	for i, route := range routes {
		if route.Polyline == "" {
			t.Errorf("route %d has empty encoded polyline", i)
		}
		if route.Distance <= 0 {
			t.Errorf("route %d distance = %v", i, route.Distance)
		}
	}
}

func TestRenderMapWithUpload(t *testing.T) {
	svc := newTestService(t, triangleGraph())

	csvData := `Latitude,Longitude,Action
13.0827,80.2707,Searching
13.0901,80.2311,Parked
`

	var buf bytes.Buffer
	warnings, err := svc.RenderMap(&buf, 2, strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("render map: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	html := buf.String()
	for _, want := range []string{
		"Start Point",
		"Destination",
		"Congested Parking Spot",
		"Available Parking Spot",
		"nearest intersection",
		"parkmap - chennai",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered map missing %q", want)
		}
	}
}

func TestRenderMapWithoutUpload(t *testing.T) {
	svc := newTestService(t, triangleGraph())

	var buf bytes.Buffer
	if _, err := svc.RenderMap(&buf, 1, nil); err != nil {
		t.Fatalf("render map: %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, "Start Point") {
		t.Error("rendered map missing route markers")
	}
	if strings.Contains(html, "Parking Spot") {
		t.Error("rendered map must not carry parking markers without an upload")
	}
}

func TestRenderMapDegenerateNetwork(t *testing.T) {
	svc := newTestService(t, osmparser.NewOsmParser().BuildGraph(nil, 2))

	var buf bytes.Buffer
	if _, err := svc.RenderMap(&buf, 3, nil); err == nil {
		t.Fatal("expected error on network without edges")
	}
	if buf.Len() != 0 {
		t.Error("no artifact must be written when the session halts")
	}
}
