package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lintang-b-s/parkmap/pkg/datastructure"
	"go.uber.org/zap"
)

const overpassResponse = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6" generator="Overpass API">
  <node id="101" lat="13.0827" lon="80.2707"/>
  <node id="102" lat="13.0901" lon="80.2311"/>
  <node id="103" lat="13.1002" lon="80.2455"/>
  <way id="501">
    <nd ref="101"/>
    <nd ref="102"/>
    <nd ref="103"/>
    <tag k="highway" v="residential"/>
  </way>
</osm>
`

func testRegion() datastructure.Region {
	return datastructure.NewRegion("chennai", 13.14, 12.97, 80.29, 80.08, 13.0827, 80.2707)
}

func TestFetchRoadNetwork(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		gotQuery = r.PostFormValue("data")
		w.Write([]byte(overpassResponse))
	}))
	defer srv.Close()

	client := NewOverpassClient(srv.URL, 5*time.Second, zap.NewNop())
	graph, err := client.FetchRoadNetwork(context.Background(), testRegion())
	if err != nil {
		t.Fatalf("fetch road network: %v", err)
	}

	if !strings.Contains(gotQuery, `way["highway"]`) {
		t.Errorf("query does not select highway ways: %q", gotQuery)
	}
	if !strings.Contains(gotQuery, "12.97") || !strings.Contains(gotQuery, "80.29") {
		t.Errorf("query does not carry the region bounding box: %q", gotQuery)
	}

	if graph.NumberOfVertices() != 3 {
		t.Errorf("vertices = %d, want 3", graph.NumberOfVertices())
	}
	// two way segments, both mirrored
	if graph.NumberOfEdges() != 4 {
		t.Errorf("edges = %d, want 4", graph.NumberOfEdges())
	}
	if graph.IsDegenerate() {
		t.Error("fetched network must be routable")
	}
}

func TestFetchRoadNetworkServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too busy", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewOverpassClient(srv.URL, 5*time.Second, zap.NewNop())
	if _, err := client.FetchRoadNetwork(context.Background(), testRegion()); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestFetchRoadNetworkBadXML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<osm><node"))
	}))
	defer srv.Close()

	client := NewOverpassClient(srv.URL, 5*time.Second, zap.NewNop())
	if _, err := client.FetchRoadNetwork(context.Background(), testRegion()); err == nil {
		t.Fatal("expected error on unparseable response")
	}
}
