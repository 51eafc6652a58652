package osmparser

import (
	"testing"

	"github.com/paulmach/osm"
)

func buildOsmData(oneway string, highway string) *osm.OSM {
	way := &osm.Way{
		ID: 501,
		Nodes: osm.WayNodes{
			{ID: 101}, {ID: 102}, {ID: 103},
		},
		Tags: osm.Tags{
			{Key: "highway", Value: highway},
		},
	}
	if oneway != "" {
		way.Tags = append(way.Tags, osm.Tag{Key: "oneway", Value: oneway})
	}

	return &osm.OSM{
		Nodes: osm.Nodes{
			{ID: 101, Lat: 13.0827, Lon: 80.2707},
			{ID: 102, Lat: 13.0901, Lon: 80.2311},
			{ID: 103, Lat: 13.1002, Lon: 80.2455},
		},
		Ways: osm.Ways{way},
	}
}

func TestParseBidirectionalWay(t *testing.T) {
	g := NewOsmParser().Parse(buildOsmData("", "residential"))

	if g.NumberOfVertices() != 3 {
		t.Errorf("vertices = %d, want 3", g.NumberOfVertices())
	}
	if g.NumberOfEdges() != 4 {
		t.Errorf("edges = %d, want 4 (two segments, mirrored)", g.NumberOfEdges())
	}

	lat, lon := g.GetVertexCoordinates(0)
	if lat != 13.0827 || lon != 80.2707 {
		t.Errorf("vertex 0 coordinates = (%v, %v)", lat, lon)
	}
	if g.GetVertex(0).GetOsmId() != 101 {
		t.Errorf("vertex 0 osm id = %d, want 101", g.GetVertex(0).GetOsmId())
	}
}

func TestParseOnewayWay(t *testing.T) {
	g := NewOsmParser().Parse(buildOsmData("yes", "residential"))

	if g.NumberOfEdges() != 2 {
		t.Errorf("edges = %d, want 2 (no mirror for oneway)", g.NumberOfEdges())
	}
}

func TestParseRejectsNonDriveHighway(t *testing.T) {
	g := NewOsmParser().Parse(buildOsmData("", "footway"))

	if g.NumberOfEdges() != 0 {
		t.Errorf("edges = %d, want 0 for a footway", g.NumberOfEdges())
	}
}

func TestParseSkipsDanglingNodeRefs(t *testing.T) {
	data := buildOsmData("", "residential")
	// way references a node outside the downloaded extent
	data.Ways[0].Nodes = append(data.Ways[0].Nodes, osm.WayNode{ID: 999})

	g := NewOsmParser().Parse(data)

	if g.NumberOfVertices() != 3 {
		t.Errorf("vertices = %d, want 3", g.NumberOfVertices())
	}
	if g.NumberOfEdges() != 4 {
		t.Errorf("edges = %d, want 4", g.NumberOfEdges())
	}
}

func TestIsOneWay(t *testing.T) {
	testCases := []struct {
		name string
		tags map[string]string
		want bool
	}{
		{"explicit yes", map[string]string{"oneway": "yes"}, true},
		{"numeric", map[string]string{"oneway": "1"}, true},
		{"roundabout", map[string]string{"junction": "roundabout"}, true},
		{"absent", map[string]string{}, false},
		{"explicit no", map[string]string{"oneway": "no"}, false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if got := isOneWay(tt.tags); got != tt.want {
				t.Errorf("isOneWay(%v) = %v, want %v", tt.tags, got, tt.want)
			}
		})
	}
}
