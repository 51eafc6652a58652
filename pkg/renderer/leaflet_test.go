package renderer

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderMapView(t *testing.T) {
	mr, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	view := MapView{
		Title:     "chennai parking routes",
		CenterLat: 13.0827,
		CenterLon: 80.2707,
		Zoom:      12,
		Markers: []Marker{
			NewMarker(13.0827, 80.2707, "Start Point", "green"),
			NewMarker(13.1002, 80.2455, "Congested Parking Spot", "red"),
		},
		Polylines: []Polyline{
			NewPolyline([][2]float64{{13.0827, 80.2707}, {13.1002, 80.2455}}, "blue", "Random Route"),
		},
	}

	var buf bytes.Buffer
	if err := mr.Render(&buf, view); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"chennai parking routes",
		"leaflet.js",
		"leaflet.markercluster.js",
		"markerClusterGroup",
		"Start Point",
		"Congested Parking Spot",
		"Random Route",
		`"color":"blue"`,
		"13.0827",
		"80.2707",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered map missing %q", want)
		}
	}
}

func TestRenderEmptyView(t *testing.T) {
	mr, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	var buf bytes.Buffer
	if err := mr.Render(&buf, MapView{Title: "empty", Zoom: 12}); err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(buf.String(), "L.map('map')") {
		t.Error("rendered artifact is not a leaflet map")
	}
}
