package renderer

import (
	"encoding/json"
	"html/template"
	"io"

	"github.com/lintang-b-s/parkmap/pkg/util"
)

// Marker clustered map pin. Color is "green" for route origins and available
// spots, "red" for route destinations and congested spots.
type Marker struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Popup string  `json:"popup"`
	Color string  `json:"color"`
}

func NewMarker(lat, lon float64, popup, color string) Marker {
	return Marker{Lat: lat, Lon: lon, Popup: popup, Color: color}
}

type Polyline struct {
	Coords  [][2]float64 `json:"coords"`
	Color   string       `json:"color"`
	Tooltip string       `json:"tooltip"`
}

func NewPolyline(coords [][2]float64, color, tooltip string) Polyline {
	return Polyline{Coords: coords, Color: color, Tooltip: tooltip}
}

// MapView everything one rendered map needs.
type MapView struct {
	Title     string
	CenterLat float64
	CenterLon float64
	Zoom      int
	Markers   []Marker
	Polylines []Polyline
}

type MapRenderer struct {
	tmpl *template.Template
}

func New() (*MapRenderer, error) {
	tmpl, err := template.New("map").Parse(leafletTemplate)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "parse leaflet template")
	}
	return &MapRenderer{tmpl: tmpl}, nil
}

// Render writes the interactive Leaflet artifact for the view.
func (mr *MapRenderer) Render(w io.Writer, view MapView) error {
	markersJSON, err := json.Marshal(view.Markers)
	if err != nil {
		return util.WrapErrorf(err, util.ErrInternalServerError, "marshal markers")
	}
	polylinesJSON, err := json.Marshal(view.Polylines)
	if err != nil {
		return util.WrapErrorf(err, util.ErrInternalServerError, "marshal polylines")
	}

	data := struct {
		Title     string
		CenterLat float64
		CenterLon float64
		Zoom      int
		Markers   template.JS
		Polylines template.JS
	}{
		Title:     view.Title,
		CenterLat: view.CenterLat,
		CenterLon: view.CenterLon,
		Zoom:      view.Zoom,
		Markers:   template.JS(markersJSON),
		Polylines: template.JS(polylinesJSON),
	}

	return mr.tmpl.Execute(w, data)
}

const leafletTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8"/>
<title>{{.Title}}</title>
<meta name="viewport" content="width=device-width, initial-scale=1.0"/>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"/>
<link rel="stylesheet" href="https://unpkg.com/leaflet.markercluster@1.5.3/dist/MarkerCluster.css"/>
<link rel="stylesheet" href="https://unpkg.com/leaflet.markercluster@1.5.3/dist/MarkerCluster.Default.css"/>
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<script src="https://unpkg.com/leaflet.markercluster@1.5.3/dist/leaflet.markercluster.js"></script>
<style>html, body, #map { height: 100%; margin: 0; }</style>
</head>
<body>
<div id="map"></div>
<script>
var map = L.map('map').setView([{{.CenterLat}}, {{.CenterLon}}], {{.Zoom}});
L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png', {
	attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);

var cluster = L.markerClusterGroup();
var markers = {{.Markers}};
markers.forEach(function (m) {
	L.circleMarker([m.lat, m.lon], {
		radius: 8,
		color: m.color,
		fillColor: m.color,
		fillOpacity: 0.9
	}).bindPopup(m.popup).addTo(cluster);
});
map.addLayer(cluster);

var polylines = {{.Polylines}};
polylines.forEach(function (p) {
	L.polyline(p.coords, {
		color: p.color,
		weight: 5,
		opacity: 0.8
	}).bindTooltip(p.tooltip).addTo(map);
});
</script>
</body>
</html>
`
