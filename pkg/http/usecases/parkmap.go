package usecases

import (
	"fmt"
	"io"
	"math/rand"

	da "github.com/lintang-b-s/parkmap/pkg/datastructure"
	"github.com/lintang-b-s/parkmap/pkg/geo"
	"github.com/lintang-b-s/parkmap/pkg/parking"
	"github.com/lintang-b-s/parkmap/pkg/renderer"
	"github.com/lintang-b-s/parkmap/pkg/sampler"
	"github.com/lintang-b-s/parkmap/pkg/util"
	"go.uber.org/zap"
)

// SampledRoute API-facing shape of one sampled route.
type SampledRoute struct {
	Polyline    string
	Distance    float64
	Color       string
	Origin      geo.Coordinate
	Destination geo.Coordinate
}

// ParkMapService the whole session pipeline: road network in, classified
// upload + sampled routes + rendered map out. All state is threaded through
// parameters and return values; the only shared piece is the immutable graph.
type ParkMapService struct {
	log          *zap.Logger
	graph        *da.Graph
	region       da.Region
	spatialIndex SpatialIndex
	mapRenderer  *renderer.MapRenderer
	newRand      func() *rand.Rand
	snapRadius   float64 // km
}

func NewParkMapService(log *zap.Logger, graph *da.Graph, region da.Region,
	spatialIndex SpatialIndex, mapRenderer *renderer.MapRenderer,
	newRand func() *rand.Rand, snapRadius float64) *ParkMapService {
	return &ParkMapService{
		log:          log,
		graph:        graph,
		region:       region,
		spatialIndex: spatialIndex,
		mapRenderer:  mapRenderer,
		newRand:      newRand,
		snapRadius:   snapRadius,
	}
}

// SampleRoutes draws count random shortest-path routes off the network.
func (s *ParkMapService) SampleRoutes(count int) ([]SampledRoute, []string, error) {
	routeSampler := sampler.NewRouteSampler(s.graph, s.newRand(), s.log)
	routes, warnings, err := routeSampler.Sample(count)
	if err != nil {
		return nil, nil, err
	}

	sampled := make([]SampledRoute, 0, len(routes))
	for _, route := range routes {
		sampled = append(sampled, SampledRoute{
			Polyline:    geo.PolylineFromCoords(route.GetCoords()),
			Distance:    route.GetDist(),
			Color:       route.GetColor(),
			Origin:      route.GetOrigin(),
			Destination: route.GetDestination(),
		})
	}
	return sampled, warnings, nil
}

// ClassifyUpload partitions an uploaded CSV into congested/available events.
func (s *ParkMapService) ClassifyUpload(upload io.Reader) parking.Classification {
	return parking.Classify(upload, s.log)
}

// RenderMap runs the session pipeline (classify -> sample -> render) and
// writes the Leaflet artifact to w. upload may be nil (routes only). The
// returned warnings aggregate the classifier's and the sampler's.
func (s *ParkMapService) RenderMap(w io.Writer, count int, upload io.Reader) ([]string, error) {
	if s.graph.IsDegenerate() {
		return nil, util.WrapErrorf(sampler.ErrDegenerateNetwork, util.ErrInternalServerError,
			"no edges found in the graph for region %q", s.region.GetName())
	}

	var classification parking.Classification
	if upload != nil {
		classification = s.ClassifyUpload(upload)
	}

	routes, sampleWarnings, err := s.SampleRoutesRaw(count)
	if err != nil {
		return nil, err
	}

	warnings := append(classification.GetWarnings(), sampleWarnings...)

	view := s.buildView(routes, classification)
	if err := s.mapRenderer.Render(w, view); err != nil {
		return warnings, err
	}
	return warnings, nil
}

// SampleRoutesRaw same as SampleRoutes but keeps the full coordinate paths
// for rendering.
func (s *ParkMapService) SampleRoutesRaw(count int) ([]da.Route, []string, error) {
	routeSampler := sampler.NewRouteSampler(s.graph, s.newRand(), s.log)
	return routeSampler.Sample(count)
}

func (s *ParkMapService) buildView(routes []da.Route, classification parking.Classification) renderer.MapView {
	center := s.region.GetCenter()

	markers := make([]renderer.Marker, 0)
	polylines := make([]renderer.Polyline, 0, len(routes))

	for _, route := range routes {
		coords := make([][2]float64, 0, len(route.GetCoords()))
		for _, c := range route.GetCoords() {
			coords = append(coords, [2]float64{c.Lat, c.Lon})
		}
		polylines = append(polylines, renderer.NewPolyline(coords, route.GetColor(), "Random Route"))

		orig := route.GetOrigin()
		dest := route.GetDestination()
		markers = append(markers,
			renderer.NewMarker(orig.Lat, orig.Lon, "Start Point", "green"),
			renderer.NewMarker(dest.Lat, dest.Lon, "Destination", "red"))
	}

	for _, event := range classification.GetCongested() {
		markers = append(markers, s.eventMarker(event, "Congested Parking Spot", "red"))
	}
	for _, event := range classification.GetAvailable() {
		markers = append(markers, s.eventMarker(event, "Available Parking Spot", "green"))
	}

	return renderer.MapView{
		Title:     fmt.Sprintf("parkmap - %s", s.region.GetName()),
		CenterLat: center.Lat,
		CenterLon: center.Lon,
		Zoom:      12,
		Markers:   markers,
		Polylines: polylines,
	}
}

// eventMarker annotates the popup with the closest road intersection, if one
// is within snapRadius.
func (s *ParkMapService) eventMarker(event parking.Event, popup, color string) renderer.Marker {
	coord := event.GetCoord()
	if v, ok := s.spatialIndex.NearestVertex(coord.Lat, coord.Lon, s.snapRadius); ok {
		lat, lon := s.graph.GetVertexCoordinates(v)
		dist := geo.CalculateHaversineDistance(coord.Lat, coord.Lon, lat, lon) * 1000.0
		popup = fmt.Sprintf("%s (%.0f m from nearest intersection)", popup, dist)
	}
	return renderer.NewMarker(coord.Lat, coord.Lon, popup, color)
}
