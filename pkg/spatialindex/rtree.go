package spatialindex

import (
	"math"

	"github.com/lintang-b-s/parkmap/pkg/datastructure"
	"github.com/lintang-b-s/parkmap/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

type Rtree struct {
	tr    *rtree.RTreeG[datastructure.Index]
	graph *datastructure.Graph
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[datastructure.Index]
	return &Rtree{
		tr: &tr,
	}
}

// Build. build r-tree over the graph vertices, with each leaf having bounding
// box with radius boundingBoxRadius (in km)
func (rt *Rtree) Build(graph *datastructure.Graph, boundingBoxRadius float64, log *zap.Logger) {
	log.Info("Building R-tree spatial index...")
	rt.graph = graph

	for v := datastructure.Index(0); v < datastructure.Index(graph.NumberOfVertices()); v++ {
		lat, lon := graph.GetVertexCoordinates(v)

		lowerLat, lowerLon := geo.GetDestinationPoint(lat, lon, 225, boundingBoxRadius)
		upperLat, upperLon := geo.GetDestinationPoint(lat, lon, 45, boundingBoxRadius)

		rt.tr.Insert([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat}, v)
	}

	log.Info("R-tree spatial index built.", zap.Int("vertices", graph.NumberOfVertices()))
}

// SearchWithinRadius search for all vertices within radius (in km) from the query point (qLat, qLon)
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []datastructure.Index {
	lowerLat, lowerLon := geo.GetDestinationPoint(qLat, qLon, 225, radius)
	upperLat, upperLon := geo.GetDestinationPoint(qLat, qLon, 45, radius)

	results := make([]datastructure.Index, 0, 10)
	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, data datastructure.Index) bool {
			results = append(results, data)
			return true
		})
	return results
}

// NearestVertex snaps the query point to the closest road intersection within
// radius km. Returns false if nothing is that close.
func (rt *Rtree) NearestVertex(qLat, qLon, radius float64) (datastructure.Index, bool) {
	candidates := rt.SearchWithinRadius(qLat, qLon, radius)
	if len(candidates) == 0 {
		return 0, false
	}

	best := candidates[0]
	bestDist := math.Inf(1)
	for _, v := range candidates {
		lat, lon := rt.graph.GetVertexCoordinates(v)
		dist := geo.CalculateHaversineDistance(qLat, qLon, lat, lon)
		if dist < bestDist {
			bestDist = dist
			best = v
		}
	}
	return best, true
}
