package sampler

import (
	"errors"
	"math/rand"

	"github.com/lintang-b-s/parkmap/pkg"
	da "github.com/lintang-b-s/parkmap/pkg/datastructure"
	"github.com/lintang-b-s/parkmap/pkg/engine/routing"
	"github.com/lintang-b-s/parkmap/pkg/geo"
	"github.com/lintang-b-s/parkmap/pkg/util"
	"go.uber.org/zap"
)

var ErrDegenerateNetwork = errors.New("road network has no routable edges")

// RouteSampler draws random origin/destination pairs from the network and
// computes their shortest paths by length. The random source is injected so
// tests can force deterministic pairs; production seeds from time.
type RouteSampler struct {
	graph *da.Graph
	rng   *rand.Rand
	log   *zap.Logger
}

func NewRouteSampler(graph *da.Graph, rng *rand.Rand, log *zap.Logger) *RouteSampler {
	return &RouteSampler{
		graph: graph,
		rng:   rng,
		log:   log,
	}
}

func clampCount(count int) int {
	if count < pkg.MIN_ROUTE_COUNT {
		return pkg.MIN_ROUTE_COUNT
	}
	if count > pkg.MAX_ROUTE_COUNT {
		return pkg.MAX_ROUTE_COUNT
	}
	return count
}

// Sample computes up to count random routes. An unreachable pair produces a
// warning and is skipped, so fewer than count routes may come back. A
// degenerate network is an error: the session must halt, not render.
func (s *RouteSampler) Sample(count int) ([]da.Route, []string, error) {
	if s.graph.IsDegenerate() {
		return nil, nil, util.WrapErrorf(ErrDegenerateNetwork, util.ErrInternalServerError,
			"cannot sample routes: %d vertices, %d edges",
			s.graph.NumberOfVertices(), s.graph.NumberOfEdges())
	}

	count = clampCount(count)
	n := s.graph.NumberOfVertices()
	dijkstra := routing.NewDijkstra(s.graph)

	routes := make([]da.Route, 0, count)
	warnings := make([]string, 0)

	for i := 0; i < count; i++ {
		orig := da.Index(s.rng.Intn(n))
		dest := da.Index(s.rng.Intn(n))
		for dest == orig {
			dest = da.Index(s.rng.Intn(n))
		}

		path, dist, found := dijkstra.ShortestPath(orig, dest)
		if !found {
			warning := "no path found between random nodes"
			warnings = append(warnings, warning)
			s.log.Warn(warning,
				zap.Uint32("origin", uint32(orig)), zap.Uint32("destination", uint32(dest)))
			continue
		}

		coords := make([]geo.Coordinate, 0, len(path))
		for _, v := range path {
			lat, lon := s.graph.GetVertexCoordinates(v)
			coords = append(coords, geo.NewCoordinate(lat, lon))
		}

		color := pkg.RoutePalette[s.rng.Intn(len(pkg.RoutePalette))]
		routes = append(routes, da.NewRoute(path, coords, dist, color))
	}

	return routes, warnings, nil
}
