package datastructure

import (
	"github.com/lintang-b-s/parkmap/pkg/geo"
)

// Route ephemeral shortest path between two sampled vertices. Recomputed
// every run, never cached.
type Route struct {
	vertices []Index
	coords   []geo.Coordinate
	dist     float64 // meter
	color    string
}

func NewRoute(vertices []Index, coords []geo.Coordinate, dist float64, color string) Route {
	return Route{
		vertices: vertices,
		coords:   coords,
		dist:     dist,
		color:    color,
	}
}

func (r Route) GetVertices() []Index {
	return r.vertices
}

func (r Route) GetCoords() []geo.Coordinate {
	return r.coords
}

func (r Route) GetDist() float64 {
	return r.dist
}

func (r Route) GetColor() string {
	return r.color
}

func (r Route) GetOrigin() geo.Coordinate {
	return r.coords[0]
}

func (r Route) GetDestination() geo.Coordinate {
	return r.coords[len(r.coords)-1]
}
