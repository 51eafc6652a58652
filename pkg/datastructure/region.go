package datastructure

import (
	"github.com/lintang-b-s/parkmap/pkg/geo"
)

// Region deploy-time fixed area the road network is loaded for. The name keys
// the snapshot file, the bounding box drives the provider query.
type Region struct {
	name   string
	bbox   geo.BoundingBox
	center geo.Coordinate
}

func NewRegion(name string, north, south, east, west, centerLat, centerLon float64) Region {
	return Region{
		name:   name,
		bbox:   geo.NewBoundingBox(south, west, north, east),
		center: geo.NewCoordinate(centerLat, centerLon),
	}
}

func (r Region) GetName() string {
	return r.name
}

func (r Region) GetBoundingBox() geo.BoundingBox {
	return r.bbox
}

func (r Region) GetCenter() geo.Coordinate {
	return r.center
}
