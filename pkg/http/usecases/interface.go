package usecases

import (
	"github.com/lintang-b-s/parkmap/pkg/datastructure"
)

type SpatialIndex interface {
	NearestVertex(qLat, qLon, radius float64) (datastructure.Index, bool)
}
