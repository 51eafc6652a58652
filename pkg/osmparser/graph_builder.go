package osmparser

import (
	"sort"

	"github.com/lintang-b-s/parkmap/pkg/datastructure"
	"github.com/lintang-b-s/parkmap/pkg/geo"
)

// BuildGraph lays the scanned edges out in compressed-sparse-row order and
// attaches vertex coordinates and the network bounding box.
func (p *OsmParser) BuildGraph(scannedEdges []Edge, numV uint32) *datastructure.Graph {
	sort.SliceStable(scannedEdges, func(i, j int) bool {
		return scannedEdges[i].from < scannedEdges[j].from
	})

	vertices := make([]*datastructure.Vertex, numV+1)
	for v := uint32(0); v < numV+1; v++ {
		vertices[v] = datastructure.NewVertex(0, 0, datastructure.Index(v))
	}

	for osmID, vId := range p.nodeIDMap {
		coord := p.acceptedNodeMap[osmID]
		vertices[vId] = datastructure.NewVertex(coord.Lat, coord.Lon, datastructure.Index(vId))
		vertices[vId].SetOsmId(osmID)
	}

	outEdges := make([]*datastructure.OutEdge, 0, len(scannedEdges))

	edgeOffset := datastructure.Index(0)
	nextEdge := 0
	for v := uint32(0); v < numV; v++ {
		vertices[v].SetFirstOut(edgeOffset)
		for nextEdge < len(scannedEdges) && scannedEdges[nextEdge].from == v {
			e := scannedEdges[nextEdge]
			outEdges = append(outEdges, datastructure.NewOutEdge(
				datastructure.Index(nextEdge), datastructure.Index(e.to), e.dist, e.hwType))
			edgeOffset++
			nextEdge++
		}
	}
	// sentinel
	vertices[numV].SetFirstOut(edgeOffset)

	graph := datastructure.NewGraph(vertices, outEdges)
	graph.SetBoundingBox(boundingBoxOf(vertices[:numV]))
	return graph
}

func boundingBoxOf(vertices []*datastructure.Vertex) geo.BoundingBox {
	if len(vertices) == 0 {
		return geo.NewBoundingBox(0, 0, 0, 0)
	}
	bb := geo.NewBoundingBox(vertices[0].GetLat(), vertices[0].GetLon(),
		vertices[0].GetLat(), vertices[0].GetLon())
	for _, v := range vertices[1:] {
		bb = bb.Extend(v.GetLat(), v.GetLon())
	}
	return bb
}
