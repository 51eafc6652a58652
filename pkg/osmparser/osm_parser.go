package osmparser

import (
	"context"
	"os"
	"runtime"

	"github.com/lintang-b-s/parkmap/pkg"
	"github.com/lintang-b-s/parkmap/pkg/datastructure"
	"github.com/lintang-b-s/parkmap/pkg/geo"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
)

type NodeCoord struct {
	Lat float64
	Lon float64
}

func NewNodeCoord(lat, lon float64) NodeCoord {
	return NodeCoord{Lat: lat, Lon: lon}
}

type Edge struct {
	from   uint32
	to     uint32
	dist   float64 // meter
	hwType pkg.OsmHighwayType
}

func NewEdge(from, to uint32, dist float64, hwType pkg.OsmHighwayType) Edge {
	return Edge{from: from, to: to, dist: dist, hwType: hwType}
}

type osmWay struct {
	nodes  []int64
	oneWay bool
	hwType pkg.OsmHighwayType
}

// OsmParser builds a drive-network graph out of raw OSM data. Every node of an
// accepted way becomes a vertex; consecutive way nodes become directed edges
// weighted by haversine length, mirrored unless the way is oneway.
type OsmParser struct {
	acceptedNodeMap map[int64]NodeCoord
	nodeIDMap       map[int64]uint32
	ways            []osmWay
	maxVertexID     uint32
}

func NewOsmParser() *OsmParser {
	return &OsmParser{
		acceptedNodeMap: make(map[int64]NodeCoord),
		nodeIDMap:       make(map[int64]uint32),
		ways:            make([]osmWay, 0),
	}
}

// https://wiki.openstreetmap.org/wiki/OSM_tags_for_routing/Telenav
var acceptedHighway = map[string]struct{}{
	"motorway":         struct{}{},
	"motorway_link":    struct{}{},
	"trunk":            struct{}{},
	"trunk_link":       struct{}{},
	"primary":          struct{}{},
	"primary_link":     struct{}{},
	"secondary":        struct{}{},
	"secondary_link":   struct{}{},
	"residential":      struct{}{},
	"residential_link": struct{}{},
	"service":          struct{}{},
	"tertiary":         struct{}{},
	"tertiary_link":    struct{}{},
	"road":             struct{}{},
	"track":            struct{}{},
	"unclassified":     struct{}{},
	"undefined":        struct{}{},
	"unknown":          struct{}{},
	"living_street":    struct{}{},
	"motorroad":        struct{}{},
}

func isOneWay(tags map[string]string) bool {
	switch tags["oneway"] {
	case "yes", "1", "true":
		return true
	}
	// roundabouts are implicitly oneway
	return tags["junction"] == "roundabout" || tags["junction"] == "circular"
}

func (p *OsmParser) acceptWay(w *osm.Way) {
	tags := w.TagMap()
	hv, ok := tags["highway"]
	if !ok {
		return
	}
	if _, ok := acceptedHighway[hv]; !ok {
		return
	}

	nodes := make([]int64, 0, len(w.Nodes))
	for _, wn := range w.Nodes {
		nodes = append(nodes, int64(wn.ID))
	}
	if len(nodes) < 2 {
		return
	}

	p.ways = append(p.ways, osmWay{
		nodes:  nodes,
		oneWay: isOneWay(tags),
		hwType: pkg.GetHighwayType(hv),
	})
}

func (p *OsmParser) acceptNode(n *osm.Node) {
	p.acceptedNodeMap[int64(n.ID)] = NewNodeCoord(n.Lat, n.Lon)
}

// Parse builds the graph from already-decoded OSM data (e.g. an Overpass API
// response).
func (p *OsmParser) Parse(data *osm.OSM) *datastructure.Graph {
	for _, n := range data.Nodes {
		p.acceptNode(n)
	}
	for _, w := range data.Ways {
		p.acceptWay(w)
	}
	return p.build()
}

// ParseFile builds the graph from an .osm.pbf extract on disk. Two scans: ways
// first (to know which nodes matter), then node coordinates.
func (p *OsmParser) ParseFile(path string) (*datastructure.Graph, error) {
	if err := p.scanFile(path, func(o osm.Object) {
		if w, ok := o.(*osm.Way); ok {
			p.acceptWay(w)
		}
	}); err != nil {
		return nil, err
	}

	if err := p.scanFile(path, func(o osm.Object) {
		if n, ok := o.(*osm.Node); ok {
			p.acceptNode(n)
		}
	}); err != nil {
		return nil, err
	}

	return p.build(), nil
}

func (p *OsmParser) scanFile(path string, handle func(osm.Object)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := osmpbf.New(context.Background(), f, runtime.GOMAXPROCS(-1))
	defer scanner.Close()

	for scanner.Scan() {
		handle(scanner.Object())
	}
	return scanner.Err()
}

func (p *OsmParser) vertexID(osmNodeID int64) (uint32, bool) {
	if _, ok := p.acceptedNodeMap[osmNodeID]; !ok {
		// way references a node outside the downloaded extent
		return 0, false
	}
	id, ok := p.nodeIDMap[osmNodeID]
	if !ok {
		id = p.maxVertexID
		p.nodeIDMap[osmNodeID] = id
		p.maxVertexID++
	}
	return id, true
}

func (p *OsmParser) build() *datastructure.Graph {
	edges := make([]Edge, 0)

	for _, w := range p.ways {
		for i := 0; i+1 < len(w.nodes); i++ {
			u, okU := p.vertexID(w.nodes[i])
			v, okV := p.vertexID(w.nodes[i+1])
			if !okU || !okV {
				continue
			}

			uc := p.acceptedNodeMap[w.nodes[i]]
			vc := p.acceptedNodeMap[w.nodes[i+1]]
			dist := geo.CalculateHaversineDistance(uc.Lat, uc.Lon, vc.Lat, vc.Lon) * 1000.0

			edges = append(edges, NewEdge(u, v, dist, w.hwType))
			if !w.oneWay {
				edges = append(edges, NewEdge(v, u, dist, w.hwType))
			}
		}
	}

	return p.BuildGraph(edges, p.maxVertexID)
}
